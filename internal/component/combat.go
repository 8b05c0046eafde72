// internal/component/combat.go
package component

// Health — компонент здоровья с окном неуязвимости после попадания.
type Health struct {
	HP    float64
	MaxHP float64
	// Invincible - сколько мс ещё действует неуязвимость.
	Invincible float64
	// Grace - длительность неуязвимости после каждого попадания.
	Grace float64
	dead  bool
}

// NewHealth returns full health with the given grace window.
func NewHealth(maxHP, grace float64) Health {
	return Health{HP: maxHP, MaxHP: maxHP, Grace: grace}
}

// Tick counts the invincibility window down.
func (h *Health) Tick(dt float64) {
	if h.Invincible > 0 {
		h.Invincible -= dt
		if h.Invincible < 0 {
			h.Invincible = 0
		}
	}
}

// Apply subtracts amount unless the entity is dead or invincible.
// applied reports whether hp changed; lethal reports hp reached zero.
// A non-lethal hit opens the grace window.
func (h *Health) Apply(amount float64) (applied, lethal bool) {
	if h.dead || h.Invincible > 0 || amount <= 0 {
		return false, false
	}
	h.HP -= amount
	if h.HP <= 0 {
		h.HP = 0
		return true, true
	}
	h.Invincible = h.Grace
	return true, false
}

// MarkDead flips the death guard. Only the first call returns true.
func (h *Health) MarkDead() bool {
	if h.dead {
		return false
	}
	h.dead = true
	return true
}

// Dead reports whether MarkDead has run.
func (h *Health) Dead() bool { return h.dead }

// Scale multiplies hp and max hp.
func (h *Health) Scale(f float64) {
	h.HP *= f
	h.MaxHP *= f
}

// Fraction returns hp/maxHp in [0,1].
func (h *Health) Fraction() float64 {
	if h.MaxHP <= 0 {
		return 0
	}
	return h.HP / h.MaxHP
}

// Cooldown — обратный отсчёт до следующего действия.
type Cooldown struct {
	Remaining float64
}

func (c *Cooldown) Tick(dt float64) {
	if c.Remaining > 0 {
		c.Remaining -= dt
	}
}

// Ready reports whether the countdown has run out.
func (c *Cooldown) Ready() bool { return c.Remaining <= 0 }

// Start begins a new countdown of d ms.
func (c *Cooldown) Start(d float64) { c.Remaining = d }
