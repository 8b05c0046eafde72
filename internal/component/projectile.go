// internal/component/projectile.go
package component

import "go-arena-shooter/internal/types"

// Piercing tracks how many more targets a bullet may damage and which it
// has already hit.
type Piercing struct {
	Remaining int
	hits      map[types.EntityID]struct{}
}

func NewPiercing(n int) Piercing {
	if n < 1 {
		n = 1
	}
	return Piercing{Remaining: n}
}

// AlreadyHit reports whether id was damaged by this bullet before.
func (p *Piercing) AlreadyHit(id types.EntityID) bool {
	_, ok := p.hits[id]
	return ok
}

// Consume records a hit on id and returns true when pierce is exhausted.
// Remaining never goes below zero.
func (p *Piercing) Consume(id types.EntityID) bool {
	if p.hits == nil {
		p.hits = make(map[types.EntityID]struct{})
	}
	p.hits[id] = struct{}{}
	if p.Remaining > 0 {
		p.Remaining--
	}
	return p.Remaining == 0
}
