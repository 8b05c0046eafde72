// internal/component/player.go
package component

// PlayerStateComponent хранит информацию о текущем забеге игрока.
type PlayerStateComponent struct {
	Currency int // Валюта, заработанная в этой сессии
	Kills    int // Количество убитых врагов
}
