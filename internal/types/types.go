// internal/types/types.go
package types

// EntityID identifies a live entity for the lifetime of a world.
type EntityID int64
