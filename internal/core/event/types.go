package event

import "github.com/progrog/roguelike/internal/core/ecs"

// Melee is emitted when Source bumps into Target.
type Melee struct {
	Source ecs.EntityID
	Target ecs.EntityID
}

// DealDamage is derived from Melee by combat resolution and consumed by the
// damage step of the same tick. Name is the source's display name.
type DealDamage struct {
	Source ecs.EntityID
	Target ecs.EntityID
	Name   string
	Amount int
}
