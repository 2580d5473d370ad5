// internal/system/movement.go
package system

import "code-defense/internal/entity"

// BreachHandler is told about each enemy that reached the end of the path.
// Returning false stops the movement pass.
type BreachHandler func(e *entity.Enemy) bool

// MovementSystem walks enemies along the route.
type MovementSystem struct {
	world *entity.World
}

func NewMovementSystem(world *entity.World) *MovementSystem {
	return &MovementSystem{world: world}
}

// Update advances every alive enemy by ticks and reports breaches in order.
func (s *MovementSystem) Update(ticks float64, onBreach BreachHandler) {
	for _, e := range s.world.Enemies {
		if !e.Alive {
			continue
		}
		if e.Advance(ticks) {
			e.Alive = false
			if !onBreach(e) {
				return
			}
		}
	}
}
