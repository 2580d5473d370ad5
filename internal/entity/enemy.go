// internal/entity/enemy.go
package entity

import (
	"code-defense/internal/component"
	"code-defense/internal/config"
	"code-defense/internal/defs"
	"code-defense/internal/types"
	"code-defense/pkg/path"
)

// Enemy is a bug walking the route toward the data port.
type Enemy struct {
	ID        types.EntityID
	Type      defs.EnemyType
	Name      string
	Health    int
	MaxHealth int
	Speed     float64 // pixels per tick before slow
	Armor     int
	Reward    int
	Boss      bool
	Pos       path.Point
	Alive     bool
	Slow      component.SlowEffect

	follower component.PathFollower
}

// NewEnemy spawns a bug of the given definition at the start of route.
func NewEnemy(def defs.EnemyDefinition, route path.Polyline) *Enemy {
	return &Enemy{
		ID:        types.NewEntityID("bug"),
		Type:      def.Type,
		Name:      def.Name,
		Health:    def.Health,
		MaxHealth: def.Health,
		Speed:     def.Speed,
		Armor:     def.Armor,
		Reward:    def.Reward,
		Boss:      def.Boss,
		Pos:       route.Start(),
		Alive:     true,
		Slow:      component.NoSlow(),
		follower:  component.PathFollower{Route: route},
	}
}

// PathIndex is the number of waypoints passed.
func (e *Enemy) PathIndex() int {
	return e.follower.Index
}

// Progress returns the distance walked along the route.
func (e *Enemy) Progress() float64 {
	return e.follower.Route.Travelled(e.follower.Index, e.Pos)
}

// TakeDamage applies armor-reduced damage, at least 1, and reports whether this call killed the bug.
func (e *Enemy) TakeDamage(amount int) bool {
	if !e.Alive {
		return false
	}
	dmg := max(1, amount-e.Armor)
	e.Health -= dmg
	if e.Health <= 0 {
		e.Health = 0
		e.Alive = false
		return true
	}
	return false
}

// ApplySlow keeps the strongest factor and the longest remaining duration.
func (e *Enemy) ApplySlow(factor, durationMs float64) {
	e.Slow.Apply(factor, durationMs)
}

// EffectiveSpeed is the speed after slow, never negative.
func (e *Enemy) EffectiveSpeed() float64 {
	return max(0, e.Speed*e.Slow.Factor)
}

// Advance moves the bug for the given number of ticks and reports whether it reached the end.
// On arriving at a waypoint the bug stops there for the rest of the tick.
func (e *Enemy) Advance(ticks float64) bool {
	if !e.Alive {
		return false
	}
	if e.follower.Finished() {
		return true
	}

	e.Slow.Tick(ticks * 1000 / config.TicksPerSecond)

	step := e.EffectiveSpeed() * ticks
	target := e.follower.Target()
	dist := e.Pos.Distance(target)
	if dist < step || dist == 0 {
		e.Pos = target
		e.follower.Index++
		return e.follower.Finished()
	}
	e.Pos = e.Pos.MoveToward(target, step)
	return false
}
