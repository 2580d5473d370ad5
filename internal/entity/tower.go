// internal/entity/tower.go
package entity

import (
	"math"

	"code-defense/internal/component"
	"code-defense/internal/config"
	"code-defense/internal/defs"
	"code-defense/internal/types"
	"code-defense/pkg/path"
)

// Tower is a developer placed on a slot.
type Tower struct {
	ID     types.EntityID
	Def    defs.TowerDefinition // level 1 template
	Level  int
	Damage int
	Range  float64
	Pos    path.Point
	Slot   int // index into the level's placement slots

	cooldown component.Cooldown
	target   *Enemy
	ability  Ability
}

// AttackResult reports what a single attack did.
type AttackResult struct {
	Fired    bool
	Target   *Enemy // primary target, nil for area attacks
	Killed   []*Enemy
	Damage   int
	Deferred []DeferredHit
}

// NewTower creates a level 1 tower at pos.
func NewTower(def defs.TowerDefinition, pos path.Point, slot int) *Tower {
	return &Tower{
		ID:       types.NewEntityID("dev"),
		Def:      def,
		Level:    1,
		Damage:   def.Damage,
		Range:    def.Range,
		Pos:      pos,
		Slot:     slot,
		cooldown: component.Cooldown{Interval: float64(def.Interval)},
		ability:  NewAbility(def.Ability),
	}
}

// Type returns the tower archetype.
func (t *Tower) Type() defs.TowerType {
	return t.Def.Type
}

// Interval returns the current time between attacks in ms.
func (t *Tower) Interval() float64 {
	return t.cooldown.Interval
}

// Ability returns the archetype variant.
func (t *Tower) Ability() Ability {
	return t.ability
}

// CurrentTarget returns the enemy chosen by the last attack, if any.
func (t *Tower) CurrentTarget() *Enemy {
	return t.target
}

// IsEligibleTarget reports whether e is of an allowed type and within range.
func (t *Tower) IsEligibleTarget(e *Enemy) bool {
	if !t.Def.CanTarget(e.Type) {
		return false
	}
	return t.Pos.Distance(e.Pos) <= t.Range
}

// SelectTarget picks the alive eligible enemy furthest along the path.
// Ties go to the first one in enemies.
func (t *Tower) SelectTarget(enemies []*Enemy) *Enemy {
	var best *Enemy
	bestIndex := -1
	for _, e := range enemies {
		if !e.Alive || !t.IsEligibleTarget(e) {
			continue
		}
		if e.PathIndex() > bestIndex {
			bestIndex = e.PathIndex()
			best = e
		}
	}
	return best
}

// TryAttack attacks at now (simulated ms) if the cooldown allows it.
func (t *Tower) TryAttack(now float64, enemies []*Enemy) AttackResult {
	var res AttackResult
	if !t.cooldown.Ready(now) {
		return res
	}

	target := t.SelectTarget(enemies)
	if target == nil {
		t.target = nil
		return res
	}
	t.target = target
	t.cooldown.Mark(now)
	res.Fired = true

	if t.Def.Area {
		for _, e := range enemies {
			if !e.Alive || !e.Pos.Within(target.Pos, config.AreaRadius) {
				continue
			}
			t.strike(e, true, &res)
		}
		return res
	}

	res.Target = target
	t.strike(target, false, &res)
	return res
}

func (t *Tower) strike(e *Enemy, area bool, res *AttackResult) {
	dmg := t.ability.Damage(t.Damage, e)
	killed := e.TakeDamage(dmg)
	res.Damage += dmg
	if killed {
		res.Killed = append(res.Killed, e)
	}
	t.ability.AfterHit(Hit{Target: e, Killed: killed, Area: area}, res)
}

// LevelUp raises the level and rescales stats. It fails at the max level.
func (t *Tower) LevelUp() bool {
	if t.Level >= config.MaxTowerLevel {
		return false
	}
	t.Level++
	t.Damage = int(math.Floor(float64(t.Damage) * config.LevelDamageFactor))
	t.Range = math.Floor(t.Range * config.LevelRangeFactor)
	t.cooldown.Interval = math.Floor(t.cooldown.Interval * config.LevelIntervalFactor)
	return true
}

// UpgradeCost is the gold needed for the next level.
func (t *Tower) UpgradeCost() int {
	return int(math.Floor(float64(t.Def.Cost) * config.UpgradeCostFactor * float64(t.Level)))
}

// SellValue is the gold refunded when the tower is sold.
func (t *Tower) SellValue() int {
	cost := float64(t.Def.Cost)
	return int(math.Floor(cost*config.SellBaseFactor + float64(t.Level-1)*cost*config.SellLevelBonusFactor))
}

// MaxLevel reports whether no further upgrades are possible.
func (t *Tower) MaxLevel() bool {
	return t.Level >= config.MaxTowerLevel
}
