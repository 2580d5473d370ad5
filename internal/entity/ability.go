// internal/entity/ability.go
package entity

import (
	"code-defense/internal/config"
	"code-defense/internal/defs"
)

// Hit describes one enemy struck by an attack.
type Hit struct {
	Target *Enemy
	Killed bool
	Area   bool
}

// DeferredHit is follow-up damage the caller must schedule.
type DeferredHit struct {
	Target *Enemy
	Damage int
	Delay  float64 // ms
}

// Ability is the archetype-specific part of the attack pipeline.
type Ability interface {
	Kind() defs.AbilityKind
	// Damage returns the damage dealt to target before armor.
	Damage(base int, target *Enemy) int
	// AfterHit runs once for every enemy struck.
	AfterHit(hit Hit, res *AttackResult)
}

// NewAbility returns the variant for kind. Unknown kinds behave like AbilityNone.
func NewAbility(kind defs.AbilityKind) Ability {
	switch kind {
	case defs.AbilitySlow:
		return SlowAbility{Factor: config.SlowFactor, Duration: config.SlowDuration}
	case defs.AbilityBossBonus:
		return BossBonusAbility{Multiplier: config.BossDamageFactor}
	case defs.AbilityDelayedDamage:
		return DelayedDamageAbility{Amount: config.DelayedDamage, Delay: config.DelayedDamageWait}
	default:
		return NoAbility{}
	}
}

// NoAbility is a plain attacker.
type NoAbility struct{}

func (NoAbility) Kind() defs.AbilityKind          { return defs.AbilityNone }
func (NoAbility) Damage(base int, _ *Enemy) int   { return base }
func (NoAbility) AfterHit(_ Hit, _ *AttackResult) {}

// SlowAbility slows every enemy it hits.
type SlowAbility struct {
	Factor   float64
	Duration float64 // ms
}

func (SlowAbility) Kind() defs.AbilityKind { return defs.AbilitySlow }

func (SlowAbility) Damage(base int, _ *Enemy) int { return base }

func (a SlowAbility) AfterHit(hit Hit, _ *AttackResult) {
	hit.Target.ApplySlow(a.Factor, a.Duration)
}

// BossBonusAbility multiplies damage against boss-tier bugs.
type BossBonusAbility struct {
	Multiplier int
}

func (BossBonusAbility) Kind() defs.AbilityKind { return defs.AbilityBossBonus }

func (a BossBonusAbility) Damage(base int, target *Enemy) int {
	if target.Boss {
		return base * a.Multiplier
	}
	return base
}

func (BossBonusAbility) AfterHit(_ Hit, _ *AttackResult) {}

// DelayedDamageAbility queues a second hit on targets that survived.
// Every surviving hit queues its own follow-up; they do not replace each other.
type DelayedDamageAbility struct {
	Amount int
	Delay  float64 // ms
}

func (DelayedDamageAbility) Kind() defs.AbilityKind { return defs.AbilityDelayedDamage }

func (DelayedDamageAbility) Damage(base int, _ *Enemy) int { return base }

func (a DelayedDamageAbility) AfterHit(hit Hit, res *AttackResult) {
	if hit.Killed {
		return
	}
	res.Deferred = append(res.Deferred, DeferredHit{Target: hit.Target, Damage: a.Amount, Delay: a.Delay})
}
