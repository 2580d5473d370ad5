// internal/system/combat.go
package system

import (
	"code-defense/internal/component"
	"code-defense/internal/config"
	"code-defense/internal/defs"
	"code-defense/internal/entity"
)

// Kill pairs a dead enemy with the tower that finished it.
type Kill struct {
	Enemy *entity.Enemy
	Tower *entity.Tower
}

// PendingHit is a deferred hit together with the tower type that caused it.
type PendingHit struct {
	entity.DeferredHit
	Tower defs.TowerType
}

// CombatReport is everything the towers did in one tick.
type CombatReport struct {
	Attacks  int
	Damage   int
	Kills    []Kill
	Effects  []component.AttackEffect
	Deferred []PendingHit
}

// CombatSystem lets every tower attack once per tick if its cooldown allows.
type CombatSystem struct {
	world *entity.World
}

func NewCombatSystem(world *entity.World) *CombatSystem {
	return &CombatSystem{world: world}
}

// Update runs the attack pipeline for all towers at now (simulated ms).
func (s *CombatSystem) Update(now float64) CombatReport {
	var report CombatReport
	for _, t := range s.world.Towers {
		res := t.TryAttack(now, s.world.Enemies)
		if !res.Fired {
			continue
		}
		report.Attacks++
		report.Damage += res.Damage
		if res.Target != nil {
			report.Effects = append(report.Effects, component.AttackEffect{
				From:      t.Pos,
				To:        res.Target.Pos,
				Tower:     t.Type(),
				Remaining: config.AttackEffectTTL,
			})
		}
		for _, e := range res.Killed {
			report.Kills = append(report.Kills, Kill{Enemy: e, Tower: t})
		}
		for _, d := range res.Deferred {
			report.Deferred = append(report.Deferred, PendingHit{DeferredHit: d, Tower: t.Type()})
		}
	}
	return report
}
