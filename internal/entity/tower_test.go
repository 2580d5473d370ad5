package entity

import (
	"testing"

	"code-defense/internal/defs"
	"code-defense/pkg/path"
)

func enemyAt(typ defs.EnemyType, x, y float64, index int) *Enemy {
	e := NewEnemy(defs.EnemyLibrary[typ], testRoute())
	e.Pos = path.Pt(x, y)
	e.follower.Index = index
	return e
}

func towerOf(typ defs.TowerType) *Tower {
	return NewTower(defs.TowerLibrary[typ], path.Pt(0, 0), 0)
}

func TestIsEligibleTarget(t *testing.T) {
	tw := towerOf(defs.TowerJuniorDev) // range 120, Typo only
	tests := []struct {
		name string
		e    *Enemy
		want bool
	}{
		{"in range", enemyAt(defs.EnemyTypo, 60, 0, 0), true},
		{"on the edge", enemyAt(defs.EnemyTypo, 120, 0, 0), true},
		{"out of range", enemyAt(defs.EnemyTypo, 121, 0, 0), false},
		{"wrong type", enemyAt(defs.EnemyNullPointer, 10, 0, 0), false},
	}
	for _, tt := range tests {
		if got := tw.IsEligibleTarget(tt.e); got != tt.want {
			t.Errorf("%s: expected %v, got %v", tt.name, tt.want, got)
		}
	}
}

func TestSelectTargetPrefersFurthest(t *testing.T) {
	tw := towerOf(defs.TowerSeniorArchitect)
	a := enemyAt(defs.EnemyTypo, 10, 0, 1)
	b := enemyAt(defs.EnemyNullPointer, 20, 0, 3)
	c := enemyAt(defs.EnemyTypo, 30, 0, 3)
	dead := enemyAt(defs.EnemyTypo, 5, 0, 7)
	dead.Alive = false
	far := enemyAt(defs.EnemyTypo, 500, 0, 8)
	boss := enemyAt(defs.EnemySystemCrash, 5, 0, 9) // not targetable by architects

	got := tw.SelectTarget([]*Enemy{a, b, c, dead, far, boss})
	if got != b {
		t.Fatalf("expected first enemy with the highest path index")
	}
	if tw.SelectTarget([]*Enemy{dead, far, boss}) != nil {
		t.Fatalf("expected no target")
	}
}

func TestTryAttackRespectsInterval(t *testing.T) {
	tw := towerOf(defs.TowerJuniorDev) // 800ms
	e := enemyAt(defs.EnemySystemCrash, 0, 0, 0)
	e.Type = defs.EnemyTypo
	e.Armor = 0

	var attacks []float64
	for now := 0.0; now < 10000; now += 37 {
		if res := tw.TryAttack(now, []*Enemy{e}); res.Target != nil {
			attacks = append(attacks, now)
		}
	}
	if len(attacks) == 0 || attacks[0] != 0 {
		t.Fatalf("expected the first attack immediately, got %v", attacks)
	}
	for i := 1; i < len(attacks); i++ {
		if attacks[i]-attacks[i-1] < 800 {
			t.Fatalf("attacks %v and %v are closer than the interval", attacks[i-1], attacks[i])
		}
	}
}

func TestTryAttackWithoutTarget(t *testing.T) {
	tw := towerOf(defs.TowerJuniorDev)
	e := enemyAt(defs.EnemyTypo, 10, 0, 0)
	tw.TryAttack(0, []*Enemy{e})
	if tw.CurrentTarget() != e {
		t.Fatalf("expected current target to be recorded")
	}
	e.Pos = path.Pt(1000, 0)
	res := tw.TryAttack(5000, []*Enemy{e})
	if res.Target != nil || len(res.Killed) != 0 || res.Damage != 0 {
		t.Fatalf("expected empty result, got %+v", res)
	}
	if tw.CurrentTarget() != nil {
		t.Fatalf("expected current target to be cleared")
	}
	// A miss does not consume the cooldown.
	e.Pos = path.Pt(10, 0)
	if res := tw.TryAttack(5001, []*Enemy{e}); res.Target != e {
		t.Fatalf("expected attack right after the miss")
	}
}

func TestKillReported(t *testing.T) {
	tw := towerOf(defs.TowerJuniorDev)
	e := enemyAt(defs.EnemyTypo, 10, 0, 0)
	var kills int
	for now := 0.0; now <= 2400; now += 800 {
		kills += len(tw.TryAttack(now, []*Enemy{e}).Killed)
	}
	if e.Health != 0 || kills != 1 {
		t.Fatalf("expected exactly one kill after four hits, health %d kills %d", e.Health, kills)
	}
}

func TestAreaAttackSlowsEveryHit(t *testing.T) {
	tw := towerOf(defs.TowerUIDesigner) // damage 10, area
	target := enemyAt(defs.EnemyTypo, 100, 0, 4)
	near := enemyAt(defs.EnemyNullPointer, 140, 0, 2) // 40 px from target
	outside := enemyAt(defs.EnemyTypo, 100, 100, 1)   // 100 px from target

	res := tw.TryAttack(0, []*Enemy{near, target, outside})
	if res.Target != nil {
		t.Fatalf("area attacks report no primary target")
	}
	if target.Health != 40 || near.Health != 115 {
		t.Fatalf("unexpected health after splash: target %d near %d", target.Health, near.Health)
	}
	if outside.Health != 50 || outside.Slow.Active() {
		t.Fatalf("enemy outside the radius must be untouched")
	}
	if !target.Slow.Active() || !near.Slow.Active() || near.Slow.Factor != 0.5 || near.Slow.Remaining != 2000 {
		t.Fatalf("expected (0.5, 2000) slow on every hit, got %+v", near.Slow)
	}
	if res.Damage != 20 {
		t.Fatalf("expected total damage 20, got %d", res.Damage)
	}
}

func TestBossBonus(t *testing.T) {
	tw := towerOf(defs.TowerSecurityExpert)
	boss := enemyAt(defs.EnemySystemCrash, 10, 0, 0)
	res := tw.TryAttack(0, []*Enemy{boss})
	if res.Damage != 160 || boss.Health != 1000-135 {
		t.Fatalf("expected doubled damage against bosses, got damage %d health %d", res.Damage, boss.Health)
	}
	typo := enemyAt(defs.EnemyTypo, 10, 0, 0)
	typo.Health, typo.MaxHealth = 500, 500
	tw.TryAttack(1500, []*Enemy{typo})
	if typo.Health != 420 {
		t.Fatalf("expected plain damage against non-bosses, got health %d", typo.Health)
	}
}

func TestDelayedDamageRequestedOnSurvivors(t *testing.T) {
	tw := towerOf(defs.TowerDataEngineer) // 25 damage
	leak := enemyAt(defs.EnemyMemoryLeak, 10, 0, 0)
	res := tw.TryAttack(0, []*Enemy{leak})
	if len(res.Deferred) != 1 {
		t.Fatalf("expected a follow-up hit, got %d", len(res.Deferred))
	}
	d := res.Deferred[0]
	if d.Target != leak || d.Damage != 10 || d.Delay != 500 {
		t.Fatalf("unexpected follow-up %+v", d)
	}

	typo := enemyAt(defs.EnemyTypo, 10, 0, 0)
	typo.Health = 20
	res = tw.TryAttack(500, []*Enemy{typo})
	if len(res.Killed) != 1 || len(res.Deferred) != 0 {
		t.Fatalf("expected no follow-up after a kill, got %+v", res)
	}
}

func TestLevelUpScaling(t *testing.T) {
	tw := towerOf(defs.TowerJuniorDev)
	steps := []struct {
		damage   int
		rng      float64
		interval float64
	}{
		{22, 132, 720},
		{33, 145, 648},
	}
	for i, s := range steps {
		if !tw.LevelUp() {
			t.Fatalf("level up %d failed", i+1)
		}
		if tw.Damage != s.damage || tw.Range != s.rng || tw.Interval() != s.interval {
			t.Fatalf("level %d: expected %d/%v/%v, got %d/%v/%v",
				tw.Level, s.damage, s.rng, s.interval, tw.Damage, tw.Range, tw.Interval())
		}
	}
	if tw.LevelUp() || tw.Level != 3 {
		t.Fatalf("expected level up to fail at max level")
	}
}

func TestUpgradeCostAndSellValue(t *testing.T) {
	tw := towerOf(defs.TowerJuniorDev) // cost 100
	if tw.UpgradeCost() != 50 || tw.SellValue() != 70 {
		t.Fatalf("level 1: got upgrade %d sell %d", tw.UpgradeCost(), tw.SellValue())
	}
	tw.LevelUp()
	if tw.UpgradeCost() != 100 || tw.SellValue() != 95 {
		t.Fatalf("level 2: got upgrade %d sell %d", tw.UpgradeCost(), tw.SellValue())
	}
	tw.LevelUp()
	if tw.SellValue() != 120 {
		t.Fatalf("level 3: got sell %d", tw.SellValue())
	}

	ui := towerOf(defs.TowerUIDesigner) // cost 150
	ui.LevelUp()
	if ui.UpgradeCost() != 150 || ui.SellValue() != 142 {
		t.Fatalf("ui designer level 2: got upgrade %d sell %d", ui.UpgradeCost(), ui.SellValue())
	}
}
