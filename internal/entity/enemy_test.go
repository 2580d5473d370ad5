package entity

import (
	"math"
	"testing"

	"code-defense/internal/defs"
	"code-defense/pkg/path"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func testRoute() path.Polyline {
	return path.Polyline{path.Pt(0, 0), path.Pt(10, 0), path.Pt(10, 10)}
}

func TestTakeDamageFloorAndClamp(t *testing.T) {
	crash := NewEnemy(defs.EnemyLibrary[defs.EnemySystemCrash], testRoute())
	crash.TakeDamage(10) // armor 25
	if crash.Health != 999 {
		t.Fatalf("expected minimum damage of 1, health 999, got %d", crash.Health)
	}

	typo := NewEnemy(defs.EnemyLibrary[defs.EnemyTypo], testRoute())
	if !typo.TakeDamage(500) {
		t.Fatalf("expected lethal hit to report a kill")
	}
	if typo.Health != 0 || typo.Alive {
		t.Fatalf("expected health clamped to 0 and dead, got %d alive=%v", typo.Health, typo.Alive)
	}
	if typo.TakeDamage(10) {
		t.Fatalf("a dead enemy cannot be killed twice")
	}
}

func TestFourHitsKillTypo(t *testing.T) {
	e := NewEnemy(defs.EnemyLibrary[defs.EnemyTypo], testRoute())
	want := []int{35, 20, 5, 0}
	for i, hp := range want {
		killed := e.TakeDamage(15)
		if e.Health != hp {
			t.Fatalf("hit %d: expected health %d, got %d", i+1, hp, e.Health)
		}
		if killed != (i == 3) {
			t.Fatalf("hit %d: unexpected killed=%v", i+1, killed)
		}
	}
}

func TestAdvanceFollowsRoute(t *testing.T) {
	e := NewEnemy(defs.EnemyLibrary[defs.EnemyTypo], testRoute()) // 2.5 px per tick
	if e.Advance(1) {
		t.Fatalf("should not reach the end after one tick")
	}
	if !approxEqual(e.Pos.X, 2.5) || !approxEqual(e.Pos.Y, 0) {
		t.Fatalf("expected (2.5, 0), got %v", e.Pos)
	}

	last := e.PathIndex()
	reached := false
	for i := 0; i < 100 && !reached; i++ {
		reached = e.Advance(1)
		if e.PathIndex() < last {
			t.Fatalf("path index went backwards: %d -> %d", last, e.PathIndex())
		}
		last = e.PathIndex()
	}
	if !reached {
		t.Fatalf("expected to reach the end")
	}
	if e.Pos != path.Pt(10, 10) || e.PathIndex() != 2 {
		t.Fatalf("expected to stand on the last waypoint, got %v index %d", e.Pos, e.PathIndex())
	}
}

func TestAdvanceSnapsToWaypoint(t *testing.T) {
	e := NewEnemy(defs.EnemyLibrary[defs.EnemyTypo], testRoute())
	e.Advance(3.9) // 9.75 px
	e.Advance(1)   // 0.25 left to the corner, less than a step
	if e.Pos != path.Pt(10, 0) || e.PathIndex() != 1 {
		t.Fatalf("expected snap to (10, 0) index 1, got %v index %d", e.Pos, e.PathIndex())
	}
}

func TestAdvanceRespectsSlow(t *testing.T) {
	e := NewEnemy(defs.EnemyLibrary[defs.EnemyTypo], path.Polyline{path.Pt(0, 0), path.Pt(1000, 0)})
	e.ApplySlow(0.5, 1000)
	e.Advance(1)
	if !approxEqual(e.Pos.X, 1.25) {
		t.Fatalf("expected half speed, got x=%f", e.Pos.X)
	}
	// 60 ticks is one second of simulated time, enough to expire the slow.
	e.Advance(60)
	if e.Slow.Active() {
		t.Fatalf("expected slow to expire, remaining %f", e.Slow.Remaining)
	}
	before := e.Pos.X
	e.Advance(1)
	if !approxEqual(e.Pos.X-before, 2.5) {
		t.Fatalf("expected full speed after expiry, moved %f", e.Pos.X-before)
	}
}

func TestAdvanceDeadIsNoop(t *testing.T) {
	e := NewEnemy(defs.EnemyLibrary[defs.EnemyTypo], testRoute())
	e.Alive = false
	if e.Advance(100) || e.Pos != path.Pt(0, 0) {
		t.Fatalf("dead enemies must not move")
	}
}

func TestEnemyIDsAreUnique(t *testing.T) {
	a := NewEnemy(defs.EnemyLibrary[defs.EnemyTypo], testRoute())
	b := NewEnemy(defs.EnemyLibrary[defs.EnemyTypo], testRoute())
	if a.ID == b.ID || a.ID == "" {
		t.Fatalf("expected distinct ids, got %q and %q", a.ID, b.ID)
	}
}
