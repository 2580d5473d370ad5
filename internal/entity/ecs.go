// internal/entity/ecs.go
package entity

import "code-defense/internal/types"

// World owns the live entity collections of one run.
// Only the game loop mutates it; everyone else gets snapshots.
type World struct {
	Enemies []*Enemy
	Towers  []*Tower
}

func NewWorld() *World {
	return &World{}
}

// AddEnemy appends a freshly spawned enemy.
func (w *World) AddEnemy(e *Enemy) {
	w.Enemies = append(w.Enemies, e)
}

// AddTower appends a freshly placed tower.
func (w *World) AddTower(t *Tower) {
	w.Towers = append(w.Towers, t)
}

// Tower finds a tower by id.
func (w *World) Tower(id types.EntityID) *Tower {
	for _, t := range w.Towers {
		if t.ID == id {
			return t
		}
	}
	return nil
}

// TowerAt returns the first tower within radius of (x, y).
func (w *World) TowerAt(x, y, radius float64) *Tower {
	for _, t := range w.Towers {
		dx, dy := t.Pos.X-x, t.Pos.Y-y
		if dx*dx+dy*dy < radius*radius {
			return t
		}
	}
	return nil
}

// RemoveTower deletes a tower and returns it, or nil if it was not found.
func (w *World) RemoveTower(id types.EntityID) *Tower {
	for i, t := range w.Towers {
		if t.ID == id {
			w.Towers = append(w.Towers[:i], w.Towers[i+1:]...)
			return t
		}
	}
	return nil
}

// AliveEnemies counts enemies still on the field.
func (w *World) AliveEnemies() int {
	n := 0
	for _, e := range w.Enemies {
		if e.Alive {
			n++
		}
	}
	return n
}

// PruneDead drops enemies that died or breached. The backing array is not reused
// so slices handed out earlier keep their contents.
func (w *World) PruneDead() {
	alive := make([]*Enemy, 0, len(w.Enemies))
	for _, e := range w.Enemies {
		if e.Alive {
			alive = append(alive, e)
		}
	}
	w.Enemies = alive
}

// Clear removes everything.
func (w *World) Clear() {
	w.Enemies = nil
	w.Towers = nil
}
