// internal/app/input.go
package app

import (
	"code-defense/internal/config"
	"code-defense/internal/defs"
	"code-defense/internal/types"
	"code-defense/pkg/path"
)

// SelectTowerType arms placement of t. An empty type disarms it.
func (g *Game) SelectTowerType(t defs.TowerType) bool {
	if t == "" {
		g.selectedType = ""
		return true
	}
	if _, ok := defs.TowerLibrary[t]; !ok {
		return false
	}
	g.selectedType = t
	return true
}

// SelectedType returns the tower type armed for placement.
func (g *Game) SelectedType() defs.TowerType { return g.selectedType }

// SelectTower picks a placed tower for inspection. An empty id clears the selection.
func (g *Game) SelectTower(id types.EntityID) bool {
	if id == "" {
		g.selectedTower = ""
		return true
	}
	if g.World.Tower(id) == nil {
		return false
	}
	g.selectedTower = id
	return true
}

// SelectedTower returns the id of the inspected tower, if any.
func (g *Game) SelectedTower() types.EntityID { return g.selectedTower }

// SetHover records the free slot under the cursor, if any.
func (g *Game) SetHover(x, y float64) {
	g.hoveredSlot = g.freeSlotAt(x, y)
}

// HoveredSlot returns the index of the hovered free slot, or -1.
func (g *Game) HoveredSlot() int { return g.hoveredSlot }

// HandleClick places the armed tower on a free slot under the cursor, otherwise
// selects a tower under the cursor, otherwise clears the selection.
func (g *Game) HandleClick(x, y float64) bool {
	if g.selectedType != "" {
		if slot := g.freeSlotAt(x, y); slot >= 0 {
			return g.PlaceTower(g.selectedType, slot)
		}
	}
	if t := g.World.TowerAt(x, y, config.ClickRadius); t != nil {
		g.selectedTower = t.ID
		return true
	}
	g.selectedTower = ""
	return false
}

// SlotAt returns the index of the slot within click range of (x, y), or -1.
func (g *Game) SlotAt(x, y float64) int {
	p := path.Pt(x, y)
	for i, s := range g.Slots {
		if s.Pos.Distance(p) < config.ClickRadius {
			return i
		}
	}
	return -1
}

func (g *Game) freeSlotAt(x, y float64) int {
	p := path.Pt(x, y)
	for i, s := range g.Slots {
		if !s.Occupied && s.Pos.Distance(p) < config.ClickRadius {
			return i
		}
	}
	return -1
}
