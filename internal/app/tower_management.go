// internal/app/tower_management.go
package app

import (
	"log/slog"

	"code-defense/internal/defs"
	"code-defense/internal/entity"
	"code-defense/internal/event"
	"code-defense/internal/types"
)

// PlaceTower buys a tower of type t on the given slot.
func (g *Game) PlaceTower(t defs.TowerType, slot int) bool {
	if !g.canPlaceTower(t, slot) {
		return false
	}
	def := defs.TowerLibrary[t]

	g.gold -= def.Cost
	tower := entity.NewTower(def, g.Slots[slot].Pos, slot)
	g.World.AddTower(tower)
	g.Slots[slot].Occupied = true
	g.Slots[slot].TowerID = tower.ID
	g.selectedType = ""
	if g.hoveredSlot == slot {
		g.hoveredSlot = -1
	}

	g.emit(event.GoldChanged, g.gold)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerPlaced,
		Data: event.TowerData{ID: tower.ID, Tower: t, Level: 1, Gold: def.Cost},
	})
	slog.Debug("tower placed", "type", t, "slot", slot, "gold", g.gold)
	return true
}

func (g *Game) canPlaceTower(t defs.TowerType, slot int) bool {
	if g.status.Terminal() {
		return false
	}
	def, ok := defs.TowerLibrary[t]
	if !ok {
		return false
	}
	if slot < 0 || slot >= len(g.Slots) || g.Slots[slot].Occupied {
		return false
	}
	return g.gold >= def.Cost
}

// SellTower refunds a tower and frees its slot.
func (g *Game) SellTower(id types.EntityID) bool {
	if g.status.Terminal() {
		return false
	}
	tower := g.World.Tower(id)
	if tower == nil {
		return false
	}
	refund := tower.SellValue()
	g.World.RemoveTower(id)
	g.gold += refund
	if tower.Slot >= 0 && tower.Slot < len(g.Slots) && g.Slots[tower.Slot].TowerID == id {
		g.Slots[tower.Slot] = Slot{Pos: g.Slots[tower.Slot].Pos}
	}
	if g.selectedTower == id {
		g.selectedTower = ""
	}

	g.emit(event.GoldChanged, g.gold)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerSold,
		Data: event.TowerData{ID: id, Tower: tower.Type(), Level: tower.Level, Gold: refund},
	})
	slog.Debug("tower sold", "type", tower.Type(), "refund", refund, "gold", g.gold)
	return true
}

// LevelUpTower pays for and applies the next tower level.
func (g *Game) LevelUpTower(id types.EntityID) bool {
	if g.status.Terminal() {
		return false
	}
	tower := g.World.Tower(id)
	if tower == nil || tower.MaxLevel() {
		return false
	}
	cost := tower.UpgradeCost()
	if g.gold < cost {
		return false
	}
	if !tower.LevelUp() {
		return false
	}
	g.gold -= cost

	g.emit(event.GoldChanged, g.gold)
	g.EventDispatcher.Dispatch(event.Event{
		Type: event.TowerUpgraded,
		Data: event.TowerData{ID: id, Tower: tower.Type(), Level: tower.Level, Gold: cost},
	})
	slog.Debug("tower upgraded", "type", tower.Type(), "level", tower.Level, "gold", g.gold)
	return true
}
