// internal/app/snapshot.go
package app

import (
	"code-defense/internal/component"
	"code-defense/internal/defs"
	"code-defense/internal/types"
	"code-defense/pkg/path"
)

// TowerView is a read-only copy of a placed tower.
type TowerView struct {
	ID          types.EntityID
	Type        defs.TowerType
	Name        string
	Level       int
	Damage      int
	Range       float64
	Interval    float64
	Pos         path.Point
	Slot        int
	Area        bool
	Ability     defs.AbilityKind
	AbilityName string
	UpgradeCost int
	SellValue   int
	MaxLevel    bool
}

// EnemyView is a read-only copy of a live bug.
type EnemyView struct {
	ID        types.EntityID
	Type      defs.EnemyType
	Name      string
	Health    int
	MaxHealth int
	Pos       path.Point
	Boss      bool
	Slowed    bool
	PathIndex int
	Progress  float64 // px walked along the route
}

// SlotView is a read-only copy of a placement slot.
type SlotView struct {
	Pos      path.Point
	Occupied bool
	Hovered  bool
	TowerID  types.EntityID
}

// Snapshot is everything a renderer needs for one frame. It shares no memory
// with the game.
type Snapshot struct {
	LevelID      int
	LevelName    string
	Status       component.Status
	Gold         int
	Lives        int
	InitialLives int
	Score        int
	Wave         int
	TotalWaves   int
	NextWaveIn   float64 // ms until the post-wave delay ends, 0 if not waiting
	Queued       int     // bugs of the current wave still to spawn
	RouteLength  float64
	Speed        float64
	Clock        float64
	Session      string

	Path    []path.Point
	Slots   []SlotView
	Towers  []TowerView
	Enemies []EnemyView
	Effects []component.AttackEffect

	SelectedType  defs.TowerType
	SelectedTower *TowerView
	HoveredSlot   int
}

// Snapshot copies the current state for rendering.
func (g *Game) Snapshot() Snapshot {
	s := Snapshot{
		LevelID:      g.Level.ID,
		LevelName:    g.Level.Name,
		Status:       g.status,
		Gold:         g.gold,
		Lives:        g.lives,
		InitialLives: g.Level.InitialLives,
		Score:        g.score,
		Wave:         g.wave,
		TotalWaves:   len(g.Level.Waves),
		Speed:        g.SpeedMultiplier,
		Clock:        g.clock,
		Session:      g.session,
		Queued:       g.WaveSystem.Pending(),
		RouteLength:  g.Route.Length(),
		Path:         g.Route.Clone(),
		Effects:      g.VisualEffectSystem.Effects(),
		SelectedType: g.selectedType,
		HoveredSlot:  g.hoveredSlot,
	}
	if g.nextWaveAt > 0 {
		s.NextWaveIn = max(0, g.nextWaveAt-g.clock)
	}

	s.Slots = make([]SlotView, len(g.Slots))
	for i, slot := range g.Slots {
		s.Slots[i] = SlotView{
			Pos:      slot.Pos,
			Occupied: slot.Occupied,
			Hovered:  i == g.hoveredSlot,
			TowerID:  slot.TowerID,
		}
	}

	s.Towers = make([]TowerView, 0, len(g.World.Towers))
	for _, t := range g.World.Towers {
		v := TowerView{
			ID:          t.ID,
			Type:        t.Type(),
			Name:        t.Def.Name,
			Level:       t.Level,
			Damage:      t.Damage,
			Range:       t.Range,
			Interval:    t.Interval(),
			Pos:         t.Pos,
			Slot:        t.Slot,
			Area:        t.Def.Area,
			Ability:     t.Def.Ability,
			AbilityName: t.Def.AbilityName,
			UpgradeCost: t.UpgradeCost(),
			SellValue:   t.SellValue(),
			MaxLevel:    t.MaxLevel(),
		}
		s.Towers = append(s.Towers, v)
		if t.ID == g.selectedTower {
			sel := v
			s.SelectedTower = &sel
		}
	}

	s.Enemies = make([]EnemyView, 0, len(g.World.Enemies))
	for _, e := range g.World.Enemies {
		if !e.Alive {
			continue
		}
		s.Enemies = append(s.Enemies, EnemyView{
			ID:        e.ID,
			Type:      e.Type,
			Name:      e.Name,
			Health:    e.Health,
			MaxHealth: e.MaxHealth,
			Pos:       e.Pos,
			Boss:      e.Boss,
			Slowed:    e.Slow.Active(),
			PathIndex: e.PathIndex(),
			Progress:  e.Progress(),
		})
	}
	return s
}

// FrontLine is how far the leading bug has got, from 0 at the spawn to 1 at
// the breach point.
func (s Snapshot) FrontLine() float64 {
	if s.RouteLength <= 0 {
		return 0
	}
	lead := 0.0
	for _, e := range s.Enemies {
		lead = max(lead, e.Progress)
	}
	return min(1, lead/s.RouteLength)
}
