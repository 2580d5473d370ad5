// internal/app/commands.go
package app

import (
	"log/slog"
	"sync"

	"code-defense/internal/defs"
	"code-defense/internal/types"
)

// Msg is a command from the UI, applied at the start of the next tick.
type Msg interface{ isMsg() }

type (
	StartMsg           struct{}
	PauseMsg           struct{}
	ResumeMsg          struct{}
	ResetMsg           struct{}
	SelectTowerTypeMsg struct{ Type defs.TowerType }
	ClickMsg           struct{ X, Y float64 }
	HoverMsg           struct{ X, Y float64 }
	SelectTowerMsg     struct{ ID types.EntityID }
	PlaceTowerMsg      struct {
		Type defs.TowerType
		Slot int
	}
	SellTowerMsg    struct{ ID types.EntityID }
	LevelUpTowerMsg struct{ ID types.EntityID }
	SelectLevelMsg  struct{ ID int }
	SetSpeedMsg     struct{ Multiplier float64 }
)

func (StartMsg) isMsg()           {}
func (PauseMsg) isMsg()           {}
func (ResumeMsg) isMsg()          {}
func (ResetMsg) isMsg()           {}
func (SelectTowerTypeMsg) isMsg() {}
func (ClickMsg) isMsg()           {}
func (HoverMsg) isMsg()           {}
func (SelectTowerMsg) isMsg()     {}
func (PlaceTowerMsg) isMsg()      {}
func (SellTowerMsg) isMsg()       {}
func (LevelUpTowerMsg) isMsg()    {}
func (SelectLevelMsg) isMsg()     {}
func (SetSpeedMsg) isMsg()        {}

// inbox is the only part of Game shared between goroutines.
type inbox struct {
	mu   sync.Mutex
	msgs []Msg
}

func newInbox() *inbox {
	return &inbox{}
}

func (b *inbox) push(m Msg) {
	b.mu.Lock()
	b.msgs = append(b.msgs, m)
	b.mu.Unlock()
}

func (b *inbox) take() []Msg {
	b.mu.Lock()
	defer b.mu.Unlock()
	msgs := b.msgs
	b.msgs = nil
	return msgs
}

// Submit queues m for the next Update. Safe to call from any goroutine.
func (g *Game) Submit(m Msg) {
	g.inbox.push(m)
}

func (g *Game) drainInbox() {
	for _, m := range g.inbox.take() {
		if !g.Apply(m) {
			slog.Debug("command rejected", "cmd", m, "status", g.status, "gold", g.gold)
		}
	}
}

// Apply runs m immediately and reports whether it succeeded.
func (g *Game) Apply(m Msg) bool {
	switch m := m.(type) {
	case StartMsg:
		return g.Start()
	case PauseMsg:
		return g.Pause()
	case ResumeMsg:
		return g.Resume()
	case ResetMsg:
		g.Reset()
		return true
	case SelectTowerTypeMsg:
		return g.SelectTowerType(m.Type)
	case ClickMsg:
		return g.HandleClick(m.X, m.Y)
	case HoverMsg:
		g.SetHover(m.X, m.Y)
		return true
	case SelectTowerMsg:
		return g.SelectTower(m.ID)
	case PlaceTowerMsg:
		return g.PlaceTower(m.Type, m.Slot)
	case SellTowerMsg:
		return g.SellTower(m.ID)
	case LevelUpTowerMsg:
		return g.LevelUpTower(m.ID)
	case SelectLevelMsg:
		return g.SelectLevel(m.ID)
	case SetSpeedMsg:
		return g.SetSpeed(m.Multiplier)
	default:
		return false
	}
}

// SetSpeed changes how fast simulated time runs relative to real time.
func (g *Game) SetSpeed(multiplier float64) bool {
	if multiplier <= 0 {
		return false
	}
	g.SpeedMultiplier = multiplier
	return true
}
