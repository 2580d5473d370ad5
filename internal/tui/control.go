// internal/tui/control.go
package tui

import (
	"slices"

	"github.com/gdamore/tcell/v2"

	"code-defense/internal/app"
	"code-defense/internal/component"
	"code-defense/internal/config"
	"code-defense/internal/defs"
)

// Controller turns terminal input into game commands. It keeps only UI state.
type Controller struct {
	Cursor int

	pressed bool // Button1 was down on the last mouse event
}

// Handle translates ev against the last rendered snapshot. quit is true when
// the player asked to leave.
func (c *Controller) Handle(ev tcell.Event, s app.Snapshot) (msgs []app.Msg, quit bool) {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return c.key(ev, s)
	case *tcell.EventMouse:
		down := ev.Buttons()&tcell.Button1 != 0
		wasDown := c.pressed
		c.pressed = down
		p, ok := PointOf(ev.Position())
		if !ok {
			return nil, false
		}
		if down && !wasDown {
			return []app.Msg{app.ClickMsg{X: p.X, Y: p.Y}}, false
		}
		return []app.Msg{app.HoverMsg{X: p.X, Y: p.Y}}, false
	}
	return nil, false
}

func (c *Controller) key(ev *tcell.EventKey, s app.Snapshot) ([]app.Msg, bool) {
	switch ev.Key() {
	case tcell.KeyCtrlC:
		return nil, true
	case tcell.KeyEscape:
		return []app.Msg{app.SelectTowerTypeMsg{}, app.SelectTowerMsg{}}, false
	case tcell.KeyTab, tcell.KeyRight, tcell.KeyDown:
		return c.move(1, s), false
	case tcell.KeyBacktab, tcell.KeyLeft, tcell.KeyUp:
		return c.move(-1, s), false
	case tcell.KeyEnter:
		return c.enter(s), false
	case tcell.KeyRune:
	default:
		return nil, false
	}

	switch r := ev.Rune(); r {
	case 'q':
		return nil, true
	case '1', '2', '3', '4', '5':
		i := int(r - '1')
		if i >= len(defs.TowerOrder) {
			return nil, false
		}
		return []app.Msg{app.SelectTowerTypeMsg{Type: defs.TowerOrder[i]}}, false
	case '0':
		return []app.Msg{app.SelectTowerTypeMsg{}}, false
	case 's':
		return []app.Msg{app.StartMsg{}}, false
	case 'p':
		if s.Status == component.StatusPlaying {
			return []app.Msg{app.PauseMsg{}}, false
		}
		return []app.Msg{app.ResumeMsg{}}, false
	case 'r':
		return []app.Msg{app.ResetMsg{}}, false
	case 'x':
		if s.SelectedTower != nil {
			return []app.Msg{app.SellTowerMsg{ID: s.SelectedTower.ID}}, false
		}
	case 'u':
		if s.SelectedTower != nil {
			return []app.Msg{app.LevelUpTowerMsg{ID: s.SelectedTower.ID}}, false
		}
	case 'f':
		return []app.Msg{app.SetSpeedMsg{Multiplier: nextSpeed(s.Speed)}}, false
	case 'n':
		next, ok := defs.NextLevel(s.LevelID)
		if !ok {
			ids := defs.LevelIDs()
			if len(ids) == 0 {
				return nil, false
			}
			next = ids[0]
		}
		return []app.Msg{app.SelectLevelMsg{ID: next}}, false
	}
	return nil, false
}

func (c *Controller) move(delta int, s app.Snapshot) []app.Msg {
	n := len(s.Slots)
	if n == 0 {
		return nil
	}
	c.Cursor = ((c.Cursor+delta)%n + n) % n
	p := s.Slots[c.Cursor].Pos
	return []app.Msg{app.HoverMsg{X: p.X, Y: p.Y}}
}

func (c *Controller) enter(s app.Snapshot) []app.Msg {
	if c.Cursor < 0 || c.Cursor >= len(s.Slots) {
		return nil
	}
	slot := s.Slots[c.Cursor]
	if slot.Occupied {
		return []app.Msg{app.SelectTowerMsg{ID: slot.TowerID}}
	}
	if s.SelectedType != "" {
		return []app.Msg{app.PlaceTowerMsg{Type: s.SelectedType, Slot: c.Cursor}}
	}
	return nil
}

func nextSpeed(current float64) float64 {
	i := slices.Index(config.SpeedMultipliers, current)
	return config.SpeedMultipliers[(i+1)%len(config.SpeedMultipliers)]
}
