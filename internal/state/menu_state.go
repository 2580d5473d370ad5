// internal/state/menu_state.go
package state

import (
	"fmt"
	"image"
	"log/slog"

	"code-defense/internal/app"
	"code-defense/internal/config"
	"code-defense/internal/defs"
	"code-defense/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

const (
	menuButtonWidth  = 320
	menuButtonHeight = 44
	menuButtonGap    = 14
)

// MenuState lists the levels and the lifetime counters.
type MenuState struct {
	sm      *StateMachine
	env     *Env
	buttons []*ui.Button
	levels  []int
	printer *message.Printer
}

func NewMenuState(sm *StateMachine, env *Env) *MenuState {
	m := &MenuState{sm: sm, env: env, printer: message.NewPrinter(language.English)}
	m.levels = defs.LevelIDs()
	top := config.WindowHeight/2 - len(m.levels)*(menuButtonHeight+menuButtonGap)/2
	left := (config.WindowWidth - menuButtonWidth) / 2
	for i, id := range m.levels {
		y := top + i*(menuButtonHeight+menuButtonGap)
		label := fmt.Sprintf("%d  %s", i+1, defs.LevelLibrary[id].Name)
		m.buttons = append(m.buttons, ui.NewButton(image.Rect(left, y, left+menuButtonWidth, y+menuButtonHeight), label))
	}
	return m
}

func (m *MenuState) Enter() {
	// Playing runs are paused before the menu opens; level changes need that.
	m.env.Game.Submit(app.PauseMsg{})
}

// Levels returns the level ids in button order.
func (m *MenuState) Levels() []int {
	return m.levels
}

func (m *MenuState) Update(deltaTime float64) {
	m.env.Game.Update(deltaTime)

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		m.sm.SetState(NewGameState(m.sm, m.env))
		return
	}
	for i, k := range digitKeys {
		if i < len(m.buttons) && inpututil.IsKeyJustPressed(k) {
			m.choose(i)
			return
		}
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		for i, b := range m.buttons {
			if b.IsClicked(x, y) {
				m.choose(i)
				return
			}
		}
	}
}

func (m *MenuState) choose(i int) {
	id := m.levels[i]
	slog.Info("level chosen from menu", "level", id)
	m.env.Game.Submit(app.SelectLevelMsg{ID: id})
	m.sm.SetState(NewGameState(m.sm, m.env))
}

func (m *MenuState) Draw(screen *ebiten.Image) {
	screen.Fill(config.BackgroundColor)
	face := m.env.Face

	title := "CODE DEFENSE"
	b := text.BoundString(face, title)
	text.Draw(screen, title, face, (config.WindowWidth-b.Dx())/2, 80, config.CoreColor)

	if m.env.Progress != nil {
		c := m.env.Progress.Counters()
		stats := m.printer.Sprintf("best score %d   bugs fixed %d   runs %d   victories %d",
			c.BestScore, c.BugsFixed, c.Runs, c.Victories)
		b := text.BoundString(face, stats)
		text.Draw(screen, stats, face, (config.WindowWidth-b.Dx())/2, 110, config.TextLightColor)
	}

	x, y := ebiten.CursorPosition()
	for _, btn := range m.buttons {
		btn.Draw(screen, face, x, y)
	}

	hint := "pick a level, esc to go back"
	b = text.BoundString(face, hint)
	text.Draw(screen, hint, face, (config.WindowWidth-b.Dx())/2, config.WindowHeight-30, config.TextLightColor)
}

func (m *MenuState) Exit() {}
