// internal/state/pause_state.go
package state

import (
	"image/color"

	"code-defense/internal/app"
	"code-defense/internal/component"
	"code-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var _ State = (*PauseState)(nil)

// PauseState dims the game underneath until it is resumed.
type PauseState struct {
	sm       *StateMachine
	previous *GameState
}

func NewPauseState(sm *StateMachine, prev *GameState) *PauseState {
	return &PauseState{sm: sm, previous: prev}
}

func (s *PauseState) Enter() {}

func (s *PauseState) Update(deltaTime float64) {
	g := s.previous.env.Game
	if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.Submit(app.ResumeMsg{})
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		if msg := s.previous.hud.Click(x, y, s.previous.snap); msg != nil {
			g.Submit(msg)
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		s.sm.SetState(NewMenuState(s.sm, s.previous.env))
		return
	}

	g.Update(deltaTime)
	s.previous.refresh()
	if s.previous.snap.Status != component.StatusPaused {
		s.sm.SetState(s.previous)
	}
}

func (s *PauseState) Draw(screen *ebiten.Image) {
	s.previous.Draw(screen)

	vector.DrawFilledRect(screen, 0, config.HUDHeight, config.WindowWidth, config.ScreenHeight, color.RGBA{0, 0, 0, 128}, false)
	face := s.previous.env.Face
	label := "PAUSED"
	b := text.BoundString(face, label)
	text.Draw(screen, label, face, (config.ScreenWidth-b.Dx())/2, config.HUDHeight+config.ScreenHeight/2, color.White)
	hint := "p to resume, m for the menu"
	b = text.BoundString(face, hint)
	text.Draw(screen, hint, face, (config.ScreenWidth-b.Dx())/2, config.HUDHeight+config.ScreenHeight/2+20, config.TextLightColor)
}

func (s *PauseState) Exit() {}
