// internal/state/state.go
package state

import (
	"code-defense/internal/app"
	"code-defense/internal/progress"
	"code-defense/internal/telemetry"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
)

// State is a screen of the window: menu, play or pause overlay.
type State interface {
	Enter()
	Update(deltaTime float64)
	Draw(screen *ebiten.Image)
	Exit()
}

// Env is shared by every state for the lifetime of the window.
type Env struct {
	Game      *app.Game
	Progress  *progress.Recorder // optional
	Telemetry *telemetry.Sink    // optional
	Face      font.Face
}

// StateMachine holds the current state.
type StateMachine struct {
	current State
}

// NewStateMachine creates a machine with no initial state.
func NewStateMachine() *StateMachine {
	return &StateMachine{}
}

// SetState exits the current state and enters newState.
func (sm *StateMachine) SetState(newState State) {
	if sm.current != nil {
		sm.current.Exit()
	}
	sm.current = newState
	if sm.current != nil {
		sm.current.Enter()
	}
}

// Current returns the active state, nil before the first SetState.
func (sm *StateMachine) Current() State {
	return sm.current
}

func (sm *StateMachine) Update(deltaTime float64) {
	if sm.current != nil {
		sm.current.Update(deltaTime)
	}
}

func (sm *StateMachine) Draw(screen *ebiten.Image) {
	if sm.current != nil {
		sm.current.Draw(screen)
	}
}
