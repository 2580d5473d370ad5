// internal/ui/indicator.go
package ui

import (
	"image/color"
	"math"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// Pulse is the scale of a widget elapsed seconds after it was clicked. It
// starts at 1.3 and settles back to 1.
func Pulse(elapsed float64) float64 {
	if elapsed < 0 {
		elapsed = 0
	}
	return 1.0 + 0.3*math.Exp(-elapsed*8)
}

// StateIndicator is the round status light. Clicking it starts or resets a run.
type StateIndicator struct {
	X, Y          float32
	Radius        float32
	LastClickTime time.Time
}

func NewStateIndicator(x, y, radius float32) *StateIndicator {
	return &StateIndicator{X: x, Y: y, Radius: radius}
}

// Draw renders the indicator in the colour of the current status.
func (i *StateIndicator) Draw(screen *ebiten.Image, stateColor color.Color) {
	r := i.Radius * float32(Pulse(time.Since(i.LastClickTime).Seconds()))
	vector.DrawFilledCircle(screen, i.X, i.Y, r, stateColor, true)
	vector.StrokeCircle(screen, i.X, i.Y, r, 1, color.White, true)
}

// IsClicked reports whether the click hit the indicator.
func (i *StateIndicator) IsClicked(x, y int) bool {
	return inCircle(x, y, i.X, i.Y, i.Radius)
}

// HandleClick starts the pulse animation.
func (i *StateIndicator) HandleClick() {
	i.LastClickTime = time.Now()
}

func inCircle(x, y int, cx, cy, r float32) bool {
	dx, dy := float32(x)-cx, float32(y)-cy
	return dx*dx+dy*dy <= r*r
}
