// internal/ui/pause_button.go
package ui

import (
	"image/color"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// PauseButton shows two bars while playing and a play triangle while paused.
type PauseButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	IsPaused      bool
	PauseColor    color.Color
	PlayColor     color.Color
}

func NewPauseButton(x, y, size float32, pauseColor, playColor color.Color) *PauseButton {
	return &PauseButton{
		X:          x,
		Y:          y,
		Size:       size,
		PauseColor: pauseColor,
		PlayColor:  playColor,
	}
}

func (b *PauseButton) Draw(screen *ebiten.Image) {
	size := b.Size * float32(Pulse(time.Since(b.LastClickTime).Seconds()))

	if b.IsPaused {
		drawTriangle(screen, b.X-size, b.Y-size*1.2, b.X+size, b.Y, b.X-size, b.Y+size*1.2, b.PlayColor)
		return
	}
	width := size * 0.6
	height := size * 2.0
	spacing := size * 0.4
	for _, x := range []float32{b.X - width - spacing/2, b.X + spacing/2} {
		vector.DrawFilledRect(screen, x, b.Y-height/2, width, height, b.PauseColor, true)
		vector.StrokeRect(screen, x, b.Y-height/2, width, height, 1, color.White, true)
	}
}

func (b *PauseButton) IsClicked(x, y int) bool {
	return inCircle(x, y, b.X, b.Y, b.Size*1.2)
}

// TogglePause flips the icon and reports whether it now shows paused.
func (b *PauseButton) TogglePause() bool {
	b.IsPaused = !b.IsPaused
	b.LastClickTime = time.Now()
	return b.IsPaused
}

func (b *PauseButton) SetPaused(paused bool) {
	b.IsPaused = paused
}
