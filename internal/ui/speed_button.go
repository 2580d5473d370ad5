// internal/ui/speed_button.go
package ui

import (
	"image/color"
	"sync"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

// SpeedButton cycles through the game speed multipliers.
type SpeedButton struct {
	X, Y          float32
	Size          float32
	LastClickTime time.Time
	StateColors   []color.Color
	Multipliers   []float64
	CurrentState  int
}

func NewSpeedButton(x, y, size float32, multipliers []float64, stateColors []color.Color) *SpeedButton {
	return &SpeedButton{
		X:           x,
		Y:           y,
		Size:        size,
		StateColors: stateColors,
		Multipliers: multipliers,
	}
}

// Sync points the button at the multiplier the game is actually using.
func (b *SpeedButton) Sync(multiplier float64) {
	for i, m := range b.Multipliers {
		if m == multiplier {
			b.CurrentState = i
			return
		}
	}
}

// Toggle advances to the next multiplier and returns it.
func (b *SpeedButton) Toggle() float64 {
	b.CurrentState = (b.CurrentState + 1) % len(b.Multipliers)
	b.LastClickTime = time.Now()
	return b.Multipliers[b.CurrentState]
}

func (b *SpeedButton) Draw(screen *ebiten.Image) {
	size := b.Size * float32(Pulse(time.Since(b.LastClickTime).Seconds()))
	c := b.StateColors[b.CurrentState%len(b.StateColors)]

	height := size * 1.2
	width := size
	offset := width * 0.8
	drawTriangle(screen, b.X-width, b.Y-height/2, b.X, b.Y, b.X-width, b.Y+height/2, c)
	drawTriangle(screen, b.X-width+offset, b.Y-height/2, b.X+offset, b.Y, b.X-width+offset, b.Y+height/2, c)
}

// IsClicked uses a circle since the shape is irregular.
func (b *SpeedButton) IsClicked(x, y int) bool {
	return inCircle(x, y, b.X, b.Y, b.Size*1.5)
}

func drawTriangle(screen *ebiten.Image, x1, y1, x2, y2, x3, y3 float32, c color.Color) {
	var p vector.Path
	p.MoveTo(x1, y1)
	p.LineTo(x2, y2)
	p.LineTo(x3, y3)
	p.Close()

	vs, is := p.AppendVerticesAndIndicesForFilling(nil, nil)
	r, g, b, a := c.RGBA()
	for i := range vs {
		vs[i].SrcX, vs[i].SrcY = 0, 0
		vs[i].ColorR = float32(r) / 0xffff
		vs[i].ColorG = float32(g) / 0xffff
		vs[i].ColorB = float32(b) / 0xffff
		vs[i].ColorA = float32(a) / 0xffff
	}
	screen.DrawTriangles(vs, is, whitePixel(), &ebiten.DrawTrianglesOptions{AntiAlias: true})

	vector.StrokeLine(screen, x1, y1, x2, y2, 1, color.White, true)
	vector.StrokeLine(screen, x2, y2, x3, y3, 1, color.White, true)
	vector.StrokeLine(screen, x3, y3, x1, y1, 1, color.White, true)
}

var (
	whiteOnce sync.Once
	whiteImg  *ebiten.Image
)

// whitePixel is the source texture for filled paths.
func whitePixel() *ebiten.Image {
	whiteOnce.Do(func() {
		whiteImg = ebiten.NewImage(1, 1)
		whiteImg.Fill(color.White)
	})
	return whiteImg
}
