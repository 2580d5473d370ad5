// internal/ui/lives_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	LivesCols          = 10
	LivesMaxRows       = 2
	LivesCircleRadius  = 6.0
	LivesCircleSpacing = 3.0
)

var (
	lifeReserveColor  = color.RGBA{0, 200, 255, 255}
	lifeCriticalColor = color.RGBA{255, 40, 40, 255}
	lifeEmptyColor    = color.RGBA{10, 10, 20, 255}
)

// LivesIndicator draws the remaining lives as a grid of circles.
type LivesIndicator struct {
	X, Y float32
}

func NewLivesIndicator(x, y float32) *LivesIndicator {
	return &LivesIndicator{X: x, Y: y}
}

// LifeColor picks the colour of cell j. Lost lives are dark. Above half,
// the surplus is drawn as reserve and the rest as critical; at or below
// half every remaining life is critical.
func LifeColor(j, lives, maxLives int) color.RGBA {
	if j >= lives {
		return lifeEmptyColor
	}
	half := maxLives / 2
	if lives <= half {
		return lifeCriticalColor
	}
	if j < lives-half {
		return lifeReserveColor
	}
	return lifeCriticalColor
}

func (i *LivesIndicator) Draw(screen *ebiten.Image, lives, maxLives int) {
	cells := min(maxLives, LivesCols*LivesMaxRows)
	step := float32(LivesCircleRadius*2 + LivesCircleSpacing)
	for j := 0; j < cells; j++ {
		row, col := j/LivesCols, j%LivesCols
		cx := i.X + float32(col)*step + LivesCircleRadius
		cy := i.Y + float32(row)*step + LivesCircleRadius
		vector.DrawFilledCircle(screen, cx, cy, LivesCircleRadius, LifeColor(j, lives, cells), true)
		vector.StrokeCircle(screen, cx, cy, LivesCircleRadius, 1, color.White, true)
	}
}

// Width returns the horizontal extent of the grid.
func (i *LivesIndicator) Width() float32 {
	return LivesCols * (LivesCircleRadius*2 + LivesCircleSpacing)
}
