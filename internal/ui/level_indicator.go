// internal/ui/level_indicator.go
package ui

import (
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

const (
	costBarWidth    = 118
	costBarHeight   = 8
	levelRectWidth  = 16
	levelRectHeight = 12
	levelRectGap    = 9
	borderWidth     = 1
)

var (
	levelFillColor = color.RGBA{0, 200, 255, 220}
	borderColor    = color.White
)

// LevelIndicator draws a tower's level as filled boxes, with a bar showing
// how much of the next upgrade the player can afford.
type LevelIndicator struct {
	X, Y float32
}

func NewLevelIndicator(x, y float32) *LevelIndicator {
	return &LevelIndicator{X: x, Y: y}
}

// Affordable is the filled fraction of the upgrade bar.
func Affordable(gold, cost int) float64 {
	if cost <= 0 {
		return 1
	}
	return max(0, min(1, float64(gold)/float64(cost)))
}

func (i *LevelIndicator) Draw(screen *ebiten.Image, level, maxLevel, gold, upgradeCost int) {
	for j := 0; j < maxLevel; j++ {
		rectX := i.X + float32(j)*(levelRectWidth+levelRectGap)
		vector.StrokeRect(screen, rectX, i.Y, levelRectWidth, levelRectHeight, borderWidth, borderColor, true)
		if j < level {
			vector.DrawFilledRect(screen, rectX+borderWidth, i.Y+borderWidth, levelRectWidth-borderWidth*2, levelRectHeight-borderWidth*2, levelFillColor, true)
		}
	}
	if level >= maxLevel {
		return
	}

	barY := i.Y + levelRectHeight + 6
	vector.StrokeRect(screen, i.X, barY, costBarWidth, costBarHeight, borderWidth, borderColor, true)
	fill := float32(float64(costBarWidth-borderWidth*2) * Affordable(gold, upgradeCost))
	if fill > 0 {
		vector.DrawFilledRect(screen, i.X+borderWidth, barY+borderWidth, fill, costBarHeight-borderWidth*2, levelFillColor, true)
	}
}
