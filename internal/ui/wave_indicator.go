// internal/ui/wave_indicator.go
package ui

import (
	"image/color"
	"strings"

	"code-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// WaveIndicator shows the wave number in Roman numerals.
type WaveIndicator struct {
	X, Y             int
	Color            color.Color
	OutlineColor     color.Color
	OutlineThickness int
}

func NewWaveIndicator(x, y int) *WaveIndicator {
	return &WaveIndicator{
		X:                x,
		Y:                y,
		Color:            config.CoreColor,
		OutlineColor:     color.Black,
		OutlineThickness: 1,
	}
}

// toRoman converts a positive integer to Roman numerals.
func toRoman(num int) string {
	if num <= 0 {
		return ""
	}
	val := []int{1000, 900, 500, 400, 100, 90, 50, 40, 10, 9, 5, 4, 1}
	syb := []string{"M", "CM", "D", "CD", "C", "XC", "L", "XL", "X", "IX", "V", "IV", "I"}

	var roman strings.Builder
	for i := 0; i < len(val); i++ {
		for num >= val[i] {
			roman.WriteString(syb[i])
			num -= val[i]
		}
	}
	return roman.String()
}

// WaveLabel is the indicator text, e.g. "III / X".
func WaveLabel(wave, total int) string {
	if wave <= 0 {
		return ""
	}
	if total <= 0 {
		return toRoman(wave)
	}
	return toRoman(wave) + " / " + toRoman(total)
}

// waveColor is red on the final wave, which carries the boss.
func (i *WaveIndicator) waveColor(wave, total int) color.Color {
	if wave > 0 && wave == total {
		return config.DangerColor
	}
	return i.Color
}

// Draw renders the indicator centred on X.
func (i *WaveIndicator) Draw(screen *ebiten.Image, face font.Face, wave, total int) {
	label := WaveLabel(wave, total)
	if label == "" {
		return
	}

	bounds := text.BoundString(face, label)
	x := i.X - bounds.Dx()/2
	for dy := -i.OutlineThickness; dy <= i.OutlineThickness; dy++ {
		for dx := -i.OutlineThickness; dx <= i.OutlineThickness; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			text.Draw(screen, label, face, x+dx, i.Y+dy, i.OutlineColor)
		}
	}
	text.Draw(screen, label, face, x, i.Y, i.waveColor(wave, total))
}
