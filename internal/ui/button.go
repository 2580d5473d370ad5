// internal/ui/button.go
package ui

import (
	"image"
	"image/color"

	"code-defense/internal/config"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// Button is a clickable rectangle with a centred label.
type Button struct {
	Rect     image.Rectangle
	Text     string
	Disabled bool
	Accent   color.Color // border, falls back to the panel border
}

// NewButton creates a new button.
func NewButton(rect image.Rectangle, label string) *Button {
	return &Button{Rect: rect, Text: label}
}

// Contains reports whether the point lies inside the button.
func (b *Button) Contains(x, y int) bool {
	return image.Pt(x, y).In(b.Rect)
}

// IsClicked reports whether an enabled button was hit.
func (b *Button) IsClicked(x, y int) bool {
	return !b.Disabled && b.Contains(x, y)
}

// Draw renders the button, highlighted when the cursor is over it.
func (b *Button) Draw(screen *ebiten.Image, face font.Face, cursorX, cursorY int) {
	bg := config.ButtonColor
	fg := color.Color(config.TextLightColor)
	switch {
	case b.Disabled:
		bg = config.ButtonOffColor
		fg = color.RGBA{110, 110, 120, 255}
	case b.Contains(cursorX, cursorY):
		bg = config.ButtonHoverColor
	}
	border := b.Accent
	if border == nil {
		border = panelBorderColor
	}

	x, y := float32(b.Rect.Min.X), float32(b.Rect.Min.Y)
	w, h := float32(b.Rect.Dx()), float32(b.Rect.Dy())
	vector.DrawFilledRect(screen, x, y, w, h, bg, true)
	vector.StrokeRect(screen, x, y, w, h, 2, border, true)

	bounds := text.BoundString(face, b.Text)
	textX := b.Rect.Min.X + (b.Rect.Dx()-bounds.Dx())/2
	textY := b.Rect.Min.Y + (b.Rect.Dy()-bounds.Dy())/2 - bounds.Min.Y
	text.Draw(screen, b.Text, face, textX, textY, fg)
}
