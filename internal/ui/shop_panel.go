// internal/ui/shop_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"

	"code-defense/internal/app"
	"code-defense/internal/defs"
	"code-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const shopEntryHeight = 52

type shopEntry struct {
	Type defs.TowerType
	Rect image.Rectangle
}

// ShopPanel lists the hireable developers. Unaffordable entries are greyed.
type ShopPanel struct {
	X, Y, Width int
	fontFace    font.Face
	entries     []shopEntry
}

// NewShopPanel lays out one entry per known tower type in shop order.
func NewShopPanel(x, y, width int, face font.Face) *ShopPanel {
	p := &ShopPanel{X: x, Y: y, Width: width, fontFace: face}
	for _, t := range defs.TowerOrder {
		if _, ok := defs.TowerLibrary[t]; !ok {
			continue
		}
		top := y + 24 + len(p.entries)*shopEntryHeight
		p.entries = append(p.entries, shopEntry{
			Type: t,
			Rect: image.Rect(x+panelMargin, top, x+width-panelMargin, top+shopEntryHeight-6),
		})
	}
	return p
}

// Types returns the tower types in the order shown.
func (p *ShopPanel) Types() []defs.TowerType {
	out := make([]defs.TowerType, len(p.entries))
	for i, e := range p.entries {
		out[i] = e.Type
	}
	return out
}

// Click arms the tower under the cursor, or disarms it if it was already
// armed. It returns nil when no entry was hit.
func (p *ShopPanel) Click(x, y int, selected defs.TowerType) app.Msg {
	pt := image.Pt(x, y)
	for _, e := range p.entries {
		if !pt.In(e.Rect) {
			continue
		}
		if e.Type == selected {
			return app.SelectTowerTypeMsg{}
		}
		return app.SelectTowerTypeMsg{Type: e.Type}
	}
	return nil
}

func (p *ShopPanel) Draw(screen *ebiten.Image, s app.Snapshot) {
	text.Draw(screen, "HIRE", p.fontFace, p.X+panelMargin, p.Y+16, panelBorderColor)

	for i, e := range p.entries {
		def := defs.TowerLibrary[e.Type]
		r := e.Rect
		c := render.TowerColor(e.Type)
		affordable := s.Gold >= def.Cost
		fg := color.Color(c)
		if !affordable {
			fg = color.RGBA{100, 100, 110, 255}
		}

		vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), panelBgColor, true)
		border := color.Color(panelBorderColor)
		if e.Type == s.SelectedType {
			border = c
		}
		vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, border, true)

		vector.DrawFilledRect(screen, float32(r.Min.X+8), float32(r.Min.Y+10), 24, 24, render.DarkenColor(c), true)
		vector.StrokeRect(screen, float32(r.Min.X+8), float32(r.Min.Y+10), 24, 24, 1, fg, true)

		text.Draw(screen, fmt.Sprintf("%d %s", i+1, def.Name), p.fontFace, r.Min.X+40, r.Min.Y+18, fg)
		text.Draw(screen, fmt.Sprintf("%dg  dmg %d", def.Cost, def.Damage), p.fontFace, r.Min.X+40, r.Min.Y+36, fg)
	}
}
