// internal/ui/info_panel.go
package ui

import (
	"fmt"
	"image"
	"image/color"
	"math"

	"code-defense/internal/app"
	"code-defense/internal/config"
	"code-defense/internal/types"
	"code-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

const (
	infoPanelHeight = 240
	panelMargin     = 5
	animationSpeed  = 20.0
	lineHeight      = 18
	infoButtonH     = 30
)

var (
	panelBgColor     = color.RGBA{R: 25, G: 35, B: 45, A: 230}
	panelBorderColor = color.RGBA{R: 70, G: 130, B: 180, A: 255}
)

// InfoPanel slides up at the bottom of the side panel while a tower is
// selected and offers upgrade and sell.
type InfoPanel struct {
	IsVisible     bool
	Target        types.EntityID
	X, Width      int
	fontFace      font.Face
	currentY      float64
	targetY       float64
	UpgradeButton *Button
	SellButton    *Button
	level         *LevelIndicator
}

func NewInfoPanel(x, width int, face font.Face) *InfoPanel {
	return &InfoPanel{
		X:             x,
		Width:         width,
		fontFace:      face,
		currentY:      config.WindowHeight,
		targetY:       config.WindowHeight,
		UpgradeButton: NewButton(image.Rectangle{}, "Upgrade"),
		SellButton:    NewButton(image.Rectangle{}, "Sell"),
		level:         NewLevelIndicator(0, 0),
	}
}

// SetTarget follows the snapshot's selection; nil hides the panel.
func (p *InfoPanel) SetTarget(t *app.TowerView) {
	if t == nil {
		p.targetY = config.WindowHeight
		return
	}
	p.Target = t.ID
	p.IsVisible = true
	p.targetY = config.WindowHeight - infoPanelHeight
}

// Update advances the slide animation.
func (p *InfoPanel) Update() {
	if p.currentY == p.targetY {
		return
	}
	diff := p.targetY - p.currentY
	switch {
	case math.Abs(diff) < animationSpeed:
		p.currentY = p.targetY
	case diff > 0:
		p.currentY += animationSpeed
	default:
		p.currentY -= animationSpeed
	}
	if p.currentY >= config.WindowHeight {
		p.IsVisible = false
		p.Target = ""
	}
}

func (p *InfoPanel) rect() image.Rectangle {
	return image.Rect(
		p.X+panelMargin,
		int(p.currentY)+panelMargin,
		p.X+p.Width-panelMargin,
		int(p.currentY)+infoPanelHeight-panelMargin,
	)
}

// Contains reports whether the point is on the visible panel.
func (p *InfoPanel) Contains(x, y int) bool {
	return p.IsVisible && image.Pt(x, y).In(p.rect())
}

// Click maps a click on the panel to a command. It returns nil when the
// click hit no enabled button.
func (p *InfoPanel) Click(x, y int) app.Msg {
	if !p.IsVisible || p.Target == "" {
		return nil
	}
	switch {
	case p.UpgradeButton.IsClicked(x, y):
		return app.LevelUpTowerMsg{ID: p.Target}
	case p.SellButton.IsClicked(x, y):
		return app.SellTowerMsg{ID: p.Target}
	}
	return nil
}

// layout positions the buttons for the current slide offset and tower state.
func (p *InfoPanel) layout(t *app.TowerView, gold int, locked bool) {
	r := p.rect()
	half := (r.Dx() - 30) / 2
	top := r.Max.Y - infoButtonH - 10
	p.UpgradeButton.Rect = image.Rect(r.Min.X+10, top, r.Min.X+10+half, top+infoButtonH)
	p.SellButton.Rect = image.Rect(r.Max.X-10-half, top, r.Max.X-10, top+infoButtonH)

	if t == nil {
		p.UpgradeButton.Disabled = true
		p.SellButton.Disabled = true
		return
	}
	p.UpgradeButton.Text = fmt.Sprintf("Up %d", t.UpgradeCost)
	if t.MaxLevel {
		p.UpgradeButton.Text = "Max"
	}
	p.UpgradeButton.Disabled = locked || t.MaxLevel || gold < t.UpgradeCost
	p.SellButton.Text = fmt.Sprintf("Sell %d", t.SellValue)
	p.SellButton.Disabled = locked
	p.UpgradeButton.Accent = render.TowerColor(t.Type)
}

// Draw renders the panel. t may be nil while the panel slides out.
func (p *InfoPanel) Draw(screen *ebiten.Image, s app.Snapshot, cursorX, cursorY int) {
	if !p.IsVisible && p.currentY >= config.WindowHeight {
		return
	}
	t := s.SelectedTower
	p.layout(t, s.Gold, s.Status.Terminal())

	r := p.rect()
	vector.DrawFilledRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), panelBgColor, true)
	vector.StrokeRect(screen, float32(r.Min.X), float32(r.Min.Y), float32(r.Dx()), float32(r.Dy()), 2, panelBorderColor, true)
	if t == nil {
		return
	}

	x, y := r.Min.X+10, r.Min.Y+20
	text.Draw(screen, t.Name, p.fontFace, x, y, render.TowerColor(t.Type))
	y += 8
	p.level.X, p.level.Y = float32(x), float32(y)
	p.level.Draw(screen, t.Level, config.MaxTowerLevel, s.Gold, t.UpgradeCost)
	y += levelRectHeight + costBarHeight + 6 + lineHeight

	lines := []string{
		fmt.Sprintf("Damage: %d", t.Damage),
		fmt.Sprintf("Range: %.0f", t.Range),
		fmt.Sprintf("Interval: %.0f ms", t.Interval),
	}
	if t.Area {
		lines = append(lines, "Area attack")
	}
	if t.AbilityName != "" {
		lines = append(lines, "Ability: "+t.AbilityName)
	}
	for _, line := range lines {
		text.Draw(screen, line, p.fontFace, x, y, config.TextLightColor)
		y += lineHeight
	}

	p.UpgradeButton.Draw(screen, p.fontFace, cursorX, cursorY)
	p.SellButton.Draw(screen, p.fontFace, cursorX, cursorY)
}
