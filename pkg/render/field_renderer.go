// pkg/render/field_renderer.go
package render

import (
	"image/color"
	"math"

	"code-defense/internal/app"
	"code-defense/internal/config"
	"code-defense/internal/defs"
	"code-defense/pkg/path"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
)

// pathGradient colours successive path segments.
var pathGradient = []color.RGBA{
	{255, 0, 255, 255},
	{255, 0, 136, 255},
	{255, 136, 0, 255},
	{255, 255, 0, 255},
	{0, 255, 255, 255},
}

// FieldRenderer draws the playfield. The static layer (background, grid and
// path) is rendered once per level into mapImage.
type FieldRenderer struct {
	width, height int
	mapImage      *ebiten.Image
	fontFace      font.Face
	levelID       int
	fillVs        []ebiten.Vertex
	fillIs        []uint16
	whiteImg      *ebiten.Image
}

func NewFieldRenderer(width, height int) *FieldRenderer {
	white := ebiten.NewImage(1, 1)
	white.Fill(color.White)
	return &FieldRenderer{
		width:    width,
		height:   height,
		mapImage: ebiten.NewImage(width, height),
		fontFace: basicfont.Face7x13,
		levelID:  -1,
		whiteImg: white,
	}
}

// RenderMapImage redraws the static layer for the given route.
func (r *FieldRenderer) RenderMapImage(route []path.Point) {
	r.mapImage.Clear()
	r.mapImage.Fill(config.BackgroundColor)

	for x := 0; x <= r.width; x += config.GridSize {
		vector.StrokeLine(r.mapImage, float32(x), 0, float32(x), float32(r.height), 1, config.GridColor, false)
	}
	for y := 0; y <= r.height; y += config.GridSize {
		vector.StrokeLine(r.mapImage, 0, float32(y), float32(r.width), float32(y), 1, config.GridColor, false)
	}

	for i := 0; i+1 < len(route); i++ {
		a, b := route[i], route[i+1]
		c := pathGradient[i%len(pathGradient)]
		vector.StrokeLine(r.mapImage, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y),
			config.PathWidth, WithAlpha(DarkenColor(c), 200), true)
		vector.StrokeLine(r.mapImage, float32(a.X), float32(a.Y), float32(b.X), float32(b.Y), 2, c, true)
	}
	for i, p := range route {
		// joints, so wide segments meet without notches
		c := pathGradient[min(i, len(pathGradient)-1)]
		vector.DrawFilledCircle(r.mapImage, float32(p.X), float32(p.Y), config.PathWidth/2, WithAlpha(DarkenColor(c), 200), true)
	}
	if len(route) > 0 {
		start, end := route[0], route[len(route)-1]
		r.drawMarker(r.mapImage, start, config.PortColor)
		r.drawMarker(r.mapImage, end, config.CoreColor)
	}
}

// drawMarker draws a diamond at p.
func (r *FieldRenderer) drawMarker(dst *ebiten.Image, p path.Point, c color.RGBA) {
	const size = 14
	var vp vector.Path
	vp.MoveTo(float32(p.X), float32(p.Y-size))
	vp.LineTo(float32(p.X+size), float32(p.Y))
	vp.LineTo(float32(p.X), float32(p.Y+size))
	vp.LineTo(float32(p.X-size), float32(p.Y))
	vp.Close()

	r.fillVs, r.fillIs = vp.AppendVerticesAndIndicesForFilling(r.fillVs[:0], r.fillIs[:0])
	for i := range r.fillVs {
		r.fillVs[i].SrcX = 0
		r.fillVs[i].SrcY = 0
		r.fillVs[i].ColorR = float32(c.R) / 255
		r.fillVs[i].ColorG = float32(c.G) / 255
		r.fillVs[i].ColorB = float32(c.B) / 255
		r.fillVs[i].ColorA = float32(c.A) / 255
	}
	dst.DrawTriangles(r.fillVs, r.fillIs, r.whiteImg, &ebiten.DrawTrianglesOptions{AntiAlias: true})
	light := LightenColor(c, 40)
	vector.StrokeLine(dst, float32(p.X), float32(p.Y-size), float32(p.X+size), float32(p.Y), 1.5, light, true)
	vector.StrokeLine(dst, float32(p.X+size), float32(p.Y), float32(p.X), float32(p.Y+size), 1.5, light, true)
	vector.StrokeLine(dst, float32(p.X), float32(p.Y+size), float32(p.X-size), float32(p.Y), 1.5, light, true)
	vector.StrokeLine(dst, float32(p.X-size), float32(p.Y), float32(p.X), float32(p.Y-size), 1.5, light, true)
}

// Draw renders one frame of s onto dst.
func (r *FieldRenderer) Draw(dst *ebiten.Image, s app.Snapshot) {
	if s.LevelID != r.levelID {
		r.RenderMapImage(s.Path)
		r.levelID = s.LevelID
	}
	dst.DrawImage(r.mapImage, nil)

	r.drawSlots(dst, s)
	if s.SelectedTower != nil {
		t := s.SelectedTower
		vector.DrawFilledCircle(dst, float32(t.Pos.X), float32(t.Pos.Y), float32(t.Range), config.RangeColor, true)
		vector.StrokeCircle(dst, float32(t.Pos.X), float32(t.Pos.Y), float32(t.Range), 1, WithAlpha(TowerColor(t.Type), 120), true)
	}
	for _, t := range s.Towers {
		r.drawTower(dst, t, s.SelectedTower != nil && s.SelectedTower.ID == t.ID)
	}
	for _, e := range s.Enemies {
		r.drawEnemy(dst, e)
	}
	for _, fx := range s.Effects {
		c := TowerColor(fx.Tower)
		alpha := uint8(255 * max(0, min(1, fx.Remaining/config.AttackEffectTTL)))
		vector.StrokeLine(dst, float32(fx.From.X), float32(fx.From.Y), float32(fx.To.X), float32(fx.To.Y), 2, WithAlpha(c, alpha), true)
		vector.StrokeCircle(dst, float32(fx.To.X), float32(fx.To.Y), 8, 2, WithAlpha(c, alpha), true)
	}
}

func (r *FieldRenderer) drawSlots(dst *ebiten.Image, s app.Snapshot) {
	armed := s.SelectedType != ""
	for _, slot := range s.Slots {
		c := config.SlotColor
		switch {
		case slot.Occupied:
			c = config.SlotTakenColor
		case slot.Hovered && armed:
			c = config.SlotHoverColor
		}
		vector.StrokeCircle(dst, float32(slot.Pos.X), float32(slot.Pos.Y), config.SlotRadius, 2, c, true)
		if slot.Hovered && armed && !slot.Occupied {
			vector.DrawFilledCircle(dst, float32(slot.Pos.X), float32(slot.Pos.Y), config.SlotRadius, WithAlpha(TowerColor(s.SelectedType), 60), true)
		}
	}
}

func (r *FieldRenderer) drawTower(dst *ebiten.Image, t app.TowerView, selected bool) {
	c := TowerColor(t.Type)
	x, y := float32(t.Pos.X), float32(t.Pos.Y)
	vector.DrawFilledRect(dst, x-config.TowerRadius, y-config.TowerRadius, 2*config.TowerRadius, 2*config.TowerRadius, DarkenColor(c), true)
	outline := c
	if selected {
		outline = config.SelectionColor
	}
	vector.StrokeRect(dst, x-config.TowerRadius, y-config.TowerRadius, 2*config.TowerRadius, 2*config.TowerRadius, 2, outline, true)

	label := string(towerInitial(t))
	b := text.BoundString(r.fontFace, label)
	text.Draw(dst, label, r.fontFace, int(x)-b.Dx()/2, int(y)+b.Dy()/2-1, LightenColor(c, 40))

	// level pips under the tower
	for i := 0; i < t.Level; i++ {
		px := x - 8 + float32(i)*8
		vector.DrawFilledRect(dst, px, y+config.TowerRadius+3, 6, 3, c, false)
	}
}

func (r *FieldRenderer) drawEnemy(dst *ebiten.Image, e app.EnemyView) {
	c := BugColor(e.Type)
	radius := float32(config.EnemyRadius)
	if e.Boss {
		radius = config.BossRadius
	}
	x, y := float32(e.Pos.X), float32(e.Pos.Y)
	vector.DrawFilledCircle(dst, x, y, radius, c, true)
	if e.Slowed {
		vector.StrokeCircle(dst, x, y, radius+3, 2, TowerColors[defs.TowerUIDesigner], true)
	}
	if e.Boss {
		// jagged crown marks the boss
		for i := 0; i < 6; i++ {
			a := float64(i) * math.Pi / 3
			ox, oy := float32(math.Cos(a)), float32(math.Sin(a))
			vector.StrokeLine(dst, x+ox*radius, y+oy*radius, x+ox*(radius+6), y+oy*(radius+6), 2, config.DangerColor, true)
		}
	}

	if e.MaxHealth <= 0 {
		return
	}
	ratio := float64(e.Health) / float64(e.MaxHealth)
	bx := x - config.HealthBarWidth/2
	by := y - radius - 8
	vector.DrawFilledRect(dst, bx, by, config.HealthBarWidth, config.HealthBarHeight, config.HealthBackColor, false)
	vector.DrawFilledRect(dst, bx, by, float32(config.HealthBarWidth*ratio), config.HealthBarHeight, HealthColor(ratio), false)
}

func towerInitial(t app.TowerView) rune {
	for _, r := range t.Name {
		return r
	}
	for _, r := range string(t.Type) {
		return r
	}
	return '?'
}
