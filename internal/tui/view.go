// internal/tui/view.go
package tui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"code-defense/internal/app"
	"code-defense/internal/component"
	"code-defense/internal/config"
	"code-defense/internal/defs"
	"code-defense/pkg/path"
)

// One terminal cell covers CellWidth x CellHeight pixels of the playfield.
const (
	CellWidth  = 20.0
	CellHeight = 40.0

	MapTop   = 1 // row 0 is the HUD
	MapCols  = int(config.ScreenWidth / CellWidth)
	MapRows  = int(config.ScreenHeight / CellHeight)
	PanelCol = MapCols + 2
)

var (
	styleDefault = tcell.StyleDefault
	styleHUD     = tcell.StyleDefault.Foreground(tcell.ColorBlack).Background(tcell.ColorTeal)
	stylePath    = tcell.StyleDefault.Foreground(tcell.ColorFuchsia)
	styleSlot    = tcell.StyleDefault.Foreground(tcell.ColorDarkCyan)
	styleCursor  = tcell.StyleDefault.Reverse(true)
	styleTower   = tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	styleBug     = tcell.StyleDefault.Foreground(tcell.ColorRed)
	styleBoss    = tcell.StyleDefault.Foreground(tcell.ColorRed).Bold(true)
	styleSlowed  = tcell.StyleDefault.Foreground(tcell.ColorBlue)
	styleEffect  = tcell.StyleDefault.Foreground(tcell.ColorYellow)
	styleDim     = tcell.StyleDefault.Foreground(tcell.ColorGray)
)

var towerGlyphs = map[defs.TowerType]rune{
	defs.TowerJuniorDev:       'J',
	defs.TowerSeniorArchitect: 'A',
	defs.TowerUIDesigner:      'U',
	defs.TowerDataEngineer:    'D',
	defs.TowerSecurityExpert:  'S',
}

var bugGlyphs = map[defs.EnemyType]rune{
	defs.EnemyTypo:        't',
	defs.EnemyNullPointer:  'n',
	defs.EnemyMemoryLeak:   'm',
	defs.EnemySystemCrash:  'X',
}

var statusLabels = map[component.Status]string{
	component.StatusIdle:    "READY  [s]tart",
	component.StatusPlaying: "PLAYING",
	component.StatusPaused:  "PAUSED",
	component.StatusVictory: "ALL BUGS FIXED",
	component.StatusDefeat:  "SYSTEM DOWN",
}

// Renderer draws snapshots on a tcell screen.
type Renderer struct {
	screen  tcell.Screen
	printer *message.Printer
}

func NewRenderer(screen tcell.Screen) *Renderer {
	return &Renderer{
		screen:  screen,
		printer: message.NewPrinter(language.English),
	}
}

// CellOf maps a playfield point to a screen cell.
func CellOf(p path.Point) (int, int) {
	x := min(max(int(p.X/CellWidth), 0), MapCols-1)
	y := min(max(int(p.Y/CellHeight), 0), MapRows-1)
	return x, y + MapTop
}

// PointOf maps a screen cell to the playfield point at its centre, and reports
// whether the cell is on the map.
func PointOf(x, y int) (path.Point, bool) {
	y -= MapTop
	if x < 0 || y < 0 || x >= MapCols || y >= MapRows {
		return path.Point{}, false
	}
	return path.Pt((float64(x)+0.5)*CellWidth, (float64(y)+0.5)*CellHeight), true
}

// Draw renders s with the keyboard cursor on slot cursor.
func (r *Renderer) Draw(s app.Snapshot, cursor int, msg string) {
	r.screen.Clear()
	r.drawHUD(s)
	r.drawPath(s.Path)
	r.drawSlots(s, cursor)
	r.drawEffects(s.Effects)
	for _, t := range s.Towers {
		x, y := CellOf(t.Pos)
		style := styleTower
		if s.SelectedTower != nil && s.SelectedTower.ID == t.ID {
			style = style.Reverse(true)
		}
		r.screen.SetContent(x, y, towerGlyphs[t.Type], nil, style)
	}
	for _, e := range s.Enemies {
		x, y := CellOf(e.Pos)
		style := styleBug
		switch {
		case e.Boss:
			style = styleBoss
		case e.Slowed:
			style = styleSlowed
		}
		r.screen.SetContent(x, y, bugGlyphs[e.Type], nil, style)
	}
	r.drawPanel(s)
	r.print(0, MapTop+MapRows+1, styleDim, msg)
	r.screen.Show()
}

func (r *Renderer) drawHUD(s app.Snapshot) {
	w, _ := r.screen.Size()
	for x := 0; x < w; x++ {
		r.screen.SetContent(x, 0, ' ', nil, styleHUD)
	}
	hud := r.printer.Sprintf("%s | Gold %d | Lives %d | Score %d | Wave %d/%d | x%g | %s",
		s.LevelName, s.Gold, s.Lives, s.Score, s.Wave, s.TotalWaves, s.Speed, statusLabels[s.Status])
	if s.NextWaveIn > 0 {
		hud += fmt.Sprintf(" | next wave %.1fs", s.NextWaveIn/1000)
	} else if s.Queued > 0 || len(s.Enemies) > 0 {
		hud += fmt.Sprintf(" | queued %d | front %.0f%%", s.Queued, s.FrontLine()*100)
	}
	r.print(1, 0, styleHUD, hud)
}

func (r *Renderer) drawPath(route []path.Point) {
	for i := 1; i < len(route); i++ {
		a, b := route[i-1], route[i]
		steps := int(a.Distance(b)/(CellWidth/2)) + 1
		for k := 0; k <= steps; k++ {
			p := a.MoveToward(b, float64(k)*CellWidth/2)
			x, y := CellOf(p)
			r.screen.SetContent(x, y, '.', nil, stylePath)
		}
	}
	if len(route) > 0 {
		x, y := CellOf(route[0])
		r.screen.SetContent(x, y, '>', nil, stylePath)
		x, y = CellOf(route[len(route)-1])
		r.screen.SetContent(x, y, '#', nil, stylePath.Bold(true))
	}
}

func (r *Renderer) drawSlots(s app.Snapshot, cursor int) {
	for i, slot := range s.Slots {
		x, y := CellOf(slot.Pos)
		ch := 'o'
		if slot.Occupied {
			ch = '_'
		}
		style := styleSlot
		if i == cursor {
			style = styleCursor
		}
		r.screen.SetContent(x, y, ch, nil, style)
	}
}

func (r *Renderer) drawEffects(effects []component.AttackEffect) {
	for _, fx := range effects {
		x, y := CellOf(fx.To)
		r.screen.SetContent(x, y, '*', nil, styleEffect)
	}
}

func (r *Renderer) drawPanel(s app.Snapshot) {
	row := MapTop
	r.print(PanelCol, row, styleDefault, "Developers")
	row++
	for i, t := range defs.TowerOrder {
		def, ok := defs.TowerLibrary[t]
		if !ok {
			continue
		}
		style := styleDefault
		switch {
		case s.SelectedType == t:
			style = styleCursor
		case def.Cost > s.Gold:
			style = styleDim
		}
		r.print(PanelCol, row, style, r.printer.Sprintf("%d %c %-10.10s %d", i+1, towerGlyphs[t], def.Name, def.Cost))
		row++
	}

	row++
	if t := s.SelectedTower; t != nil {
		r.print(PanelCol, row, styleTower, fmt.Sprintf("%s L%d", t.Name, t.Level))
		r.print(PanelCol, row+1, styleDefault, fmt.Sprintf("dmg %d rng %.0f", t.Damage, t.Range))
		r.print(PanelCol, row+2, styleDefault, fmt.Sprintf("every %.0fms", t.Interval))
		if t.AbilityName != "" {
			r.print(PanelCol, row+3, styleDefault, t.AbilityName)
		}
		if t.MaxLevel {
			r.print(PanelCol, row+4, styleDim, "[u] max level")
		} else {
			r.print(PanelCol, row+4, styleDefault, r.printer.Sprintf("[u] upgrade %d", t.UpgradeCost))
		}
		r.print(PanelCol, row+5, styleDefault, r.printer.Sprintf("[x] sell %d", t.SellValue))
	}

	_, h := r.screen.Size()
	r.print(0, h-1, styleDim, "1-5 pick  tab move  enter place/select  s start  p pause  r reset  f speed  n level  q quit")
}

func (r *Renderer) print(x, y int, style tcell.Style, text string) {
	for _, ch := range text {
		r.screen.SetContent(x, y, ch, nil, style)
		x++
	}
}
