// internal/state/game_state.go
package state

import (
	"fmt"
	"image/color"
	"time"

	"code-defense/internal/app"
	"code-defense/internal/component"
	"code-defense/internal/config"
	"code-defense/internal/defs"
	"code-defense/internal/ui"
	"code-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var digitKeys = []ebiten.Key{
	ebiten.Key1, ebiten.Key2, ebiten.Key3, ebiten.Key4, ebiten.Key5,
	ebiten.Key6, ebiten.Key7, ebiten.Key8, ebiten.Key9,
}

// GameState is the play screen: HUD on top, the field below it and the
// shop and inspector on the right.
type GameState struct {
	sm            *StateMachine
	env           *Env
	field         *render.FieldRenderer
	playfield     *ebiten.Image
	hud           *ui.HUD
	shop          *ui.ShopPanel
	infoPanel     *ui.InfoPanel
	snap          app.Snapshot
	lastClickTime time.Time
	lastCursor    [2]int
}

func NewGameState(sm *StateMachine, env *Env) *GameState {
	gs := &GameState{
		sm:         sm,
		env:        env,
		field:      render.NewFieldRenderer(config.ScreenWidth, config.ScreenHeight),
		playfield:  ebiten.NewImage(config.ScreenWidth, config.ScreenHeight),
		hud:        ui.NewHUD(env.Face),
		shop:       ui.NewShopPanel(config.ScreenWidth, config.HUDHeight, config.PanelWidth, env.Face),
		infoPanel:  ui.NewInfoPanel(config.ScreenWidth, config.PanelWidth, env.Face),
		lastCursor: [2]int{-1, -1},
	}
	gs.refresh()
	return gs
}

func (g *GameState) Enter() {}

// refresh takes a new snapshot and points the widgets at it.
func (g *GameState) refresh() {
	g.snap = g.env.Game.Snapshot()
	g.hud.Update(g.snap)
	g.infoPanel.SetTarget(g.snap.SelectedTower)
}

func (g *GameState) Update(deltaTime float64) {
	g.infoPanel.Update()
	g.handleKeys()
	g.handleMouse()

	g.env.Game.Update(deltaTime)
	if g.env.Telemetry != nil {
		g.env.Telemetry.Frame(deltaTime)
	}
	g.refresh()

	if g.snap.Status == component.StatusPaused {
		g.sm.SetState(NewPauseState(g.sm, g))
	}
}

func (g *GameState) handleKeys() {
	game := g.env.Game
	order := g.shop.Types()
	for i, k := range digitKeys {
		if i < len(order) && inpututil.IsKeyJustPressed(k) {
			game.Submit(app.SelectTowerTypeMsg{Type: order[i]})
		}
	}

	switch {
	case inpututil.IsKeyJustPressed(ebiten.Key0), inpututil.IsKeyJustPressed(ebiten.KeyEscape):
		game.Submit(app.SelectTowerTypeMsg{})
		game.Submit(app.SelectTowerMsg{})
	case inpututil.IsKeyJustPressed(ebiten.KeySpace):
		game.Submit(app.StartMsg{})
	case inpututil.IsKeyJustPressed(ebiten.KeyP), inpututil.IsKeyJustPressed(ebiten.KeyF9):
		game.Submit(app.PauseMsg{})
	case inpututil.IsKeyJustPressed(ebiten.KeyR):
		game.Submit(app.ResetMsg{})
	case inpututil.IsKeyJustPressed(ebiten.KeyF):
		game.Submit(app.SetSpeedMsg{Multiplier: g.hud.Speed.Toggle()})
	case inpututil.IsKeyJustPressed(ebiten.KeyN):
		if next, ok := defs.NextLevel(g.snap.LevelID); ok {
			game.Submit(app.SelectLevelMsg{ID: next})
		}
	case inpututil.IsKeyJustPressed(ebiten.KeyM):
		g.sm.SetState(NewMenuState(g.sm, g.env))
	}

	if sel := g.snap.SelectedTower; sel != nil {
		if inpututil.IsKeyJustPressed(ebiten.KeyU) {
			game.Submit(app.LevelUpTowerMsg{ID: sel.ID})
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyX) || inpututil.IsKeyJustPressed(ebiten.KeyDelete) {
			game.Submit(app.SellTowerMsg{ID: sel.ID})
		}
	}
}

func (g *GameState) handleMouse() {
	game := g.env.Game
	x, y := ebiten.CursorPosition()
	if cur := [2]int{x, y}; cur != g.lastCursor {
		g.lastCursor = cur
		if onField(x, y) {
			game.Submit(app.HoverMsg{X: float64(x), Y: float64(y - config.HUDHeight)})
		}
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight) {
		game.Submit(app.SelectTowerTypeMsg{})
		game.Submit(app.SelectTowerMsg{})
	}

	if !inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return
	}
	if time.Since(g.lastClickTime) < config.ClickCooldown*time.Millisecond {
		return
	}
	g.lastClickTime = time.Now()

	// UI first, then the field.
	if msg := g.uiClick(x, y); msg != nil {
		game.Submit(msg)
		return
	}
	if onField(x, y) {
		game.Submit(app.ClickMsg{X: float64(x), Y: float64(y - config.HUDHeight)})
	}
}

func (g *GameState) uiClick(x, y int) app.Msg {
	switch {
	case g.hud.Contains(x, y):
		return g.hud.Click(x, y, g.snap)
	case g.infoPanel.Contains(x, y):
		return g.infoPanel.Click(x, y)
	case x >= config.ScreenWidth:
		return g.shop.Click(x, y, g.snap.SelectedType)
	}
	return nil
}

func onField(x, y int) bool {
	return x >= 0 && x < config.ScreenWidth && y >= config.HUDHeight && y < config.HUDHeight+config.ScreenHeight
}

func (g *GameState) Draw(screen *ebiten.Image) {
	screen.Fill(config.PanelColor)

	g.field.Draw(g.playfield, g.snap)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(0, config.HUDHeight)
	screen.DrawImage(g.playfield, op)

	cx, cy := ebiten.CursorPosition()
	g.shop.Draw(screen, g.snap)
	g.infoPanel.Draw(screen, g.snap, cx, cy)
	g.hud.Draw(screen, g.snap)
	g.drawBanner(screen)

	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("%.0f FPS", ebiten.ActualFPS()), 4, config.WindowHeight-16)
}

// drawBanner explains what to do when the field is not running.
func (g *GameState) drawBanner(screen *ebiten.Image) {
	var label string
	c := color.Color(config.TextLightColor)
	switch g.snap.Status {
	case component.StatusIdle:
		label = "press space or the status light to start"
	case component.StatusVictory:
		label, c = "all bugs fixed! r to replay, n for the next level", config.SuccessColor
	case component.StatusDefeat:
		label, c = "production is down. r to retry", config.DangerColor
	default:
		return
	}
	face := g.env.Face
	b := text.BoundString(face, label)
	x := (config.ScreenWidth - b.Dx()) / 2
	y := config.HUDHeight + 40
	vector.DrawFilledRect(screen, float32(x-12), float32(y-b.Dy()-8), float32(b.Dx()+24), float32(b.Dy()+18), color.RGBA{0, 0, 0, 180}, false)
	text.Draw(screen, label, face, x, y, c)
}

func (g *GameState) Exit() {}
