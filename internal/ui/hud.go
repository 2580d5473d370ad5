// internal/ui/hud.go
package ui

import (
	"image/color"

	"code-defense/internal/app"
	"code-defense/internal/component"
	"code-defense/internal/config"
	"code-defense/pkg/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// HUD is the top bar: lives, counters, wave and the run controls.
type HUD struct {
	fontFace  font.Face
	printer   *message.Printer
	Lives     *LivesIndicator
	Wave      *WaveIndicator
	Indicator *StateIndicator
	Speed     *SpeedButton
	Pause     *PauseButton
}

func NewHUD(face font.Face) *HUD {
	mid := float32(config.HUDHeight / 2)
	return &HUD{
		fontFace:  face,
		printer:   message.NewPrinter(language.English),
		Lives:     NewLivesIndicator(10, 4),
		Wave:      NewWaveIndicator(config.ScreenWidth/2+120, config.HUDHeight/2+5),
		Indicator: NewStateIndicator(config.WindowWidth-config.IndicatorOffsetX, mid, config.IndicatorRadius),
		Speed: NewSpeedButton(config.WindowWidth-config.SpeedButtonOffset, mid, config.SpeedButtonSize,
			config.SpeedMultipliers, config.SpeedButtonColors),
		Pause: NewPauseButton(config.WindowWidth-config.SpeedButtonOffset-40, mid, 8,
			config.WarningColor, config.SuccessColor),
	}
}

// Update syncs the controls with the game.
func (h *HUD) Update(s app.Snapshot) {
	h.Pause.SetPaused(s.Status == component.StatusPaused)
	h.Speed.Sync(s.Speed)
}

// Click maps a click on a HUD control to a command, nil if none was hit.
func (h *HUD) Click(x, y int, s app.Snapshot) app.Msg {
	switch {
	case h.Indicator.IsClicked(x, y):
		h.Indicator.HandleClick()
		switch {
		case s.Status == component.StatusIdle:
			return app.StartMsg{}
		case s.Status.Terminal():
			return app.ResetMsg{}
		}
	case h.Speed.IsClicked(x, y):
		return app.SetSpeedMsg{Multiplier: h.Speed.Toggle()}
	case h.Pause.IsClicked(x, y):
		switch s.Status {
		case component.StatusPlaying:
			h.Pause.TogglePause()
			return app.PauseMsg{}
		case component.StatusPaused:
			h.Pause.TogglePause()
			return app.ResumeMsg{}
		}
	}
	return nil
}

// Contains reports whether y falls inside the bar.
func (h *HUD) Contains(_, y int) bool {
	return y >= 0 && y < config.HUDHeight
}

func (h *HUD) Draw(screen *ebiten.Image, s app.Snapshot) {
	vector.DrawFilledRect(screen, 0, 0, config.WindowWidth, config.HUDHeight, config.PanelColor, false)
	vector.StrokeLine(screen, 0, config.HUDHeight-1, config.WindowWidth, config.HUDHeight-1, 1, panelBorderColor, false)

	h.Lives.Draw(screen, s.Lives, h.maxLives(s))
	x := int(h.Lives.X+h.Lives.Width()) + 16
	baseline := config.HUDHeight/2 + 5
	text.Draw(screen, h.printer.Sprintf("Gold %d", s.Gold), h.fontFace, x, baseline, config.WarningColor)
	text.Draw(screen, h.printer.Sprintf("Score %d", s.Score), h.fontFace, x+110, baseline, config.TextLightColor)
	text.Draw(screen, s.LevelName, h.fontFace, x+240, baseline, config.CoreColor)

	h.Wave.Draw(screen, h.fontFace, s.Wave, s.TotalWaves)
	if s.NextWaveIn > 0 {
		text.Draw(screen, h.printer.Sprintf("next wave %.1fs", s.NextWaveIn/1000), h.fontFace, h.Wave.X+60, baseline, config.TextLightColor)
	} else if s.Queued > 0 || len(s.Enemies) > 0 {
		front := s.FrontLine()
		text.Draw(screen, h.printer.Sprintf("queued %d  front %.0f%%", s.Queued, front*100), h.fontFace, h.Wave.X+60, baseline, render.HealthColor(1-front))
	}

	h.Pause.Draw(screen)
	h.Speed.Draw(screen)
	h.Indicator.Draw(screen, statusColor(s.Status))
}

// maxLives is the level's starting lives, never less than what is left.
func (h *HUD) maxLives(s app.Snapshot) int {
	return max(s.Lives, s.InitialLives)
}

func statusColor(s component.Status) color.Color {
	if c, ok := config.StatusColors[string(s)]; ok {
		return c
	}
	return color.White
}
