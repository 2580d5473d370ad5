package ui

import (
	"image"
	"math"
	"testing"

	"code-defense/internal/app"
	"code-defense/internal/component"
	"code-defense/internal/defs"
	"code-defense/internal/types"
	"golang.org/x/image/font/basicfont"
)

func TestToRoman(t *testing.T) {
	tests := map[int]string{
		0:    "",
		-2:   "",
		1:    "I",
		4:    "IV",
		9:    "IX",
		10:   "X",
		14:   "XIV",
		40:   "XL",
		1994: "MCMXCIV",
	}
	for in, want := range tests {
		if got := toRoman(in); got != want {
			t.Errorf("toRoman(%d): expected %q, got %q", in, want, got)
		}
	}
}

func TestWaveLabel(t *testing.T) {
	if got := WaveLabel(0, 10); got != "" {
		t.Errorf("expected no label before the first wave, got %q", got)
	}
	if got := WaveLabel(3, 10); got != "III / X" {
		t.Errorf("expected %q, got %q", "III / X", got)
	}
	if got := WaveLabel(2, 0); got != "II" {
		t.Errorf("expected %q, got %q", "II", got)
	}
}

func TestPulse(t *testing.T) {
	if got := Pulse(0); math.Abs(got-1.3) > 1e-9 {
		t.Errorf("expected 1.3 right after a click, got %v", got)
	}
	if got := Pulse(-1); math.Abs(got-1.3) > 1e-9 {
		t.Errorf("expected negative elapsed to clamp, got %v", got)
	}
	if got := Pulse(5); got > 1.0001 {
		t.Errorf("expected the pulse to settle, got %v", got)
	}
	if Pulse(0.1) <= Pulse(0.2) {
		t.Error("expected the pulse to decay")
	}
}

func TestButtonHit(t *testing.T) {
	b := NewButton(image.Rect(10, 10, 60, 40), "Sell")
	if !b.IsClicked(10, 10) || !b.IsClicked(59, 39) {
		t.Error("expected corners inside the button to hit")
	}
	if b.Contains(60, 40) {
		t.Error("expected the max corner to be exclusive")
	}
	b.Disabled = true
	if b.IsClicked(20, 20) {
		t.Error("expected a disabled button to ignore clicks")
	}
}

func TestLifeColor(t *testing.T) {
	// 20 max, 15 left: 5 reserve, 10 critical, 5 empty
	var reserve, critical, empty int
	for j := 0; j < 20; j++ {
		switch LifeColor(j, 15, 20) {
		case lifeReserveColor:
			reserve++
		case lifeCriticalColor:
			critical++
		case lifeEmptyColor:
			empty++
		}
	}
	if reserve != 5 || critical != 10 || empty != 5 {
		t.Errorf("expected 5/10/5, got %d/%d/%d", reserve, critical, empty)
	}
	for j := 0; j < 8; j++ {
		if LifeColor(j, 8, 20) != lifeCriticalColor {
			t.Fatalf("expected all remaining lives critical at or below half, cell %d", j)
		}
	}
}

func TestAffordable(t *testing.T) {
	tests := []struct {
		gold, cost int
		want       float64
	}{
		{0, 100, 0},
		{50, 100, 0.5},
		{300, 100, 1},
		{10, 0, 1},
	}
	for _, tt := range tests {
		if got := Affordable(tt.gold, tt.cost); got != tt.want {
			t.Errorf("Affordable(%d, %d): expected %v, got %v", tt.gold, tt.cost, tt.want, got)
		}
	}
}

func TestSpeedButtonCycles(t *testing.T) {
	b := NewSpeedButton(0, 0, 10, []float64{1, 2, 4}, nil)
	got := []float64{b.Toggle(), b.Toggle(), b.Toggle()}
	want := []float64{2, 4, 1}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("expected %v, got %v", want, got)
		}
	}
	b.Sync(4)
	if b.CurrentState != 2 {
		t.Errorf("expected state 2 after sync, got %d", b.CurrentState)
	}
	b.Sync(3) // unknown multipliers leave the state alone
	if b.CurrentState != 2 {
		t.Errorf("expected state to stay 2, got %d", b.CurrentState)
	}
}

func TestShopPanelClick(t *testing.T) {
	p := NewShopPanel(960, 40, 220, basicfont.Face7x13)
	order := p.Types()
	if len(order) != len(defs.TowerOrder) {
		t.Fatalf("expected %d entries, got %d", len(defs.TowerOrder), len(order))
	}

	first := p.entries[0].Rect
	msg := p.Click(first.Min.X+5, first.Min.Y+5, "")
	if got, ok := msg.(app.SelectTowerTypeMsg); !ok || got.Type != order[0] {
		t.Fatalf("expected arming %s, got %#v", order[0], msg)
	}
	msg = p.Click(first.Min.X+5, first.Min.Y+5, order[0])
	if got, ok := msg.(app.SelectTowerTypeMsg); !ok || got.Type != "" {
		t.Fatalf("expected disarming, got %#v", msg)
	}
	if msg := p.Click(0, 0, ""); msg != nil {
		t.Errorf("expected no command outside the shop, got %#v", msg)
	}
}

func TestInfoPanelClick(t *testing.T) {
	p := NewInfoPanel(960, 220, basicfont.Face7x13)
	tower := &app.TowerView{ID: types.EntityID("dev-1"), Type: defs.TowerJuniorDev, Level: 1, UpgradeCost: 50, SellValue: 70}
	p.SetTarget(tower)
	for i := 0; i < 50; i++ {
		p.Update()
	}
	p.layout(tower, 100, false)

	up := p.UpgradeButton.Rect
	msg := p.Click(up.Min.X+2, up.Min.Y+2)
	if got, ok := msg.(app.LevelUpTowerMsg); !ok || got.ID != tower.ID {
		t.Fatalf("expected level-up for %s, got %#v", tower.ID, msg)
	}
	sell := p.SellButton.Rect
	msg = p.Click(sell.Min.X+2, sell.Min.Y+2)
	if got, ok := msg.(app.SellTowerMsg); !ok || got.ID != tower.ID {
		t.Fatalf("expected sell for %s, got %#v", tower.ID, msg)
	}

	p.layout(tower, 10, false)
	if msg := p.Click(up.Min.X+2, up.Min.Y+2); msg != nil {
		t.Errorf("expected upgrade disabled without gold, got %#v", msg)
	}
	p.layout(tower, 100, true)
	if msg := p.Click(sell.Min.X+2, sell.Min.Y+2); msg != nil {
		t.Errorf("expected sell disabled after the run ended, got %#v", msg)
	}

	p.SetTarget(nil)
	for i := 0; i < 50; i++ {
		p.Update()
	}
	if p.IsVisible || p.Target != "" {
		t.Error("expected the panel to hide once it slid out")
	}
}

func TestHUDClick(t *testing.T) {
	h := NewHUD(basicfont.Face7x13)
	ix, iy := int(h.Indicator.X), int(h.Indicator.Y)
	if _, ok := h.Click(ix, iy, app.Snapshot{Status: component.StatusIdle}).(app.StartMsg); !ok {
		t.Error("expected the indicator to start an idle game")
	}
	if _, ok := h.Click(ix, iy, app.Snapshot{Status: component.StatusDefeat}).(app.ResetMsg); !ok {
		t.Error("expected the indicator to reset a finished game")
	}
	if msg := h.Click(ix, iy, app.Snapshot{Status: component.StatusPlaying}); msg != nil {
		t.Errorf("expected no command while playing, got %#v", msg)
	}

	px, py := int(h.Pause.X), int(h.Pause.Y)
	if _, ok := h.Click(px, py, app.Snapshot{Status: component.StatusPlaying}).(app.PauseMsg); !ok {
		t.Error("expected the pause button to pause")
	}
	if _, ok := h.Click(px, py, app.Snapshot{Status: component.StatusPaused}).(app.ResumeMsg); !ok {
		t.Error("expected the pause button to resume")
	}

	sx, sy := int(h.Speed.X), int(h.Speed.Y)
	msg, ok := h.Click(sx, sy, app.Snapshot{Status: component.StatusPlaying}).(app.SetSpeedMsg)
	if !ok || msg.Multiplier != 2 {
		t.Errorf("expected speed x2, got %#v", msg)
	}
}
