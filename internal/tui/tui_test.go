package tui

import (
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"

	"code-defense/internal/app"
	"code-defense/internal/component"
	"code-defense/internal/defs"
	"code-defense/pkg/path"
)

func newScreen(t *testing.T) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("init screen: %v", err)
	}
	screen.SetSize(100, 24)
	t.Cleanup(screen.Fini)
	return screen
}

func row(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		ch, _, _, _ := screen.GetContent(x, y)
		b.WriteRune(ch)
	}
	return b.String()
}

func TestCellMapping(t *testing.T) {
	x, y := CellOf(path.Pt(120, 280))
	if x != 6 || y != 8 {
		t.Fatalf("expected (6,8), got (%d,%d)", x, y)
	}
	p, ok := PointOf(x, y)
	if !ok || p.X != 130 || p.Y != 300 {
		t.Fatalf("expected cell centre (130,300), got %v ok=%v", p, ok)
	}
	if _, ok := PointOf(x, 0); ok {
		t.Fatal("the HUD row is not on the map")
	}
	if x, y := CellOf(path.Pt(5000, -10)); x != MapCols-1 || y != MapTop {
		t.Fatalf("expected clamped cell, got (%d,%d)", x, y)
	}
}

func TestDrawSnapshot(t *testing.T) {
	screen := newScreen(t)
	g, err := app.NewGame(1)
	if err != nil {
		t.Fatal(err)
	}
	g.PlaceTower(defs.TowerJuniorDev, 0)
	g.Start()
	g.Update(1.0 / 60)

	s := g.Snapshot()
	s.Gold = 1250
	NewRenderer(screen).Draw(s, 1, "hello")

	hud := row(screen, 0)
	if !strings.Contains(hud, "Gold 1,250") || !strings.Contains(hud, "Lives 20") || !strings.Contains(hud, "Wave 1/4") {
		t.Fatalf("unexpected HUD %q", hud)
	}

	x, y := CellOf(g.Slots[0].Pos)
	if ch, _, _, _ := screen.GetContent(x, y); ch != 'J' {
		t.Errorf("expected junior dev glyph at slot 0, got %q", ch)
	}
	x, y = CellOf(g.Slots[1].Pos)
	if _, _, style, _ := screen.GetContent(x, y); style != styleCursor {
		t.Errorf("expected cursor on slot 1")
	}
	x, y = CellOf(s.Enemies[0].Pos)
	if ch, _, _, _ := screen.GetContent(x, y); ch != 't' {
		t.Errorf("expected a typo glyph at the spawn, got %q", ch)
	}
	if !strings.Contains(row(screen, MapTop+MapRows+1), "hello") {
		t.Error("expected the message line")
	}
}

func TestControllerKeys(t *testing.T) {
	g, err := app.NewGame(1)
	if err != nil {
		t.Fatal(err)
	}
	var c Controller
	key := func(r rune) []app.Msg {
		msgs, quit := c.Handle(tcell.NewEventKey(tcell.KeyRune, r, tcell.ModNone), g.Snapshot())
		if quit {
			t.Fatalf("unexpected quit on %q", r)
		}
		for _, m := range msgs {
			g.Submit(m)
		}
		g.Update(0)
		return msgs
	}

	key('1')
	if g.SelectedType() != defs.TowerJuniorDev {
		t.Fatalf("expected junior dev armed, got %q", g.SelectedType())
	}
	msgs, _ := c.Handle(tcell.NewEventKey(tcell.KeyTab, 0, tcell.ModNone), g.Snapshot())
	if c.Cursor != 1 || len(msgs) != 1 {
		t.Fatalf("expected cursor on slot 1 with a hover, got %d %v", c.Cursor, msgs)
	}
	msgs, _ = c.Handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), g.Snapshot())
	for _, m := range msgs {
		g.Apply(m)
	}
	if !g.Slots[1].Occupied || g.Gold() != 400 {
		t.Fatalf("expected a tower on slot 1, gold=%d", g.Gold())
	}
	msgs, _ = c.Handle(tcell.NewEventKey(tcell.KeyEnter, 0, tcell.ModNone), g.Snapshot())
	for _, m := range msgs {
		g.Apply(m)
	}
	if g.SelectedTower() != g.Slots[1].TowerID {
		t.Fatal("expected enter on an occupied slot to select its tower")
	}

	key('u')
	if g.Gold() != 350 {
		t.Fatalf("expected upgrade for 50, gold=%d", g.Gold())
	}
	key('s')
	if g.Status() != component.StatusPlaying {
		t.Fatalf("expected playing, got %s", g.Status())
	}
	key('p')
	if g.Status() != component.StatusPaused {
		t.Fatalf("expected paused, got %s", g.Status())
	}
	key('f')
	if g.SpeedMultiplier != 2 {
		t.Fatalf("expected speed 2, got %v", g.SpeedMultiplier)
	}
	key('n')
	if g.Level.ID != 2 {
		t.Fatalf("expected level 2, got %d", g.Level.ID)
	}

	c.Cursor = 0
	msgs, _ = c.Handle(tcell.NewEventKey(tcell.KeyBacktab, 0, tcell.ModNone), g.Snapshot())
	if c.Cursor != len(g.Slots)-1 || len(msgs) != 1 {
		t.Fatalf("expected the cursor to wrap, got %d", c.Cursor)
	}

	if _, quit := c.Handle(tcell.NewEventKey(tcell.KeyRune, 'q', tcell.ModNone), g.Snapshot()); !quit {
		t.Fatal("expected q to quit")
	}
	if _, quit := c.Handle(tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl), g.Snapshot()); !quit {
		t.Fatal("expected ctrl-c to quit")
	}
}

func TestControllerMouse(t *testing.T) {
	var c Controller
	x, y := CellOf(path.Pt(120, 280))
	msgs, _ := c.Handle(tcell.NewEventMouse(x, y, tcell.Button1, tcell.ModNone), app.Snapshot{})
	if len(msgs) != 1 {
		t.Fatalf("expected one click, got %v", msgs)
	}
	click, ok := msgs[0].(app.ClickMsg)
	if !ok || click.X != 130 || click.Y != 300 {
		t.Fatalf("expected click at (130,300), got %#v", msgs[0])
	}
	msgs, _ = c.Handle(tcell.NewEventMouse(x, 0, tcell.ButtonNone, tcell.ModNone), app.Snapshot{})
	if len(msgs) != 0 {
		t.Fatalf("expected no command for the HUD row, got %v", msgs)
	}
}

func TestControllerDragClicksOnce(t *testing.T) {
	var c Controller
	x, y := CellOf(path.Pt(120, 280))
	var clicks, hovers int
	events := []tcell.ButtonMask{tcell.Button1, tcell.Button1, tcell.Button1, tcell.ButtonNone, tcell.Button1}
	for i, b := range events {
		msgs, _ := c.Handle(tcell.NewEventMouse(x+i, y, b, tcell.ModNone), app.Snapshot{})
		for _, m := range msgs {
			switch m.(type) {
			case app.ClickMsg:
				clicks++
			case app.HoverMsg:
				hovers++
			}
		}
	}
	if clicks != 2 || hovers != 3 {
		t.Fatalf("expected 2 clicks and 3 hovers, got %d clicks and %d hovers", clicks, hovers)
	}
}
