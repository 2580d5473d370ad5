// cmd/game/main.go
package main

import (
	"flag"
	"log/slog"
	"os"
	"time"

	"code-defense/internal/app"
	"code-defense/internal/audio"
	"code-defense/internal/config"
	"code-defense/internal/defs"
	"code-defense/internal/logger"
	"code-defense/internal/progress"
	"code-defense/internal/state"
	"code-defense/internal/telemetry"

	"github.com/gopxl/beep/speaker"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font/basicfont"
)

type AppGame struct {
	stateMachine   *state.StateMachine
	lastUpdateTime time.Time
}

func (a *AppGame) Update() error {
	now := time.Now()
	deltaTime := now.Sub(a.lastUpdateTime).Seconds()
	if deltaTime > config.MaxDeltaTime {
		deltaTime = config.MaxDeltaTime
	}
	a.lastUpdateTime = now
	a.stateMachine.Update(deltaTime)
	return nil
}

func (a *AppGame) Draw(screen *ebiten.Image) {
	a.stateMachine.Draw(screen)
}

func (a *AppGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return config.WindowWidth, config.WindowHeight
}

func main() {
	level := flag.Int("level", 1, "level to start on")
	towers := flag.String("towers", "", "JSON file overriding tower definitions")
	enemies := flag.String("enemies", "", "JSON file overriding enemy definitions")
	levels := flag.String("levels", "", "JSON file overriding level definitions")
	progressPath := flag.String("progress", "code-defense-progress.json", "cross-session counters file")
	mute := flag.Bool("mute", false, "disable sound")
	menu := flag.Bool("menu", false, "open the level menu first")
	flag.Parse()

	logger.Setup(os.Stderr)

	if err := defs.LoadOverrides(*towers, *enemies, *levels); err != nil {
		slog.Error("some definition files were not applied", "error", err)
	}

	g, err := app.NewGame(*level)
	if err != nil {
		slog.Error("start game", "error", err)
		os.Exit(1)
	}

	counters, err := progress.Load(*progressPath)
	if err != nil {
		slog.Warn("counters unavailable, starting from zero", "error", err)
	}
	recorder := progress.NewRecorder(*progressPath, counters, *level)
	defer recorder.Close()
	recorder.Attach(g.EventDispatcher)

	sink := telemetry.NewSink()
	defer sink.Close()
	sink.Attach(g.EventDispatcher)

	if !*mute {
		sr := audio.DefaultSampleRate
		if err := speaker.Init(sr, sr.N(time.Second/10)); err != nil {
			slog.Warn("no audio device, playing silently", "error", err)
		} else {
			defer speaker.Close()
			audio.NewPlayer(sr, 0.3, speaker.Play).Attach(g.EventDispatcher)
		}
	}

	env := &state.Env{
		Game:      g,
		Progress:  recorder,
		Telemetry: sink,
		Face:      basicfont.Face7x13,
	}
	sm := state.NewStateMachine()
	if *menu {
		sm.SetState(state.NewMenuState(sm, env))
	} else {
		sm.SetState(state.NewGameState(sm, env))
	}
	a := &AppGame{
		stateMachine:   sm,
		lastUpdateTime: time.Now(),
	}

	ebiten.SetWindowSize(config.WindowWidth, config.WindowHeight)
	ebiten.SetWindowTitle("Code Defense")
	if err := ebiten.RunGame(a); err != nil {
		slog.Error("game loop stopped", "error", err)
	}
	c := recorder.Counters()
	slog.Info("session over", "best_score", c.BestScore, "bugs_fixed", c.BugsFixed, "highest_level", c.HighestLevel)
}
