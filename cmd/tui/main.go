// cmd/tui/main.go
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync/atomic"
	"time"

	"github.com/gdamore/tcell/v2"
	"golang.org/x/sync/errgroup"

	"code-defense/internal/app"
	"code-defense/internal/config"
	"code-defense/internal/defs"
	"code-defense/internal/logger"
	"code-defense/internal/progress"
	"code-defense/internal/telemetry"
	"code-defense/internal/tui"
)

var errQuit = errors.New("quit")

func main() {
	level := flag.Int("level", 1, "level to start on")
	towers := flag.String("towers", "", "JSON file overriding tower definitions")
	enemies := flag.String("enemies", "", "JSON file overriding enemy definitions")
	levels := flag.String("levels", "", "JSON file overriding level definitions")
	progressPath := flag.String("progress", "code-defense-progress.json", "cross-session counters file")
	flag.Parse()

	// The screen owns stdout, so logs go to LOG_FILE or nowhere.
	logOut := os.Getenv("LOG_FILE")
	if logOut == "" {
		logOut = os.DevNull
	}
	f, err := os.OpenFile(logOut, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open log file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	logger.Setup(f)

	if err := defs.LoadOverrides(*towers, *enemies, *levels); err != nil {
		slog.Error("some definition files were not applied", "error", err)
	}

	g, err := app.NewGame(*level)
	if err != nil {
		fmt.Fprintf(os.Stderr, "start game: %v\n", err)
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

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "init screen: %v\n", err)
		os.Exit(1)
	}
	screen.EnableMouse()
	screen.HideCursor()

	if err := run(screen, g); err != nil && !errors.Is(err, errQuit) && !errors.Is(err, context.Canceled) {
		slog.Error("terminal front-end stopped", "error", err)
	}
	c := recorder.Counters()
	slog.Info("session over", "best_score", c.BestScore, "bugs_fixed", c.BugsFixed, "highest_level", c.HighestLevel)
}

// run drives the game from a ticker while a second goroutine polls input.
// Input reaches the game only through Submit.
func run(screen tcell.Screen, g *app.Game) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	eg, ctx := errgroup.WithContext(ctx)

	var latest atomic.Pointer[app.Snapshot]
	snap := g.Snapshot()
	latest.Store(&snap)
	var cursor atomic.Int32

	renderer := tui.NewRenderer(screen)
	controller := &tui.Controller{}

	eg.Go(func() error {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return nil
			}
			if _, ok := ev.(*tcell.EventResize); ok {
				screen.Sync()
				continue
			}
			msgs, quit := controller.Handle(ev, *latest.Load())
			cursor.Store(int32(controller.Cursor))
			if quit {
				return errQuit
			}
			for _, m := range msgs {
				g.Submit(m)
			}
		}
	})

	eg.Go(func() error {
		ticker := time.NewTicker(time.Second / 60)
		defer ticker.Stop()
		last := time.Now()
		for {
			select {
			case <-ctx.Done():
				return ctx.Err()
			case now := <-ticker.C:
				dt := min(now.Sub(last).Seconds(), config.MaxDeltaTime)
				last = now
				g.Update(dt)
				s := g.Snapshot()
				latest.Store(&s)
				renderer.Draw(s, int(cursor.Load()), hint(s))
			}
		}
	})

	eg.Go(func() error {
		<-ctx.Done()
		screen.Fini()
		return nil
	})

	return eg.Wait()
}

func hint(s app.Snapshot) string {
	switch {
	case s.Status.Terminal():
		return "press r to retry or n for the next level"
	case s.SelectedType != "":
		return fmt.Sprintf("placing %s: move with tab, enter to hire", s.SelectedType)
	default:
		return ""
	}
}
