// internal/progress/recorder.go
package progress

import (
	"log/slog"
	"sync"
	"time"

	"code-defense/internal/component"
	"code-defense/internal/event"
)

// Recorder listens to a game and persists the counters whenever a run ends.
// Writes happen on a background goroutine that only ever sees copies.
type Recorder struct {
	path     string
	counters Counters
	level    int
	score    int
	kills    int

	saves chan Counters
	done  chan struct{}
	once  sync.Once
}

// NewRecorder starts a recorder for a game on level, seeded with c.
func NewRecorder(path string, c Counters, level int) *Recorder {
	r := &Recorder{
		path:     path,
		counters: c,
		level:    level,
		saves:    make(chan Counters, 4),
		done:     make(chan struct{}),
	}
	go r.loop()
	return r
}

func (r *Recorder) loop() {
	defer close(r.done)
	for c := range r.saves {
		if err := Save(r.path, c); err != nil {
			slog.Error("failed to save counters", "path", r.path, "error", err)
			continue
		}
		slog.Debug("counters saved", "path", r.path, "best_score", c.BestScore, "bugs_fixed", c.BugsFixed)
	}
}

// Counters returns the in-memory counters, including finished runs not yet on disk.
func (r *Recorder) Counters() Counters {
	return r.counters
}

// Attach subscribes the recorder to d.
func (r *Recorder) Attach(d *event.Dispatcher) {
	d.SubscribeAll(r, event.BugKilled, event.ScoreChanged, event.StatusChanged, event.LevelChanged)
}

func (r *Recorder) OnEvent(e event.Event) {
	switch e.Type {
	case event.BugKilled:
		r.kills++
	case event.ScoreChanged:
		r.score = e.Data.(int)
	case event.LevelChanged:
		r.level = e.Data.(int)
		r.kills = 0
	case event.StatusChanged:
		switch s := e.Data.(component.Status); s {
		case component.StatusIdle:
			r.kills = 0
		case component.StatusVictory, component.StatusDefeat:
			r.finish(s == component.StatusVictory)
		}
	}
}

func (r *Recorder) finish(victory bool) {
	r.counters.Apply(RunResult{Level: r.level, Score: r.score, BugsFixed: r.kills, Victory: victory})
	r.counters.UpdatedAt = time.Now()
	r.kills = 0
	select {
	case r.saves <- r.counters:
	default:
		slog.Warn("counters save skipped, writer busy")
	}
}

// Close waits for pending writes. Safe to call more than once.
func (r *Recorder) Close() {
	r.once.Do(func() {
		close(r.saves)
		<-r.done
	})
}
