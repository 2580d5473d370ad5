// internal/telemetry/telemetry.go
package telemetry

import (
	"log/slog"
	"sync"
	"time"

	"code-defense/internal/event"
)

// Event kinds.
const (
	KindKill   = "kill"
	KindBreach = "breach"
	KindWave   = "wave"
	KindFrame  = "frame"
)

type Event struct {
	Kind string
	I    int
	F    float64
	At   time.Time
}

// Batch is what the sink accumulated over one flush interval.
type Batch struct {
	Kills    int
	Bounty   int
	Breaches int
	Waves    int
	Frames   int
	AvgDt    float64
}

func (b Batch) empty() bool {
	return b.Kills == 0 && b.Breaches == 0 && b.Waves == 0 && b.Frames == 0
}

// Sink aggregates gameplay events off the simulation goroutine.
type Sink struct {
	In      chan Event
	quit    chan struct{}
	done    chan struct{}
	once    sync.Once
	flush   func(Batch)
	dropped int
}

// NewSink starts a sink that logs a summary every two seconds.
func NewSink() *Sink {
	return newSink(2*time.Second, logBatch)
}

func newSink(interval time.Duration, flush func(Batch)) *Sink {
	s := &Sink{
		In:    make(chan Event, 256),
		quit:  make(chan struct{}),
		done:  make(chan struct{}),
		flush: flush,
	}
	go s.loop(interval)
	return s
}

func (s *Sink) loop(interval time.Duration) {
	defer close(s.done)
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	var b Batch
	var dtSum float64
	add := func(ev Event) {
		switch ev.Kind {
		case KindKill:
			b.Kills++
			b.Bounty += ev.I
		case KindBreach:
			b.Breaches++
		case KindWave:
			b.Waves++
		case KindFrame:
			b.Frames++
			dtSum += ev.F
		}
	}
	emit := func() {
		if b.Frames > 0 {
			b.AvgDt = dtSum / float64(b.Frames)
		}
		if s.flush != nil && !b.empty() {
			s.flush(b)
		}
		b = Batch{}
		dtSum = 0
	}

	for {
		select {
		case <-s.quit:
			for {
				select {
				case ev := <-s.In:
					add(ev)
				default:
					emit()
					return
				}
			}
		case ev := <-s.In:
			add(ev)
		case <-ticker.C:
			emit()
		}
	}
}

func logBatch(b Batch) {
	slog.Info("telemetry",
		"kills", b.Kills,
		"bounty", b.Bounty,
		"breaches", b.Breaches,
		"waves", b.Waves,
		"frames", b.Frames,
		"avg_dt", b.AvgDt,
	)
}

// Send queues ev without blocking; it is dropped when the buffer is full.
func (s *Sink) Send(ev Event) {
	select {
	case s.In <- ev:
	default:
		s.dropped++
	}
}

// Frame records one rendered frame of dt seconds.
func (s *Sink) Frame(dt float64) {
	s.Send(Event{Kind: KindFrame, F: dt, At: time.Now()})
}

// Attach forwards kill, breach and wave events from d.
func (s *Sink) Attach(d *event.Dispatcher) {
	d.SubscribeAll(s, event.BugKilled, event.EnemyBreached, event.WaveStarted)
}

func (s *Sink) OnEvent(e event.Event) {
	switch e.Type {
	case event.BugKilled:
		data, _ := e.Data.(event.BugKilledData)
		s.Send(Event{Kind: KindKill, I: data.Reward, At: time.Now()})
	case event.EnemyBreached:
		s.Send(Event{Kind: KindBreach, At: time.Now()})
	case event.WaveStarted:
		data, _ := e.Data.(event.WaveData)
		s.Send(Event{Kind: KindWave, I: data.Wave, At: time.Now()})
	}
}

// Close stops the sink after flushing what it has. Safe to call more than once.
func (s *Sink) Close() {
	s.once.Do(func() {
		close(s.quit)
		<-s.done
		if s.dropped > 0 {
			slog.Warn("telemetry events dropped", "count", s.dropped)
		}
	})
}
