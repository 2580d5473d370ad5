// internal/audio/player.go
package audio

import (
	"log/slog"
	"time"

	"github.com/gopxl/beep"

	"code-defense/internal/component"
	"code-defense/internal/event"
)

// minRepeat keeps an area attack that kills ten bugs from playing ten coins at once.
const minRepeat = 50 * time.Millisecond

// Player turns game events into cues. Play is usually speaker.Play.
type Player struct {
	Rate   beep.SampleRate
	Volume float64
	Play   func(...beep.Streamer)
	Muted  bool

	now  func() time.Time
	last [cueCount]time.Time
}

func NewPlayer(rate beep.SampleRate, volume float64, play func(...beep.Streamer)) *Player {
	return &Player{Rate: rate, Volume: volume, Play: play, now: time.Now}
}

// Attach subscribes the player to the events it has cues for.
func (p *Player) Attach(d *event.Dispatcher) {
	d.SubscribeAll(p, event.BugKilled, event.EnemyBreached, event.WaveStarted, event.TowerPlaced, event.StatusChanged)
}

func (p *Player) OnEvent(e event.Event) {
	switch e.Type {
	case event.BugKilled:
		if data, ok := e.Data.(event.BugKilledData); ok && data.Boss {
			p.Cue(CueBossKill)
		} else {
			p.Cue(CueKill)
		}
	case event.EnemyBreached:
		p.Cue(CueBreach)
	case event.WaveStarted:
		p.Cue(CueWaveStart)
	case event.TowerPlaced:
		p.Cue(CuePlace)
	case event.StatusChanged:
		switch e.Data.(component.Status) {
		case component.StatusVictory:
			p.Cue(CueVictory)
		case component.StatusDefeat:
			p.Cue(CueDefeat)
		}
	}
}

// Cue plays c unless muted or the same cue played within minRepeat.
func (p *Player) Cue(c Cue) bool {
	if p.Muted || p.Play == nil {
		return false
	}
	now := p.now()
	if now.Sub(p.last[c]) < minRepeat {
		return false
	}
	s := Stream(c, p.Rate, p.Volume)
	if s == nil {
		return false
	}
	p.last[c] = now
	slog.Debug("audio cue", "cue", c)
	p.Play(s)
	return true
}
