// internal/audio/cues.go
package audio

import (
	"time"

	"github.com/gopxl/beep"
)

// Cue is a short sound tied to a game event.
type Cue int

const (
	CueKill Cue = iota
	CueBossKill
	CueBreach
	CueWaveStart
	CuePlace
	CueVictory
	CueDefeat
	cueCount
)

var cueNames = [cueCount]string{"kill", "boss_kill", "breach", "wave_start", "place", "victory", "defeat"}

func (c Cue) String() string {
	if c < 0 || c >= cueCount {
		return "unknown"
	}
	return cueNames[c]
}

// DefaultSampleRate is the rate the desktop front-end opens the speaker with.
const DefaultSampleRate = beep.SampleRate(44100)

// Stream builds a fresh finite streamer for c at the given volume (0..1).
func Stream(c Cue, rate beep.SampleRate, volume float64) beep.Streamer {
	var s beep.Streamer
	switch c {
	case CueKill:
		// two-note coin
		s = beep.Seq(
			note(987.77, 60*time.Millisecond, WaveSquare, rate),
			note(1318.51, 120*time.Millisecond, WaveSquare, rate),
		)
	case CueBossKill:
		s = beep.Seq(
			note(659.25, 100*time.Millisecond, WaveSquare, rate),
			note(987.77, 100*time.Millisecond, WaveSquare, rate),
			note(1318.51, 250*time.Millisecond, WaveSquare, rate),
		)
	case CueBreach:
		s = note(110, 200*time.Millisecond, WaveSaw, rate)
	case CueWaveStart:
		s = beep.Mix(
			withVolume(note(880, 300*time.Millisecond, WaveSine, rate), 0.7),
			withVolume(note(1760, 300*time.Millisecond, WaveSine, rate), 0.3),
		)
	case CuePlace:
		s = note(0, 80*time.Millisecond, WaveNoise, rate)
	case CueVictory:
		s = beep.Seq(
			note(523.25, 150*time.Millisecond, WaveSine, rate),
			note(659.25, 150*time.Millisecond, WaveSine, rate),
			note(783.99, 150*time.Millisecond, WaveSine, rate),
			note(1046.5, 400*time.Millisecond, WaveSine, rate),
		)
	case CueDefeat:
		s = beep.Seq(
			note(392, 200*time.Millisecond, WaveSaw, rate),
			note(311.13, 200*time.Millisecond, WaveSaw, rate),
			note(233.08, 500*time.Millisecond, WaveSaw, rate),
		)
	default:
		return nil
	}
	return withVolume(s, volume)
}
