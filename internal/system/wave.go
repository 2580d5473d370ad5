// internal/system/wave.go
package system

import (
	"log/slog"
	"sort"

	"code-defense/internal/defs"
)

// SpawnEntry is one pending bug with its offset from the start of the wave.
type SpawnEntry struct {
	Enemy defs.EnemyType
	Delay float64 // ms
}

// BuildSpawnQueue flattens a wave into a delay-ordered queue.
// Each group runs on its own cadence from the start of the wave.
func BuildSpawnQueue(w defs.WaveDefinition) []SpawnEntry {
	queue := make([]SpawnEntry, 0, w.Total())
	for _, g := range w.Groups {
		for i := 0; i < g.Count; i++ {
			queue = append(queue, SpawnEntry{Enemy: g.Enemy, Delay: float64(g.Interval) * float64(i)})
		}
	}
	sort.SliceStable(queue, func(i, j int) bool { return queue[i].Delay < queue[j].Delay })
	return queue
}

// WaveSystem consumes the spawn queue of the running wave and detects its completion.
type WaveSystem struct {
	number    int
	queue     []SpawnEntry
	elapsed   float64 // ms since the wave started
	running   bool
	completed bool
}

func NewWaveSystem() *WaveSystem {
	return &WaveSystem{}
}

// StartWave replaces the queue with the given wave.
func (s *WaveSystem) StartWave(number int, w defs.WaveDefinition) {
	s.number = number
	s.queue = BuildSpawnQueue(w)
	s.elapsed = 0
	s.running = true
	s.completed = false
	slog.Debug("wave queued", "wave", number, "spawns", len(s.queue))
}

// Update advances wave time and returns every bug due to spawn, in queue order.
func (s *WaveSystem) Update(elapsedMs float64) []defs.EnemyType {
	if !s.running || len(s.queue) == 0 {
		return nil
	}
	s.elapsed += elapsedMs
	var due []defs.EnemyType
	for len(s.queue) > 0 && s.queue[0].Delay <= s.elapsed {
		due = append(due, s.queue[0].Enemy)
		s.queue = s.queue[1:]
	}
	return due
}

// CheckComplete reports true exactly once per wave: the first time the queue is
// empty and no enemies are alive.
func (s *WaveSystem) CheckComplete(alive int) bool {
	if !s.running || s.completed || len(s.queue) > 0 || alive > 0 {
		return false
	}
	s.completed = true
	slog.Debug("wave drained", "wave", s.number, "elapsed_ms", s.elapsed)
	return true
}

// Pending returns the number of bugs still to spawn.
func (s *WaveSystem) Pending() int {
	return len(s.queue)
}

func (s *WaveSystem) Reset() {
	*s = WaveSystem{}
}
