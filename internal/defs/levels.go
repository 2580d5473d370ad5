// internal/defs/levels.go
package defs

import "code-defense/pkg/path"

// SpawnGroup is one run of identical bugs inside a wave.
type SpawnGroup struct {
	Enemy    EnemyType `json:"enemy"`
	Count    int       `json:"count"`
	Interval Millis    `json:"interval"`
}

// WaveDefinition describes one wave of a level.
type WaveDefinition struct {
	Number          int          `json:"number"`
	DelayBeforeWave Millis       `json:"delay_before_wave"`
	Groups          []SpawnGroup `json:"groups"`
}

// Total returns the number of bugs the wave spawns.
func (w WaveDefinition) Total() int {
	n := 0
	for _, g := range w.Groups {
		n += g.Count
	}
	return n
}

// LevelDefinition describes a playable map.
type LevelDefinition struct {
	ID           int              `json:"id"`
	Name         string           `json:"name"`
	InitialGold  int              `json:"initial_gold"`
	InitialLives int              `json:"initial_lives"`
	PathID       int              `json:"path_id"`
	Path         []path.Point     `json:"path,omitempty"`  // overrides PathID when set
	Slots        []path.Point     `json:"slots,omitempty"` // defaults to PlacementSpots
	Waves        []WaveDefinition `json:"waves"`
}

// Route returns a private copy of the level's path.
func (l LevelDefinition) Route() path.Polyline {
	if len(l.Path) > 0 {
		return path.Polyline(l.Path).Clone()
	}
	return Paths[l.PathID].Clone()
}

// SlotPoints returns a private copy of the level's placement spots.
func (l LevelDefinition) SlotPoints() []path.Point {
	src := l.Slots
	if len(src) == 0 {
		src = PlacementSpots
	}
	out := make([]path.Point, len(src))
	copy(out, src)
	return out
}

// Paths holds the precomputed routes, keyed by path id.
var Paths = map[int]path.Polyline{
	1: {
		path.Pt(40, 520), // data core
		path.Pt(40, 200),
		path.Pt(200, 200),
		path.Pt(200, 120),
		path.Pt(480, 120),
		path.Pt(480, 400),
		path.Pt(640, 400),
		path.Pt(640, 520),
		path.Pt(920, 520), // data port
	},
}

// SlotClearance is the minimum distance between a slot and the path, in px.
const SlotClearance = 12.0

// PlacementSpots are the default tower slots.
var PlacementSpots = []path.Point{
	// left
	path.Pt(120, 280), path.Pt(120, 360), path.Pt(120, 440),
	// top
	path.Pt(280, 200), path.Pt(360, 200), path.Pt(400, 40),
	// middle
	path.Pt(320, 320), path.Pt(400, 320), path.Pt(560, 280), path.Pt(560, 360),
	// right
	path.Pt(720, 320), path.Pt(720, 440), path.Pt(800, 440),
	// bottom
	path.Pt(280, 520), path.Pt(480, 520),
}

func builtinLevels() []LevelDefinition {
	return []LevelDefinition{
		{
			ID:           1,
			Name:         "Data Center Alpha",
			InitialGold:  500,
			InitialLives: 20,
			PathID:       1,
			Waves: []WaveDefinition{
				{Number: 1, DelayBeforeWave: 3000, Groups: []SpawnGroup{
					{Enemy: EnemyTypo, Count: 8, Interval: 1000},
				}},
				{Number: 2, DelayBeforeWave: 5000, Groups: []SpawnGroup{
					{Enemy: EnemyTypo, Count: 10, Interval: 800},
					{Enemy: EnemyNullPointer, Count: 3, Interval: 2000},
				}},
				{Number: 3, DelayBeforeWave: 5000, Groups: []SpawnGroup{
					{Enemy: EnemyTypo, Count: 5, Interval: 600},
					{Enemy: EnemyNullPointer, Count: 5, Interval: 1500},
					{Enemy: EnemyMemoryLeak, Count: 2, Interval: 3000},
				}},
				{Number: 4, DelayBeforeWave: 5000, Groups: []SpawnGroup{
					{Enemy: EnemyNullPointer, Count: 8, Interval: 1000},
					{Enemy: EnemyMemoryLeak, Count: 4, Interval: 2000},
					{Enemy: EnemySystemCrash, Count: 1, Interval: 8000},
				}},
			},
		},
		{
			ID:           2,
			Name:         "Firewall Breach",
			InitialGold:  600,
			InitialLives: 15,
			PathID:       1,
			Waves: []WaveDefinition{
				{Number: 1, DelayBeforeWave: 3000, Groups: []SpawnGroup{
					{Enemy: EnemyTypo, Count: 15, Interval: 600},
					{Enemy: EnemyNullPointer, Count: 5, Interval: 1500},
				}},
				{Number: 2, DelayBeforeWave: 5000, Groups: []SpawnGroup{
					{Enemy: EnemyNullPointer, Count: 10, Interval: 1000},
					{Enemy: EnemyMemoryLeak, Count: 5, Interval: 2000},
				}},
				{Number: 3, DelayBeforeWave: 5000, Groups: []SpawnGroup{
					{Enemy: EnemyMemoryLeak, Count: 8, Interval: 1500},
					{Enemy: EnemySystemCrash, Count: 2, Interval: 6000},
				}},
			},
		},
	}
}
