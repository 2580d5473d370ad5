// internal/event/types.go
package event

import (
	"code-defense/internal/defs"
	"code-defense/internal/types"
)

const (
	GoldChanged   EventType = "GoldChanged"   // int
	LivesChanged  EventType = "LivesChanged"  // int
	WaveChanged   EventType = "WaveChanged"   // int
	ScoreChanged  EventType = "ScoreChanged"  // int
	StatusChanged EventType = "StatusChanged" // component.Status
	BugKilled     EventType = "BugKilled"     // BugKilledData

	EnemyBreached EventType = "EnemyBreached" // EnemyData
	WaveStarted   EventType = "WaveStarted"   // WaveData
	WaveCompleted EventType = "WaveCompleted" // WaveData
	TowerPlaced   EventType = "TowerPlaced"   // TowerData
	TowerSold     EventType = "TowerSold"     // TowerData
	TowerUpgraded EventType = "TowerUpgraded" // TowerData
	LevelChanged  EventType = "LevelChanged"  // int
)

// BugKilledData describes a kill.
type BugKilledData struct {
	Reward int
	Enemy  defs.EnemyType
	Boss   bool
	Tower  defs.TowerType // type of the tower that attacked, even if it was sold before a delayed hit landed
}

// EnemyData describes an enemy that left the field.
type EnemyData struct {
	ID    types.EntityID
	Enemy defs.EnemyType
}

// WaveData describes a wave transition.
type WaveData struct {
	Level int
	Wave  int
	Total int // waves in the level
}

// TowerData describes a change to a tower.
type TowerData struct {
	ID    types.EntityID
	Tower defs.TowerType
	Level int
	Gold  int // spent or refunded
}
