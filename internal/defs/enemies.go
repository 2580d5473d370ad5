// internal/defs/enemies.go
package defs

// EnemyDefinition holds all the static data for a specific type of enemy.
type EnemyDefinition struct {
	Type   EnemyType `json:"type"`
	Name   string    `json:"name"`
	Health int       `json:"health"`
	Speed  float64   `json:"speed"` // pixels per tick
	Reward int       `json:"reward"`
	Armor  int       `json:"armor"`
	Boss   bool      `json:"boss"`
}

// EnemyOrder lists bug types from the weakest tier to the boss.
var EnemyOrder = []EnemyType{EnemyTypo, EnemyNullPointer, EnemyMemoryLeak, EnemySystemCrash}

func builtinEnemies() []EnemyDefinition {
	return []EnemyDefinition{
		{Type: EnemyTypo, Name: "Typo", Health: 50, Speed: 2.5, Reward: 15, Armor: 0},
		{Type: EnemyNullPointer, Name: "Null Pointer Ghost", Health: 120, Speed: 2, Reward: 30, Armor: 5},
		{Type: EnemyMemoryLeak, Name: "Memory Leak", Health: 300, Speed: 1.2, Reward: 60, Armor: 10},
		{Type: EnemySystemCrash, Name: "System Crash Bot", Health: 1000, Speed: 0.8, Reward: 200, Armor: 25, Boss: true},
	}
}
