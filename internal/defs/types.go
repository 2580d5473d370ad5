// internal/defs/types.go
package defs

import "time"

// EnemyType identifies a kind of bug.
type EnemyType string

const (
	EnemyTypo        EnemyType = "Typo"
	EnemyNullPointer EnemyType = "NullPointerException"
	EnemyMemoryLeak  EnemyType = "MemoryLeak"
	EnemySystemCrash EnemyType = "SystemCrash"
)

// TowerType identifies a kind of developer.
type TowerType string

const (
	TowerJuniorDev       TowerType = "JuniorDev"
	TowerSeniorArchitect TowerType = "SeniorArchitect"
	TowerUIDesigner      TowerType = "UIDesigner"
	TowerDataEngineer    TowerType = "DataEngineer"
	TowerSecurityExpert  TowerType = "SecurityExpert"
)

// AbilityKind tags the special behaviour a tower adds to its attacks.
type AbilityKind string

const (
	AbilityNone          AbilityKind = ""
	AbilitySlow          AbilityKind = "slow"
	AbilityBossBonus     AbilityKind = "boss_bonus"
	AbilityDelayedDamage AbilityKind = "delayed_damage"
)

// Millis is a span of simulated time in milliseconds. JSON files store plain numbers.
type Millis float64

// Duration converts m to a time.Duration.
func (m Millis) Duration() time.Duration {
	return time.Duration(float64(m) * float64(time.Millisecond))
}
