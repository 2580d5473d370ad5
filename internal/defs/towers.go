// internal/defs/towers.go
package defs

import "slices"

// TowerDefinition holds all the static data for a specific type of tower.
type TowerDefinition struct {
	Type        TowerType   `json:"type"`
	Name        string      `json:"name"`
	Description string      `json:"description"`
	Cost        int         `json:"cost"`
	Damage      int         `json:"damage"`
	Interval    Millis      `json:"interval"` // between attacks
	Range       float64     `json:"range"`
	Targets     []EnemyType `json:"targets"`
	Area        bool        `json:"area"`
	Ability     AbilityKind `json:"ability,omitempty"`
	AbilityName string      `json:"ability_name,omitempty"`
}

// CanTarget reports whether the tower is allowed to attack the given bug type.
func (d TowerDefinition) CanTarget(t EnemyType) bool {
	return slices.Contains(d.Targets, t)
}

// TowerOrder is the order towers appear in the shop.
var TowerOrder = []TowerType{
	TowerJuniorDev,
	TowerSeniorArchitect,
	TowerUIDesigner,
	TowerDataEngineer,
	TowerSecurityExpert,
}

func builtinTowers() []TowerDefinition {
	return []TowerDefinition{
		{
			Type:        TowerJuniorDev,
			Name:        "Junior Developer",
			Description: "Fast fixes for small bugs",
			Cost:        100,
			Damage:      15,
			Interval:    800,
			Range:       120,
			Targets:     []EnemyType{EnemyTypo},
			AbilityName: "Debug Scan",
		},
		{
			Type:        TowerSeniorArchitect,
			Name:        "Senior Architect",
			Description: "Handles complex exceptions",
			Cost:        250,
			Damage:      35,
			Interval:    1000,
			Range:       180,
			Targets:     []EnemyType{EnemyTypo, EnemyNullPointer, EnemyMemoryLeak},
			AbilityName: "Code Review",
		},
		{
			Type:        TowerUIDesigner,
			Name:        "UI Designer",
			Description: "Slows bugs down with sheer aesthetics",
			Cost:        150,
			Damage:      10,
			Interval:    1200,
			Range:       150,
			Targets:     []EnemyType{EnemyTypo, EnemyNullPointer},
			Area:        true,
			Ability:     AbilitySlow,
			AbilityName: "Pixel Perfect",
		},
		{
			Type:        TowerDataEngineer,
			Name:        "Data Engineer",
			Description: "Data stream with follow-up damage",
			Cost:        300,
			Damage:      25,
			Interval:    500,
			Range:       140,
			Targets:     []EnemyType{EnemyTypo, EnemyNullPointer, EnemyMemoryLeak},
			Ability:     AbilityDelayedDamage,
			AbilityName: "Data Stream",
		},
		{
			Type:        TowerSecurityExpert,
			Name:        "Security Expert",
			Description: "Firewall specialist, extra damage to bosses",
			Cost:        500,
			Damage:      80,
			Interval:    1500,
			Range:       200,
			Targets:     []EnemyType{EnemyTypo, EnemyNullPointer, EnemyMemoryLeak, EnemySystemCrash},
			Ability:     AbilityBossBonus,
			AbilityName: "Firewall",
		},
	}
}
