// internal/defs/loader.go
package defs

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"slices"
)

// TowerLibrary is a map to hold all tower definitions, keyed by their type.
var TowerLibrary map[TowerType]TowerDefinition

// EnemyLibrary is a map to hold all enemy definitions, keyed by their type.
var EnemyLibrary map[EnemyType]EnemyDefinition

// LevelLibrary is a map to hold all level definitions, keyed by their id.
var LevelLibrary map[int]LevelDefinition

func init() {
	ResetLibraries()
}

// ResetLibraries restores the built-in definitions.
func ResetLibraries() {
	TowerLibrary = make(map[TowerType]TowerDefinition)
	for _, def := range builtinTowers() {
		TowerLibrary[def.Type] = def
	}
	EnemyLibrary = make(map[EnemyType]EnemyDefinition)
	for _, def := range builtinEnemies() {
		EnemyLibrary[def.Type] = def
	}
	LevelLibrary = make(map[int]LevelDefinition)
	for _, def := range builtinLevels() {
		LevelLibrary[def.ID] = def
	}
}

// LevelIDs returns the known level ids in ascending order.
func LevelIDs() []int {
	ids := make([]int, 0, len(LevelLibrary))
	for id := range LevelLibrary {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	return ids
}

// NextLevel returns the id following current, if there is one.
func NextLevel(current int) (int, bool) {
	for _, id := range LevelIDs() {
		if id > current {
			return id, true
		}
	}
	return 0, false
}

// LoadTowerDefinitions reads the tower configuration file and merges it into the TowerLibrary.
func LoadTowerDefinitions(path string) error {
	var towerDefs []TowerDefinition
	if err := readJSON(path, &towerDefs); err != nil {
		return fmt.Errorf("failed to load tower definitions: %w", err)
	}
	for _, def := range towerDefs {
		if err := def.validate(); err != nil {
			return err
		}
	}
	for _, def := range towerDefs {
		TowerLibrary[def.Type] = def
	}
	slog.Info("loaded tower definitions", "count", len(towerDefs), "path", path)
	return nil
}

// LoadEnemyDefinitions reads the enemy configuration file and merges it into the EnemyLibrary.
func LoadEnemyDefinitions(path string) error {
	var enemyDefs []EnemyDefinition
	if err := readJSON(path, &enemyDefs); err != nil {
		return fmt.Errorf("failed to load enemy definitions: %w", err)
	}
	for _, def := range enemyDefs {
		if err := def.validate(); err != nil {
			return err
		}
	}
	for _, def := range enemyDefs {
		EnemyLibrary[def.Type] = def
	}
	slog.Info("loaded enemy definitions", "count", len(enemyDefs), "path", path)
	return nil
}

// LoadLevelDefinitions reads the level configuration file and merges it into the LevelLibrary.
// Load enemies first: waves may only reference known bug types.
func LoadLevelDefinitions(path string) error {
	var levelDefs []LevelDefinition
	if err := readJSON(path, &levelDefs); err != nil {
		return fmt.Errorf("failed to load level definitions: %w", err)
	}
	for _, def := range levelDefs {
		if err := def.validate(); err != nil {
			return err
		}
	}
	for _, def := range levelDefs {
		LevelLibrary[def.ID] = def
	}
	slog.Info("loaded level definitions", "count", len(levelDefs), "path", path)
	return nil
}

// LoadOverrides applies the given definition files in dependency order:
// towers, enemies, then levels. Empty paths are skipped. A file that fails
// leaves its library untouched and the others still load.
func LoadOverrides(towers, enemies, levels string) error {
	var errs []error
	if towers != "" {
		errs = append(errs, LoadTowerDefinitions(towers))
	}
	if enemies != "" {
		errs = append(errs, LoadEnemyDefinitions(enemies))
	}
	if levels != "" {
		errs = append(errs, LoadLevelDefinitions(levels))
	}
	return errors.Join(errs...)
}

func readJSON(path string, v any) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}
	if err := json.Unmarshal(file, v); err != nil {
		return fmt.Errorf("failed to unmarshal %s: %w", path, err)
	}
	return nil
}

func (d TowerDefinition) validate() error {
	switch {
	case d.Type == "":
		return fmt.Errorf("tower definition without type")
	case d.Cost < 0 || d.Damage < 0 || d.Interval < 0 || d.Range < 0:
		return fmt.Errorf("tower %s: negative stats", d.Type)
	}
	switch d.Ability {
	case AbilityNone, AbilitySlow, AbilityBossBonus, AbilityDelayedDamage:
	default:
		return fmt.Errorf("tower %s: unknown ability %q", d.Type, d.Ability)
	}
	return nil
}

func (d EnemyDefinition) validate() error {
	switch {
	case d.Type == "":
		return fmt.Errorf("enemy definition without type")
	case d.Health <= 0:
		return fmt.Errorf("enemy %s: health must be positive", d.Type)
	case d.Speed < 0 || d.Armor < 0 || d.Reward < 0:
		return fmt.Errorf("enemy %s: negative stats", d.Type)
	}
	return nil
}

func (l LevelDefinition) validate() error {
	if len(l.Path) == 0 {
		if _, ok := Paths[l.PathID]; !ok {
			return fmt.Errorf("level %d: unknown path %d", l.ID, l.PathID)
		}
	} else if len(l.Path) < 2 {
		return fmt.Errorf("level %d: path needs at least two points", l.ID)
	}
	route := l.Route()
	for i, s := range l.SlotPoints() {
		if d := route.DistanceTo(s); d < SlotClearance {
			return fmt.Errorf("level %d: slot %d is %.1fpx from the path, need %.0f", l.ID, i, d, SlotClearance)
		}
	}
	for _, w := range l.Waves {
		for _, g := range w.Groups {
			if _, ok := EnemyLibrary[g.Enemy]; !ok {
				return fmt.Errorf("level %d wave %d: unknown enemy %s", l.ID, w.Number, g.Enemy)
			}
		}
	}
	return nil
}
