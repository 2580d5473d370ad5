// internal/progress/progress.go
package progress

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

const countersVersion = 1

// Counters survive between sessions. Nothing else about a run is saved.
type Counters struct {
	Version      int       `json:"version"`
	BestScore    int       `json:"best_score"`
	HighestLevel int       `json:"highest_level_cleared"`
	BugsFixed    int       `json:"bugs_fixed"`
	Runs         int       `json:"runs"`
	Victories    int       `json:"victories"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// RunResult summarises one finished run.
type RunResult struct {
	Level     int
	Score     int
	BugsFixed int
	Victory   bool
}

// Apply folds a finished run into c.
func (c *Counters) Apply(r RunResult) {
	c.Runs++
	c.BugsFixed += r.BugsFixed
	c.BestScore = max(c.BestScore, r.Score)
	if r.Victory {
		c.Victories++
		c.HighestLevel = max(c.HighestLevel, r.Level)
	}
}

// Load reads counters from path. A missing file yields zero counters.
func Load(path string) (Counters, error) {
	blob, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return Counters{Version: countersVersion}, nil
	}
	if err != nil {
		return Counters{}, fmt.Errorf("read counters: %w", err)
	}
	var c Counters
	if err := json.Unmarshal(blob, &c); err != nil {
		return Counters{}, fmt.Errorf("decode counters %s: %w", path, err)
	}
	if c.Version == 0 {
		c.Version = countersVersion
	}
	if c.Version != countersVersion {
		return Counters{}, fmt.Errorf("unsupported counters version: %d", c.Version)
	}
	return c, nil
}

// Save writes c to path through a temp file and a rename.
func Save(path string, c Counters) error {
	if path == "" {
		return fmt.Errorf("path is empty")
	}
	c.Version = countersVersion
	if dir := filepath.Dir(path); dir != "." && dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("ensure parent dir: %w", err)
		}
	}
	blob, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal counters: %w", err)
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, blob, 0o644); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("rename temp file: %w", err)
	}
	return nil
}
