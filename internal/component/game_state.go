// internal/component/game_state.go
package component

// Status is the run state of a level.
type Status string

const (
	StatusIdle    Status = "idle"
	StatusPlaying Status = "playing"
	StatusPaused  Status = "paused"
	StatusVictory Status = "victory"
	StatusDefeat  Status = "defeat"
)

// Terminal reports whether no further transitions are possible without a reset.
func (s Status) Terminal() bool {
	return s == StatusVictory || s == StatusDefeat
}
