// internal/event/callbacks.go
package event

import "code-defense/internal/component"

// Callbacks adapts plain functions to the dispatcher. Nil fields are skipped.
type Callbacks struct {
	OnGoldChange   func(gold int)
	OnLivesChange  func(lives int)
	OnWaveChange   func(wave int)
	OnScoreChange  func(score int)
	OnStatusChange func(status component.Status)
	OnBugKilled    func(reward int)
}

// Attach subscribes c to every event it handles.
func (c *Callbacks) Attach(d *Dispatcher) {
	d.SubscribeAll(c, GoldChanged, LivesChanged, WaveChanged, ScoreChanged, StatusChanged, BugKilled)
}

func (c *Callbacks) OnEvent(e Event) {
	switch e.Type {
	case GoldChanged:
		if c.OnGoldChange != nil {
			c.OnGoldChange(e.Data.(int))
		}
	case LivesChanged:
		if c.OnLivesChange != nil {
			c.OnLivesChange(e.Data.(int))
		}
	case WaveChanged:
		if c.OnWaveChange != nil {
			c.OnWaveChange(e.Data.(int))
		}
	case ScoreChanged:
		if c.OnScoreChange != nil {
			c.OnScoreChange(e.Data.(int))
		}
	case StatusChanged:
		if c.OnStatusChange != nil {
			c.OnStatusChange(e.Data.(component.Status))
		}
	case BugKilled:
		if c.OnBugKilled != nil {
			c.OnBugKilled(e.Data.(BugKilledData).Reward)
		}
	}
}
