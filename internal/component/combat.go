// internal/component/combat.go
package component

// Cooldown gates how often a tower may fire. Timestamps are simulated ms.
type Cooldown struct {
	Interval float64
	Last     float64
	Fired    bool // false until the first attack, which is never delayed
}

// Ready reports whether an attack may happen at now.
func (c Cooldown) Ready(now float64) bool {
	return !c.Fired || now-c.Last >= c.Interval
}

// Mark records an attack at now.
func (c *Cooldown) Mark(now float64) {
	c.Last = now
	c.Fired = true
}
