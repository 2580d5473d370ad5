// internal/component/status_effect.go
package component

// SlowEffect indicates that an entity is slowed.
type SlowEffect struct {
	Remaining float64 // ms left for the effect
	Factor    float64 // multiplier for speed, 1 when not slowed
}

// NoSlow is the neutral effect.
func NoSlow() SlowEffect {
	return SlowEffect{Factor: 1}
}

// Apply merges a new slow into the current one: strongest factor, longest duration.
func (s *SlowEffect) Apply(factor, durationMs float64) {
	if factor < 0 {
		factor = 0
	}
	if factor < s.Factor {
		s.Factor = factor
	}
	if durationMs > s.Remaining {
		s.Remaining = durationMs
	}
}

// Tick decays the effect and clears it on expiry.
func (s *SlowEffect) Tick(elapsedMs float64) {
	if s.Remaining <= 0 {
		return
	}
	s.Remaining -= elapsedMs
	if s.Remaining <= 0 {
		s.Remaining = 0
		s.Factor = 1
	}
}

// Active reports whether a slow is in effect.
func (s SlowEffect) Active() bool {
	return s.Factor < 1
}
