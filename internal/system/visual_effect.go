// internal/system/visual_effect.go
package system

import "code-defense/internal/component"

// VisualEffectSystem ages attack effects and drops expired ones.
type VisualEffectSystem struct {
	effects []component.AttackEffect
}

func NewVisualEffectSystem() *VisualEffectSystem {
	return &VisualEffectSystem{}
}

// Add records new effects.
func (s *VisualEffectSystem) Add(effects ...component.AttackEffect) {
	s.effects = append(s.effects, effects...)
}

// Update decays all effects by elapsedMs.
func (s *VisualEffectSystem) Update(elapsedMs float64) {
	kept := s.effects[:0]
	for _, fx := range s.effects {
		fx.Remaining -= elapsedMs
		if fx.Remaining > 0 {
			kept = append(kept, fx)
		}
	}
	s.effects = kept
}

// Effects returns a copy of the live effects.
func (s *VisualEffectSystem) Effects() []component.AttackEffect {
	out := make([]component.AttackEffect, len(s.effects))
	copy(out, s.effects)
	return out
}

func (s *VisualEffectSystem) Reset() {
	s.effects = nil
}
