// internal/component/movement.go
package component

import "code-defense/pkg/path"

// PathFollower tracks progress along a fixed route.
type PathFollower struct {
	Route path.Polyline
	Index int // last waypoint reached, never decreases
}

// Target returns the waypoint the follower is heading to.
func (f PathFollower) Target() path.Point {
	next := f.Index + 1
	if next >= len(f.Route) {
		return f.Route.End()
	}
	return f.Route[next]
}

// Finished reports whether the final waypoint was reached.
func (f PathFollower) Finished() bool {
	return f.Index >= f.Route.LastIndex()
}
