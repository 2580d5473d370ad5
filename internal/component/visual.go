// internal/component/visual.go
package component

import (
	"code-defense/internal/defs"
	"code-defense/pkg/path"
)

// AttackEffect is a short-lived beam from a tower to the bug it hit.
type AttackEffect struct {
	From      path.Point
	To        path.Point
	Tower     defs.TowerType // picks the beam colour
	Remaining float64        // ms
}
