// pkg/path/polyline.go
package path

import "math"

// Polyline is the fixed route enemies walk, from the first point to the last.
type Polyline []Point

// Start returns the spawn point.
func (pl Polyline) Start() Point {
	if len(pl) == 0 {
		return Point{}
	}
	return pl[0]
}

// End returns the breach point.
func (pl Polyline) End() Point {
	if len(pl) == 0 {
		return Point{}
	}
	return pl[len(pl)-1]
}

// LastIndex is the path-index at which a walker has reached the end.
func (pl Polyline) LastIndex() int {
	return len(pl) - 1
}

// Length returns the total length of all segments.
func (pl Polyline) Length() float64 {
	total := 0.0
	for i := 1; i < len(pl); i++ {
		total += pl[i-1].Distance(pl[i])
	}
	return total
}

// Clone returns a copy that shares no memory with pl.
func (pl Polyline) Clone() Polyline {
	if pl == nil {
		return nil
	}
	out := make(Polyline, len(pl))
	copy(out, pl)
	return out
}

// Travelled returns how far along the route a walker at pos is, given the index
// of the last waypoint it passed.
func (pl Polyline) Travelled(index int, pos Point) float64 {
	if len(pl) == 0 {
		return 0
	}
	if index >= len(pl) {
		index = len(pl) - 1
	}
	total := 0.0
	for i := 1; i <= index; i++ {
		total += pl[i-1].Distance(pl[i])
	}
	return total + pl[index].Distance(pos)
}

// DistanceTo returns the shortest distance from p to any segment of the route.
func (pl Polyline) DistanceTo(p Point) float64 {
	switch len(pl) {
	case 0:
		return math.Inf(1)
	case 1:
		return pl[0].Distance(p)
	}
	best := math.Inf(1)
	for i := 1; i < len(pl); i++ {
		if d := segmentDistance(pl[i-1], pl[i], p); d < best {
			best = d
		}
	}
	return best
}

func segmentDistance(a, b, p Point) float64 {
	dx, dy := b.X-a.X, b.Y-a.Y
	lenSq := dx*dx + dy*dy
	if lenSq == 0 {
		return a.Distance(p)
	}
	t := ((p.X-a.X)*dx + (p.Y-a.Y)*dy) / lenSq
	t = math.Max(0, math.Min(1, t))
	return Point{X: a.X + t*dx, Y: a.Y + t*dy}.Distance(p)
}
