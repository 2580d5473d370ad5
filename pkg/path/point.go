// pkg/path/point.go
package path

import "math"

// Point is a position in screen pixels.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Pt is shorthand for Point{X: x, Y: y}.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Distance returns the Euclidean distance between p and q.
func (p Point) Distance(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// MoveToward returns the point reached by moving step pixels from p toward q.
// The result never overshoots q.
func (p Point) MoveToward(q Point, step float64) Point {
	d := p.Distance(q)
	if d == 0 || step >= d {
		return q
	}
	return Point{
		X: p.X + (q.X-p.X)/d*step,
		Y: p.Y + (q.Y-p.Y)/d*step,
	}
}

// Within reports whether q lies within radius r of p (inclusive).
func (p Point) Within(q Point, r float64) bool {
	return p.Distance(q) <= r
}
