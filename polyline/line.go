package polyline

import (
	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/geotrait"
)

// Line is a straight segment from P0 at parameter T0 to P1 at parameter T1.
// T0 and T1 must differ.
type Line struct {
	P0, P1 Point
	T0, T1 float64
}

var _ Segment = Line{}
var _ geotrait.ParameterDivider = Line{}

// L is a quick notation for a line on the domain (0, 1).
func L(p0, p1 Point) Line {
	return Line{P0: p0, P1: p1, T0: 0, T1: 1}
}

// Subs interpolates linearly between P0 and P1. Outside of [T0, T1] the line
// is extrapolated.
func (l Line) Subs(t float64) Point {
	return interpolate(l.P0, l.P1, l.T0, l.T1, t)
}

// Der is the constant velocity (P1-P0)/(T1-T0).
func (l Line) Der(float64) Vector {
	return velocity(l.P0, l.P1, l.T0, l.T1)
}

// Der2 is always zero.
func (l Line) Der2(float64) Vector {
	return Vector{}
}

func (l Line) ParameterRange() (float64, float64) {
	return l.T0, l.T1
}

// ParameterDivision of a line needs no interior parameters.
func (l Line) ParameterDivision(t0, t1 float64, tol float64) []float64 {
	return []float64{t0, t1}
}

// Polyline converts l to a polyline with a single span.
func (l Line) Polyline() *Polyline {
	return &Polyline{
		knots:  []float64{l.T0, l.T1},
		points: []Point{l.P0, l.P1},
		ders:   []Vector{l.Der(l.T0)},
	}
}

// --- Vector helpers --------------------------------------------------------

func interpolate(p, q Point, a, b, t float64) Point {
	switch {
	case t == a || a == b:
		return p
	case t == b:
		return q
	}
	w := (t - a) / (b - a)
	return polyclip.Point{
		X: p.X + (q.X-p.X)*w,
		Y: p.Y + (q.Y-p.Y)*w,
	}
}

func velocity(p, q Point, a, b float64) Vector {
	d := b - a
	return polyclip.Point{X: (q.X - p.X) / d, Y: (q.Y - p.Y) / d}
}

// within is a predicate: is t on the closed span between a and b, in either
// orientation?
func within(t, a, b float64) bool {
	return (a <= t && t <= b) || (b <= t && t <= a)
}
