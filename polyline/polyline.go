/*
Package polyline implements piecewise linear curves in the plane.

Polylines are about the simplest curves implementing all capabilities of
package geotrait: parameter transforms, concatenation, cuts and parameter
division. Points and derivative vectors are polyclip points.

Derivatives are reported with respect to the parameter a polyline has been
created with. Parameter transforms and cuts leave them untouched, so that a
transformed polyline yields at a·t+b the same derivative the original yielded
at t.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package polyline

import (
	"errors"
	"fmt"
	"math"
	"strings"

	polyclip "github.com/akavel/polyclip-go"
	"github.com/npillmayer/geotrait"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'geotrait'
func tracer() tracing.Trace {
	return tracing.Select("geotrait")
}

// Point is the type of positions on a polyline.
type Point = polyclip.Point

// Vector is the type of derivatives of a polyline.
type Vector = polyclip.Point

var (
	// ErrTooFewKnots indicates a polyline with less than two knots.
	ErrTooFewKnots = errors.New("polyline has too few knots")
	// ErrKnotCount indicates a mismatch between the number of knots and points.
	ErrKnotCount = errors.New("polyline needs a knot for every point")
	// ErrInvalidKnot indicates a knot or point containing NaN/Inf.
	ErrInvalidKnot = errors.New("polyline has invalid knot")
	// ErrNotMonotone indicates knots which are not strictly increasing or decreasing.
	ErrNotMonotone = errors.New("polyline knots are not strictly monotone")
)

// Segment is a curve which may be appended to a polyline.
type Segment interface {
	geotrait.ParametricCurve[Point, Vector]
	Polyline() *Polyline
}

// Polyline is a piecewise linear curve. Point i sits at knot i. Every span
// between two knots carries its own derivative vector.
//
// Polylines are mutated in place by ParameterTransform and Cut; use Clone to
// keep a copy.
type Polyline struct {
	knots  []float64 // parameter at point i
	points []Point   // point i
	ders   []Vector  // derivative on span [i, i+1]
}

var _ Segment = (*Polyline)(nil)
var _ geotrait.ParameterTransformer[*Polyline] = (*Polyline)(nil)
var _ geotrait.Cutter[*Polyline] = (*Polyline)(nil)
var _ geotrait.Concatenator[Segment, *Polyline] = (*Polyline)(nil)
var _ geotrait.ParameterDivider = (*Polyline)(nil)

// New creates a polyline through points, with point i located at parameter
// knots[i]. Knots have to be strictly monotone.
func New(knots []float64, points []Point) (*Polyline, error) {
	if len(points) < 2 {
		return nil, fmt.Errorf("%w: %d knots", ErrTooFewKnots, len(points))
	}
	if len(knots) != len(points) {
		return nil, fmt.Errorf("%w: %d knots for %d points", ErrKnotCount, len(knots), len(points))
	}
	for i, k := range knots {
		if !finite(k) || !finite(points[i].X) || !finite(points[i].Y) {
			return nil, fmt.Errorf("%w at index %d", ErrInvalidKnot, i)
		}
	}
	asc := knots[1] > knots[0]
	for i := 1; i < len(knots); i++ {
		if knots[i] == knots[i-1] || (knots[i] > knots[i-1]) != asc {
			return nil, fmt.Errorf("%w at index %d", ErrNotMonotone, i)
		}
	}
	pl := &Polyline{
		knots:  append([]float64(nil), knots...),
		points: append([]Point(nil), points...),
		ders:   make([]Vector, len(points)-1),
	}
	for i := range pl.ders {
		pl.ders[i] = velocity(points[i], points[i+1], knots[i], knots[i+1])
	}
	return pl, nil
}

// MustNew is like New, but panics on invalid input.
func MustNew(knots []float64, points []Point) *Polyline {
	pl, err := New(knots, points)
	if err != nil {
		tracer().Errorf("polyline: %v", err)
		panic(err)
	}
	return pl
}

// Through creates a polyline through points, with point i at parameter i.
func Through(points ...Point) (*Polyline, error) {
	knots := make([]float64, len(points))
	for i := range knots {
		knots[i] = float64(i)
	}
	return New(knots, points)
}

func finite(x float64) bool {
	return !math.IsNaN(x) && !math.IsInf(x, 0)
}

// N returns the number of knots.
func (pl *Polyline) N() int {
	return len(pl.knots)
}

// Knot returns the parameter of point i.
func (pl *Polyline) Knot(i int) float64 {
	return pl.knots[i]
}

// Z returns point i.
func (pl *Polyline) Z(i int) Point {
	return pl.points[i]
}

// span finds the first span containing t. Outside the domain, the span at
// the nearer end is used.
func (pl *Polyline) span(t float64) int {
	for i := range pl.ders {
		if within(t, pl.knots[i], pl.knots[i+1]) {
			return i
		}
	}
	last := len(pl.ders) - 1
	if math.Abs(t-pl.knots[0]) <= math.Abs(t-pl.knots[last+1]) {
		return 0
	}
	return last
}

// --- Curve contract --------------------------------------------------------

func (pl *Polyline) Subs(t float64) Point {
	i := pl.span(t)
	return interpolate(pl.points[i], pl.points[i+1], pl.knots[i], pl.knots[i+1], t)
}

func (pl *Polyline) Der(t float64) Vector {
	return pl.ders[pl.span(t)]
}

// Der2 is zero everywhere; kinks at knots are not reported.
func (pl *Polyline) Der2(float64) Vector {
	return Vector{}
}

func (pl *Polyline) ParameterRange() (float64, float64) {
	return pl.knots[0], pl.knots[len(pl.knots)-1]
}

// --- Capabilities ----------------------------------------------------------

// Clone returns a deep copy of pl.
func (pl *Polyline) Clone() *Polyline {
	return &Polyline{
		knots:  append([]float64(nil), pl.knots...),
		points: append([]Point(nil), pl.points...),
		ders:   append([]Vector(nil), pl.ders...),
	}
}

// Polyline returns a clone of pl, making polylines segments of themselves.
func (pl *Polyline) Polyline() *Polyline {
	return pl.Clone()
}

// ParameterTransform moves every knot k to scalar·k + move. Derivatives are
// kept.
func (pl *Polyline) ParameterTransform(scalar, move float64) *Polyline {
	for i, k := range pl.knots {
		pl.knots[i] = scalar*k + move
	}
	return pl
}

// Cut restricts pl to [t0, t] and returns the polyline for [t, t1]. If t is
// an inner knot, no point is inserted. Cutting at an end of the domain
// results in a part with a single degenerate span.
func (pl *Polyline) Cut(t float64) *Polyline {
	i := pl.span(t)
	if t == pl.knots[i+1] && i+2 < len(pl.knots) {
		tracer().Debugf("cutting polyline at knot %d", i+1)
		rest := &Polyline{
			knots:  append([]float64(nil), pl.knots[i+1:]...),
			points: append([]Point(nil), pl.points[i+1:]...),
			ders:   append([]Vector(nil), pl.ders[i+1:]...),
		}
		pl.knots, pl.points, pl.ders = pl.knots[:i+2:i+2], pl.points[:i+2:i+2], pl.ders[:i+1:i+1]
		return rest
	}
	z := pl.Subs(t)
	tracer().Debugf("cutting polyline in span %d at t=%g", i, t)
	rest := &Polyline{
		knots:  append([]float64{t}, pl.knots[i+1:]...),
		points: append([]Point{z}, pl.points[i+1:]...),
		ders:   append([]Vector(nil), pl.ders[i:]...),
	}
	pl.knots = append(pl.knots[:i+1:i+1], t)
	pl.points = append(pl.points[:i+1:i+1], z)
	pl.ders = pl.ders[: i+1 : i+1]
	return rest
}

// TryConcat appends rhs to a copy of pl. The domain of rhs has to start
// exactly where the domain of pl ends, and the end points have to match.
// Otherwise TryConcat returns a *geotrait.ConcatError[Point]. Both domains
// have to run in the same direction, or the joined knots would not be
// monotone; TryConcat then returns an error matching ErrNotMonotone.
// Domains of length zero fit either direction.
func (pl *Polyline) TryConcat(rhs Segment) (*Polyline, error) {
	if err := geotrait.CheckConcat[Point, Vector](pl, rhs); err != nil {
		return nil, err
	}
	if !sameOrientation(pl, rhs) {
		t0, t1 := pl.ParameterRange()
		s0, s1 := rhs.ParameterRange()
		tracer().Debugf("cannot concat domains (%g,%g) and (%g,%g)", t0, t1, s0, s1)
		return nil, fmt.Errorf("%w: domain (%g,%g) cannot be continued by domain (%g,%g)",
			ErrNotMonotone, t0, t1, s0, s1)
	}
	tail := rhs.Polyline()
	joined := pl.Clone()
	joined.knots = append(joined.knots, tail.knots[1:]...)
	joined.points = append(joined.points, tail.points[1:]...)
	joined.ders = append(joined.ders, tail.ders...)
	return joined, nil
}

func sameOrientation(c0, c1 Segment) bool {
	t0, t1 := c0.ParameterRange()
	s0, s1 := c1.ParameterRange()
	if t0 == t1 || s0 == s1 {
		return true
	}
	return (t1 > t0) == (s1 > s0)
}

// Concat is like TryConcat, but panics if rhs is not adjacent to pl.
func (pl *Polyline) Concat(rhs Segment) *Polyline {
	return geotrait.MustConcat[Segment, *Polyline](pl, rhs)
}

// ParameterDivision returns t0, the knots strictly between t0 and t1, and t1.
// Polylines are reproduced exactly by their knots, thus tol is not needed.
func (pl *Polyline) ParameterDivision(t0, t1 float64, tol float64) []float64 {
	var inner []float64
	for _, k := range pl.knots {
		if k != t0 && k != t1 && within(k, t0, t1) {
			inner = append(inner, k)
		}
	}
	s0, s1 := pl.ParameterRange()
	if (s1 > s0) != (t1 > t0) { // requested against the orientation of pl
		for i, j := 0, len(inner)-1; i < j; i, j = i+1, j-1 {
			inner[i], inner[j] = inner[j], inner[i]
		}
	}
	division := make([]float64, 0, len(inner)+2)
	division = append(division, t0)
	division = append(division, inner...)
	return append(division, t1)
}

// Collector creates an empty curve collector accepting lines and polylines.
func Collector() *geotrait.CurveCollector[*Polyline, Segment] {
	return geotrait.NewCurveCollector(func(seg Segment) *Polyline {
		return seg.Polyline()
	})
}

// --- Geometry --------------------------------------------------------------

// Contour returns the points of pl as a polyclip contour.
func (pl *Polyline) Contour() polyclip.Contour {
	return polyclip.Contour(append([]Point(nil), pl.points...))
}

// BoundingBox returns the smallest axis-aligned rectangle enclosing pl.
func (pl *Polyline) BoundingBox() polyclip.Rectangle {
	return pl.Contour().BoundingBox()
}

// String returns a polyline in MetaPost-like notation, e.g.
// "(0,0) .. (1,2) .. (3,2)".
func (pl *Polyline) String() string {
	var b strings.Builder
	for i, z := range pl.points {
		if i > 0 {
			b.WriteString(" .. ")
		}
		fmt.Fprintf(&b, "(%g,%g)", z.X, z.Y)
	}
	return b.String()
}
