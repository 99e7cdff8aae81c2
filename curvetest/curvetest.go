/*
Package curvetest provides randomized law checkers for implementations of the
capabilities of package geotrait.

Each checker takes a random source and a trial count and repeats an
independent trial that many times. Law violations are reported to the
testing.TB as errors; they are never returned as values.

	func TestPolylineCut(t *testing.T) {
	    rng := curvetest.NewRand(1)
	    curvetest.CutRandomTest[*Polyline, Point, Vector](t, rng, pl, 100, curvetest.Approx(1e-9))
	}

By default values are compared exactly, using go-cmp. Curves with
floating-point coordinates will usually need Approx or another cmp.Option.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package curvetest

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/npillmayer/geotrait"
	"github.com/npillmayer/schuko/tracing"
)

// tracer writes to trace with key 'geotrait'
func tracer() tracing.Trace {
	return tracing.Select("geotrait")
}

// NewRand creates a deterministic random source for trials.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Approx is an option for comparing floating-point values (in any nesting,
// e.g. point structs) up to an absolute margin.
func Approx(margin float64) cmp.Option {
	return cmpopts.EquateApprox(0, margin)
}

// TransformCurve is the constraint for curves checked by
// ParameterTransformRandomTest.
type TransformCurve[C, P, V any] interface {
	geotrait.ParametricCurve[P, V]
	geotrait.ParameterTransformer[C]
}

// CutCurve is the constraint for curves checked by CutRandomTest.
type CutCurve[C, P, V any] interface {
	geotrait.ParametricCurve[P, V]
	geotrait.Cutter[C]
	geotrait.Cloner[C]
}

// ConcatCurve is the constraint for the first curve checked by
// ConcatRandomTest.
type ConcatCurve[R, O, P, V any] interface {
	geotrait.ParametricCurve[P, V]
	geotrait.Concatenator[R, O]
}

// checker reports law violations of one trial.
type checker struct {
	t    testing.TB
	law  string
	opts []cmp.Option
}

func (c checker) equal(what string, want, got any) bool {
	c.t.Helper()
	if d := cmp.Diff(want, got, c.opts...); d != "" {
		c.t.Errorf("%s: %s differs (-want +got):\n%s", c.law, what, d)
		return false
	}
	return true
}

func (c checker) rangeEqual(what string, want0, want1, got0, got1 float64) bool {
	c.t.Helper()
	return c.equal(what, [2]float64{want0, want1}, [2]float64{got0, got1})
}

// between returns the parameter dividing [t0, t1] at ratio p.
func between(t0, t1, p float64) float64 {
	return t0*(1-p) + t1*p
}

// CurveContractTest checks that evaluation of c is deterministic, at the
// domain boundaries and at random parameters within the domain.
func CurveContractTest[P, V any](t testing.TB, rng *rand.Rand, c geotrait.ParametricCurve[P, V],
	trials int, opts ...cmp.Option) {
	t.Helper()
	chk := checker{t: t, law: "curve contract", opts: opts}
	t0, t1 := c.ParameterRange()
	r0, r1 := c.ParameterRange()
	chk.rangeEqual("repeated parameter range", t0, t1, r0, r1)
	chk.equal("repeated front", geotrait.Front(c), geotrait.Front(c))
	chk.equal("repeated back", geotrait.Back(c), geotrait.Back(c))
	for i := 0; i < trials; i++ {
		u := between(t0, t1, rng.Float64())
		chk.equal("repeated subs", c.Subs(u), c.Subs(u))
		chk.equal("repeated der", c.Der(u), c.Der(u))
		chk.equal("repeated der2", c.Der2(u), c.Der2(u))
	}
}
