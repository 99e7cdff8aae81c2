package curvetest

import (
	"math/rand/v2"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/npillmayer/geotrait"
)

// === Reparametrization =====================================================

// ParameterTransformRandomTest checks the laws of parameter transforms on
// curve. Each trial draws a scalar a with random sign and magnitude in
// [0.5, 1.5) and a move b in [0, 2), and checks for the curve returned by
// geotrait.ParameterTransformed:
//
//   - its domain is (a·t0+b, a·t1+b)
//   - at a random parameter t, Subs/Der/Der2 at a·t+b equal the original values at t
//   - front and back end points are unchanged
//   - curve itself has not been altered
func ParameterTransformRandomTest[C TransformCurve[C, P, V], P, V any](t testing.TB, rng *rand.Rand,
	curve C, trials int, opts ...cmp.Option) {

	t.Helper()
	for i := 0; i < trials; i++ {
		execParameterTransformTest[C, P, V](t, rng, curve, opts)
	}
}

func execParameterTransformTest[C TransformCurve[C, P, V], P, V any](t testing.TB, rng *rand.Rand,
	curve C, opts []cmp.Option) {

	t.Helper()
	sign := 1.0
	if rng.IntN(2) == 0 {
		sign = -1.0
	}
	a := sign * (rng.Float64() + 0.5)
	b := rng.Float64() * 2.0
	tracer().Debugf("parameter transform trial with scalar=%g, move=%g", a, b)
	chk := checker{t: t, law: "parameter transform", opts: opts}

	t0, t1 := curve.ParameterRange()
	front, back := geotrait.Front[P, V](curve), geotrait.Back[P, V](curve)
	transformed := geotrait.ParameterTransformed(curve, a, b)

	s0, s1 := transformed.ParameterRange()
	chk.rangeEqual("parameter range", t0*a+b, t1*a+b, s0, s1)
	u := between(t0, t1, rng.Float64())
	chk.equal("subs", curve.Subs(u), transformed.Subs(u*a+b))
	chk.equal("der", curve.Der(u), transformed.Der(u*a+b))
	chk.equal("der2", curve.Der2(u), transformed.Der2(u*a+b))
	chk.equal("front", front, geotrait.Front[P, V](transformed))
	chk.equal("back", back, geotrait.Back[P, V](transformed))

	r0, r1 := curve.ParameterRange()
	chk.rangeEqual("parameter range of the untransformed curve", t0, t1, r0, r1)
	chk.equal("front of the untransformed curve", front, geotrait.Front[P, V](curve))
}

// === Concatenation =========================================================

// ConcatRandomTest checks the laws of concatenating curve0 and curve1, which
// must be adjacent. The concatenated curve must span
// [t0 of curve0, t1 of curve1], and reproduce position, derivatives and end
// points of curve0 and curve1 at random parameters of their domains.
func ConcatRandomTest[L ConcatCurve[R, O, P, V], R, O geotrait.ParametricCurve[P, V], P, V any](
	t testing.TB, rng *rand.Rand, curve0 L, curve1 R, trials int, opts ...cmp.Option) {

	t.Helper()
	for i := 0; i < trials; i++ {
		execConcatTest[L, R, O, P, V](t, rng, curve0, curve1, opts)
	}
}

func execConcatTest[L ConcatCurve[R, O, P, V], R, O geotrait.ParametricCurve[P, V], P, V any](
	t testing.TB, rng *rand.Rand, curve0 L, curve1 R, opts []cmp.Option) {

	t.Helper()
	concatted, err := curve0.TryConcat(curve1)
	if err != nil {
		t.Errorf("concat: curves are not adjacent: %v", err)
		return
	}
	chk := checker{t: t, law: "concat", opts: opts}
	t0, t1 := curve0.ParameterRange()
	_, t2 := curve1.ParameterRange()
	s0, s2 := concatted.ParameterRange()
	chk.rangeEqual("parameter range", t0, t2, s0, s2)

	u := between(t0, t1, rng.Float64())
	chk.equal("subs on first curve", curve0.Subs(u), concatted.Subs(u))
	chk.equal("der on first curve", curve0.Der(u), concatted.Der(u))
	chk.equal("der2 on first curve", curve0.Der2(u), concatted.Der2(u))
	chk.equal("front", geotrait.Front[P, V](curve0), geotrait.Front[P, V](concatted))

	u = between(t1, t2, rng.Float64())
	chk.equal("subs on second curve", curve1.Subs(u), concatted.Subs(u))
	chk.equal("der on second curve", curve1.Der(u), concatted.Der(u))
	chk.equal("der2 on second curve", curve1.Der2(u), concatted.Der2(u))
	chk.equal("back", geotrait.Back[P, V](curve1), geotrait.Back[P, V](concatted))
}

// === Cut ===================================================================

// CutRandomTest checks the laws of cutting a clone of curve at a random
// parameter t: the parts must span [t0, t] and [t, t1], reproduce the
// original curve on their domains, and meet at Subs(t).
func CutRandomTest[C CutCurve[C, P, V], P, V any](t testing.TB, rng *rand.Rand,
	curve C, trials int, opts ...cmp.Option) {

	t.Helper()
	for i := 0; i < trials; i++ {
		execCutTest[C, P, V](t, rng, curve, opts)
	}
}

func execCutTest[C CutCurve[C, P, V], P, V any](t testing.TB, rng *rand.Rand,
	curve C, opts []cmp.Option) {

	t.Helper()
	chk := checker{t: t, law: "cut", opts: opts}
	t0, t1 := curve.ParameterRange()
	tc := between(t0, t1, rng.Float64())
	tracer().Debugf("cut trial at t=%g", tc)
	part0 := curve.Clone()
	part1 := part0.Cut(tc)

	r0, r1 := part0.ParameterRange()
	chk.rangeEqual("parameter range of first part", t0, tc, r0, r1)
	r0, r1 = part1.ParameterRange()
	chk.rangeEqual("parameter range of second part", tc, t1, r0, r1)

	u := between(t0, tc, rng.Float64())
	chk.equal("subs on first part", curve.Subs(u), part0.Subs(u))
	chk.equal("der on first part", curve.Der(u), part0.Der(u))
	chk.equal("der2 on first part", curve.Der2(u), part0.Der2(u))
	chk.equal("front of first part", geotrait.Front[P, V](curve), geotrait.Front[P, V](part0))
	chk.equal("back of first part", curve.Subs(tc), geotrait.Back[P, V](part0))

	u = between(tc, t1, rng.Float64())
	chk.equal("subs on second part", curve.Subs(u), part1.Subs(u))
	chk.equal("der on second part", curve.Der(u), part1.Der(u))
	chk.equal("der2 on second part", curve.Der2(u), part1.Der2(u))
	chk.equal("front of second part", curve.Subs(tc), geotrait.Front[P, V](part1))
	chk.equal("back of second part", geotrait.Back[P, V](curve), geotrait.Back[P, V](part1))
}
