package geotrait

// === Curve Contract ========================================================

// ParametricCurve is the contract every curve type implements. P is the type
// of the space the curve lives in, V the type of its derivatives.
//
// Subs, Der and Der2 are only required to be meaningful for parameters
// within ParameterRange. Implementations must be deterministic.
type ParametricCurve[P, V any] interface {
	Subs(t float64) P                   // position at t
	Der(t float64) V                    // first derivative at t
	Der2(t float64) V                   // second derivative at t
	ParameterRange() (float64, float64) // domain [t0, t1]
}

// Front returns the front end point of a curve, i.e. c.Subs(t0).
func Front[P, V any](c ParametricCurve[P, V]) P {
	t0, _ := c.ParameterRange()
	return c.Subs(t0)
}

// Back returns the back end point of a curve, i.e. c.Subs(t1).
func Back[P, V any](c ParametricCurve[P, V]) P {
	_, t1 := c.ParameterRange()
	return c.Subs(t1)
}

// Cloner is implemented by curve types which mutate in place. Clone
// returns a duplicate sharing no mutable state with the receiver.
type Cloner[C any] interface {
	Clone() C
}

// === Division Contract =====================================================

// ParameterDivider is implemented by curves able to produce an adaptive
// sampling of their parameter domain.
//
// ParameterDivision returns an ordered sequence of parameters spanning
// [t0, t1], dense enough for the chordal deviation from the curve to stay
// below tol.
type ParameterDivider interface {
	ParameterDivision(t0, t1 float64, tol float64) []float64
}
