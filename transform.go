package geotrait

// ParameterTransformer is implemented by curves whose parameter domain may be
// moved by an affine transformation. C is usually a pointer type, the curve
// type itself.
//
// ParameterTransform replaces the parametrization t ↦ t by
// t ↦ scalar·t + move, in place, and returns the receiver for chaining.
// Afterwards, evaluating the curve at scalar·t + move yields what the
// untransformed curve yielded at t. This holds for positions and for both
// derivative orders: derivative values are not rescaled. The new domain is
// (scalar·t0 + move, scalar·t1 + move); for negative scalars the
// front end point still is Subs of the first domain value.
type ParameterTransformer[C any] interface {
	ParameterRange() (float64, float64)
	ParameterTransform(scalar, move float64) C
	Cloner[C]
}

// ParameterTransformed returns a transformed copy of c. c is left untouched.
//
//	c1 := ParameterTransformed(c0, 1.0, 2.0)
//	c1.Subs(2.5) == c0.Subs(0.5)
func ParameterTransformed[C ParameterTransformer[C]](c C, scalar, move float64) C {
	return c.Clone().ParameterTransform(scalar, move)
}

// ParameterNormalization transforms the domain of c to (0, 1), in place, and
// returns c.
//
// Callers must guard curves with a degenerate domain t0 = t1: the transform
// parameters will not be finite.
func ParameterNormalization[C ParameterTransformer[C]](c C) C {
	t0, t1 := c.ParameterRange()
	a := 1.0 / (t1 - t0)
	b := -t0 * a
	return c.ParameterTransform(a, b)
}
