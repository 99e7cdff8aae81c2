/*
Package geotrait implements a generic algebra for parametric curves.

A curve is anything implementing ParametricCurve: it maps a real parameter
within a closed domain [t0, t1] to a point and reports first and second
derivatives. Concrete curve representations (B-splines, polylines, Hobby
splines) live elsewhere; this package only fixes the contract and builds
combinators on top of it:

	ParameterTransformer   affine reparametrization t ↦ a·t + b
	Concatenator           joining curves end-to-start, with continuity checks
	CurveCollector         folding a sequence of segments into one curve
	Cutter                 splitting a curve at a parameter

Concatenation is the only fallible operation. Clients which cannot guarantee
adjacency by construction use TryConcat and inspect the returned
*ConcatError; MustConcat and CurveCollector.Concat treat a disconnection as a
programming error and panic.

Package curvetest contains randomized law checkers for all capabilities.

# BSD License

# Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package geotrait

import "github.com/npillmayer/schuko/tracing"

// tracer writes to trace with key 'geotrait'
func tracer() tracing.Trace {
	return tracing.Select("geotrait")
}
