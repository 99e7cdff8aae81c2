package geotrait

import (
	"errors"
	"fmt"
)

var (
	// ErrDisconnectedParameters indicates that the domain of the first curve does
	// not end where the domain of the second curve starts.
	ErrDisconnectedParameters = errors.New("disconnected parameters")
	// ErrDisconnectedPoints indicates that the domains of two curves abut, but the
	// end point of the first curve differs from the start point of the second one.
	ErrDisconnectedPoints = errors.New("disconnected points")
)

// ConcatErrorKind tells why two curves could not be concatenated.
type ConcatErrorKind int8

// Kinds of concatenation failures.
const (
	DisconnectedParameters ConcatErrorKind = iota + 1
	DisconnectedPoints
)

func (k ConcatErrorKind) String() string {
	switch k {
	case DisconnectedParameters:
		return "DisconnectedParameters"
	case DisconnectedPoints:
		return "DisconnectedPoints"
	}
	return fmt.Sprintf("ConcatErrorKind(%d)", int8(k))
}

// ConcatError is returned by TryConcat if two curves are not adjacent. It
// carries the offending values: the parameters for DisconnectedParameters,
// the parameters and end points for DisconnectedPoints.
type ConcatError[P any] struct {
	Kind           ConcatErrorKind
	EndParameter   float64 // end of the first curve's domain
	StartParameter float64 // start of the second curve's domain
	EndPoint       P       // back end point of the first curve
	StartPoint     P       // front end point of the second curve
}

// NewDisconnectedParameters creates an error for curves with non-abutting domains.
func NewDisconnectedParameters[P any](end, start float64) *ConcatError[P] {
	return &ConcatError[P]{
		Kind:           DisconnectedParameters,
		EndParameter:   end,
		StartParameter: start,
	}
}

// NewDisconnectedPoints creates an error for curves with abutting domains but
// differing end points. t is the shared domain boundary.
func NewDisconnectedPoints[P any](t float64, end, start P) *ConcatError[P] {
	return &ConcatError[P]{
		Kind:           DisconnectedPoints,
		EndParameter:   t,
		StartParameter: t,
		EndPoint:       end,
		StartPoint:     start,
	}
}

func (e *ConcatError[P]) Error() string {
	if e.Kind == DisconnectedPoints {
		return fmt.Sprintf("the end point %v of the first curve differs from the start point %v of the second curve",
			e.EndPoint, e.StartPoint)
	}
	return fmt.Sprintf("the end parameter %g of the first curve differs from the start parameter %g of the second curve",
		e.EndParameter, e.StartParameter)
}

// Unwrap makes ConcatErrors match ErrDisconnectedParameters or
// ErrDisconnectedPoints with errors.Is.
func (e *ConcatError[P]) Unwrap() error {
	if e.Kind == DisconnectedPoints {
		return ErrDisconnectedPoints
	}
	return ErrDisconnectedParameters
}

// MapConcatError transforms the points carried by a concatenation error,
// preserving its kind. Wrapping curve types use it to report errors in terms
// of their own point representation.
func MapConcatError[P, Q any](e *ConcatError[P], f func(P) Q) *ConcatError[Q] {
	if e == nil {
		return nil
	}
	m := &ConcatError[Q]{
		Kind:           e.Kind,
		EndParameter:   e.EndParameter,
		StartParameter: e.StartParameter,
	}
	if e.Kind == DisconnectedPoints {
		m.EndPoint, m.StartPoint = f(e.EndPoint), f(e.StartPoint)
	}
	return m
}

// Concatenator is implemented by curves which may be joined with a following
// curve of type R, resulting in a curve of type O.
//
// TryConcat must not alter the receiver or rhs. On success the result has
// domain [t0 of the receiver, t1 of rhs] and equals the receiver on the
// receiver's domain and rhs on rhs's domain. If the receiver's domain end
// differs from rhs's domain start (exact comparison), or if the end points
// differ, TryConcat returns a *ConcatError.
type Concatenator[R, O any] interface {
	TryConcat(rhs R) (O, error)
}

// CheckConcat checks the preconditions of concatenating lhs and rhs and
// returns a *ConcatError if they are not met, nil otherwise. Parameters are
// compared first, then end points. Implementations of TryConcat with
// comparable point types are expected to call it.
func CheckConcat[P comparable, V any](lhs, rhs ParametricCurve[P, V]) error {
	_, t1 := lhs.ParameterRange()
	t0, _ := rhs.ParameterRange()
	if t1 != t0 {
		tracer().Debugf("cannot concat curves at parameters %g and %g", t1, t0)
		return NewDisconnectedParameters[P](t1, t0)
	}
	back, front := lhs.Subs(t1), rhs.Subs(t0)
	if back != front {
		tracer().Debugf("cannot concat curves at points %v and %v", back, front)
		return NewDisconnectedPoints(t1, back, front)
	}
	return nil
}

// MustConcat concatenates lhs and rhs and panics if they are not adjacent.
// Use it only if adjacency has been established by construction.
func MustConcat[R, O any](lhs Concatenator[R, O], rhs R) O {
	c, err := lhs.TryConcat(rhs)
	if err != nil {
		tracer().Errorf("concat: %v", err)
		panic(err)
	}
	return c
}
