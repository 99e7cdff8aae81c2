package geotrait

import "fmt"

// CurveCollector folds a sequence of adjacent curve segments of type R into
// one curve of type C. It starts out as a singleton, i.e. without any curve.
// The first segment is converted into a C and seeds the collector, any
// further segment is concatenated onto the curve held.
//
// Many curve representations do not have a sensible empty value; the
// collector spares clients from special-casing the first segment:
//
//	coll := NewCollector[*polyline.Polyline]()
//	for _, seg := range segments {
//	    if _, err := coll.TryConcat(seg); err != nil {
//	        return err
//	    }
//	}
//	curve, ok := coll.Curve()
//
// The collector owns the curve it holds. Segments are never aliased: the
// conversion function must return a value which does not share mutable state
// with the segment.
type CurveCollector[C Concatenator[R, C], R any] struct {
	curve   C
	notnull bool
	into    func(R) C
}

// NewCurveCollector creates an empty collector, converting the first segment
// with into.
func NewCurveCollector[C Concatenator[R, C], R any](into func(R) C) *CurveCollector[C, R] {
	return &CurveCollector[C, R]{into: into}
}

// NewCollector creates an empty collector for segments of the curve type
// itself. The first segment is cloned.
func NewCollector[C interface {
	Concatenator[C, C]
	Cloner[C]
}]() *CurveCollector[C, C] {
	return NewCurveCollector[C, C](func(seg C) C {
		return seg.Clone()
	})
}

// TryConcat adds segment to the collector and returns the collector. If the
// collector already holds a curve and segment is not adjacent to it, TryConcat
// returns nil and a *ConcatError, and the collector remains unchanged.
func (coll *CurveCollector[C, R]) TryConcat(segment R) (*CurveCollector[C, R], error) {
	if !coll.notnull {
		c, err := coll.seed(segment)
		if err != nil {
			return nil, err
		}
		coll.curve, coll.notnull = c, true
		tracer().Debugf("curve collector seeded")
		return coll, nil
	}
	c, err := coll.curve.TryConcat(segment)
	if err != nil {
		return nil, err
	}
	coll.curve = c
	return coll, nil
}

func (coll *CurveCollector[C, R]) seed(segment R) (C, error) {
	if coll.into != nil {
		return coll.into(segment), nil
	}
	// zero value collector: works only for segments of the curve type
	var c C
	switch s := any(segment).(type) {
	case Cloner[C]:
		c = s.Clone()
	case C:
		c = s
	default:
		return c, fmt.Errorf("curve collector has no conversion for segment of type %T", segment)
	}
	return c, nil
}

// Concat adds segment to the collector and returns the collector. It panics
// if segment is not adjacent to the curve held.
func (coll *CurveCollector[C, R]) Concat(segment R) *CurveCollector[C, R] {
	if _, err := coll.TryConcat(segment); err != nil {
		tracer().Errorf("curve collector: %v", err)
		panic(err)
	}
	return coll
}

// IsSingleton is a predicate: has no segment been accepted yet?
func (coll *CurveCollector[C, R]) IsSingleton() bool {
	return !coll.notnull
}

// Unwrap returns the curve held. It panics if the collector is a singleton.
func (coll *CurveCollector[C, R]) Unwrap() C {
	if !coll.notnull {
		panic("curve collector is singleton")
	}
	return coll.curve
}

// Curve returns the curve held and true, or the zero value of C and false
// if the collector is a singleton.
func (coll *CurveCollector[C, R]) Curve() (C, bool) {
	return coll.curve, coll.notnull
}
