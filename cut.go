package geotrait

// Cutter is implemented by curves which may be split at a parameter.
//
// Cut(t), with t within the domain [t0, t1], restricts the receiver to
// [t0, t] and returns a new curve for [t, t1]. Both parts keep the values the
// receiver had before the call. The back end point of the receiver, the front
// end point of the returned curve and the original Subs(t) are identical.
type Cutter[C any] interface {
	Cut(t float64) C
}
