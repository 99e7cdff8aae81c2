package curvetest

import "github.com/npillmayer/geotrait"

// UnitCurve is the trivial curve: a single point without coordinates, on
// the domain (0, 1). It is used for testing code which only relies on the
// shape of the contract.
type UnitCurve struct{}

var _ geotrait.ParametricCurve[struct{}, struct{}] = UnitCurve{}

func (UnitCurve) Subs(float64) struct{} { return struct{}{} }
func (UnitCurve) Der(float64) struct{}  { return struct{}{} }
func (UnitCurve) Der2(float64) struct{} { return struct{}{} }

// ParameterRange is (0, 1).
func (UnitCurve) ParameterRange() (float64, float64) { return 0, 1 }

// StepCurve jumps from First to Second at t = 0.5, on the domain (0, 1).
// Both derivatives are constantly Second-First.
type StepCurve struct {
	First, Second int
}

var _ geotrait.ParametricCurve[int, int] = StepCurve{}

// Subs is First for t < 0.5, Second otherwise.
func (s StepCurve) Subs(t float64) int {
	if t < 0.5 {
		return s.First
	}
	return s.Second
}

func (s StepCurve) Der(float64) int  { return s.Second - s.First }
func (s StepCurve) Der2(float64) int { return s.Second - s.First }

// ParameterRange is (0, 1).
func (s StepCurve) ParameterRange() (float64, float64) { return 0, 1 }
