package geotrait

import (
	"errors"
	"fmt"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
)

func TestConcatRestriction(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c0 := asPath(newRamp(0, 1, 0, 2))
	c1 := newRamp(1, 3, 2, -1)
	c, err := c0.TryConcat(c1)
	assert.NoError(t, err)
	t0, t2 := c.ParameterRange()
	assert.Equal(t, 0.0, t0)
	assert.Equal(t, 3.0, t2)
	for _, u := range []float64{0, 0.5, 1} {
		assert.Equal(t, c0.Subs(u), c.Subs(u))
		assert.Equal(t, c0.Der(u), c.Der(u))
	}
	for _, u := range []float64{1.5, 2, 3} {
		assert.Equal(t, c1.Subs(u), c.Subs(u))
		assert.Equal(t, c1.Der(u), c.Der(u))
	}
	assert.Len(t, c0.pieces, 1, "TryConcat altered its receiver")
}

func TestConcatDisconnectedParameters(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c0 := asPath(newRamp(0, 1, 0, 2))
	_, err := c0.TryConcat(newRamp(1.5, 3, 2, 1))
	assert.ErrorIs(t, err, ErrDisconnectedParameters)
	var cerr *ConcatError[float64]
	if assert.ErrorAs(t, err, &cerr) {
		assert.Equal(t, DisconnectedParameters, cerr.Kind)
		assert.Equal(t, 1.0, cerr.EndParameter)
		assert.Equal(t, 1.5, cerr.StartParameter)
	}
	assert.Equal(t,
		"the end parameter 1 of the first curve differs from the start parameter 1.5 of the second curve",
		err.Error())
}

func TestConcatDisconnectedPoints(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c0 := asPath(newRamp(0, 1, 0, 2))
	_, err := c0.TryConcat(newRamp(1, 3, 7, 1))
	assert.ErrorIs(t, err, ErrDisconnectedPoints)
	assert.False(t, errors.Is(err, ErrDisconnectedParameters))
	var cerr *ConcatError[float64]
	if assert.ErrorAs(t, err, &cerr) {
		assert.Equal(t, DisconnectedPoints, cerr.Kind)
		assert.Equal(t, 2.0, cerr.EndPoint)
		assert.Equal(t, 7.0, cerr.StartPoint)
	}
	assert.Equal(t,
		"the end point 2 of the first curve differs from the start point 7 of the second curve",
		err.Error())
}

func TestMustConcat(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	c0 := asPath(newRamp(0, 1, 0, 2))
	c := MustConcat[*ramp, *path](c0, newRamp(1, 2, 2, 2))
	assert.Equal(t, 4.0, Back[float64, float64](c))
	mustPanic(t, func() {
		MustConcat[*ramp, *path](c0, newRamp(2, 3, 2, 2))
	})
}

func TestMapConcatError(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	label := func(p float64) string { return fmt.Sprintf("<%g>", p) }
	perr := MapConcatError(NewDisconnectedPoints(1.0, 2.0, 3.0), label)
	assert.Equal(t, DisconnectedPoints, perr.Kind)
	assert.Equal(t, "<2>", perr.EndPoint)
	assert.Equal(t, "<3>", perr.StartPoint)
	assert.ErrorIs(t, perr, ErrDisconnectedPoints)
	qerr := MapConcatError(NewDisconnectedParameters[float64](1, 2), label)
	assert.Equal(t, DisconnectedParameters, qerr.Kind)
	assert.Equal(t, 1.0, qerr.EndParameter)
	assert.Equal(t, 2.0, qerr.StartParameter)
	assert.Equal(t, "", qerr.EndPoint)
	assert.Nil(t, MapConcatError[float64, string](nil, label))
}
