package impedance

import (
	"bytes"
	"context"
	"impedance/element"
	"impedance/sweep"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCircuit(t *testing.T) {
	cir := NewCircuit()
	require.NoError(t, cir.Load("load/testdata/combination.net"))
	assert.InDelta(t, 209.99998, cir.Calculate(), 1e-3)

	v, err := cir.Evaluate()
	require.NoError(t, err)
	assert.Equal(t, cir.Calculate(), v)

	cir.SetPower(120)
	assert.InDelta(t, 2*209.99998, cir.Calculate(), 2e-3)

	points, err := cir.Sweep(context.Background(), sweep.Options{From: 60, To: 120, Points: 2})
	require.NoError(t, err)
	assert.Equal(t, element.Power(60), points[0].Power)
	assert.InDelta(t, 209.99998, points[0].Resistance, 1e-3)

	var buf bytes.Buffer
	require.NoError(t, cir.Export(&buf))
	assert.Contains(t, buf.String(), ".power 120")
}

func TestCircuitNotLoaded(t *testing.T) {
	cir := NewCircuit()
	assert.True(t, math.IsNaN(cir.Calculate()))
	_, err := cir.Evaluate()
	assert.ErrorIs(t, err, ErrNotLoaded)
	_, err = cir.Sweep(context.Background(), sweep.Options{From: 1, To: 2, Points: 2})
	assert.ErrorIs(t, err, ErrNotLoaded)
	assert.ErrorIs(t, cir.Export(&bytes.Buffer{}), ErrNotLoaded)
	cir.SetPower(10)
}

func TestCircuitEvaluateErrors(t *testing.T) {
	cir := NewCircuit()
	require.NoError(t, cir.LoadString("r1 [-5]\ns1 [r1]"))
	assert.Equal(t, -5.0, cir.Calculate())
	_, err := cir.Evaluate()
	assert.ErrorIs(t, err, element.ErrNegativeValue)

	require.NoError(t, cir.LoadString("p1 []"))
	assert.True(t, math.IsInf(cir.Calculate(), 1))
	_, err = cir.Evaluate()
	assert.ErrorIs(t, err, element.ErrEmptyParallel)
}
