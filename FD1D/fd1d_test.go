package FD1D

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUniformGrid(t *testing.T) {
	// The preset interval, [1000, 1500) at dz = 10, has 50 nodes
	{
		g := NewUniformGrid(1000, 1500, 10)
		assert.Equal(t, 50, g.N)
		assert.Equal(t, 1000., g.Z.AtVec(0))
		assert.Equal(t, 1010., g.Z.AtVec(1))
		assert.Equal(t, 1490., g.Z.AtVec(49))
	}
	// Non-dividing dz rounds the node count up, like arange
	{
		g := NewUniformGrid(0, 1, 0.3)
		assert.Equal(t, 4, g.N)
		assert.InDelta(t, 0.9, g.Z.AtVec(3), 1.e-12)
	}
	// Background profile spans the gradient endpoints
	{
		g := NewUniformGrid(1000, 1500, 10)
		T := g.BackgroundProfile(150, 250)
		assert.Equal(t, 150., T.AtVec(0))
		assert.Equal(t, 250., T.AtVec(49))
		assert.InDelta(t, 100./49., T.AtVec(1)-T.AtVec(0), 1.e-12)
	}
	// Degenerate grids panic
	{
		assert.Panics(t, func() { NewUniformGrid(1000, 1000, 10) })
		assert.Panics(t, func() { NewUniformGrid(1000, 1500, 0) })
	}
}

func TestBCTypes(t *testing.T) {
	assert.Equal(t, BCDirichlet, ParseBCName("Dirichlet"))
	assert.Equal(t, BCGradient, ParseBCName(" gradient "))
	assert.Equal(t, BCGradient, ParseBCName("NEUMANN"))
	// Unknown names default to Dirichlet
	assert.Equal(t, BCDirichlet, ParseBCName("free"))
	assert.Equal(t, "Gradient", BCGradient.String())
}

// presetCoefficients builds the stencil numbers for the documented presets
// and a 360 tonne/hr scenario (u = 0.2 m/s through the 0.5 m2 wellhead).
func presetCoefficients() Coefficients {
	return NewCoefficients(10, 0.1, 0.6, 1.00, 4.186, 0.2)
}

func TestCoefficients(t *testing.T) {
	co := presetCoefficients()
	assert.InDelta(t, 0.06/418.6, co.S, 1.e-15)
	assert.InDelta(t, 6.e-4, co.Vn, 1.e-15)
	assert.InDelta(t, 2.e-3, co.C, 1.e-15)
	assert.NoError(t, co.Check())
}

func TestStabilityBounds(t *testing.T) {
	// Bound (1): Courant^2 > 2*vn at a very high injection velocity
	{
		co := NewCoefficients(10, 0.1, 0.6, 1.00, 4.186, 40)
		err := co.Check()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnstable))
	}
	// Bound (2): vn + Courant/4 > 1/2 at a large time step
	{
		co := NewCoefficients(10, 100, 0.6, 1.00, 4.186, 0)
		err := co.Check()
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnstable))
	}
}

func TestAdvectionDiffusionMatrix(t *testing.T) {
	var (
		co = presetCoefficients()
		n  = 50
	)
	A := AdvectionDiffusionMatrix(co, n)
	// Held rows are identity
	for _, i := range []int{0, 1, n - 1} {
		for j := 0; j < n; j++ {
			want := 0.
			if i == j {
				want = 1.
			}
			assert.Equal(t, want, A.At(i, j))
		}
	}
	// Interior stencil, checked against the hand-computed weights
	i := 25
	assert.InDelta(t, co.S-3./8.*co.C, A.At(i, i+1), 1.e-15)
	assert.InDelta(t, 1-2*co.S-3./8.*co.C, A.At(i, i), 1.e-15)
	assert.InDelta(t, co.S+7./8.*co.C, A.At(i, i-1), 1.e-15)
	assert.InDelta(t, -1./8.*co.C, A.At(i, i-2), 1.e-15)
	// Every row sums to one, so a uniform profile is a fixed point
	for i := 0; i < n; i++ {
		var sum float64
		for j := 0; j < n; j++ {
			sum += A.At(i, j)
		}
		assert.InDelta(t, 1., sum, 1.e-12)
	}
	// The matrix is read only after assembly
	assert.Panics(t, func() { A.Set(0, 0, 2) })
}

func TestAdvectionDiffusionCSR(t *testing.T) {
	var (
		co = presetCoefficients()
		n  = 50
	)
	A := AdvectionDiffusionMatrix(co, n)
	ACSR := AdvectionDiffusionCSR(co, n)
	r, c := ACSR.Dims()
	require.Equal(t, n, r)
	require.Equal(t, n, c)
	// The sparse operator is entrywise identical to the dense one
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			assert.InDelta(t, A.At(i, j), ACSR.At(i, j), 1.e-15)
		}
	}
	// Four bands plus three identity rows
	assert.Equal(t, 4*(n-3)+3, ACSR.NNZ())
}

func TestSpectralRadius(t *testing.T) {
	// Stable presets: the largest eigenvalue magnitude is the held rows' one
	{
		A := AdvectionDiffusionMatrix(presetCoefficients(), 50)
		rho, err := SpectralRadius(A)
		require.NoError(t, err)
		assert.InDelta(t, 1., rho, 1.e-6)
	}
	// Far outside the bounds the radius leaves the unit disk and the
	// documented check rejects the step sizes
	{
		co := NewCoefficients(10, 1000, 0.6, 1.00, 4.186, 1./1800.)
		require.Error(t, co.Check())
		A := AdvectionDiffusionMatrix(co, 50)
		rho, err := SpectralRadius(A)
		require.NoError(t, err)
		assert.Greater(t, rho, 2.)
	}
}

func TestStabilityIsGridRefinementSensitive(t *testing.T) {
	// Halving dz at fixed dt eventually violates bound (2), the documented
	// reason the presets are presets
	var (
		failed   bool
		lastGood float64
	)
	for _, dz := range []float64{20, 10, 5, 2.5, 1.25, 0.625} {
		co := NewCoefficients(dz, 1, 0.6, 1.00, 4.186, 0.2)
		if err := co.Check(); err != nil {
			failed = true
			break
		}
		lastGood = dz
	}
	assert.True(t, failed)
	assert.Greater(t, lastGood, 0.)
}
