package steady_state

import (
	"math"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"
)

var (
	o_test        sync.Once
	chart_test    *chart2d.Chart2D
	colormap_test *utils2.ColorMap
)

func TestSteadyState(t *testing.T) {
	var (
		z1, z2, t1, t2 = 1000., 1500., 150., 250.
		kappa          = 0.6 / (1.00 * 4.186)
	)
	// plotInteractive(z1, z2, t1, t2, 0.01, kappa)
	// Conduction is the background gradient
	assert.InDelta(t, 150., Conduction(z1, z1, z2, t1, t2), 1.e-12)
	assert.InDelta(t, 250., Conduction(z2, z1, z2, t1, t2), 1.e-12)
	assert.InDelta(t, 200., Conduction(1250, z1, z2, t1, t2), 1.e-12)
	// Zero velocity reduces the advective profile to conduction
	for _, z := range []float64{1000, 1130, 1250, 1377, 1500} {
		assert.InDelta(t, Conduction(z, z1, z2, t1, t2),
			AdvectionDiffusion(z, z1, z2, t1, t2, 0, kappa), 1.e-12)
	}
	// Moderate Peclet: held ends, boundary layer at the bottom
	{
		u := 0.01
		assert.InDelta(t, 34.8833, Peclet(u, z2-z1, kappa), 0.001)
		check := []float64{
			150.00000000, 150.00000000, 150.00000000, 150.00000000,
			150.00000008, 150.00000266, 150.00008713, 150.00285173,
			150.09334094, 153.05517493, 250.00000000,
		}
		Z := make([]float64, len(check))
		for i := range Z {
			Z[i] = z1 + 50.*float64(i)
		}
		_, AdvDiff := Profiles(Z, t1, t2, u, kappa)
		assert.True(t, isNear(check, AdvDiff, 0.0001))
		// The profile satisfies kappa*T'' = u*T' where it curves
		h := 0.01
		z := 1475.
		d1 := (AdvectionDiffusion(z+h, z1, z2, t1, t2, u, kappa) -
			AdvectionDiffusion(z-h, z1, z2, t1, t2, u, kappa)) / (2 * h)
		d2 := (AdvectionDiffusion(z+h, z1, z2, t1, t2, u, kappa) -
			2*AdvectionDiffusion(z, z1, z2, t1, t2, u, kappa) +
			AdvectionDiffusion(z-h, z1, z2, t1, t2, u, kappa)) / (h * h)
		assert.InEpsilon(t, u*d1, kappa*d2, 1.e-6)
	}
	// Reservoir-rate Peclet numbers exceed the expm1 range and take the
	// collapsed branch: upstream value everywhere but the last node
	{
		u := 480. / 3600. / 0.5
		assert.Greater(t, Peclet(u, z2-z1, kappa), 900.)
		assert.InDelta(t, 150., AdvectionDiffusion(1250, z1, z2, t1, t2, u, kappa), 1.e-9)
		assert.InDelta(t, 250., AdvectionDiffusion(z2, z1, z2, t1, t2, u, kappa), 1.e-9)
	}
	// Monotone in z for either transport balance
	for _, u := range []float64{0, 0.001, 0.01, 0.2667} {
		last := math.Inf(-1)
		for z := z1; z <= z2; z += 25 {
			val := AdvectionDiffusion(z, z1, z2, t1, t2, u, kappa)
			assert.GreaterOrEqual(t, val, last)
			last = val
		}
	}
}

func isNear(a, b []float64, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	for i, val := range a {
		if math.Abs(b[i]-val) > tol {
			return false
		}
	}
	return true
}

func plotInteractive(z1, z2, t1, t2, u, kappa float64) {
	var (
		n = 101
		Z = make([]float64, n)
	)
	for i := range Z {
		Z[i] = z1 + (z2-z1)*float64(i)/float64(n-1)
	}
	Cond, AdvDiff := Profiles(Z, t1, t2, u, kappa)
	Plot(float32(z1), float32(z2), Z, Cond, AdvDiff)
	for {
		time.Sleep(10 * time.Second)
	}
}

func Plot(zmin, zmax float32, Z, Cond, AdvDiff []float64) {
	var (
		fmin, fmax = float32(0), float32(300)
	)
	o_test.Do(func() {
		chart_test = chart2d.NewChart2D(1920, 1280, zmin, zmax, fmin, fmax)
		colormap_test = utils2.NewColorMap(-1, 1, 1)
		go chart_test.Plot()
	})
	pSeries := func(field []float64, name string, color float32, gl chart2d.GlyphType) {
		if err := chart_test.AddSeries(name, Z, field,
			gl, chart2d.Solid, colormap_test.GetRGB(color)); err != nil {
			panic("unable to add graph series")
		}
	}
	pSeries(Cond, "Conduction", -0.7, chart2d.CrossGlyph)
	pSeries(AdvDiff, "AdvectionDiffusion", 0.7, chart2d.BoxGlyph)
}
