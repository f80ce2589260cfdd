package steady_state

import (
	"math"
)

/*
Long-time references for the transient reinjection model. With both ends of
the interval held, the temperature relaxes to the solution of

	kappa * T'' - u * T' = 0

which is linear for pure conduction and an exponential boundary layer profile
once advection participates, with the layer width set by the Peclet number
Pe = u*L/kappa. At reservoir reinjection rates Pe is in the hundreds, so the
held upstream temperature fills nearly the whole interval.
*/

// Peclet is the ratio of advective to diffusive transport over a length.
func Peclet(u, length, kappa float64) float64 {
	return u * length / kappa
}

// Conduction is the steady pure-conduction profile between two held
// temperatures, the linear background gradient.
func Conduction(z, z1, z2, t1, t2 float64) float64 {
	return t1 + (t2-t1)*(z-z1)/(z2-z1)
}

// AdvectionDiffusion is the steady profile with both ends held, downward
// velocity u and thermal diffusivity kappa,
//
//	T(zeta) = T1 + (T2-T1) * (exp(Pe*zeta)-1) / (exp(Pe)-1)
//
// evaluated through expm1 so small Peclet numbers keep full precision.
func AdvectionDiffusion(z, z1, z2, t1, t2, u, kappa float64) float64 {
	var (
		zeta = (z - z1) / (z2 - z1)
		pe   = Peclet(u, z2-z1, kappa)
	)
	switch {
	case math.Abs(pe) < 1.e-12:
		return Conduction(z, z1, z2, t1, t2)
	case pe > 700:
		// expm1 overflows above this; the profile collapses to the upstream
		// value outside a boundary layer of width L/Pe at the far end
		return t1 + (t2-t1)*math.Exp(pe*(zeta-1))
	default:
		return t1 + (t2-t1)*math.Expm1(pe*zeta)/math.Expm1(pe)
	}
}

// Profiles samples both references on a node set, convenient for overlay
// plotting against a transient run.
func Profiles(Z []float64, t1, t2, u, kappa float64) (Cond, AdvDiff []float64) {
	var (
		n      = len(Z)
		z1, z2 = Z[0], Z[n-1]
	)
	Cond = make([]float64, n)
	AdvDiff = make([]float64, n)
	for i, z := range Z {
		Cond[i] = Conduction(z, z1, z2, t1, t2)
		AdvDiff[i] = AdvectionDiffusion(z, z1, z2, t1, t2, u, kappa)
	}
	return
}
