package FD1D

import (
	"errors"
	"fmt"
	"math/cmplx"

	"github.com/notargets/geotherm/utils"
	"gonum.org/v1/gonum/mat"
)

// ErrUnstable reports scheme parameters outside the explicit stability
// bounds. Callers are expected to fall back to the preset dz/dt rather than
// attempt recovery.
var ErrUnstable = errors.New("explicit scheme is unstable for these steps")

// Coefficients are the nondimensional numbers of the explicit
// advection-diffusion update for one (dz, dt) pair:
//
//	S  = dt*D/(dz^2*rho*cT)  diffusion number entering the stencil
//	Vn = dt*D/dz^2           von Neumann coefficient used by the bounds
//	C  = dt*u/dz             Courant number
type Coefficients struct {
	S, Vn, C float64
	Dz, Dt   float64
}

func NewCoefficients(dz, dt, conductivity, density, specificHeat, velocity float64) (co Coefficients) {
	co = Coefficients{
		S:  (dt * conductivity) / (dz * dz * density * specificHeat),
		Vn: (dt * conductivity) / (dz * dz),
		C:  dt * (velocity / dz),
		Dz: dz,
		Dt: dt,
	}
	return
}

// Check enforces the two bounds the scheme is documented to need:
//
//	(1) C^2 <= 2*Vn
//	(2) Vn + C/4 <= 1/2
//
// A violation wraps ErrUnstable.
func (co Coefficients) Check() error {
	if utils.POW(co.C, 2) > 2*co.Vn {
		return fmt.Errorf("%w: Courant^2 = %8.6f > 2*vn = %8.6f (dz = %v, dt = %v)",
			ErrUnstable, utils.POW(co.C, 2), 2*co.Vn, co.Dz, co.Dt)
	}
	if co.Vn+co.C/4 > 0.5 {
		return fmt.Errorf("%w: vn + Courant/4 = %8.6f > 0.5 (dz = %v, dt = %v)",
			ErrUnstable, co.Vn+co.C/4, co.Dz, co.Dt)
	}
	return nil
}

// SpectralRadius returns max |lambda| over the eigenvalues of the update
// matrix. Radii above one mean some mode grows every step; the held boundary
// rows contribute eigenvalues of exactly one.
func SpectralRadius(A utils.Matrix) (rho float64, err error) {
	var eig mat.Eigen
	if ok := eig.Factorize(A.M, mat.EigenNone); !ok {
		err = fmt.Errorf("eigenvalue decomposition of the update matrix failed")
		return
	}
	for _, lambda := range eig.Values(nil) {
		if r := cmplx.Abs(lambda); r > rho {
			rho = r
		}
	}
	return
}
