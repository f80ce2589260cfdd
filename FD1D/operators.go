package FD1D

import (
	"github.com/james-bowman/sparse"
	"github.com/notargets/geotherm/utils"
)

/*
One-step propagation matrix for the explicit advection-diffusion update,
T <- A*T. Diffusion is the central second difference, advection the
quadratic upwind (QUICK) interpolation, which reaches two nodes upstream:

	A[i,i+1] = S - (3/8)C
	A[i,i]   = 1 - 2S - (3/8)C
	A[i,i-1] = S + (7/8)C
	A[i,i-2] = -(1/8)C

Interior rows run i = 2..n-2; rows 0, 1 and n-1 are identity so the held
boundary and injection values pass through unchanged. Row sums are one, so
a uniform profile is a fixed point of the update.
*/

// AdvectionDiffusionMatrix assembles the dense propagation matrix and marks
// it read only; the time loop never writes to it.
func AdvectionDiffusionMatrix(co Coefficients, n int) (A utils.Matrix) {
	A = utils.NewMatrix(n, n)
	for i := 2; i < n-1; i++ {
		A.Set(i, i+1, co.S-3./8.*co.C)
		A.Set(i, i, 1-2*co.S-3./8.*co.C)
		A.Set(i, i-1, co.S+7./8.*co.C)
		A.Set(i, i-2, -1./8.*co.C)
	}
	A.Set(0, 0, 1)
	A.Set(1, 1, 1)
	A.Set(n-1, n-1, 1)
	A.SetReadOnly("AdvectionDiffusionMatrix")
	return
}

// AdvectionDiffusionCSR assembles the same operator in compressed sparse row
// form for the per-step product; four bands in a 50x50 system leave most of
// the dense matrix empty.
func AdvectionDiffusionCSR(co Coefficients, n int) (A *sparse.CSR) {
	ADOK := sparse.NewDOK(n, n)
	for i := 2; i < n-1; i++ {
		ADOK.Set(i, i+1, co.S-3./8.*co.C)
		ADOK.Set(i, i, 1-2*co.S-3./8.*co.C)
		ADOK.Set(i, i-1, co.S+7./8.*co.C)
		ADOK.Set(i, i-2, -1./8.*co.C)
	}
	ADOK.Set(0, 0, 1)
	ADOK.Set(1, 1, 1)
	ADOK.Set(n-1, n-1, 1)
	A = ADOK.ToCSR()
	return
}
