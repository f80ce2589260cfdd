package utils

import (
	"fmt"

	"gonum.org/v1/gonum/blas/blas64"
	"gonum.org/v1/gonum/mat"
)

type Vector struct {
	V *mat.VecDense
}

func NewVector(n int, dataO ...[]float64) (R Vector) {
	if len(dataO) != 0 {
		if len(dataO[0]) != n {
			err := fmt.Errorf("mismatch in allocation: NewVector n = %v, len(data[0]) = %v", n, len(dataO[0]))
			panic(err)
		}
		R = Vector{mat.NewVecDense(n, dataO[0])}
	} else {
		R = Vector{mat.NewVecDense(n, make([]float64, n))}
	}
	return
}

func NewVectorConstant(n int, val float64) (R Vector) {
	return NewVector(n).Set(val)
}

// Dims, At and T minimally satisfy the mat.Matrix interface.
func (v Vector) Dims() (r, c int)         { return v.V.Dims() }
func (v Vector) At(i, j int) float64      { return v.V.At(i, j) }
func (v Vector) T() mat.Matrix            { return v.V.T() }
func (v Vector) AtVec(i int) float64      { return v.V.AtVec(i) }
func (v Vector) RawVector() blas64.Vector { return v.V.RawVector() }
func (v Vector) Len() int                 { return v.V.Len() }

// Chainable methods
func (v Vector) Set(val float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i := range data {
		data[i] = val
	}
	return v
}

// Linspace fills v with Len() values evenly spaced over [xmin, xmax],
// endpoints included.
func (v Vector) Linspace(xmin, xmax float64) Vector {
	var (
		data = v.V.RawVector().Data
		n    = len(data)
	)
	if n == 1 {
		data[0] = xmin
		return v
	}
	h := (xmax - xmin) / float64(n-1)
	for i := range data {
		data[i] = xmin + float64(i)*h
	}
	data[n-1] = xmax
	return v
}

func (v Vector) Add(a float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i := range data {
		data[i] += a
	}
	return v
}

func (v Vector) Scale(a float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i := range data {
		data[i] *= a
	}
	return v
}

func (v Vector) Sub(a Vector) Vector { v.V.SubVec(v.V, a.V); return v }

func (v Vector) Apply(f func(float64) float64) Vector {
	var (
		data = v.V.RawVector().Data
	)
	for i, val := range data {
		data[i] = f(val)
	}
	return v
}

func (v Vector) Copy() (R Vector) {
	var (
		data  = v.V.RawVector().Data
		dataR = make([]float64, len(data))
	)
	copy(dataR, data)
	R = NewVector(len(data), dataR)
	return
}

func (v Vector) Min() (min float64) {
	var (
		data = v.V.RawVector().Data
	)
	min = data[0]
	for _, val := range data {
		if val < min {
			min = val
		}
	}
	return
}

func (v Vector) Max() (max float64) {
	var (
		data = v.V.RawVector().Data
	)
	max = data[0]
	for _, val := range data {
		if val > max {
			max = val
		}
	}
	return
}
