package FD1D

import (
	"fmt"
	"math"

	"github.com/notargets/geotherm/utils"
)

// UniformGrid is a 1D finite difference grid over depth. Nodes run from ZMin
// in steps of Dz up to but not including ZMax, so [1000, 1500) at Dz = 10
// yields 50 nodes at 1000, 1010, ... 1490.
type UniformGrid struct {
	ZMin, ZMax, Dz float64
	N              int
	Z              utils.Vector
}

func NewUniformGrid(zMin, zMax, dz float64) (g *UniformGrid) {
	if dz <= 0 || zMax <= zMin {
		err := fmt.Errorf("degenerate grid: zMin = %v, zMax = %v, dz = %v", zMin, zMax, dz)
		panic(err)
	}
	n := int(math.Ceil((zMax - zMin) / dz))
	g = &UniformGrid{
		ZMin: zMin,
		ZMax: zMax,
		Dz:   dz,
		N:    n,
		Z:    utils.NewVector(n),
	}
	data := g.Z.RawVector().Data
	for i := range data {
		data[i] = zMin + float64(i)*dz
	}
	return
}

// BackgroundProfile fills a new vector with the linear background thermal
// gradient, tTop at the first node through tBottom at the last.
func (g *UniformGrid) BackgroundProfile(tTop, tBottom float64) utils.Vector {
	return utils.NewVector(g.N).Linspace(tTop, tBottom)
}
