package Reinjection1D

import (
	"fmt"
	"math"
	"strings"
	"sync"
	"time"

	"github.com/james-bowman/sparse"
	"github.com/notargets/avs/chart2d"
	utils2 "github.com/notargets/avs/utils"

	"github.com/notargets/geotherm/FD1D"
	"github.com/notargets/geotherm/reservoir"
	"github.com/notargets/geotherm/utils"
)

type SchemeType uint

const (
	Dense SchemeType = iota
	CSR
)

var (
	SchemeNames = map[string]SchemeType{
		"dense":  Dense,
		"csr":    CSR,
		"sparse": CSR,
	}
	SchemePrintNames = []string{"dense propagation matrix", "compressed sparse row propagation"}
)

func (st SchemeType) Print() (txt string) {
	txt = SchemePrintNames[st]
	return
}

func NewSchemeType(label string) (st SchemeType) {
	var (
		ok  bool
		err error
	)
	label = strings.ToLower(label)
	if st, ok = SchemeNames[label]; !ok {
		err = fmt.Errorf("unable to use scheme named %s", label)
		panic(err)
	}
	return
}

// Reinjection advances the reservoir temperature profile for one scenario,
// T <- A*T per step with the injection nodes held at the reinjection
// temperature. As water is reinjected into the reservoir the near-well
// gradient relaxes toward the injected temperature while the deep profile
// stays on the background gradient.
type Reinjection struct {
	// Input parameters
	Scenario  reservoir.Scenario
	Phys      reservoir.Constants
	FinalTime float64
	BottomBC  FD1D.BCType
	Unguarded bool
	// Discretization
	Grid *FD1D.UniformGrid
	Co   FD1D.Coefficients
	A    utils.Matrix
	ACSR *sparse.CSR
	// State
	T, T0       utils.Vector
	History     []utils.Vector
	RecordEvery int
	work        utils.Vector
	scheme      SchemeType
	PlotOnce    sync.Once
	chart       *chart2d.Chart2D
	colorMap    *utils2.ColorMap
}

// Injection nodes: the original model holds grid nodes 1 and 2, just below
// the top of the interval, at the reinjection temperature after every step.
const (
	injFirst = 1
	injLast  = 2
)

// NewReinjection builds the propagation operator for one scenario and checks
// the explicit stability bounds. An out-of-bounds (dz, dt) pair returns a
// wrapped FD1D.ErrUnstable unless unguarded is set, in which case the run
// proceeds and reproduces the documented divergence.
func NewReinjection(sc reservoir.Scenario, pc reservoir.Constants, dz, dt, finalTime float64,
	scheme SchemeType, bottomBC FD1D.BCType, unguarded bool) (c *Reinjection, err error) {
	var (
		u    = sc.Velocity(pc.WellArea)
		grid = FD1D.NewUniformGrid(pc.DepthTop, pc.DepthBottom, dz)
	)
	c = &Reinjection{
		Scenario:  sc,
		Phys:      pc,
		FinalTime: finalTime,
		BottomBC:  bottomBC,
		Unguarded: unguarded,
		Grid:      grid,
		Co:        FD1D.NewCoefficients(dz, dt, pc.Conductivity, pc.Density, pc.SpecificHeat, u),
		scheme:    scheme,
	}
	if err = c.Co.Check(); err != nil {
		if !c.Unguarded {
			return nil, fmt.Errorf("scenario %s: %w", sc.Field, err)
		}
		fmt.Printf("proceeding unguarded despite: %s\n", err)
		err = nil
	}
	switch c.scheme {
	case CSR:
		c.ACSR = FD1D.AdvectionDiffusionCSR(c.Co, grid.N)
	case Dense:
		fallthrough
	default:
		c.A = FD1D.AdvectionDiffusionMatrix(c.Co, grid.N)
	}
	c.T0 = grid.BackgroundProfile(pc.TTop, pc.TBottom)
	c.T = c.T0.Copy()
	c.work = utils.NewVector(grid.N)
	fmt.Printf("1D Reinjection Advection-Diffusion\n%s\nScheme: %s, Bottom BC: %s\n",
		c.Scenario, c.scheme.Print(), c.BottomBC)
	fmt.Printf("dz = %8.4f m, dt = %8.4f, nodes = %d, u = %8.6f m/s\n",
		dz, dt, grid.N, u)
	fmt.Printf("s = %8.6f, vn = %8.6f, Courant = %8.6f\n\n", c.Co.S, c.Co.Vn, c.Co.C)
	return
}

// NSteps counts the update applications; the original model steps at
// t = 0, dt, ..., through FinalTime inclusive.
func (c *Reinjection) NSteps() int {
	return int(math.Floor(c.FinalTime/c.Co.Dt+1.e-10)) + 1
}

func (c *Reinjection) Run(showGraph bool, graphDelay ...time.Duration) {
	var (
		logFrequency = 50
		dt           = c.Co.Dt
		Nsteps       = c.NSteps()
		step         func()
	)
	switch c.scheme {
	case CSR:
		step = c.StepCSR
	case Dense:
		fallthrough
	default:
		step = c.Step
	}
	fmt.Printf("FinalTime = %8.4f, Nsteps = %d, dt = %8.6f\n", c.FinalTime, Nsteps, dt)
	var Time float64
	for tstep := 0; tstep < Nsteps; tstep++ {
		c.Plot(showGraph, graphDelay)
		step()
		if c.RecordEvery > 0 && tstep%c.RecordEvery == 0 {
			c.History = append(c.History, c.T.Copy())
		}
		Time = float64(tstep) * dt
		isDone := tstep == Nsteps-1
		if tstep%logFrequency == 0 || isDone {
			fmt.Printf("Time = %8.4f, tstep = %d, tmin = %8.4f, tmax = %8.4f, tnear = %8.4f\n",
				Time, tstep, c.T.Min(), c.T.Max(), c.NearInjection())
		}
	}
}

// Step applies the dense propagation matrix and reimposes the held values.
func (c *Reinjection) Step() {
	Tnew := c.A.MulVec(c.T)
	copy(c.T.RawVector().Data, Tnew.RawVector().Data)
	c.applyBoundaries()
}

// StepCSR is the same update off the sparse operator; four bands make the
// dense product mostly multiplications by zero.
func (c *Reinjection) StepCSR() {
	var (
		data = c.T.RawVector().Data
		tnew = c.work.RawVector().Data
	)
	for i := range tnew {
		tnew[i] = 0
	}
	c.ACSR.DoNonZero(func(i, j int, v float64) {
		tnew[i] += v * data[j]
	})
	copy(data, tnew)
	c.applyBoundaries()
}

func (c *Reinjection) applyBoundaries() {
	var (
		data = c.T.RawVector().Data
		n    = c.Grid.N
	)
	for i := injFirst; i <= injLast; i++ {
		data[i] = c.Scenario.Temperature
	}
	if c.BottomBC == FD1D.BCGradient {
		data[n-1] = data[n-2] + c.Phys.BackgroundSlope()*c.Grid.Dz
	}
}

// NearInjection is the temperature at the first free node below the held
// injection nodes, the probe the convergence checks watch.
func (c *Reinjection) NearInjection() float64 {
	return c.T.AtVec(injLast + 1)
}

func (c *Reinjection) Plot(showGraph bool, graphDelay []time.Duration) {
	var (
		g          = c.Grid
		tMin, tMax = float32(0), float32(300)
	)
	if !showGraph {
		return
	}
	c.PlotOnce.Do(func() {
		c.chart = chart2d.NewChart2D(1280, 1024, float32(g.ZMin), float32(g.ZMax), tMin, tMax)
		c.colorMap = utils2.NewColorMap(-1, 1, 1)
		go c.chart.Plot()
		if err := c.chart.AddSeries("Background", g.Z.RawVector().Data, c.T0.RawVector().Data,
			chart2d.NoGlyph, chart2d.Dashed, c.colorMap.GetRGB(-0.7)); err != nil {
			panic("unable to add graph series")
		}
	})
	if err := c.chart.AddSeries("T", g.Z.RawVector().Data, c.T.RawVector().Data,
		chart2d.NoGlyph, chart2d.Solid, c.colorMap.GetRGB(0.7)); err != nil {
		panic("unable to add graph series")
	}
	if len(graphDelay) != 0 {
		time.Sleep(graphDelay[0])
	}
}
