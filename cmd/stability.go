/*
Copyright © 2020 NAME HERE <EMAIL ADDRESS>

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/
package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/notargets/geotherm/FD1D"
	"github.com/notargets/geotherm/InputParameters"
	"github.com/notargets/geotherm/reservoir"
	"github.com/notargets/geotherm/steady_state"
)

// StabilityCmd represents the stability command
var StabilityCmd = &cobra.Command{
	Use:   "stability",
	Short: "Map the explicit stability bounds over step size choices",
	Long: `
Tabulates which (dz, dt) pairings keep the explicit scheme inside its
stability bounds for a given reinjection rate, and reports the spectral
radius of the propagation matrix at the preset pairing.

geotherm stability --rate 480`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("stability called")
		rate, _ := cmd.Flags().GetFloat64("rate")
		RunStabilityMap(rate)
	},
}

func init() {
	rootCmd.AddCommand(StabilityCmd)
	StabilityCmd.Flags().Float64("rate", 480, "reinjection rate (tonne/hr)")
}

func RunStabilityMap(rate float64) {
	var (
		pc  = reservoir.DefaultConstants()
		sc  = reservoir.Scenario{Field: "map", Category: reservoir.HotWater, Rate: rate, Temperature: 35}
		u   = sc.Velocity(pc.WellArea)
		ip  = InputParameters.NewReinjectionParameters()
		dzs = []float64{20, 10, 5, 2.5, 1.25}
		dts = []float64{0.01, 0.1, 1, 10, 100}
	)
	fmt.Printf("rate = %8.2f tonne/hr, u = %8.6f m/s, Pe = %8.2f\n",
		rate, u, steady_state.Peclet(u, pc.DepthBottom-pc.DepthTop, pc.Diffusivity()))
	fmt.Printf("%8s", "dz \\ dt")
	for _, dt := range dts {
		fmt.Printf("%9.2f", dt)
	}
	fmt.Printf("\n")
	for _, dz := range dzs {
		fmt.Printf("%8.2f", dz)
		for _, dt := range dts {
			co := FD1D.NewCoefficients(dz, dt, pc.Conductivity, pc.Density, pc.SpecificHeat, u)
			mark := "ok"
			if err := co.Check(); err != nil {
				mark = "unstable"
			}
			fmt.Printf("%9s", mark)
		}
		fmt.Printf("\n")
	}
	n := FD1D.NewUniformGrid(pc.DepthTop, pc.DepthBottom, ip.Dz).N
	co := FD1D.NewCoefficients(ip.Dz, ip.Dt, pc.Conductivity, pc.Density, pc.SpecificHeat, u)
	A := FD1D.AdvectionDiffusionMatrix(co, n)
	rho, err := FD1D.SpectralRadius(A)
	if err != nil {
		fmt.Printf("eigensolve failed: %s\n", err.Error())
		return
	}
	fmt.Printf("preset dz = %8.2f, dt = %8.2f: s = %8.6f, vn = %8.6f, Courant = %8.6f, spectral radius = %10.6f\n",
		ip.Dz, ip.Dt, co.S, co.Vn, co.C, rho)
}
