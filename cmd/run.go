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
	"encoding/csv"
	"fmt"
	"io/ioutil"
	"os"
	"strconv"
	"time"

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/notargets/geotherm/FD1D"
	"github.com/notargets/geotherm/InputParameters"
	"github.com/notargets/geotherm/model_problems/Reinjection1D"
	"github.com/notargets/geotherm/plotting"
	"github.com/notargets/geotherm/reservoir"
)

type ModelSweep struct {
	InputFile  string
	Graph      bool
	Delay      time.Duration
	OutFile    string
	PlotFile   string
	CPUProfile bool
	Perf       bool
}

// RunCmd represents the run command
var RunCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the reinjection model over the scenarios in the well data table",
	Long: `
Runs the 1D advection-diffusion reinjection model for every scenario in the
well data table, skipping any whose rate violates the explicit stability
bounds at the chosen step sizes.

geotherm run -o profiles.csv -p comparison.png`,
	Run: func(cmd *cobra.Command, args []string) {
		var (
			err error
		)
		fmt.Println("run called")
		ms := &ModelSweep{}
		if ms.InputFile, err = cmd.Flags().GetString("inputFile"); err != nil {
			panic(err)
		}
		ms.Graph, _ = cmd.Flags().GetBool("graph")
		dr, _ := cmd.Flags().GetInt("delay")
		ms.Delay = time.Duration(dr) * time.Millisecond
		ms.OutFile, _ = cmd.Flags().GetString("outFile")
		ms.PlotFile, _ = cmd.Flags().GetString("plotFile")
		ms.CPUProfile, _ = cmd.Flags().GetBool("cpuprofile")
		ms.Perf, _ = cmd.Flags().GetBool("perf")
		ip := processRunInput(ms, cmd)
		if ms.Perf {
			measureInstructions("sweep", func() { RunSweep(ms, ip) })
		} else {
			RunSweep(ms, ip)
		}
	},
}

func init() {
	rootCmd.AddCommand(RunCmd)
	ip := InputParameters.NewReinjectionParameters()
	RunCmd.Flags().StringP("inputFile", "I", "", "YAML file of run parameters, replaces the presets")
	RunCmd.Flags().StringP("dataFile", "F", ip.DataFile, "CSV table of reinjection scenarios")
	RunCmd.Flags().BoolP("graph", "g", false, "display a graph while computing solution")
	RunCmd.Flags().IntP("delay", "d", 0, "milliseconds of delay for plotting")
	RunCmd.Flags().Float64("dz", ip.Dz, "depth step (m) - presets satisfy the stability bounds")
	RunCmd.Flags().Float64("dt", ip.Dt, "time step - presets satisfy the stability bounds")
	RunCmd.Flags().Float64("finalTime", ip.FinalTime, "FinalTime - the target end time for the sim")
	RunCmd.Flags().String("scheme", ip.Scheme, "propagation scheme: dense or csr")
	RunCmd.Flags().String("bottomBC", ip.BottomBC, "bottom boundary: dirichlet or gradient")
	RunCmd.Flags().Bool("unguarded", false, "proceed when the stability check fails and show the divergence")
	RunCmd.Flags().StringP("outFile", "o", "", "CSV file for the final profiles")
	RunCmd.Flags().StringP("plotFile", "p", "", "PNG file comparing scenario outcomes")
	RunCmd.Flags().Bool("cpuprofile", false, "write a CPU profile to the current directory")
	RunCmd.Flags().Bool("perf", false, "report retired instructions for the sweep (linux only)")
}

func processRunInput(ms *ModelSweep, cmd *cobra.Command) (ip *InputParameters.ReinjectionParameters) {
	var (
		err error
	)
	ip = InputParameters.NewReinjectionParameters()
	if len(ms.InputFile) != 0 {
		var data []byte
		if data, err = ioutil.ReadFile(ms.InputFile); err != nil {
			panic(err)
		}
		if err = ip.Parse(data); err != nil {
			panic(err)
		}
		ip.Print()
		return
	}
	ip.DataFile, _ = cmd.Flags().GetString("dataFile")
	ip.Dz, _ = cmd.Flags().GetFloat64("dz")
	ip.Dt, _ = cmd.Flags().GetFloat64("dt")
	ip.FinalTime, _ = cmd.Flags().GetFloat64("finalTime")
	ip.Scheme, _ = cmd.Flags().GetString("scheme")
	ip.BottomBC, _ = cmd.Flags().GetString("bottomBC")
	ip.Unguarded, _ = cmd.Flags().GetBool("unguarded")
	ip.Print()
	return
}

func RunSweep(ms *ModelSweep, ip *InputParameters.ReinjectionParameters) {
	var (
		err error
		pc  = ip.Constants()
	)
	if ms.CPUProfile {
		defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	}
	scenarios, err := reservoir.ReadTable(ip.DataFile)
	if err != nil {
		fmt.Printf("error: %s\n", err.Error())
		os.Exit(1)
	}
	scenarios = filterCategories(scenarios, ip.Categories)
	if len(scenarios) == 0 {
		fmt.Printf("no scenarios to run\n")
		os.Exit(1)
	}
	var (
		scheme  = Reinjection1D.NewSchemeType(ip.Scheme)
		bc      = FD1D.ParseBCName(ip.BottomBC)
		results []*Reinjection1D.Reinjection
	)
	for _, sc := range scenarios {
		c, err := Reinjection1D.NewReinjection(sc, pc, ip.Dz, ip.Dt, ip.FinalTime, scheme, bc, ip.Unguarded)
		if err != nil {
			fmt.Printf("skipping %s\n", err.Error())
			continue
		}
		c.RecordEvery = ip.RecordEvery
		c.Run(ms.Graph, ms.Delay)
		results = append(results, c)
	}
	fmt.Printf("completed %d of %d scenarios\n", len(results), len(scenarios))
	if len(ms.OutFile) != 0 {
		if err = exportProfiles(ms.OutFile, results); err != nil {
			panic(err)
		}
		fmt.Printf("wrote %s\n", ms.OutFile)
	}
	if len(ms.PlotFile) != 0 {
		if err = writeComparison(ms.PlotFile, ip.Title, results); err != nil {
			panic(err)
		}
		fmt.Printf("wrote %s\n", ms.PlotFile)
	}
}

func filterCategories(scenarios []reservoir.Scenario, names []string) []reservoir.Scenario {
	if len(names) == 0 {
		return scenarios
	}
	keep := make(map[reservoir.Category]bool)
	for _, name := range names {
		cat, err := reservoir.ParseCategory(name)
		if err != nil {
			fmt.Printf("%s, skipping\n", err.Error())
			continue
		}
		keep[cat] = true
	}
	var out []reservoir.Scenario
	for _, sc := range scenarios {
		if keep[sc.Category] {
			out = append(out, sc)
		}
	}
	return out
}

// exportProfiles writes the final profiles in long form, one row per node
// per scenario, the layout the profilereport tool consumes.
func exportProfiles(file string, results []*Reinjection1D.Reinjection) (err error) {
	f, err := os.Create(file)
	if err != nil {
		return
	}
	defer f.Close()
	w := csv.NewWriter(f)
	defer w.Flush()
	if err = w.Write([]string{"Field", "Category", "Rate", "Temperature", "Depth", "T"}); err != nil {
		return
	}
	for _, c := range results {
		var (
			sc = c.Scenario
			z  = c.Grid.Z.RawVector().Data
			tt = c.T.RawVector().Data
		)
		for i := range z {
			rec := []string{
				sc.Field,
				sc.Category.String(),
				strconv.FormatFloat(sc.Rate, 'f', 2, 64),
				strconv.FormatFloat(sc.Temperature, 'f', 2, 64),
				strconv.FormatFloat(z[i], 'f', 2, 64),
				strconv.FormatFloat(tt[i], 'f', 4, 64),
			}
			if err = w.Write(rec); err != nil {
				return
			}
		}
	}
	return
}

func writeComparison(file, title string, results []*Reinjection1D.Reinjection) error {
	if len(results) == 0 {
		return fmt.Errorf("no completed scenarios to plot")
	}
	var (
		g  = results[0].Grid
		bg = plotting.Series{Name: "Background", Z: g.Z.RawVector().Data, T: results[0].T0.RawVector().Data}
		ss []plotting.Series
	)
	for _, c := range results {
		ss = append(ss, plotting.Series{
			Name: fmt.Sprintf("%s [%s]", c.Scenario.Field, c.Scenario.Category),
			Z:    c.Grid.Z.RawVector().Data,
			T:    c.T.RawVector().Data,
		})
	}
	return plotting.ComparisonFigure(file, title, bg, ss...)
}
