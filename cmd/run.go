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
	"os"

	"github.com/spf13/cobra"

	"github.com/fluxmhd/gomhd/MHD"
	"github.com/fluxmhd/gomhd/config"
	"github.com/fluxmhd/gomhd/integrator"
	"github.com/fluxmhd/gomhd/internal/plot"
	"github.com/fluxmhd/gomhd/setup"
)

var runConfigFile string
var runScenario string
var runGraph bool

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run one of the built-in MHD test scenarios",
	Long: `
Runs the directionally-split finite-volume MHD solver to FinalTime (or
MaxSteps, whichever comes first) using the named scenario and YAML
configuration.

gomhd run --scenario sod --config sod.yaml`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runScenarioCmd()
	},
}

func init() {
	rootCmd.AddCommand(runCmd)
	runCmd.Flags().StringVarP(&runConfigFile, "config", "f", "", "path to a YAML run configuration (defaults apply if omitted)")
	runCmd.Flags().StringVarP(&runScenario, "scenario", "s", "sod", "scenario to run: sod|briowu|orszagtang|constantfield|boundaryparity")
	runCmd.Flags().BoolVar(&runGraph, "graph", false, "show a live plot of the RHO/VX1/PRS slice while running")
}

func runScenarioCmd() error {
	ip := config.Defaults()
	if runConfigFile != "" {
		data, err := os.ReadFile(runConfigFile)
		if err != nil {
			return fmt.Errorf("run: reading config: %w", err)
		}
		if err := ip.Parse(data); err != nil {
			return fmt.Errorf("run: parsing config: %w", err)
		}
	}
	if err := ip.Validate(); err != nil {
		return err
	}
	ip.Print()

	sc, err := buildScenario(runScenario, ip)
	if err != nil {
		return err
	}

	db, err := buildDataBlock(ip, sc)
	if err != nil {
		return err
	}

	cfg := integrator.Config{
		CFL:          ip.TimeIntegrator.CFL,
		Backend:      MHD.BackendThreaded,
		Order:        MHD.Order2,
		FinalTime:    ip.TimeIntegrator.FinalTime,
		MaxSteps:     ip.TimeIntegrator.MaxSteps,
		LogFrequency: 10,
	}

	if runGraph {
		slice := plot.NewSlice([]int{MHD.RHO, MHD.VX1, MHD.PRS}, []string{"Rho", "Vx1", "Prs"})
		sc = &plottingSetup{Setup: sc, slice: slice}
	}

	return integrator.Run(db, cfg, sc)
}

// plottingSetup decorates a Setup's MakeAnalysis with a live chart redraw,
// leaving InitFlow/SetUserdefBoundary untouched.
type plottingSetup struct {
	integrator.Setup
	slice *plot.Slice
}

func (p *plottingSetup) MakeAnalysis(db *MHD.DataBlock, t float64) {
	p.Setup.MakeAnalysis(db, t)
	p.slice.Draw(db, -0.5, 2.5)
}

func buildScenario(name string, ip config.InputParameters) (integrator.Setup, error) {
	switch name {
	case "sod":
		return setup.NewSod(ip.Hydro.Gamma), nil
	case "briowu":
		return setup.NewBrioWu(), nil
	case "orszagtang":
		return setup.NewOrszagTang(), nil
	case "constantfield":
		return setup.NewConstantField(), nil
	case "boundaryparity":
		return setup.NewBoundaryParity(), nil
	default:
		return nil, fmt.Errorf("run: unknown scenario %q", name)
	}
}

func buildDataBlock(ip config.InputParameters, sc integrator.Setup) (*MHD.DataBlock, error) {
	var axes [3]MHD.Axis
	for d := 0; d < 3; d++ {
		if d < ip.Grid.Dimensions {
			ax, err := MHD.NewAxis(ip.Grid.Domain[d][0], ip.Grid.Domain[d][1], ip.Grid.N[d], ip.Grid.NGhost)
			if err != nil {
				return nil, err
			}
			axes[d] = ax
		} else {
			ax, err := MHD.NewAxis(0, 1, 1, 0)
			if err != nil {
				return nil, err
			}
			axes[d] = ax
		}
	}
	g := MHD.NewGrid(axes)

	solver, err := MHD.NewSolverType(ip.Solver.Solver)
	if err != nil {
		return nil, err
	}
	p := MHD.NewPhysics(ip.Hydro.Gamma, ip.Hydro.C2Iso, ip.Hydro.Energy, ip.Solver.MHD, ip.Grid.Dimensions, solver)

	var userdef MHD.UserdefBoundary
	if bc := ip.Boundary; bc.ILo == "userdef" || bc.IHi == "userdef" || bc.JLo == "userdef" ||
		bc.JHi == "userdef" || bc.KLo == "userdef" || bc.KHi == "userdef" {
		userdef = sc.SetUserdefBoundary
	}
	bc, err := MHD.NewBoundaryPolicy(
		[3]string{ip.Boundary.ILo, ip.Boundary.JLo, ip.Boundary.KLo},
		[3]string{ip.Boundary.IHi, ip.Boundary.JHi, ip.Boundary.KHi},
		userdef,
	)
	if err != nil {
		return nil, err
	}

	return MHD.NewDataBlock(g, p, bc), nil
}
