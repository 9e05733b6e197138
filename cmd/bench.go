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

	"github.com/pkg/profile"
	"github.com/spf13/cobra"

	"github.com/fluxmhd/gomhd/MHD"
	"github.com/fluxmhd/gomhd/config"
	"github.com/fluxmhd/gomhd/integrator"
	"github.com/fluxmhd/gomhd/internal/perfdiag"
)

var benchScenario string
var benchSteps int
var benchCPUProfile bool

var benchCmd = &cobra.Command{
	Use:   "bench",
	Short: "Run a fixed number of steps under a CPU profiler and hardware counters",
	Long: `
Runs a scenario for a fixed step count with no final-time stopping condition,
wrapped in a hodgesds/perf-utils hardware counter sample and, with
--cpuprofile, pkg/profile's CPU profiler, for comparing solver/backend choices.

gomhd bench --scenario orszagtang --steps 200`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runBench()
	},
}

func init() {
	rootCmd.AddCommand(benchCmd)
	benchCmd.Flags().StringVarP(&benchScenario, "scenario", "s", "orszagtang", "scenario to benchmark")
	benchCmd.Flags().IntVar(&benchSteps, "steps", 200, "number of steps to run")
	benchCmd.Flags().BoolVar(&benchCPUProfile, "cpuprofile", false, "write a pprof CPU profile for the run")
}

func runBench() error {
	if benchCPUProfile {
		defer profile.Start(profile.CPUProfile).Stop()
	}

	sampler, err := perfdiag.NewSampler()
	if err != nil {
		return fmt.Errorf("bench: %w", err)
	}

	ip := config.Defaults()
	sc, err := buildScenario(benchScenario, ip)
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
		FinalTime:    1e30,
		MaxSteps:     benchSteps,
		LogFrequency: 0,
	}
	if err := integrator.Run(db, cfg, sc); err != nil {
		return fmt.Errorf("bench: %w", err)
	}
	return sampler.Report()
}
