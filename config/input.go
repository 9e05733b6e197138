// Package config holds the YAML-parsed run configuration, mirroring
// InputParameters/InputParameters.go's Parse/Print shape.
package config

import (
	"fmt"
	"sort"

	"github.com/ghodss/yaml"
)

// InputParameters is the configuration surface of spec.md §6: solver
// selection, grid extents, boundary codes, the hydro closure, and the CFL
// number the integrator uses to convert invDt into dt.
type InputParameters struct {
	Title string `yaml:"Title"`

	Solver SolverSection `yaml:"Solver"`
	Grid   GridSection   `yaml:"Grid"`
	Boundary BoundarySection `yaml:"Boundary"`
	Hydro  HydroSection  `yaml:"Hydro"`

	TimeIntegrator TimeIntegratorSection `yaml:"TimeIntegrator"`
}

type SolverSection struct {
	Solver string `yaml:"Solver"` // tvdlf|hll|hlld|roe
	MHD    bool   `yaml:"MHD"`
}

type GridSection struct {
	Dimensions int        `yaml:"Dimensions"` // 1, 2, or 3
	N          [3]int     `yaml:"N"`          // interior cells per direction
	NGhost     int        `yaml:"NGhost"`
	Domain     [3][2]float64 `yaml:"Domain"` // [xmin,xmax] per direction
}

// BoundarySection carries one code per <dir><side>, keys matching the
// Configuration surface table of §6 literally.
type BoundarySection struct {
	ILo string `yaml:"ILo"`
	IHi string `yaml:"IHi"`
	JLo string `yaml:"JLo"`
	JHi string `yaml:"JHi"`
	KLo string `yaml:"KLo"`
	KHi string `yaml:"KHi"`
}

type HydroSection struct {
	Gamma  float64 `yaml:"Gamma"`
	C2Iso  float64 `yaml:"C2Iso"`
	Energy bool    `yaml:"Energy"` // false selects the isothermal closure
}

type TimeIntegratorSection struct {
	CFL       float64 `yaml:"CFL"`
	FinalTime float64 `yaml:"FinalTime"`
	MaxSteps  int     `yaml:"MaxSteps"`
}

// Defaults mirrors §6: gamma defaults to 5/3, C2Iso to 1.
func Defaults() InputParameters {
	return InputParameters{
		Solver: SolverSection{Solver: "hll", MHD: true},
		Grid:   GridSection{Dimensions: 1, NGhost: 2},
		Boundary: BoundarySection{
			ILo: "outflow", IHi: "outflow",
			JLo: "outflow", JHi: "outflow",
			KLo: "outflow", KHi: "outflow",
		},
		Hydro: HydroSection{Gamma: 5.0 / 3.0, C2Iso: 1.0, Energy: true},
		TimeIntegrator: TimeIntegratorSection{CFL: 0.8, FinalTime: 1.0, MaxSteps: 1_000_000},
	}
}

func (ip *InputParameters) Parse(data []byte) error {
	*ip = Defaults()
	return yaml.Unmarshal(data, ip)
}

func (ip *InputParameters) Print() {
	fmt.Printf("\"%s\"\t\t= Title\n", ip.Title)
	fmt.Printf("%8.5f\t\t= CFL\n", ip.TimeIntegrator.CFL)
	fmt.Printf("%8.5f\t\t= FinalTime\n", ip.TimeIntegrator.FinalTime)
	fmt.Printf("[%s]\t\t\t= Solver\n", ip.Solver.Solver)
	fmt.Printf("[%v]\t\t\t= MHD\n", ip.Solver.MHD)
	fmt.Printf("[%d]\t\t\t= Dimensions\n", ip.Grid.Dimensions)
	bcs := map[string]string{
		"ILo": ip.Boundary.ILo, "IHi": ip.Boundary.IHi,
		"JLo": ip.Boundary.JLo, "JHi": ip.Boundary.JHi,
		"KLo": ip.Boundary.KLo, "KHi": ip.Boundary.KHi,
	}
	keys := make([]string, 0, len(bcs))
	for k := range bcs {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, key := range keys {
		fmt.Printf("Boundary[%s] = %s\n", key, bcs[key])
	}
}

// Validate reproduces the original's boundary-side startup validation
// (spec supplement 4): a domain with fewer interior cells than the ghost
// width in any active direction can never be stepped, so it is rejected before a single kernel
// runs rather than discovered mid-sweep.
func (ip *InputParameters) Validate() error {
	if ip.Grid.Dimensions < 1 || ip.Grid.Dimensions > 3 {
		return fmt.Errorf("config: Grid.Dimensions must be 1, 2, or 3, got %d", ip.Grid.Dimensions)
	}
	for d := 0; d < ip.Grid.Dimensions; d++ {
		if ip.Grid.N[d] <= 0 {
			return fmt.Errorf("config: Grid.N[%d] must be positive", d)
		}
		if ip.Grid.N[d] < ip.Grid.NGhost {
			return fmt.Errorf("config: Grid.N[%d]=%d is narrower than NGhost=%d", d, ip.Grid.N[d], ip.Grid.NGhost)
		}
		if ip.Grid.Domain[d][1] <= ip.Grid.Domain[d][0] {
			return fmt.Errorf("config: Grid.Domain[%d] upper bound must exceed lower bound", d)
		}
	}
	if ip.Hydro.Gamma <= 1 {
		return fmt.Errorf("config: Hydro.Gamma must exceed 1, got %g", ip.Hydro.Gamma)
	}
	if ip.TimeIntegrator.CFL <= 0 {
		return fmt.Errorf("config: TimeIntegrator.CFL must be positive")
	}
	return nil
}
