// Package MHD implements the hyperbolic update loop of a finite-volume ideal
// MHD solver on a structured, logically-Cartesian mesh: state conversion, face
// reconstruction, the Riemann solver family, flux divergence, and the
// constrained-transport staggered-field machinery.
package MHD

import (
	"fmt"
	"strings"
)

// Direction indexes the three logical axes. One- and two-dimensional
// problems simply leave the higher directions unused.
type Direction int

const (
	DirI Direction = iota
	DirJ
	DirK
)

func (d Direction) String() string {
	return [...]string{"I", "J", "K"}[d]
}

// Channel indices into the cell-centered V_c/U_c state. The momentum slots
// MX1..MX3 alias the velocity slots VX1..VX3 -- same position, different
// semantics depending on whether the array holds conservative or primitive
// data.
const (
	RHO = iota
	VX1
	VX2
	VX3
	BX1
	BX2
	BX3
	PRS // or ENG in conservative form
	NVAR
)

const (
	MX1 = VX1
	MX2 = VX2
	MX3 = VX3
	ENG = PRS
)

// SolverType selects the Riemann flux family. It is resolved once at Init
// and inlined into the hot loop -- see riemann.go -- rather than dispatched
// through an interface per interface.
type SolverType int

const (
	SolverTVDLF SolverType = iota
	SolverHLL
	SolverHLLD
	SolverRoe
)

var solverNames = map[string]SolverType{
	"tvdlf": SolverTVDLF,
	"hll":   SolverHLL,
	"hlld":  SolverHLLD,
	"roe":   SolverRoe,
}

var solverPrintNames = []string{"TVDLF", "HLL", "HLLD", "Roe"}

func (s SolverType) String() string {
	return solverPrintNames[s]
}

// NewSolverType resolves a configured solver name, returning a ConfigError
// on an unknown name -- this is validated at startup, never at kernel time.
func NewSolverType(label string) (SolverType, error) {
	s, ok := solverNames[strings.ToLower(label)]
	if !ok {
		return 0, &ConfigError{Msg: fmt.Sprintf("unknown solver %q", label)}
	}
	return s, nil
}

// EOS abstracts the pressure-related closure. IdealGas is the only
// implementation the core ships -- a tabulated EOS is explicitly out of
// scope (see SPEC_FULL.md) but the interface reserves the extension point.
type EOS interface {
	// Pressure returns P(rho, internal energy density).
	Pressure(rho, eInt float64) float64
	// SoundSpeedSquared returns the (possibly non-thermal) a^2 used by the
	// characteristic speed estimate.
	SoundSpeedSquared(rho, prs float64) float64
	HasEnergy() bool
}

// IdealGas is the Gamma-law closure, with the isothermal branch folded in
// (Energy false selects the isothermal C2Iso path everywhere: C1, C3).
type IdealGas struct {
	Gamma  float64
	C2Iso  float64
	Energy bool
}

func NewIdealGas(gamma, c2iso float64, haveEnergy bool) IdealGas {
	return IdealGas{Gamma: gamma, C2Iso: c2iso, Energy: haveEnergy}
}

func (g IdealGas) HasEnergy() bool { return g.Energy }

func (g IdealGas) Pressure(rho, eInt float64) float64 {
	if !g.Energy {
		return rho * g.C2Iso
	}
	return (g.Gamma - 1) * eInt
}

func (g IdealGas) SoundSpeedSquared(rho, prs float64) float64 {
	if !g.Energy {
		return g.C2Iso
	}
	return g.Gamma * prs / rho
}

// Physics bundles the configuration resolved once at Init: the closure, the
// dimensionality, and the solver selection used by the MHD Riemann
// component.
type Physics struct {
	EOS        EOS
	Gamma      float64
	Solver     SolverType
	MHD        bool // false selects the HD (B=0) variant; Solver is then ignored
	Dimensions int  // 1, 2, or 3
}

func NewPhysics(gamma, c2iso float64, haveEnergy, mhd bool, dims int, solver SolverType) Physics {
	return Physics{
		EOS:        NewIdealGas(gamma, c2iso, haveEnergy),
		Gamma:      gamma,
		Solver:     solver,
		MHD:        mhd,
		Dimensions: dims,
	}
}
