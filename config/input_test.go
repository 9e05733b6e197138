package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDefaultsPassValidate(t *testing.T) {
	ip := Defaults()
	ip.Grid.N = [3]int{32, 1, 1}
	ip.Grid.Domain = [3][2]float64{{0, 1}, {0, 1}, {0, 1}}
	assert.NoError(t, ip.Validate())
}

func TestParseOverridesDefaults(t *testing.T) {
	data := []byte(`
Title: custom run
Hydro:
  Gamma: 1.4
TimeIntegrator:
  CFL: 0.4
`)
	var ip InputParameters
	err := ip.Parse(data)
	assert.NoError(t, err)
	assert.Equal(t, "custom run", ip.Title)
	assert.InDelta(t, 1.4, ip.Hydro.Gamma, 1e-12)
	assert.InDelta(t, 0.4, ip.TimeIntegrator.CFL, 1e-12)
	// fields untouched by the YAML fall back to Defaults.
	assert.Equal(t, "hll", ip.Solver.Solver)
	assert.InDelta(t, 1.0, ip.Hydro.C2Iso, 1e-12)
}

func TestValidateRejectsNarrowDomain(t *testing.T) {
	ip := Defaults()
	ip.Grid.N = [3]int{1, 1, 1}
	ip.Grid.NGhost = 2
	ip.Grid.Domain = [3][2]float64{{0, 1}, {0, 1}, {0, 1}}
	err := ip.Validate()
	assert.Error(t, err)
}

func TestValidateRejectsBadDomainBounds(t *testing.T) {
	ip := Defaults()
	ip.Grid.N = [3]int{32, 1, 1}
	ip.Grid.Domain = [3][2]float64{{1, 0}, {0, 1}, {0, 1}}
	err := ip.Validate()
	assert.Error(t, err)
}

func TestValidateRejectsNonPositiveCFL(t *testing.T) {
	ip := Defaults()
	ip.Grid.N = [3]int{32, 1, 1}
	ip.Grid.Domain = [3][2]float64{{0, 1}, {0, 1}, {0, 1}}
	ip.TimeIntegrator.CFL = 0
	err := ip.Validate()
	assert.Error(t, err)
}
