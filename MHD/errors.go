package MHD

import "fmt"

// NonPhysicalState signals a negative density or pressure encountered during
// conversion or inside a Riemann intermediate state. It is always returned,
// never panicked: the decision to retry the stage at a smaller dt belongs to
// the caller (see spec.md §7).
type NonPhysicalState struct {
	Where string // e.g. "C1 cons->prim", "HLLD region aL"
	K, J, I int
	Field   string
	Value   float64
}

func (e *NonPhysicalState) Error() string {
	return fmt.Sprintf("non-physical state at (%d,%d,%d) in %s: %s = %g",
		e.K, e.J, e.I, e.Where, e.Field, e.Value)
}

// UnsupportedBoundary is raised at startup validation when a configured
// boundary code has no implementation.
type UnsupportedBoundary struct {
	Dir  Direction
	Side Side
	Code string
}

func (e *UnsupportedBoundary) Error() string {
	return fmt.Sprintf("unsupported boundary %q on direction %s, side %v", e.Code, e.Dir, e.Side)
}

// ConfigError is fatal at startup: an unknown solver name, a dimension
// mismatch, or non-positive grid spacing.
type ConfigError struct {
	Msg string
}

func (e *ConfigError) Error() string { return "config error: " + e.Msg }

// degenerateWave is HLLD's internal near-zero-denominator condition. It
// never escapes the core -- the HLLD kernel recovers locally by falling
// back to HLL for the offending interface -- so it is an unexported
// sentinel rather than part of the public error taxonomy.
type degenerateWave struct{ reason string }

func (e *degenerateWave) Error() string { return "degenerate wave: " + e.reason }
