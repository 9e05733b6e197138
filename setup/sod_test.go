package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fluxmhd/gomhd/MHD"
)

func newTestBlock(t *testing.T, mhd bool, dims int, nint int) *MHD.DataBlock {
	t.Helper()
	var axes [3]MHD.Axis
	for d := 0; d < 3; d++ {
		n := 1
		if d < dims {
			n = nint
		}
		ax, err := MHD.NewAxis(0, 1, n, 2)
		assert.NoError(t, err)
		axes[d] = ax
	}
	g := MHD.NewGrid(axes)
	p := MHD.NewPhysics(1.4, 1.0, true, mhd, dims, MHD.SolverHLL)
	bc, err := MHD.NewBoundaryPolicy(
		[3]string{"outflow", "periodic", "periodic"},
		[3]string{"outflow", "periodic", "periodic"},
		nil,
	)
	assert.NoError(t, err)
	return MHD.NewDataBlock(g, p, bc)
}

func TestSodInitFlowSplitsAtMidpoint(t *testing.T) {
	db := newTestBlock(t, false, 1, 8)
	s := NewSod(1.4)
	s.InitFlow(db)

	aBeg, aEnd := db.Grid.ActiveRange(MHD.DirI)
	gotLeft, gotRight := false, false
	for i := aBeg; i < aEnd; i++ {
		rho := db.Vc.At(MHD.RHO, 3, 3, i)
		if rho == s.RhoL {
			gotLeft = true
		}
		if rho == s.RhoR {
			gotRight = true
		}
	}
	assert.True(t, gotLeft)
	assert.True(t, gotRight)
}

func TestSodAnalyticAtZeroTimeMatchesInitialJump(t *testing.T) {
	s := NewSod(1.4)
	_, rho, p, u := s.analytic(0.25, 0)
	assert.InDelta(t, s.RhoL, rho, 1e-12)
	assert.InDelta(t, s.PL, p, 1e-12)
	assert.InDelta(t, 0, u, 1e-12)

	_, rho, p, u = s.analytic(0.75, 0)
	assert.InDelta(t, s.RhoR, rho, 1e-12)
	assert.InDelta(t, s.PR, p, 1e-12)
	assert.InDelta(t, 0, u, 1e-12)
}

func TestSodAnalyticFarFieldUnchangedAtSmallTime(t *testing.T) {
	s := NewSod(1.4)
	_, rho, p, _ := s.analytic(0.0, 0.05)
	assert.InDelta(t, s.RhoL, rho, 1e-9)
	assert.InDelta(t, s.PL, p, 1e-9)

	_, rho, p, _ = s.analytic(1.0, 0.05)
	assert.InDelta(t, s.RhoR, rho, 1e-9)
	assert.InDelta(t, s.PR, p, 1e-9)
}
