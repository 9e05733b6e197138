package integrator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fluxmhd/gomhd/MHD"
)

type constantSetup struct {
	rho, prs float64
}

func (c constantSetup) InitFlow(db *MHD.DataBlock) {
	nk, nj, ni := db.Grid.Dims()
	for k := 0; k < nk; k++ {
		for j := 0; j < nj; j++ {
			for i := 0; i < ni; i++ {
				db.Vc.Set(MHD.RHO, k, j, i, c.rho)
				db.Vc.Set(MHD.PRS, k, j, i, c.prs)
				db.Vc.Set(MHD.VX1, k, j, i, 0)
				db.Vc.Set(MHD.VX2, k, j, i, 0)
				db.Vc.Set(MHD.VX3, k, j, i, 0)
			}
		}
	}
	MHD.PrimToCons(db, MHD.BackendSerial, [2]int{0, nk}, [2]int{0, nj}, [2]int{0, ni})
}

func (c constantSetup) SetUserdefBoundary(db *MHD.DataBlock, d MHD.Direction, side MHD.Side, t float64) {}

func (c constantSetup) MakeAnalysis(db *MHD.DataBlock, t float64) {}

func newUniformBlock(t *testing.T) *MHD.DataBlock {
	t.Helper()
	ax, err := MHD.NewAxis(0, 1, 8, 2)
	assert.NoError(t, err)
	g := MHD.NewGrid([3]MHD.Axis{ax, ax, ax})
	p := MHD.NewPhysics(1.4, 1.0, true, false, 1, MHD.SolverHLL)
	bc, err := MHD.NewBoundaryPolicy(
		[3]string{"periodic", "periodic", "periodic"},
		[3]string{"periodic", "periodic", "periodic"},
		nil,
	)
	assert.NoError(t, err)
	return MHD.NewDataBlock(g, p, bc)
}

func TestStepOnUniformStateLeavesDensityUnchanged(t *testing.T) {
	db := newUniformBlock(t)
	sc := constantSetup{rho: 1.0, prs: 1.0}
	sc.InitFlow(db)

	cfg := Config{CFL: 0.5, Backend: MHD.BackendSerial, Order: MHD.Order2, FinalTime: 1.0}
	dt, err := Step(db, cfg, sc, 0, 1.0)
	assert.NoError(t, err)
	assert.Greater(t, dt, 0.0)

	beg, end := db.Grid.ActiveRange(MHD.DirI)
	for i := beg; i < end; i++ {
		assert.InDelta(t, 1.0, db.Vc.At(MHD.RHO, 3, 3, i), 1e-9)
	}
}

func TestRunStopsAtFinalTime(t *testing.T) {
	db := newUniformBlock(t)
	sc := constantSetup{rho: 1.0, prs: 1.0}
	cfg := Config{CFL: 0.5, Backend: MHD.BackendSerial, Order: MHD.Order1, FinalTime: 0.05, MaxSteps: 1000}
	err := Run(db, cfg, sc)
	assert.NoError(t, err)
}
