package MHD

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestBlock(t *testing.T, mhd bool, dims int) *DataBlock {
	t.Helper()
	ax, err := NewAxis(0, 1, 4, 2)
	assert.NoError(t, err)
	g := NewGrid([3]Axis{ax, ax, ax})
	p := NewPhysics(5.0/3.0, 1.0, true, mhd, dims, SolverHLL)
	bc, err := NewBoundaryPolicy(
		[3]string{"periodic", "periodic", "periodic"},
		[3]string{"periodic", "periodic", "periodic"},
		nil,
	)
	assert.NoError(t, err)
	return NewDataBlock(g, p, bc)
}

func TestPrimToConsRoundTrip(t *testing.T) {
	db := newTestBlock(t, true, 3)
	db.Vc.Set(RHO, 3, 3, 3, 1.4)
	db.Vc.Set(VX1, 3, 3, 3, 0.3)
	db.Vc.Set(VX2, 3, 3, 3, -0.1)
	db.Vc.Set(VX3, 3, 3, 3, 0.05)
	db.Vc.Set(BX1, 3, 3, 3, 0.7)
	db.Vc.Set(BX2, 3, 3, 3, 0.2)
	db.Vc.Set(BX3, 3, 3, 3, -0.4)
	db.Vc.Set(PRS, 3, 3, 3, 1.0)

	full := [2]int{3, 4}
	PrimToCons(db, BackendSerial, full, full, full)
	err := ConsToPrim(db, BackendSerial, full, full, full)
	assert.NoError(t, err)

	assert.InDelta(t, 1.4, db.Vc.At(RHO, 3, 3, 3), 1e-12)
	assert.InDelta(t, 0.3, db.Vc.At(VX1, 3, 3, 3), 1e-12)
	assert.InDelta(t, -0.1, db.Vc.At(VX2, 3, 3, 3), 1e-12)
	assert.InDelta(t, 0.05, db.Vc.At(VX3, 3, 3, 3), 1e-12)
	assert.InDelta(t, 0.7, db.Vc.At(BX1, 3, 3, 3), 1e-12)
	assert.InDelta(t, 1.0, db.Vc.At(PRS, 3, 3, 3), 1e-9)
}

func TestConsToPrimRejectsNegativeDensity(t *testing.T) {
	db := newTestBlock(t, false, 1)
	db.Uc.Set(RHO, 3, 3, 3, -1.0)
	full := [2]int{3, 4}
	err := ConsToPrim(db, BackendSerial, full, full, full)
	assert.Error(t, err)
	var nps *NonPhysicalState
	assert.ErrorAs(t, err, &nps)
	assert.Equal(t, "RHO", nps.Field)
}

func TestConsToPrimRejectsNegativePressure(t *testing.T) {
	db := newTestBlock(t, false, 1)
	db.Uc.Set(RHO, 3, 3, 3, 1.0)
	db.Uc.Set(MX1, 3, 3, 3, 0)
	db.Uc.Set(MX2, 3, 3, 3, 0)
	db.Uc.Set(MX3, 3, 3, 3, 0)
	db.Uc.Set(ENG, 3, 3, 3, -5.0)
	full := [2]int{3, 4}
	err := ConsToPrim(db, BackendSerial, full, full, full)
	assert.Error(t, err)
	var nps *NonPhysicalState
	assert.ErrorAs(t, err, &nps)
	assert.Equal(t, "PRS", nps.Field)
}

func TestConsToPrimThreadedReportsOneOfSeveralViolations(t *testing.T) {
	db := newTestBlock(t, false, 1)
	full := [2]int{0, 8}
	for _, n := range []int{RHO, VX1, VX2, VX3, PRS} {
		fillConstant(db, n, sampleState(false)[n], full)
	}
	PrimToCons(db, BackendSerial, full, full, full)
	db.Uc.Set(RHO, 1, 2, 2, -1.0)
	db.Uc.Set(RHO, 2, 2, 2, -2.0)
	db.Uc.Set(RHO, 3, 2, 2, -3.0)

	err := ConsToPrim(db, BackendThreaded, full, full, full)
	assert.Error(t, err)
	var nps *NonPhysicalState
	assert.ErrorAs(t, err, &nps)
	assert.Equal(t, "RHO", nps.Field)
}

func TestIsothermalSkipsEnergyChannel(t *testing.T) {
	db := newTestBlock(t, false, 1)
	db.Physics.EOS = IdealGas{Gamma: 5.0 / 3.0, C2Iso: 2.0, Energy: false}
	db.Vc.Set(RHO, 3, 3, 3, 2.0)
	full := [2]int{3, 4}
	PrimToCons(db, BackendSerial, full, full, full)
	err := ConsToPrim(db, BackendSerial, full, full, full)
	assert.NoError(t, err)
	assert.InDelta(t, 4.0, db.Vc.At(PRS, 3, 3, 3), 1e-12)
}
