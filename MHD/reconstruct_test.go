package MHD

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVanLeerZeroOnSignDisagreement(t *testing.T) {
	assert.Equal(t, 0.0, vanLeer(1.0, -1.0))
	assert.Equal(t, 0.0, vanLeer(-1.0, 1.0))
	assert.Equal(t, 0.0, vanLeer(0.0, 1.0))
}

func TestVanLeerBoundedByTVD(t *testing.T) {
	// the limited slope must never exceed twice either one-sided difference
	// -- the TVD bound the limiter exists to enforce.
	for _, pair := range [][2]float64{{1, 2}, {2, 1}, {0.5, 0.5}, {3, 0.1}} {
		dm, dp := pair[0], pair[1]
		delta := vanLeer(dm, dp)
		assert.LessOrEqual(t, delta, 2*dm)
		assert.LessOrEqual(t, delta, 2*dp)
	}
}

func TestReconstructOrder1IsDonorCell(t *testing.T) {
	db := newTestBlock(t, false, 1)
	full := [2]int{0, 8}
	for i := full[0]; i < full[1]; i++ {
		db.Vc.Set(RHO, 3, 3, i, float64(i))
	}
	Reconstruct(db, BackendSerial, DirI, Order1)
	// at interface i, PrimL should be the left-neighbour cell's value and
	// PrimR should be this cell's own value, per the donor-cell rule.
	assert.InDelta(t, 3.0, db.PrimL.At(RHO, 3, 3, 4), 1e-12)
	assert.InDelta(t, 4.0, db.PrimR.At(RHO, 3, 3, 4), 1e-12)
}

func TestReconstructOrder2ReducesToOrder1OnUniformState(t *testing.T) {
	db := newTestBlock(t, false, 1)
	full := [2]int{0, 8}
	for i := full[0]; i < full[1]; i++ {
		db.Vc.Set(RHO, 3, 3, i, 2.0)
	}
	Reconstruct(db, BackendSerial, DirI, Order2)
	assert.InDelta(t, 2.0, db.PrimR.At(RHO, 3, 3, 4), 1e-12)
	assert.InDelta(t, 2.0, db.PrimL.At(RHO, 3, 3, 4), 1e-12)
}

func TestReconstructSubstitutesStaggeredNormalB(t *testing.T) {
	db := newTestBlock(t, true, 1)
	db.Vs.Face[DirI].Set(3, 3, 4, 0.77)
	Reconstruct(db, BackendSerial, DirI, Order1)
	assert.InDelta(t, 0.77, db.PrimL.At(BX1, 3, 3, 4), 1e-12)
	assert.InDelta(t, 0.77, db.PrimR.At(BX1, 3, 3, 4), 1e-12)
}
