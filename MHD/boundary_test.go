package MHD

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewBoundaryPolicyRejectsUnknownCode(t *testing.T) {
	_, err := NewBoundaryPolicy(
		[3]string{"bogus", "periodic", "periodic"},
		[3]string{"periodic", "periodic", "periodic"},
		nil,
	)
	assert.Error(t, err)
	var ub *UnsupportedBoundary
	assert.ErrorAs(t, err, &ub)
}

func TestNewBoundaryPolicyRequiresUserdefHook(t *testing.T) {
	_, err := NewBoundaryPolicy(
		[3]string{"userdef", "periodic", "periodic"},
		[3]string{"periodic", "periodic", "periodic"},
		nil,
	)
	assert.Error(t, err)
	var cfgErr *ConfigError
	assert.ErrorAs(t, err, &cfgErr)
}

func TestApplyBoundaryPeriodicCopiesMirrorCell(t *testing.T) {
	db := newTestBlock(t, true, 1)
	aBeg, aEnd := db.Grid.ActiveRange(DirI)
	for k := 0; k < 8; k++ {
		for j := 0; j < 8; j++ {
			for i := aBeg; i < aEnd; i++ {
				db.Vc.Set(RHO, k, j, i, float64(i))
			}
		}
	}
	err := ApplyBoundary(db, BackendSerial, DirI, 0)
	assert.NoError(t, err)
	assert.InDelta(t, float64(aEnd-1), db.Vc.At(RHO, 3, 3, aBeg-1), 1e-12)
	assert.InDelta(t, float64(aBeg), db.Vc.At(RHO, 3, 3, aEnd), 1e-12)
}

func TestApplyBoundaryOutflowCopiesNearestActiveCell(t *testing.T) {
	db := newTestBlock(t, false, 1)
	bc, err := NewBoundaryPolicy(
		[3]string{"outflow", "periodic", "periodic"},
		[3]string{"outflow", "periodic", "periodic"},
		nil,
	)
	assert.NoError(t, err)
	db.Boundary = bc
	aBeg, aEnd := db.Grid.ActiveRange(DirI)
	for i := aBeg; i < aEnd; i++ {
		db.Vc.Set(RHO, 3, 3, i, float64(i*i))
	}
	err = ApplyBoundary(db, BackendSerial, DirI, 0)
	assert.NoError(t, err)
	assert.InDelta(t, float64(aBeg*aBeg), db.Vc.At(RHO, 3, 3, aBeg-1), 1e-12)
	assert.InDelta(t, float64((aEnd-1)*(aEnd-1)), db.Vc.At(RHO, 3, 3, aEnd), 1e-12)
}

func TestApplyBoundaryNeverWritesNormalStaggeredComponent(t *testing.T) {
	db := newTestBlock(t, true, 1)
	aBeg, aEnd := db.Grid.ActiveRange(DirI)
	for i := 0; i < 8; i++ {
		db.Vs.Face[DirI].Set(3, 3, i, -1.0)
	}
	for i := aBeg; i < aEnd; i++ {
		db.Vs.Face[DirI].Set(3, 3, i, 9.0)
	}
	err := ApplyBoundary(db, BackendSerial, DirI, 0)
	assert.NoError(t, err)
	assert.InDelta(t, -1.0, db.Vs.Face[DirI].At(3, 3, aBeg-1), 1e-12)
}

func TestUserdefBoundaryDelegatesToHook(t *testing.T) {
	called := false
	hook := func(db *DataBlock, d Direction, side Side, simTime float64) {
		called = true
		assert.Equal(t, SideLeft, side)
	}
	bc, err := NewBoundaryPolicy(
		[3]string{"userdef", "periodic", "periodic"},
		[3]string{"periodic", "periodic", "periodic"},
		hook,
	)
	assert.NoError(t, err)
	db := newTestBlock(t, false, 1)
	db.Boundary = bc
	err = ApplyBoundary(db, BackendSerial, DirI, 1.5)
	assert.NoError(t, err)
	assert.True(t, called)
}
