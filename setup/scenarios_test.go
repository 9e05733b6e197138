package setup

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fluxmhd/gomhd/MHD"
)

func TestBrioWuInitFlowSetsTransverseFieldSign(t *testing.T) {
	db := newTestBlock(t, true, 1, 8)
	s := NewBrioWu()
	s.InitFlow(db)

	aBeg, aEnd := db.Grid.ActiveRange(MHD.DirI)
	assert.Greater(t, db.Vc.At(MHD.BX2, 3, 3, aBeg), 0.0)
	assert.Less(t, db.Vc.At(MHD.BX2, 3, 3, aEnd-1), 0.0)
}

func TestOrszagTangInitFlowHasUniformPressure(t *testing.T) {
	db := newTestBlock(t, true, 2, 8)
	s := NewOrszagTang()
	s.InitFlow(db)

	iBeg, _ := db.Grid.ActiveRange(MHD.DirI)
	jBeg, _ := db.Grid.ActiveRange(MHD.DirJ)
	// the vortex's pressure is spatially constant at t=0.
	assert.InDelta(t, db.Vc.At(MHD.PRS, 3, jBeg, iBeg), db.Vc.At(MHD.PRS, 3, jBeg, iBeg+1), 1e-9)
}

func TestConstantFieldInitFlowIsUniform(t *testing.T) {
	db := newTestBlock(t, true, 1, 8)
	s := NewConstantField()
	s.InitFlow(db)

	aBeg, aEnd := db.Grid.ActiveRange(MHD.DirI)
	for i := aBeg; i < aEnd; i++ {
		assert.InDelta(t, s.Rho, db.Vc.At(MHD.RHO, 3, 3, i), 1e-12)
	}
}

func TestBoundaryParityReflectsNormalVelocity(t *testing.T) {
	db := newTestBlock(t, false, 3, 4)
	s := NewBoundaryParity()
	s.InitFlow(db)

	beg, _ := db.Grid.ActiveRange(MHD.DirK)
	for j := 0; j < 8; j++ {
		for i := 0; i < 8; i++ {
			db.Vc.Set(MHD.VX3, beg, j, i, 0.7)
		}
	}
	s.SetUserdefBoundary(db, MHD.DirK, MHD.SideLeft, 0)
	assert.InDelta(t, -0.7, db.Vc.At(MHD.VX3, beg-1, 3, 3), 1e-12)
}
