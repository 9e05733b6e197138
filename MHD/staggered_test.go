package MHD

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpdateStaggeredBUniformEMFLeavesFieldUnchanged(t *testing.T) {
	// a spatially uniform EMF has zero curl, so CT must not move B at all.
	db := newTestBlock(t, true, 2)
	full := [2]int{0, 8}
	for k := full[0]; k < full[1]; k++ {
		for j := full[0]; j < full[1]; j++ {
			for i := full[0]; i < full[1]; i++ {
				db.EMF.Ez.Set(k, j, i, 4.0)
				db.Vs.Face[DirI].Set(k, j, i, 0.3)
				db.Vs.Face[DirJ].Set(k, j, i, -0.2)
			}
		}
	}
	UpdateStaggeredB(db, BackendSerial, 0.1)
	assert.InDelta(t, 0.3, db.Vs.Face[DirI].At(3, 3, 4), 1e-12)
	assert.InDelta(t, -0.2, db.Vs.Face[DirJ].At(3, 3, 4), 1e-12)
}

func TestUpdateStaggeredBRespondsToEMFGradient(t *testing.T) {
	db := newTestBlock(t, true, 2)
	full := [2]int{0, 8}
	for k := full[0]; k < full[1]; k++ {
		for j := full[0]; j < full[1]; j++ {
			for i := full[0]; i < full[1]; i++ {
				db.Vs.Face[DirI].Set(k, j, i, 0.0)
			}
		}
	}
	db.EMF.Ez.Set(3, 4, 4, 2.0)
	db.EMF.Ez.Set(3, 3, 4, 0.0)
	UpdateStaggeredB(db, BackendSerial, 1.0)
	dx2 := db.Grid.Axes[DirJ].Dx[3]
	expected := -1.0 / dx2 * (2.0 - 0.0)
	assert.InDelta(t, expected, db.Vs.Face[DirI].At(3, 3, 4), 1e-12)
}
