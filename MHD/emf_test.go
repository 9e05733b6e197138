package MHD

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test1DEMFReducesToFaceDuplication(t *testing.T) {
	db := newTestBlock(t, true, 1)
	full := [2]int{0, 8}
	for i := full[0]; i < full[1]; i++ {
		db.EMF.Ezi.Set(3, 3, i, 1.0)
		db.EMF.Ezj.Set(3, 3, i, 1.0)
	}
	AssembleEMF(db, BackendSerial)
	assert.InDelta(t, 1.0, db.EMF.Ez.At(3, 3, 4), 1e-12)
}

func Test2DCornerEMFIsFacesAverage(t *testing.T) {
	db := newTestBlock(t, true, 2)
	db.EMF.Ezi.Set(3, 3, 4, 1.0)
	db.EMF.Ezi.Set(3, 2, 4, 3.0)
	db.EMF.Ezj.Set(3, 3, 4, 5.0)
	db.EMF.Ezj.Set(3, 3, 3, 7.0)
	AssembleEMF(db, BackendSerial)
	assert.InDelta(t, 0.25*(1.0+3.0+5.0+7.0), db.EMF.Ez.At(3, 3, 4), 1e-12)
}
