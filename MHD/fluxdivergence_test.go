package MHD

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFluxDivergenceIsConservative(t *testing.T) {
	// a uniform flux field produces zero net divergence at every interior
	// cell: what flows out of one face flows into the next.
	db := newTestBlock(t, false, 1)
	full := [2]int{0, 8}
	for n := 0; n < NVAR; n++ {
		for i := full[0]; i < full[1]; i++ {
			db.Flux.Set(n, 3, 3, i, 5.0)
			db.Uc.Set(n, 3, 3, i, 1.0)
		}
	}
	FluxDivergence(db, BackendSerial, DirI, 0.1)
	assert.InDelta(t, 1.0, db.Uc.At(RHO, 3, 3, 3), 1e-12)
}

func TestFluxDivergenceSkipsBChannelsUnderCT(t *testing.T) {
	db := newTestBlock(t, true, 1)
	full := [2]int{0, 8}
	for i := full[0]; i < full[1]; i++ {
		db.Flux.Set(BX1, 3, 3, i, 9.0)
		db.Uc.Set(BX1, 3, 3, i, 0.5)
	}
	FluxDivergence(db, BackendSerial, DirI, 0.1)
	assert.InDelta(t, 0.5, db.Uc.At(BX1, 3, 3, 3), 1e-12)
}

func TestFluxDivergenceNetChangeMatchesFluxJump(t *testing.T) {
	db := newTestBlock(t, false, 1)
	full := [2]int{0, 8}
	for i := full[0]; i < full[1]; i++ {
		db.Flux.Set(RHO, 3, 3, i, float64(i))
		db.Uc.Set(RHO, 3, 3, i, 10.0)
	}
	FluxDivergence(db, BackendSerial, DirI, 1.0)
	dx := db.Grid.Axes[DirI].Dx[3]
	expected := 10.0 - (db.Flux.At(RHO, 3, 3, 4)-db.Flux.At(RHO, 3, 3, 3))/dx
	assert.InDelta(t, expected, db.Uc.At(RHO, 3, 3, 3), 1e-12)
}
