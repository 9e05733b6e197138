package MHD

import (
	"math"
	"sync"
)

// PrimToCons is C1's primitive-to-conservative half. It is pointwise and
// independent of neighbours, so it is always invoked through ParallelFor3D
// over the requested range.
func PrimToCons(db *DataBlock, pf ParallelBackend, kRange, jRange, iRange [2]int) {
	mhd := db.Physics.MHD
	haveEnergy := db.Physics.EOS.HasEnergy()
	gamma := db.Physics.Gamma

	ParallelFor3D(pf, kRange, jRange, iRange, func(k, j, i int) {
		rho := db.Vc.At(RHO, k, j, i)
		db.Uc.Set(RHO, k, j, i, rho)

		var v1, v2, v3 float64
		v1 = db.Vc.At(VX1, k, j, i)
		v2 = db.Vc.At(VX2, k, j, i)
		v3 = db.Vc.At(VX3, k, j, i)
		db.Uc.Set(MX1, k, j, i, rho*v1)
		db.Uc.Set(MX2, k, j, i, rho*v2)
		db.Uc.Set(MX3, k, j, i, rho*v3)

		var b1, b2, b3 float64
		if mhd {
			b1 = db.Vc.At(BX1, k, j, i)
			b2 = db.Vc.At(BX2, k, j, i)
			b3 = db.Vc.At(BX3, k, j, i)
			db.Uc.Set(BX1, k, j, i, b1)
			db.Uc.Set(BX2, k, j, i, b2)
			db.Uc.Set(BX3, k, j, i, b3)
		}

		if haveEnergy {
			prs := db.Vc.At(PRS, k, j, i)
			kinetic := 0.5 * rho * (v1*v1 + v2*v2 + v3*v3)
			magnetic := 0.0
			if mhd {
				magnetic = 0.5 * (b1*b1 + b2*b2 + b3*b3)
			}
			eng := prs/(gamma-1) + kinetic + magnetic
			db.Uc.Set(ENG, k, j, i, eng)
		}
	})
}

// ConsToPrim is C1's conservative-to-primitive half. Returns a
// NonPhysicalState error identifying one violating cell -- under
// BackendThreaded that is whichever violation is first to take the mutex,
// not necessarily lexicographically first -- and never clamps, matching
// §4.1's "no silent clamping in the core".
func ConsToPrim(db *DataBlock, pf ParallelBackend, kRange, jRange, iRange [2]int) error {
	mhd := db.Physics.MHD
	haveEnergy := db.Physics.EOS.HasEnergy()
	gamma := db.Physics.Gamma
	c2iso := 0.0
	if ig, ok := db.Physics.EOS.(IdealGas); ok {
		c2iso = ig.C2Iso
	}

	var firstErr error
	var mu sync.Mutex
	ParallelFor3D(pf, kRange, jRange, iRange, func(k, j, i int) {
		rho := db.Uc.At(RHO, k, j, i)
		if rho <= 0 {
			mu.Lock()
			if firstErr == nil {
				firstErr = &NonPhysicalState{Where: "C1 cons->prim", K: k, J: j, I: i, Field: "RHO", Value: rho}
			}
			mu.Unlock()
			return
		}
		db.Vc.Set(RHO, k, j, i, rho)

		oorho := 1 / rho
		m1 := db.Uc.At(MX1, k, j, i)
		m2 := db.Uc.At(MX2, k, j, i)
		m3 := db.Uc.At(MX3, k, j, i)
		v1, v2, v3 := m1*oorho, m2*oorho, m3*oorho
		db.Vc.Set(VX1, k, j, i, v1)
		db.Vc.Set(VX2, k, j, i, v2)
		db.Vc.Set(VX3, k, j, i, v3)

		var b1, b2, b3 float64
		if mhd {
			b1 = db.Uc.At(BX1, k, j, i)
			b2 = db.Uc.At(BX2, k, j, i)
			b3 = db.Uc.At(BX3, k, j, i)
			db.Vc.Set(BX1, k, j, i, b1)
			db.Vc.Set(BX2, k, j, i, b2)
			db.Vc.Set(BX3, k, j, i, b3)
		}

		if !haveEnergy {
			db.Vc.Set(PRS, k, j, i, rho*c2iso)
			return
		}

		eng := db.Uc.At(ENG, k, j, i)
		kinetic := 0.5 * rho * (v1*v1 + v2*v2 + v3*v3)
		magnetic := 0.0
		if mhd {
			magnetic = 0.5 * (b1*b1 + b2*b2 + b3*b3)
		}
		prs := (gamma - 1) * (eng - kinetic - magnetic)
		if prs <= 0 || math.IsNaN(prs) {
			mu.Lock()
			if firstErr == nil {
				firstErr = &NonPhysicalState{Where: "C1 cons->prim", K: k, J: j, I: i, Field: "PRS", Value: prs}
			}
			mu.Unlock()
			return
		}
		db.Vc.Set(PRS, k, j, i, prs)
	})
	return firstErr
}
