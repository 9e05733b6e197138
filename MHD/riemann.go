package MHD

import (
	"math"
	"sync"
)

// primcons bundles a primitive state with its conservative counterpart and
// the physical flux along the sweep direction, exactly the quantities step
// 1 of §4.3 derives before any solver branch runs.
type primcons struct {
	V, U, F [NVAR]float64
}

func gather(a Array4, k, j, i int) (v [NVAR]float64) {
	for n := 0; n < NVAR; n++ {
		v[n] = a.At(n, k, j, i)
	}
	return
}

// pointPrimToCons converts a single-cell primitive vector, the scalar twin
// of convert.go's array kernel -- used inside the Riemann step where the
// reconstructed interface states are not backed by a DataBlock cell.
func pointPrimToCons(v [NVAR]float64, p Physics) (u [NVAR]float64) {
	rho := v[RHO]
	u[RHO] = rho
	u[MX1] = rho * v[VX1]
	u[MX2] = rho * v[VX2]
	u[MX3] = rho * v[VX3]
	if p.MHD {
		u[BX1], u[BX2], u[BX3] = v[BX1], v[BX2], v[BX3]
	}
	if p.EOS.HasEnergy() {
		kinetic := 0.5 * rho * (v[VX1]*v[VX1] + v[VX2]*v[VX2] + v[VX3]*v[VX3])
		magnetic := 0.0
		if p.MHD {
			magnetic = 0.5 * (v[BX1]*v[BX1] + v[BX2]*v[BX2] + v[BX3]*v[BX3])
		}
		u[PRS] = v[PRS]/(p.Gamma-1) + kinetic + magnetic
	}
	return
}

// physicalFlux is the flux F(V,U,d) of §4.3 step 1: advection of U by the
// normal velocity, plus the total-pressure contribution in the normal
// momentum channel, the Poynting term in the energy channel, and the
// induction terms in the transverse B channels. vn/vt1/vt2 and
// bn/bt1/bt2 are the normal/transverse components relative to direction d.
func physicalFlux(v [NVAR]float64, p Physics, d Direction) (f [NVAR]float64) {
	n1, t1, t2 := axisChannels(d)
	rho := v[RHO]
	vn, vt1, vt2 := v[n1], v[t1], v[t2]

	var bn, bt1, bt2 float64
	var pmag float64
	if p.MHD {
		bn1, bt11, bt22 := axisBChannels(d)
		bn, bt1, bt2 = v[bn1], v[bt11], v[bt22]
		pmag = 0.5 * (bn*bn + bt1*bt1 + bt2*bt2)
	}

	pgas := v[PRS]
	ptot := pgas + pmag

	f[RHO] = rho * vn
	f[n1] = rho*vn*vn + ptot - bn*bn
	f[t1] = rho * vn * vt1
	f[t2] = rho * vn * vt2
	if p.MHD {
		f[t1] -= bn * bt1
		f[t2] -= bn * bt2
	}

	if p.MHD {
		bn1, bt11, bt22 := axisBChannels(d)
		_ = bn1
		f[bt11] = vn*bt1 - vt1*bn
		f[bt22] = vn*bt2 - vt2*bn
		// the face-normal B channel's flux (induction equation's own
		// component) is identically zero and is never used -- B_n on a
		// face evolves only through CT (C6), not through C4's flux
		// divergence.
	}

	if p.EOS.HasEnergy() {
		u := pointPrimToCons(v, p)
		eng := u[PRS]
		poynting := 0.0
		if p.MHD {
			vdotB := vn*bn + vt1*bt1 + vt2*bt2
			poynting = vdotB * bn
		}
		f[PRS] = vn*(eng+ptot) - poynting
	}
	return
}

// axisChannels returns (normal, transverse1, transverse2) velocity/momentum
// channel indices for direction d.
func axisChannels(d Direction) (n, t1, t2 int) {
	switch d {
	case DirI:
		return VX1, VX2, VX3
	case DirJ:
		return VX2, VX3, VX1
	case DirK:
		return VX3, VX1, VX2
	}
	return VX1, VX2, VX3
}

func axisBChannels(d Direction) (n, t1, t2 int) {
	switch d {
	case DirI:
		return BX1, BX2, BX3
	case DirJ:
		return BX2, BX3, BX1
	case DirK:
		return BX3, BX1, BX2
	}
	return BX1, BX2, BX3
}

// fastMagnetosonic returns c_f, the larger root of
// c^4 - (a^2+b^2)c^2 + a^2 b_d^2 = 0, per §4.3 step 2.
func fastMagnetosonic(rho, a2, bn, bt1, bt2 float64) float64 {
	b2 := (bn*bn + bt1*bt1 + bt2*bt2) / rho
	bd2 := bn * bn / rho
	disc := (a2+b2)*(a2+b2) - 4*a2*bd2
	if disc < 0 {
		disc = 0
	}
	cf2 := 0.5 * (a2 + b2 + math.Sqrt(disc))
	if cf2 < 0 {
		cf2 = 0
	}
	return math.Sqrt(cf2)
}

// signalSpeed computes the characteristic speed at the interface average,
// step 2 of §4.3: sound speed with energy (or sqrt(C2Iso) isothermal), or
// the fast-magnetosonic speed for MHD.
func signalSpeed(vL, vR [NVAR]float64, p Physics, d Direction) (aveV [NVAR]float64, cf float64) {
	for n := 0; n < NVAR; n++ {
		aveV[n] = 0.5 * (vL[n] + vR[n])
	}
	rho := aveV[RHO]
	a2 := p.EOS.SoundSpeedSquared(rho, aveV[PRS])
	if !p.MHD {
		return aveV, math.Sqrt(a2)
	}
	bn1, bt11, bt22 := axisBChannels(d)
	cf = fastMagnetosonic(rho, a2, aveV[bn1], aveV[bt11], aveV[bt22])
	return aveV, cf
}

// SweepDirection is C3: for every interface in the active range along d, it
// derives U_L/U_R and F_L/F_R from the reconstructed PrimL/PrimR, dispatches
// to the configured solver, writes the resulting flux into db.Flux,
// accumulates the inverse-timestep signal, and (MHD only) captures the
// transverse EMF components into db.EMF's face buffers. The HD variant
// (Physics.MHD == false) is exactly the TVDLF/Rusanov branch regardless of
// Physics.Solver, per spec.md §6.
func SweepDirection(db *DataBlock, pf ParallelBackend, d Direction) error {
	g := db.Grid
	beg, end := g.ActiveRange(d)
	nk, nj, ni := g.Dims()
	kRange, jRange, iRange := fullRangeExceptAlong(g, d, beg, end+1, nk, nj, ni)

	p := db.Physics
	solver := p.Solver
	if !p.MHD {
		solver = SolverTVDLF
	}

	var firstErr error
	var mu sync.Mutex
	ParallelFor3D(pf, kRange, jRange, iRange, func(k, j, i int) {
		vL := gather(db.PrimL, k, j, i)
		vR := gather(db.PrimR, k, j, i)
		uL := pointPrimToCons(vL, p)
		uR := pointPrimToCons(vR, p)
		fL := physicalFlux(vL, p, d)
		fR := physicalFlux(vR, p, d)

		var flux [NVAR]float64
		var cmax float64
		var err error
		switch solver {
		case SolverTVDLF:
			flux, cmax = solveTVDLF(vL, vR, uL, uR, fL, fR, p, d)
		case SolverHLL:
			flux, cmax = solveHLL(vL, vR, uL, uR, fL, fR, p, d)
		case SolverHLLD:
			flux, cmax, err = solveHLLD(vL, vR, uL, uR, fL, fR, p, d)
		case SolverRoe:
			flux, cmax = solveRoe(vL, vR, uL, uR, fL, fR, p, d)
		}
		if err != nil {
			mu.Lock()
			if firstErr == nil {
				firstErr = &NonPhysicalState{Where: "C3 " + solver.String(), K: k, J: j, I: i, Field: "riemann", Value: 0}
			}
			mu.Unlock()
			return
		}

		for n := 0; n < NVAR; n++ {
			db.Flux.Set(n, k, j, i, flux[n])
		}
		db.InvDt.Set(k, j, i, db.InvDt.At(k, j, i)+cmax/g.Axes[d].Dx[i2idx(d, k, j, i)])

		if p.MHD {
			captureEMF(db, d, k, j, i, vL, vR)
		}
	})
	return firstErr
}

// i2idx picks the per-direction index used to look up dx for the cell the
// interface flux belongs to -- the cell immediately to the right of the
// interface (the cell whose left face it is), i.e. the index itself in this
// (right-neighbour-indexed) convention.
func i2idx(d Direction, k, j, i int) int {
	switch d {
	case DirI:
		return i
	case DirJ:
		return j
	case DirK:
		return k
	}
	return i
}

func fullRangeExceptAlong(g Grid, d Direction, dBeg, dEnd, nk, nj, ni int) (kRange, jRange, iRange [2]int) {
	kBeg, kEndA := g.ActiveRange(DirK)
	jBeg, jEndA := g.ActiveRange(DirJ)
	iBeg, iEndA := g.ActiveRange(DirI)
	switch d {
	case DirI:
		return [2]int{kBeg, kEndA}, [2]int{jBeg, jEndA}, [2]int{dBeg, dEnd}
	case DirJ:
		return [2]int{kBeg, kEndA}, [2]int{dBeg, dEnd}, [2]int{iBeg, iEndA}
	case DirK:
		return [2]int{dBeg, dEnd}, [2]int{jBeg, jEndA}, [2]int{iBeg, iEndA}
	}
	return
}

// captureEMF implements §4.3 step 5: e = -v x B evaluated from the
// interface-average state, written into the two transverse face buffers
// for this sweep direction.
func captureEMF(db *DataBlock, d Direction, k, j, i int, vL, vR [NVAR]float64) {
	var v [NVAR]float64
	for n := 0; n < NVAR; n++ {
		v[n] = 0.5 * (vL[n] + vR[n])
	}
	v1, v2, v3 := v[VX1], v[VX2], v[VX3]
	b1, b2, b3 := v[BX1], v[BX2], v[BX3]
	ex := v2*b3 - v3*b2
	ey := v3*b1 - v1*b3
	ez := v1*b2 - v2*b1
	// e = -v x B
	ex, ey, ez = -ex, -ey, -ez
	switch d {
	case DirI:
		db.EMF.Eyi.Set(k, j, i, ey)
		db.EMF.Ezi.Set(k, j, i, ez)
	case DirJ:
		db.EMF.Exj.Set(k, j, i, ex)
		db.EMF.Ezj.Set(k, j, i, ez)
	case DirK:
		db.EMF.Exk.Set(k, j, i, ex)
		db.EMF.Eyk.Set(k, j, i, ey)
	}
}
