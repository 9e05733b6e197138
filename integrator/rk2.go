// Package integrator is the external caller of spec.md §6: a minimal
// explicit 2nd-order (Heun / SSP-RK2) time-advancement shell that drives the
// MHD core through its documented calling convention. It owns dt selection
// from the core's invDt accumulator and contains no physics of its own.
package integrator

import (
	"fmt"

	"github.com/fluxmhd/gomhd/MHD"
)

// Setup is the external-collaborator contract of §6, implemented once per
// test scenario in package setup.
type Setup interface {
	InitFlow(db *MHD.DataBlock)
	SetUserdefBoundary(db *MHD.DataBlock, d MHD.Direction, side MHD.Side, t float64)
	MakeAnalysis(db *MHD.DataBlock, t float64)
}

// Config bundles the knobs the core itself does not own: the CFL number
// used to convert invDt into dt (§6), the parallel backend, the
// reconstruction order, and the run's stopping conditions.
type Config struct {
	CFL          float64
	Backend      MHD.ParallelBackend
	Order        MHD.Order
	FinalTime    float64
	MaxSteps     int
	LogFrequency int
}

// Run drives the time loop until FinalTime or MaxSteps, calling setup's
// hooks at the documented points (InitFlow once, MakeAnalysis every step).
func Run(db *MHD.DataBlock, cfg Config, setup Setup) error {
	setup.InitFlow(db)
	var t float64
	for step := 0; cfg.MaxSteps <= 0 || step < cfg.MaxSteps; step++ {
		if t >= cfg.FinalTime {
			break
		}
		dt, err := Step(db, cfg, setup, t, cfg.FinalTime-t)
		if err != nil {
			return fmt.Errorf("integrator: step %d at t=%g: %w", step, t, err)
		}
		t += dt
		setup.MakeAnalysis(db, t)
		if cfg.LogFrequency > 0 && (step%cfg.LogFrequency == 0 || t >= cfg.FinalTime) {
			fmt.Printf("step %6d  t = %10.6f  dt = %10.6f\n", step, t, dt)
		}
	}
	return nil
}

// Step advances db by one Heun (SSP-RK2) stage:
//
//	U1 = U0 + dt*L(U0)
//	U2 = U1 + dt*L(U1)
//	Unew = 1/2*(U0 + U2)
//
// where L is one full pass over every spatial direction's C1->C2->C3->C4
// chain followed by C5->C6, boundary application, and C7 -- exactly §6's
// per-stage calling convention. dt is chosen from a dedicated probe sweep's
// invDt signal (the supplemental per-direction signal-speed caching of
// SPEC_FULL.md) rather than the interleaved C4 calls themselves, since the
// documented convention applies C4(d) immediately after C3(d) and so cannot
// itself be the source of the dt it consumes.
func Step(db *MHD.DataBlock, cfg Config, setup Setup, t, maxDt float64) (float64, error) {
	pf := cfg.Backend

	dt, err := probeDt(db, pf, cfg)
	if err != nil {
		return 0, err
	}
	if dt > maxDt {
		dt = maxDt
	}

	u0 := cloneArray4(db.Uc)
	vs0 := cloneStaggered(db.Vs)

	if err := advance(db, pf, cfg.Order, setup, t, dt); err != nil {
		return 0, err
	}
	if err := advance(db, pf, cfg.Order, setup, t+dt, dt); err != nil {
		return 0, err
	}

	combineArray4(db.Uc, u0, db.Uc, 0.5, 0.5)
	combineStaggered(db.Vs, vs0, db.Vs, 0.5, 0.5)

	// the combination above hand-edits Uc/Vs directly; Vc and the ghost
	// layer must be rebuilt from the blended state before anything reads
	// them again: C1 over the active cells, then C7 for the ghost normal
	// faces and the cell-centered B.
	kAct, jAct, iAct := activeRanges(db.Grid)
	if err := MHD.ConsToPrim(db, pf, kAct, jAct, iAct); err != nil {
		return 0, err
	}
	if err := reconcile(db, pf, t+dt); err != nil {
		return 0, err
	}
	return dt, nil
}

// probeDt runs C2/C3 over every direction from the current state without
// applying C4, purely to harvest invDt, then derives dt = CFL/max(invDt).
func probeDt(db *MHD.DataBlock, pf MHD.ParallelBackend, cfg Config) (float64, error) {
	kFull, jFull, iFull := fullRanges(db.Grid)
	if err := MHD.ConsToPrim(db, pf, kFull, jFull, iFull); err != nil {
		return 0, err
	}
	resetInvDt(db)
	for _, d := range directions(db.Physics.Dimensions) {
		MHD.Reconstruct(db, pf, d, cfg.Order)
		if err := MHD.SweepDirection(db, pf, d); err != nil {
			return 0, err
		}
	}
	maxInv := maxOf(db.InvDt.Data)
	if maxInv <= 0 {
		return cfg.FinalTime, nil
	}
	return cfg.CFL / maxInv, nil
}

// advance applies one forward-Euler sub-stage in place: per direction,
// C1->C2(d)->C3(d)->C4(d); then C5->C6, boundary application (C8), and C7.
func advance(db *MHD.DataBlock, pf MHD.ParallelBackend, order MHD.Order, setup Setup, t, dt float64) error {
	kFull, jFull, iFull := fullRanges(db.Grid)
	for _, d := range directions(db.Physics.Dimensions) {
		if err := MHD.ConsToPrim(db, pf, kFull, jFull, iFull); err != nil {
			return err
		}
		MHD.Reconstruct(db, pf, d, order)
		if err := MHD.SweepDirection(db, pf, d); err != nil {
			return err
		}
		MHD.FluxDivergence(db, pf, d, dt)
	}
	if db.Physics.MHD {
		MHD.AssembleEMF(db, pf)
		MHD.UpdateStaggeredB(db, pf, dt)
	}
	return applyBoundaryAndReconcile(db, pf, setup, t)
}

// applyBoundaryAndReconcile is C8 then C7. The userdef policy's callback is
// already bound into db.Boundary.Userdef (the Setup collaborator's
// SetUserdefBoundary, wired at construction), so ApplyBoundary alone
// dispatches to it; the integrator does not invoke setup directly here.
func applyBoundaryAndReconcile(db *MHD.DataBlock, pf MHD.ParallelBackend, setup Setup, t float64) error {
	for _, d := range directions(db.Physics.Dimensions) {
		if err := MHD.ApplyBoundary(db, pf, d, t); err != nil {
			return err
		}
	}
	return reconcile(db, pf, t)
}

// reconcile is C7 -- ghost-face extrapolation must follow boundary
// application per §4.8's ordering note, and cell-center reconstruction
// follows that so it sees the fully populated staggered field.
func reconcile(db *MHD.DataBlock, pf MHD.ParallelBackend, t float64) error {
	if !db.Physics.MHD {
		return nil
	}
	MHD.ExtrapolateGhostNormalB(db, pf)
	MHD.ReconstructCellCenteredB(db, pf)
	return nil
}

func directions(dims int) []MHD.Direction {
	all := []MHD.Direction{MHD.DirI, MHD.DirJ, MHD.DirK}
	return all[:dims]
}

func fullRanges(g MHD.Grid) (kRange, jRange, iRange [2]int) {
	nk, nj, ni := g.Dims()
	return [2]int{0, nk}, [2]int{0, nj}, [2]int{0, ni}
}

func activeRanges(g MHD.Grid) (kRange, jRange, iRange [2]int) {
	kBeg, kEnd := g.ActiveRange(MHD.DirK)
	jBeg, jEnd := g.ActiveRange(MHD.DirJ)
	iBeg, iEnd := g.ActiveRange(MHD.DirI)
	return [2]int{kBeg, kEnd}, [2]int{jBeg, jEnd}, [2]int{iBeg, iEnd}
}

func resetInvDt(db *MHD.DataBlock) {
	for i := range db.InvDt.Data {
		db.InvDt.Data[i] = 0
	}
}

func maxOf(xs []float64) float64 {
	var m float64
	for _, x := range xs {
		if x > m {
			m = x
		}
	}
	return m
}

func cloneArray4(a MHD.Array4) MHD.Array4 {
	data := make([]float64, len(a.Data))
	copy(data, a.Data)
	return MHD.Array4{Data: data, Nvar: a.Nvar, NK: a.NK, NJ: a.NJ, NI: a.NI}
}

func combineArray4(dst, a, b MHD.Array4, wa, wb float64) {
	for i := range dst.Data {
		dst.Data[i] = wa*a.Data[i] + wb*b.Data[i]
	}
}

func cloneStaggered(sf MHD.StaggeredField) MHD.StaggeredField {
	var out MHD.StaggeredField
	for d := MHD.DirI; d <= MHD.DirK; d++ {
		if sf.Has(d) {
			face := sf.Face[d]
			data := make([]float64, len(face.Data))
			copy(data, face.Data)
			out.Face[d] = MHD.Array3{Data: data, NK: face.NK, NJ: face.NJ, NI: face.NI}
		}
	}
	return out
}

func combineStaggered(dst, a, b MHD.StaggeredField, wa, wb float64) {
	for d := MHD.DirI; d <= MHD.DirK; d++ {
		if !dst.Has(d) {
			continue
		}
		for i := range dst.Face[d].Data {
			dst.Face[d].Data[i] = wa*a.Face[d].Data[i] + wb*b.Face[d].Data[i]
		}
	}
}
