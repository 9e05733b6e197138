package MHD

// Order selects the face-reconstruction scheme of §4.2.
type Order int

const (
	Order1 Order = 1 // donor-cell
	Order2 Order = 2 // TVD with Van Leer limiter
)

// vanLeer is the limiter of §4.2 / GLOSSARY: the smooth symmetric TVD slope
// limiter, zero whenever the two one-sided differences disagree in sign.
// The sign test itself masks the division-by-zero the formula would
// otherwise produce when dm+dp == 0, per §4.2's stated failure mode.
func vanLeer(dm, dp float64) float64 {
	if dm*dp <= 0 {
		return 0
	}
	return 2 * dp * dm / (dp + dm)
}

// Reconstruct is C2: it fills db.PrimL/db.PrimR along direction d over the
// active range extended by one cell transverse to d (so that C5's corner
// averaging has the transverse face fluxes it needs). PrimL(x) and
// PrimR(x) are both indexed by the right-neighbour cell index of the
// interface, per §3's Interface-buffers invariant.
//
// The MHD specialization of §4.2 substitutes the face-normal B component
// directly from the staggered field rather than reconstructing it from Vc;
// transverse components use the generic rule.
func Reconstruct(db *DataBlock, pf ParallelBackend, d Direction, order Order) {
	g := db.Grid
	dk, dj, di := Unit(d)
	nk, nj, ni := g.Dims()

	kRange, jRange, iRange := extendedRange(g, d, nk, nj, ni)

	bxd := normalBChannel(d)

	ParallelFor3D(pf, kRange, jRange, iRange, func(k, j, i int) {
		km, jm, im := k-dk, j-dj, i-di
		for n := 0; n < NVAR; n++ {
			if db.Physics.MHD && n == bxd {
				continue // face-normal B is substituted below, not reconstructed
			}
			center := db.Vc.At(n, k, j, i)
			left := db.Vc.At(n, km, jm, im)
			switch order {
			case Order1:
				db.PrimL.Set(n, k, j, i, left)
				db.PrimR.Set(n, k, j, i, center)
			case Order2:
				kp, jp, ip := k+dk, j+dj, i+di
				if kp >= nk || jp >= nj || ip >= ni {
					// at the extended edge there is no right neighbour to
					// form dp; fall back to donor-cell there.
					db.PrimL.Set(n, k, j, i, left)
					db.PrimR.Set(n, k, j, i, center)
					continue
				}
				right := db.Vc.At(n, kp, jp, ip)
				dm := center - left
				dp := right - center
				delta := vanLeer(dm, dp)
				db.PrimR.Set(n, k, j, i, center-0.5*delta)

				// PrimL(x+e_d) is written from the *left* cell's own
				// slope, i.e. when this loop iteration is centered at the
				// left-neighbour cell of its own right interface. We
				// instead compute it directly here using the left cell's
				// slope formed from its own neighbours, matching §4.2
				// exactly without a second pass.
				kll, jll, ill := km-dk, jm-dj, im-di
				if kll < 0 || jll < 0 || ill < 0 {
					db.PrimL.Set(n, k, j, i, left)
					continue
				}
				lleft := db.Vc.At(n, kll, jll, ill)
				ldm := left - lleft
				ldp := center - left
				ldelta := vanLeer(ldm, ldp)
				db.PrimL.Set(n, k, j, i, left+0.5*ldelta)
			}
		}
		if db.Physics.MHD {
			bFace := db.Vs.Face[d].At(k, j, i)
			db.PrimL.Set(bxd, k, j, i, bFace)
			db.PrimR.Set(bxd, k, j, i, bFace)
		}
	})
}

func normalBChannel(d Direction) int {
	switch d {
	case DirI:
		return BX1
	case DirJ:
		return BX2
	case DirK:
		return BX3
	}
	return BX1
}

// extendedRange returns the active range along d, extended by one cell in
// the two transverse directions (iextend/jextend/kextend of §4.2), clamped
// to the array extent.
func extendedRange(g Grid, d Direction, nk, nj, ni int) (kRange, jRange, iRange [2]int) {
	kBeg, kEnd := g.ActiveRange(DirK)
	jBeg, jEnd := g.ActiveRange(DirJ)
	iBeg, iEnd := g.ActiveRange(DirI)
	dBeg, dEnd := g.ActiveRange(d)
	// along d itself the range runs one past the active end, so that the
	// upper active boundary face (index end) is populated as well as the
	// lower one (index beg).
	switch d {
	case DirI:
		iBeg, iEnd = dBeg, dEnd+1
		if g.Axes[DirJ].NGhost > 0 {
			jBeg, jEnd = clampExtend(jBeg, jEnd, nj)
		}
		if g.Axes[DirK].NGhost > 0 {
			kBeg, kEnd = clampExtend(kBeg, kEnd, nk)
		}
	case DirJ:
		jBeg, jEnd = dBeg, dEnd+1
		if g.Axes[DirI].NGhost > 0 {
			iBeg, iEnd = clampExtend(iBeg, iEnd, ni)
		}
		if g.Axes[DirK].NGhost > 0 {
			kBeg, kEnd = clampExtend(kBeg, kEnd, nk)
		}
	case DirK:
		kBeg, kEnd = dBeg, dEnd+1
		if g.Axes[DirI].NGhost > 0 {
			iBeg, iEnd = clampExtend(iBeg, iEnd, ni)
		}
		if g.Axes[DirJ].NGhost > 0 {
			jBeg, jEnd = clampExtend(jBeg, jEnd, nj)
		}
	}
	return [2]int{kBeg, kEnd}, [2]int{jBeg, jEnd}, [2]int{iBeg, iEnd}
}

func clampExtend(beg, end, n int) (int, int) {
	if beg > 0 {
		beg--
	}
	if end < n {
		end++
	}
	return beg, end
}
