package MHD

// Side identifies which end of an axis a boundary policy governs.
type Side int

const (
	SideLeft Side = iota
	SideRight
)

func (s Side) String() string {
	if s == SideLeft {
		return "left"
	}
	return "right"
}

// BCType is one of the three policies §4.8 recognizes.
type BCType int

const (
	BCPeriodic BCType = iota
	BCOutflow
	BCUserdef
)

var bcNames = map[string]BCType{
	"periodic": BCPeriodic,
	"outflow":  BCOutflow,
	"userdef":  BCUserdef,
}

func NewBCType(label string) (BCType, error) {
	if t, ok := bcNames[label]; ok {
		return t, nil
	}
	return 0, &UnsupportedBoundary{Code: label}
}

// UserdefBoundary is the Setup collaborator's hook of §6, invoked by
// ApplyBoundary under the userdef policy. t is the current simulation time,
// threaded through for time-dependent boundary states.
type UserdefBoundary func(db *DataBlock, d Direction, side Side, t float64)

// BoundaryPolicy holds the six <dir><side> codes of the Boundary
// configuration section plus the optional userdef callback. A DataBlock
// owns exactly one, set at startup and never mutated by the core.
type BoundaryPolicy struct {
	Lo      [3]BCType
	Hi      [3]BCType
	Userdef UserdefBoundary
}

// NewBoundaryPolicy validates the six codes against the recognized set,
// matching the original's boundary-side validation at startup (spec.md's
// distillation leaves this implicit; the source validates eagerly rather
// than failing lazily mid-run the first time a sweep touches an unknown
// code).
func NewBoundaryPolicy(lo, hi [3]string, userdef UserdefBoundary) (BoundaryPolicy, error) {
	var bc BoundaryPolicy
	for d := 0; d < 3; d++ {
		t, err := NewBCType(lo[d])
		if err != nil {
			return BoundaryPolicy{}, &UnsupportedBoundary{Dir: Direction(d), Side: SideLeft, Code: lo[d]}
		}
		bc.Lo[d] = t
		t, err = NewBCType(hi[d])
		if err != nil {
			return BoundaryPolicy{}, &UnsupportedBoundary{Dir: Direction(d), Side: SideRight, Code: hi[d]}
		}
		bc.Hi[d] = t
	}
	for d := 0; d < 3; d++ {
		if (bc.Lo[d] == BCUserdef || bc.Hi[d] == BCUserdef) && userdef == nil {
			return BoundaryPolicy{}, &ConfigError{Msg: "userdef boundary requested but no SetUserdefBoundary hook was provided"}
		}
	}
	bc.Userdef = userdef
	return bc, nil
}

func (bc BoundaryPolicy) codeFor(d Direction, side Side) BCType {
	if side == SideLeft {
		return bc.Lo[d]
	}
	return bc.Hi[d]
}

// ApplyBoundary is C8: fills the ghost layer of V_c and the transverse V_s
// components for direction d's two sides, per §4.8. The normal V_s
// component is never written here -- ExtrapolateGhostNormalB (C7) owns it
// and must run after this, per the ordering note at the end of §4.8.
func ApplyBoundary(db *DataBlock, pf ParallelBackend, d Direction, t float64) error {
	if err := applySide(db, pf, d, SideLeft, t); err != nil {
		return err
	}
	if err := applySide(db, pf, d, SideRight, t); err != nil {
		return err
	}
	return nil
}

func applySide(db *DataBlock, pf ParallelBackend, d Direction, side Side, t float64) error {
	code := db.Boundary.codeFor(d, side)
	switch code {
	case BCPeriodic:
		applyPeriodic(db, pf, d, side)
	case BCOutflow:
		applyOutflow(db, pf, d, side)
	case BCUserdef:
		db.Boundary.Userdef(db, d, side, t)
	default:
		return &UnsupportedBoundary{Dir: d, Side: side, Code: "?"}
	}
	return nil
}

// ghostRangeOf returns, for the given side, the ghost-layer range along d.
// The source cell to copy from (the mirror active cell for periodic, the
// nearest active cell for outflow) is chosen by the caller.
func ghostRangeOf(g Grid, d Direction, side Side) (beg, end int) {
	nGhost := g.Axes[d].NGhost
	aBeg, aEnd := g.ActiveRange(d)
	if side == SideLeft {
		return aBeg - nGhost, aBeg
	}
	return aEnd, aEnd + nGhost
}

func applyPeriodic(db *DataBlock, pf ParallelBackend, d Direction, side Side) {
	g := db.Grid
	aBeg, aEnd := g.ActiveRange(d)
	gBeg, gEnd := ghostRangeOf(g, d, side)
	nActive := aEnd - aBeg

	forTransverse(db, pf, d, gBeg, gEnd, func(k, j, i, idx int) (int, int, int) {
		var mirror int
		if side == SideLeft {
			mirror = idx + nActive
		} else {
			mirror = idx - nActive
		}
		return withIndex(d, k, j, i, mirror)
	})
}

func applyOutflow(db *DataBlock, pf ParallelBackend, d Direction, side Side) {
	g := db.Grid
	aBeg, aEnd := g.ActiveRange(d)
	gBeg, gEnd := ghostRangeOf(g, d, side)
	nearest := aBeg
	if side == SideRight {
		nearest = aEnd - 1
	}

	forTransverse(db, pf, d, gBeg, gEnd, func(k, j, i, idx int) (int, int, int) {
		return withIndex(d, k, j, i, nearest)
	})
}

// forTransverse walks every (k,j,i) whose d-axis coordinate lies in
// [gBeg,gEnd), copying V_c (all channels) and the two transverse V_s
// components from the source cell src(k,j,i,idx) returns.
func forTransverse(db *DataBlock, pf ParallelBackend, d Direction, gBeg, gEnd int, src func(k, j, i, idx int) (int, int, int)) {
	g := db.Grid
	nk, nj, ni := g.Dims()
	kRange, jRange, iRange := [2]int{0, nk}, [2]int{0, nj}, [2]int{0, ni}
	switch d {
	case DirI:
		iRange = [2]int{gBeg, gEnd}
	case DirJ:
		jRange = [2]int{gBeg, gEnd}
	case DirK:
		kRange = [2]int{gBeg, gEnd}
	}

	other1, other2 := transverseOf(d)

	ParallelFor3D(pf, kRange, jRange, iRange, func(k, j, i int) {
		idx := coordAlong(d, j, i, k)
		sk, sj, si := src(k, j, i, idx)

		for n := 0; n < NVAR; n++ {
			db.Vc.Set(n, k, j, i, db.Vc.At(n, sk, sj, si))
		}
		if db.Vs.Has(other1) {
			db.Vs.Face[other1].Set(k, j, i, db.Vs.Face[other1].At(sk, sj, si))
		}
		if db.Vs.Has(other2) {
			db.Vs.Face[other2].Set(k, j, i, db.Vs.Face[other2].At(sk, sj, si))
		}
	})
}

// withIndex substitutes idx for (k,j,i)'s coordinate along direction d,
// leaving the transverse coordinates unchanged.
func withIndex(d Direction, k, j, i, idx int) (int, int, int) {
	switch d {
	case DirI:
		return k, j, idx
	case DirJ:
		return k, idx, i
	case DirK:
		return idx, j, i
	}
	return k, j, i
}
