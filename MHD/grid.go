package MHD

// Axis holds the per-direction extents and geometry of §3: the data model.
// np_tot = np_int + 2*nghost; active cells occupy [beg,end).
type Axis struct {
	NTot, NInt, NGhost int
	Beg, End           int
	Dx                 []float64 // length NTot, cell widths
	X                  []float64 // length NTot, cell-center coordinates
	Xl                 []float64 // length NTot, left-face coordinates (staggered)
}

// NewAxis builds a uniform axis over [xmin,xmax] with nint interior cells
// and nghost ghost cells per side. A non-positive spacing is a ConfigError,
// validated once here rather than discovered mid-kernel.
func NewAxis(xmin, xmax float64, nint, nghost int) (Axis, error) {
	if nint <= 0 {
		return Axis{}, &ConfigError{Msg: "grid direction must have at least one interior cell"}
	}
	if xmax <= xmin {
		return Axis{}, &ConfigError{Msg: "grid domain upper bound must exceed lower bound"}
	}
	ntot := nint + 2*nghost
	dx := (xmax - xmin) / float64(nint)
	if dx <= 0 {
		return Axis{}, &ConfigError{Msg: "non-positive grid spacing"}
	}
	a := Axis{
		NTot:   ntot,
		NInt:   nint,
		NGhost: nghost,
		Beg:    nghost,
		End:    nghost + nint,
		Dx:     make([]float64, ntot),
		X:      make([]float64, ntot),
		Xl:     make([]float64, ntot),
	}
	for i := 0; i < ntot; i++ {
		a.Dx[i] = dx
		// index nghost sits at the left edge of the domain; cell centers
		// run outward from there in both directions by uniform dx.
		a.Xl[i] = xmin + float64(i-nghost)*dx
		a.X[i] = a.Xl[i] + 0.5*dx
	}
	return a, nil
}

// Grid bundles the three axes. Directions beyond Physics.Dimensions carry a
// single active cell and no ghost layer, so 1-D/2-D code paths fall out of
// the same 3-index loops used for the full 3-D case.
type Grid struct {
	Axes [3]Axis
}

func NewGrid(axes [3]Axis) Grid {
	return Grid{Axes: axes}
}

func (g Grid) Dims() (nk, nj, ni int) {
	return g.Axes[DirK].NTot, g.Axes[DirJ].NTot, g.Axes[DirI].NTot
}

// ActiveRange returns the [beg,end) active-cell bounds for direction d.
func (g Grid) ActiveRange(d Direction) (beg, end int) {
	return g.Axes[d].Beg, g.Axes[d].End
}

// Unit returns the three-component integer offset e_d used throughout §4.
func Unit(d Direction) (dk, dj, di int) {
	switch d {
	case DirI:
		return 0, 0, 1
	case DirJ:
		return 0, 1, 0
	case DirK:
		return 1, 0, 0
	}
	return 0, 0, 0
}
