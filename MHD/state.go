package MHD

// Array4 is the fixed (n,k,j,i) accessor over a flat backing slice, the
// capability-layer primitive named in spec.md §9's Design Notes. Every
// cell-centered quantity in the core goes through this type so that the
// storage layout is never implicit.
type Array4 struct {
	Data         []float64
	Nvar, NK, NJ, NI int
}

// NewArray4 allocates a zeroed (nvar,nk,nj,ni) array.
func NewArray4(nvar, nk, nj, ni int) Array4 {
	return Array4{
		Data: make([]float64, nvar*nk*nj*ni),
		Nvar: nvar, NK: nk, NJ: nj, NI: ni,
	}
}

func (a Array4) index(n, k, j, i int) int {
	return ((n*a.NK+k)*a.NJ+j)*a.NI + i
}

func (a Array4) At(n, k, j, i int) float64 {
	return a.Data[a.index(n, k, j, i)]
}

func (a Array4) Set(n, k, j, i int, v float64) {
	a.Data[a.index(n, k, j, i)] = v
}

func (a Array4) Add(n, k, j, i int, v float64) {
	a.Data[a.index(n, k, j, i)] += v
}

// Array3 is the corner/edge-centered accessor used by the EMF buffers (C5)
// and the per-face staggered-field slots (C6/C7), which carry no variable
// axis.
type Array3 struct {
	Data       []float64
	NK, NJ, NI int
}

func NewArray3(nk, nj, ni int) Array3 {
	return Array3{Data: make([]float64, nk*nj*ni), NK: nk, NJ: nj, NI: ni}
}

func (a Array3) index(k, j, i int) int {
	return (k*a.NJ+j)*a.NI + i
}

func (a Array3) At(k, j, i int) float64 {
	return a.Data[a.index(k, j, i)]
}

func (a Array3) Set(k, j, i int, v float64) {
	a.Data[a.index(k, j, i)] = v
}

// StaggeredField holds V_s, one Array3 per spatial direction actually
// present. A nil entry means that direction does not exist for this
// problem's Physics.Dimensions.
type StaggeredField struct {
	Face [3]Array3
}

func NewStaggeredField(dims int, nk, nj, ni int) StaggeredField {
	var sf StaggeredField
	for d := 0; d < 3; d++ {
		if d < dims {
			sf.Face[d] = NewArray3(nk, nj, ni)
		}
	}
	return sf
}

func (sf StaggeredField) Has(d Direction) bool {
	return sf.Face[d].Data != nil
}

// EMFBuffers holds the six face-indexed electric-field components C3
// writes during the directional sweep (e<axis><face>) and the three
// corner-centered EMFs C5 assembles from them.
type EMFBuffers struct {
	// Face EMFs, written by the Riemann step of the sweep along the second
	// index's direction, indexed like Array3 over the full (k,j,i) extent.
	Exj, Exk Array3 // E_x evaluated on J-normal, K-normal faces
	Eyi, Eyk Array3 // E_y evaluated on I-normal, K-normal faces
	Ezi, Ezj Array3 // E_z evaluated on I-normal, J-normal faces

	// Corner EMFs, assembled by C5.
	Ex, Ey, Ez Array3
}

func NewEMFBuffers(nk, nj, ni int) EMFBuffers {
	mk := func() Array3 { return NewArray3(nk, nj, ni) }
	return EMFBuffers{
		Exj: mk(), Exk: mk(),
		Eyi: mk(), Eyk: mk(),
		Ezi: mk(), Ezj: mk(),
		Ex: mk(), Ey: mk(), Ez: mk(),
	}
}

// DataBlock is the full per-block state of §3: the cell-centered
// conservative/primitive pair, the staggered field, and the ephemeral
// directional-sweep scratch. It is allocated once and reused for the
// lifetime of the run.
type DataBlock struct {
	Grid    Grid
	Physics Physics

	Vc Array4 // cell-centered primitive
	Uc Array4 // cell-centered conservative (integrator's working state)
	Vs StaggeredField

	// Ephemeral, overwritten by each directional sweep -- never retain a
	// reference to these across a call to SweepDirection for a different d.
	PrimL, PrimR Array4
	Flux         Array4
	InvDt        Array3 // per-cell accumulator, summed across directions

	EMF EMFBuffers

	Boundary BoundaryPolicy
}

// NewDataBlock allocates every array sized from the grid and physics
// configuration. Called once at initialization.
func NewDataBlock(g Grid, p Physics, bc BoundaryPolicy) *DataBlock {
	nk, nj, ni := g.Dims()
	db := &DataBlock{
		Grid:     g,
		Physics:  p,
		Vc:       NewArray4(NVAR, nk, nj, ni),
		Uc:       NewArray4(NVAR, nk, nj, ni),
		PrimL:    NewArray4(NVAR, nk, nj, ni),
		PrimR:    NewArray4(NVAR, nk, nj, ni),
		Flux:     NewArray4(NVAR, nk, nj, ni),
		InvDt:    NewArray3(nk, nj, ni),
		Boundary: bc,
	}
	if p.MHD {
		db.Vs = NewStaggeredField(p.Dimensions, nk, nj, ni)
		db.EMF = NewEMFBuffers(nk, nj, ni)
	}
	return db
}
