package setup

import (
	"fmt"

	"github.com/fluxmhd/gomhd/MHD"
)

// BrioWu is the Brio & Wu (1988) MHD shock-tube scenario of §8: a coplanar
// rotational discontinuity driven by a transverse-field sign flip across the
// midpoint, with no analytic reference solution.
type BrioWu struct {
	LogFrequency int
	reported     int
}

func NewBrioWu() *BrioWu {
	return &BrioWu{LogFrequency: 50}
}

func (s *BrioWu) InitFlow(db *MHD.DataBlock) {
	g := db.Grid
	ax := g.Axes[MHD.DirI]
	x0 := 0.5 * (ax.X[ax.Beg] + ax.X[ax.End-1])
	nk, nj, ni := g.Dims()

	const bx = 0.75
	for k := 0; k < nk; k++ {
		for j := 0; j < nj; j++ {
			for i := 0; i < ni; i++ {
				left := ax.X[i] < x0
				rho, p, by := 0.125, 0.1, -1.0
				if left {
					rho, p, by = 1.0, 1.0, 1.0
				}
				db.Vc.Set(MHD.RHO, k, j, i, rho)
				db.Vc.Set(MHD.VX1, k, j, i, 0)
				db.Vc.Set(MHD.VX2, k, j, i, 0)
				db.Vc.Set(MHD.VX3, k, j, i, 0)
				db.Vc.Set(MHD.PRS, k, j, i, p)
				db.Vc.Set(MHD.BX1, k, j, i, bx)
				db.Vc.Set(MHD.BX2, k, j, i, by)
				db.Vc.Set(MHD.BX3, k, j, i, 0)
				db.Vs.Face[MHD.DirI].Set(k, j, i, bx)
			}
		}
	}
	MHD.PrimToCons(db, MHD.BackendSerial, [2]int{0, nk}, [2]int{0, nj}, [2]int{0, ni})
}

func (s *BrioWu) SetUserdefBoundary(db *MHD.DataBlock, d MHD.Direction, side MHD.Side, t float64) {
	// run with outflow on both ends; never configured as userdef.
}

func (s *BrioWu) MakeAnalysis(db *MHD.DataBlock, t float64) {
	s.reported++
	if s.LogFrequency <= 0 || s.reported%s.LogFrequency != 0 {
		return
	}
	g := db.Grid
	beg, end := g.ActiveRange(MHD.DirI)
	k, j := g.Axes[MHD.DirK].Beg, g.Axes[MHD.DirJ].Beg
	min, max := db.Vc.At(MHD.RHO, k, j, beg), db.Vc.At(MHD.RHO, k, j, beg)
	for i := beg; i < end; i++ {
		rho := db.Vc.At(MHD.RHO, k, j, i)
		if rho < min {
			min = rho
		}
		if rho > max {
			max = rho
		}
	}
	fmt.Printf("briowu: t=%8.5f  rho range = [%8.5f, %8.5f]\n", t, min, max)
}
