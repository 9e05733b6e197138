package setup

import (
	"fmt"
	"math"

	"github.com/fluxmhd/gomhd/MHD"
)

// Sod is the classic shock-tube Setup of §8's testable scenarios: a
// density/pressure discontinuity at the domain midpoint, run as pure
// hydrodynamics (Physics.MHD == false). Its analytic reference is adapted
// from the teacher's sod_shock_tube package.
type Sod struct {
	RhoL, PL float64
	RhoR, PR float64
	Gamma    float64

	LogFrequency int
	reported     int
}

func NewSod(gamma float64) *Sod {
	return &Sod{RhoL: 1.0, PL: 1.0, RhoR: 0.125, PR: 0.1, Gamma: gamma, LogFrequency: 50}
}

func (s *Sod) InitFlow(db *MHD.DataBlock) {
	g := db.Grid
	x0 := 0.5 * (g.Axes[MHD.DirI].X[g.Axes[MHD.DirI].Beg] + g.Axes[MHD.DirI].X[g.Axes[MHD.DirI].End-1])
	nk, nj, ni := g.Dims()
	for k := 0; k < nk; k++ {
		for j := 0; j < nj; j++ {
			for i := 0; i < ni; i++ {
				left := g.Axes[MHD.DirI].X[i] < x0
				rho, p := s.RhoR, s.PR
				if left {
					rho, p = s.RhoL, s.PL
				}
				db.Vc.Set(MHD.RHO, k, j, i, rho)
				db.Vc.Set(MHD.VX1, k, j, i, 0)
				db.Vc.Set(MHD.VX2, k, j, i, 0)
				db.Vc.Set(MHD.VX3, k, j, i, 0)
				db.Vc.Set(MHD.PRS, k, j, i, p)
			}
		}
	}
	MHD.PrimToCons(db, MHD.BackendSerial, [2]int{0, nk}, [2]int{0, nj}, [2]int{0, ni})
}

func (s *Sod) SetUserdefBoundary(db *MHD.DataBlock, d MHD.Direction, side MHD.Side, t float64) {
	// Sod runs with outflow boundaries on every side; userdef is never
	// configured for this scenario, so this hook is never invoked.
}

func (s *Sod) MakeAnalysis(db *MHD.DataBlock, t float64) {
	s.reported++
	if s.LogFrequency <= 0 || s.reported%s.LogFrequency != 0 {
		return
	}
	g := db.Grid
	beg, end := g.ActiveRange(MHD.DirI)
	k, j := g.Axes[MHD.DirK].Beg, g.Axes[MHD.DirJ].Beg
	var l2 float64
	var n int
	for i := beg; i < end; i++ {
		x := g.Axes[MHD.DirI].X[i]
		_, exactRho, _, _ := s.analytic(x, t)
		d := db.Vc.At(MHD.RHO, k, j, i) - exactRho
		l2 += d * d
		n++
	}
	if n > 0 {
		l2 = math.Sqrt(l2 / float64(n))
	}
	fmt.Printf("sod: t=%8.5f  rho L2 error vs analytic = %10.3e\n", t, l2)
}

// analytic evaluates the exact Sod solution at (x,t), adapted from
// sod_shock_tube/analytic_sod.go's fixed-point pressure iteration.
func (s *Sod) analytic(x, t float64) (pos, rho, p, u float64) {
	if t <= 0 {
		if x < 0.5 {
			return x, s.RhoL, s.PL, 0
		}
		return x, s.RhoR, s.PR, 0
	}
	gamma := s.Gamma
	rhoL, pL := s.RhoL, s.PL
	rhoR, pR := s.RhoR, s.PR
	mu := math.Sqrt((gamma - 1) / (gamma + 1))
	cL := math.Sqrt(gamma * pL / rhoL)

	pPost := sodFindPostPressure(rhoR, pR, gamma, mu)
	vPost := 2 * (math.Sqrt(gamma) / (gamma - 1)) * (1 - math.Pow(pPost/pL, (gamma-1)/(2*gamma)))
	rhoPost := rhoR * (((pPost / pR) + mu*mu) / (1 + mu*mu*(pPost/pR)))
	vShock := vPost * (rhoPost / rhoR) / (rhoPost/rhoR - 1)
	rhoMiddle := rhoL * math.Pow(pPost/pL, 1/gamma)

	x0 := 0.5
	x1 := x0 - cL*t
	x3 := x0 + vPost*t
	x4 := x0 + vShock*t
	c2 := cL - 0.5*(gamma-1)*vPost
	x2 := x0 + t*(vPost-c2)

	switch {
	case x < x1:
		return x, rhoL, pL, 0
	case x <= x2:
		c := mu*mu*((x0-x)/t) + (1-mu*mu)*cL
		r := rhoL * math.Pow(c/cL, 2/(gamma-1))
		return x, r, pL * math.Pow(r/rhoL, gamma), (1 - mu*mu) * (-(x0-x)/t + cL)
	case x <= x3:
		return x, rhoMiddle, pPost, vPost
	case x <= x4:
		return x, rhoPost, pPost, vPost
	default:
		return x, rhoR, pR, 0
	}
}

// sodFindPostPressure is the Newton-ish secant iteration of the teacher's
// fzero helper, specialized to sod_func's post-shock pressure root.
func sodFindPostPressure(rhoR, pR, gamma, mu float64) float64 {
	f := func(p float64) float64 {
		mu2 := mu * mu
		return (p-pR)*math.Sqrt(math.Pow(1-mu2, 2)/(rhoR*(p+mu2*pR))) -
			2*(math.Sqrt(gamma)/(gamma-1))*(1-math.Pow(p, (gamma-1)/(2*gamma)))
	}
	start := math.Pi
	startOld := start / 2
	res := f(startOld)
	tol := 1e-7
	for i := 0; i < 200 && math.Abs(res) > tol; i++ {
		resNew := f(start)
		deriv := (start - startOld) / (resNew - res)
		startNew := math.Abs(start - 0.01*f(start)/deriv)
		startOld = start
		start = startNew
		res = resNew
	}
	return start
}
