package MHD

// FluxDivergence is C4: advances the cell-centered conservative state by the
// discrete divergence of the Riemann fluxes computed by the preceding
// SweepDirection call. BX1/BX2/BX3 are skipped whenever CT is active --
// those channels are governed entirely by C6's staggered update.
func FluxDivergence(db *DataBlock, pf ParallelBackend, d Direction, dt float64) {
	g := db.Grid
	dk, dj, di := Unit(d)
	beg, end := g.ActiveRange(d)
	kBeg, kEnd := g.ActiveRange(DirK)
	jBeg, jEnd := g.ActiveRange(DirJ)
	iBeg, iEnd := g.ActiveRange(DirI)

	var kRange, jRange, iRange [2]int
	switch d {
	case DirI:
		kRange, jRange, iRange = [2]int{kBeg, kEnd}, [2]int{jBeg, jEnd}, [2]int{beg, end}
	case DirJ:
		kRange, jRange, iRange = [2]int{kBeg, kEnd}, [2]int{beg, end}, [2]int{iBeg, iEnd}
	case DirK:
		kRange, jRange, iRange = [2]int{beg, end}, [2]int{jBeg, jEnd}, [2]int{iBeg, iEnd}
	}

	skipB := db.Physics.MHD

	ParallelFor3D(pf, kRange, jRange, iRange, func(k, j, i int) {
		dxLocal := g.Axes[d].Dx[i2idx(d, k, j, i)]
		factor := dt / dxLocal
		kp, jp, ip := k+dk, j+dj, i+di
		for n := 0; n < NVAR; n++ {
			if skipB && (n == BX1 || n == BX2 || n == BX3) {
				continue
			}
			fluxHi := db.Flux.At(n, kp, jp, ip)
			fluxLo := db.Flux.At(n, k, j, i)
			db.Uc.Add(n, k, j, i, -factor*(fluxHi-fluxLo))
		}
	})
}
