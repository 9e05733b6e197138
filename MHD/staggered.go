package MHD

// UpdateStaggeredB is C6: Stokes' theorem applied at each face, using the
// corner EMFs C5 assembled. Only the update lines whose dimension actually
// exists are active -- this is exactly conservative on the discrete
// divergence, which is the reason CT exists at all (§4.6).
func UpdateStaggeredB(db *DataBlock, pf ParallelBackend, dt float64) {
	g := db.Grid
	dims := db.Physics.Dimensions
	kBeg, kEnd := g.ActiveRange(DirK)
	jBeg, jEnd := g.ActiveRange(DirJ)
	iBeg, iEnd := g.ActiveRange(DirI)
	dx1, dx2, dx3 := g.Axes[DirI].Dx, g.Axes[DirJ].Dx, g.Axes[DirK].Dx

	if db.Vs.Has(DirI) {
		ParallelFor3D(pf, [2]int{kBeg, kEnd}, [2]int{jBeg, jEnd}, [2]int{iBeg, iEnd + 1}, func(k, j, i int) {
			var upd float64
			if dims >= 2 {
				upd -= dt / dx2[j] * (db.EMF.Ez.At(k, j+1, i) - db.EMF.Ez.At(k, j, i))
			}
			if dims >= 3 {
				upd += dt / dx3[k] * (db.EMF.Ey.At(k+1, j, i) - db.EMF.Ey.At(k, j, i))
			}
			db.Vs.Face[DirI].Set(k, j, i, db.Vs.Face[DirI].At(k, j, i)+upd)
		})
	}

	if db.Vs.Has(DirJ) && dims >= 2 {
		ParallelFor3D(pf, [2]int{kBeg, kEnd}, [2]int{jBeg, jEnd + 1}, [2]int{iBeg, iEnd}, func(k, j, i int) {
			upd := dt / dx1[i] * (db.EMF.Ez.At(k, j, i+1) - db.EMF.Ez.At(k, j, i))
			if dims >= 3 {
				upd -= dt / dx3[k] * (db.EMF.Ex.At(k+1, j, i) - db.EMF.Ex.At(k, j, i))
			}
			db.Vs.Face[DirJ].Set(k, j, i, db.Vs.Face[DirJ].At(k, j, i)+upd)
		})
	}

	if db.Vs.Has(DirK) && dims >= 3 {
		ParallelFor3D(pf, [2]int{kBeg, kEnd + 1}, [2]int{jBeg, jEnd}, [2]int{iBeg, iEnd}, func(k, j, i int) {
			upd := -dt/dx1[i]*(db.EMF.Ey.At(k, j, i+1)-db.EMF.Ey.At(k, j, i)) +
				dt/dx2[j]*(db.EMF.Ex.At(k, j+1, i)-db.EMF.Ex.At(k, j, i))
			db.Vs.Face[DirK].Set(k, j, i, db.Vs.Face[DirK].At(k, j, i)+upd)
		})
	}
}
