package MHD

// AssembleEMF is C5: averages the six face EMFs SweepDirection captured
// during the three directional sweeps into the three corner-centered EMFs
// Stokes' theorem needs for C6. In 1D, the j-averaging collapses to
// duplication of the only available face value, per §4.5.
func AssembleEMF(db *DataBlock, pf ParallelBackend) {
	g := db.Grid
	nk, nj, ni := g.Dims()
	dims := db.Physics.Dimensions

	kRange := [2]int{0, nk}
	jRange := [2]int{0, nj}
	iRange := [2]int{0, ni}

	if dims >= 2 {
		// E_z needs (k,j,i), (k,j-1,i), (k,j,i-1 via ezi/ezj already
		// indexed): corners require j>=1 and i>=1 to look one cell back.
		jRange = [2]int{1, nj}
		iRange = [2]int{1, ni}
	}

	ParallelFor3D(pf, kRange, jRange, iRange, func(k, j, i int) {
		switch dims {
		case 1:
			ezi := db.EMF.Ezi.At(k, j, i)
			ezj := db.EMF.Ezj.At(k, j, i)
			ezjPrev := db.EMF.Ezj.At(k, j, clampMin(i-1))
			db.EMF.Ez.Set(k, j, i, 0.25*(2*ezi+ezj+ezjPrev))
		case 2:
			ez := 0.25 * (db.EMF.Ezi.At(k, j, i) + db.EMF.Ezi.At(k, j-1, i) +
				db.EMF.Ezj.At(k, j, i) + db.EMF.Ezj.At(k, j, i-1))
			db.EMF.Ez.Set(k, j, i, ez)
		case 3:
			ez := 0.25 * (db.EMF.Ezi.At(k, j, i) + db.EMF.Ezi.At(k, j-1, i) +
				db.EMF.Ezj.At(k, j, i) + db.EMF.Ezj.At(k, j, i-1))
			db.EMF.Ez.Set(k, j, i, ez)

			if k >= 1 {
				ex := 0.25 * (db.EMF.Exj.At(k, j, i) + db.EMF.Exj.At(k-1, j, i) +
					db.EMF.Exk.At(k, j, i) + db.EMF.Exk.At(k, j-1, i))
				db.EMF.Ex.Set(k, j, i, ex)

				ey := 0.25 * (db.EMF.Eyi.At(k, j, i) + db.EMF.Eyi.At(k-1, j, i) +
					db.EMF.Eyk.At(k, j, i) + db.EMF.Eyk.At(k, j, i-1))
				db.EMF.Ey.Set(k, j, i, ey)
			}
		}
	})
}

func clampMin(i int) int {
	if i < 0 {
		return 0
	}
	return i
}
