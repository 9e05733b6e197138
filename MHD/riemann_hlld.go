package MHD

import "math"

// solveHLLD is §4.3 step 3's five-wave branch (Miyoshi & Kusano 2005 shape):
// derive S_L/S_R from the same fast-magnetosonic bound HLL uses, the
// contact speed S_M and total pressure P* from the jump conditions, then
// the four intermediate states bracketed by (S_L, S_L*, S_M, S_R*, S_R).
// Degenerate interfaces (near-zero normal B, or a star speed coincident
// with S_M) recover locally by falling back to HLL, per §4.3/§7 --
// degenerateWave never escapes this function.
func solveHLLD(vL, vR, uL, uR, fL, fR [NVAR]float64, p Physics, d Direction) (flux [NVAR]float64, cmax float64, err error) {
	n1, t1, t2 := axisChannels(d)
	bn1, bt11, bt22 := axisBChannels(d)

	lMinus, lPlus := signedSpeeds(vL, p, d, n1)
	rMinus, rPlus := signedSpeeds(vR, p, d, n1)
	sL := math.Min(lMinus, rMinus)
	sR := math.Max(lPlus, rPlus)
	cmax = math.Max(math.Abs(sL), math.Abs(sR))

	if sL >= 0 {
		return fL, cmax, nil
	}
	if sR <= 0 {
		return fR, cmax, nil
	}

	rhoL, rhoR := vL[RHO], vR[RHO]
	vxL, vxR := vL[n1], vR[n1]
	vyL, vyR := vL[t1], vR[t1]
	vzL, vzR := vL[t2], vR[t2]
	ByL, ByR := vL[bt11], vR[bt11]
	BzL, BzR := vL[bt22], vR[bt22]
	Bx := 0.5 * (vL[bn1] + vR[bn1]) // consistent by construction (C2)

	ptotL := vL[PRS] + 0.5*(vL[bn1]*vL[bn1]+ByL*ByL+BzL*BzL)
	ptotR := vR[PRS] + 0.5*(vR[bn1]*vR[bn1]+ByR*ByR+BzR*BzR)

	denomSM := (sR-vxR)*rhoR - (sL-vxL)*rhoL
	if math.Abs(denomSM) < 1e-14 {
		return hllFallback(vL, vR, uL, uR, fL, fR, p, d, sL, sR), cmax, nil
	}
	sM := ((sR-vxR)*rhoR*vxR - (sL-vxL)*rhoL*vxL - ptotR + ptotL) / denomSM

	rhoLs := rhoL * (sL - vxL) / (sL - sM)
	rhoRs := rhoR * (sR - vxR) / (sR - sM)
	if rhoLs <= 0 || rhoRs <= 0 {
		return hllFallback(vL, vR, uL, uR, fL, fR, p, d, sL, sR), cmax, nil
	}

	pStar := ptotL + rhoL*(sL-vxL)*(sM-vxL)

	bx2 := Bx * Bx
	if bx2 < 1e-12*(ptotL+ptotR+1) {
		return hllFallback(vL, vR, uL, uR, fL, fR, p, d, sL, sR), cmax, nil
	}

	denomL := rhoL*(sL-vxL)*(sL-sM) - bx2
	denomR := rhoR*(sR-vxR)*(sR-sM) - bx2
	if math.Abs(denomL) < 1e-12 || math.Abs(denomR) < 1e-12 {
		return hllFallback(vL, vR, uL, uR, fL, fR, p, d, sL, sR), cmax, nil
	}

	vyLs := vyL - Bx*ByL*(sM-vxL)/denomL
	vzLs := vzL - Bx*BzL*(sM-vxL)/denomL
	ByLs := ByL * (rhoL*(sL-vxL)*(sL-vxL) - bx2) / denomL
	BzLs := BzL * (rhoL*(sL-vxL)*(sL-vxL) - bx2) / denomL

	vyRs := vyR - Bx*ByR*(sM-vxR)/denomR
	vzRs := vzR - Bx*BzR*(sM-vxR)/denomR
	ByRs := ByR * (rhoR*(sR-vxR)*(sR-vxR) - bx2) / denomR
	BzRs := BzR * (rhoR*(sR-vxR)*(sR-vxR) - bx2) / denomR

	eL := pointPrimToCons(vL, p)[PRS]
	eR := pointPrimToCons(vR, p)[PRS]
	vdotBL := vxL*Bx + vyL*ByL + vzL*BzL
	vdotBLs := sM*Bx + vyLs*ByLs + vzLs*BzLs
	eLs := ((sL-vxL)*eL - ptotL*vxL + pStar*sM + Bx*(vdotBL-vdotBLs)) / (sL - sM)

	vdotBR := vxR*Bx + vyR*ByR + vzR*BzR
	vdotBRs := sM*Bx + vyRs*ByRs + vzRs*BzRs
	eRs := ((sR-vxR)*eR - ptotR*vxR + pStar*sM + Bx*(vdotBR-vdotBRs)) / (sR - sM)

	sqrtRhoLs := math.Sqrt(rhoLs)
	sqrtRhoRs := math.Sqrt(rhoRs)
	sgnBx := 1.0
	if Bx < 0 {
		sgnBx = -1.0
	}
	denomSS := sqrtRhoLs + sqrtRhoRs
	if denomSS < 1e-14 {
		return hllFallback(vL, vR, uL, uR, fL, fR, p, d, sL, sR), cmax, nil
	}
	vySS := (sqrtRhoLs*vyLs + sqrtRhoRs*vyRs + (ByRs-ByLs)*sgnBx) / denomSS
	vzSS := (sqrtRhoLs*vzLs + sqrtRhoRs*vzRs + (BzRs-BzLs)*sgnBx) / denomSS
	BySS := (sqrtRhoLs*ByRs + sqrtRhoRs*ByLs + sqrtRhoLs*sqrtRhoRs*(vyRs-vyLs)*sgnBx) / denomSS
	BzSS := (sqrtRhoLs*BzRs + sqrtRhoRs*BzLs + sqrtRhoLs*sqrtRhoRs*(vzRs-vzLs)*sgnBx) / denomSS

	eLss := eLs - sqrtRhoLs*sgnBx*(vyLs*ByLs+vzLs*BzLs-vySS*BySS-vzSS*BzSS)
	eRss := eRs + sqrtRhoRs*sgnBx*(vyRs*ByRs+vzRs*BzRs-vySS*BySS-vzSS*BzSS)

	sLstar := sM - math.Abs(Bx)/sqrtRhoLs
	sRstar := sM + math.Abs(Bx)/sqrtRhoRs

	assemble := func(rho, vx, vy, vz, by, bz, e float64) [NVAR]float64 {
		var u [NVAR]float64
		u[RHO] = rho
		u[n1] = rho * vx
		u[t1] = rho * vy
		u[t2] = rho * vz
		u[bn1] = Bx
		u[bt11] = by
		u[bt22] = bz
		u[PRS] = e
		return u
	}

	fluxFromState := func(uState [NVAR]float64, uOuter, fOuter [NVAR]float64, sOuter float64) [NVAR]float64 {
		var out [NVAR]float64
		for n := 0; n < NVAR; n++ {
			out[n] = fOuter[n] + sOuter*(uState[n]-uOuter[n])
		}
		return out
	}

	switch {
	case sM >= 0 && sLstar >= 0:
		uLs := assemble(rhoLs, sM, vyLs, vzLs, ByLs, BzLs, eLs)
		flux = fluxFromState(uLs, uL, fL, sL)
	case sM >= 0:
		uLss := assemble(rhoLs, sM, vySS, vzSS, BySS, BzSS, eLss)
		uLs := assemble(rhoLs, sM, vyLs, vzLs, ByLs, BzLs, eLs)
		fLs := fluxFromState(uLs, uL, fL, sL)
		for n := 0; n < NVAR; n++ {
			flux[n] = fLs[n] + sLstar*(uLss[n]-uLs[n])
		}
	case sRstar >= 0:
		uRss := assemble(rhoRs, sM, vySS, vzSS, BySS, BzSS, eRss)
		uRs := assemble(rhoRs, sM, vyRs, vzRs, ByRs, BzRs, eRs)
		fRs := fluxFromState(uRs, uR, fR, sR)
		for n := 0; n < NVAR; n++ {
			flux[n] = fRs[n] + sRstar*(uRss[n]-uRs[n])
		}
	default:
		uRs := assemble(rhoRs, sM, vyRs, vzRs, ByRs, BzRs, eRs)
		flux = fluxFromState(uRs, uR, fR, sR)
	}
	return flux, cmax, nil
}

// hllFallback is the single-state HLL average used whenever HLLD's star
// region becomes degenerate.
func hllFallback(vL, vR, uL, uR, fL, fR [NVAR]float64, p Physics, d Direction, sL, sR float64) [NVAR]float64 {
	var flux [NVAR]float64
	for n := 0; n < NVAR; n++ {
		flux[n] = (sR*fL[n] - sL*fR[n] + sL*sR*(uR[n]-uL[n])) / (sR - sL)
	}
	return flux
}
