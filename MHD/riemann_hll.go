package MHD

import "math"

// solveHLL is §4.3 step 3's HLL branch: S_L = min(v_d,L - c_f,L, v_d,R -
// c_f,R), S_R analogous with +; return F_L/F_R if the interface is
// supersonic in that direction, else the single-state HLL average.
func solveHLL(vL, vR, uL, uR, fL, fR [NVAR]float64, p Physics, d Direction) (flux [NVAR]float64, cmax float64) {
	n1, _, _ := axisChannels(d)
	lMinus, lPlus := signedSpeeds(vL, p, d, n1)
	rMinus, rPlus := signedSpeeds(vR, p, d, n1)

	sL := math.Min(lMinus, rMinus)
	sR := math.Max(lPlus, rPlus)
	cmax = math.Max(math.Abs(sL), math.Abs(sR))

	switch {
	case sL >= 0:
		flux = fL
	case sR <= 0:
		flux = fR
	default:
		for n := 0; n < NVAR; n++ {
			flux[n] = (sR*fL[n] - sL*fR[n] + sL*sR*(uR[n]-uL[n])) / (sR - sL)
		}
	}
	return
}
