package MHD

import "math"

// solveTVDLF is the Rusanov/TVDLF branch of §4.3 step 3:
// F = 1/2(F_L+F_R) - 1/2 c_max (U_R-U_L), c_max = max(|v_d +- c_f|) over
// both states.
func solveTVDLF(vL, vR, uL, uR, fL, fR [NVAR]float64, p Physics, d Direction) (flux [NVAR]float64, cmax float64) {
	n1, _, _ := axisChannels(d)
	cmax = maxWaveSpeed(vL, vR, p, d, n1)
	for n := 0; n < NVAR; n++ {
		flux[n] = 0.5*(fL[n]+fR[n]) - 0.5*cmax*(uR[n]-uL[n])
	}
	return
}

// maxWaveSpeed is the c_max used by TVDLF and by the HLL/HLLD wave-speed
// estimates: the largest |v_d +- c_f| (or +- sound speed in HD) across the
// two states.
func maxWaveSpeed(vL, vR [NVAR]float64, p Physics, d Direction, n1 int) float64 {
	speedAt := func(v [NVAR]float64) float64 {
		rho := v[RHO]
		a2 := p.EOS.SoundSpeedSquared(rho, v[PRS])
		var c float64
		if p.MHD {
			bn1, bt11, bt22 := axisBChannels(d)
			c = fastMagnetosonic(rho, a2, v[bn1], v[bt11], v[bt22])
		} else {
			c = math.Sqrt(a2)
		}
		vn := v[n1]
		return math.Max(math.Abs(vn-c), math.Abs(vn+c))
	}
	return math.Max(speedAt(vL), speedAt(vR))
}

// signedSpeeds returns (v_d - c_f, v_d + c_f) for a single state, the
// per-state building block HLL's S_L/S_R estimate uses.
func signedSpeeds(v [NVAR]float64, p Physics, d Direction, n1 int) (sMinus, sPlus float64) {
	rho := v[RHO]
	a2 := p.EOS.SoundSpeedSquared(rho, v[PRS])
	var c float64
	if p.MHD {
		bn1, bt11, bt22 := axisBChannels(d)
		c = fastMagnetosonic(rho, a2, v[bn1], v[bt11], v[bt22])
	} else {
		c = math.Sqrt(a2)
	}
	vn := v[n1]
	return vn - c, vn + c
}
