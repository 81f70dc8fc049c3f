package taoist

import (
	"math"
)

// TauLyC computes the Lyman-continuum optical depth for an absorber of
// column density nhi at redshift z, over the observed wavelength grid wav.
// The cross-section scales as (lam/limit)^3 up to the redshifted Lyman
// limit and is exactly zero beyond it (one-sided hard cutoff).
func TauLyC(nhi Real, wav []Real, z Real) []Real {
	limit := LymanLimit * (1 + z)
	tau := make([]Real, len(wav))
	for i, w := range wav {
		x := w / limit
		if x > 1 {
			continue
		}
		tau[i] = nhi * SigmaLyC * x * x * x
	}
	return tau
}

// TauLAF computes the Lyman-series forest cross-section spectrum at
// redshift z (Inoue & Iwata 2008, eq 10). Multiply by the absorber column
// density to get an optical depth. One fresh Doppler parameter is drawn per
// call and shared by every transition of this evaluation.
func (s *Synthesizer) TauLAF(wav []Real, z Real) []Real {
	lam := make([]Real, len(wav))
	for i, w := range wav {
		lam[i] = w / (1 + z)
	}

	b := s.doppler.Sample(s.rng) * DopplerScale // angstrom/s
	prefactor := CLightCM * math.Sqrt(3*math.Pi*SigmaT/8)

	tau := make([]Real, len(wav))
	for _, line := range s.table {
		amp := LineCorrection * prefactor * line.F * line.Lambda / (math.Sqrt(math.Pi) * b)
		profile := VoigtApprox(lam, line.Lambda, b, line.Gamma)
		for i, p := range profile {
			v := amp * p
			if !isFinite(v) {
				continue // approximation artifact, dropped rather than propagated
			}
			tau[i] += v
		}
	}
	return tau
}
