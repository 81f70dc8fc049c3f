package taoist

import (
	"math"

	"github.com/soumilmaulick/TAOIST-MC/pkg/cdfsampler"
)

// DopplerDensity evaluates the unnormalized Doppler-parameter distribution
// on the reduced support grid (b in units of DopplerScale angstrom/s).
func DopplerDensity(b Real) Real {
	bs2 := DopplerBs * DopplerBs
	a1 := 4 * bs2 * bs2 / (b * b * b * b * b)
	a2 := math.Exp(-a1 * b / 4)
	return a1 * a2 * DopplerScale
}

// newDopplerSampler tabulates DopplerDensity over the fixed support grid
// [DopplerMin, DopplerMax) with step DopplerStep and wraps it in an
// inverse-CDF sampler. The weight table is static and strictly positive, so
// construction cannot fail.
func newDopplerSampler() *cdfsampler.Sampler {
	n := int(math.Round((DopplerMax - DopplerMin) / DopplerStep))
	support := make([]Real, n)
	weights := make([]Real, n)
	for i := range support {
		b := DopplerMin + Real(i)*DopplerStep
		support[i] = b
		weights[i] = DopplerDensity(b)
	}
	s, err := cdfsampler.New(support, weights)
	if err != nil {
		panic(err)
	}
	DebugLogOnce("Doppler support grid: %d points on [%g, %g)", n, DopplerMin, DopplerMax)
	return s
}
