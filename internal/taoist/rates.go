package taoist

import (
	"math"
)

// FzHI returns the expected number of HI absorbers (the Poisson mean) in a
// redshift bin of width dz at redshift z. Three-segment power law in (1+z)
// with breaks at BreakZ1 and BreakZ2; the normalization of each segment is
// chained from the previous one, so the function is continuous at both
// breaks.
func FzHI(z, dz Real) Real {
	var c Real
	switch {
	case z <= BreakZ1:
		c = math.Pow((1+z)/(1+BreakZ1), Gamma1)
	case z <= BreakZ2:
		c = math.Pow((1+z)/(1+BreakZ1), Gamma2)
	default:
		c1 := math.Pow((1+BreakZ2)/(1+BreakZ1), Gamma2)
		c2 := math.Pow((1+z)/(1+BreakZ2), Gamma3)
		c = c1 * c2
	}
	return RateAmp * c * dz
}

// NAbs evaluates the expected absorber density per column-density bin at
// redshift z. edges are log10(NHI) bin edges, strictly increasing. The
// broken power law switches at LogBreakNHI, and each rate is scaled by the
// bin width in linear space.
//
// Contract: the result has len(edges)-1 entries. The final edge only closes
// the last bin and is never evaluated as a bin center.
func NAbs(edges []Real, z Real) []Real {
	if len(edges) < 2 {
		return nil
	}
	rates := make([]Real, len(edges)-1)
	for i := range rates {
		nhi := math.Pow(10, edges[i])
		var y Real
		if edges[i] >= LogBreakNHI {
			y = math.Pow(10, LogAmpThick) * (1 + z) * math.Pow(nhi, SlopeThick)
		} else {
			y = math.Pow(10, LogAmpThin) * math.Pow(1+z, ZExpThin) * math.Pow(nhi, SlopeThin)
		}
		rates[i] = y * (math.Pow(10, edges[i+1]) - nhi)
	}
	return rates
}
