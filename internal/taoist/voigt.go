package taoist

import (
	"math"
)

// VoigtApprox evaluates the closed-form Voigt profile approximation of
// Tepper-Garcia 2006 for one transition over the rest-frame wavelength grid
// lam. lami is the line center (angstrom), b the Doppler parameter
// (angstrom/s), gamma the damping constant (1/s).
//
// The profile has hard support |lam - lami| <= VoigtWindow*(b/DopplerScale):
// points outside are exactly zero and are masked before any transcendental
// is evaluated. Inside the window the correction term is computed against
// exp(-x^2)*sinh(x^2) = (1 - exp(-2x^2))/2, so sinh never overflows near
// the window edge, and the x=0 core takes the analytic K(0)=1 limit instead
// of dividing by zero.
func VoigtApprox(lam []Real, lami, b, gamma Real) []Real {
	ldl := (b / CLightAng) * lami // Doppler width, angstrom
	a := lami * lami * gamma / (4 * math.Pi * CLightAng * ldl)
	a2 := a * 2 / math.Sqrt(math.Pi)
	window := VoigtWindow * (b / DopplerScale)

	out := make([]Real, len(lam))
	for i, l := range lam {
		if math.Abs(l-lami) > window {
			continue
		}
		x := (l - lami) / ldl
		x2 := x * x
		a1 := math.Exp(-x2)

		var corr Real // exp(-x^2) * K(x)
		if x2 == 0 {
			corr = 1
		} else {
			e2 := math.Exp(-2 * x2)
			k2 := (4*x2 + 3) * (x2 + 1) * e2
			k3 := (2*x2 + 3) / x2 * 0.5 * (1 - e2)
			corr = (k2 - k3) / (2 * x2)
		}
		out[i] = a1 - a2*corr
	}
	return out
}
