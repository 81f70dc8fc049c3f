package taoist

import (
	"math"

	"gonum.org/v1/gonum/integrate/quad"
)

// Quadrature integrates f over [a, b]. Cosmology uses it for the comoving
// path-length integral; tests can plug in a counting stub.
type Quadrature func(f func(float64) float64, a, b float64) float64

// GaussLegendre is the default Quadrature, a fixed-order Gauss-Legendre rule.
func GaussLegendre(f func(float64) float64, a, b float64) float64 {
	return quad.Fixed(f, a, b, QuadratureOrder, nil, 0)
}

// Cosmology carries the density parameters of a flat FLRW model used to
// convert redshift intervals into comoving path lengths
// (Steidel et al. 2018, Appendix B, eq 25).
type Cosmology struct {
	Om0  Real // omega matter
	Ode0 Real // omega lambda

	Integrate Quadrature // nil selects GaussLegendre
}

// WMAP9 returns the default cosmology.
func WMAP9() Cosmology {
	return Cosmology{Om0: DefaultOm0, Ode0: DefaultOde0}
}

// PathKernel evaluates the comoving path-length kernel
// (1+z)^2 / sqrt(Ode0 + Om0*(1+z)^3).
func (c Cosmology) PathKernel(z Real) Real {
	zp1 := 1 + z
	return zp1 * zp1 / math.Sqrt(c.Ode0+c.Om0*zp1*zp1*zp1)
}

// DeltaX integrates the kernel over [z, z+dz], yielding the comoving path
// length of one redshift bin.
func (c Cosmology) DeltaX(z, dz Real) Real {
	integrate := c.Integrate
	if integrate == nil {
		integrate = GaussLegendre
	}
	return integrate(c.PathKernel, z, z+dz)
}
