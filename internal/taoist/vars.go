package taoist

var (
	Debug = false // set to true for verbose debug output

	// Compile time check that the gonum-backed default satisfies the
	// quadrature contract used by Cosmology.
	_ Quadrature = GaussLegendre
)
