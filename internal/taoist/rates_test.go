package taoist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFzHI_ContinuousAtBreaks(t *testing.T) {
	const dz = 0.1
	const eps = 1e-10

	for _, zb := range []Real{BreakZ1, BreakZ2} {
		below := FzHI(zb, dz)
		above := FzHI(zb+eps, dz)
		require.InEpsilon(t, below, above, 1e-6, "jump at z=%g: %g vs %g", zb, below, above)
	}
}

func TestFzHI_ProportionalToBinWidth(t *testing.T) {
	for _, z := range []Real{0.5, 2.0, 5.0} {
		require.InEpsilon(t, 2*FzHI(z, 0.1), FzHI(z, 0.2), 1e-12)
	}
}

func TestFzHI_PositiveAndIncreasing(t *testing.T) {
	prev := 0.0
	for z := 0.0; z <= 6.0; z += 0.05 {
		v := FzHI(z, 0.01)
		require.Greater(t, v, 0.0, "z=%g", z)
		require.GreaterOrEqual(t, v, prev, "fz must not decrease with z (z=%g)", z)
		prev = v
	}
}

func TestNAbs_DropsLastEdge(t *testing.T) {
	edges := []Real{12, 13, 14, 15, 16}
	rates := NAbs(edges, 2.5)
	require.Len(t, rates, len(edges)-1)

	assert.Nil(t, NAbs([]Real{17.0}, 2.5))
	assert.Nil(t, NAbs(nil, 2.5))
}

func TestNAbs_DecreasingWithinSegments(t *testing.T) {
	z := Real(3.0)

	// below the break
	thin := NAbs([]Real{12, 13, 14, 15, 16, 17}, z)
	for i := 1; i < len(thin); i++ {
		require.Less(t, thin[i], thin[i-1], "thin segment not decreasing at bin %d", i)
	}

	// at and above the break
	thick := NAbs([]Real{17.2, 18, 19, 20, 21}, z)
	for i := 1; i < len(thick); i++ {
		require.Less(t, thick[i], thick[i-1], "thick segment not decreasing at bin %d", i)
	}
}

func TestNAbs_Positive(t *testing.T) {
	edges := []Real{12, 14, 16, 17.2, 18, 20, 22}
	for _, z := range []Real{0, 1.5, 4.5} {
		for i, r := range NAbs(edges, z) {
			require.Greater(t, r, 0.0, "z=%g bin %d", z, i)
		}
	}
}
