package taoist

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"
)

func TestDopplerDensity_PositiveOnSupport(t *testing.T) {
	for b := Real(DopplerMin); b < DopplerMax; b += DopplerStep * 10 {
		require.Greater(t, DopplerDensity(b), 0.0, "b=%g", b)
	}
}

func TestDopplerDensity_PeaksNearCharacteristicScale(t *testing.T) {
	// The distribution should concentrate mass around b_s, not in the far
	// power-law tail.
	require.Greater(t, DopplerDensity(DopplerBs), DopplerDensity(500.0))
	require.Greater(t, DopplerDensity(DopplerBs), DopplerDensity(2.0))
}

func TestDopplerSampler_DrawsOnSupport(t *testing.T) {
	s := newDopplerSampler()
	rng := rand.New(rand.NewSource(13))
	for i := 0; i < 2000; i++ {
		b := s.Sample(rng)
		require.GreaterOrEqual(t, b, Real(DopplerMin))
		require.Less(t, b, Real(DopplerMax))
	}
}
