package taoist

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"
)

const (
	lyAlpha      = 1215.6701
	lyAlphaF     = 0.4164
	lyAlphaGamma = 6.265e8
)

func TestVoigtApprox_ZeroOutsideWindow(t *testing.T) {
	b := Real(23 * DopplerScale)
	window := VoigtWindow * (b / DopplerScale)

	lam := make([]Real, 0, 800)
	for l := Real(1100); l <= 1300; l += 0.25 {
		lam = append(lam, l)
	}
	profile := VoigtApprox(lam, lyAlpha, b, lyAlphaGamma)
	require.Len(t, profile, len(lam))

	for i, l := range lam {
		if math.Abs(l-lyAlpha) > window {
			require.Zero(t, profile[i], "expected hard zero at lam=%g (|dl|=%g > %g)", l, math.Abs(l-lyAlpha), window)
		}
	}
}

func TestVoigtApprox_FiniteInsideWindow(t *testing.T) {
	for _, bRed := range []Real{1, 10, 23, 100, 500} {
		b := bRed * DopplerScale
		window := VoigtWindow * bRed
		lam := make([]Real, 0, 512)
		for l := lyAlpha - window; l <= lyAlpha+window; l += window / 128 {
			lam = append(lam, l)
		}
		for i, v := range VoigtApprox(lam, lyAlpha, b, lyAlphaGamma) {
			require.True(t, isFinite(v), "non-finite profile at b=%g lam=%g", b, lam[i])
		}
	}
}

func TestVoigtApprox_LineCenter(t *testing.T) {
	b := Real(23 * DopplerScale)
	ldl := (b / CLightAng) * lyAlpha
	a := lyAlpha * lyAlpha * lyAlphaGamma / (4 * math.Pi * CLightAng * ldl)

	got := VoigtApprox([]Real{lyAlpha}, lyAlpha, b, lyAlphaGamma)
	// x=0 takes the analytic K(0)=1 limit: phi = 1 - a*2/sqrt(pi)
	want := 1 - a*2/math.Sqrt(math.Pi)
	require.InEpsilon(t, want, got[0], 1e-12)
	require.Greater(t, got[0], 0.0)
}

func TestVoigtApprox_Symmetric(t *testing.T) {
	b := Real(23 * DopplerScale)
	for _, dl := range []Real{0.1, 1, 5, 20} {
		pair := VoigtApprox([]Real{lyAlpha - dl, lyAlpha + dl}, lyAlpha, b, lyAlphaGamma)
		require.Equal(t, pair[0], pair[1], "profile must be even in lam-lami (dl=%g)", dl)
	}
}
