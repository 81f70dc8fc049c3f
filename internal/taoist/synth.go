package taoist

import (
	"math"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"
	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat/distuv"

	"github.com/soumilmaulick/TAOIST-MC/pkg/cdfsampler"
)

var ErrBadEdges = errors.New("taoist: column density edges need at least two values")

// Synthesizer draws absorber populations and accumulates their optical
// depth along one sightline. All randomness flows through a single seeded
// source, so a fixed seed replays the full spectrum bit for bit. Not safe
// for concurrent use; run one Synthesizer per goroutine.
type Synthesizer struct {
	cosmo   Cosmology
	table   []Line
	rng     *rand.Rand
	doppler *cdfsampler.Sampler
}

// NewSynthesizer builds a sightline synthesizer from a cosmology, a
// transition table and a random seed.
func NewSynthesizer(cosmo Cosmology, table []Line, seed uint64) (*Synthesizer, error) {
	if len(table) == 0 {
		return nil, ErrEmptyTable
	}
	return &Synthesizer{
		cosmo:   cosmo,
		table:   table,
		rng:     rand.New(rand.NewSource(seed)),
		doppler: newDopplerSampler(),
	}, nil
}

// MakeZDist Poisson-samples the absorber count for every redshift bin.
func (s *Synthesizer) MakeZDist(zs []Real, dz Real) []int {
	counts := make([]int, len(zs))
	for i, z := range zs {
		p := distuv.Poisson{Lambda: FzHI(z, dz), Src: s.rng}
		counts[i] = int(p.Rand())
	}
	return counts
}

// SampleColumns draws n log10 column densities for one redshift bin. The
// weight array is the absorber rate per NHI bin scaled by the comoving path
// length dX; the support is every edge but the last, which only closes the
// final bin.
func (s *Synthesizer) SampleColumns(edges []Real, z, dX Real, n int) ([]Real, error) {
	if len(edges) < 2 {
		return nil, ErrBadEdges
	}
	weights := NAbs(edges, z)
	for i := range weights {
		weights[i] *= dX
	}
	sampler, err := cdfsampler.New(edges[:len(edges)-1], weights)
	if err != nil {
		return nil, errors.Wrap(err, "taoist: column density weights")
	}
	return sampler.SampleN(s.rng, n)
}

// MakeTau accumulates the optical-depth spectrum over wav for the whole
// sightline. counts holds the per-bin absorber counts (normally from
// MakeZDist); zero-count bins are skipped entirely. For each populated bin
// the drawn column densities are summed in linear space, and the total N
// enters twice: inside the continuum formula, and as an external scale on
// the line-series cross-section. That asymmetry matches the reference model
// and must not be "fixed".
func (s *Synthesizer) MakeTau(zs []Real, dz Real, counts []int, edges, wav []Real) ([]Real, error) {
	if len(counts) != len(zs) {
		return nil, errors.Errorf("taoist: %d counts for %d redshift bins", len(counts), len(zs))
	}
	tau := make([]Real, len(wav))
	for i, z := range zs {
		n := counts[i]
		if n == 0 {
			continue
		}
		dX := s.cosmo.DeltaX(z, dz)
		logN, err := s.SampleColumns(edges, z, dX, n)
		if err != nil {
			return nil, errors.Wrapf(err, "taoist: bin z=%.4f", z)
		}
		total := 0.0
		for _, v := range logN {
			total += math.Pow(10, v)
		}
		DebugLog("z=%.4f: %d absorbers, dX=%.4f, total NHI=%.4g", z, n, dX, total)

		floats.Add(tau, TauLyC(total, wav, z))
		floats.AddScaled(tau, total, s.TauLAF(wav, z))
	}
	return tau, nil
}

// Synthesize runs the full pipeline: Poisson counts per redshift bin, then
// accumulation into one optical-depth spectrum.
func (s *Synthesizer) Synthesize(zs []Real, dz Real, edges, wav []Real) ([]Real, error) {
	return s.MakeTau(zs, dz, s.MakeZDist(zs, dz), edges, wav)
}
