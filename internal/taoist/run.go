package taoist

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
)

// Run loads the config at cfgPath, synthesizes the configured number of
// sightlines and writes one spectrum file per sightline.
func Run(cfgPath string) error {
	cfg, err := LoadConfig(cfgPath)
	if err != nil {
		return err
	}

	table := DefaultLymanTable()
	if cfg.LymanTable != "" {
		if table, err = LoadLymanTable(cfg.LymanTable); err != nil {
			return err
		}
	}
	DebugLog("Transition table: %d lines", len(table))

	cosmo := Cosmology{Om0: cfg.Cosmology.Om0, Ode0: cfg.Cosmology.Ode0}
	wav := cfg.Wavelength.Values()
	zs := cfg.Redshift.Values()
	edges := cfg.LogNHI.Values()

	start := time.Now()
	taus, err := RunSightlines(cosmo, table, cfg, zs, edges, wav)
	if err != nil {
		return err
	}
	DebugLog("Synthesized %d sightlines in %s", len(taus), time.Since(start))

	for k, tau := range taus {
		path := outputPath(cfg.Output, k)
		if err := WriteSpectrum(path, wav, tau); err != nil {
			return err
		}
		DebugLog("Saved spectrum: %s", path)
	}
	return nil
}

// RunSightlines synthesizes cfg.Sightlines independent realizations in
// parallel. Sightline k gets its own Synthesizer seeded with cfg.Seed+k, so
// results are reproducible regardless of goroutine scheduling. Each
// realization is an independent draw; the per-sightline loop itself stays
// strictly sequential.
func RunSightlines(cosmo Cosmology, table []Line, cfg *Config, zs, edges, wav []Real) ([][]Real, error) {
	taus := make([][]Real, cfg.Sightlines)
	var g errgroup.Group
	for k := 0; k < cfg.Sightlines; k++ {
		k := k
		g.Go(func() error {
			syn, err := NewSynthesizer(cosmo, table, cfg.Seed+uint64(k))
			if err != nil {
				return err
			}
			tau, err := syn.Synthesize(zs, cfg.Redshift.Step, edges, wav)
			if err != nil {
				return errors.Wrapf(err, "taoist: sightline %d", k)
			}
			taus[k] = tau
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return taus, nil
}

// outputPath derives the per-sightline output file name: the base path for
// sightline 0, base_k.ext for the rest.
func outputPath(base string, k int) string {
	if k == 0 {
		return base
	}
	ext := filepath.Ext(base)
	return fmt.Sprintf("%s_%d%s", strings.TrimSuffix(base, ext), k, ext)
}
