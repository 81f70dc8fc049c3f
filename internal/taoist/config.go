package taoist

import (
	"encoding/json"
	"os"

	"github.com/pkg/errors"
)

// GridCfg describes a uniform grid [Min, Max) with step Step, upper bound
// exclusive.
type GridCfg struct {
	Min  Real `json:"min"`
	Max  Real `json:"max"`
	Step Real `json:"step"`
}

// Values materializes the grid.
func (g GridCfg) Values() []Real {
	n := int((g.Max - g.Min) / g.Step)
	vals := make([]Real, 0, n+1)
	for v := g.Min; v < g.Max; v += g.Step {
		vals = append(vals, v)
	}
	return vals
}

func (g GridCfg) validate(name string) error {
	if g.Step <= 0 {
		return errors.Errorf("taoist: %s grid: step must be positive, got %g", name, g.Step)
	}
	if g.Min >= g.Max {
		return errors.Errorf("taoist: %s grid: min %g must be below max %g", name, g.Min, g.Max)
	}
	return nil
}

type CosmologyCfg struct {
	Om0  Real `json:"om0"`
	Ode0 Real `json:"ode0"`
}

type Config struct {
	Wavelength GridCfg      `json:"wavelength"` // observed wavelength grid, angstrom
	Redshift   GridCfg      `json:"redshift"`   // sightline redshift bins; Step is dz
	LogNHI     GridCfg      `json:"logNHI"`     // log10 column density bin edges
	Cosmology  CosmologyCfg `json:"cosmology,omitempty"`
	Seed       uint64       `json:"seed,omitempty"`
	Sightlines int          `json:"sightlines,omitempty"`
	LymanTable string       `json:"lymanTable,omitempty"` // empty selects the embedded table
	Output     string       `json:"output,omitempty"`
}

// LoadConfig reads a JSON run config, fills in defaults for zero-valued
// fields and validates the grids.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "taoist: read config")
	}
	var cfg Config
	if err := json.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrap(err, "taoist: parse config")
	}
	// Defaults / validation
	if cfg.Wavelength == (GridCfg{}) {
		cfg.Wavelength = GridCfg{Min: DefaultWavMin, Max: DefaultWavMax, Step: DefaultWavStep}
	}
	if cfg.Redshift == (GridCfg{}) {
		cfg.Redshift = GridCfg{Min: DefaultZMin, Max: DefaultZMax, Step: DefaultZStep}
	}
	if cfg.LogNHI == (GridCfg{}) {
		cfg.LogNHI = GridCfg{Min: DefaultNHIMin, Max: DefaultNHIMax, Step: DefaultNHIStep}
	}
	if cfg.Cosmology == (CosmologyCfg{}) {
		cfg.Cosmology = CosmologyCfg{Om0: DefaultOm0, Ode0: DefaultOde0}
	}
	if cfg.Seed == 0 {
		cfg.Seed = DefaultSeed
	}
	if cfg.Sightlines <= 0 {
		cfg.Sightlines = 1
	}
	if cfg.Output == "" {
		cfg.Output = DefaultOutput
	}
	if err := cfg.Wavelength.validate("wavelength"); err != nil {
		return nil, err
	}
	if err := cfg.Redshift.validate("redshift"); err != nil {
		return nil, err
	}
	if err := cfg.LogNHI.validate("logNHI"); err != nil {
		return nil, err
	}
	if len(cfg.LogNHI.Values()) < 2 {
		return nil, errors.Wrapf(ErrBadEdges, "logNHI grid [%g, %g) step %g", cfg.LogNHI.Min, cfg.LogNHI.Max, cfg.LogNHI.Step)
	}
	return &cfg, nil
}
