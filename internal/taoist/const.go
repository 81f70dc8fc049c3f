package taoist

type Real = float64

// Physical constants and model parameters. The model mixes two unit systems
// on purpose: wavelengths and Doppler parameters are carried in Angstrom
// (per second), cross-sections in cm^2.
const (
	CLightAng = 2.998e18  // speed of light, angstrom/s
	CLightCM  = 2.998e10  // speed of light, cm/s
	SigmaT    = 6.625e-25 // Thomson scattering cross-section, cm^2

	LymanLimit = 911.8   // rest-frame Lyman-limit wavelength, angstrom
	SigmaLyC   = 6.3e-18 // photoionization cross-section at the limit, cm^2

	VoigtWindow    = 1.812 // half-width of the Voigt support window, per 1e13 of b
	LineCorrection = 1.75  // empirical normalization of the line-series tau

	// Doppler-parameter distribution (Inoue & Iwata 2008, eq 6).
	// The support grid is dimensionless; draws scale by DopplerScale to angstrom/s.
	DopplerBs    = 23.0
	DopplerScale = 1e13
	DopplerMin   = 1.0
	DopplerMax   = 1000.0
	DopplerStep  = 0.1

	// Redshift distribution of absorbers (Inoue & Iwata 2008, eq 5).
	RateAmp = 400.0
	BreakZ1 = 1.2
	BreakZ2 = 4.0
	Gamma1  = 0.2
	Gamma2  = 2.5
	Gamma3  = 4.0

	// Column density distribution, broken power law at log10(NHI) = 17.2
	// (Steidel et al. 2018, Table 11).
	LogBreakNHI = 17.2
	LogAmpThin  = 9.305
	SlopeThin   = -1.635
	ZExpThin    = 2.5
	LogAmpThick = 7.542
	SlopeThick  = -1.463

	// WMAP9 density parameters, the default cosmology.
	DefaultOm0  = 0.2865
	DefaultOde0 = 0.7134

	// Config defaults.
	DefaultWavMin   = 800.0
	DefaultWavMax   = 1300.0
	DefaultWavStep  = 0.1
	DefaultZMin     = 0.0
	DefaultZMax     = 3.0
	DefaultZStep    = 0.01
	DefaultNHIMin   = 12.0
	DefaultNHIMax   = 22.0
	DefaultNHIStep  = 0.1
	DefaultSeed     = 1
	DefaultOutput   = "tau.dat"
	QuadratureOrder = 200 // Gauss-Legendre nodes for the path-length integral
)
