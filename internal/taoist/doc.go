// Package taoist synthesizes Monte Carlo realizations of intergalactic HI
// absorption along a single line of sight. Absorber counts are Poisson
// sampled per redshift bin, column densities and Doppler parameters are
// drawn from their distribution functions, and the resulting Lyman-continuum
// and Lyman-series optical depths are accumulated on a fixed wavelength
// grid. Convert the output to transmission with exp(-tau).
package taoist
