package taoist

import (
	"bufio"
	"fmt"
	"math"
	"os"

	"github.com/pkg/errors"
)

// WriteSpectrum writes the optical-depth spectrum as a whitespace-separated
// text table: wavelength, tau, transmission exp(-tau).
func WriteSpectrum(path string, wav, tau []Real) error {
	if len(wav) != len(tau) {
		return errors.Errorf("taoist: %d wavelengths for %d tau values", len(wav), len(tau))
	}
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(err, "taoist: create spectrum file")
	}
	w := bufio.NewWriter(f)
	fmt.Fprintln(w, "# wavelength[A]  tau  transmission")
	for i := range wav {
		fmt.Fprintf(w, "%.4f  %.8e  %.8e\n", wav[i], tau[i], math.Exp(-tau[i]))
	}
	if err := w.Flush(); err != nil {
		f.Close()
		return errors.Wrap(err, "taoist: write spectrum")
	}
	return errors.Wrap(f.Close(), "taoist: close spectrum file")
}
