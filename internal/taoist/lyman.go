package taoist

import (
	"bufio"
	_ "embed"
	"io"
	"os"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

//go:embed lyman_series.dat
var defaultLymanData string

// Line is one Lyman-series transition.
type Line struct {
	Lambda Real // rest wavelength, angstrom
	F      Real // oscillator strength
	Gamma  Real // damping constant, 1/s
}

var ErrEmptyTable = errors.New("taoist: transition table has no lines")

// ParseLymanTable reads a transition table: whitespace-separated rows of
// wavelength, oscillator strength, damping constant. Blank lines and
// #-comments are skipped. Any malformed row is fatal; the synthesis cannot
// run on a partial table.
func ParseLymanTable(r io.Reader) ([]Line, error) {
	sc := bufio.NewScanner(r)
	var lines []Line
	row := 0
	for sc.Scan() {
		row++
		text := strings.TrimSpace(sc.Text())
		if text == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Fields(text)
		if len(fields) != 3 {
			return nil, errors.Errorf("taoist: transition table row %d: want 3 columns, got %d", row, len(fields))
		}
		var vals [3]Real
		for i, field := range fields {
			v, err := strconv.ParseFloat(field, 64)
			if err != nil {
				return nil, errors.Wrapf(err, "taoist: transition table row %d", row)
			}
			vals[i] = v
		}
		lines = append(lines, Line{Lambda: vals[0], F: vals[1], Gamma: vals[2]})
	}
	if err := sc.Err(); err != nil {
		return nil, errors.Wrap(err, "taoist: read transition table")
	}
	if len(lines) == 0 {
		return nil, ErrEmptyTable
	}
	return lines, nil
}

// LoadLymanTable parses the transition table at path.
func LoadLymanTable(path string) ([]Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrap(err, "taoist: open transition table")
	}
	defer f.Close()
	return ParseLymanTable(f)
}

// DefaultLymanTable returns the embedded ten-line Lyman-series table, so the
// synthesizer runs without an external data file.
func DefaultLymanTable() []Line {
	lines, err := ParseLymanTable(strings.NewReader(defaultLymanData))
	if err != nil {
		panic(err) // embedded table is fixed
	}
	return lines
}
