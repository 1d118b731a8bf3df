package reader

import (
	"bufio"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"

	pkgerrors "github.com/pkg/errors"
)

var (
	// ErrMissingColumn means a required column was not found in the header.
	ErrMissingColumn = errors.New("reader: required column missing")
	// ErrNoData means the file contained no data rows.
	ErrNoData = errors.New("reader: no data rows")
)

// horibaMetadataLines is the fixed-size metadata preamble the Horiba
// MacroRam writes before the first data row.
const horibaMetadataLines = 32

// OpenRamanCSV reads an intensity trace from a CSV file written by the
// OpenRAMAN spectrometer. The instrument does not calibrate its spectral
// axis, so the returned intensities are indexed by pixel and need a
// subsequent calibration against reference samples.
func OpenRamanCSV(r io.Reader) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("reader: csv header: %w", err)
	}

	col := columnIndex(header, "Intensity (a.u.)")
	if col < 0 {
		return nil, fmt.Errorf("%w: %q", ErrMissingColumn, "Intensity (a.u.)")
	}

	var out []float64

	for line := 2; ; line++ {
		record, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, fmt.Errorf("reader: csv line %d: %w", line, err)
		}

		if col >= len(record) {
			return nil, fmt.Errorf("reader: csv line %d: %d columns, need %d", line, len(record), col+1)
		}

		v, err := strconv.ParseFloat(strings.TrimSpace(record[col]), 64)
		if err != nil {
			return nil, fmt.Errorf("reader: csv line %d: %w", line, err)
		}

		out = append(out, v)
	}

	if len(out) == 0 {
		return nil, ErrNoData
	}

	return out, nil
}

// OpenRamanCSVFile reads an OpenRAMAN trace from the named file.
func OpenRamanCSVFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, pkgerrors.Wrap(err, "reader")
	}
	defer f.Close()

	out, err := OpenRamanCSV(f)

	return out, pkgerrors.Wrapf(err, "read %s", path)
}

// HoribaTXT reads a calibrated spectrum from a text file written by the
// Horiba MacroRam. The file starts with a 32-line metadata preamble
// followed by tab-separated wavenumber/intensity pairs in descending
// wavenumber order; the returned slices are flipped to ascending.
func HoribaTXT(r io.Reader) (wavenumbers, intensities []float64, err error) {
	return readPairs(r, horibaMetadataLines, "\t")
}

// HoribaTXTFile reads a Horiba MacroRam spectrum from the named file.
func HoribaTXTFile(path string) (wavenumbers, intensities []float64, err error) {
	return readPairsFile(path, horibaMetadataLines, "\t")
}

// RenishawTXT reads a calibrated spectrum exported as tab-separated
// wavenumber/intensity pairs by Renishaw WiRE, stored in descending
// wavenumber order; the returned slices are flipped to ascending.
func RenishawTXT(r io.Reader) (wavenumbers, intensities []float64, err error) {
	return readPairs(r, 0, "\t")
}

// RenishawTXTFile reads a Renishaw WiRE export from the named file.
func RenishawTXTFile(path string) (wavenumbers, intensities []float64, err error) {
	return readPairsFile(path, 0, "\t")
}

// WasatchCSV reads a calibrated spectrum from a Wasatch ENLIGHTEN CSV
// export. The file carries a key/value metadata preamble followed by a
// header row naming (at least) the Wavenumber and Processed columns.
func WasatchCSV(r io.Reader) (wavenumbers, intensities []float64, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	wnCol, procCol := -1, -1
	line := 0

	for sc.Scan() {
		line++
		fields := strings.Split(sc.Text(), ",")

		wnCol = columnIndex(fields, "Wavenumber")
		procCol = columnIndex(fields, "Processed")

		if wnCol >= 0 && procCol >= 0 {
			break
		}
	}

	if wnCol < 0 || procCol < 0 {
		return nil, nil, fmt.Errorf("%w: Wavenumber/Processed header", ErrMissingColumn)
	}

	for sc.Scan() {
		line++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		fields := strings.Split(text, ",")
		if wnCol >= len(fields) || procCol >= len(fields) {
			return nil, nil, fmt.Errorf("reader: line %d: %d columns, need %d", line, len(fields), max(wnCol, procCol)+1)
		}

		wn, err := strconv.ParseFloat(strings.TrimSpace(fields[wnCol]), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("reader: line %d: %w", line, err)
		}

		in, err := strconv.ParseFloat(strings.TrimSpace(fields[procCol]), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("reader: line %d: %w", line, err)
		}

		wavenumbers = append(wavenumbers, wn)
		intensities = append(intensities, in)
	}

	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("reader: %w", err)
	}

	if len(wavenumbers) == 0 {
		return nil, nil, ErrNoData
	}

	return wavenumbers, intensities, nil
}

// WasatchCSVFile reads a Wasatch ENLIGHTEN export from the named file.
func WasatchCSVFile(path string) (wavenumbers, intensities []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(err, "reader")
	}
	defer f.Close()

	wavenumbers, intensities, err = WasatchCSV(f)

	return wavenumbers, intensities, pkgerrors.Wrapf(err, "read %s", path)
}

// readPairs parses two-column numeric lines after skipping a metadata
// preamble, flipping the result to ascending wavenumber order.
func readPairs(r io.Reader, skip int, sep string) (wavenumbers, intensities []float64, err error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	line := 0
	for sc.Scan() {
		line++
		if line <= skip {
			continue
		}

		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}

		fields := strings.Split(text, sep)
		if len(fields) < 2 {
			return nil, nil, fmt.Errorf("reader: line %d: want 2 columns, got %d", line, len(fields))
		}

		wn, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("reader: line %d: %w", line, err)
		}

		in, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, nil, fmt.Errorf("reader: line %d: %w", line, err)
		}

		wavenumbers = append(wavenumbers, wn)
		intensities = append(intensities, in)
	}

	if err := sc.Err(); err != nil {
		return nil, nil, fmt.Errorf("reader: %w", err)
	}

	if len(wavenumbers) == 0 {
		return nil, nil, ErrNoData
	}

	reverse(wavenumbers)
	reverse(intensities)

	return wavenumbers, intensities, nil
}

func readPairsFile(path string, skip int, sep string) (wavenumbers, intensities []float64, err error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, pkgerrors.Wrap(err, "reader")
	}
	defer f.Close()

	wavenumbers, intensities, err = readPairs(f, skip, sep)

	return wavenumbers, intensities, pkgerrors.Wrapf(err, "read %s", path)
}

// columnIndex locates a header column by name, tolerating surrounding
// whitespace and a UTF-8 byte-order mark.
func columnIndex(header []string, name string) int {
	for i, h := range header {
		h = strings.TrimSpace(strings.TrimPrefix(h, "\ufeff"))
		if h == name {
			return i
		}
	}

	return -1
}

func reverse(s []float64) {
	for i, j := 0, len(s)-1; i < j; i, j = i+1, j-1 {
		s[i], s[j] = s[j], s[i]
	}
}
