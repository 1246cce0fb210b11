// Package threemf reads print metrics out of sliced .gcode.3mf archives and
// embeds quote records back into them. A .gcode.3mf is a plain zip whose
// Metadata/ directory carries per-plate G-code with slicer report lines; a
// quote saved by this application adds Metadata/quote.json next to them.
package threemf

import (
	"archive/zip"
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"
)

const quoteEntryName = "Metadata/quote.json"

// Slicer report lines as written by Bambu Studio / OrcaSlicer.
var (
	printTimeRe      = regexp.MustCompile(`(?i)model printing time:\s*(\d+)h\s*(\d+)m\s*(\d+)s`)
	filamentLengthRe = regexp.MustCompile(`(?i)total filament length\s*\[mm\]\s*:\s*([\d.,\s]+)`)
	filamentWeightRe = regexp.MustCompile(`(?i)total filament weight\s*\[g\]\s*:\s*([\d.,\s]+)`)
)

// Fallback for reports that list filament length but not weight: assume
// 1.75 mm filament at 1.26 g/cm3, roughly PLA.
const (
	fallbackDiameterMm     = 1.75
	fallbackDensityGPerCm3 = 1.26
)

// ErrNoGCode means the archive had no Metadata/*.gcode entry, so it is
// likely a plain model .3mf rather than a sliced plate export.
var ErrNoGCode = errors.New("no G-code found in archive; export a plate slice file (.gcode.3mf) from the slicer")

// PrintTime is a parsed duration normalized to days/hours/minutes. Seconds
// from the report are rounded into minutes.
type PrintTime struct {
	Days    int `json:"days"`
	Hours   int `json:"hours"`
	Minutes int `json:"minutes"`
}

// Metrics is what a sliced archive yields: the modeled print time and one
// weight per filament used, in grams.
type Metrics struct {
	PrintTime     *PrintTime `json:"printTime,omitempty"`
	FilamentGrams []float64  `json:"filamentGrams,omitempty"`
}

// Import is the result of reading an archive. Quote is non-nil when the
// archive carries an embedded quote record, raw and unvalidated; Metrics is
// non-nil when a G-code report was found and parsed.
type Import struct {
	Quote   json.RawMessage
	Metrics *Metrics
}

// ParseArchive reads a .gcode.3mf. An embedded Metadata/quote.json wins: when
// present, the metrics are not parsed and the caller should restore the
// quote instead. Otherwise the first per-plate G-code entry is scanned for
// the slicer's report lines.
func ParseArchive(r io.ReaderAt, size int64) (Import, error) {
	zr, err := zip.NewReader(r, size)
	if err != nil {
		return Import{}, fmt.Errorf("opening 3mf archive: %w", err)
	}

	if f := findEntry(zr, quoteEntryName); f != nil {
		raw, err := readEntry(f)
		if err != nil {
			return Import{}, err
		}
		if json.Valid(raw) {
			return Import{Quote: raw}, nil
		}
		// A corrupt embedded quote is not fatal; fall through to metrics.
	}

	gf := findGCode(zr)
	if gf == nil {
		return Import{}, ErrNoGCode
	}
	content, err := readEntry(gf)
	if err != nil {
		return Import{}, err
	}
	m := parseReport(string(content))
	if m.PrintTime == nil && len(m.FilamentGrams) == 0 {
		return Import{}, fmt.Errorf("no print metrics in %s; the file may not be a sliced export", gf.Name)
	}
	return Import{Metrics: &m}, nil
}

// EmbedQuote returns a copy of the archive with quoteJSON written as
// Metadata/quote.json. Every other entry is carried over unchanged; an
// existing quote entry is replaced.
func EmbedQuote(archive []byte, quoteJSON []byte) ([]byte, error) {
	zr, err := zip.NewReader(bytes.NewReader(archive), int64(len(archive)))
	if err != nil {
		return nil, fmt.Errorf("opening 3mf archive: %w", err)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range zr.File {
		if f.Name == quoteEntryName {
			continue
		}
		if err := copyEntry(zw, f); err != nil {
			zw.Close()
			return nil, err
		}
	}
	w, err := zw.Create(quoteEntryName)
	if err != nil {
		zw.Close()
		return nil, fmt.Errorf("adding quote entry: %w", err)
	}
	if _, err := w.Write(quoteJSON); err != nil {
		zw.Close()
		return nil, fmt.Errorf("writing quote entry: %w", err)
	}
	if err := zw.Close(); err != nil {
		return nil, fmt.Errorf("finalizing 3mf archive: %w", err)
	}
	return buf.Bytes(), nil
}

func copyEntry(zw *zip.Writer, f *zip.File) error {
	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("reading %s: %w", f.Name, err)
	}
	defer rc.Close()
	w, err := zw.Create(f.Name)
	if err != nil {
		return fmt.Errorf("copying %s: %w", f.Name, err)
	}
	if _, err := io.Copy(w, rc); err != nil {
		return fmt.Errorf("copying %s: %w", f.Name, err)
	}
	return nil
}

func findEntry(zr *zip.Reader, name string) *zip.File {
	for _, f := range zr.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

// findGCode prefers numbered plates in order, then falls back to any
// Metadata/*.gcode entry.
func findGCode(zr *zip.Reader) *zip.File {
	for _, name := range []string{"Metadata/plate_1.gcode", "Metadata/plate_2.gcode", "Metadata/plate_3.gcode"} {
		if f := findEntry(zr, name); f != nil {
			return f
		}
	}
	for _, f := range zr.File {
		if strings.HasPrefix(f.Name, "Metadata/") && strings.HasSuffix(f.Name, ".gcode") {
			return f
		}
	}
	return nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.Name, err)
	}
	defer rc.Close()
	raw, err := io.ReadAll(rc)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", f.Name, err)
	}
	return raw, nil
}

func parseReport(content string) Metrics {
	var m Metrics
	if t := printTimeRe.FindStringSubmatch(content); t != nil {
		hours, _ := strconv.Atoi(t[1])
		minutes, _ := strconv.Atoi(t[2])
		seconds, _ := strconv.Atoi(t[3])
		totalMinutes := hours*60 + minutes + int(math.Round(float64(seconds)/60))
		m.PrintTime = &PrintTime{
			Days:    totalMinutes / (24 * 60),
			Hours:   (totalMinutes % (24 * 60)) / 60,
			Minutes: totalMinutes % 60,
		}
	}

	// Weight is the slicer's own figure and wins over the length estimate.
	if w := filamentWeightRe.FindStringSubmatch(content); w != nil {
		m.FilamentGrams = parseList(w[1])
	}
	if len(m.FilamentGrams) == 0 {
		if l := filamentLengthRe.FindStringSubmatch(content); l != nil {
			for _, lengthMm := range parseList(l[1]) {
				volumeCm3 := math.Pi * math.Pow(fallbackDiameterMm/20, 2) * lengthMm / 10
				m.FilamentGrams = append(m.FilamentGrams, volumeCm3*fallbackDensityGPerCm3)
			}
		}
	}
	return m
}

// parseList splits a comma-separated numeric list from a report line,
// keeping only positive finite values.
func parseList(raw string) []float64 {
	var out []float64
	for _, part := range strings.Split(raw, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil || v <= 0 || math.IsInf(v, 0) {
			continue
		}
		out = append(out, v)
	}
	return out
}
