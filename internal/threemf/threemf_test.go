package threemf

import (
	"archive/zip"
	"bytes"
	"errors"
	"math"
	"testing"
)

func buildArchive(t *testing.T, entries map[string]string) []byte {
	t.Helper()
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for name, content := range entries {
		w, err := zw.Create(name)
		if err != nil {
			t.Fatalf("create %s: %v", name, err)
		}
		if _, err := w.Write([]byte(content)); err != nil {
			t.Fatalf("write %s: %v", name, err)
		}
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("close zip: %v", err)
	}
	return buf.Bytes()
}

func parse(t *testing.T, raw []byte) Import {
	t.Helper()
	imp, err := ParseArchive(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		t.Fatalf("ParseArchive: %v", err)
	}
	return imp
}

const sampleReport = `; generated by slicer
; model printing time: 26h 30m 45s; total estimated time: 27h 1m 2s
; total filament length [mm] : 12510.30,830.11
; total filament weight [g] : 37.25,2.50
G1 X0 Y0
`

func TestParseArchiveReadsTimeAndWeights(t *testing.T) {
	raw := buildArchive(t, map[string]string{
		"3D/3dmodel.model":        "<model/>",
		"Metadata/plate_1.gcode":  sampleReport,
		"Metadata/plate_1.config": "{}",
	})

	imp := parse(t, raw)
	if imp.Quote != nil {
		t.Fatal("no quote expected")
	}
	m := imp.Metrics
	if m == nil || m.PrintTime == nil {
		t.Fatalf("missing metrics: %+v", m)
	}
	// 26h30m45s rounds the seconds into a minute: 1d 2h 31m.
	if m.PrintTime.Days != 1 || m.PrintTime.Hours != 2 || m.PrintTime.Minutes != 31 {
		t.Fatalf("print time: %+v", m.PrintTime)
	}
	if len(m.FilamentGrams) != 2 {
		t.Fatalf("weights: %v", m.FilamentGrams)
	}
	if math.Abs(m.FilamentGrams[0]-37.25) > 1e-9 || math.Abs(m.FilamentGrams[1]-2.50) > 1e-9 {
		t.Fatalf("weights: %v", m.FilamentGrams)
	}
}

func TestParseArchiveFallsBackToLengthEstimate(t *testing.T) {
	report := `; model printing time: 2h 0m 0s
; total filament length [mm] : 1000
`
	raw := buildArchive(t, map[string]string{
		"Metadata/plate_1.gcode": report,
	})

	m := parse(t, raw).Metrics
	if len(m.FilamentGrams) != 1 {
		t.Fatalf("weights: %v", m.FilamentGrams)
	}
	// 1000 mm of 1.75 mm filament at 1.26 g/cm3.
	want := math.Pi * math.Pow(1.75/20, 2) * 1000 / 10 * 1.26
	if math.Abs(m.FilamentGrams[0]-want) > 1e-9 {
		t.Fatalf("estimated weight = %v, want %v", m.FilamentGrams[0], want)
	}
}

func TestParseArchiveFindsAnyMetadataGCode(t *testing.T) {
	raw := buildArchive(t, map[string]string{
		"Metadata/custom_plate.gcode": "; model printing time: 0h 45m 0s\n",
	})

	m := parse(t, raw).Metrics
	if m.PrintTime == nil || m.PrintTime.Minutes != 45 {
		t.Fatalf("print time: %+v", m.PrintTime)
	}
}

func TestParseArchivePrefersEmbeddedQuote(t *testing.T) {
	raw := buildArchive(t, map[string]string{
		"Metadata/quote.json":    `{"timestamp":"2025-06-01T12:00:00Z"}`,
		"Metadata/plate_1.gcode": sampleReport,
	})

	imp := parse(t, raw)
	if imp.Quote == nil {
		t.Fatal("embedded quote should win")
	}
	if imp.Metrics != nil {
		t.Fatal("metrics should not be parsed when a quote is present")
	}
}

func TestParseArchiveCorruptQuoteFallsBackToMetrics(t *testing.T) {
	raw := buildArchive(t, map[string]string{
		"Metadata/quote.json":    `{broken`,
		"Metadata/plate_1.gcode": sampleReport,
	})

	imp := parse(t, raw)
	if imp.Quote != nil {
		t.Fatal("corrupt quote should be ignored")
	}
	if imp.Metrics == nil {
		t.Fatal("metrics expected")
	}
}

func TestParseArchiveWithoutGCode(t *testing.T) {
	raw := buildArchive(t, map[string]string{
		"3D/3dmodel.model": "<model/>",
	})

	_, err := ParseArchive(bytes.NewReader(raw), int64(len(raw)))
	if !errors.Is(err, ErrNoGCode) {
		t.Fatalf("expected ErrNoGCode, got %v", err)
	}
}

func TestParseArchiveRejectsNonZip(t *testing.T) {
	raw := []byte("plain text, not a zip")
	if _, err := ParseArchive(bytes.NewReader(raw), int64(len(raw))); err == nil {
		t.Fatal("expected an error")
	}
}

func TestEmbedQuotePreservesSiblingsAndReplacesQuote(t *testing.T) {
	raw := buildArchive(t, map[string]string{
		"3D/3dmodel.model":       "<model/>",
		"Metadata/plate_1.gcode": sampleReport,
		"Metadata/quote.json":    `{"old":true}`,
	})

	out, err := EmbedQuote(raw, []byte(`{"new":true}`))
	if err != nil {
		t.Fatalf("EmbedQuote: %v", err)
	}

	zr, err := zip.NewReader(bytes.NewReader(out), int64(len(out)))
	if err != nil {
		t.Fatalf("reopen: %v", err)
	}
	got := map[string]bool{}
	for _, f := range zr.File {
		got[f.Name] = true
	}
	for _, name := range []string{"3D/3dmodel.model", "Metadata/plate_1.gcode", "Metadata/quote.json"} {
		if !got[name] {
			t.Fatalf("missing entry %s in %v", name, got)
		}
	}
	if len(zr.File) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(zr.File))
	}

	quote := findEntry(zr, "Metadata/quote.json")
	content, err := readEntry(quote)
	if err != nil {
		t.Fatalf("read quote: %v", err)
	}
	if string(content) != `{"new":true}` {
		t.Fatalf("quote not replaced: %s", content)
	}

	// Embedding then parsing yields the quote back.
	imp := parse(t, out)
	if imp.Quote == nil || string(imp.Quote) != `{"new":true}` {
		t.Fatalf("round trip failed: %s", imp.Quote)
	}
}
