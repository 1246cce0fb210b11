package snapshot

import (
	"math"
	"testing"
	"time"

	"github.com/makerlab/printquote/internal/pricing"
	"github.com/makerlab/printquote/internal/store"
)

func nearlyEqual(t *testing.T, name string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("%s = %v, want %v", name, got, want)
	}
}

func workshopData() store.Data {
	return store.Data{
		Currency: "USD",
		Printers: []store.Printer{{
			ID:                    "printer-1",
			Name:                  "Workhorse",
			KwPerHour:             0.2,
			CostPerKwh:            0.15,
			Cost:                  200,
			ExpectedLifetimeHours: 5000,
		}},
		Filaments: []store.Filament{
			{ID: "filament-1", Name: "PLA Black", PricePerKg: 20},
			{ID: "filament-2", Name: "PETG Clear", PricePerKg: 25},
		},
		LaborTasks: store.LaborLists{
			Pre:  []store.LaborTask{{Name: "Slicing", Minutes: 15, Rate: 20}},
			Post: []store.LaborTask{},
		},
	}
}

func quoteRequest() pricing.Request {
	return pricing.Request{
		PrintTime:     pricing.PrintTime{Hours: 10},
		PrinterRef:    "printer-1",
		Materials:     []pricing.MaterialLine{{Ref: "filament-1", QuantityGrams: 100}},
		ExtraCosts:    []pricing.ExtraCost{{Name: "Shipping", Value: 3}},
		Mode:          pricing.ModeProfitPercent,
		ProfitPercent: 20,
	}
}

func TestCaptureIsSelfContained(t *testing.T) {
	data := workshopData()
	req := quoteRequest()
	res := pricing.Calculate(req, data)
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	snap := Capture(req, res, data, now)

	if snap.Timestamp != "2025-06-01T12:00:00Z" {
		t.Fatalf("Timestamp=%q", snap.Timestamp)
	}
	if snap.Printer == nil || snap.Printer.ID != "printer-1" || snap.Printer.Name != "Workhorse" {
		t.Fatalf("printer ref: %+v", snap.Printer)
	}
	nearlyEqual(t, "totalHours", snap.PrintTime.TotalHours, 10)
	if len(snap.Materials) != 1 {
		t.Fatalf("materials: %+v", snap.Materials)
	}
	m := snap.Materials[0]
	if m.MaterialID != "filament-1" || m.MaterialName != "PLA Black" {
		t.Fatalf("material ref: %+v", m)
	}
	// The unit price travels with the snapshot so it stays readable after
	// the filament is edited or deleted.
	nearlyEqual(t, "pricePerKg", m.PricePerKg, 20)
	nearlyEqual(t, "finalPrice", snap.Calculated.FinalPrice, res.Price.FinalPrice)
	nearlyEqual(t, "totalCost", snap.Calculated.TotalCost, res.Costs.Total)
	if len(snap.LaborTasks.Pre) != 1 || snap.LaborTasks.Pre[0].Name != "Slicing" {
		t.Fatalf("labor: %+v", snap.LaborTasks)
	}
}

func TestCaptureKeepsUnresolvableMaterialByName(t *testing.T) {
	data := workshopData()
	req := quoteRequest()
	req.Materials = []pricing.MaterialLine{{Ref: "filament-gone", QuantityGrams: 50}}
	res := pricing.Calculate(req, data)

	snap := Capture(req, res, data, time.Now())

	if len(snap.Materials) != 1 {
		t.Fatalf("materials: %+v", snap.Materials)
	}
	if snap.Materials[0].MaterialName != "filament-gone" || snap.Materials[0].PricePerKg != 0 {
		t.Fatalf("unresolved material: %+v", snap.Materials[0])
	}
}

func TestRoundTripThroughJSON(t *testing.T) {
	data := workshopData()
	req := quoteRequest()
	res := pricing.Calculate(req, data)
	snap := Capture(req, res, data, time.Now())

	raw, err := Encode(snap)
	if err != nil {
		t.Fatalf("encode: %v", err)
	}
	decoded, err := Decode(raw)
	if err != nil {
		t.Fatalf("decode: %v", err)
	}

	restored, labor := Restore(decoded, data)
	if restored.PrinterRef != "printer-1" {
		t.Fatalf("PrinterRef=%q", restored.PrinterRef)
	}
	if len(restored.Materials) != 1 || restored.Materials[0].Ref != "filament-1" {
		t.Fatalf("materials: %+v", restored.Materials)
	}
	if len(labor.Pre) != 1 || labor.Pre[0].Name != "Slicing" {
		t.Fatalf("labor: %+v", labor)
	}

	// Restoring against unchanged data reproduces the captured price.
	again := pricing.Calculate(restored, data)
	nearlyEqual(t, "finalPrice", again.Price.FinalPrice, snap.Calculated.FinalPrice)
}

func TestRestoreDropsMissingMaterialsAndPrinter(t *testing.T) {
	data := workshopData()
	req := quoteRequest()
	req.Materials = append(req.Materials, pricing.MaterialLine{Ref: "filament-2", QuantityGrams: 40})
	res := pricing.Calculate(req, data)
	snap := Capture(req, res, data, time.Now())

	// The printer and one filament disappear before the restore.
	shrunk := workshopData()
	shrunk.Printers = nil
	shrunk.Filaments = shrunk.Filaments[:1]

	restored, _ := Restore(snap, shrunk)

	if restored.PrinterRef != "" {
		t.Fatalf("missing printer should restore as none, got %q", restored.PrinterRef)
	}
	if len(restored.Materials) != 1 || restored.Materials[0].Ref != "filament-1" {
		t.Fatalf("missing filament should be dropped: %+v", restored.Materials)
	}
}

func TestRestoreResolvesByNameWhenIDChanged(t *testing.T) {
	data := workshopData()
	req := quoteRequest()
	res := pricing.Calculate(req, data)
	snap := Capture(req, res, data, time.Now())

	// Same names, new ids: a re-imported dataset.
	reimported := workshopData()
	reimported.Printers[0].ID = "printer-9"
	reimported.Filaments[0].ID = "filament-9"

	restored, _ := Restore(snap, reimported)

	if restored.PrinterRef != "printer-9" {
		t.Fatalf("PrinterRef=%q", restored.PrinterRef)
	}
	if len(restored.Materials) != 1 || restored.Materials[0].Ref != "filament-9" {
		t.Fatalf("materials: %+v", restored.Materials)
	}
}

func TestRestoreDefaultsEmptyModeToProfitPercent(t *testing.T) {
	snap := Snapshot{}
	restored, _ := Restore(snap, store.Data{})
	if restored.Mode != pricing.ModeProfitPercent {
		t.Fatalf("Mode=%q", restored.Mode)
	}
}

func TestDecodeRejectsGarbage(t *testing.T) {
	if _, err := Decode([]byte("{broken")); err == nil {
		t.Fatal("expected an error")
	}
}
