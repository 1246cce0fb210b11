package presets

import (
	"testing"

	"github.com/makerlab/printquote/internal/store"
)

func TestApplyPrinterMergesOnlyPresentFields(t *testing.T) {
	p := store.Printer{Name: "Mine", KwPerHour: 0.1, Cost: 50, ExpectedLifetimeHours: 100}

	preset, ok := FindPrinter("MK4S Kit")
	if !ok {
		t.Fatal("MK4S Kit missing from catalog")
	}
	if !ApplyPrinter(preset, &p) {
		t.Fatal("apply returned false for a full preset")
	}

	if p.Name != "MK4S Kit" {
		t.Fatalf("Name=%q", p.Name)
	}
	if p.KwPerHour != 0.15 || p.Cost != 799 || p.ExpectedLifetimeHours != 8000 {
		t.Fatalf("merge wrong: %+v", p)
	}
}

func TestApplyPrinterCustomEntryLeavesTargetAlone(t *testing.T) {
	p := store.Printer{Name: "Mine", KwPerHour: 0.1, Cost: 50}

	preset, ok := FindPrinter("Custom / Other")
	if !ok {
		t.Fatal("Custom / Other missing from catalog")
	}
	if ApplyPrinter(preset, &p) {
		t.Fatal("freeform entry should not apply")
	}
	if p.Name != "Mine" || p.KwPerHour != 0.1 || p.Cost != 50 {
		t.Fatalf("target was modified: %+v", p)
	}
}

func TestApplyRegionProposesCurrencyWithoutAdoptingIt(t *testing.T) {
	p := store.Printer{CostPerKwh: 0.01}

	rate, ok := FindRegion("Germany")
	if !ok {
		t.Fatal("Germany missing from catalog")
	}
	proposed, applied := ApplyRegion(rate, &p)
	if !applied {
		t.Fatal("apply returned false for a full region")
	}
	if p.CostPerKwh != 0.35 {
		t.Fatalf("CostPerKwh=%v", p.CostPerKwh)
	}
	if proposed != "EUR" {
		t.Fatalf("proposed currency = %q", proposed)
	}
}

func TestApplyRegionCustomEntryIsNoOp(t *testing.T) {
	p := store.Printer{CostPerKwh: 0.2}

	rate, ok := FindRegion("Custom / Other")
	if !ok {
		t.Fatal("Custom / Other missing from rates")
	}
	if _, applied := ApplyRegion(rate, &p); applied {
		t.Fatal("custom region should not apply")
	}
	if p.CostPerKwh != 0.2 {
		t.Fatalf("rate was modified: %v", p.CostPerKwh)
	}
}

func TestSymbolFallsBackToDollar(t *testing.T) {
	if got := Symbol("EUR"); got != "€" {
		t.Fatalf("Symbol(EUR)=%q", got)
	}
	if got := Symbol("XXX"); got != "$" {
		t.Fatalf("Symbol(XXX)=%q", got)
	}
}

func TestCatalogEntriesAreWellFormed(t *testing.T) {
	for _, p := range Printers {
		if p.Name == "" || p.Brand == "" {
			t.Fatalf("unnamed printer preset: %+v", p)
		}
		if p.PowerKw != nil && *p.PowerKw <= 0 {
			t.Fatalf("non-positive power for %s", p.Name)
		}
	}
	for _, r := range ElectricityRates {
		if r.Region == "" {
			t.Fatalf("unnamed region: %+v", r)
		}
		if r.Rate != nil && *r.Rate <= 0 {
			t.Fatalf("non-positive rate for %s", r.Region)
		}
		if r.Rate != nil {
			if _, ok := FindCurrency(r.Currency); !ok {
				t.Fatalf("region %s references unknown currency %q", r.Region, r.Currency)
			}
		}
	}
}
