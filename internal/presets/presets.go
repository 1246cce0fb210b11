// Package presets holds the static reference catalogs used during data
// entry: printer models, regional electricity rates, and display currencies.
// Resolvers merge a preset onto a target entity field by field; a nil preset
// field means "no data" and never overwrites what the user already entered.
package presets

import "github.com/makerlab/printquote/internal/store"

// PrinterPreset is one catalog printer model. Power, Lifetime and Cost are
// nil for freeform entries such as "Custom / Other".
type PrinterPreset struct {
	Name     string   `json:"name"`
	Brand    string   `json:"brand"`
	PowerKw  *float64 `json:"powerKw"`
	Lifetime *float64 `json:"lifetimeHours"`
	Cost     *float64 `json:"cost"`
}

// RegionRate is one regional electricity rate. Rate and Currency are nil for
// the custom entry.
type RegionRate struct {
	Region   string   `json:"region"`
	Rate     *float64 `json:"rate"`
	Currency string   `json:"currency"`
}

// Currency is a display label only; no conversion happens anywhere.
type Currency struct {
	Code   string `json:"code"`
	Symbol string `json:"symbol"`
	Name   string `json:"name"`
}

// FindPrinter looks up a printer preset by model name.
func FindPrinter(name string) (PrinterPreset, bool) {
	for _, p := range Printers {
		if p.Name == name {
			return p, true
		}
	}
	return PrinterPreset{}, false
}

// FindRegion looks up a regional electricity rate.
func FindRegion(region string) (RegionRate, bool) {
	for _, r := range ElectricityRates {
		if r.Region == region {
			return r, true
		}
	}
	return RegionRate{}, false
}

// FindCurrency looks up a currency by code.
func FindCurrency(code string) (Currency, bool) {
	for _, c := range Currencies {
		if c.Code == code {
			return c, true
		}
	}
	return Currency{}, false
}

// Symbol returns the display symbol for a currency code, defaulting to the
// US dollar sign for unknown codes.
func Symbol(code string) string {
	if c, ok := FindCurrency(code); ok {
		return c.Symbol
	}
	return "$"
}

// ApplyPrinter projects a preset onto a printer. Each field merges
// independently: a nil power, cost or lifetime leaves the target's value in
// place. Returns false when the preset has no power figure at all, which is
// how the freeform catalog entry is marked.
func ApplyPrinter(preset PrinterPreset, p *store.Printer) bool {
	if preset.PowerKw == nil {
		return false
	}
	p.Name = preset.Name
	p.KwPerHour = *preset.PowerKw
	if preset.Cost != nil {
		p.Cost = *preset.Cost
	}
	if preset.Lifetime != nil {
		p.ExpectedLifetimeHours = *preset.Lifetime
	}
	return true
}

// ApplyRegion sets the printer's electricity rate from a regional preset and
// proposes the region's currency. The caller decides whether to adopt the
// proposal; merging the rate never changes the currency by itself.
func ApplyRegion(rate RegionRate, p *store.Printer) (proposedCurrency string, ok bool) {
	if rate.Rate == nil {
		return "", false
	}
	p.CostPerKwh = *rate.Rate
	return rate.Currency, true
}

func f(v float64) *float64 { return &v }
