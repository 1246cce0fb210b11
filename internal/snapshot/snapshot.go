// Package snapshot freezes a quote into a self-contained record and thaws
// one back into calculator inputs. A snapshot carries everything needed to
// read the quote later: resolved names, unit prices, and the price that was
// shown when it was taken. Restoring never trusts stored totals; inputs are
// re-resolved against the current workshop data and the price is recomputed.
package snapshot

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/makerlab/printquote/internal/pricing"
	"github.com/makerlab/printquote/internal/store"
)

// PrinterRef records which printer the quote used, by id and by the name it
// had at capture time.
type PrinterRef struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// PrintTime is the duration the quote was priced for.
type PrintTime struct {
	Days       float64 `json:"days"`
	Hours      float64 `json:"hours"`
	Minutes    float64 `json:"minutes"`
	TotalHours float64 `json:"totalHours"`
}

// Material is one filament line with the unit price captured at save time.
type Material struct {
	MaterialID   string  `json:"materialId"`
	MaterialName string  `json:"materialName"`
	Quantity     float64 `json:"quantity"`
	PricePerKg   float64 `json:"pricePerKg"`
}

// ExtraCost mirrors a one-off cost line.
type ExtraCost struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Pricing holds the strategy the quote was priced with.
type Pricing struct {
	Mode          pricing.Mode `json:"mode"`
	ProfitPercent float64      `json:"profitPercent"`
	PricePerHour  float64      `json:"pricePerHour"`
	FixedPrice    float64      `json:"fixedPrice"`
}

// Calculated is the bottom line as it stood at capture time. Kept for
// display in history lists; never used when restoring.
type Calculated struct {
	FinalPrice float64 `json:"finalPrice"`
	TotalCost  float64 `json:"totalCost"`
}

// Snapshot is the persisted quote record.
type Snapshot struct {
	Timestamp  string           `json:"timestamp"`
	Printer    *PrinterRef      `json:"printer"`
	PrintTime  PrintTime        `json:"printTime"`
	Materials  []Material       `json:"materials"`
	ExtraCosts []ExtraCost      `json:"extraCosts"`
	LaborTasks store.LaborLists `json:"laborTasks"`
	Pricing    Pricing          `json:"pricing"`
	Calculated Calculated       `json:"calculated"`
}

// Capture freezes a priced request. Material lines keep the per-kg price in
// effect right now, so the snapshot stays readable after the filament is
// edited or deleted. Unresolvable material refs are kept by name with a zero
// unit price rather than dropped; the record should show what was asked for.
func Capture(req pricing.Request, res pricing.Result, data store.Data, now time.Time) Snapshot {
	snap := Snapshot{
		Timestamp: now.UTC().Format(time.RFC3339),
		PrintTime: PrintTime{
			Days:       req.PrintTime.Days,
			Hours:      req.PrintTime.Hours,
			Minutes:    req.PrintTime.Minutes,
			TotalHours: req.PrintTime.TotalHours(),
		},
		Materials:  []Material{},
		ExtraCosts: []ExtraCost{},
		LaborTasks: data.LaborTasks.Clone(),
		Pricing: Pricing{
			Mode:          req.Mode,
			ProfitPercent: req.ProfitPercent,
			PricePerHour:  req.RatePerHour,
			FixedPrice:    req.FixedPrice,
		},
		Calculated: Calculated{
			FinalPrice: res.Price.FinalPrice,
			TotalCost:  res.Costs.Total,
		},
	}
	if res.Printer != nil {
		snap.Printer = &PrinterRef{ID: res.Printer.ID, Name: res.Printer.Name}
	}
	for _, m := range req.Materials {
		line := Material{MaterialName: m.Ref, Quantity: m.QuantityGrams}
		if fil, ok := data.FindFilament(m.Ref); ok {
			line.MaterialID = fil.ID
			line.MaterialName = fil.Name
			line.PricePerKg = fil.PricePerKg
		}
		snap.Materials = append(snap.Materials, line)
	}
	for _, e := range req.ExtraCosts {
		snap.ExtraCosts = append(snap.ExtraCosts, ExtraCost{Name: e.Name, Value: e.Value})
	}
	return snap
}

// Restore turns a snapshot back into calculator inputs against the current
// workshop data. Materials are re-resolved by id first, then by captured
// name; lines whose filament no longer exists are dropped. A printer that
// no longer exists restores as no printer selected. The returned labor
// lists replace the workshop's lists wholesale.
func Restore(snap Snapshot, data store.Data) (pricing.Request, store.LaborLists) {
	req := pricing.Request{
		PrintTime: pricing.PrintTime{
			Days:    snap.PrintTime.Days,
			Hours:   snap.PrintTime.Hours,
			Minutes: snap.PrintTime.Minutes,
		},
		Mode:          snap.Pricing.Mode,
		ProfitPercent: snap.Pricing.ProfitPercent,
		RatePerHour:   snap.Pricing.PricePerHour,
		FixedPrice:    snap.Pricing.FixedPrice,
	}
	if req.Mode == "" {
		req.Mode = pricing.ModeProfitPercent
	}
	if snap.Printer != nil {
		if p, ok := data.FindPrinter(snap.Printer.ID); ok {
			req.PrinterRef = p.ID
		} else if p, ok := data.FindPrinter(snap.Printer.Name); ok {
			req.PrinterRef = p.ID
		}
	}
	for _, m := range snap.Materials {
		fil, ok := data.FindFilament(m.MaterialID)
		if !ok {
			fil, ok = data.FindFilament(m.MaterialName)
		}
		if !ok {
			continue
		}
		req.Materials = append(req.Materials, pricing.MaterialLine{
			Ref:           fil.ID,
			QuantityGrams: m.Quantity,
		})
	}
	for _, e := range snap.ExtraCosts {
		req.ExtraCosts = append(req.ExtraCosts, pricing.ExtraCost{Name: e.Name, Value: e.Value})
	}
	return req, snap.LaborTasks.Clone()
}

// Decode parses a snapshot from JSON.
func Decode(raw []byte) (Snapshot, error) {
	var snap Snapshot
	if err := json.Unmarshal(raw, &snap); err != nil {
		return Snapshot{}, fmt.Errorf("decoding quote snapshot: %w", err)
	}
	return snap, nil
}

// Encode serializes a snapshot to indented JSON, the on-disk and embedded
// archive format.
func Encode(snap Snapshot) ([]byte, error) {
	raw, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("encoding quote snapshot: %w", err)
	}
	return raw, nil
}
