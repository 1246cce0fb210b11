package pricing

import (
	"strings"

	"github.com/makerlab/printquote/internal/store"
)

// MaterialLineInput is one raw material row as submitted.
type MaterialLineInput struct {
	Ref      string `json:"ref"`
	Quantity string `json:"quantity"`
}

// ExtraCostInput is one raw extra-cost row as submitted.
type ExtraCostInput struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// RequestInput carries quote fields exactly as the UI submits them, all as
// strings. BuildRequest is total over this shape: any malformed value turns
// into a neutral default rather than an error.
type RequestInput struct {
	PrinterRef    string              `json:"printerRef"`
	Days          string              `json:"days"`
	Hours         string              `json:"hours"`
	Minutes       string              `json:"minutes"`
	Materials     []MaterialLineInput `json:"materials"`
	ExtraCosts    []ExtraCostInput    `json:"extraCosts"`
	Mode          string              `json:"mode"`
	ProfitPercent string              `json:"profitPercent"`
	RatePerHour   string              `json:"ratePerHour"`
	FixedPrice    string              `json:"fixedPrice"`
}

// BuildRequest normalizes raw input into a well-typed Request. Material rows
// are kept only when a reference is present and the quantity is positive;
// extra costs only when named with a positive value. References that no
// longer resolve are kept and priced at zero by the engine, so a material
// deleted after being referenced never breaks a calculation.
func BuildRequest(in RequestInput) Request {
	req := Request{
		PrinterRef: strings.TrimSpace(in.PrinterRef),
		PrintTime: PrintTime{
			Days:    store.FloatOrZero(in.Days),
			Hours:   store.FloatOrZero(in.Hours),
			Minutes: store.FloatOrZero(in.Minutes),
		},
		Materials:     []MaterialLine{},
		ExtraCosts:    []ExtraCost{},
		Mode:          parseMode(in.Mode),
		ProfitPercent: store.FloatOrZero(in.ProfitPercent),
		RatePerHour:   store.FloatOrZero(in.RatePerHour),
		FixedPrice:    store.FloatOrZero(in.FixedPrice),
	}

	for _, m := range in.Materials {
		ref := strings.TrimSpace(m.Ref)
		qty := store.FloatOrZero(m.Quantity)
		if ref == "" || qty <= 0 {
			continue
		}
		req.Materials = append(req.Materials, MaterialLine{Ref: ref, QuantityGrams: qty})
	}

	for _, e := range in.ExtraCosts {
		name := strings.TrimSpace(e.Name)
		value := store.FloatOrZero(e.Value)
		if name == "" || value <= 0 {
			continue
		}
		req.ExtraCosts = append(req.ExtraCosts, ExtraCost{Name: name, Value: value})
	}

	return req
}

func parseMode(raw string) Mode {
	switch Mode(strings.TrimSpace(raw)) {
	case ModePricePerHour:
		return ModePricePerHour
	case ModeFixedPrice:
		return ModeFixedPrice
	default:
		return ModeProfitPercent
	}
}
