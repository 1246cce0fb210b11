package pricing

import (
	"github.com/makerlab/printquote/internal/store"
)

// Mode selects how the final price is derived from total cost.
type Mode string

const (
	ModeProfitPercent Mode = "profit-percent"
	ModePricePerHour  Mode = "price-per-hour"
	ModeFixedPrice    Mode = "fixed-price"
)

// PrintTime is the machine time of the job, kept in the fields the UI uses.
type PrintTime struct {
	Days    float64 `json:"days"`
	Hours   float64 `json:"hours"`
	Minutes float64 `json:"minutes"`
}

// TotalHours collapses the breakdown to hours. No rounding happens here;
// display formatting owns that.
func (pt PrintTime) TotalHours() float64 {
	return pt.Days*24 + pt.Hours + pt.Minutes/60
}

// MaterialLine is one material selection on the quote. Ref is a filament id
// or, for legacy records, a filament name.
type MaterialLine struct {
	Ref           string  `json:"ref"`
	QuantityGrams float64 `json:"quantityGrams"`
}

// ExtraCost is a free-form flat cost added to the quote.
type ExtraCost struct {
	Name  string  `json:"name"`
	Value float64 `json:"value"`
}

// Request is one quote calculation's input, assembled from the current UI
// state. Each pricing mode keeps its own scalar; switching modes does not
// clear the others.
type Request struct {
	PrintTime     PrintTime      `json:"printTime"`
	PrinterRef    string         `json:"printerRef"`
	Materials     []MaterialLine `json:"materials"`
	ExtraCosts    []ExtraCost    `json:"extraCosts"`
	Mode          Mode           `json:"mode"`
	ProfitPercent float64        `json:"profitPercent"`
	RatePerHour   float64        `json:"ratePerHour"`
	FixedPrice    float64        `json:"fixedPrice"`
}

// MaterialCostLine is one priced material line in the result.
type MaterialCostLine struct {
	Name          string  `json:"name"`
	QuantityGrams float64 `json:"quantityGrams"`
	PricePerKg    float64 `json:"pricePerKg"`
	Cost          float64 `json:"cost"`
}

// MaintenanceCostLine is one maintenance task's share of this print.
type MaintenanceCostLine struct {
	Name          string  `json:"name"`
	TaskCost      float64 `json:"taskCost"`
	IntervalHours float64 `json:"intervalHours"`
	Cost          float64 `json:"cost"`
}

// LaborCostLine is one labor task's priced contribution. Name falls back to a
// phase label when the task was left unnamed.
type LaborCostLine struct {
	Name  string  `json:"name"`
	Phase string  `json:"phase"`
	Hours float64 `json:"hours"`
	Rate  float64 `json:"rate"`
	Cost  float64 `json:"cost"`
}

// Costs holds every cost component plus their sum.
type Costs struct {
	Material     float64 `json:"material"`
	Extra        float64 `json:"extra"`
	Electricity  float64 `json:"electricity"`
	Depreciation float64 `json:"depreciation"`
	Maintenance  float64 `json:"maintenance"`
	Machine      float64 `json:"machine"`
	Labor        float64 `json:"labor"`
	Total        float64 `json:"total"`
}

// Price holds the strategy outputs.
type Price struct {
	FinalPrice   float64 `json:"finalPrice"`
	ProfitMargin float64 `json:"profitMargin"`
	PricePerHour float64 `json:"pricePerHour"`
}

// Result is the full output of one calculation, including the per-line
// intermediates the math breakdown is rendered from.
type Result struct {
	PrintHours       float64               `json:"printHours"`
	ProcessingHours  float64               `json:"processingHours"`
	TotalHours       float64               `json:"totalHours"`
	Printer          *store.Printer        `json:"printer,omitempty"`
	MaterialLines    []MaterialCostLine    `json:"materialLines"`
	MaintenanceLines []MaintenanceCostLine `json:"maintenanceLines"`
	LaborLines       []LaborCostLine       `json:"laborLines"`
	Costs            Costs                 `json:"costs"`
	Price            Price                 `json:"price"`
}

// Calculate computes a quote from a request against a data snapshot. It is a
// pure function: calling it twice with the same inputs yields identical
// results, and no input shape makes it panic. Missing or deleted references
// contribute zero cost.
func Calculate(req Request, data store.Data) Result {
	res := Result{
		MaterialLines:    []MaterialCostLine{},
		MaintenanceLines: []MaintenanceCostLine{},
		LaborLines:       []LaborCostLine{},
	}
	res.PrintHours = req.PrintTime.TotalHours()

	// Labor: tasks with zero time and zero rate are excluded entirely,
	// from the sum and from the breakdown.
	for _, phase := range []string{store.PhasePre, store.PhasePost} {
		tasks := data.LaborTasks.Pre
		if phase == store.PhasePost {
			tasks = data.LaborTasks.Post
		}
		for _, task := range tasks {
			hours := task.TimeHours()
			if hours <= 0 && task.Rate <= 0 {
				continue
			}
			cost := hours * task.Rate
			res.ProcessingHours += hours
			res.Costs.Labor += cost
			res.LaborLines = append(res.LaborLines, LaborCostLine{
				Name:  laborName(task.Name, phase),
				Phase: phase,
				Hours: hours,
				Rate:  task.Rate,
				Cost:  cost,
			})
		}
	}
	res.TotalHours = res.PrintHours + res.ProcessingHours

	if p, ok := data.FindPrinter(req.PrinterRef); ok {
		printer := p
		res.Printer = &printer
	}

	for _, line := range req.Materials {
		if line.QuantityGrams <= 0 {
			continue
		}
		filament, ok := data.FindFilament(line.Ref)
		if !ok {
			continue
		}
		cost := (line.QuantityGrams / 1000) * filament.PricePerKg
		res.Costs.Material += cost
		res.MaterialLines = append(res.MaterialLines, MaterialCostLine{
			Name:          filament.Name,
			QuantityGrams: line.QuantityGrams,
			PricePerKg:    filament.PricePerKg,
			Cost:          cost,
		})
	}

	for _, extra := range req.ExtraCosts {
		res.Costs.Extra += extra.Value
	}

	if res.Printer != nil && res.PrintHours > 0 {
		res.Costs.Electricity = res.PrintHours * res.Printer.KwPerHour * res.Printer.CostPerKwh

		// Lifetime of zero would divide by zero; it contributes nothing.
		if res.Printer.DepreciationEnabled() && res.Printer.Cost > 0 && res.Printer.ExpectedLifetimeHours > 0 {
			res.Costs.Depreciation = (res.Printer.Cost / res.Printer.ExpectedLifetimeHours) * res.PrintHours
		}

		for _, task := range res.Printer.MaintenanceTasks {
			if task.Cost <= 0 || task.IntervalHours <= 0 {
				continue
			}
			cost := (task.Cost / task.IntervalHours) * res.PrintHours
			res.Costs.Maintenance += cost
			res.MaintenanceLines = append(res.MaintenanceLines, MaintenanceCostLine{
				Name:          task.Name,
				TaskCost:      task.Cost,
				IntervalHours: task.IntervalHours,
				Cost:          cost,
			})
		}
	}

	res.Costs.Machine = res.Costs.Depreciation + res.Costs.Maintenance
	res.Costs.Total = res.Costs.Material + res.Costs.Extra + res.Costs.Electricity + res.Costs.Machine + res.Costs.Labor
	res.Price = applyPricing(req, res.Costs.Total, res.PrintHours)
	return res
}

// applyPricing selects the final price and derived figures for the active
// mode. Profit margin on a zero total cost is defined as 0 so no division by
// zero ever reaches the caller.
func applyPricing(req Request, totalCost, printHours float64) Price {
	var p Price
	switch req.Mode {
	case ModePricePerHour:
		p.PricePerHour = req.RatePerHour
		p.FinalPrice = printHours * req.RatePerHour
		p.ProfitMargin = marginOverCost(p.FinalPrice, totalCost)
	case ModeFixedPrice:
		p.FinalPrice = req.FixedPrice
		p.ProfitMargin = marginOverCost(p.FinalPrice, totalCost)
	default: // profit-percent
		p.FinalPrice = totalCost * (1 + req.ProfitPercent/100)
		p.ProfitMargin = req.ProfitPercent
	}
	if req.Mode != ModePricePerHour {
		if printHours > 0 {
			p.PricePerHour = p.FinalPrice / printHours
		} else {
			p.PricePerHour = 0
		}
	}
	return p
}

func marginOverCost(finalPrice, totalCost float64) float64 {
	if totalCost <= 0 {
		return 0
	}
	return (finalPrice - totalCost) / totalCost * 100
}

func laborName(name, phase string) string {
	if name != "" {
		return name
	}
	if phase == store.PhasePre {
		return "Pre-processing"
	}
	return "Post-processing"
}
