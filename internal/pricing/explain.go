package pricing

import (
	"fmt"
	"strconv"
)

// Line is one step of a component's derivation: a label, the operands as
// text, and the resulting figure where one applies.
type Line struct {
	Label    string `json:"label"`
	Operands string `json:"operands,omitempty"`
	Result   string `json:"result,omitempty"`
	IsTotal  bool   `json:"isTotal,omitempty"`
}

// Section is the full derivation of one cost component.
type Section struct {
	Component string `json:"component"`
	Lines     []Line `json:"lines"`
}

// Explain renders the math behind every cost component from the result's
// stored intermediates. It never recomputes a figure, so it cannot diverge
// from what Calculate produced.
func Explain(res Result, symbol string) []Section {
	return []Section{
		explainMaterial(res, symbol),
		explainElectricity(res, symbol),
		explainMachine(res, symbol),
		explainLabor(res, symbol),
	}
}

func explainMaterial(res Result, symbol string) Section {
	sec := Section{Component: "material"}
	if len(res.MaterialLines) == 0 {
		sec.Lines = []Line{{Label: "No materials added"}}
		return sec
	}
	for _, line := range res.MaterialLines {
		sec.Lines = append(sec.Lines, Line{
			Label:    line.Name,
			Operands: fmt.Sprintf("%sg × %s%s/kg", trimFloat(line.QuantityGrams), symbol, trimFloat(line.PricePerKg)),
		}, Line{
			Label:  fmt.Sprintf("= %sg ÷ 1000 × %s%s", trimFloat(line.QuantityGrams), symbol, trimFloat(line.PricePerKg)),
			Result: money(symbol, line.Cost),
		})
	}
	sec.Lines = append(sec.Lines, Line{Label: "Total Material", Result: money(symbol, res.Costs.Material), IsTotal: true})
	return sec
}

func explainElectricity(res Result, symbol string) Section {
	sec := Section{Component: "electricity"}
	if res.Printer == nil || res.PrintHours <= 0 {
		sec.Lines = []Line{{Label: "Select a printer"}}
		return sec
	}
	sec.Lines = []Line{
		{Label: "Print Time", Operands: fmt.Sprintf("%.2f hours", res.PrintHours)},
		{Label: "Power", Operands: fmt.Sprintf("%s kW", trimFloat(res.Printer.KwPerHour))},
		{Label: "Rate", Operands: fmt.Sprintf("%s%s/kWh", symbol, trimFloat(res.Printer.CostPerKwh))},
		{
			Label:   fmt.Sprintf("= %.2fh × %skW × %s%s", res.PrintHours, trimFloat(res.Printer.KwPerHour), symbol, trimFloat(res.Printer.CostPerKwh)),
			Result:  money(symbol, res.Costs.Electricity),
			IsTotal: true,
		},
	}
	return sec
}

func explainMachine(res Result, symbol string) Section {
	sec := Section{Component: "machine"}
	if res.Printer == nil || res.PrintHours <= 0 {
		sec.Lines = []Line{{Label: "Select a printer"}}
		return sec
	}
	if res.Costs.Depreciation > 0 {
		sec.Lines = append(sec.Lines, Line{
			Label: "Depreciation",
			Operands: fmt.Sprintf("%s ÷ %sh × %.2fh", money(symbol, res.Printer.Cost),
				trimFloat(res.Printer.ExpectedLifetimeHours), res.PrintHours),
			Result: money(symbol, res.Costs.Depreciation),
		})
	}
	for _, line := range res.MaintenanceLines {
		name := line.Name
		if name == "" {
			name = "Maintenance"
		}
		sec.Lines = append(sec.Lines, Line{
			Label: name,
			Operands: fmt.Sprintf("%s ÷ %sh × %.2fh", money(symbol, line.TaskCost),
				trimFloat(line.IntervalHours), res.PrintHours),
			Result: money(symbol, line.Cost),
		})
	}
	if len(sec.Lines) == 0 {
		sec.Lines = []Line{{Label: "Machine costs disabled"}}
		return sec
	}
	sec.Lines = append(sec.Lines, Line{Label: "Total Machine Cost", Result: money(symbol, res.Costs.Machine), IsTotal: true})
	return sec
}

func explainLabor(res Result, symbol string) Section {
	sec := Section{Component: "labor"}
	if len(res.LaborLines) == 0 {
		sec.Lines = []Line{{Label: "No labor tasks with time"}}
		return sec
	}
	for _, line := range res.LaborLines {
		sec.Lines = append(sec.Lines, Line{
			Label:    line.Name,
			Operands: fmt.Sprintf("%.2fh × %s", line.Hours, money(symbol, line.Rate)),
			Result:   money(symbol, line.Cost),
		})
	}
	sec.Lines = append(sec.Lines, Line{Label: "Total Labor", Result: money(symbol, res.Costs.Labor), IsTotal: true})
	return sec
}

func money(symbol string, v float64) string {
	return symbol + strconv.FormatFloat(v, 'f', 2, 64)
}

// trimFloat prints operand values the way they were entered: no trailing
// zeros, no forced precision.
func trimFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
