package pricing

import (
	"strings"
	"testing"

	"github.com/makerlab/printquote/internal/store"
)

func sectionByComponent(t *testing.T, sections []Section, component string) Section {
	t.Helper()
	for _, sec := range sections {
		if sec.Component == component {
			return sec
		}
	}
	t.Fatalf("no %q section in %+v", component, sections)
	return Section{}
}

func TestExplainRendersEveryComponent(t *testing.T) {
	data := workshopFixture()
	data.LaborTasks.Post = []store.LaborTask{{Name: "Support removal", Minutes: 30, Rate: 20}}
	req := Request{
		PrintTime:     PrintTime{Hours: 10},
		PrinterRef:    "printer-1",
		Materials:     []MaterialLine{{Ref: "filament-1", QuantityGrams: 100}},
		Mode:          ModeProfitPercent,
		ProfitPercent: 20,
	}
	res := Calculate(req, data)

	sections := Explain(res, "$")
	if len(sections) != 4 {
		t.Fatalf("expected 4 sections, got %d", len(sections))
	}

	material := sectionByComponent(t, sections, "material")
	last := material.Lines[len(material.Lines)-1]
	if !last.IsTotal || last.Result != "$2.00" {
		t.Fatalf("unexpected material total line: %+v", last)
	}

	electricity := sectionByComponent(t, sections, "electricity")
	last = electricity.Lines[len(electricity.Lines)-1]
	if last.Result != "$0.30" {
		t.Fatalf("unexpected electricity total line: %+v", last)
	}

	machine := sectionByComponent(t, sections, "machine")
	if !strings.Contains(machine.Lines[0].Label, "Depreciation") {
		t.Fatalf("expected depreciation line first, got %+v", machine.Lines[0])
	}
	last = machine.Lines[len(machine.Lines)-1]
	if last.Label != "Total Machine Cost" || last.Result != "$0.40" {
		t.Fatalf("unexpected machine total line: %+v", last)
	}

	labor := sectionByComponent(t, sections, "labor")
	if labor.Lines[0].Label != "Support removal" {
		t.Fatalf("unexpected labor line: %+v", labor.Lines[0])
	}
	last = labor.Lines[len(labor.Lines)-1]
	if last.Label != "Total Labor" || last.Result != "$10.00" {
		t.Fatalf("unexpected labor total line: %+v", last)
	}
}

func TestExplainEmptyStates(t *testing.T) {
	res := Calculate(Request{Mode: ModeProfitPercent}, store.Data{})
	sections := Explain(res, "$")

	if got := sectionByComponent(t, sections, "material").Lines[0].Label; got != "No materials added" {
		t.Fatalf("material empty state = %q", got)
	}
	if got := sectionByComponent(t, sections, "electricity").Lines[0].Label; got != "Select a printer" {
		t.Fatalf("electricity empty state = %q", got)
	}
	if got := sectionByComponent(t, sections, "machine").Lines[0].Label; got != "Select a printer" {
		t.Fatalf("machine empty state = %q", got)
	}
	if got := sectionByComponent(t, sections, "labor").Lines[0].Label; got != "No labor tasks with time" {
		t.Fatalf("labor empty state = %q", got)
	}
}

func TestExplainMachineCostsDisabled(t *testing.T) {
	data := workshopFixture()
	res := Calculate(Request{
		PrintTime:  PrintTime{Hours: 10},
		PrinterRef: "printer-2",
		Mode:       ModeProfitPercent,
	}, data)

	machine := sectionByComponent(t, Explain(res, "$"), "machine")
	if machine.Lines[0].Label != "Machine costs disabled" {
		t.Fatalf("unexpected machine section: %+v", machine.Lines)
	}
}

func TestExplainUsesStoreCurrencySymbol(t *testing.T) {
	data := workshopFixture()
	res := Calculate(Request{
		Materials: []MaterialLine{{Ref: "filament-1", QuantityGrams: 100}},
		Mode:      ModeProfitPercent,
	}, data)

	material := sectionByComponent(t, Explain(res, "€"), "material")
	last := material.Lines[len(material.Lines)-1]
	if last.Result != "€2.00" {
		t.Fatalf("unexpected currency rendering: %+v", last)
	}
}
