package store

// MaintenanceTask is a recurring printer cost amortized linearly over its
// interval, like depreciation.
type MaintenanceTask struct {
	Name          string  `json:"name"`
	Cost          float64 `json:"cost"`
	IntervalHours float64 `json:"intervalHours"`
}

// Printer describes one machine and everything needed to charge for its time.
type Printer struct {
	ID                    string            `json:"id"`
	Name                  string            `json:"name"`
	KwPerHour             float64           `json:"kwPerHour"`
	CostPerKwh            float64           `json:"costPerKwh"`
	Cost                  float64           `json:"cost"`
	ExpectedLifetimeHours float64           `json:"expectedLifetimeHours"`
	IncludeDepreciation   *bool             `json:"includeDepreciation,omitempty"`
	MaintenanceTasks      []MaintenanceTask `json:"maintenanceTasks"`
}

// DepreciationEnabled reports whether depreciation should be charged.
// Records written before the toggle existed have no field at all; those
// default to enabled, so only an explicit false disables it.
func (p Printer) DepreciationEnabled() bool {
	return p.IncludeDepreciation == nil || *p.IncludeDepreciation
}

// Filament is a purchasable print material, priced per kilogram.
type Filament struct {
	ID         string  `json:"id"`
	Name       string  `json:"name"`
	PricePerKg float64 `json:"pricePerKg"`
}

// LaborTask is a unit of human work before or after printing.
type LaborTask struct {
	Name    string  `json:"name"`
	Hours   float64 `json:"hours"`
	Minutes float64 `json:"minutes"`
	Rate    float64 `json:"rate"`
}

// TimeHours returns the task duration in hours.
func (t LaborTask) TimeHours() float64 {
	return t.Hours + t.Minutes/60
}

// LaborLists holds labor tasks by phase. Tasks have no ids; they are
// addressed by (phase, index) and deletion splices the list.
type LaborLists struct {
	Pre  []LaborTask `json:"pre"`
	Post []LaborTask `json:"post"`
}

// Phase names for labor task lists.
const (
	PhasePre  = "pre"
	PhasePost = "post"
)

// Data is the unit of persistence: every printer, filament and labor task,
// plus the display currency. It round-trips losslessly through JSON.
type Data struct {
	Currency   string     `json:"currency,omitempty"`
	Printers   []Printer  `json:"printers"`
	Filaments  []Filament `json:"filaments"`
	LaborTasks LaborLists `json:"laborTasks"`
}

// Clone returns a deep copy of the data so callers can read it without
// holding the store lock.
func (d Data) Clone() Data {
	out := d
	out.Printers = make([]Printer, len(d.Printers))
	for i, p := range d.Printers {
		cp := p
		if p.IncludeDepreciation != nil {
			v := *p.IncludeDepreciation
			cp.IncludeDepreciation = &v
		}
		cp.MaintenanceTasks = append([]MaintenanceTask(nil), p.MaintenanceTasks...)
		out.Printers[i] = cp
	}
	out.Filaments = append([]Filament(nil), d.Filaments...)
	out.LaborTasks = d.LaborTasks.Clone()
	return out
}

// Clone returns a deep copy of both phase lists.
func (l LaborLists) Clone() LaborLists {
	return LaborLists{
		Pre:  append([]LaborTask(nil), l.Pre...),
		Post: append([]LaborTask(nil), l.Post...),
	}
}
