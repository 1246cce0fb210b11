package store

import (
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"sync"
)

// Store owns the application data behind a mutex. All mutations and reads go
// through its methods, which serializes entity edits against calculations the
// same way a single UI thread would.
type Store struct {
	mu          sync.Mutex
	data        Data
	printerSeq  int
	filamentSeq int
}

// New returns an empty store with USD as the display currency.
func New() *Store {
	s := &Store{data: Data{Currency: "USD"}}
	s.printerSeq = 1
	s.filamentSeq = 1
	return s
}

// Snapshot returns a deep copy of the current data.
func (s *Store) Snapshot() Data {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Clone()
}

// Replace swaps in a freshly loaded dataset, normalizing legacy records and
// reseeding the id counters from the highest numeric suffix present.
func (s *Store) Replace(d Data) {
	s.mu.Lock()
	defer s.mu.Unlock()
	normalize(&d)
	s.data = d
	s.printerSeq = maxIDSuffix("printer", printerIDs(d.Printers)) + 1
	s.filamentSeq = maxIDSuffix("filament", filamentIDs(d.Filaments)) + 1
}

// Currency returns the display currency code.
func (s *Store) Currency() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.data.Currency
}

// SetCurrency changes the display currency. This is a label only; stored
// amounts are never converted.
func (s *Store) SetCurrency(code string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.Currency = code
}

// AddPrinter appends a printer with default field values and a fresh id.
func (s *Store) AddPrinter() Printer {
	s.mu.Lock()
	defer s.mu.Unlock()
	enabled := true
	p := Printer{
		ID:                    fmt.Sprintf("printer-%d", s.printerSeq),
		Name:                  "New Printer",
		KwPerHour:             0.2,
		CostPerKwh:            0.12,
		ExpectedLifetimeHours: 5000,
		IncludeDepreciation:   &enabled,
		MaintenanceTasks:      []MaintenanceTask{},
	}
	s.printerSeq++
	s.data.Printers = append(s.data.Printers, p)
	return p
}

// UpdatePrinter sets one field from a raw UI value. Numeric fields go through
// the permissive parse; booleans accept "true"/"1"/"on". Returns false when
// the printer does not exist.
func (s *Store) UpdatePrinter(id, field, raw string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.printerByID(id)
	if p == nil {
		return false
	}
	switch field {
	case "name":
		p.Name = raw
	case "kwPerHour":
		p.KwPerHour = FloatOrZero(raw)
	case "costPerKwh":
		p.CostPerKwh = FloatOrZero(raw)
	case "cost":
		p.Cost = FloatOrZero(raw)
	case "expectedLifetimeHours":
		p.ExpectedLifetimeHours = FloatOrZero(raw)
	case "includeDepreciation":
		v := boolFromRaw(raw)
		p.IncludeDepreciation = &v
	default:
		return false
	}
	return true
}

// MutatePrinter runs fn against the named printer under the store lock.
// Used for multi-field edits such as applying a preset. Returns false when
// the printer does not exist.
func (s *Store) MutatePrinter(id string, fn func(*Printer)) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.printerByID(id)
	if p == nil {
		return false
	}
	fn(p)
	return true
}

// DeletePrinter removes a printer. Quote line items that still reference it
// are left alone; they resolve to "not found" at calculation time.
func (s *Store) DeletePrinter(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, p := range s.data.Printers {
		if p.ID == id {
			s.data.Printers = append(s.data.Printers[:i], s.data.Printers[i+1:]...)
			return true
		}
	}
	return false
}

// AddMaintenanceTask appends a blank task to the printer's schedule.
func (s *Store) AddMaintenanceTask(printerID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.printerByID(printerID)
	if p == nil {
		return false
	}
	p.MaintenanceTasks = append(p.MaintenanceTasks, MaintenanceTask{IntervalHours: 1000})
	return true
}

// UpdateMaintenanceTask sets one field of a task addressed by index.
func (s *Store) UpdateMaintenanceTask(printerID string, index int, field, raw string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.printerByID(printerID)
	if p == nil || index < 0 || index >= len(p.MaintenanceTasks) {
		return false
	}
	switch field {
	case "name":
		p.MaintenanceTasks[index].Name = raw
	case "cost":
		p.MaintenanceTasks[index].Cost = FloatOrZero(raw)
	case "intervalHours":
		p.MaintenanceTasks[index].IntervalHours = FloatOrZero(raw)
	default:
		return false
	}
	return true
}

// RemoveMaintenanceTask splices a task out of the printer's schedule.
func (s *Store) RemoveMaintenanceTask(printerID string, index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	p := s.printerByID(printerID)
	if p == nil || index < 0 || index >= len(p.MaintenanceTasks) {
		return false
	}
	p.MaintenanceTasks = append(p.MaintenanceTasks[:index], p.MaintenanceTasks[index+1:]...)
	return true
}

// AddFilament appends a filament with default values and a fresh id.
func (s *Store) AddFilament() Filament {
	s.mu.Lock()
	defer s.mu.Unlock()
	f := Filament{
		ID:         fmt.Sprintf("filament-%d", s.filamentSeq),
		Name:       "New Material",
		PricePerKg: 20,
	}
	s.filamentSeq++
	s.data.Filaments = append(s.data.Filaments, f)
	return f
}

// UpdateFilament sets one field from a raw UI value.
func (s *Store) UpdateFilament(id, field, raw string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.data.Filaments {
		if s.data.Filaments[i].ID != id {
			continue
		}
		switch field {
		case "name":
			s.data.Filaments[i].Name = raw
		case "pricePerKg":
			s.data.Filaments[i].PricePerKg = FloatOrZero(raw)
		default:
			return false
		}
		return true
	}
	return false
}

// DeleteFilament removes a filament without touching quote line items that
// reference it.
func (s *Store) DeleteFilament(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i, f := range s.data.Filaments {
		if f.ID == id {
			s.data.Filaments = append(s.data.Filaments[:i], s.data.Filaments[i+1:]...)
			return true
		}
	}
	return false
}

// AddLaborTask appends a blank task to the given phase.
func (s *Store) AddLaborTask(phase string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.laborList(phase)
	if list == nil {
		return false
	}
	*list = append(*list, LaborTask{Rate: 20})
	return true
}

// UpdateLaborTask sets one field of a task addressed by (phase, index).
func (s *Store) UpdateLaborTask(phase string, index int, field, raw string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.laborList(phase)
	if list == nil || index < 0 || index >= len(*list) {
		return false
	}
	switch field {
	case "name":
		(*list)[index].Name = raw
	case "hours":
		(*list)[index].Hours = FloatOrZero(raw)
	case "minutes":
		(*list)[index].Minutes = FloatOrZero(raw)
	case "rate":
		(*list)[index].Rate = FloatOrZero(raw)
	default:
		return false
	}
	return true
}

// RemoveLaborTask splices a task out of its phase list; later indices shift.
func (s *Store) RemoveLaborTask(phase string, index int) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	list := s.laborList(phase)
	if list == nil || index < 0 || index >= len(*list) {
		return false
	}
	*list = append((*list)[:index], (*list)[index+1:]...)
	return true
}

// ReplaceLaborTasks swaps both phase lists wholesale, as a quote snapshot
// restore does.
func (s *Store) ReplaceLaborTasks(l LaborLists) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.LaborTasks = l.Clone()
	if s.data.LaborTasks.Pre == nil {
		s.data.LaborTasks.Pre = []LaborTask{}
	}
	if s.data.LaborTasks.Post == nil {
		s.data.LaborTasks.Post = []LaborTask{}
	}
}

func (s *Store) printerByID(id string) *Printer {
	for i := range s.data.Printers {
		if s.data.Printers[i].ID == id {
			return &s.data.Printers[i]
		}
	}
	return nil
}

func (s *Store) laborList(phase string) *[]LaborTask {
	switch phase {
	case PhasePre:
		return &s.data.LaborTasks.Pre
	case PhasePost:
		return &s.data.LaborTasks.Post
	default:
		return nil
	}
}

// FindPrinter resolves a reference by id first, then by name. The name
// fallback keeps records written before printers had ids working.
func (d Data) FindPrinter(ref string) (Printer, bool) {
	if ref == "" {
		return Printer{}, false
	}
	for _, p := range d.Printers {
		if p.ID == ref {
			return p, true
		}
	}
	for _, p := range d.Printers {
		if p.Name == ref {
			return p, true
		}
	}
	return Printer{}, false
}

// FindFilament resolves a reference by id first, then by name.
func (d Data) FindFilament(ref string) (Filament, bool) {
	if ref == "" {
		return Filament{}, false
	}
	for _, f := range d.Filaments {
		if f.ID == ref {
			return f, true
		}
	}
	for _, f := range d.Filaments {
		if f.Name == ref {
			return f, true
		}
	}
	return Filament{}, false
}

// FloatOrZero is the permissive numeric coercion applied at the store
// boundary: anything that does not parse as a finite float becomes 0, so the
// engine always receives well-typed numbers.
func FloatOrZero(raw string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0
	}
	return v
}

func boolFromRaw(raw string) bool {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "true", "1", "on", "yes":
		return true
	default:
		return false
	}
}

// normalize repairs legacy datasets in place: missing ids are minted from
// list position, absent slices become empty, and a missing currency falls
// back to USD.
func normalize(d *Data) {
	if d.Currency == "" {
		d.Currency = "USD"
	}
	if d.Printers == nil {
		d.Printers = []Printer{}
	}
	if d.Filaments == nil {
		d.Filaments = []Filament{}
	}
	for i := range d.Printers {
		if d.Printers[i].ID == "" {
			d.Printers[i].ID = fmt.Sprintf("printer-%d", i+1)
		}
		if d.Printers[i].MaintenanceTasks == nil {
			d.Printers[i].MaintenanceTasks = []MaintenanceTask{}
		}
	}
	for i := range d.Filaments {
		if d.Filaments[i].ID == "" {
			d.Filaments[i].ID = fmt.Sprintf("filament-%d", i+1)
		}
	}
	if d.LaborTasks.Pre == nil {
		d.LaborTasks.Pre = []LaborTask{}
	}
	if d.LaborTasks.Post == nil {
		d.LaborTasks.Post = []LaborTask{}
	}
}

var idSuffixPattern = regexp.MustCompile(`^(printer|filament)-(\d+)$`)

func maxIDSuffix(kind string, ids []string) int {
	max := 0
	for _, id := range ids {
		m := idSuffixPattern.FindStringSubmatch(id)
		if m == nil || m[1] != kind {
			continue
		}
		if n, err := strconv.Atoi(m[2]); err == nil && n > max {
			max = n
		}
	}
	return max
}

func printerIDs(ps []Printer) []string {
	out := make([]string, len(ps))
	for i, p := range ps {
		out[i] = p.ID
	}
	return out
}

func filamentIDs(fs []Filament) []string {
	out := make([]string, len(fs))
	for i, f := range fs {
		out[i] = f.ID
	}
	return out
}
