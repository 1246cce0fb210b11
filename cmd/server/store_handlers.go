package main

import (
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/makerlab/printquote/internal/presets"
	"github.com/makerlab/printquote/internal/store"
)

// handleStoreExport returns the full workshop document as held in memory.
func (s *server) handleStoreExport(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

// handleStoreImport replaces the workshop document wholesale, the restore
// path for a backup file. The replacement is normalized and saved
// immediately rather than debounced.
func (s *server) handleStoreImport(w http.ResponseWriter, r *http.Request) {
	var data store.Data
	if !decodeJSON(w, r, &data) {
		return
	}
	s.store.Replace(data)
	if err := s.saver.Flush(); err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save store")
		return
	}
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

func (s *server) handleSetCurrency(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Code string `json:"code"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if _, ok := presets.FindCurrency(body.Code); !ok {
		writeError(w, http.StatusBadRequest, "unknown currency code")
		return
	}
	s.store.SetCurrency(body.Code)
	s.saver.Trigger()
	writeJSON(w, http.StatusOK, map[string]string{"currency": s.store.Currency()})
}

func (s *server) handlePresetPrinters(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, presets.Printers)
}

func (s *server) handlePresetRegions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, presets.ElectricityRates)
}

func (s *server) handlePresetCurrencies(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, presets.Currencies)
}

func (s *server) handlePrinterCreate(w http.ResponseWriter, r *http.Request) {
	p := s.store.AddPrinter()
	s.saver.Trigger()
	writeJSON(w, http.StatusCreated, p)
}

// handlePrinterUpdate applies a single-field edit. Unknown fields are
// rejected; malformed numeric values coerce to zero, matching how the form
// behaves with a cleared input.
func (s *server) handlePrinterUpdate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if !s.store.UpdatePrinter(chi.URLParam(r, "id"), body.Field, body.Value) {
		writeError(w, http.StatusNotFound, "printer or field not found")
		return
	}
	s.saver.Trigger()
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

func (s *server) handlePrinterDelete(w http.ResponseWriter, r *http.Request) {
	if !s.store.DeletePrinter(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "printer not found")
		return
	}
	s.saver.Trigger()
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

// handlePrinterApplyPreset merges a catalog printer model onto an existing
// printer. The freeform "Custom / Other" entry has no data and is a no-op.
func (s *server) handlePrinterApplyPreset(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	preset, ok := presets.FindPrinter(body.Name)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown printer preset")
		return
	}
	applied := false
	if !s.store.MutatePrinter(chi.URLParam(r, "id"), func(p *store.Printer) {
		applied = presets.ApplyPrinter(preset, p)
	}) {
		writeError(w, http.StatusNotFound, "printer not found")
		return
	}
	if applied {
		s.saver.Trigger()
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"applied": applied,
		"data":    s.store.Snapshot(),
	})
}

// handlePrinterApplyRegion sets the electricity rate from a regional
// preset. The region's currency is proposed back to the caller; it is only
// adopted when the request asks for it.
func (s *server) handlePrinterApplyRegion(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Region        string `json:"region"`
		AdoptCurrency bool   `json:"adoptCurrency"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	rate, ok := presets.FindRegion(body.Region)
	if !ok {
		writeError(w, http.StatusBadRequest, "unknown region")
		return
	}
	var proposed string
	applied := false
	if !s.store.MutatePrinter(chi.URLParam(r, "id"), func(p *store.Printer) {
		proposed, applied = presets.ApplyRegion(rate, p)
	}) {
		writeError(w, http.StatusNotFound, "printer not found")
		return
	}
	if applied {
		if body.AdoptCurrency && proposed != "" {
			s.store.SetCurrency(proposed)
		}
		s.saver.Trigger()
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"applied":          applied,
		"proposedCurrency": proposed,
		"data":             s.store.Snapshot(),
	})
}

func (s *server) handleMaintenanceCreate(w http.ResponseWriter, r *http.Request) {
	if !s.store.AddMaintenanceTask(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "printer not found")
		return
	}
	s.saver.Trigger()
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

func (s *server) handleMaintenanceUpdate(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r)
	if !ok {
		return
	}
	var body struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if !s.store.UpdateMaintenanceTask(chi.URLParam(r, "id"), index, body.Field, body.Value) {
		writeError(w, http.StatusNotFound, "maintenance task not found")
		return
	}
	s.saver.Trigger()
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

func (s *server) handleMaintenanceDelete(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r)
	if !ok {
		return
	}
	if !s.store.RemoveMaintenanceTask(chi.URLParam(r, "id"), index) {
		writeError(w, http.StatusNotFound, "maintenance task not found")
		return
	}
	s.saver.Trigger()
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

func (s *server) handleFilamentCreate(w http.ResponseWriter, r *http.Request) {
	f := s.store.AddFilament()
	s.saver.Trigger()
	writeJSON(w, http.StatusCreated, f)
}

func (s *server) handleFilamentUpdate(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if !s.store.UpdateFilament(chi.URLParam(r, "id"), body.Field, body.Value) {
		writeError(w, http.StatusNotFound, "filament or field not found")
		return
	}
	s.saver.Trigger()
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

func (s *server) handleFilamentDelete(w http.ResponseWriter, r *http.Request) {
	if !s.store.DeleteFilament(chi.URLParam(r, "id")) {
		writeError(w, http.StatusNotFound, "filament not found")
		return
	}
	s.saver.Trigger()
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

func (s *server) handleLaborCreate(w http.ResponseWriter, r *http.Request) {
	if !s.store.AddLaborTask(chi.URLParam(r, "phase")) {
		writeError(w, http.StatusBadRequest, "unknown labor phase")
		return
	}
	s.saver.Trigger()
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

func (s *server) handleLaborUpdate(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r)
	if !ok {
		return
	}
	var body struct {
		Field string `json:"field"`
		Value string `json:"value"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	if !s.store.UpdateLaborTask(chi.URLParam(r, "phase"), index, body.Field, body.Value) {
		writeError(w, http.StatusNotFound, "labor task not found")
		return
	}
	s.saver.Trigger()
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

func (s *server) handleLaborDelete(w http.ResponseWriter, r *http.Request) {
	index, ok := indexParam(w, r)
	if !ok {
		return
	}
	if !s.store.RemoveLaborTask(chi.URLParam(r, "phase"), index) {
		writeError(w, http.StatusNotFound, "labor task not found")
		return
	}
	s.saver.Trigger()
	writeJSON(w, http.StatusOK, s.store.Snapshot())
}

func indexParam(w http.ResponseWriter, r *http.Request) (int, bool) {
	index, err := strconv.Atoi(chi.URLParam(r, "index"))
	if err != nil || index < 0 {
		writeError(w, http.StatusBadRequest, "invalid index")
		return 0, false
	}
	return index, true
}
