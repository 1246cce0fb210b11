package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/makerlab/printquote/internal/presets"
	"github.com/makerlab/printquote/internal/pricing"
	"github.com/makerlab/printquote/internal/quotedb"
	"github.com/makerlab/printquote/internal/snapshot"
	"github.com/makerlab/printquote/internal/threemf"
)

// Sliced plate archives are mostly G-code text; 64 MB covers anything a
// desktop slicer emits.
const maxUploadBytes = 64 << 20

type calculateResponse struct {
	Result    pricing.Result    `json:"result"`
	Breakdown []pricing.Section `json:"breakdown"`
}

func (s *server) handleQuoteCalculate(w http.ResponseWriter, r *http.Request) {
	var input pricing.RequestInput
	if !decodeJSON(w, r, &input) {
		return
	}
	data := s.store.Snapshot()
	req := pricing.BuildRequest(input)
	res := pricing.Calculate(req, data)
	writeJSON(w, http.StatusOK, calculateResponse{
		Result:    res,
		Breakdown: pricing.Explain(res, presets.Symbol(data.Currency)),
	})
}

// handleQuoteSave prices the submitted inputs, freezes them into a snapshot
// and archives it. The snapshot is returned so the caller can also embed it
// into a .gcode.3mf or keep it as a file.
func (s *server) handleQuoteSave(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Title string               `json:"title"`
		Notes string               `json:"notes"`
		Input pricing.RequestInput `json:"input"`
	}
	if !decodeJSON(w, r, &body) {
		return
	}
	data := s.store.Snapshot()
	req := pricing.BuildRequest(body.Input)
	res := pricing.Calculate(req, data)
	snap := snapshot.Capture(req, res, data, time.Now())

	raw, err := snapshot.Encode(snap)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode quote")
		return
	}
	id, err := s.quotes.Save(body.Title, body.Notes, raw, res.Price.FinalPrice, res.Costs.Total, time.Now())
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to save quote")
		return
	}
	writeJSON(w, http.StatusCreated, map[string]any{
		"id":       id,
		"snapshot": snap,
	})
}

func (s *server) handleQuotesList(w http.ResponseWriter, r *http.Request) {
	quotes, err := s.quotes.List(r.URL.Query().Get("q"))
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load quotes")
		return
	}
	writeJSON(w, http.StatusOK, quotes)
}

func (s *server) handleQuoteGet(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid quote id")
		return
	}
	raw, err := s.quotes.Get(id)
	if errors.Is(err, quotedb.ErrNotFound) {
		writeError(w, http.StatusNotFound, "quote not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load quote")
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.Write(raw)
}

// handleQuoteRestore loads an archived quote back into the calculator.
// Inputs are re-resolved against the current workshop data and repriced;
// the stored totals are shown for reference but never trusted.
func (s *server) handleQuoteRestore(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid quote id")
		return
	}
	raw, err := s.quotes.Get(id)
	if errors.Is(err, quotedb.ErrNotFound) {
		writeError(w, http.StatusNotFound, "quote not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load quote")
		return
	}
	snap, err := snapshot.Decode(raw)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "stored quote is unreadable")
		return
	}
	s.restoreSnapshot(w, snap)
}

// restoreSnapshot applies a snapshot's labor lists to the workshop and
// returns the rebuilt calculator inputs with a fresh price.
func (s *server) restoreSnapshot(w http.ResponseWriter, snap snapshot.Snapshot) {
	data := s.store.Snapshot()
	req, labor := snapshot.Restore(snap, data)
	s.store.ReplaceLaborTasks(labor)
	s.saver.Trigger()

	data = s.store.Snapshot()
	res := pricing.Calculate(req, data)
	writeJSON(w, http.StatusOK, map[string]any{
		"request":   req,
		"result":    res,
		"breakdown": pricing.Explain(res, presets.Symbol(data.Currency)),
		"saved":     snap.Calculated,
	})
}

// handleImport3mf accepts a .gcode.3mf upload. An archive with an embedded
// quote restores that quote; a plain sliced archive yields the print time
// and filament weights parsed from the slicer report.
func (s *server) handleImport3mf(w http.ResponseWriter, r *http.Request) {
	raw, ok := readUpload(w, r)
	if !ok {
		return
	}
	imp, err := threemf.ParseArchive(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if imp.Quote != nil {
		snap, err := snapshot.Decode(imp.Quote)
		if err != nil {
			writeError(w, http.StatusBadRequest, "embedded quote is unreadable")
			return
		}
		s.restoreSnapshot(w, snap)
		return
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"metrics": imp.Metrics,
	})
}

// handleExport3mf embeds the submitted quote into an uploaded archive and
// returns the modified archive. Sibling entries are preserved so the file
// still opens in the slicer.
func (s *server) handleExport3mf(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return
	}
	f, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file upload")
		return
	}
	defer f.Close()
	archive, err := io.ReadAll(f)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read upload")
		return
	}

	var input pricing.RequestInput
	if raw := r.FormValue("input"); raw != "" {
		if err := json.Unmarshal([]byte(raw), &input); err != nil {
			writeError(w, http.StatusBadRequest, "invalid quote input")
			return
		}
	}

	data := s.store.Snapshot()
	req := pricing.BuildRequest(input)
	res := pricing.Calculate(req, data)
	snap := snapshot.Capture(req, res, data, time.Now())
	quoteJSON, err := snapshot.Encode(snap)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to encode quote")
		return
	}

	out, err := threemf.EmbedQuote(archive, quoteJSON)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", `attachment; filename="quote.gcode.3mf"`)
	w.Write(out)
}

func readUpload(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	r.Body = http.MaxBytesReader(w, r.Body, maxUploadBytes)
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		writeError(w, http.StatusBadRequest, "invalid multipart form")
		return nil, false
	}
	f, _, err := r.FormFile("file")
	if err != nil {
		writeError(w, http.StatusBadRequest, "missing file upload")
		return nil, false
	}
	defer f.Close()
	raw, err := io.ReadAll(f)
	if err != nil {
		writeError(w, http.StatusBadRequest, "failed to read upload")
		return nil, false
	}
	return raw, true
}
