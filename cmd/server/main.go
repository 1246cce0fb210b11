package main

import (
	"encoding/json"
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/makerlab/printquote/internal/config"
	"github.com/makerlab/printquote/internal/db"
	"github.com/makerlab/printquote/internal/migrations"
	"github.com/makerlab/printquote/internal/quotedb"
	"github.com/makerlab/printquote/internal/store"
)

const autosaveDelay = 500 * time.Millisecond

type server struct {
	store  *store.Store
	files  *store.FileStore
	saver  *store.AutoSaver
	quotes *quotedb.Archive
}

func main() {
	cfg := config.Load()

	database, err := db.Open(cfg.DBPath)
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer database.Close()

	if err := migrations.Up(database); err != nil {
		log.Fatalf("failed to run database migrations: %v", err)
	}

	st := store.New()
	files := store.NewFileStore(cfg.StorePath)
	if files.Exists() {
		data, err := files.Load()
		if err != nil {
			// Keep running on in-memory defaults; a malformed file must
			// never be overwritten by an autosave of empty state.
			log.Fatalf("failed to load store file: %v", err)
		}
		st.Replace(data)
	}

	saver := store.NewAutoSaver(autosaveDelay, func() error {
		return files.Save(st.Snapshot())
	}, func(err error) {
		log.Printf("autosave failed: %v", err)
	})
	defer saver.Close()

	srv := &server{
		store:  st,
		files:  files,
		saver:  saver,
		quotes: quotedb.New(database),
	}

	addr := ":" + cfg.Port
	log.Printf("listening on %s", addr)
	if err := http.ListenAndServe(addr, srv.routes()); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}

func (s *server) routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/api/store", s.handleStoreExport)
	r.Put("/api/store", s.handleStoreImport)
	r.Put("/api/currency", s.handleSetCurrency)

	r.Get("/api/presets/printers", s.handlePresetPrinters)
	r.Get("/api/presets/regions", s.handlePresetRegions)
	r.Get("/api/presets/currencies", s.handlePresetCurrencies)

	r.Post("/api/printers", s.handlePrinterCreate)
	r.Patch("/api/printers/{id}", s.handlePrinterUpdate)
	r.Delete("/api/printers/{id}", s.handlePrinterDelete)
	r.Post("/api/printers/{id}/preset", s.handlePrinterApplyPreset)
	r.Post("/api/printers/{id}/region", s.handlePrinterApplyRegion)
	r.Post("/api/printers/{id}/maintenance", s.handleMaintenanceCreate)
	r.Patch("/api/printers/{id}/maintenance/{index}", s.handleMaintenanceUpdate)
	r.Delete("/api/printers/{id}/maintenance/{index}", s.handleMaintenanceDelete)

	r.Post("/api/filaments", s.handleFilamentCreate)
	r.Patch("/api/filaments/{id}", s.handleFilamentUpdate)
	r.Delete("/api/filaments/{id}", s.handleFilamentDelete)

	r.Post("/api/labor/{phase}", s.handleLaborCreate)
	r.Patch("/api/labor/{phase}/{index}", s.handleLaborUpdate)
	r.Delete("/api/labor/{phase}/{index}", s.handleLaborDelete)

	r.Post("/api/quote/calculate", s.handleQuoteCalculate)
	r.Post("/api/quote/save", s.handleQuoteSave)
	r.Get("/api/quotes", s.handleQuotesList)
	r.Get("/api/quotes/{id}", s.handleQuoteGet)
	r.Post("/api/quotes/{id}/restore", s.handleQuoteRestore)

	r.Post("/api/import/3mf", s.handleImport3mf)
	r.Post("/api/export/3mf", s.handleExport3mf)

	return r
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("write response: %v", err)
	}
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"error": msg})
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON body")
		return false
	}
	return true
}
