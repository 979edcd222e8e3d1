package ui

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"eisview/internal"
	"eisview/internal/dataset"
)

// StatusApp is the ops listener served beside the dashboard. It exposes the
// read-only startup ingest diagnostics.
type StatusApp struct {
	router *chi.Mux
	port   string
	logger *internal.Logger
	index  *dataset.Index
}

// StatusResponse is the /api/status payload.
type StatusResponse struct {
	FilesFound    int                   `json:"files_found"`
	FilesLoaded   int                   `json:"files_loaded"`
	FailedFiles   []string              `json:"failed_files"`
	LargestIDCell string                `json:"largest_id_cell"`
	Cells         []dataset.CellSummary `json:"cells"`
}

// NewStatusApp creates the status listener over the ingested index.
func NewStatusApp(port string, index *dataset.Index, logger *internal.Logger) *StatusApp {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	app := &StatusApp{
		router: chi.NewRouter(),
		port:   port,
		logger: logger,
		index:  index,
	}
	app.router.Use(middleware.Recoverer)
	app.router.Get("/healthz", app.handleHealth)
	app.router.Get("/api/status", app.handleStatus)
	return app
}

func (a *StatusApp) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	w.Write([]byte("ok"))
}

func (a *StatusApp) handleStatus(w http.ResponseWriter, r *http.Request) {
	resp := StatusResponse{
		FilesFound:    a.index.FilesFound,
		FilesLoaded:   a.index.FilesLoaded,
		FailedFiles:   a.index.FailedFiles,
		LargestIDCell: a.index.LargestIDCell,
		Cells:         a.index.Summaries(),
	}
	if resp.FailedFiles == nil {
		resp.FailedFiles = []string{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		a.logger.Error("[StatusApp] Failed to encode status: %v", err)
	}
}

// Start runs the status listener; it blocks until the server stops.
func (a *StatusApp) Start() error {
	addr := fmt.Sprintf(":%s", a.port)
	a.logger.Info("[StatusApp] Status listener on %s", addr)
	return http.ListenAndServe(addr, a.router)
}

// Handler exposes the router for tests.
func (a *StatusApp) Handler() http.Handler {
	return a.router
}
