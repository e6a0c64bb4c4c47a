package main

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/yacobolo/figsync"
)

// newStatusRouter exposes a running controller over HTTP:
//
//	GET  /status          running flag, last sync time, counters
//	GET  /snapshot        current snapshot
//	GET  /results/latest  most recent tick result
//	POST /sync            run a tick now
func newStatusRouter(c *figsync.Controller, log *slog.Logger) http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recoverer)

	r.Get("/health", func(w http.ResponseWriter, _ *http.Request) {
		writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Get("/status", func(w http.ResponseWriter, _ *http.Request) {
		status := c.Status()
		status.Snapshot = nil
		writeJSON(w, http.StatusOK, status)
	})

	r.Get("/snapshot", func(w http.ResponseWriter, _ *http.Request) {
		snapshot := c.Snapshot()
		if snapshot == nil {
			writeError(w, http.StatusNotFound, "no snapshot yet")
			return
		}
		writeJSON(w, http.StatusOK, snapshot)
	})

	r.Get("/results/latest", func(w http.ResponseWriter, _ *http.Request) {
		result, ok := c.LastResult()
		if !ok {
			writeError(w, http.StatusNotFound, "no sync has completed yet")
			return
		}
		writeJSON(w, http.StatusOK, result)
	})

	r.Post("/sync", func(w http.ResponseWriter, r *http.Request) {
		result := c.Sync(r.Context())
		log.Debug("figsync: manual sync", "id", result.ID, "request_id", middleware.GetReqID(r.Context()))
		code := http.StatusOK
		switch {
		case result.Skipped:
			code = http.StatusConflict
		case !result.OK():
			code = http.StatusBadGateway
		}
		writeJSON(w, code, result)
	})

	return r
}

func writeJSON(w http.ResponseWriter, code int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, code int, msg string) {
	writeJSON(w, code, map[string]string{"error": msg})
}
