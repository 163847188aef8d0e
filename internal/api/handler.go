package api

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/gyaneshwarpardhi/evochain/internal/config"
	"github.com/gyaneshwarpardhi/evochain/internal/dag"
	"github.com/gyaneshwarpardhi/evochain/internal/engine"
	"github.com/gyaneshwarpardhi/evochain/internal/metrics"
	"github.com/gyaneshwarpardhi/evochain/internal/render"
	"github.com/gyaneshwarpardhi/evochain/internal/species"
)

const (
	maxBatchSize = 100
	maxBodyBytes = 4 << 20
)

// Handler holds all HTTP handler dependencies.
type Handler struct {
	eng    *engine.Engine
	loader *config.Loader
}

// New creates an HTTP handler and registers all routes.
func New(eng *engine.Engine, loader *config.Loader) http.Handler {
	h := &Handler{eng: eng, loader: loader}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(echoRequestID)
	r.Use(middleware.RealIP)
	r.Use(requestLogger)
	r.Use(middleware.Recoverer)

	r.Route("/v1", func(r chi.Router) {
		r.Post("/evolutions/resolve", h.resolve)
		r.Post("/species", h.importSpecies)
		r.Route("/species/{id}", func(r chi.Router) {
			r.Get("/", h.getSpecies)
			r.Delete("/", h.deleteSpecies)
			r.Get("/evolution", h.getEvolution)
			r.Get("/evolution.dot", h.getEvolutionDOT)
			r.Get("/evolution.svg", h.getEvolutionSVG)
		})
		r.Get("/lexicon", h.getLexicon)
		r.Post("/lexicon/reload", h.reloadLexicon)
	})
	r.Get("/healthz", h.healthz)
	r.Get("/readyz", h.readyz)
	r.Method(http.MethodGet, "/metrics", promhttp.Handler())

	return r
}

// POST /v1/evolutions/resolve: resolve a detail view sent in the body.
func (h *Handler) resolve(w http.ResponseWriter, r *http.Request) {
	var d species.Detail
	if err := decodeJSON(w, r, &d); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateStruct(&d); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	c, err := h.eng.Resolve(r.Context(), &d)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// POST /v1/species: async batch import (up to 100 details).
func (h *Handler) importSpecies(w http.ResponseWriter, r *http.Request) {
	var details []*species.Detail
	if err := decodeJSON(w, r, &details); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if len(details) == 0 {
		writeError(w, http.StatusBadRequest, "batch must contain at least one species")
		return
	}
	if len(details) > maxBatchSize {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("batch size %d exceeds max %d", len(details), maxBatchSize))
		return
	}
	for i, d := range details {
		if d == nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("species[%d]: null entry", i))
			return
		}
		if err := validateStruct(d); err != nil {
			writeError(w, http.StatusBadRequest, fmt.Sprintf("species[%d]: %s", i, err))
			return
		}
	}

	jobID := uuid.New().String()
	queued := 0
	for _, d := range details {
		if h.eng.Import(d) {
			queued++
		}
	}

	writeJSON(w, http.StatusAccepted, map[string]interface{}{
		"job_id":   jobID,
		"total":    len(details),
		"queued":   queued,
		"rejected": len(details) - queued,
	})
}

// GET /v1/species/{id}: stored detail.
func (h *Handler) getSpecies(w http.ResponseWriter, r *http.Request) {
	id, ok := speciesID(w, r)
	if !ok {
		return
	}
	d, err := h.eng.Store().Get(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return
	}
	writeJSON(w, http.StatusOK, d)
}

// DELETE /v1/species/{id}: drop a stored detail.
func (h *Handler) deleteSpecies(w http.ResponseWriter, r *http.Request) {
	id, ok := speciesID(w, r)
	if !ok {
		return
	}
	if err := h.eng.Store().Delete(r.Context(), id); err != nil {
		writeErr(w, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// GET /v1/species/{id}/evolution: chain resolved from the stored detail.
func (h *Handler) getEvolution(w http.ResponseWriter, r *http.Request) {
	c, _, ok := h.storedChain(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, c)
}

// GET /v1/species/{id}/evolution.dot: staged layout as Graphviz DOT.
func (h *Handler) getEvolutionDOT(w http.ResponseWriter, r *http.Request) {
	c, id, ok := h.storedChain(w, r)
	if !ok {
		return
	}
	dot := render.ToDOT(c.Layout(), render.Options{Highlight: id, Types: true})
	w.Header().Set("Content-Type", "text/vnd.graphviz; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(dot))
}

// GET /v1/species/{id}/evolution.svg: staged layout rendered by Graphviz.
func (h *Handler) getEvolutionSVG(w http.ResponseWriter, r *http.Request) {
	c, id, ok := h.storedChain(w, r)
	if !ok {
		return
	}
	svg, err := render.RenderSVG(r.Context(), render.ToDOT(c.Layout(), render.Options{Highlight: id}))
	if err != nil {
		writeError(w, http.StatusInternalServerError, err.Error())
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(svg)
}

func (h *Handler) storedChain(w http.ResponseWriter, r *http.Request) (*dag.Chain, int, bool) {
	id, ok := speciesID(w, r)
	if !ok {
		return nil, 0, false
	}
	c, err := h.eng.ResolveStored(r.Context(), id)
	if err != nil {
		writeErr(w, err)
		return nil, 0, false
	}
	return c, id, true
}

// GET /v1/lexicon: active display tables.
func (h *Handler) getLexicon(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, h.eng.Describer().Lexicon())
}

// POST /v1/lexicon/reload: re-read the config file and swap the describer.
func (h *Handler) reloadLexicon(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.loader.Reload()
	if err != nil {
		writeError(w, http.StatusUnprocessableEntity, err.Error())
		return
	}
	lex := cfg.Describer()
	h.eng.SwapDescriber(lex)
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"reloaded":  true,
		"items":     len(lex.Lexicon().Items),
		"locations": len(lex.Lexicon().Locations),
		"types":     len(lex.Lexicon().Types),
	})
}

// GET /healthz: always 200 (liveness probe).
func (h *Handler) healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

// GET /readyz: 503 if the work queue is >80% full.
func (h *Handler) readyz(w http.ResponseWriter, r *http.Request) {
	util := h.eng.QueueUtilization()
	metrics.QueueUtilization.Set(util)
	if util > 0.8 {
		writeJSON(w, http.StatusServiceUnavailable, map[string]interface{}{
			"status":            "overloaded",
			"queue_utilization": util,
		})
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status":            "ready",
		"queue_utilization": util,
	})
}

func speciesID(w http.ResponseWriter, r *http.Request) (int, bool) {
	raw := chi.URLParam(r, "id")
	id, err := strconv.Atoi(raw)
	if err != nil || id <= 0 {
		writeError(w, http.StatusBadRequest, fmt.Sprintf("invalid species id %q", raw))
		return 0, false
	}
	return id, true
}

func decodeJSON(w http.ResponseWriter, r *http.Request, v interface{}) error {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return fmt.Errorf("invalid JSON: %s", err)
	}
	return nil
}
