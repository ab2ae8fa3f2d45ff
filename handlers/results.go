// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/qarari/auth"
	"github.com/danielhkuo/qarari/cliparse"
	"github.com/danielhkuo/qarari/insights"
	"github.com/danielhkuo/qarari/middleware"
	"github.com/danielhkuo/qarari/models"
	"github.com/danielhkuo/qarari/report"
	"github.com/danielhkuo/qarari/storage"
)

type ResultsHandler struct {
	store    storage.Store
	cfg      cliparse.Config
	insights insights.Generator
}

// NewResultsHandler creates the handler. gen may be nil, in which case
// insights are reported as unavailable.
func NewResultsHandler(store storage.Store, cfg cliparse.Config, gen insights.Generator) *ResultsHandler {
	return &ResultsHandler{store: store, cfg: cfg, insights: gen}
}

// GetReport handles GET /decisions/{id}/report
// Returns a printable HTML page.
func (h *ResultsHandler) GetReport(w http.ResponseWriter, r *http.Request) {
	tr := translator(r, h.cfg)

	d, ok := loadDecision(w, r, h.store, tr)
	if !ok {
		return
	}

	var buf bytes.Buffer
	if err := report.RenderHTML(&buf, report.Build(d, tr), tr); err != nil {
		slog.Error("failed to render report", "decision_id", d.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, tr.T("errorLoadingDecision"))
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(buf.Bytes())
}

// ShareDecision handles POST /decisions/{id}/share
func (h *ResultsHandler) ShareDecision(w http.ResponseWriter, r *http.Request) {
	tr := translator(r, h.cfg)

	d, ok := loadDecision(w, r, h.store, tr)
	if !ok {
		return
	}

	slug := auth.ShareSlug(d.ID, h.cfg.ShareSlugSalt)
	url := h.cfg.BaseURL + "/shared/" + slug

	slog.Info("decision shared", "decision_id", d.ID, "share_slug", slug)

	middleware.JSONResponse(w, http.StatusOK, models.ShareDecisionResponse{
		ShareSlug: slug,
		ShareURL:  url,
		Message:   report.ShareMessage(d, url, tr),
		Title:     tr.T("shareTitle"),
	})
}

// GetShared handles GET /shared/{slug}
// Slugs are derived from decision IDs, so the lookup scans the collection.
func (h *ResultsHandler) GetShared(w http.ResponseWriter, r *http.Request) {
	tr := translator(r, h.cfg)

	slug := r.PathValue("slug")
	if slug == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "slug is required")
		return
	}

	all, err := h.store.LoadAll(r.Context())
	if err != nil {
		slog.Error("failed to load decisions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, tr.T("errorLoadingDecision"))
		return
	}

	for _, d := range all {
		if auth.MatchShareSlug(d.ID, slug, h.cfg.ShareSlugSalt) {
			middleware.JSONResponse(w, http.StatusOK, report.Build(d, tr))
			return
		}
	}

	middleware.ErrorResponse(w, http.StatusNotFound, tr.T("decisionNotFound"))
}

// GenerateInsights handles POST /decisions/{id}/insights
// Returns 503 when no generator is configured or the generator fails.
func (h *ResultsHandler) GenerateInsights(w http.ResponseWriter, r *http.Request) {
	tr := translator(r, h.cfg)

	d, ok := loadDecision(w, r, h.store, tr)
	if !ok {
		return
	}

	if h.insights == nil {
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, tr.T("insightsUnavailable"))
		return
	}

	text, err := h.insights.Generate(r.Context(), d, tr.Language())
	if err != nil {
		if !errors.Is(err, insights.ErrUnavailable) {
			slog.Error("failed to generate insights", "decision_id", d.ID, "error", err)
		}
		middleware.ErrorResponse(w, http.StatusServiceUnavailable, tr.T("insightsUnavailable"))
		return
	}

	middleware.JSONResponse(w, http.StatusOK, models.InsightsResponse{
		DecisionID: d.ID,
		Insights:   text,
		Language:   string(tr.Language()),
	})
}
