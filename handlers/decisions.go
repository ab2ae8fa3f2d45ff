// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/danielhkuo/qarari/auth"
	"github.com/danielhkuo/qarari/cliparse"
	"github.com/danielhkuo/qarari/decisions"
	"github.com/danielhkuo/qarari/middleware"
	"github.com/danielhkuo/qarari/models"
	"github.com/danielhkuo/qarari/report"
	"github.com/danielhkuo/qarari/storage"
)

type DecisionHandler struct {
	store storage.Store
	cfg   cliparse.Config
	now   func() time.Time
}

func NewDecisionHandler(store storage.Store, cfg cliparse.Config) *DecisionHandler {
	return &DecisionHandler{store: store, cfg: cfg, now: time.Now}
}

// CreateDecision handles POST /decisions
func (h *DecisionHandler) CreateDecision(w http.ResponseWriter, r *http.Request) {
	tr := translator(r, h.cfg)

	var req models.CreateDecisionRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	d, err := decisions.Create(req, auth.NewDecisionID(), h.now())
	if err != nil {
		if !validationFailed(w, err, tr) {
			slog.Error("failed to build decision", "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, tr.T("errorSavingDecision"))
		}
		return
	}

	if err := h.store.Save(r.Context(), d); err != nil {
		slog.Error("failed to save decision", "decision_id", d.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, tr.T("errorSavingDecision"))
		return
	}

	slog.Info("decision created", "decision_id", d.ID, "options", len(d.Options), "criteria", len(d.Criteria))

	middleware.JSONResponse(w, http.StatusCreated, report.Build(d, tr))
}

// ListDecisions handles GET /decisions
// Without ?limit every decision is listed, newest first. limit=0 uses the
// recent-decisions default.
func (h *DecisionHandler) ListDecisions(w http.ResponseWriter, r *http.Request) {
	tr := translator(r, h.cfg)

	var list []models.Decision
	var err error
	if raw := r.URL.Query().Get("limit"); raw != "" {
		limit, convErr := strconv.Atoi(raw)
		if convErr != nil || limit < 0 {
			middleware.ErrorResponse(w, http.StatusBadRequest, "limit must be a non-negative integer")
			return
		}
		list, err = h.store.LoadRecent(r.Context(), limit)
	} else {
		list, err = h.store.LoadAll(r.Context())
	}
	if err != nil {
		slog.Error("failed to list decisions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, tr.T("errorLoadingDecision"))
		return
	}

	now := h.now()
	summaries := make([]models.DecisionSummary, 0, len(list))
	for _, d := range list {
		s := models.DecisionSummary{
			ID:              d.ID,
			Title:           d.Title,
			OptionCount:     len(d.Options),
			CriterionCount:  len(d.Criteria),
			CreatedAt:       d.CreatedAt,
			CreatedRelative: humanize.RelTime(d.CreatedAt, now, "ago", "from now"),
		}
		if winner, ok := d.Results.Winner(); ok {
			s.Winner = winner.Option.Name
		}
		summaries = append(summaries, s)
	}

	middleware.JSONResponse(w, http.StatusOK, models.ListDecisionsResponse{Decisions: summaries})
}

// GetDecision handles GET /decisions/{id}
func (h *DecisionHandler) GetDecision(w http.ResponseWriter, r *http.Request) {
	tr := translator(r, h.cfg)

	d, ok := loadDecision(w, r, h.store, tr)
	if !ok {
		return
	}

	middleware.JSONResponse(w, http.StatusOK, report.Build(d, tr))
}

// UpdateDecision handles PUT /decisions/{id}
// The decision keeps its ID and creation time; everything else is
// replaced and rescored.
func (h *DecisionHandler) UpdateDecision(w http.ResponseWriter, r *http.Request) {
	tr := translator(r, h.cfg)

	existing, ok := loadDecision(w, r, h.store, tr)
	if !ok {
		return
	}

	var req models.UpdateDecisionRequest
	if err := middleware.ParseJSONBody(w, r, &req); err != nil {
		middleware.ErrorResponse(w, http.StatusBadRequest, "Invalid JSON")
		return
	}

	d, err := decisions.Edit(existing, req)
	if err != nil {
		if !validationFailed(w, err, tr) {
			slog.Error("failed to rebuild decision", "decision_id", existing.ID, "error", err)
			middleware.ErrorResponse(w, http.StatusInternalServerError, tr.T("errorUpdatingDecision"))
		}
		return
	}

	err = h.store.Update(r.Context(), d)
	if errors.Is(err, storage.ErrNotFound) || errors.Is(err, storage.ErrEmpty) {
		middleware.ErrorResponse(w, http.StatusNotFound, tr.T("decisionNotFound"))
		return
	}
	if err != nil {
		slog.Error("failed to update decision", "decision_id", d.ID, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, tr.T("errorUpdatingDecision"))
		return
	}

	slog.Info("decision updated", "decision_id", d.ID)

	middleware.JSONResponse(w, http.StatusOK, report.Build(d, tr))
}

// DeleteDecision handles DELETE /decisions/{id}
func (h *DecisionHandler) DeleteDecision(w http.ResponseWriter, r *http.Request) {
	tr := translator(r, h.cfg)

	id := r.PathValue("id")
	if err := h.store.Delete(r.Context(), id); err != nil {
		slog.Error("failed to delete decision", "decision_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, tr.T("errorUpdatingDecision"))
		return
	}

	slog.Info("decision deleted", "decision_id", id)
	w.WriteHeader(http.StatusNoContent)
}

// ClearDecisions handles DELETE /decisions
func (h *DecisionHandler) ClearDecisions(w http.ResponseWriter, r *http.Request) {
	tr := translator(r, h.cfg)

	if err := h.store.ClearAll(r.Context()); err != nil {
		slog.Error("failed to clear decisions", "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, tr.T("errorClearingData"))
		return
	}

	slog.Info("all decisions cleared")
	middleware.JSONResponse(w, http.StatusOK, map[string]string{"message": tr.T("dataCleared")})
}
