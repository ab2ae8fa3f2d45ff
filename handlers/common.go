// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/danielhkuo/qarari/auth"
	"github.com/danielhkuo/qarari/cliparse"
	"github.com/danielhkuo/qarari/i18n"
	"github.com/danielhkuo/qarari/middleware"
	"github.com/danielhkuo/qarari/models"
	"github.com/danielhkuo/qarari/storage"
	"github.com/danielhkuo/qarari/validation"
)

func translator(r *http.Request, cfg cliparse.Config) *i18n.Translator {
	return i18n.New(middleware.Language(r, cfg.DefaultLanguage))
}

// loadDecision fetches the decision named by the {id} path value and
// writes the error response itself when it cannot.
func loadDecision(w http.ResponseWriter, r *http.Request, store storage.Store, tr *i18n.Translator) (models.Decision, bool) {
	id := r.PathValue("id")
	if id == "" {
		middleware.ErrorResponse(w, http.StatusBadRequest, "id is required")
		return models.Decision{}, false
	}
	// IDs are issued by NewDecisionID; anything else cannot be stored.
	if !auth.IsDecisionID(id) {
		middleware.ErrorResponse(w, http.StatusNotFound, tr.T("decisionNotFound"))
		return models.Decision{}, false
	}

	d, err := store.LoadByID(r.Context(), id)
	if errors.Is(err, storage.ErrNotFound) {
		middleware.ErrorResponse(w, http.StatusNotFound, tr.T("decisionNotFound"))
		return models.Decision{}, false
	}
	if err != nil {
		slog.Error("failed to load decision", "decision_id", id, "error", err)
		middleware.ErrorResponse(w, http.StatusInternalServerError, tr.T("errorLoadingDecision"))
		return models.Decision{}, false
	}
	return d, true
}

// validationFailed writes a 400 for draft validation errors and reports
// whether err was one.
func validationFailed(w http.ResponseWriter, err error, tr *i18n.Translator) bool {
	reason := validation.ReasonOf(err)
	if reason == "" {
		return false
	}
	middleware.ReasonResponse(w, http.StatusBadRequest, string(reason), tr.T(reason.MessageKey()))
	return true
}
