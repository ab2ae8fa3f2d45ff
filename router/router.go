// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"net/http"

	"github.com/danielhkuo/qarari/cliparse"
	"github.com/danielhkuo/qarari/handlers"
	"github.com/danielhkuo/qarari/insights"
	"github.com/danielhkuo/qarari/middleware"
	"github.com/danielhkuo/qarari/storage"
)

func NewRouter(store storage.Store, cfg cliparse.Config, gen insights.Generator) *http.ServeMux {
	mux := http.NewServeMux()

	// Initialize handlers
	decisionHandler := handlers.NewDecisionHandler(store, cfg)
	resultsHandler := handlers.NewResultsHandler(store, cfg, gen)

	// Health check
	mux.HandleFunc("GET /health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("OK"))
	})

	// Decision collection
	mux.HandleFunc("POST /decisions", middleware.WithLogging(decisionHandler.CreateDecision))
	mux.HandleFunc("GET /decisions", middleware.WithLogging(decisionHandler.ListDecisions))
	mux.HandleFunc("DELETE /decisions", middleware.WithLogging(decisionHandler.ClearDecisions))

	// Single decision
	mux.HandleFunc("GET /decisions/{id}", middleware.WithLogging(decisionHandler.GetDecision))
	mux.HandleFunc("PUT /decisions/{id}", middleware.WithLogging(decisionHandler.UpdateDecision))
	mux.HandleFunc("DELETE /decisions/{id}", middleware.WithLogging(decisionHandler.DeleteDecision))

	// Results, sharing and insights
	mux.HandleFunc("GET /decisions/{id}/report", middleware.WithLogging(resultsHandler.GetReport))
	mux.HandleFunc("POST /decisions/{id}/share", middleware.WithLogging(resultsHandler.ShareDecision))
	mux.HandleFunc("GET /shared/{slug}", middleware.WithLogging(resultsHandler.GetShared))
	mux.HandleFunc("POST /decisions/{id}/insights", middleware.WithLogging(resultsHandler.GenerateInsights))

	// Root endpoint
	mux.HandleFunc("GET /", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("qarari API v1"))
	})

	return mux
}
