// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package handlers contains HTTP request handlers for the Qarari API.

# Handler Types

Each handler is a struct with store and config dependencies:

  - DecisionHandler: Creating, listing, editing and deleting decisions
  - ResultsHandler: Reports, sharing and AI insights

	decisionHandler := handlers.NewDecisionHandler(store, cfg)
	resultsHandler := handlers.NewResultsHandler(store, cfg, gen)

# Decisions

	POST   /decisions        → CreateDecision (scores and saves)
	GET    /decisions        → ListDecisions (?limit=N for the recent list)
	DELETE /decisions        → ClearDecisions
	GET    /decisions/{id}   → GetDecision
	PUT    /decisions/{id}   → UpdateDecision (rescored, ID and date kept)
	DELETE /decisions/{id}   → DeleteDecision

Every decision response is a DecisionView: the stored decision with its
verdict, localized summary, rating matrix and recommendations.

# Results

	GET  /decisions/{id}/report   → GetReport (printable HTML)
	POST /decisions/{id}/share    → ShareDecision
	GET  /shared/{slug}           → GetShared
	POST /decisions/{id}/insights → GenerateInsights

Messages follow ?lang=, then Accept-Language, then the configured default.
Validation failures answer 400 with a machine-readable reason.
*/
package handlers
