// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, and response types for the API.

# Domain Types

The decision data model, serialized with the same field names the
decision collection has always been stored with:

  - Criterion: id, name
  - Option: id, name, ratings (criterion id -> 1..10)
  - ResultItem: option snapshot, score, criteriaScores
  - Results: optionScores (ranked), highestPossibleScore
  - Decision: options, criteria and results bundled with title and createdAt
  - DecisionDraft: form input before validation and scoring

# Request Types

  - CreateDecisionRequest: a DecisionDraft
  - UpdateDecisionRequest: a DecisionDraft replacing options, criteria and results

# Response Types

  - DecisionView: decision plus verdict, summary, matrix and recommendations
  - ListDecisionsResponse: newest-first DecisionSummary list
  - ShareDecisionResponse: share_slug, share_url, message
  - InsightsResponse: generated commentary
  - ErrorResponse: error, message, reason

# Constants

The decision collection lives under a single key:

	StorageKey = "Qarari_decisions"
*/
package models
