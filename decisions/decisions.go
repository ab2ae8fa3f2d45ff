// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package decisions turns submitted drafts into scored decisions.
//
// Every flow filters out blank options and criteria, validates what is
// left, and scores it. Only the valid rows are kept on the decision.
package decisions

import (
	"strings"
	"time"

	"github.com/danielhkuo/qarari/models"
	"github.com/danielhkuo/qarari/scoring"
	"github.com/danielhkuo/qarari/validation"
)

// Evaluation is a validated, scored draft that has not been saved.
type Evaluation struct {
	Title       string
	Description string
	Options     []models.Option
	Criteria    []models.Criterion
	Results     models.Results
}

// Evaluate validates the draft and scores its valid rows.
func Evaluate(draft models.DecisionDraft) (Evaluation, error) {
	if err := validation.ValidateDraft(draft); err != nil {
		return Evaluation{}, err
	}

	options := validation.ValidOptions(draft.Options)
	criteria := validation.ValidCriteria(draft.Criteria)

	kept := make([]models.Option, len(options))
	for i, o := range options {
		kept[i] = o.Clone()
	}

	return Evaluation{
		Title:       strings.TrimSpace(draft.Title),
		Description: strings.TrimSpace(draft.Description),
		Options:     kept,
		Criteria:    append([]models.Criterion(nil), criteria...),
		Results:     scoring.ComputeResults(options, criteria),
	}, nil
}

// Create builds a new decision from a draft.
func Create(draft models.DecisionDraft, id string, now time.Time) (models.Decision, error) {
	eval, err := Evaluate(draft)
	if err != nil {
		return models.Decision{}, err
	}
	return eval.decision(id, now.UTC()), nil
}

// Edit replaces the options, criteria and results of an existing decision.
// The decision keeps its ID and creation time.
func Edit(existing models.Decision, draft models.DecisionDraft) (models.Decision, error) {
	eval, err := Evaluate(draft)
	if err != nil {
		return models.Decision{}, err
	}
	return eval.decision(existing.ID, existing.CreatedAt), nil
}

func (e Evaluation) decision(id string, createdAt time.Time) models.Decision {
	return models.Decision{
		ID:          id,
		Title:       e.Title,
		Description: e.Description,
		Options:     e.Options,
		Criteria:    e.Criteria,
		Results:     e.Results,
		CreatedAt:   createdAt,
	}
}
