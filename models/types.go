// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import (
	"maps"
	"time"
)

// StorageKey is the namespaced key the decision collection is stored under.
const StorageKey = "Qarari_decisions"

// Domain types

type Criterion struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// criterion_id -> rating (1 to 10)
type Option struct {
	ID      string         `json:"id" yaml:"id"`
	Name    string         `json:"name" yaml:"name"`
	Ratings map[string]int `json:"ratings" yaml:"ratings"`
}

// Clone returns a copy of the option that shares no state with o.
func (o Option) Clone() Option {
	c := o
	if o.Ratings != nil {
		c.Ratings = maps.Clone(o.Ratings)
	}
	return c
}

type ResultItem struct {
	Option         Option         `json:"option"`
	Score          int            `json:"score"`
	CriteriaScores map[string]int `json:"criteriaScores"`
}

type Results struct {
	OptionScores         []ResultItem `json:"optionScores"`
	HighestPossibleScore int          `json:"highestPossibleScore"`
}

// Winner returns the top-ranked item, or false when there is none.
func (r Results) Winner() (ResultItem, bool) {
	if len(r.OptionScores) == 0 {
		return ResultItem{}, false
	}
	return r.OptionScores[0], true
}

type Decision struct {
	ID          string      `json:"id"`
	Title       string      `json:"title"`
	Description string      `json:"description,omitempty"`
	Options     []Option    `json:"options"`
	Criteria    []Criterion `json:"criteria"`
	Results     Results     `json:"results"`
	CreatedAt   time.Time   `json:"createdAt"`
}

// DecisionDraft is what the creation and edit forms submit before
// validation and scoring.
type DecisionDraft struct {
	Title       string      `json:"title" yaml:"title"`
	Description string      `json:"description" yaml:"description"`
	Options     []Option    `json:"options" yaml:"options"`
	Criteria    []Criterion `json:"criteria" yaml:"criteria"`
}

// Request types

type CreateDecisionRequest = DecisionDraft

type UpdateDecisionRequest = DecisionDraft

// Response types

// VerdictView is the JSON shape of an outcome classification.
type VerdictView struct {
	Kind        string  `json:"kind"`
	Winner      string  `json:"winner,omitempty"`
	PointDiff   float64 `json:"point_diff,omitempty"`
	PercentDiff float64 `json:"percent_diff,omitempty"`
}

type MatrixRow struct {
	CriterionID string `json:"criterion_id"`
	Criterion   string `json:"criterion"`
	Ratings     []int  `json:"ratings"`
}

type MatrixTotal struct {
	OptionID string `json:"option_id"`
	Option   string `json:"option"`
	Score    int    `json:"score"`
	Percent  int    `json:"percent"`
}

type Matrix struct {
	Options []string      `json:"options"`
	Rows    []MatrixRow   `json:"rows"`
	Totals  []MatrixTotal `json:"totals"`
}

type Recommendation struct {
	CriterionID    string  `json:"criterion_id"`
	Criterion      string  `json:"criterion"`
	Value          int     `json:"value"`
	Max            int     `json:"max"`
	ImprovePercent float64 `json:"improve_percent"`
	Complete       bool    `json:"complete"`
}

type RecommendationSet struct {
	Option      string           `json:"option"`
	AllComplete bool             `json:"all_complete"`
	Items       []Recommendation `json:"items"`
}

type DecisionView struct {
	Decision        Decision           `json:"decision"`
	Verdict         VerdictView        `json:"verdict"`
	Summary         string             `json:"summary"`
	Matrix          Matrix             `json:"matrix"`
	Recommendations *RecommendationSet `json:"recommendations,omitempty"`
	Language        string             `json:"language"`
}

type DecisionSummary struct {
	ID              string    `json:"id"`
	Title           string    `json:"title"`
	Winner          string    `json:"winner,omitempty"`
	OptionCount     int       `json:"option_count"`
	CriterionCount  int       `json:"criterion_count"`
	CreatedAt       time.Time `json:"created_at"`
	CreatedRelative string    `json:"created_relative"`
}

type ListDecisionsResponse struct {
	Decisions []DecisionSummary `json:"decisions"`
}

type ShareDecisionResponse struct {
	ShareSlug string `json:"share_slug"`
	ShareURL  string `json:"share_url"`
	Message   string `json:"message"`
	Title     string `json:"title"`
}

type InsightsResponse struct {
	DecisionID string `json:"decision_id"`
	Insights   string `json:"insights"`
	Language   string `json:"language"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
	Reason  string `json:"reason,omitempty"`
}
