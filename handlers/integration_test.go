// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/qarari/models"
	"github.com/danielhkuo/qarari/testutil"
)

// TestFullDecisionWorkflow tests the complete end-to-end workflow:
// 1. Create a decision
// 2. See it in the recent list
// 3. Edit it
// 4. Share it and open the shared link
// 5. Print the report
// 6. Delete it
func TestFullDecisionWorkflow(t *testing.T) {
	store := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	decisionHandler := NewDecisionHandler(store, cfg)
	resultsHandler := NewResultsHandler(store, cfg, nil)

	// Step 1: Create a decision
	draft := models.DecisionDraft{
		Title:       "Which laptop?",
		Description: "Work machine",
		Options: []models.Option{
			{ID: "o1", Name: "Alpha", Ratings: map[string]int{"c1": 7, "c2": 9}},
			{ID: "o2", Name: "Beta", Ratings: map[string]int{"c1": 6, "c2": 8}},
			{ID: "o3", Name: "Gamma", Ratings: map[string]int{"c1": 5, "c2": 6}},
		},
		Criteria: []models.Criterion{
			{ID: "c1", Name: "Price"},
			{ID: "c2", Name: "Battery"},
		},
	}
	w := httptest.NewRecorder()
	decisionHandler.CreateDecision(w, testutil.MakeRequest("POST", "/decisions", draft, nil))
	require.Equal(t, http.StatusCreated, w.Code, "Step 1 - create: %s", w.Body.String())

	var created models.DecisionView
	testutil.AssertJSON(t, w, &created)
	id := created.Decision.ID

	// Alpha 16, Beta 14: 2 points, 14.3% -> moderate
	require.Equal(t, "moderate_win", created.Verdict.Kind, "Step 1")
	assert.Equal(t, "Alpha is better by 2.0 points (14.3%)", created.Summary)
	t.Logf("Step 1 - Created decision: %s", id)

	// Step 2: Recent list
	w = httptest.NewRecorder()
	decisionHandler.ListDecisions(w, httptest.NewRequest("GET", "/decisions?limit=3", nil))
	var list models.ListDecisionsResponse
	testutil.AssertJSON(t, w, &list)
	require.Len(t, list.Decisions, 1, "Step 2")
	assert.Equal(t, id, list.Decisions[0].ID)
	assert.Equal(t, "Alpha", list.Decisions[0].Winner)

	// Step 3: Make Beta tie Alpha and Gamma trail
	draft.Options[1].Ratings = map[string]int{"c1": 7, "c2": 9}
	req := testutil.MakeRequest("PUT", "/decisions/"+id, draft, nil)
	req.SetPathValue("id", id)
	w = httptest.NewRecorder()
	decisionHandler.UpdateDecision(w, req)
	require.Equal(t, http.StatusOK, w.Code, "Step 3 - update: %s", w.Body.String())
	var updated models.DecisionView
	testutil.AssertJSON(t, w, &updated)
	assert.Equal(t, "some_tied", updated.Verdict.Kind)
	assert.Equal(t, "Alpha is tied in rank with other options.", updated.Summary)

	// Step 4: Share and open
	req = httptest.NewRequest("POST", "/decisions/"+id+"/share", nil)
	req.SetPathValue("id", id)
	w = httptest.NewRecorder()
	resultsHandler.ShareDecision(w, req)
	var share models.ShareDecisionResponse
	testutil.AssertJSON(t, w, &share)
	require.NotEmpty(t, share.ShareSlug, "Step 4")

	req = httptest.NewRequest("GET", "/shared/"+share.ShareSlug, nil)
	req.SetPathValue("slug", share.ShareSlug)
	w = httptest.NewRecorder()
	resultsHandler.GetShared(w, req)
	var shared models.DecisionView
	testutil.AssertJSON(t, w, &shared)
	assert.Equal(t, id, shared.Decision.ID)
	assert.Equal(t, "some_tied", shared.Verdict.Kind)

	// Step 5: Report
	req = httptest.NewRequest("GET", "/decisions/"+id+"/report", nil)
	req.SetPathValue("id", id)
	w = httptest.NewRecorder()
	resultsHandler.GetReport(w, req)
	testutil.AssertStatus(t, w, http.StatusOK)
	assert.Contains(t, w.Body.String(), "Which laptop?")

	// Step 6: Delete
	req = httptest.NewRequest("DELETE", "/decisions/"+id, nil)
	req.SetPathValue("id", id)
	w = httptest.NewRecorder()
	decisionHandler.DeleteDecision(w, req)
	testutil.AssertStatus(t, w, http.StatusNoContent)

	req = httptest.NewRequest("GET", "/decisions/"+id, nil)
	req.SetPathValue("id", id)
	w = httptest.NewRecorder()
	decisionHandler.GetDecision(w, req)
	testutil.AssertStatus(t, w, http.StatusNotFound)
}

// TestAllTiedDecision covers options that share one score.
func TestAllTiedDecision(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := NewDecisionHandler(store, testutil.GetTestConfig())

	draft := testutil.TestDraft("Coin flip")
	draft.Options[1].Ratings = map[string]int{"price": 7, "weather": 9}

	w := httptest.NewRecorder()
	handler.CreateDecision(w, testutil.MakeRequest("POST", "/decisions", draft, nil))
	testutil.AssertStatus(t, w, http.StatusCreated)

	var view models.DecisionView
	testutil.AssertJSON(t, w, &view)
	assert.Equal(t, "all_tied", view.Verdict.Kind)
	assert.Empty(t, view.Verdict.Winner)
	assert.Equal(t, "All options are equal.", view.Summary)
	// Ties keep input order.
	assert.Equal(t, "Rome", view.Decision.Results.OptionScores[0].Option.Name)
}
