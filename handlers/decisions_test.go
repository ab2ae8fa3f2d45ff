// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/qarari/models"
	"github.com/danielhkuo/qarari/storage"
	"github.com/danielhkuo/qarari/testutil"
)

// countingStore counts LoadByID calls on top of a real store.
type countingStore struct {
	storage.Store
	loads atomic.Int32
}

func (s *countingStore) LoadByID(ctx context.Context, id string) (models.Decision, error) {
	s.loads.Add(1)
	return s.Store.LoadByID(ctx, id)
}

func TestCreateDecision(t *testing.T) {
	store := testutil.SetupTestStore(t)
	cfg := testutil.GetTestConfig()
	handler := NewDecisionHandler(store, cfg)

	draft := testutil.TestDraft("  Where to go?  ")
	draft.Options = append(draft.Options, models.Option{ID: "blank", Name: "   "})

	req := testutil.MakeRequest("POST", "/decisions", draft, nil)
	w := httptest.NewRecorder()

	handler.CreateDecision(w, req)

	testutil.AssertStatus(t, w, http.StatusCreated)

	var view models.DecisionView
	testutil.AssertJSON(t, w, &view)

	assert.NotEmpty(t, view.Decision.ID)
	assert.Equal(t, "Where to go?", view.Decision.Title)
	assert.Len(t, view.Decision.Options, 2, "blank option dropped")
	assert.Equal(t, 20, view.Decision.Results.HighestPossibleScore)
	assert.Equal(t, "decisive_win", view.Verdict.Kind)
	assert.Equal(t, "Rome", view.Verdict.Winner)
	assert.Equal(t, "Rome is decisively better by 5.0 points", view.Summary)

	saved, err := store.LoadByID(context.Background(), view.Decision.ID)
	require.NoError(t, err)
	assert.Equal(t, 16, saved.Results.OptionScores[0].Score)
}

func TestCreateDecision_Validation(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := NewDecisionHandler(store, testutil.GetTestConfig())

	oneOption := testutil.TestDraft("Trip")
	oneOption.Options = oneOption.Options[:1]

	noCriteria := testutil.TestDraft("Trip")
	noCriteria.Criteria = []models.Criterion{{ID: "x", Name: " "}}

	noIDs := testutil.TestDraft("Trip")
	noIDs.Options[0].ID, noIDs.Options[1].ID = "", ""

	unrated := testutil.TestDraft("Trip")
	delete(unrated.Options[1].Ratings, "weather")

	outOfRange := testutil.TestDraft("Trip")
	outOfRange.Options[0].Ratings["price"] = 11

	testCases := []struct {
		name    string
		draft   models.DecisionDraft
		reason  string
		message string
	}{
		{"missing title", testutil.TestDraft("   "), "missing_title", "Please enter a title for your decision"},
		{"one option", oneOption, "too_few_options", "Please enter at least two options"},
		{"no criteria", noCriteria, "too_few_criteria", "Please enter at least one criterion"},
		{"options without ids", noIDs, "ids_not_unique", "Every option and criterion needs its own unique ID"},
		{"unrated", unrated, "incomplete_ratings", "Please rate all options for each criterion"},
		{"out of range", outOfRange, "rating_out_of_range", "Every rating must be between 1 and 10"},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			req := testutil.MakeRequest("POST", "/decisions", tc.draft, nil)
			w := httptest.NewRecorder()

			handler.CreateDecision(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)

			var resp models.ErrorResponse
			testutil.AssertJSON(t, w, &resp)
			assert.Equal(t, tc.reason, resp.Reason)
			assert.Equal(t, tc.message, resp.Message)
		})
	}

	all, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all, "nothing saved")
}

func TestCreateDecision_LocalizedValidation(t *testing.T) {
	handler := NewDecisionHandler(testutil.SetupTestStore(t), testutil.GetTestConfig())

	req := testutil.MakeRequest("POST", "/decisions?lang=ar", testutil.TestDraft(""), nil)
	w := httptest.NewRecorder()

	handler.CreateDecision(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
	var resp models.ErrorResponse
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, "الرجاء إدخال عنوان للقرار", resp.Message)
}

func TestCreateDecision_InvalidJSON(t *testing.T) {
	handler := NewDecisionHandler(testutil.SetupTestStore(t), testutil.GetTestConfig())

	req := httptest.NewRequest("POST", "/decisions", nil)
	w := httptest.NewRecorder()

	handler.CreateDecision(w, req)

	testutil.AssertStatus(t, w, http.StatusBadRequest)
}

func TestListDecisions(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := NewDecisionHandler(store, testutil.GetTestConfig())

	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	handler.now = func() time.Time { return now }

	testutil.CreateTestDecision(t, store, "Oldest", now.Add(-72*time.Hour))
	testutil.CreateTestDecision(t, store, "Newest", now.Add(-time.Minute))
	testutil.CreateTestDecision(t, store, "Middle", now.Add(-3*time.Hour))
	testutil.CreateTestDecision(t, store, "Older", now.Add(-48*time.Hour))

	t.Run("all", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/decisions", nil)
		w := httptest.NewRecorder()

		handler.ListDecisions(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.ListDecisionsResponse
		testutil.AssertJSON(t, w, &resp)

		titles := []string{}
		for _, s := range resp.Decisions {
			titles = append(titles, s.Title)
		}
		require.Equal(t, []string{"Newest", "Middle", "Older", "Oldest"}, titles)

		first := resp.Decisions[0]
		assert.Equal(t, "Rome", first.Winner)
		assert.Equal(t, 2, first.OptionCount)
		assert.Equal(t, 2, first.CriterionCount)
		assert.Equal(t, "1 minute ago", first.CreatedRelative)
		assert.Equal(t, "3 hours ago", resp.Decisions[1].CreatedRelative)
	})

	t.Run("limit", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/decisions?limit=2", nil)
		w := httptest.NewRecorder()

		handler.ListDecisions(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var resp models.ListDecisionsResponse
		testutil.AssertJSON(t, w, &resp)
		require.Len(t, resp.Decisions, 2)
		assert.Equal(t, "Newest", resp.Decisions[0].Title)
	})

	t.Run("zero limit uses recent default", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/decisions?limit=0", nil)
		w := httptest.NewRecorder()

		handler.ListDecisions(w, req)

		var resp models.ListDecisionsResponse
		testutil.AssertJSON(t, w, &resp)
		assert.Len(t, resp.Decisions, 3)
	})

	t.Run("bad limit", func(t *testing.T) {
		for _, q := range []string{"abc", "-1"} {
			req := httptest.NewRequest("GET", "/decisions?limit="+q, nil)
			w := httptest.NewRecorder()

			handler.ListDecisions(w, req)

			testutil.AssertStatus(t, w, http.StatusBadRequest)
		}
	})
}

func TestListDecisions_Empty(t *testing.T) {
	handler := NewDecisionHandler(testutil.SetupTestStore(t), testutil.GetTestConfig())

	req := httptest.NewRequest("GET", "/decisions", nil)
	w := httptest.NewRecorder()

	handler.ListDecisions(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	assert.Equal(t, "{\"decisions\":[]}\n", w.Body.String())
}

func TestGetDecision(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := NewDecisionHandler(store, testutil.GetTestConfig())
	d := testutil.CreateTestDecision(t, store, "Trip", time.Now())

	t.Run("found", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/decisions/"+d.ID, nil)
		req.SetPathValue("id", d.ID)
		w := httptest.NewRecorder()

		handler.GetDecision(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var view models.DecisionView
		testutil.AssertJSON(t, w, &view)

		assert.Equal(t, d.ID, view.Decision.ID)
		assert.Len(t, view.Matrix.Rows, 2)
		require.Len(t, view.Matrix.Totals, 2)
		assert.Equal(t, "Rome", view.Matrix.Totals[0].Option)
		assert.Equal(t, 80, view.Matrix.Totals[0].Percent)
		require.NotNil(t, view.Recommendations)
		assert.Equal(t, "Rome", view.Recommendations.Option)
		assert.Equal(t, "en", view.Language)
	})

	t.Run("accept-language", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/decisions/"+d.ID, nil)
		req.SetPathValue("id", d.ID)
		req.Header.Set("Accept-Language", "ar-SA,ar;q=0.9")
		w := httptest.NewRecorder()

		handler.GetDecision(w, req)

		var view models.DecisionView
		testutil.AssertJSON(t, w, &view)
		assert.Equal(t, "ar", view.Language)
	})

	t.Run("not found", func(t *testing.T) {
		id := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"
		req := httptest.NewRequest("GET", "/decisions/"+id, nil)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()

		handler.GetDecision(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
		var resp models.ErrorResponse
		testutil.AssertJSON(t, w, &resp)
		assert.Equal(t, "Decision not found", resp.Message)
	})
}

func TestGetDecision_MalformedIDSkipsStore(t *testing.T) {
	store := &countingStore{Store: testutil.SetupTestStore(t)}
	handler := NewDecisionHandler(store, testutil.GetTestConfig())

	for _, id := range []string{"missing", "../etc", "6ba7b810-9dad"} {
		req := httptest.NewRequest("GET", "/decisions/x", nil)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()

		handler.GetDecision(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	}
	assert.Equal(t, int32(0), store.loads.Load())

	d := testutil.CreateTestDecision(t, store, "Trip", time.Now())
	req := httptest.NewRequest("GET", "/decisions/"+d.ID, nil)
	req.SetPathValue("id", d.ID)
	w := httptest.NewRecorder()

	handler.GetDecision(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	assert.Equal(t, int32(1), store.loads.Load())
}

func TestUpdateDecision(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := NewDecisionHandler(store, testutil.GetTestConfig())
	created := time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	d := testutil.CreateTestDecision(t, store, "Trip", created)

	t.Run("rescored", func(t *testing.T) {
		draft := testutil.TestDraft("Trip, revised")
		draft.Options[1].Ratings = map[string]int{"price": 10, "weather": 10}

		req := testutil.MakeRequest("PUT", "/decisions/"+d.ID, draft, nil)
		req.SetPathValue("id", d.ID)
		w := httptest.NewRecorder()

		handler.UpdateDecision(w, req)

		testutil.AssertStatus(t, w, http.StatusOK)
		var view models.DecisionView
		testutil.AssertJSON(t, w, &view)

		assert.Equal(t, d.ID, view.Decision.ID, "ID kept")
		assert.True(t, view.Decision.CreatedAt.Equal(created), "creation time kept, got %v", view.Decision.CreatedAt)
		assert.Equal(t, "Oslo", view.Verdict.Winner)

		saved, err := store.LoadByID(context.Background(), d.ID)
		require.NoError(t, err)
		assert.Equal(t, "Trip, revised", saved.Title)
	})

	t.Run("invalid draft keeps stored decision", func(t *testing.T) {
		req := testutil.MakeRequest("PUT", "/decisions/"+d.ID, testutil.TestDraft(""), nil)
		req.SetPathValue("id", d.ID)
		w := httptest.NewRecorder()

		handler.UpdateDecision(w, req)

		testutil.AssertStatus(t, w, http.StatusBadRequest)
		saved, err := store.LoadByID(context.Background(), d.ID)
		require.NoError(t, err)
		assert.Equal(t, "Trip, revised", saved.Title)
	})

	t.Run("not found", func(t *testing.T) {
		req := testutil.MakeRequest("PUT", "/decisions/missing", testutil.TestDraft("x"), nil)
		req.SetPathValue("id", "missing")
		w := httptest.NewRecorder()

		handler.UpdateDecision(w, req)

		testutil.AssertStatus(t, w, http.StatusNotFound)
	})
}

func TestDeleteDecision(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := NewDecisionHandler(store, testutil.GetTestConfig())
	keep := testutil.CreateTestDecision(t, store, "Keep", time.Now())
	drop := testutil.CreateTestDecision(t, store, "Drop", time.Now())

	for _, id := range []string{drop.ID, "unknown"} {
		req := httptest.NewRequest("DELETE", "/decisions/"+id, nil)
		req.SetPathValue("id", id)
		w := httptest.NewRecorder()

		handler.DeleteDecision(w, req)

		testutil.AssertStatus(t, w, http.StatusNoContent)
	}

	all, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1)
	assert.Equal(t, keep.ID, all[0].ID)
}

func TestClearDecisions(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := NewDecisionHandler(store, testutil.GetTestConfig())
	testutil.CreateTestDecision(t, store, "One", time.Now())
	testutil.CreateTestDecision(t, store, "Two", time.Now())

	req := httptest.NewRequest("DELETE", "/decisions", nil)
	w := httptest.NewRecorder()

	handler.ClearDecisions(w, req)

	testutil.AssertStatus(t, w, http.StatusOK)
	var resp map[string]string
	testutil.AssertJSON(t, w, &resp)
	assert.Equal(t, "All decision data has been cleared", resp["message"])

	all, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Empty(t, all)
}
