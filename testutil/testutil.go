// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/qarari/auth"
	"github.com/danielhkuo/qarari/cliparse"
	"github.com/danielhkuo/qarari/db"
	"github.com/danielhkuo/qarari/decisions"
	"github.com/danielhkuo/qarari/i18n"
	"github.com/danielhkuo/qarari/models"
	"github.com/danielhkuo/qarari/storage"
)

// SetupTestStore returns a decision store backed by a fresh SQLite file
// in the test's temp dir.
func SetupTestStore(t *testing.T) storage.Store {
	t.Helper()
	ctx := context.Background()

	conn, err := db.Open(ctx, db.SQLite, filepath.Join(t.TempDir(), "qarari_test.db"))
	require.NoError(t, err, "opening test database")
	t.Cleanup(func() { conn.Close() })

	require.NoError(t, db.CreateSchema(ctx, conn), "creating schema")

	return storage.NewBlobStore(db.NewKVStore(conn, db.SQLite))
}

// GetTestConfig returns a standard test configuration
func GetTestConfig() cliparse.Config {
	return cliparse.Config{
		Port:            3318,
		DatabaseType:    db.SQLite,
		DatabaseURL:     ":memory:",
		ShareSlugSalt:   "test-slug-salt",
		BaseURL:         "http://qarari.test",
		DefaultLanguage: i18n.English,
	}
}

// TestDraft returns a valid draft: Rome (7, 9) against Oslo (6, 5) on
// Price and Weather.
func TestDraft(title string) models.DecisionDraft {
	return models.DecisionDraft{
		Title: title,
		Options: []models.Option{
			{ID: "rome", Name: "Rome", Ratings: map[string]int{"price": 7, "weather": 9}},
			{ID: "oslo", Name: "Oslo", Ratings: map[string]int{"price": 6, "weather": 5}},
		},
		Criteria: []models.Criterion{
			{ID: "price", Name: "Price"},
			{ID: "weather", Name: "Weather"},
		},
	}
}

// CreateTestDecision scores TestDraft(title), saves it with the given
// creation time and returns it.
func CreateTestDecision(t *testing.T, store storage.Store, title string, createdAt time.Time) models.Decision {
	t.Helper()

	d, err := decisions.Create(TestDraft(title), auth.NewDecisionID(), createdAt)
	require.NoError(t, err, "building test decision")
	require.NoError(t, store.Save(context.Background(), d), "saving test decision")
	return d
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body any, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	assert.Equal(t, expected, w.Code, "body: %s", w.Body.String())
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(w.Body).Decode(v), "decoding JSON response")
}
