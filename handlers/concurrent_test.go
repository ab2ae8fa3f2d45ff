// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/danielhkuo/qarari/testutil"
)

// TestConcurrentCreates verifies that simultaneous creates through one
// store all end up in the collection.
func TestConcurrentCreates(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := NewDecisionHandler(store, testutil.GetTestConfig())

	const n = 20
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < n; i++ {
		wg.Add(1)
		go func(idx int) {
			defer wg.Done()

			req := testutil.MakeRequest("POST", "/decisions", testutil.TestDraft(fmt.Sprintf("Decision %d", idx)), nil)
			w := httptest.NewRecorder()

			handler.CreateDecision(w, req)

			if w.Code == http.StatusCreated {
				successCount.Add(1)
			}
		}(i)
	}

	wg.Wait()

	assert.Equal(t, int32(n), successCount.Load())

	all, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	assert.Len(t, all, n)
}

// TestConcurrentUpdatesAndDeletes mixes edits of one decision with deletes
// of others; the edited decision must survive and the deleted ones must not.
func TestConcurrentUpdatesAndDeletes(t *testing.T) {
	store := testutil.SetupTestStore(t)
	handler := NewDecisionHandler(store, testutil.GetTestConfig())

	target := testutil.CreateTestDecision(t, store, "Target", time.Now())
	var victims []string
	for i := 0; i < 10; i++ {
		victims = append(victims, testutil.CreateTestDecision(t, store, fmt.Sprintf("Victim %d", i), time.Now()).ID)
	}

	var wg sync.WaitGroup
	for i, id := range victims {
		wg.Add(2)
		go func(id string) {
			defer wg.Done()
			req := httptest.NewRequest("DELETE", "/decisions/"+id, nil)
			req.SetPathValue("id", id)
			handler.DeleteDecision(httptest.NewRecorder(), req)
		}(id)
		go func(idx int) {
			defer wg.Done()
			req := testutil.MakeRequest("PUT", "/decisions/"+target.ID, testutil.TestDraft(fmt.Sprintf("Target v%d", idx)), nil)
			req.SetPathValue("id", target.ID)
			handler.UpdateDecision(httptest.NewRecorder(), req)
		}(i)
	}
	wg.Wait()

	all, err := store.LoadAll(context.Background())
	require.NoError(t, err)
	require.Len(t, all, 1, "only the target should remain")
	assert.Equal(t, target.ID, all[0].ID)
}
