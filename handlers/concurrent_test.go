// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/danielhkuo/pollsite/testutil"
)

// TestConcurrentVotesSameChoice verifies that simultaneous votes for the same
// choice are all counted (no lost updates)
func TestConcurrentVotesSameChoice(t *testing.T) {
	handler, db := setupHandler(t)

	q := testutil.CreateTestQuestion(t, db, "Race question", -1, 3)
	target := q.Choices[2]

	numVoters := 25
	var successCount atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < numVoters; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			form := url.Values{"choice": {idString(target.ID)}}
			req := testutil.MakeFormRequest("/"+idString(q.Question.ID)+"/vote/", form)
			req.SetPathValue("id", idString(q.Question.ID))
			w := httptest.NewRecorder()

			handler.Vote(w, req)

			if w.Code == http.StatusFound {
				successCount.Add(1)
			}
		}()
	}

	wg.Wait()

	if int(successCount.Load()) != numVoters {
		t.Errorf("Expected %d successful votes, got %d", numVoters, successCount.Load())
	}

	if got := testutil.GetVotes(t, db, target.ID); got != int64(numVoters) {
		t.Errorf("Expected %d votes stored, got %d (lost updates)", numVoters, got)
	}

	// Other choices are untouched
	for _, c := range q.Choices[:2] {
		if got := testutil.GetVotes(t, db, c.ID); got != 0 {
			t.Errorf("Choice %d should have 0 votes, got %d", c.ID, got)
		}
	}
}

// TestConcurrentVotesMixedChoices spreads concurrent votes across choices,
// including invalid submissions that must not change any counter
func TestConcurrentVotesMixedChoices(t *testing.T) {
	handler, db := setupHandler(t)

	q := testutil.CreateTestQuestion(t, db, "Mixed question", -1, 2)

	rounds := 10
	var redirects, rejections atomic.Int32
	var wg sync.WaitGroup

	for i := 0; i < rounds; i++ {
		for _, choice := range []string{idString(q.Choices[0].ID), idString(q.Choices[1].ID), "99999"} {
			wg.Add(1)
			go func(choice string) {
				defer wg.Done()

				req := testutil.MakeFormRequest("/"+idString(q.Question.ID)+"/vote/", url.Values{"choice": {choice}})
				req.SetPathValue("id", idString(q.Question.ID))
				w := httptest.NewRecorder()

				handler.Vote(w, req)

				switch w.Code {
				case http.StatusFound:
					redirects.Add(1)
				case http.StatusBadRequest:
					rejections.Add(1)
				}
			}(choice)
		}
	}

	wg.Wait()

	if int(redirects.Load()) != 2*rounds {
		t.Errorf("Expected %d committed votes, got %d", 2*rounds, redirects.Load())
	}
	if int(rejections.Load()) != rounds {
		t.Errorf("Expected %d rejected votes, got %d", rounds, rejections.Load())
	}

	for _, c := range q.Choices {
		if got := testutil.GetVotes(t, db, c.ID); got != int64(rounds) {
			t.Errorf("Choice %d: expected %d votes, got %d", c.ID, rounds, got)
		}
	}
}
