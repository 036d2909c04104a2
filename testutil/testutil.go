// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"database/sql"
	"net/http"
	"net/http/httptest"
	"net/url"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/danielhkuo/pollsite/cliparse"
	"github.com/danielhkuo/pollsite/db"
	"github.com/danielhkuo/pollsite/models"
)

// SetupTestDB creates a fresh SQLite database in the test's temp dir with
// the full schema. The database is closed when the test ends.
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	cfg := GetTestConfig(t)
	conn, err := db.Open(cfg)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}
	t.Cleanup(func() { conn.Close() })

	if err := db.CreateSchema(conn, cfg.DatabaseType); err != nil {
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// GetTestConfig returns a standard test configuration pointing at a
// database file inside the test's temp dir
func GetTestConfig(t *testing.T) cliparse.Config {
	t.Helper()
	return cliparse.Config{
		Port:         3318,
		DatabaseURL:  filepath.Join(t.TempDir(), "polls.db"),
		DatabaseType: cliparse.DatabaseSQLite,
		ListLimit:    cliparse.DefaultListLimit,
	}
}

// CreateTestQuestion inserts a question published `days` from now (negative
// for the past) with `choices` dummy choices named "0", "1", ...
func CreateTestQuestion(t *testing.T, conn *sql.DB, text string, days, choices int) models.QuestionWithChoices {
	t.Helper()

	pubDate := time.Now().Add(time.Duration(days) * 24 * time.Hour).UTC()
	return CreateTestQuestionAt(t, conn, text, pubDate, choices)
}

// CreateTestQuestionAt is CreateTestQuestion with an explicit publication date
func CreateTestQuestionAt(t *testing.T, conn *sql.DB, text string, pubDate time.Time, choices int) models.QuestionWithChoices {
	t.Helper()

	q := models.Question{
		QuestionText: text,
		PubDate:      time.UnixMilli(pubDate.UnixMilli()).UTC(),
	}
	err := conn.QueryRow(`
		INSERT INTO question (question_text, pub_date)
		VALUES ($1, $2)
		RETURNING id
	`, text, q.PubDate.UnixMilli()).Scan(&q.ID)
	if err != nil {
		t.Fatalf("Failed to create test question: %v", err)
	}

	result := models.QuestionWithChoices{Question: q, Choices: []models.Choice{}}
	for i := 0; i < choices; i++ {
		result.Choices = append(result.Choices, AddTestChoice(t, conn, q.ID, strconv.Itoa(i)))
	}

	return result
}

// AddTestChoice adds a choice with zero votes to a question
func AddTestChoice(t *testing.T, conn *sql.DB, questionID int64, text string) models.Choice {
	t.Helper()

	c := models.Choice{QuestionID: questionID, ChoiceText: text}
	err := conn.QueryRow(`
		INSERT INTO choice (question_id, choice_text, votes)
		VALUES ($1, $2, 0)
		RETURNING id
	`, questionID, text).Scan(&c.ID)
	if err != nil {
		t.Fatalf("Failed to create test choice: %v", err)
	}

	return c
}

// GetVotes reads the stored vote counter of a choice
func GetVotes(t *testing.T, conn *sql.DB, choiceID int64) int64 {
	t.Helper()

	var votes int64
	if err := conn.QueryRow(`SELECT votes FROM choice WHERE id = $1`, choiceID).Scan(&votes); err != nil {
		t.Fatalf("Failed to read votes: %v", err)
	}
	return votes
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, headers map[string]string) *http.Request {
	req := httptest.NewRequest(method, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	return req
}

// MakeFormRequest creates a POST request with an urlencoded form body
func MakeFormRequest(path string, form url.Values) *http.Request {
	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(form.Encode()))
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return req
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertContains checks that the response body contains text
func AssertContains(t *testing.T, w *httptest.ResponseRecorder, text string) {
	t.Helper()
	if !strings.Contains(w.Body.String(), text) {
		t.Errorf("Expected body to contain %q. Body: %s", text, w.Body.String())
	}
}
