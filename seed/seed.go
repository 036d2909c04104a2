// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Package seed loads questions from a JSON fixture file into the store.
//
// The file is a list of questions, each published `days` from load time
// (negative for the past):
//
//	[
//	  {"question": "What's up?", "days": -1, "choices": ["Not much", "The sky"]}
//	]
package seed

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/danielhkuo/pollsite/store"
)

type Question struct {
	Question string   `json:"question"`
	Days     int      `json:"days"`
	Choices  []string `json:"choices"`
}

// LoadFile reads a fixture file and inserts its questions
func LoadFile(ctx context.Context, st *store.Store, path string, now time.Time) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("failed to read seed file: %w", err)
	}

	var questions []Question
	if err := json.Unmarshal(data, &questions); err != nil {
		return 0, fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	return Load(ctx, st, questions, now)
}

// Load inserts questions and their choices, returning how many questions
// were created. Each question is stored together with its choices or not at
// all; loading stops at the first failure and earlier questions stay.
func Load(ctx context.Context, st *store.Store, questions []Question, now time.Time) (int, error) {
	for i, sq := range questions {
		pubDate := now.Add(time.Duration(sq.Days) * 24 * time.Hour)

		q, err := st.CreateQuestionWithChoices(ctx, sq.Question, pubDate, sq.Choices)
		if err != nil {
			return i, fmt.Errorf("seed question %d: %w", i, err)
		}

		slog.Info("seeded question", "question_id", q.Question.ID, "choices", len(q.Choices))
	}

	return len(questions), nil
}
