// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// RecentWindow is how far back a publication date counts as recent
const RecentWindow = 24 * time.Hour

// Error messages shown to voters
const (
	MsgNoChoiceSelected = "No choice selected."
	MsgNoPolls          = "No polls available."
)

// Domain types

type Question struct {
	ID           int64     `json:"id"`
	QuestionText string    `json:"question_text"`
	PubDate      time.Time `json:"pub_date"`
}

// WasPublishedRecently reports whether the question went live within the
// last day. Questions scheduled for the future are never recent.
func (q Question) WasPublishedRecently(now time.Time) bool {
	return !q.PubDate.Before(now.Add(-RecentWindow)) && !q.PubDate.After(now)
}

// IsPublished reports whether the publication date has been reached
func (q Question) IsPublished(now time.Time) bool {
	return !q.PubDate.After(now)
}

func (q Question) String() string {
	return q.QuestionText
}

type Choice struct {
	ID         int64  `json:"id"`
	QuestionID int64  `json:"question_id"`
	ChoiceText string `json:"choice_text"`
	Votes      int64  `json:"votes"`
}

type QuestionWithChoices struct {
	Question Question `json:"question"`
	Choices  []Choice `json:"choices"`
}

// TotalVotes sums the vote counters of every choice
func (q QuestionWithChoices) TotalVotes() int64 {
	var total int64
	for _, c := range q.Choices {
		total += c.Votes
	}
	return total
}

// Page data passed to templates

type IndexPage struct {
	LatestQuestionList []Question
	Now                time.Time
}

type DetailPage struct {
	QuestionWithChoices
	ErrorMessage string
	Now          time.Time
}

type ResultsPage struct {
	QuestionWithChoices
	Now time.Time
}

type ErrorPage struct {
	Status  int
	Title   string
	Message string
}
