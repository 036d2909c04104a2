// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package handlers

import (
	"context"
	"database/sql"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/danielhkuo/pollsite/cliparse"
	"github.com/danielhkuo/pollsite/models"
	"github.com/danielhkuo/pollsite/store"
	"github.com/danielhkuo/pollsite/templates"
)

type QuestionHandler struct {
	store *store.Store
	cfg   cliparse.Config
	now   func() time.Time
}

func NewQuestionHandler(db *sql.DB, cfg cliparse.Config) *QuestionHandler {
	return &QuestionHandler{store: store.New(db), cfg: cfg, now: time.Now}
}

// Index handles GET /
func (h *QuestionHandler) Index(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.index(r.Context()))
}

// Detail handles GET /{id}/
func (h *QuestionHandler) Detail(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.detail(r.Context(), r.PathValue("id")))
}

// Results handles GET /{id}/results/
func (h *QuestionHandler) Results(w http.ResponseWriter, r *http.Request) {
	respond(w, r, h.results(r.Context(), r.PathValue("id")))
}

// Vote handles POST /{id}/vote/
func (h *QuestionHandler) Vote(w http.ResponseWriter, r *http.Request) {
	var choice string
	if err := r.ParseForm(); err == nil {
		choice = r.PostForm.Get("choice")
	}
	respond(w, r, h.vote(r.Context(), r.PathValue("id"), choice))
}

func (h *QuestionHandler) index(ctx context.Context) Result {
	now := h.now()

	questions, err := h.store.LatestPublished(ctx, now, h.listLimit())
	if err != nil {
		return failed(err)
	}

	return found(templates.Index, models.IndexPage{LatestQuestionList: questions, Now: now})
}

func (h *QuestionHandler) detail(ctx context.Context, rawID string) Result {
	now := h.now()

	q, res, ok := h.votable(ctx, rawID, now)
	if !ok {
		return res
	}

	return found(templates.Detail, models.DetailPage{QuestionWithChoices: q, Now: now})
}

func (h *QuestionHandler) results(ctx context.Context, rawID string) Result {
	now := h.now()

	q, res, ok := h.votable(ctx, rawID, now)
	if !ok {
		return res
	}

	return found(templates.Results, models.ResultsPage{QuestionWithChoices: q, Now: now})
}

// votable loads a question that may be shown, or the Result to return instead
func (h *QuestionHandler) votable(ctx context.Context, rawID string, now time.Time) (models.QuestionWithChoices, Result, bool) {
	id, ok := parseID(rawID)
	if !ok {
		return models.QuestionWithChoices{}, notFound(), false
	}

	q, err := h.store.VotableQuestion(ctx, id, now)
	if errors.Is(err, store.ErrQuestionNotFound) {
		return models.QuestionWithChoices{}, notFound(), false
	}
	if err != nil {
		return models.QuestionWithChoices{}, failed(err), false
	}

	return q, Result{}, true
}

// vote counts one vote for rawChoice. Any existing question accepts vote
// attempts regardless of publication; an unknown or missing choice is
// rejected with a 400 and nothing is stored.
func (h *QuestionHandler) vote(ctx context.Context, rawID, rawChoice string) Result {
	id, ok := parseID(rawID)
	if !ok {
		return notFound()
	}

	q, err := h.store.Question(ctx, id)
	if errors.Is(err, store.ErrQuestionNotFound) {
		return notFound()
	}
	if err != nil {
		return failed(err)
	}

	choiceID, ok := parseID(rawChoice)
	if !ok {
		return h.rejectVote(ctx, q.ID)
	}

	err = h.store.IncrementVote(ctx, q.ID, choiceID)
	if errors.Is(err, store.ErrChoiceNotFound) {
		return h.rejectVote(ctx, q.ID)
	}
	if err != nil {
		return failed(err)
	}

	slog.Info("vote counted", "question_id", q.ID, "choice_id", choiceID)

	return redirect(resultsPath(q.ID))
}

// rejectVote re-renders the voting page for a votable question. Questions
// that detail would 404 get a bare error page so their text and choices stay
// hidden.
func (h *QuestionHandler) rejectVote(ctx context.Context, id int64) Result {
	now := h.now()

	slog.Warn("vote rejected", "question_id", id, "reason", models.MsgNoChoiceSelected)

	q, err := h.store.VotableQuestion(ctx, id, now)
	if errors.Is(err, store.ErrQuestionNotFound) {
		return invalid(templates.Error, errorPage(http.StatusBadRequest, models.MsgNoChoiceSelected))
	}
	if err != nil {
		return failed(err)
	}

	return invalid(templates.Detail, models.DetailPage{
		QuestionWithChoices: q,
		ErrorMessage:        models.MsgNoChoiceSelected,
		Now:                 now,
	})
}

func (h *QuestionHandler) listLimit() int {
	if h.cfg.ListLimit > 0 {
		return h.cfg.ListLimit
	}
	return cliparse.DefaultListLimit
}

func parseID(raw string) (int64, bool) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func resultsPath(id int64) string {
	return "/" + strconv.FormatInt(id, 10) + "/results/"
}
