// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/danielhkuo/pollsite/models"
)

var (
	ErrQuestionNotFound = errors.New("question not found")
	ErrChoiceNotFound   = errors.New("choice not found")

	errQuestionTextRequired = errors.New("question text is required")
	errChoiceTextRequired   = errors.New("choice text is required")
)

// Store runs the question and choice queries against *sql.DB.
// Queries use $N placeholders, which both lib/pq and modernc sqlite accept.
type Store struct {
	db *sql.DB
}

func New(db *sql.DB) *Store {
	return &Store{db: db}
}

func toMillis(t time.Time) int64 {
	return t.UTC().UnixMilli()
}

func fromMillis(ms int64) time.Time {
	return time.UnixMilli(ms).UTC()
}

// LatestPublished returns up to limit questions published at or before now,
// newest first
func (s *Store) LatestPublished(ctx context.Context, now time.Time, limit int) ([]models.Question, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_text, pub_date
		FROM question
		WHERE pub_date <= $1
		ORDER BY pub_date DESC, id DESC
		LIMIT $2
	`, toMillis(now), limit)
	if err != nil {
		return nil, fmt.Errorf("failed to query latest questions: %w", err)
	}
	defer rows.Close()

	questions := []models.Question{}
	for rows.Next() {
		q, err := scanQuestion(rows)
		if err != nil {
			return nil, err
		}
		questions = append(questions, q)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read latest questions: %w", err)
	}

	return questions, nil
}

// VotableQuestion returns the question with its choices only when it is
// published and has more than one choice. Missing, unpublished and
// under-populated questions all return ErrQuestionNotFound.
func (s *Store) VotableQuestion(ctx context.Context, id int64, now time.Time) (models.QuestionWithChoices, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT q.id, q.question_text, q.pub_date
		FROM question q
		WHERE q.id = $1
		  AND q.pub_date <= $2
		  AND (SELECT COUNT(*) FROM choice c WHERE c.question_id = q.id) > 1
	`, id, toMillis(now))

	q, err := scanQuestion(row)
	if err != nil {
		return models.QuestionWithChoices{}, err
	}

	choices, err := s.Choices(ctx, q.ID)
	if err != nil {
		return models.QuestionWithChoices{}, err
	}

	return models.QuestionWithChoices{Question: q, Choices: choices}, nil
}

// Question looks a question up by id without any publication filter
func (s *Store) Question(ctx context.Context, id int64) (models.Question, error) {
	row := s.db.QueryRowContext(ctx, `
		SELECT id, question_text, pub_date
		FROM question
		WHERE id = $1
	`, id)
	return scanQuestion(row)
}

// Choices returns the choices of a question ordered by id
func (s *Store) Choices(ctx context.Context, questionID int64) ([]models.Choice, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, question_id, choice_text, votes
		FROM choice
		WHERE question_id = $1
		ORDER BY id
	`, questionID)
	if err != nil {
		return nil, fmt.Errorf("failed to query choices: %w", err)
	}
	defer rows.Close()

	choices := []models.Choice{}
	for rows.Next() {
		var c models.Choice
		if err := rows.Scan(&c.ID, &c.QuestionID, &c.ChoiceText, &c.Votes); err != nil {
			return nil, fmt.Errorf("failed to scan choice: %w", err)
		}
		choices = append(choices, c)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read choices: %w", err)
	}

	return choices, nil
}

// IncrementVote adds one vote to a choice of the given question.
// The increment is evaluated by the database so concurrent votes never
// overwrite each other. Returns ErrChoiceNotFound when the choice does not
// belong to the question.
func (s *Store) IncrementVote(ctx context.Context, questionID, choiceID int64) error {
	res, err := s.db.ExecContext(ctx, `
		UPDATE choice
		SET votes = votes + 1
		WHERE id = $1 AND question_id = $2
	`, choiceID, questionID)
	if err != nil {
		return fmt.Errorf("failed to increment votes: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrChoiceNotFound
	}

	return nil
}

// CreateQuestion inserts a question and returns it with its new id
func (s *Store) CreateQuestion(ctx context.Context, text string, pubDate time.Time) (models.Question, error) {
	return insertQuestion(ctx, s.db, text, pubDate)
}

// AddChoice attaches a new choice with zero votes to a question
func (s *Store) AddChoice(ctx context.Context, questionID int64, text string) (models.Choice, error) {
	if strings.TrimSpace(text) == "" {
		return models.Choice{}, errChoiceTextRequired
	}

	if _, err := s.Question(ctx, questionID); err != nil {
		return models.Choice{}, err
	}

	return insertChoice(ctx, s.db, questionID, text)
}

// CreateQuestionWithChoices inserts a question and all of its choices in one
// transaction. Either everything is stored or nothing is.
func (s *Store) CreateQuestionWithChoices(ctx context.Context, text string, pubDate time.Time, choiceTexts []string) (models.QuestionWithChoices, error) {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return models.QuestionWithChoices{}, fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	q, err := insertQuestion(ctx, tx, text, pubDate)
	if err != nil {
		return models.QuestionWithChoices{}, err
	}

	choices := make([]models.Choice, 0, len(choiceTexts))
	for _, ct := range choiceTexts {
		c, err := insertChoice(ctx, tx, q.ID, ct)
		if err != nil {
			return models.QuestionWithChoices{}, fmt.Errorf("choice %q: %w", ct, err)
		}
		choices = append(choices, c)
	}

	if err := tx.Commit(); err != nil {
		return models.QuestionWithChoices{}, fmt.Errorf("failed to commit question: %w", err)
	}

	return models.QuestionWithChoices{Question: q, Choices: choices}, nil
}

// queryRower is satisfied by both *sql.DB and *sql.Tx
type queryRower interface {
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

func insertQuestion(ctx context.Context, db queryRower, text string, pubDate time.Time) (models.Question, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Question{}, errQuestionTextRequired
	}

	q := models.Question{QuestionText: text, PubDate: fromMillis(toMillis(pubDate))}
	err := db.QueryRowContext(ctx, `
		INSERT INTO question (question_text, pub_date)
		VALUES ($1, $2)
		RETURNING id
	`, q.QuestionText, toMillis(q.PubDate)).Scan(&q.ID)
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to insert question: %w", err)
	}

	return q, nil
}

func insertChoice(ctx context.Context, db queryRower, questionID int64, text string) (models.Choice, error) {
	text = strings.TrimSpace(text)
	if text == "" {
		return models.Choice{}, errChoiceTextRequired
	}

	c := models.Choice{QuestionID: questionID, ChoiceText: text}
	err := db.QueryRowContext(ctx, `
		INSERT INTO choice (question_id, choice_text, votes)
		VALUES ($1, $2, 0)
		RETURNING id
	`, questionID, text).Scan(&c.ID)
	if err != nil {
		return models.Choice{}, fmt.Errorf("failed to insert choice: %w", err)
	}

	return c, nil
}

// DeleteQuestion removes a question; its choices go with it
func (s *Store) DeleteQuestion(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM question WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete question: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if n == 0 {
		return ErrQuestionNotFound
	}

	return nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanQuestion(row scanner) (models.Question, error) {
	var (
		q       models.Question
		pubDate int64
	)
	err := row.Scan(&q.ID, &q.QuestionText, &pubDate)
	if err == sql.ErrNoRows {
		return models.Question{}, ErrQuestionNotFound
	}
	if err != nil {
		return models.Question{}, fmt.Errorf("failed to scan question: %w", err)
	}
	q.PubDate = fromMillis(pubDate)

	return q, nil
}
