package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gokatarajesh/trivia-api/internal/apperr"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

type questionStore interface {
	ListQuestions(ctx context.Context) ([]sqlcgen.Question, error)
	ListQuestionsByCategory(ctx context.Context, category int32) ([]sqlcgen.Question, error)
	SearchQuestions(ctx context.Context, term string) ([]sqlcgen.Question, error)
	InsertQuestion(ctx context.Context, arg sqlcgen.InsertQuestionParams) (sqlcgen.Question, error)
	DeleteQuestion(ctx context.Context, id int32) (int32, error)
}

// QuestionRepository wraps sqlc queries for question access.
type QuestionRepository struct {
	store questionStore
}

func NewQuestionRepository(store questionStore) *QuestionRepository {
	return &QuestionRepository{store: store}
}

// List returns every question ordered by id.
func (r *QuestionRepository) List(ctx context.Context) ([]sqlcgen.Question, error) {
	rows, err := r.store.ListQuestions(ctx)
	if err != nil {
		return nil, fmt.Errorf("list questions: %w", err)
	}
	return rows, nil
}

// ListByCategory returns the questions of one category ordered by id.
func (r *QuestionRepository) ListByCategory(ctx context.Context, categoryID int32) ([]sqlcgen.Question, error) {
	rows, err := r.store.ListQuestionsByCategory(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("list questions of category %d: %w", categoryID, err)
	}
	return rows, nil
}

// Search returns questions whose text contains term, ignoring case.
func (r *QuestionRepository) Search(ctx context.Context, term string) ([]sqlcgen.Question, error) {
	rows, err := r.store.SearchQuestions(ctx, term)
	if err != nil {
		return nil, fmt.Errorf("search questions: %w", err)
	}
	return rows, nil
}

// Insert stores a new question and returns it with its assigned id.
func (r *QuestionRepository) Insert(ctx context.Context, params sqlcgen.InsertQuestionParams) (sqlcgen.Question, error) {
	row, err := r.store.InsertQuestion(ctx, params)
	if err != nil {
		return sqlcgen.Question{}, fmt.Errorf("insert question: %w", err)
	}
	return row, nil
}

// Delete removes a question. A missing id yields apperr.ErrNotFound.
func (r *QuestionRepository) Delete(ctx context.Context, id int32) (int32, error) {
	deleted, err := r.store.DeleteQuestion(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return 0, fmt.Errorf("question %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return 0, fmt.Errorf("delete question %d: %w", id, err)
	}
	return deleted, nil
}
