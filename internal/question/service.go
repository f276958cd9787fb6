package question

import (
	"context"
	"errors"
	"fmt"
	"math"

	"github.com/go-playground/validator/v10"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/apperr"
	"github.com/gokatarajesh/trivia-api/internal/category"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

const pgForeignKeyViolation = "23503"

type questionRepository interface {
	List(ctx context.Context) ([]sqlcgen.Question, error)
	ListByCategory(ctx context.Context, categoryID int32) ([]sqlcgen.Question, error)
	Search(ctx context.Context, term string) ([]sqlcgen.Question, error)
	Insert(ctx context.Context, params sqlcgen.InsertQuestionParams) (sqlcgen.Question, error)
	Delete(ctx context.Context, id int32) (int32, error)
}

type categoryLookup interface {
	Get(ctx context.Context, id int) (category.Category, error)
}

// Service builds the filtered and ordered question sets served by the API.
// It never paginates; callers slice the returned sets.
type Service struct {
	repo       questionRepository
	categories categoryLookup
	validate   *validator.Validate
	logger     zerolog.Logger
}

func NewService(repo questionRepository, categories categoryLookup, logger zerolog.Logger) *Service {
	return &Service{
		repo:       repo,
		categories: categories,
		validate:   validator.New(),
		logger:     logger.With().Str("component", "question").Logger(),
	}
}

// ListAll returns every question ordered by id.
func (s *Service) ListAll(ctx context.Context) ([]Question, error) {
	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return toDomain(rows), nil
}

// ListByCategory returns the category and its questions ordered by id. An
// unknown category yields apperr.ErrNotFound.
func (s *Service) ListByCategory(ctx context.Context, categoryID int) (category.Category, []Question, error) {
	cat, err := s.categories.Get(ctx, categoryID)
	if err != nil {
		return category.Category{}, nil, err
	}
	key, ok := toInt32(cat.ID)
	if !ok {
		return category.Category{}, nil, fmt.Errorf("category %d: %w", cat.ID, apperr.ErrNotFound)
	}
	rows, err := s.repo.ListByCategory(ctx, key)
	if err != nil {
		return category.Category{}, nil, err
	}
	return cat, toDomain(rows), nil
}

// ListInScope returns the questions of one category, or of every category
// when categoryID is 0. Unlike ListByCategory an unknown category is simply
// an empty scope.
func (s *Service) ListInScope(ctx context.Context, categoryID int) ([]Question, error) {
	if categoryID == 0 {
		return s.ListAll(ctx)
	}
	id, ok := toInt32(categoryID)
	if !ok {
		return []Question{}, nil
	}
	rows, err := s.repo.ListByCategory(ctx, id)
	if err != nil {
		return nil, err
	}
	return toDomain(rows), nil
}

// Search returns questions whose text contains term, ignoring case. No match
// is an empty result, not an error.
func (s *Service) Search(ctx context.Context, term string) ([]Question, error) {
	rows, err := s.repo.Search(ctx, term)
	if err != nil {
		return nil, err
	}
	return toDomain(rows), nil
}

// Create stores a new question. Any missing field yields apperr.ErrInvalidInput.
func (s *Service) Create(ctx context.Context, in CreateInput) (Question, error) {
	if err := s.validate.StructCtx(ctx, in); err != nil {
		return Question{}, fmt.Errorf("%w: %v", apperr.ErrInvalidInput, err)
	}

	categoryID, okCategory := toInt32(int(*in.Category))
	difficulty, okDifficulty := toInt32(int(*in.Difficulty))
	if !okCategory || !okDifficulty {
		return Question{}, fmt.Errorf("%w: category %d or difficulty %d out of range",
			apperr.ErrUnprocessable, *in.Category, *in.Difficulty)
	}

	row, err := s.repo.Insert(ctx, sqlcgen.InsertQuestionParams{
		Question:   *in.Question,
		Answer:     *in.Answer,
		Category:   categoryID,
		Difficulty: difficulty,
	})
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgForeignKeyViolation {
			s.logger.Warn().Int("category", int(*in.Category)).Msg("question references unknown category")
		}
		return Question{}, fmt.Errorf("%w: %w", apperr.ErrUnprocessable, err)
	}

	q := toQuestion(row)
	s.logger.Info().Int("question_id", q.ID).Int("category", q.Category).Msg("question created")
	return q, nil
}

// Delete removes a question and returns its id. An unknown id yields
// apperr.ErrNotFound.
func (s *Service) Delete(ctx context.Context, id int) (int, error) {
	key, ok := toInt32(id)
	if !ok || key <= 0 {
		return 0, fmt.Errorf("question %d: %w", id, apperr.ErrNotFound)
	}
	deleted, err := s.repo.Delete(ctx, key)
	if err != nil {
		return 0, err
	}
	s.logger.Info().Int("question_id", int(deleted)).Msg("question deleted")
	return int(deleted), nil
}

// toInt32 narrows v to the store's integer width, reporting values that
// would wrap.
func toInt32(v int) (int32, bool) {
	if v < math.MinInt32 || v > math.MaxInt32 {
		return 0, false
	}
	return int32(v), true
}

func toDomain(rows []sqlcgen.Question) []Question {
	qs := make([]Question, 0, len(rows))
	for _, row := range rows {
		qs = append(qs, toQuestion(row))
	}
	return qs
}

func toQuestion(row sqlcgen.Question) Question {
	return Question{
		ID:         int(row.ID),
		Question:   row.Question,
		Answer:     row.Answer,
		Category:   int(row.Category),
		Difficulty: int(row.Difficulty),
	}
}
