package category

import (
	"context"
	"fmt"
	"math"

	"github.com/rs/zerolog"

	"github.com/gokatarajesh/trivia-api/internal/apperr"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

// LabelCache defines cache behavior (implemented by Redis-backed Cache).
type LabelCache interface {
	Get(ctx context.Context) (Labels, error)
	Set(ctx context.Context, labels Labels) error
}

type categoryRepository interface {
	List(ctx context.Context) ([]sqlcgen.Category, error)
	Get(ctx context.Context, id int32) (sqlcgen.Category, error)
}

type ServiceOptions struct {
	// EmptyAsNotFound reports an empty category table as apperr.ErrNotFound.
	EmptyAsNotFound bool
}

// Service lists categories, optionally through a label cache.
type Service struct {
	repo            categoryRepository
	cache           LabelCache
	logger          zerolog.Logger
	emptyAsNotFound bool
}

// NewService builds a category service. cache may be nil.
func NewService(repo categoryRepository, cache LabelCache, logger zerolog.Logger, opts ServiceOptions) *Service {
	return &Service{
		repo:            repo,
		cache:           cache,
		logger:          logger.With().Str("component", "category").Logger(),
		emptyAsNotFound: opts.EmptyAsNotFound,
	}
}

// Labels returns every category as an id to label map.
func (s *Service) Labels(ctx context.Context) (Labels, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx)
		if err != nil {
			s.logger.Warn().Err(err).Msg("category cache read failed")
		} else if cached != nil {
			return s.checkEmpty(cached)
		}
	}

	rows, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	labels := make(Labels, len(rows))
	for _, row := range rows {
		labels[int(row.ID)] = row.Type
	}

	if s.cache != nil && len(labels) > 0 {
		if err := s.cache.Set(ctx, labels); err != nil {
			s.logger.Warn().Err(err).Msg("category cache write failed")
		}
	}
	return s.checkEmpty(labels)
}

// Get returns one category, apperr.ErrNotFound when the id is unknown.
func (s *Service) Get(ctx context.Context, id int) (Category, error) {
	if id <= 0 || id > math.MaxInt32 {
		return Category{}, fmt.Errorf("category %d: %w", id, apperr.ErrNotFound)
	}
	row, err := s.repo.Get(ctx, int32(id))
	if err != nil {
		return Category{}, err
	}
	return Category{ID: int(row.ID), Type: row.Type}, nil
}

func (s *Service) checkEmpty(labels Labels) (Labels, error) {
	if len(labels) == 0 && s.emptyAsNotFound {
		return nil, fmt.Errorf("no categories: %w", apperr.ErrNotFound)
	}
	return labels, nil
}
