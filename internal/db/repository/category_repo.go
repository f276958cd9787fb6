package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/gokatarajesh/trivia-api/internal/apperr"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

type categoryStore interface {
	ListCategories(ctx context.Context) ([]sqlcgen.Category, error)
	GetCategory(ctx context.Context, id int32) (sqlcgen.Category, error)
}

// CategoryRepository exposes read-only category queries.
type CategoryRepository struct {
	store categoryStore
}

func NewCategoryRepository(store categoryStore) *CategoryRepository {
	return &CategoryRepository{store: store}
}

// List returns all categories ordered by id.
func (r *CategoryRepository) List(ctx context.Context) ([]sqlcgen.Category, error) {
	rows, err := r.store.ListCategories(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}
	return rows, nil
}

// Get fetches a single category. A missing id yields apperr.ErrNotFound.
func (r *CategoryRepository) Get(ctx context.Context, id int32) (sqlcgen.Category, error) {
	row, err := r.store.GetCategory(ctx, id)
	if errors.Is(err, pgx.ErrNoRows) {
		return sqlcgen.Category{}, fmt.Errorf("category %d: %w", id, apperr.ErrNotFound)
	}
	if err != nil {
		return sqlcgen.Category{}, fmt.Errorf("get category %d: %w", id, err)
	}
	return row, nil
}
