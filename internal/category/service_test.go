package category

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gokatarajesh/trivia-api/internal/apperr"
	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

type stubCategoryRepo struct {
	rows  []sqlcgen.Category
	err   error
	calls int
}

func (s *stubCategoryRepo) List(_ context.Context) ([]sqlcgen.Category, error) {
	s.calls++
	return s.rows, s.err
}

func (s *stubCategoryRepo) Get(_ context.Context, id int32) (sqlcgen.Category, error) {
	for _, row := range s.rows {
		if row.ID == id {
			return row, nil
		}
	}
	return sqlcgen.Category{}, apperr.ErrNotFound
}

type memoryCache struct {
	labels Labels
	getErr error
	sets   int
}

func (c *memoryCache) Get(_ context.Context) (Labels, error) {
	if c.getErr != nil {
		return nil, c.getErr
	}
	return c.labels, nil
}

func (c *memoryCache) Set(_ context.Context, labels Labels) error {
	c.labels = labels
	c.sets++
	return nil
}

func seededRepo() *stubCategoryRepo {
	return &stubCategoryRepo{rows: []sqlcgen.Category{
		{ID: 1, Type: "Science"},
		{ID: 2, Type: "Art"},
		{ID: 3, Type: "Geography"},
	}}
}

func TestLabels(t *testing.T) {
	svc := NewService(seededRepo(), nil, zerolog.Nop(), ServiceOptions{})

	labels, err := svc.Labels(context.Background())
	require.NoError(t, err)
	assert.Equal(t, Labels{1: "Science", 2: "Art", 3: "Geography"}, labels)
}

func TestLabelsUsesCache(t *testing.T) {
	repo := seededRepo()
	cache := &memoryCache{}
	svc := NewService(repo, cache, zerolog.Nop(), ServiceOptions{})

	_, err := svc.Labels(context.Background())
	require.NoError(t, err)
	labels, err := svc.Labels(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, repo.calls, "second call should be served from cache")
	assert.Equal(t, 1, cache.sets)
	assert.Len(t, labels, 3)
}

func TestLabelsFallsThroughCacheFailure(t *testing.T) {
	repo := seededRepo()
	svc := NewService(repo, &memoryCache{getErr: errors.New("redis down")}, zerolog.Nop(), ServiceOptions{})

	labels, err := svc.Labels(context.Background())
	require.NoError(t, err)
	assert.Len(t, labels, 3)
	assert.Equal(t, 1, repo.calls)
}

func TestLabelsEmpty(t *testing.T) {
	svc := NewService(&stubCategoryRepo{}, nil, zerolog.Nop(), ServiceOptions{})
	labels, err := svc.Labels(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, labels)
	assert.Empty(t, labels)

	legacy := NewService(&stubCategoryRepo{}, nil, zerolog.Nop(), ServiceOptions{EmptyAsNotFound: true})
	_, err = legacy.Labels(context.Background())
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestLabelsStoreFailure(t *testing.T) {
	boom := errors.New("db down")
	svc := NewService(&stubCategoryRepo{err: boom}, nil, zerolog.Nop(), ServiceOptions{})

	_, err := svc.Labels(context.Background())
	assert.ErrorIs(t, err, boom)
}

func TestGet(t *testing.T) {
	svc := NewService(seededRepo(), nil, zerolog.Nop(), ServiceOptions{})

	cat, err := svc.Get(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, Category{ID: 2, Type: "Art"}, cat)

	_, err = svc.Get(context.Background(), 999)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = svc.Get(context.Background(), 0)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestGetRejectsIDsBeyondStoreWidth(t *testing.T) {
	svc := NewService(seededRepo(), nil, zerolog.Nop(), ServiceOptions{})

	// 1<<32 + 1 would truncate to Science's id.
	_, err := svc.Get(context.Background(), 1<<32+1)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	cat, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, Category{ID: 1, Type: "Science"}, cat)
}

func TestHandleList(t *testing.T) {
	svc := NewService(seededRepo(), nil, zerolog.Nop(), ServiceOptions{})
	h := NewHTTPHandler(svc, zerolog.Nop())

	rec := httptest.NewRecorder()
	h.HandleList(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	var body struct {
		Success    bool              `json:"success"`
		Categories map[string]string `json:"categories"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.True(t, body.Success)
	assert.Equal(t, map[string]string{"1": "Science", "2": "Art", "3": "Geography"}, body.Categories)
}

func TestHandleListErrors(t *testing.T) {
	legacy := NewService(&stubCategoryRepo{}, nil, zerolog.Nop(), ServiceOptions{EmptyAsNotFound: true})
	h := NewHTTPHandler(legacy, zerolog.Nop())

	rec := httptest.NewRecorder()
	h.HandleList(rec, httptest.NewRequest(http.MethodGet, "/categories", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = httptest.NewRecorder()
	h.HandleList(rec, httptest.NewRequest(http.MethodPost, "/categories", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
	assert.JSONEq(t, `{"success":false,"error":405,"message":"Method not allowed"}`, rec.Body.String())
}
