package repository

import (
	"context"

	"github.com/stretchr/testify/mock"

	sqlcgen "github.com/gokatarajesh/trivia-api/internal/db/sqlc"
)

type mockQuestionStore struct {
	mock.Mock
}

func (m *mockQuestionStore) ListQuestions(ctx context.Context) ([]sqlcgen.Question, error) {
	args := m.Called(ctx)
	return args.Get(0).([]sqlcgen.Question), args.Error(1)
}

func (m *mockQuestionStore) ListQuestionsByCategory(ctx context.Context, category int32) ([]sqlcgen.Question, error) {
	args := m.Called(ctx, category)
	return args.Get(0).([]sqlcgen.Question), args.Error(1)
}

func (m *mockQuestionStore) SearchQuestions(ctx context.Context, term string) ([]sqlcgen.Question, error) {
	args := m.Called(ctx, term)
	return args.Get(0).([]sqlcgen.Question), args.Error(1)
}

func (m *mockQuestionStore) InsertQuestion(ctx context.Context, arg sqlcgen.InsertQuestionParams) (sqlcgen.Question, error) {
	args := m.Called(ctx, arg)
	return args.Get(0).(sqlcgen.Question), args.Error(1)
}

func (m *mockQuestionStore) DeleteQuestion(ctx context.Context, id int32) (int32, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(int32), args.Error(1)
}

type mockCategoryStore struct {
	mock.Mock
}

func (m *mockCategoryStore) ListCategories(ctx context.Context) ([]sqlcgen.Category, error) {
	args := m.Called(ctx)
	return args.Get(0).([]sqlcgen.Category), args.Error(1)
}

func (m *mockCategoryStore) GetCategory(ctx context.Context, id int32) (sqlcgen.Category, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(sqlcgen.Category), args.Error(1)
}
