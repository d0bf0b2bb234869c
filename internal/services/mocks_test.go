package services

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/stretchr/testify/mock"

	"github.com/arya020/FormBuilder/internal/cache"
	"github.com/arya020/FormBuilder/internal/models"
	"github.com/arya020/FormBuilder/internal/repositories"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// MockFormRepository is a mock implementation of FormRepository
type MockFormRepository struct {
	mock.Mock
}

func (m *MockFormRepository) Create(ctx context.Context, form *models.Form) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

func (m *MockFormRepository) GetByID(ctx context.Context, id string) (*models.Form, error) {
	args := m.Called(ctx, id)
	if form := args.Get(0); form != nil {
		return form.(*models.Form), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockFormRepository) Update(ctx context.Context, form *models.Form) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

func (m *MockFormRepository) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func (m *MockFormRepository) List(ctx context.Context, filters repositories.FormFilters) ([]*models.Form, int64, error) {
	args := m.Called(ctx, filters)
	return args.Get(0).([]*models.Form), args.Get(1).(int64), args.Error(2)
}

func (m *MockFormRepository) SetPublished(ctx context.Context, id string, published bool) error {
	args := m.Called(ctx, id, published)
	return args.Error(0)
}

// MockResponseRepository is a mock implementation of ResponseRepository
type MockResponseRepository struct {
	mock.Mock
}

func (m *MockResponseRepository) Create(ctx context.Context, response *models.Response) error {
	args := m.Called(ctx, response)
	return args.Error(0)
}

func (m *MockResponseRepository) GetByID(ctx context.Context, id string) (*models.Response, error) {
	args := m.Called(ctx, id)
	if response := args.Get(0); response != nil {
		return response.(*models.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockResponseRepository) ListByForm(ctx context.Context, formID string, filters repositories.ResponseFilters) ([]*models.Response, int64, error) {
	args := m.Called(ctx, formID, filters)
	return args.Get(0).([]*models.Response), args.Get(1).(int64), args.Error(2)
}

func (m *MockResponseRepository) CountByForm(ctx context.Context, formID string) (int64, error) {
	args := m.Called(ctx, formID)
	return args.Get(0).(int64), args.Error(1)
}

func (m *MockResponseRepository) DeleteByForm(ctx context.Context, formID string) error {
	args := m.Called(ctx, formID)
	return args.Error(0)
}

// missCache is a CacheService that never holds anything.
type missCache struct{}

func (missCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	return nil
}

func (missCache) Get(ctx context.Context, key string, dest interface{}) error {
	return cache.ErrCacheMiss
}

func (missCache) Delete(ctx context.Context, key string) error         { return nil }
func (missCache) DeletePattern(ctx context.Context, pattern string) error { return nil }
