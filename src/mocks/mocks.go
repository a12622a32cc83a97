package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"pokeforge/src/models"
)

// MockImageGenerator implements models.ImageGenerator
type MockImageGenerator struct {
	mock.Mock
}

func (m *MockImageGenerator) Generate(ctx context.Context, prompt string) (*models.ImageResult, error) {
	args := m.Called(ctx, prompt)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.ImageResult), args.Error(1)
}

// MockCache implements models.CacheStore
type MockCache struct {
	mock.Mock
}

func (m *MockCache) Get(ctx context.Context, key string) (*models.GenerateResponse, error) {
	args := m.Called(ctx, key)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GenerateResponse), args.Error(1)
}

func (m *MockCache) Set(ctx context.Context, key string, response *models.GenerateResponse) error {
	args := m.Called(ctx, key, response)
	return args.Error(0)
}

func (m *MockCache) Delete(ctx context.Context, key string) error {
	args := m.Called(ctx, key)
	return args.Error(0)
}

func (m *MockCache) Close() error {
	args := m.Called()
	return args.Error(0)
}

// MockGenerateCaller implements models.GenerateCaller
type MockGenerateCaller struct {
	mock.Mock
}

func (m *MockGenerateCaller) Generate(ctx context.Context, req *models.GenerateRequest) (*models.GenerateResponse, error) {
	args := m.Called(ctx, req)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*models.GenerateResponse), args.Error(1)
}

// MockNotifier implements models.Notifier
type MockNotifier struct {
	mock.Mock
}

func (m *MockNotifier) Success(msg string) {
	m.Called(msg)
}

func (m *MockNotifier) Warn(msg string) {
	m.Called(msg)
}

func (m *MockNotifier) Error(msg string) {
	m.Called(msg)
}
