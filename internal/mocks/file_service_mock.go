package mocks

import (
	"context"
	"io"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockFileService is a mock implementation of the gallery's FileService for testing
type MockFileService struct {
	mock.Mock
}

func (m *MockFileService) UploadWithKey(ctx context.Context, file io.Reader, key string, contentType string) error {
	args := m.Called(ctx, file, key, contentType)
	return args.Error(0)
}

func (m *MockFileService) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	args := m.Called(ctx, prefix)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}

func (m *MockFileService) GetPresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	args := m.Called(ctx, key, expiration)
	return args.String(0), args.Error(1)
}
