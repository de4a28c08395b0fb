package application

import (
	"context"
	"io"
	"time"

	"github.com/saransh1220/photo-gateway/internal/modules/filestorage/domain"
)

// FileService provides high-level file operations
type FileService struct {
	storage domain.ObjectStore
}

// NewFileService creates a new file service
func NewFileService(storage domain.ObjectStore) *FileService {
	return &FileService{
		storage: storage,
	}
}

// UploadWithKey uploads a file with a specific key
func (s *FileService) UploadWithKey(ctx context.Context, file io.Reader, key string, contentType string) error {
	return s.storage.UploadFile(ctx, key, file, contentType)
}

// ListKeys returns the keys of all objects under prefix
func (s *FileService) ListKeys(ctx context.Context, prefix string) ([]string, error) {
	files, err := s.storage.ListFiles(ctx, prefix)
	if err != nil {
		return nil, err
	}
	keys := make([]string, 0, len(files))
	for _, f := range files {
		keys = append(keys, f.Key)
	}
	return keys, nil
}

// GetPresignedURL generates a presigned URL for viewing
func (s *FileService) GetPresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error) {
	return s.storage.GetPresignedURL(ctx, key, expiration)
}
