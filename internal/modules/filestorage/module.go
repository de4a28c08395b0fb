package filestorage

import (
	"context"
	"fmt"

	"github.com/saransh1220/photo-gateway/internal/modules/filestorage/application"
	"github.com/saransh1220/photo-gateway/internal/modules/filestorage/domain"
	"github.com/saransh1220/photo-gateway/internal/modules/filestorage/infrastructure/s3"
	"github.com/saransh1220/photo-gateway/internal/shared/infrastructure/config"
)

// Module represents the FileStorage module
type Module struct {
	service *application.FileService
	storage domain.ObjectStore
}

// NewModule creates and initializes the FileStorage module.
// Credentials come from the SDK default chain, i.e. the host's execution identity.
func NewModule(ctx context.Context, cfg config.FileStorageConfig) (*Module, error) {
	storage, err := s3.NewS3Storage(ctx, s3.S3Config{
		BucketName:     cfg.BucketName,
		Region:         cfg.Region,
		Endpoint:       cfg.Endpoint,
		PublicEndpoint: cfg.PublicEndpoint,
		UseSSL:         cfg.UseSSL,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to initialize S3 storage: %w", err)
	}

	return &Module{
		service: application.NewFileService(storage),
		storage: storage,
	}, nil
}

// Service returns the file service for use by other modules
func (m *Module) Service() *application.FileService {
	return m.service
}
