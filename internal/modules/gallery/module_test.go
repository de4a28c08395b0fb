package gallery

import (
	"testing"

	"github.com/saransh1220/photo-gateway/internal/mocks"
	"github.com/saransh1220/photo-gateway/internal/shared/infrastructure/config"
	"github.com/stretchr/testify/assert"
)

func TestNewModule(t *testing.T) {
	cfg := config.Config{
		FileStorage: config.FileStorageConfig{BucketName: "photos"},
		Upload:      config.UploadConfig{MaxUploadMB: 7},
	}

	m := NewModule(cfg, new(mocks.MockFileService))

	assert.NotNil(t, m.GalleryHandler)
	assert.NotNil(t, m.GalleryService)
	assert.Equal(t, 7, m.GalleryService.MaxUploadMB())
}
