package gallery

import (
	"github.com/saransh1220/photo-gateway/internal/modules/gallery/application"
	"github.com/saransh1220/photo-gateway/internal/modules/gallery/interfaces/http"
	"github.com/saransh1220/photo-gateway/internal/shared/infrastructure/config"
)

type Module struct {
	GalleryService *application.GalleryService
	GalleryHandler *http.GalleryHandler
}

func NewModule(cfg config.Config, fileService application.FileService) *Module {
	service := application.NewGalleryService(fileService, cfg.Upload.MaxUploadMB)
	handler := http.NewGalleryHandler(service, cfg.FileStorage.BucketName)

	return &Module{
		GalleryService: service,
		GalleryHandler: handler,
	}
}
