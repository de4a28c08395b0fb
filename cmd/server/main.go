package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/saransh1220/photo-gateway/internal/gateway"
	"github.com/saransh1220/photo-gateway/internal/modules/filestorage"
	"github.com/saransh1220/photo-gateway/internal/modules/gallery"
	"github.com/saransh1220/photo-gateway/internal/shared/infrastructure/config"
)

func main() {
	cfg := config.Load()

	handler, err := buildHandler(context.Background(), cfg)
	if err != nil {
		log.Fatalf("Failed to initialize: %v", err)
	}

	server := gateway.NewServer(cfg.Server.Port, handler)
	if err := server.Start(); err != nil {
		log.Fatalf("Server failed: %v", err)
	}
}

// buildHandler constructs the object store client once and injects it into the gallery
func buildHandler(ctx context.Context, cfg config.Config) (http.Handler, error) {
	log.Printf("Connecting to object store (bucket=%s, region=%s)", cfg.FileStorage.BucketName, cfg.FileStorage.Region)

	storageModule, err := filestorage.NewModule(ctx, cfg.FileStorage)
	if err != nil {
		return nil, fmt.Errorf("file storage: %w", err)
	}

	galleryModule := gallery.NewModule(cfg, storageModule.Service())

	log.Printf("Upload limit %d MB", cfg.Upload.MaxUploadMB)

	return gateway.NewHandler(gateway.RouterConfig{
		GalleryHandler: galleryModule.GalleryHandler,
		AllowedOrigins: cfg.Server.AllowedOrigins,
	}), nil
}
