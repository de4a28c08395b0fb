package application

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/saransh1220/photo-gateway/internal/modules/gallery/domain"
)

var uploadsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "gallery_uploads_total",
	Help: "Total number of image uploads by result.",
}, []string{"result"})

const (
	resultOK              = "ok"
	resultUnsupportedType = "unsupported_type"
	resultTooLarge        = "too_large"
	resultUnreadable      = "unreadable"
	resultStorageError    = "storage_error"
)

// FileService is the subset of the filestorage module the gallery needs
type FileService interface {
	UploadWithKey(ctx context.Context, file io.Reader, key string, contentType string) error
	ListKeys(ctx context.Context, prefix string) ([]string, error)
	GetPresignedURL(ctx context.Context, key string, expiration time.Duration) (string, error)
}

// UploadRequest is a single file received from a client
type UploadRequest struct {
	Filename    string
	ContentType string
	Body        io.Reader
}

// GalleryService validates uploads and turns stored objects into links
type GalleryService struct {
	files       FileService
	maxUploadMB int
}

// NewGalleryService creates a gallery service with the given upload limit in MB
func NewGalleryService(files FileService, maxUploadMB int) *GalleryService {
	return &GalleryService{
		files:       files,
		maxUploadMB: maxUploadMB,
	}
}

// MaxUploadMB returns the configured upload limit
func (s *GalleryService) MaxUploadMB() int {
	return s.maxUploadMB
}

func (s *GalleryService) maxBytes() int64 {
	return int64(s.maxUploadMB) * domain.BytesPerMB
}

// Upload checks the extension, then the size, and stores the payload under
// a fresh key. It returns the key. Nothing is written when validation fails.
func (s *GalleryService) Upload(ctx context.Context, req UploadRequest) (string, error) {
	if req.Filename == "" || !domain.ExtensionAllowed(req.Filename) {
		uploadsTotal.WithLabelValues(resultUnsupportedType).Inc()
		return "", domain.ErrUnsupportedType
	}

	// Read one byte past the limit so an oversized payload is detected
	// without buffering all of it.
	data, err := io.ReadAll(io.LimitReader(req.Body, s.maxBytes()+1))
	if err != nil {
		uploadsTotal.WithLabelValues(resultUnreadable).Inc()
		return "", fmt.Errorf("%w: %w", domain.ErrUnreadableBody, err)
	}
	if int64(len(data)) > s.maxBytes() {
		uploadsTotal.WithLabelValues(resultTooLarge).Inc()
		return "", domain.ErrPayloadTooLarge
	}

	key := domain.NewStorageKey(req.Filename)
	contentType := req.ContentType
	if contentType == "" {
		contentType = domain.DefaultContentType
	}

	if err := s.files.UploadWithKey(ctx, bytes.NewReader(data), key, contentType); err != nil {
		log.Printf("[GalleryService.Upload] store error for %s: %v", key, err)
		uploadsTotal.WithLabelValues(resultStorageError).Inc()
		return "", fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}

	uploadsTotal.WithLabelValues(resultOK).Inc()
	log.Printf("[GalleryService.Upload] stored %s (%d bytes, %s)", key, len(data), contentType)
	return key, nil
}

// PresignedURL returns a link to key valid for domain.PresignExpiry
func (s *GalleryService) PresignedURL(ctx context.Context, key string) (string, error) {
	url, err := s.files.GetPresignedURL(ctx, key, domain.PresignExpiry)
	if err != nil {
		return "", fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}
	return url, nil
}

// ListURLs returns a presigned link for every stored image, in store order
func (s *GalleryService) ListURLs(ctx context.Context) ([]string, error) {
	keys, err := s.files.ListKeys(ctx, domain.KeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", domain.ErrStorage, err)
	}

	urls := make([]string, 0, len(keys))
	for _, key := range keys {
		url, err := s.PresignedURL(ctx, key)
		if err != nil {
			return nil, err
		}
		urls = append(urls, url)
	}
	return urls, nil
}
