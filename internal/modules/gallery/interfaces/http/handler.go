package http

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"mime/multipart"
	"net/http"
	"strings"

	fsdomain "github.com/saransh1220/photo-gateway/internal/modules/filestorage/domain"
	"github.com/saransh1220/photo-gateway/internal/modules/gallery/application"
	"github.com/saransh1220/photo-gateway/internal/modules/gallery/domain"
	"github.com/saransh1220/photo-gateway/internal/shared/utils"
)

// uploadField is the multipart form field carrying the image
const uploadField = "file"

// GalleryService defines the gallery operations the handler depends on
type GalleryService interface {
	Upload(ctx context.Context, req application.UploadRequest) (string, error)
	PresignedURL(ctx context.Context, key string) (string, error)
	ListURLs(ctx context.Context) ([]string, error)
	MaxUploadMB() int
}

type GalleryHandler struct {
	service GalleryService
	bucket  string
}

func NewGalleryHandler(service GalleryService, bucket string) *GalleryHandler {
	return &GalleryHandler{
		service: service,
		bucket:  bucket,
	}
}

// UploadResponse is returned by POST /upload
type UploadResponse struct {
	Status string `json:"status"`
	Key    string `json:"key"`
	URL    string `json:"url"`
}

// ListResponse is returned by GET /list
type ListResponse struct {
	Images []string `json:"images"`
}

type indexPage struct {
	ImageURLs []string
	Bucket    string
	MaxMB     int
	Allowed   string
	Accept    string
}

// Healthz handles GET /healthz. It does not touch the object store.
func (h *GalleryHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.WriteJSON(w, http.StatusOK, map[string]bool{"ok": true})
}

// Home handles GET / - renders the gallery of presigned image links
func (h *GalleryHandler) Home(w http.ResponseWriter, r *http.Request) {
	urls, err := h.service.ListURLs(r.Context())
	if err != nil {
		log.Printf("[GalleryHandler.Home] list error: %v", err)
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.WriteHeader(http.StatusInternalServerError)
		if err := pageTemplates.ExecuteTemplate(w, "error", fsdomain.ProviderMessage(err)); err != nil {
			log.Printf("[GalleryHandler.Home] render error: %v", err)
		}
		return
	}

	exts := domain.AllowedExtensions()
	accept := make([]string, len(exts))
	for i, ext := range exts {
		accept[i] = "." + ext
	}

	page := indexPage{
		ImageURLs: urls,
		Bucket:    h.bucket,
		MaxMB:     h.service.MaxUploadMB(),
		Allowed:   strings.Join(exts, ", "),
		Accept:    strings.Join(accept, ","),
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := pageTemplates.ExecuteTemplate(w, "index", page); err != nil {
		log.Printf("[GalleryHandler.Home] render error: %v", err)
	}
}

// UploadForm handles POST /uploadform - browser upload, redirects back to the gallery
func (h *GalleryHandler) UploadForm(w http.ResponseWriter, r *http.Request) {
	if _, ok := h.upload(w, r); !ok {
		return
	}
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

// UploadAPI handles POST /upload - returns the key and a presigned link as JSON
func (h *GalleryHandler) UploadAPI(w http.ResponseWriter, r *http.Request) {
	key, ok := h.upload(w, r)
	if !ok {
		return
	}

	url, err := h.service.PresignedURL(r.Context(), key)
	if err != nil {
		log.Printf("[GalleryHandler.UploadAPI] presign error for %s: %v", key, err)
		utils.WriteError(w, http.StatusInternalServerError, "S3 upload failed", err)
		return
	}

	utils.WriteJSON(w, http.StatusOK, UploadResponse{Status: "ok", Key: key, URL: url})
}

// List handles GET /list - presigned links as JSON, in store order
func (h *GalleryHandler) List(w http.ResponseWriter, r *http.Request) {
	urls, err := h.service.ListURLs(r.Context())
	if err != nil {
		log.Printf("[GalleryHandler.List] list error: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "S3 list failed", err)
		return
	}
	utils.WriteJSON(w, http.StatusOK, ListResponse{Images: urls})
}

// Static serves the embedded stylesheet under /static/
func (h *GalleryHandler) Static() http.Handler {
	return http.StripPrefix("/static/", http.FileServerFS(staticFiles()))
}

// upload streams the "file" part into the service and writes the error
// response itself. ok is false when a response has already been written.
func (h *GalleryHandler) upload(w http.ResponseWriter, r *http.Request) (string, bool) {
	part, err := nextFilePart(r)
	if err != nil && !errors.Is(err, http.ErrMissingFile) {
		log.Printf("[GalleryHandler.upload] multipart error: %v", err)
		utils.WriteError(w, http.StatusBadRequest, "invalid multipart form", err)
		return "", false
	}

	req := application.UploadRequest{Body: strings.NewReader("")}
	if part != nil {
		defer part.Close()
		req = application.UploadRequest{
			Filename:    part.FileName(),
			ContentType: part.Header.Get("Content-Type"),
			Body:        part,
		}
	}

	key, err := h.service.Upload(r.Context(), req)
	if err != nil {
		h.writeUploadError(w, err)
		return "", false
	}
	return key, true
}

func (h *GalleryHandler) writeUploadError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, domain.ErrUnsupportedType):
		utils.WriteError(w, http.StatusBadRequest, "Only images: "+strings.Join(domain.AllowedExtensions(), ", "), nil)
	case errors.Is(err, domain.ErrPayloadTooLarge):
		utils.WriteError(w, http.StatusRequestEntityTooLarge, fmt.Sprintf("File too large (>%d MB)", h.service.MaxUploadMB()), nil)
	case errors.Is(err, domain.ErrUnreadableBody):
		utils.WriteError(w, http.StatusBadRequest, "failed to read upload", err)
	default:
		log.Printf("[GalleryHandler.upload] upload failed: %v", err)
		utils.WriteError(w, http.StatusInternalServerError, "S3 upload failed", err)
	}
}

// nextFilePart advances the multipart stream to the upload field without
// buffering earlier parts.
func nextFilePart(r *http.Request) (*multipart.Part, error) {
	mr, err := r.MultipartReader()
	if err != nil {
		return nil, err
	}
	for {
		part, err := mr.NextPart()
		if err == io.EOF {
			return nil, http.ErrMissingFile
		}
		if err != nil {
			return nil, err
		}
		if part.FormName() == uploadField {
			return part, nil
		}
		part.Close()
	}
}
