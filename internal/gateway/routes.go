package gateway

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/saransh1220/photo-gateway/internal/gateway/middleware"
	gallery_http "github.com/saransh1220/photo-gateway/internal/modules/gallery/interfaces/http"
)

// RouterConfig holds all the handlers needed for routing
type RouterConfig struct {
	GalleryHandler *gallery_http.GalleryHandler
	AllowedOrigins string
}

// SetupRoutes creates and configures all application routes
func SetupRoutes(config RouterConfig) *http.ServeMux {
	mux := http.NewServeMux()

	// Liveness only, the store is not probed
	mux.HandleFunc("GET /healthz", config.GalleryHandler.Healthz)

	// Prometheus Metrics Endpoint
	mux.Handle("GET /metrics", promhttp.Handler())

	// Gallery Routes
	mux.HandleFunc("GET /{$}", config.GalleryHandler.Home)
	mux.HandleFunc("GET /list", config.GalleryHandler.List)
	mux.HandleFunc("POST /uploadform", config.GalleryHandler.UploadForm)
	mux.HandleFunc("POST /upload", config.GalleryHandler.UploadAPI)
	mux.Handle("GET /static/", config.GalleryHandler.Static())

	return mux
}

// NewHandler wraps the routes with logging, metrics and CORS
func NewHandler(config RouterConfig) http.Handler {
	var h http.Handler = SetupRoutes(config)
	h = middleware.CORSMiddleware(h, config.AllowedOrigins)
	h = middleware.PrometheusMiddleware(h)
	return middleware.LoggingMiddleware(h)
}
