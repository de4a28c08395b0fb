package middleware

import (
	"log"
	"net/http"
	"time"
)

// LoggingMiddleware logs method, path, status, size and duration of every request
func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		rw := newResponseWriter(w)
		next.ServeHTTP(rw, r)

		log.Printf("[HTTP] %s %s %d %dB %s", r.Method, r.URL.Path, rw.status, rw.written, time.Since(start))
	})
}
