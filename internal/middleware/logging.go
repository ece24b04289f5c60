// Package middleware contains HTTP middleware functions.
//
// WHAT IS MIDDLEWARE?
// Middleware is a function that wraps an HTTP handler to add cross-cutting behaviour
// (logging, security headers, visit recording) without modifying the handler itself.
//
// The pattern is:
//
//	func MyMiddleware(next http.Handler) http.Handler {
//	    return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
//	        // Do something BEFORE the handler runs
//	        next.ServeHTTP(w, r)  // Call the actual handler
//	        // Do something AFTER the handler runs
//	    })
//	}
//
// This is the "decorator pattern": we wrap the real handler with extra behaviour.
package middleware

import (
	"log/slog"
	"net/http"
	"time"

	chimw "github.com/go-chi/chi/v5/middleware"
)

// responseWriter wraps http.ResponseWriter to capture the status code.
// Go's http.ResponseWriter doesn't expose the status code after WriteHeader is called,
// so we wrap it to track it ourselves. This is a common Go pattern.
type responseWriter struct {
	http.ResponseWriter       // Embedding: this struct "inherits" all methods
	statusCode          int   // Our addition: track the status code
	written             int64 // Track bytes written
}

// WriteHeader captures the status code before delegating to the embedded ResponseWriter.
// By defining this method, we "override" the embedded ResponseWriter's WriteHeader.
func (rw *responseWriter) WriteHeader(code int) {
	rw.statusCode = code
	rw.ResponseWriter.WriteHeader(code)
}

// wrap returns w wrapped for status tracking, reusing an existing wrapper so
// stacked middleware all see the same numbers.
func wrap(w http.ResponseWriter) *responseWriter {
	if rw, ok := w.(*responseWriter); ok {
		return rw
	}
	return &responseWriter{
		ResponseWriter: w,
		statusCode:     http.StatusOK, // Default if WriteHeader is never called
	}
}

// Unwrap exposes the underlying writer to http.ResponseController.
func (rw *responseWriter) Unwrap() http.ResponseWriter {
	return rw.ResponseWriter
}

// Write captures bytes written and delegates to the embedded ResponseWriter.
func (rw *responseWriter) Write(b []byte) (int, error) {
	n, err := rw.ResponseWriter.Write(b)
	rw.written += int64(n)
	return n, err
}

// Logger returns an HTTP middleware that logs each request using Go's slog package.
//
// Each log line includes: request ID, method, path, status code, duration,
// and bytes written. The level follows the status: 5xx logs at Error, 4xx at
// Warn, everything else at Info, so a quiet log at LOG_LEVEL=warn still shows
// every failure.
//
// The request ID comes from chi's RequestID middleware, which must run first.
func Logger(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			// Wrap the ResponseWriter so we can capture status code and bytes
			wrapped := wrap(w)

			next.ServeHTTP(wrapped, r)

			level := slog.LevelInfo
			switch {
			case wrapped.statusCode >= 500:
				level = slog.LevelError
			case wrapped.statusCode >= 400:
				level = slog.LevelWarn
			}

			logger.LogAttrs(r.Context(), level, "request completed",
				slog.String("requestID", chimw.GetReqID(r.Context())),
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", wrapped.statusCode),
				slog.Duration("duration", time.Since(start)),
				slog.Int64("bytes", wrapped.written),
			)
		})
	}
}
