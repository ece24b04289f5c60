// Package handler contains HTTP request handlers for the portfolio server.
//
// WHAT IS A HANDLER?
// In Go, an HTTP handler is anything that implements the http.Handler interface:
//
//	type Handler interface {
//	    ServeHTTP(ResponseWriter, *Request)
//	}
//
// Or more commonly, we use http.HandlerFunc: a function with the right signature
// that automatically satisfies the Handler interface. Chi's router accepts these directly.
//
// HANDLER RESPONSIBILITIES:
// 1. Parse the incoming HTTP request (query params, body, headers)
// 2. Call the service layer
// 3. Write the HTTP response (status code, headers, body)
//
// Handlers should NOT contain business logic: they are the "glue" between HTTP and your app.
package handler

import (
	"bytes"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/http"

	"golang.org/x/crypto/blake2b"

	"github.com/sakif/portfolio/internal/page"
	"github.com/sakif/portfolio/internal/view"
)

// PageHandler serves the portfolio page.
//
// RENDER ONCE, SERVE MANY:
// The page is the same for every visitor: dark mode, nothing revealed yet.
// Scroll reveal and the theme toggle happen in the browser. So the document
// is rendered once in NewPageHandler and every GET / writes the same bytes.
// A template error therefore stops the server at startup instead of
// surfacing as a 500 on some later request.
type PageHandler struct {
	body     []byte
	etag     string
	revision string
	logger   *slog.Logger
}

// NewPageHandler renders the composer's initial document.
func NewPageHandler(c *page.Composer, revision string, logger *slog.Logger) (*PageHandler, error) {
	var buf bytes.Buffer
	if err := c.Render(&buf, view.Visibility{}); err != nil {
		return nil, fmt.Errorf("handler: rendering page: %w", err)
	}

	sum := blake2b.Sum256(buf.Bytes())
	return &PageHandler{
		body:     buf.Bytes(),
		etag:     `"` + hex.EncodeToString(sum[:8]) + `"`,
		revision: revision,
		logger:   logger,
	}, nil
}

// HandlePage serves the cached document.
//
// HTTP: GET /
//
// CONDITIONAL REQUESTS:
// The ETag is a hash of the body. A browser that already has this version
// sends If-None-Match and gets an empty 304 back.
func (h *PageHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("ETag", h.etag)
	w.Header().Set("Cache-Control", "no-cache")

	if r.Header.Get("If-None-Match") == h.etag {
		w.WriteHeader(http.StatusNotModified)
		return
	}

	// Set content type header BEFORE writing the body
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if r.Method == http.MethodHead {
		return
	}
	if _, err := w.Write(h.body); err != nil {
		h.logger.Debug("client went away during page write", slog.String("error", err.Error()))
	}
}

// HandleHealth reports liveness for load balancers and uptime checks.
//
// HTTP: GET /healthz
func (h *PageHandler) HandleHealth(w http.ResponseWriter, r *http.Request) {
	resp := map[string]string{"status": "ok"}
	if h.revision != "" {
		resp["revision"] = h.revision
	}
	writeJSON(w, http.StatusOK, resp)
}
