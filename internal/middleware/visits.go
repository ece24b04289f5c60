package middleware

import (
	"context"
	"log/slog"
	"net"
	"net/http"
	"strings"
	"time"

	"github.com/sakif/portfolio/internal/service"
)

// VisitRecorder stores a page view. *service.AnalyticsService implements it.
type VisitRecorder interface {
	Record(ctx context.Context, in service.VisitInput) (bool, error)
}

// untrackedPrefixes are never counted as page views.
var untrackedPrefixes = []string{
	"/static/",
	"/assets/",
	"/admin",
	"/healthz",
	"/favicon",
}

const recordTimeout = 2 * time.Second

// RecordVisits counts successful page views.
//
// WHAT COUNTS AS A VIEW?
//   - GET requests only (HEAD, POST and friends are not someone reading the page)
//   - answered with 200 or 304 (a cached page is still a view)
//   - outside static files, assets, the admin area and the health check
//
// The visit is stored after the handler has written the response. It uses a
// context detached from the request, so a client hanging up right after the
// last byte does not cancel the insert. Recording errors are logged and never
// change the response.
//
// The client address is r.RemoteAddr. Run chi's RealIP before this
// middleware when behind a proxy.
func RecordVisits(recorder VisitRecorder, logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if r.Method != http.MethodGet || !tracked(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			wrapped := wrap(w)
			next.ServeHTTP(wrapped, r)

			if wrapped.statusCode != http.StatusOK && wrapped.statusCode != http.StatusNotModified {
				return
			}

			ctx, cancel := context.WithTimeout(context.WithoutCancel(r.Context()), recordTimeout)
			defer cancel()

			_, err := recorder.Record(ctx, service.VisitInput{
				IP:         clientIP(r.RemoteAddr),
				Path:       r.URL.RequestURI(),
				UserAgent:  r.UserAgent(),
				DoNotTrack: r.Header.Get("DNT") == "1" || r.Header.Get("Sec-GPC") == "1",
			})
			if err != nil {
				logger.Error("recording visit", slog.String("error", err.Error()))
			}
		})
	}
}

func tracked(path string) bool {
	for _, p := range untrackedPrefixes {
		if strings.HasPrefix(path, p) {
			return false
		}
	}
	return true
}

// clientIP strips the port from addr when there is one.
func clientIP(addr string) string {
	if host, _, err := net.SplitHostPort(addr); err == nil {
		return host
	}
	return addr
}
