package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"github.com/sakif/portfolio/internal/apperror"
	"github.com/sakif/portfolio/internal/service"
)

// AnalyticsHandler serves the admin dashboard API.
// Every route here sits behind auth.RequireAdmin.
type AnalyticsHandler struct {
	analytics *service.AnalyticsService
	logger    *slog.Logger
}

// NewAnalyticsHandler creates an AnalyticsHandler.
func NewAnalyticsHandler(analytics *service.AnalyticsService, logger *slog.Logger) *AnalyticsHandler {
	return &AnalyticsHandler{analytics: analytics, logger: logger}
}

// HandleStats returns the visit counters.
//
// HTTP: GET /admin/api/stats
//
// RESPONSE FORMAT:
//
//	{"totalVisits":120,"uniqueVisitors":48,"visitsToday":6,"visitsThisWeek":31,
//	 "topPaths":[{"path":"/","visits":117}, ...]}
func (h *AnalyticsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	stats, err := h.analytics.Stats(r.Context())
	if err != nil {
		h.logger.Error("loading visit stats", slog.String("error", err.Error()))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, stats)
}

// HandleVisits returns the most recent visits, newest first.
//
// HTTP: GET /admin/api/visits?limit=50
//
// A non-numeric limit is a 400 here; the range check is the service's job.
func (h *AnalyticsHandler) HandleVisits(w http.ResponseWriter, r *http.Request) {
	limit := 0
	if raw := r.URL.Query().Get("limit"); raw != "" {
		n, err := strconv.Atoi(raw)
		if err != nil {
			writeError(w, apperror.ValidationFailed("limit", "limit must be a number"))
			return
		}
		limit = n
	}

	visits, err := h.analytics.Recent(r.Context(), limit)
	if err != nil {
		h.logger.Error("listing visits", slog.String("error", err.Error()))
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, visits)
}
