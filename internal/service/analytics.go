// Package service contains the business logic layer of the application.
//
// THE THREE-LAYER ARCHITECTURE:
//
//	Handler (HTTP layer)     → parses requests, writes responses
//	Service (Business layer) → validates, enforces rules, orchestrates
//	Repository (Data layer)  → reads/writes to the database
//
// The page itself has no business logic at request time: it is rendered once
// by internal/page. What lives here is everything around it that has rules:
// recording visits without storing addresses, the dashboard numbers, the
// retention window and who may sign in to see them.
//
// DEPENDENCY INJECTION:
// AnalyticsService takes a repository.VisitRepository (interface), NOT a
// *sqlite.DB. Tests pass an in-memory fake (see analytics_test.go) and the
// service never imports the sqlite package.
package service

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"log/slog"
	"net/url"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/crypto/blake2b"

	"github.com/sakif/portfolio/internal/apperror"
	"github.com/sakif/portfolio/internal/model"
	"github.com/sakif/portfolio/internal/repository"
)

// Limits.
const (
	DefaultRecentLimit = 50
	MaxRecentLimit     = 500
	TopPathCount       = 5
	MaxPathLength      = 512
	MaxUserAgentLength = 256

	// visitorHashBytes of the blake2b digest are kept (hex-encoded: 32 chars).
	visitorHashBytes = 16
)

// VisitInput is one page view as seen by the HTTP layer.
type VisitInput struct {
	IP         string
	Path       string
	UserAgent  string
	DoNotTrack bool
}

// AnalyticsService records visits and answers the dashboard queries.
type AnalyticsService struct {
	repo      repository.VisitRepository
	key       []byte
	retention time.Duration
	logger    *slog.Logger
	now       func() time.Time
}

// NewAnalyticsService creates an AnalyticsService.
//
// salt keys the visitor hash. With an empty salt a random key is generated,
// which still hides addresses but means the same visitor counts as new after
// every restart. retention of zero keeps visits forever.
func NewAnalyticsService(repo repository.VisitRepository, salt string, retention time.Duration, logger *slog.Logger) (*AnalyticsService, error) {
	var key []byte
	if salt == "" {
		key = make([]byte, 32)
		if _, err := rand.Read(key); err != nil {
			return nil, fmt.Errorf("service/analytics: generating hash key: %w", err)
		}
		logger.Warn("ANALYTICS_SALT not set, unique visitor counts reset on restart")
	} else {
		// blake2b keys are at most 64 bytes; hashing the salt gives a fixed
		// 32-byte key whatever its length.
		sum := blake2b.Sum256([]byte(salt))
		key = sum[:]
	}

	return &AnalyticsService{
		repo:      repo,
		key:       key,
		retention: retention,
		logger:    logger,
		now:       time.Now,
	}, nil
}

// VisitorHash returns the keyed hash of ip stored instead of the address.
//
// WHY A KEYED HASH?
// A plain SHA-256 of an IPv4 address can be reversed by hashing all 2^32
// addresses. Keying blake2b with a server-side secret makes that table
// useless to anyone without the key.
func (s *AnalyticsService) VisitorHash(ip string) string {
	h, err := blake2b.New256(s.key)
	if err != nil {
		// Only possible with a key over 64 bytes, which the constructor rules out.
		panic(fmt.Sprintf("service/analytics: blake2b: %v", err))
	}
	h.Write([]byte(ip))
	return hex.EncodeToString(h.Sum(nil)[:visitorHashBytes])
}

// Record stores one page view. It reports whether anything was written:
// visitors sending DNT: 1 are skipped, as are requests without a usable path.
func (s *AnalyticsService) Record(ctx context.Context, in VisitInput) (bool, error) {
	if in.DoNotTrack {
		return false, nil
	}

	path := normalizePath(in.Path)
	if path == "" {
		return false, nil
	}

	visit := &model.Visit{
		VisitorHash: s.VisitorHash(in.IP),
		Path:        path,
		UserAgent:   truncate(strings.TrimSpace(in.UserAgent), MaxUserAgentLength),
		CreatedAt:   s.now(),
	}
	if err := s.repo.CreateVisit(ctx, visit); err != nil {
		return false, fmt.Errorf("service/analytics: recording visit: %w", err)
	}

	s.logger.Debug("visit recorded",
		slog.String("id", visit.ID),
		slog.String("path", visit.Path),
	)
	return true, nil
}

// Stats returns the dashboard counters. "Today" starts at midnight UTC and
// "this week" covers today plus the six days before it.
func (s *AnalyticsService) Stats(ctx context.Context) (*model.VisitStats, error) {
	now := s.now().UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	stats, err := s.repo.VisitStats(ctx, repository.StatsWindow{
		DayStart:  dayStart,
		WeekStart: dayStart.AddDate(0, 0, -6),
		TopPaths:  TopPathCount,
	})
	if err != nil {
		return nil, fmt.Errorf("service/analytics: loading stats: %w", err)
	}
	return stats, nil
}

// Recent returns the latest visits. A zero limit means DefaultRecentLimit.
func (s *AnalyticsService) Recent(ctx context.Context, limit int) ([]model.Visit, error) {
	if limit < 0 || limit > MaxRecentLimit {
		return nil, apperror.ValidationFailed("limit",
			fmt.Sprintf("limit must be between 0 and %d", MaxRecentLimit))
	}
	if limit == 0 {
		limit = DefaultRecentLimit
	}

	visits, err := s.repo.ListVisits(ctx, repository.ListOptions{Limit: limit})
	if err != nil {
		return nil, fmt.Errorf("service/analytics: listing visits: %w", err)
	}
	return visits, nil
}

// Prune deletes visits older than the retention window and returns how
// many went. With retention disabled it does nothing.
func (s *AnalyticsService) Prune(ctx context.Context) (int64, error) {
	if s.retention <= 0 {
		return 0, nil
	}

	cutoff := s.now().Add(-s.retention)
	n, err := s.repo.DeleteVisitsBefore(ctx, cutoff)
	if err != nil {
		return 0, fmt.Errorf("service/analytics: pruning visits: %w", err)
	}
	if n > 0 {
		s.logger.Info("pruned old visits",
			slog.Int64("deleted", n),
			slog.Time("cutoff", cutoff),
		)
	}
	return n, nil
}

// normalizePath keeps the path of a request URI and drops the query string,
// which may carry tokens or tracking parameters.
func normalizePath(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return ""
	}
	u, err := url.Parse(raw)
	if err != nil || u.Path == "" || !strings.HasPrefix(u.Path, "/") {
		return ""
	}
	return truncate(u.Path, MaxPathLength)
}

// truncate shortens s to at most n bytes without splitting a UTF-8 sequence.
func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return s[:n]
}
