package service

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"sort"
	"strings"
	"sync"
	"testing"
	"time"
	"unicode/utf8"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sakif/portfolio/internal/apperror"
	"github.com/sakif/portfolio/internal/model"
	"github.com/sakif/portfolio/internal/repository"
)

// =========================================================================
// FAKES AND HELPERS
// =========================================================================

// fakeVisitRepo is an in-memory repository.VisitRepository. A hand-written
// fake keeps the tests readable: what it does is right here.
type fakeVisitRepo struct {
	mu     sync.Mutex
	visits []model.Visit
	nextID int

	lastWindow repository.StatsWindow
	lastList   repository.ListOptions
	lastCutoff time.Time
	pruneCalls int

	// set to a non-nil error to simulate a database failure
	err error
}

func (f *fakeVisitRepo) CreateVisit(_ context.Context, v *model.Visit) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	f.nextID++
	v.ID = "visit-" + string(rune('0'+f.nextID))
	f.visits = append(f.visits, *v)
	return nil
}

func (f *fakeVisitRepo) ListVisits(_ context.Context, opts repository.ListOptions) ([]model.Visit, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastList = opts
	if f.err != nil {
		return nil, f.err
	}
	out := append([]model.Visit(nil), f.visits...)
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	if len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (f *fakeVisitRepo) VisitStats(_ context.Context, w repository.StatsWindow) (*model.VisitStats, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastWindow = w
	if f.err != nil {
		return nil, f.err
	}
	return &model.VisitStats{TotalVisits: int64(len(f.visits))}, nil
}

func (f *fakeVisitRepo) DeleteVisitsBefore(_ context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.pruneCalls++
	f.lastCutoff = cutoff
	if f.err != nil {
		return 0, f.err
	}
	kept := f.visits[:0]
	var n int64
	for _, v := range f.visits {
		if v.CreatedAt.Before(cutoff) {
			n++
			continue
		}
		kept = append(kept, v)
	}
	f.visits = kept
	return n, nil
}

func (f *fakeVisitRepo) calls() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.pruneCalls
}

func discardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

// fixedNow is a Wednesday afternoon.
var fixedNow = time.Date(2026, 3, 11, 15, 30, 0, 0, time.UTC)

func newTestAnalytics(t *testing.T, repo *fakeVisitRepo, retention time.Duration) *AnalyticsService {
	t.Helper()
	svc, err := NewAnalyticsService(repo, "test-salt", retention, discardLogger())
	require.NoError(t, err)
	svc.now = func() time.Time { return fixedNow }
	return svc
}

// =========================================================================
// VisitorHash TESTS
// =========================================================================

func TestVisitorHash(t *testing.T) {
	a := newTestAnalytics(t, &fakeVisitRepo{}, 0)

	h := a.VisitorHash("203.0.113.7")

	assert.Len(t, h, 32)
	assert.Equal(t, h, a.VisitorHash("203.0.113.7"), "stable for the same address")
	assert.NotEqual(t, h, a.VisitorHash("203.0.113.8"))
	assert.NotContains(t, h, "203")
}

func TestVisitorHash_DependsOnSalt(t *testing.T) {
	a, err := NewAnalyticsService(&fakeVisitRepo{}, "salt-a", 0, discardLogger())
	require.NoError(t, err)
	b, err := NewAnalyticsService(&fakeVisitRepo{}, "salt-b", 0, discardLogger())
	require.NoError(t, err)

	assert.NotEqual(t, a.VisitorHash("203.0.113.7"), b.VisitorHash("203.0.113.7"))
}

func TestVisitorHash_RandomKeyWithoutSalt(t *testing.T) {
	a, err := NewAnalyticsService(&fakeVisitRepo{}, "", 0, discardLogger())
	require.NoError(t, err)
	b, err := NewAnalyticsService(&fakeVisitRepo{}, "", 0, discardLogger())
	require.NoError(t, err)

	assert.NotEqual(t, a.VisitorHash("203.0.113.7"), b.VisitorHash("203.0.113.7"))
}

// =========================================================================
// Record TESTS
// =========================================================================

func TestRecord(t *testing.T) {
	tests := []struct {
		name      string
		in        VisitInput
		wantSaved bool
		wantPath  string
	}{
		{"root", VisitInput{IP: "1.2.3.4", Path: "/"}, true, "/"},
		{"query dropped", VisitInput{IP: "1.2.3.4", Path: "/?utm_source=x&token=y"}, true, "/"},
		{"do not track", VisitInput{IP: "1.2.3.4", Path: "/", DoNotTrack: true}, false, ""},
		{"empty path", VisitInput{IP: "1.2.3.4", Path: ""}, false, ""},
		{"relative path", VisitInput{IP: "1.2.3.4", Path: "about"}, false, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeVisitRepo{}
			svc := newTestAnalytics(t, repo, 0)

			saved, err := svc.Record(context.Background(), tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.wantSaved, saved)

			if !tt.wantSaved {
				assert.Empty(t, repo.visits)
				return
			}
			require.Len(t, repo.visits, 1)
			v := repo.visits[0]
			assert.Equal(t, tt.wantPath, v.Path)
			assert.Equal(t, svc.VisitorHash("1.2.3.4"), v.VisitorHash)
			assert.Equal(t, fixedNow, v.CreatedAt)
		})
	}
}

func TestRecord_TruncatesUserAgent(t *testing.T) {
	repo := &fakeVisitRepo{}
	svc := newTestAnalytics(t, repo, 0)

	long := make([]byte, MaxUserAgentLength+50)
	for i := range long {
		long[i] = 'x'
	}

	_, err := svc.Record(context.Background(), VisitInput{IP: "1.1.1.1", Path: "/", UserAgent: string(long)})
	require.NoError(t, err)
	assert.Len(t, repo.visits[0].UserAgent, MaxUserAgentLength)
}

func TestRecord_TruncatesOnRuneBoundary(t *testing.T) {
	repo := &fakeVisitRepo{}
	svc := newTestAnalytics(t, repo, 0)

	// The limit falls inside the second byte of the first "é".
	ua := strings.Repeat("x", MaxUserAgentLength-1) + strings.Repeat("é", 10)
	path := "/" + strings.Repeat("日", MaxPathLength)

	_, err := svc.Record(context.Background(), VisitInput{IP: "1.1.1.1", Path: path, UserAgent: ua})
	require.NoError(t, err)

	v := repo.visits[0]
	assert.Equal(t, strings.Repeat("x", MaxUserAgentLength-1), v.UserAgent)
	assert.True(t, utf8.ValidString(v.Path))
	assert.LessOrEqual(t, len(v.Path), MaxPathLength)
	assert.Equal(t, "/"+strings.Repeat("日", (MaxPathLength-1)/3), v.Path)
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		in   string
		n    int
		want string
	}{
		{"short", 10, "short"},
		{"abcdef", 3, "abc"},
		{"aé", 2, "a"},
		{"日本", 4, "日"},
		{"日本", 0, ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, truncate(tt.in, tt.n), "truncate(%q, %d)", tt.in, tt.n)
	}
}

func TestRecord_RepositoryError(t *testing.T) {
	repo := &fakeVisitRepo{err: errors.New("database is on fire")}
	svc := newTestAnalytics(t, repo, 0)

	saved, err := svc.Record(context.Background(), VisitInput{IP: "1.1.1.1", Path: "/"})
	assert.Error(t, err)
	assert.False(t, saved)
}

// =========================================================================
// Stats / Recent TESTS
// =========================================================================

func TestStats_Window(t *testing.T) {
	repo := &fakeVisitRepo{}
	svc := newTestAnalytics(t, repo, 0)

	_, err := svc.Stats(context.Background())
	require.NoError(t, err)

	assert.Equal(t, time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC), repo.lastWindow.DayStart)
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), repo.lastWindow.WeekStart)
	assert.Equal(t, TopPathCount, repo.lastWindow.TopPaths)
}

func TestRecent_Limit(t *testing.T) {
	tests := []struct {
		name      string
		limit     int
		wantLimit int
		wantErr   bool
	}{
		{"default", 0, DefaultRecentLimit, false},
		{"explicit", 10, 10, false},
		{"max", MaxRecentLimit, MaxRecentLimit, false},
		{"negative", -1, 0, true},
		{"too large", MaxRecentLimit + 1, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := &fakeVisitRepo{}
			svc := newTestAnalytics(t, repo, 0)

			_, err := svc.Recent(context.Background(), tt.limit)
			if tt.wantErr {
				assert.ErrorIs(t, err, apperror.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantLimit, repo.lastList.Limit)
		})
	}
}

// =========================================================================
// Prune TESTS
// =========================================================================

func TestPrune(t *testing.T) {
	repo := &fakeVisitRepo{visits: []model.Visit{
		{Path: "/", CreatedAt: fixedNow.AddDate(0, 0, -100)},
		{Path: "/", CreatedAt: fixedNow.AddDate(0, 0, -10)},
	}}
	svc := newTestAnalytics(t, repo, 90*24*time.Hour)

	n, err := svc.Prune(context.Background())
	require.NoError(t, err)

	assert.Equal(t, int64(1), n)
	assert.Equal(t, fixedNow.AddDate(0, 0, -90), repo.lastCutoff)
	assert.Len(t, repo.visits, 1)
}

func TestPrune_DisabledRetention(t *testing.T) {
	repo := &fakeVisitRepo{}
	svc := newTestAnalytics(t, repo, 0)

	n, err := svc.Prune(context.Background())
	require.NoError(t, err)
	assert.Zero(t, n)
	assert.Zero(t, repo.calls(), "repository is not touched")
}
