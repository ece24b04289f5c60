package sqlite

import (
	"context"
	"testing"
	"time"

	"github.com/sakif/portfolio/internal/model"
	"github.com/sakif/portfolio/internal/repository"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TESTING WITH IN-MEMORY SQLITE:
// ":memory:" gives every test a fresh, isolated database that vanishes when
// the connection closes. No fixtures on disk, no cleanup between tests.
//
// t.Helper() makes failures point at the caller's line, not this function.
func newTestDB(t *testing.T) *DB {
	t.Helper()
	db, err := New(":memory:")
	if err != nil {
		t.Fatalf("failed to create test db: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

// base is a fixed instant so day and week boundaries are deterministic.
var base = time.Date(2026, 3, 11, 15, 0, 0, 0, time.UTC)

func recordVisit(t *testing.T, db *DB, hash, path string, at time.Time) *model.Visit {
	t.Helper()
	v := &model.Visit{VisitorHash: hash, Path: path, UserAgent: "test-agent", CreatedAt: at}
	if err := db.CreateVisit(context.Background(), v); err != nil {
		t.Fatalf("failed to record visit: %v", err)
	}
	return v
}

func TestNew_MigrationsAreIdempotent(t *testing.T) {
	db := newTestDB(t)
	require.NoError(t, db.migrate())
	require.NoError(t, db.migrate())
}

func TestCreateVisit(t *testing.T) {
	db := newTestDB(t)

	v := recordVisit(t, db, "abc123", "/", base)

	assert.Len(t, v.ID, 20, "xid IDs are 20 chars")

	visits, err := db.ListVisits(context.Background(), repository.ListOptions{})
	require.NoError(t, err)
	require.Len(t, visits, 1)
	assert.Equal(t, v.ID, visits[0].ID)
	assert.Equal(t, "abc123", visits[0].VisitorHash)
	assert.Equal(t, "/", visits[0].Path)
	assert.Equal(t, "test-agent", visits[0].UserAgent)
	assert.True(t, base.Equal(visits[0].CreatedAt))
}

func TestCreateVisit_StampsMissingTime(t *testing.T) {
	db := newTestDB(t)

	before := time.Now().Add(-time.Second)
	v := &model.Visit{VisitorHash: "h", Path: "/"}
	require.NoError(t, db.CreateVisit(context.Background(), v))

	assert.True(t, v.CreatedAt.After(before))
}

func TestListVisits_NewestFirstWithPaging(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	for i := range 5 {
		recordVisit(t, db, "h", "/", base.Add(time.Duration(i)*time.Minute))
	}

	tests := []struct {
		name      string
		opts      repository.ListOptions
		wantLen   int
		wantFirst time.Time
	}{
		{"defaults", repository.ListOptions{}, 5, base.Add(4 * time.Minute)},
		{"limit", repository.ListOptions{Limit: 2}, 2, base.Add(4 * time.Minute)},
		{"offset", repository.ListOptions{Limit: 2, Offset: 3}, 2, base.Add(1 * time.Minute)},
		{"past the end", repository.ListOptions{Offset: 10}, 0, time.Time{}},
		{"negative offset", repository.ListOptions{Offset: -4}, 5, base.Add(4 * time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			visits, err := db.ListVisits(ctx, tt.opts)
			require.NoError(t, err)
			require.Len(t, visits, tt.wantLen)
			if tt.wantLen > 0 {
				assert.True(t, tt.wantFirst.Equal(visits[0].CreatedAt))
			}
		})
	}
}

func TestListVisits_EmptyIsNotNil(t *testing.T) {
	db := newTestDB(t)

	visits, err := db.ListVisits(context.Background(), repository.ListOptions{})
	require.NoError(t, err)
	assert.NotNil(t, visits)
	assert.Empty(t, visits)
}

func TestVisitStats(t *testing.T) {
	db := newTestDB(t)

	dayStart := time.Date(2026, 3, 11, 0, 0, 0, 0, time.UTC)
	weekStart := dayStart.AddDate(0, 0, -6)

	recordVisit(t, db, "alice", "/", base)
	recordVisit(t, db, "alice", "/", base.Add(time.Minute))
	recordVisit(t, db, "bob", "/#projects", base.Add(-2*time.Hour))
	recordVisit(t, db, "bob", "/", dayStart.AddDate(0, 0, -3))
	recordVisit(t, db, "carol", "/resume", dayStart.AddDate(0, 0, -30))

	stats, err := db.VisitStats(context.Background(), repository.StatsWindow{
		DayStart:  dayStart,
		WeekStart: weekStart,
		TopPaths:  2,
	})
	require.NoError(t, err)

	assert.Equal(t, int64(5), stats.TotalVisits)
	assert.Equal(t, int64(3), stats.UniqueVisitors)
	assert.Equal(t, int64(3), stats.VisitsToday)
	assert.Equal(t, int64(4), stats.VisitsThisWeek)
	assert.Equal(t, []model.PathCount{
		{Path: "/", Visits: 3},
		{Path: "/#projects", Visits: 1},
	}, stats.TopPaths)
}

func TestVisitStats_EmptyLog(t *testing.T) {
	db := newTestDB(t)

	stats, err := db.VisitStats(context.Background(), repository.StatsWindow{DayStart: base, WeekStart: base})
	require.NoError(t, err)

	assert.Zero(t, stats.TotalVisits)
	assert.Zero(t, stats.VisitsToday)
	assert.Empty(t, stats.TopPaths)
}

func TestDeleteVisitsBefore(t *testing.T) {
	db := newTestDB(t)
	ctx := context.Background()

	cutoff := base.AddDate(0, 0, -90)
	recordVisit(t, db, "old", "/", cutoff.Add(-time.Hour))
	recordVisit(t, db, "edge", "/", cutoff)
	recordVisit(t, db, "new", "/", base)

	n, err := db.DeleteVisitsBefore(ctx, cutoff)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)

	visits, err := db.ListVisits(ctx, repository.ListOptions{})
	require.NoError(t, err)
	require.Len(t, visits, 2)
	assert.Equal(t, "new", visits[0].VisitorHash)
	assert.Equal(t, "edge", visits[1].VisitorHash)

	n, err = db.DeleteVisitsBefore(ctx, cutoff)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestCreateVisit_CancelledContext(t *testing.T) {
	db := newTestDB(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	err := db.CreateVisit(ctx, &model.Visit{VisitorHash: "h", Path: "/"})
	assert.Error(t, err)
}
