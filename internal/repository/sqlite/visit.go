package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/xid"
	"github.com/sakif/portfolio/internal/model"
	"github.com/sakif/portfolio/internal/repository"
)

// COMPILE-TIME INTERFACE CHECK:
// `var _ X = (*Y)(nil)` fails to compile if *Y stops implementing X, so a
// missing or renamed method is caught here instead of at the call site that
// hands *DB to the analytics service.
var _ repository.VisitRepository = (*DB)(nil)

const (
	defaultVisitLimit = 50
	maxVisitLimit     = 500
	defaultTopPaths   = 5
)

// CreateVisit inserts one page view.
//
// KEY CONCEPTS:
//
//  1. ID GENERATION WITH xid:
//     xid IDs are 20 chars, URL-safe and sortable by creation time, so the
//     primary key doubles as a rough insertion order.
//
//  2. POINTER RECEIVER (*model.Visit):
//     The caller gets the generated ID back. If CreatedAt is zero we stamp it
//     with the current time; the retention tests set it explicitly.
//
//  3. PARAMETERIZED QUERIES:
//     Paths and user agents come straight from the request. They go through
//     ? placeholders, never string concatenation.
func (db *DB) CreateVisit(ctx context.Context, visit *model.Visit) error {
	visit.ID = xid.New().String()
	if visit.CreatedAt.IsZero() {
		visit.CreatedAt = time.Now()
	}
	visit.CreatedAt = visit.CreatedAt.UTC()

	_, err := db.conn.ExecContext(ctx,
		`INSERT INTO visits (id, visitor_hash, path, user_agent, created_at)
		 VALUES (?, ?, ?, ?, ?)`,
		visit.ID,
		visit.VisitorHash,
		visit.Path,
		visit.UserAgent,
		visit.CreatedAt.UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("sqlite: creating visit: %w", err)
	}
	return nil
}

// ListVisits returns visits newest first.
//
// PAGINATION:
// LIMIT/OFFSET keeps the dashboard response bounded no matter how large the
// log grows. Out-of-range values are clamped rather than rejected, the same
// way the handler treats a missing ?limit.
func (db *DB) ListVisits(ctx context.Context, opts repository.ListOptions) ([]model.Visit, error) {
	limit := opts.Limit
	if limit <= 0 {
		limit = defaultVisitLimit
	}
	if limit > maxVisitLimit {
		limit = maxVisitLimit
	}
	offset := max(opts.Offset, 0)

	rows, err := db.conn.QueryContext(ctx,
		`SELECT id, visitor_hash, path, user_agent, created_at
		 FROM visits
		 ORDER BY created_at DESC, id DESC
		 LIMIT ? OFFSET ?`,
		limit, offset,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: listing visits: %w", err)
	}
	// ALWAYS close rows. An unclosed *sql.Rows holds its connection until
	// garbage collection, and with ":memory:" there is only one connection.
	defer rows.Close()

	// make([]T, 0) instead of a nil slice so JSON encodes [] rather than null.
	visits := make([]model.Visit, 0)
	for rows.Next() {
		var (
			v         model.Visit
			createdAt int64
		)
		if err := rows.Scan(&v.ID, &v.VisitorHash, &v.Path, &v.UserAgent, &createdAt); err != nil {
			return nil, fmt.Errorf("sqlite: scanning visit: %w", err)
		}
		v.CreatedAt = time.UnixMilli(createdAt).UTC()
		visits = append(visits, v)
	}
	// rows.Next() returns false on error as well as at the end, so check.
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating visits: %w", err)
	}
	return visits, nil
}

// VisitStats aggregates the log for the admin dashboard.
//
// One query computes the four counters with conditional SUMs, so the numbers
// come from the same snapshot. COALESCE turns the NULL SUM of an empty table
// into 0. The top-paths list is a second query.
func (db *DB) VisitStats(ctx context.Context, window repository.StatsWindow) (*model.VisitStats, error) {
	stats := &model.VisitStats{}

	err := db.conn.QueryRowContext(ctx,
		`SELECT
			COUNT(*),
			COUNT(DISTINCT visitor_hash),
			COALESCE(SUM(CASE WHEN created_at >= ? THEN 1 ELSE 0 END), 0),
			COALESCE(SUM(CASE WHEN created_at >= ? THEN 1 ELSE 0 END), 0)
		 FROM visits`,
		window.DayStart.UnixMilli(),
		window.WeekStart.UnixMilli(),
	).Scan(&stats.TotalVisits, &stats.UniqueVisitors, &stats.VisitsToday, &stats.VisitsThisWeek)
	if err != nil {
		return nil, fmt.Errorf("sqlite: counting visits: %w", err)
	}

	top := window.TopPaths
	if top <= 0 {
		top = defaultTopPaths
	}
	rows, err := db.conn.QueryContext(ctx,
		`SELECT path, COUNT(*) AS n
		 FROM visits
		 GROUP BY path
		 ORDER BY n DESC, path ASC
		 LIMIT ?`,
		top,
	)
	if err != nil {
		return nil, fmt.Errorf("sqlite: ranking paths: %w", err)
	}
	defer rows.Close()

	stats.TopPaths = make([]model.PathCount, 0, top)
	for rows.Next() {
		var pc model.PathCount
		if err := rows.Scan(&pc.Path, &pc.Visits); err != nil {
			return nil, fmt.Errorf("sqlite: scanning path count: %w", err)
		}
		stats.TopPaths = append(stats.TopPaths, pc)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("sqlite: iterating path counts: %w", err)
	}
	return stats, nil
}

// DeleteVisitsBefore removes visits recorded strictly before cutoff and
// returns how many rows went.
//
// RowsAffected() is how an Exec reports what it touched. The retention
// pruner logs it; zero is a normal result, not an error.
func (db *DB) DeleteVisitsBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	result, err := db.conn.ExecContext(ctx,
		`DELETE FROM visits WHERE created_at < ?`,
		cutoff.UnixMilli(),
	)
	if err != nil {
		return 0, fmt.Errorf("sqlite: deleting visits: %w", err)
	}
	n, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("sqlite: checking rows affected: %w", err)
	}
	return n, nil
}
