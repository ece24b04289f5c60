// Package repository declares the storage interfaces the service layer
// depends on. Implementations live in subpackages (sqlite).
package repository

import (
	"context"
	"time"

	"github.com/sakif/portfolio/internal/model"
)

// ListOptions pages through a listing, newest first.
type ListOptions struct {
	Limit  int
	Offset int
}

// StatsWindow bounds the time-relative counters of VisitStats.
type StatsWindow struct {
	DayStart  time.Time
	WeekStart time.Time
	TopPaths  int
}

// VisitRepository stores page views.
type VisitRepository interface {
	CreateVisit(ctx context.Context, visit *model.Visit) error
	ListVisits(ctx context.Context, opts ListOptions) ([]model.Visit, error)
	VisitStats(ctx context.Context, window StatsWindow) (*model.VisitStats, error)
	DeleteVisitsBefore(ctx context.Context, cutoff time.Time) (int64, error)
}
