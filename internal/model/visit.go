package model

import "time"

// Visit is one recorded page view.
//
// VisitorHash is a keyed hash of the client IP. The raw address is never
// stored, so two visits from the same address can be counted as one visitor
// without the address itself being recoverable.
type Visit struct {
	ID          string    `json:"id"`
	VisitorHash string    `json:"visitorHash"`
	Path        string    `json:"path"`
	UserAgent   string    `json:"userAgent"`
	CreatedAt   time.Time `json:"createdAt"`
}

// PathCount is a path with its number of visits.
type PathCount struct {
	Path   string `json:"path"`
	Visits int64  `json:"visits"`
}

// VisitStats is the aggregate shown on the admin dashboard.
type VisitStats struct {
	TotalVisits    int64       `json:"totalVisits"`
	UniqueVisitors int64       `json:"uniqueVisitors"`
	VisitsToday    int64       `json:"visitsToday"`
	VisitsThisWeek int64       `json:"visitsThisWeek"`
	TopPaths       []PathCount `json:"topPaths"`
}
