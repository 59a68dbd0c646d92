package productivity

import "time"

// Record is the activity shape shared by initiatives and projects. The two
// kinds only differ in their backlog status (pending vs planning), so one
// counting function parameterized by that status serves both.
type Record struct {
	Status    string
	Progress  int
	CreatedAt time.Time
	UpdatedAt time.Time
}

const (
	statusCompleted  = "completed"
	statusInProgress = "in-progress"
	statusOnHold     = "on-hold"

	// Backlog statuses per kind.
	StatusPending  = "pending"
	StatusPlanning = "planning"
)

// recentWindow is the trailing window of the recent-activity digest.
const recentWindow = 30 * 24 * time.Hour

type Stats struct {
	Total             int
	Completed         int
	InProgress        int
	PendingOrPlanning int
	OnHold            int

	// AvgProgress keeps its fractional precision; rounding only happens
	// when the combined score is computed.
	AvgProgress float64
}

// BuildStats counts records by status and averages their progress.
// backlogStatus is StatusPending for initiatives and StatusPlanning for
// projects. An empty record set yields all-zero stats.
func BuildStats(records []Record, backlogStatus string) Stats {
	stats := Stats{Total: len(records)}

	progressSum := 0
	for _, r := range records {
		progressSum += r.Progress

		switch r.Status {
		case statusCompleted:
			stats.Completed++
		case statusInProgress:
			stats.InProgress++
		case statusOnHold:
			stats.OnHold++
		case backlogStatus:
			stats.PendingOrPlanning++
		}
	}

	if stats.Total > 0 {
		stats.AvgProgress = float64(progressSum) / float64(stats.Total)
	}

	return stats
}

type RecentActivity struct {
	Created int
	Updated int
}

// BuildRecentActivity counts records created or updated in the trailing 30
// days before now. It scans the same record set the period filter already
// admitted, so recency counts are always a subset of the windowed stats.
func BuildRecentActivity(records []Record, now time.Time) RecentActivity {
	since := now.Add(-recentWindow)

	var recent RecentActivity
	for _, r := range records {
		if !r.CreatedAt.Before(since) {
			recent.Created++
		}

		if !r.UpdatedAt.Before(since) {
			recent.Updated++
		}
	}

	return recent
}
