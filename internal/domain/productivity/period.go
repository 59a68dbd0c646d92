package productivity

import (
	"time"

	"github.com/collabflow/backend/pkg/dateutil"
	"github.com/collabflow/backend/pkg/enum"
)

type Period string

var (
	PeriodAll     = enum.New(Period("all"))
	PeriodWeek    = enum.New(Period("week"))
	PeriodMonth   = enum.New(Period("month"))
	PeriodQuarter = enum.New(Period("quarter"))
	PeriodYear    = enum.New(Period("year"))
)

// ToPeriod converts a raw string to a Period. An unrecognized value degrades
// to PeriodAll rather than failing, so a bad query parameter never breaks
// the productivity report.
func ToPeriod(s string) Period {
	period, err := enum.ToEnum[Period](s)
	if err != nil {
		return PeriodAll
	}

	return period
}

// Start returns the lower bound applied to record creation times for this
// period, relative to now. The second value is false when the period places
// no bound at all.
func (p Period) Start(now time.Time) (time.Time, bool) {
	switch p {
	case PeriodWeek:
		return now.Add(-7 * 24 * time.Hour), true
	case PeriodMonth:
		return dateutil.StartOfMonth(now), true
	case PeriodQuarter:
		return dateutil.StartOfQuarter(now), true
	case PeriodYear:
		return dateutil.StartOfYear(now), true
	default:
		return time.Time{}, false
	}
}
