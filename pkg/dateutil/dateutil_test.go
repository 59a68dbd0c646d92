package dateutil

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestStartOfMonth(t *testing.T) {
	now := time.Date(2024, time.August, 21, 15, 4, 5, 0, time.UTC)
	require.Equal(t, time.Date(2024, time.August, 1, 0, 0, 0, 0, time.UTC), StartOfMonth(now))
}

func TestStartOfQuarter(t *testing.T) {
	for month, want := range map[time.Month]time.Month{
		time.January:   time.January,
		time.March:     time.January,
		time.April:     time.April,
		time.June:      time.April,
		time.July:      time.July,
		time.September: time.July,
		time.October:   time.October,
		time.December:  time.October,
	} {
		now := time.Date(2024, month, 15, 12, 0, 0, 0, time.UTC)
		require.Equal(t, time.Date(2024, want, 1, 0, 0, 0, 0, time.UTC), StartOfQuarter(now))
	}
}

func TestStartOfYear(t *testing.T) {
	now := time.Date(2024, time.August, 21, 15, 4, 5, 0, time.UTC)
	require.Equal(t, time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC), StartOfYear(now))
}
