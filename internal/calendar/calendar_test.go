package calendar_test

import (
	"testing"

	"holerite/internal/calendar"
	calendarerrors "holerite/internal/calendar/errors"

	"github.com/stretchr/testify/assert"
)

func TestCountMonthFacts(t *testing.T) {
	tcs := []struct {
		name   string
		period string
		want   calendar.MonthFacts
	}{
		{
			name:   "month without holidays",
			period: "2025-08",
			want:   calendar.MonthFacts{TotalDays: 31, RestDays: 5, WorkingDays: 26},
		},
		{
			name:   "holiday on a weekday counts as rest",
			period: "2025-12",
			want:   calendar.MonthFacts{TotalDays: 31, RestDays: 5, WorkingDays: 26},
		},
		{
			// All Souls' Day falls on a Sunday in Nov 2025, so only the
			// Republic holiday adds a rest day on top of the five Sundays.
			name:   "holiday on a Sunday is not double counted",
			period: "2025-11",
			want:   calendar.MonthFacts{TotalDays: 30, RestDays: 6, WorkingDays: 24},
		},
		{
			name:   "february",
			period: "2026-02",
			want:   calendar.MonthFacts{TotalDays: 28, RestDays: 4, WorkingDays: 24},
		},
	}

	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := calendar.CountMonthFacts(tc.period)

			assert.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestCountMonthFacts_InvalidPeriod(t *testing.T) {
	for _, period := range []string{"", "2025", "2025/08", "08-2025", "2025-13"} {
		_, err := calendar.CountMonthFacts(period)

		assert.ErrorIs(t, err, calendarerrors.ErrInvalidPeriod, "period %q", period)
	}
}
