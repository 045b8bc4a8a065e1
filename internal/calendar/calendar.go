package calendar

import (
	"time"

	calendarerrors "holerite/internal/calendar/errors"
)

// MonthFacts are the day counts a statement computation consumes.
type MonthFacts struct {
	TotalDays   int
	RestDays    int
	WorkingDays int
}

type monthDay struct {
	month time.Month
	day   int
}

// Fixed national holidays. Movable feasts are out of scope.
var nationalHolidays = []monthDay{
	{time.January, 1},   // Confraternização Universal
	{time.April, 21},    // Tiradentes
	{time.May, 1},       // Dia do Trabalho
	{time.September, 7}, // Independência
	{time.October, 12},  // Nossa Senhora Aparecida
	{time.November, 2},  // Finados
	{time.November, 15}, // Proclamação da República
	{time.December, 25}, // Natal
}

// CountMonthFacts counts rest and working days for a reference month given as
// "YYYY-MM". Rest days are Sundays plus fixed holidays that do not fall on a
// Sunday; a holiday coinciding with a Sunday is counted once.
func CountMonthFacts(period string) (MonthFacts, error) {
	ref, err := time.Parse("2006-01", period)
	if err != nil {
		return MonthFacts{}, calendarerrors.ErrInvalidPeriod
	}

	year, month := ref.Year(), ref.Month()
	totalDays := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()

	restDays := 0
	for day := 1; day <= totalDays; day++ {
		date := time.Date(year, month, day, 0, 0, 0, 0, time.UTC)
		if date.Weekday() == time.Sunday || isNationalHoliday(month, day) {
			restDays++
		}
	}

	return MonthFacts{
		TotalDays:   totalDays,
		RestDays:    restDays,
		WorkingDays: totalDays - restDays,
	}, nil
}

func isNationalHoliday(month time.Month, day int) bool {
	for _, h := range nationalHolidays {
		if h.month == month && h.day == day {
			return true
		}
	}
	return false
}
