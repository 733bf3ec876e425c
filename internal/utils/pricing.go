package utils

import (
	"fmt"
	"time"
)

const dateLayout = "2006-01-02"

// ParseDate converts a yyyy-mm-dd formatted string into a UTC-midnight
// time.Time.
func ParseDate(dateStr string) (time.Time, error) {
	t, err := time.Parse(dateLayout, dateStr)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date format, expected yyyy-mm-dd: %w", err)
	}
	return t, nil
}

// truncateToDay drops the time-of-day component so day arithmetic is not
// skewed by timestamps that are not exactly midnight.
func truncateToDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// InclusiveDays returns the number of calendar days a rental covers,
// counting both the start and the end date. Jan 2 through Jan 4 is 3
// days. Returns 0 when endDate precedes startDate.
func InclusiveDays(startDate, endDate time.Time) int32 {
	start := truncateToDay(startDate)
	end := truncateToDay(endDate)
	if end.Before(start) {
		return 0
	}
	return int32(end.Sub(start).Hours()/24) + 1
}

// RentalCost returns the total cost in cents for renting a unit at the
// given daily rate over the inclusive date range.
func RentalCost(startDate, endDate time.Time, dailyRateCents int32) int32 {
	return InclusiveDays(startDate, endDate) * dailyRateCents
}
