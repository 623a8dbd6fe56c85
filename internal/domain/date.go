package domain

import "time"

// DateLayout is the calendar-day key format used throughout the persisted
// data. Lexicographic comparison of two date strings matches chronological
// order.
const DateLayout = "2006-01-02"

// FormatDate renders a timestamp as its UTC calendar day.
func FormatDate(t time.Time) string {
	return t.UTC().Format(DateLayout)
}

// ParseDate parses a calendar-day string. The zero time and an error are
// returned for anything that is not a valid YYYY-MM-DD day.
func ParseDate(s string) (time.Time, error) {
	return time.Parse(DateLayout, s)
}

// DateRange returns `days` consecutive calendar-day strings starting at
// today+offsetDays. The dashboard uses it for its 7-day week views.
func DateRange(today time.Time, days, offsetDays int) []string {
	start := today.UTC().Truncate(24 * time.Hour)
	dates := make([]string, 0, days)
	for i := 0; i < days; i++ {
		dates = append(dates, FormatDate(start.AddDate(0, 0, i+offsetDays)))
	}
	return dates
}

// DaysBetween returns the whole number of calendar days from the given
// date string up to today. Negative for future dates.
func DaysBetween(date string, today time.Time) int {
	day, err := ParseDate(date)
	if err != nil {
		return 0
	}
	t := today.UTC().Truncate(24 * time.Hour)
	return int(t.Sub(day).Hours() / 24)
}
