package service

import (
	"sort"
	"time"

	"github.com/mhollis/gardenshare/internal/domain"
)

// UserStats is one row of the gardener ranking.
type UserStats struct {
	UserID         string
	Name           string
	TotalCompleted int
	TotalPlanned   int
	CompletionRate float64
	Streak         int
	LastWatered    string // calendar day of the most recent completion, empty when none
}

// DayStats aggregates completed waterings for one weekday.
type DayStats struct {
	Day   string
	Count int
	Users []string // distinct completing gardeners, first-completion order
}

// Statistics is the full derived view over the watering history.
type Statistics struct {
	UserStats      []UserStats
	DayStats       []DayStats
	TotalWaterings int
	ActiveUsers    int
	AveragePerDay  float64
}

var weekdayNames = []string{
	"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday",
}

// ComputeStatistics derives rankings, streaks, and weekday popularity from
// a loaded snapshot. It is a pure function recomputed in full on every
// call; the history is small enough (one household) that incremental
// maintenance would buy nothing.
func ComputeStatistics(data *domain.AppData, today time.Time) Statistics {
	stats := Statistics{
		ActiveUsers: len(data.Users),
	}

	byUser := make(map[string]*UserStats, len(data.Users))
	for _, u := range data.Users {
		stats.UserStats = append(stats.UserStats, UserStats{UserID: u.ID, Name: u.Name})
	}
	for i := range stats.UserStats {
		byUser[stats.UserStats[i].UserID] = &stats.UserStats[i]
	}

	var completed []domain.WateringEntry
	for _, entry := range data.WateringEntries {
		switch entry.Status {
		case domain.StatusCompleted:
			stats.TotalWaterings++
			completed = append(completed, entry)
			if entry.CompletedUserID != "" {
				if us := byUser[entry.CompletedUserID]; us != nil {
					us.TotalCompleted++
					if us.LastWatered == "" || entry.Date > us.LastWatered {
						us.LastWatered = entry.Date
					}
				}
			}
		case domain.StatusPlanned:
			if entry.AssignedUserID != "" {
				if us := byUser[entry.AssignedUserID]; us != nil {
					us.TotalPlanned++
				}
			}
		}
	}

	for i := range stats.UserStats {
		us := &stats.UserStats[i]
		if commitments := us.TotalCompleted + us.TotalPlanned; commitments > 0 {
			us.CompletionRate = float64(us.TotalCompleted) / float64(commitments) * 100
		}
		us.Streak = streak(completed, us.UserID, today)
	}

	sort.SliceStable(stats.UserStats, func(i, j int) bool {
		return stats.UserStats[i].TotalCompleted > stats.UserStats[j].TotalCompleted
	})

	stats.DayStats = weekdayStats(data, completed)
	// Divides by the weekday bucket count, not elapsed days. That is the
	// figure the product always showed, so it is preserved as-is.
	if stats.TotalWaterings > 0 {
		stats.AveragePerDay = float64(stats.TotalWaterings) / float64(max(len(stats.DayStats), 1))
	}

	return stats
}

// streak counts consecutive calendar days with a completion by the user,
// anchored at today: the user's completions sorted newest-first must sit
// exactly 0, 1, 2, ... days before today. The first gap ends the streak,
// so a completion today plus one three days ago scores 1, not 2.
func streak(completed []domain.WateringEntry, userID string, today time.Time) int {
	var own []domain.WateringEntry
	for _, entry := range completed {
		if entry.CompletedUserID == userID {
			own = append(own, entry)
		}
	}
	sort.Slice(own, func(i, j int) bool { return own[i].Date > own[j].Date })

	count := 0
	for i, entry := range own {
		if domain.DaysBetween(entry.Date, today) != i {
			break
		}
		count++
	}
	return count
}

// weekdayStats buckets completed entries by weekday name, descending by
// count. Ties keep Sunday-first order.
func weekdayStats(data *domain.AppData, completed []domain.WateringEntry) []DayStats {
	buckets := make([]DayStats, len(weekdayNames))
	seen := make([]map[string]bool, len(weekdayNames))
	for i, day := range weekdayNames {
		buckets[i] = DayStats{Day: day, Users: []string{}}
		seen[i] = make(map[string]bool)
	}

	for _, entry := range completed {
		if entry.CompletedUserID == "" {
			continue
		}
		day, err := domain.ParseDate(entry.Date)
		if err != nil {
			continue
		}
		i := int(day.Weekday())
		buckets[i].Count++
		if !seen[i][entry.CompletedUserID] {
			seen[i][entry.CompletedUserID] = true
			name := unknownUserName
			if u := data.FindUserByID(entry.CompletedUserID); u != nil {
				name = u.Name
			}
			buckets[i].Users = append(buckets[i].Users, name)
		}
	}

	sort.SliceStable(buckets, func(i, j int) bool { return buckets[i].Count > buckets[j].Count })
	return buckets
}

// DashboardSummary is the header strip of the calendar view.
type DashboardSummary struct {
	Completed     int // completed entries, all history
	Planned       int // currently planned entries
	WeekCompleted int // completed entries within the current week
}

// ComputeDashboardSummary counts entry states for the dashboard header.
// WeekCompleted always covers the current week regardless of which week
// the calendar is showing.
func ComputeDashboardSummary(data *domain.AppData, today time.Time) DashboardSummary {
	week := make(map[string]bool, 7)
	for _, date := range domain.DateRange(today, 7, 0) {
		week[date] = true
	}

	var s DashboardSummary
	for _, entry := range data.WateringEntries {
		switch entry.Status {
		case domain.StatusCompleted:
			s.Completed++
			if week[entry.Date] {
				s.WeekCompleted++
			}
		case domain.StatusPlanned:
			s.Planned++
		}
	}
	return s
}
