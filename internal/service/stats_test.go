package service

import (
	"testing"
	"time"

	"github.com/mhollis/gardenshare/internal/domain"
)

// statsFixture builds a snapshot with two gardeners and no entries.
func statsFixture() *domain.AppData {
	data := domain.DefaultAppData()
	data.Users = append(data.Users,
		domain.User{ID: "u1", Email: "rosa@example.com", Name: "Rosa Alvarez"},
		domain.User{ID: "u2", Email: "ben@example.com", Name: "Ben Okafor"},
	)
	return data
}

func completedOn(date, userID string) domain.WateringEntry {
	return domain.WateringEntry{
		ID:              "e-" + date,
		Date:            date,
		Status:          domain.StatusCompleted,
		CompletedUserID: userID,
		CompletedAt:     date + "T08:00:00Z",
	}
}

var statsToday = time.Date(2026, 8, 31, 12, 0, 0, 0, time.UTC) // a Monday

func TestComputeStatistics_StreakConsecutiveDays(t *testing.T) {
	data := statsFixture()
	// Today, yesterday, and the day before.
	data.WateringEntries = append(data.WateringEntries,
		completedOn("2026-08-31", "u1"),
		completedOn("2026-08-30", "u1"),
		completedOn("2026-08-29", "u1"),
	)

	stats := ComputeStatistics(data, statsToday)

	if got := findUserStats(t, stats, "u1").Streak; got != 3 {
		t.Fatalf("expected streak 3, got %d", got)
	}
}

func TestComputeStatistics_StreakStopsAtGap(t *testing.T) {
	data := statsFixture()
	// Today and three days ago; the gap ends the streak after 1.
	data.WateringEntries = append(data.WateringEntries,
		completedOn("2026-08-31", "u1"),
		completedOn("2026-08-28", "u1"),
	)

	stats := ComputeStatistics(data, statsToday)

	if got := findUserStats(t, stats, "u1").Streak; got != 1 {
		t.Fatalf("expected streak 1, got %d", got)
	}
}

func TestComputeStatistics_StreakZeroWithoutToday(t *testing.T) {
	data := statsFixture()
	// Most recent completion was yesterday; the walk anchors at today,
	// so the very first comparison fails.
	data.WateringEntries = append(data.WateringEntries,
		completedOn("2026-08-30", "u1"),
		completedOn("2026-08-29", "u1"),
	)

	stats := ComputeStatistics(data, statsToday)

	if got := findUserStats(t, stats, "u1").Streak; got != 0 {
		t.Fatalf("expected streak 0, got %d", got)
	}
}

func TestComputeStatistics_CompletionRateAndLastWatered(t *testing.T) {
	data := statsFixture()
	data.WateringEntries = append(data.WateringEntries,
		completedOn("2026-08-20", "u1"),
		completedOn("2026-08-25", "u1"),
		domain.WateringEntry{
			ID: "p1", Date: "2026-09-02", Status: domain.StatusPlanned,
			AssignedUserID: "u1", PlannedAt: "2026-08-31T09:00:00Z",
		},
		domain.WateringEntry{
			ID: "p2", Date: "2026-09-03", Status: domain.StatusPlanned,
			AssignedUserID: "u1", PlannedAt: "2026-08-31T09:00:00Z",
		},
	)

	stats := ComputeStatistics(data, statsToday)
	us := findUserStats(t, stats, "u1")

	if us.TotalCompleted != 2 || us.TotalPlanned != 2 {
		t.Fatalf("expected 2 completed / 2 planned, got %d / %d", us.TotalCompleted, us.TotalPlanned)
	}
	if us.CompletionRate != 50 {
		t.Fatalf("expected completion rate 50, got %v", us.CompletionRate)
	}
	if us.LastWatered != "2026-08-25" {
		t.Fatalf("expected last watered 2026-08-25, got %q", us.LastWatered)
	}

	// A gardener with no commitments has rate 0, not NaN.
	if other := findUserStats(t, stats, "u2"); other.CompletionRate != 0 {
		t.Fatalf("expected 0 rate for idle gardener, got %v", other.CompletionRate)
	}
}

func TestComputeStatistics_TotalsAcrossUsers(t *testing.T) {
	data := statsFixture()
	dates := []string{
		"2026-08-01", "2026-08-02", "2026-08-03", "2026-08-04", "2026-08-05",
		"2026-08-06", "2026-08-07", "2026-08-08", "2026-08-09", "2026-08-10",
	}
	for i, date := range dates {
		user := "u1"
		if i%3 == 0 {
			user = "u2"
		}
		data.WateringEntries = append(data.WateringEntries, completedOn(date, user))
	}

	stats := ComputeStatistics(data, statsToday)

	if stats.TotalWaterings != 10 {
		t.Fatalf("expected 10 total waterings, got %d", stats.TotalWaterings)
	}
	sum := 0
	for _, us := range stats.UserStats {
		sum += us.TotalCompleted
	}
	if sum != 10 {
		t.Fatalf("expected per-user totals to sum to 10, got %d", sum)
	}
	if stats.ActiveUsers != 2 {
		t.Fatalf("expected 2 active users, got %d", stats.ActiveUsers)
	}
	// The divisor is the weekday bucket count, always 7.
	if want := 10.0 / 7.0; stats.AveragePerDay != want {
		t.Fatalf("expected average %v, got %v", want, stats.AveragePerDay)
	}
}

func TestComputeStatistics_RankingOrder(t *testing.T) {
	data := statsFixture()
	data.WateringEntries = append(data.WateringEntries,
		completedOn("2026-08-20", "u2"),
		completedOn("2026-08-21", "u2"),
		completedOn("2026-08-22", "u1"),
	)

	stats := ComputeStatistics(data, statsToday)

	if stats.UserStats[0].UserID != "u2" {
		t.Fatalf("expected u2 ranked first, got %s", stats.UserStats[0].UserID)
	}
}

func TestComputeStatistics_WeekdayBuckets(t *testing.T) {
	data := statsFixture()
	// 2026-08-31 is a Monday, 2026-08-30 a Sunday, 2026-08-24 a Monday.
	data.WateringEntries = append(data.WateringEntries,
		completedOn("2026-08-31", "u1"),
		completedOn("2026-08-24", "u2"),
		completedOn("2026-08-30", "u1"),
	)

	stats := ComputeStatistics(data, statsToday)

	if len(stats.DayStats) != 7 {
		t.Fatalf("expected 7 weekday buckets, got %d", len(stats.DayStats))
	}
	top := stats.DayStats[0]
	if top.Day != "Monday" || top.Count != 2 {
		t.Fatalf("expected Monday with 2 waterings on top, got %s/%d", top.Day, top.Count)
	}
	if len(top.Users) != 2 {
		t.Fatalf("expected 2 distinct gardeners on Monday, got %v", top.Users)
	}

	// Empty buckets are still present, with zero counts.
	last := stats.DayStats[len(stats.DayStats)-1]
	if last.Count != 0 {
		t.Fatalf("expected trailing bucket to be empty, got %+v", last)
	}
}

func TestComputeDashboardSummary(t *testing.T) {
	data := statsFixture()
	data.WateringEntries = append(data.WateringEntries,
		completedOn("2026-08-31", "u1"), // inside the current week
		completedOn("2026-08-15", "u1"), // history
		domain.WateringEntry{
			ID: "p1", Date: "2026-09-02", Status: domain.StatusPlanned,
			AssignedUserID: "u2", PlannedAt: "2026-08-31T09:00:00Z",
		},
	)

	s := ComputeDashboardSummary(data, statsToday)

	if s.Completed != 2 {
		t.Fatalf("expected 2 completed, got %d", s.Completed)
	}
	if s.Planned != 1 {
		t.Fatalf("expected 1 planned, got %d", s.Planned)
	}
	if s.WeekCompleted != 1 {
		t.Fatalf("expected 1 completed this week, got %d", s.WeekCompleted)
	}
}

func findUserStats(t *testing.T, stats Statistics, userID string) UserStats {
	t.Helper()
	for _, us := range stats.UserStats {
		if us.UserID == userID {
			return us
		}
	}
	t.Fatalf("no stats for user %s", userID)
	return UserStats{}
}
