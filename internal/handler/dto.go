package handler

import (
	"github.com/mhollis/gardenshare/internal/domain"
	"github.com/mhollis/gardenshare/internal/service"
)

// Users and watering entries are returned in their persisted JSON shape,
// so only the derived views need mapping here.

// ActivityItemDTO is an activity record with the display name resolved.
type ActivityItemDTO struct {
	ID        string `json:"id"`
	UserID    string `json:"userId"`
	UserName  string `json:"userName"`
	Action    string `json:"action"`
	Date      string `json:"date"`
	Timestamp string `json:"timestamp"`
}

func toActivityItemDTO(a domain.UserActivity, data *domain.AppData) ActivityItemDTO {
	name := "Unknown Gardener"
	if u := data.FindUserByID(a.UserID); u != nil {
		name = u.Name
	}
	return ActivityItemDTO{
		ID:        a.ID,
		UserID:    a.UserID,
		UserName:  name,
		Action:    a.Action,
		Date:      a.Date,
		Timestamp: a.Timestamp,
	}
}

// UserStatsDTO is one row of the gardener ranking.
type UserStatsDTO struct {
	UserID         string  `json:"userId"`
	Name           string  `json:"name"`
	TotalCompleted int     `json:"totalCompleted"`
	TotalPlanned   int     `json:"totalPlanned"`
	CompletionRate float64 `json:"completionRate"`
	Streak         int     `json:"streak"`
	LastWatered    string  `json:"lastWatered,omitempty"`
}

// DayStatsDTO is one weekday bucket.
type DayStatsDTO struct {
	Day   string   `json:"day"`
	Count int      `json:"count"`
	Users []string `json:"users"`
}

// StatisticsDTO is the full statistics payload.
type StatisticsDTO struct {
	UserStats      []UserStatsDTO `json:"userStats"`
	DayStats       []DayStatsDTO  `json:"dayStats"`
	TotalWaterings int            `json:"totalWaterings"`
	ActiveUsers    int            `json:"activeUsers"`
	AveragePerDay  float64        `json:"averagePerDay"`
}

func toStatisticsDTO(s service.Statistics) StatisticsDTO {
	users := make([]UserStatsDTO, len(s.UserStats))
	for i, us := range s.UserStats {
		users[i] = UserStatsDTO{
			UserID:         us.UserID,
			Name:           us.Name,
			TotalCompleted: us.TotalCompleted,
			TotalPlanned:   us.TotalPlanned,
			CompletionRate: us.CompletionRate,
			Streak:         us.Streak,
			LastWatered:    us.LastWatered,
		}
	}
	days := make([]DayStatsDTO, len(s.DayStats))
	for i, ds := range s.DayStats {
		days[i] = DayStatsDTO{Day: ds.Day, Count: ds.Count, Users: ds.Users}
	}
	return StatisticsDTO{
		UserStats:      users,
		DayStats:       days,
		TotalWaterings: s.TotalWaterings,
		ActiveUsers:    s.ActiveUsers,
		AveragePerDay:  s.AveragePerDay,
	}
}

// DashboardDTO is the counter strip above the calendar.
type DashboardDTO struct {
	WeekCompleted int `json:"weekCompleted"`
	Planned       int `json:"planned"`
	Completed     int `json:"completed"`
	Gardeners     int `json:"gardeners"`
}
