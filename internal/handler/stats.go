package handler

import (
	"net/http"
	"time"

	"github.com/mhollis/gardenshare/internal/service"
)

// StatsHandler serves the derived statistics views.
type StatsHandler struct {
	watering *service.WateringService
	now      func() time.Time
}

// NewStatsHandler creates a new StatsHandler.
func NewStatsHandler(watering *service.WateringService) *StatsHandler {
	return &StatsHandler{watering: watering, now: time.Now}
}

// HandleStats returns the full statistics view: gardener rankings with
// streaks, weekday popularity, and totals. Recomputed from scratch on
// every request.
// GET /api/stats
func (h *StatsHandler) HandleStats(w http.ResponseWriter, r *http.Request) {
	data := h.watering.Snapshot(r.Context())
	stats := service.ComputeStatistics(data, h.now())

	writeJSON(w, http.StatusOK, toStatisticsDTO(stats))
}

// HandleDashboard returns the summary counters shown above the calendar.
// GET /api/dashboard
func (h *StatsHandler) HandleDashboard(w http.ResponseWriter, r *http.Request) {
	data := h.watering.Snapshot(r.Context())
	summary := service.ComputeDashboardSummary(data, h.now())

	writeJSON(w, http.StatusOK, DashboardDTO{
		WeekCompleted: summary.WeekCompleted,
		Planned:       summary.Planned,
		Completed:     summary.Completed,
		Gardeners:     len(data.Users),
	})
}
