package handler

import (
	"net/http"

	"github.com/mhollis/gardenshare/internal/service"
)

// RegisterRoutes sets up all HTTP routes on the given mux.
func RegisterRoutes(mux *http.ServeMux, identity *service.IdentityService, watering *service.WateringService, cookieSecure bool) {
	auth := NewAuthHandler(identity, cookieSecure)
	calendar := NewCalendarHandler(watering)
	activity := NewActivityHandler(watering, identity)
	stats := NewStatsHandler(watering)

	mux.HandleFunc("GET /healthz", HandleHealthz)

	mux.HandleFunc("POST /api/auth/login", auth.HandleLogin)
	mux.HandleFunc("POST /api/auth/logout", auth.HandleLogout)
	mux.Handle("GET /api/auth/me", RequireAuth(identity, http.HandlerFunc(auth.HandleMe)))

	mux.Handle("GET /api/calendar", RequireAuth(identity, http.HandlerFunc(calendar.HandleWeek)))
	mux.Handle("POST /api/calendar/{date}/plan", RequireAuth(identity, http.HandlerFunc(calendar.HandlePlan)))
	mux.Handle("POST /api/calendar/{date}/complete", RequireAuth(identity, http.HandlerFunc(calendar.HandleComplete)))
	mux.Handle("POST /api/calendar/{date}/cancel", RequireAuth(identity, http.HandlerFunc(calendar.HandleCancel)))

	mux.Handle("GET /api/activity", RequireAuth(identity, http.HandlerFunc(activity.HandleActivity)))
	mux.Handle("GET /api/stats", RequireAuth(identity, http.HandlerFunc(stats.HandleStats)))
	mux.Handle("GET /api/dashboard", RequireAuth(identity, http.HandlerFunc(stats.HandleDashboard)))
}
