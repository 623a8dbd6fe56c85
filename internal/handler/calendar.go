package handler

import (
	"net/http"
	"strconv"
	"time"

	"github.com/mhollis/gardenshare/internal/domain"
	"github.com/mhollis/gardenshare/internal/service"
)

// CalendarHandler serves the 7-day watering calendar and its actions.
//
// The action handlers enforce the presentability rules the data layer
// deliberately leaves out: who may complete a planned day, that plans are
// made for future days, and that only planned days can be cancelled. The
// underlying services stay permissive; this is the single place where the
// gating lives.
type CalendarHandler struct {
	watering *service.WateringService
	now      func() time.Time
}

// NewCalendarHandler creates a new CalendarHandler.
func NewCalendarHandler(watering *service.WateringService) *CalendarHandler {
	return &CalendarHandler{watering: watering, now: time.Now}
}

// HandleWeek returns the entries for a 7-day window.
// GET /api/calendar?offset=N  (offset in weeks, 0 = current week)
// Response: {"today":"...","offset":N,"entries":[...]}
func (h *CalendarHandler) HandleWeek(w http.ResponseWriter, r *http.Request) {
	offset := 0
	if v := r.URL.Query().Get("offset"); v != "" {
		parsed, err := strconv.Atoi(v)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid week offset.")
			return
		}
		offset = parsed
	}

	today := h.now()
	entries := h.watering.WeekEntries(r.Context(), today, offset)

	writeJSON(w, http.StatusOK, map[string]any{
		"today":   domain.FormatDate(today),
		"offset":  offset,
		"entries": entries,
	})
}

// HandlePlan assigns a future unassigned day to the signed-in gardener.
// POST /api/calendar/{date}/plan
// Response: {"entry": {...}}, 409 when the day is not plannable
func (h *CalendarHandler) HandlePlan(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not signed in.")
		return
	}
	date, ok := h.datePath(w, r)
	if !ok {
		return
	}

	today := domain.FormatDate(h.now())
	entry := h.watering.GetOrCreateEntry(r.Context(), date)
	if entry.Status != domain.StatusUnassigned || date <= today {
		writeError(w, http.StatusConflict, "This day cannot be planned.")
		return
	}

	planned := h.watering.Plan(r.Context(), date, user.ID)
	writeJSON(w, http.StatusOK, map[string]any{"entry": planned})
}

// HandleComplete records a watering for today or a past day. A planned
// day may only be completed by the gardener it is assigned to; an
// unassigned day may be logged by anyone.
// POST /api/calendar/{date}/complete
// Response: {"entry": {...}}, 409 when the day is not completable
func (h *CalendarHandler) HandleComplete(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not signed in.")
		return
	}
	date, ok := h.datePath(w, r)
	if !ok {
		return
	}

	today := domain.FormatDate(h.now())
	entry := h.watering.GetOrCreateEntry(r.Context(), date)

	allowed := date <= today &&
		(entry.Status == domain.StatusUnassigned ||
			(entry.Status == domain.StatusPlanned && entry.AssignedUserID == user.ID))
	if !allowed {
		writeError(w, http.StatusConflict, "This day cannot be completed.")
		return
	}

	completed := h.watering.Complete(r.Context(), date, user.ID)
	writeJSON(w, http.StatusOK, map[string]any{"entry": completed})
}

// HandleCancel reverts a plan the signed-in gardener made for today or a
// future day.
// POST /api/calendar/{date}/cancel
// Response: {"entry": {...}}, 409 when the day is not cancellable
func (h *CalendarHandler) HandleCancel(w http.ResponseWriter, r *http.Request) {
	user := UserFromContext(r.Context())
	if user == nil {
		writeError(w, http.StatusUnauthorized, "Not signed in.")
		return
	}
	date, ok := h.datePath(w, r)
	if !ok {
		return
	}

	today := domain.FormatDate(h.now())
	entry := h.watering.GetOrCreateEntry(r.Context(), date)

	allowed := entry.Status == domain.StatusPlanned &&
		entry.AssignedUserID == user.ID &&
		date >= today
	if !allowed {
		writeError(w, http.StatusConflict, "This day cannot be cancelled.")
		return
	}

	cancelled := h.watering.Cancel(r.Context(), date, user.ID)
	writeJSON(w, http.StatusOK, map[string]any{"entry": cancelled})
}

// datePath extracts and validates the {date} path segment.
func (h *CalendarHandler) datePath(w http.ResponseWriter, r *http.Request) (string, bool) {
	date := r.PathValue("date")
	if _, err := domain.ParseDate(date); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid date; expected YYYY-MM-DD.")
		return "", false
	}
	return date, true
}
