package handler

import (
	"net/http"

	"github.com/mhollis/gardenshare/internal/service"
)

// ActivityHandler serves the household activity feed.
type ActivityHandler struct {
	watering *service.WateringService
	identity *service.IdentityService
}

// NewActivityHandler creates a new ActivityHandler.
func NewActivityHandler(watering *service.WateringService, identity *service.IdentityService) *ActivityHandler {
	return &ActivityHandler{watering: watering, identity: identity}
}

// HandleActivity returns the activity log, newest first, with display
// names resolved for rendering.
// GET /api/activity
// Response: {"activities": [...]}
func (h *ActivityHandler) HandleActivity(w http.ResponseWriter, r *http.Request) {
	data := h.watering.Snapshot(r.Context())

	items := make([]ActivityItemDTO, 0, len(data.Activities))
	for _, a := range data.Activities {
		items = append(items, toActivityItemDTO(a, data))
	}

	writeJSON(w, http.StatusOK, map[string]any{
		"activities": items,
	})
}
