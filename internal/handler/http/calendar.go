package http

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/internal/utils"
	"github.com/dkoval/college-resource-hub/models"
)

func (h *Handler) listCalendar(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	// Both month and year must be present for the filter to apply;
	// unparsable values fall back to an unfiltered listing.
	var filter models.CalendarFilter
	filter.Month, _ = strconv.Atoi(r.URL.Query().Get("month"))
	filter.Year, _ = strconv.Atoi(r.URL.Query().Get("year"))

	events, err := h.services.CalendarService.List(ctx, filter)
	if err != nil {
		log.Err(err).Msg("listing calendar events failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, events, http.StatusOK)
}

func (h *Handler) addCalendarEvent(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	role, ok := utils.GetRoleFromContext(ctx)
	if !ok {
		log.Error().Msg("no role in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	var event models.CalendarEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}
	event.CreatedBy = userID

	created, err := h.services.CalendarService.Add(ctx, role, event)
	if err != nil {
		log.Err(err).Msg("adding calendar event failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}
