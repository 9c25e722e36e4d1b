package http

import (
	"encoding/json"
	"net/http"

	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/internal/utils"
	"github.com/dkoval/college-resource-hub/models"
)

func (h *Handler) addFeedback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	var feedback models.Feedback
	if err := json.NewDecoder(r.Body).Decode(&feedback); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}
	feedback.UserID = userID

	created, err := h.services.FeedbackService.Add(ctx, feedback)
	if err != nil {
		log.Err(err).Int64("resource_id", feedback.ResourceID).Msg("adding feedback failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, created, http.StatusCreated)
}

func (h *Handler) feedbackForResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	resourceID, err := idParam(r, "resourceID")
	if err != nil {
		log.Err(err).Msg("invalid resource id")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid resource id"}, http.StatusBadRequest)
		return
	}

	summary, err := h.services.FeedbackService.ForResource(ctx, resourceID)
	if err != nil {
		log.Err(err).Int64("resource_id", resourceID).Msg("listing resource feedback failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, summary, http.StatusOK)
}

func (h *Handler) myFeedback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	entries, err := h.services.FeedbackService.ByUser(ctx, userID)
	if err != nil {
		log.Err(err).Msg("listing own feedback failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, entries, http.StatusOK)
}

func (h *Handler) updateFeedback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	feedbackID, err := idParam(r, "feedbackID")
	if err != nil {
		log.Err(err).Msg("invalid feedback id")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid feedback id"}, http.StatusBadRequest)
		return
	}

	var input struct {
		Rating  int    `json:"rating"`
		Comment string `json:"comment"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if err := h.services.FeedbackService.Update(ctx, feedbackID, userID, input.Rating, input.Comment); err != nil {
		log.Err(err).Int64("id", feedbackID).Msg("updating feedback failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Feedback updated"}, http.StatusOK)
}

func (h *Handler) deleteFeedback(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	feedbackID, err := idParam(r, "feedbackID")
	if err != nil {
		log.Err(err).Msg("invalid feedback id")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid feedback id"}, http.StatusBadRequest)
		return
	}

	if err := h.services.FeedbackService.Delete(ctx, feedbackID, userID); err != nil {
		log.Err(err).Int64("id", feedbackID).Msg("deleting feedback failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Feedback deleted"}, http.StatusOK)
}
