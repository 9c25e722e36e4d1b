package http

import (
	"net/http"

	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/internal/utils"
	"github.com/dkoval/college-resource-hub/models"
)

func (h *Handler) addBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	resourceID, err := idParam(r, "resourceID")
	if err != nil {
		log.Err(err).Msg("invalid resource id")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid resource id"}, http.StatusBadRequest)
		return
	}

	if err := h.services.BookmarkService.Add(ctx, userID, resourceID); err != nil {
		log.Err(err).Int64("resource_id", resourceID).Msg("adding bookmark failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Resource bookmarked"}, http.StatusCreated)
}

func (h *Handler) listBookmarks(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	bookmarks, err := h.services.BookmarkService.List(ctx, userID)
	if err != nil {
		log.Err(err).Msg("listing bookmarks failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, bookmarks, http.StatusOK)
}

func (h *Handler) removeBookmark(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	resourceID, err := idParam(r, "resourceID")
	if err != nil {
		log.Err(err).Msg("invalid resource id")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid resource id"}, http.StatusBadRequest)
		return
	}

	if err := h.services.BookmarkService.Remove(ctx, userID, resourceID); err != nil {
		log.Err(err).Int64("resource_id", resourceID).Msg("removing bookmark failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Bookmark removed"}, http.StatusOK)
}
