package http

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/internal/service"
	"github.com/dkoval/college-resource-hub/internal/utils"
	"github.com/dkoval/college-resource-hub/models"
)

// maxMultipartMemory bounds how much of a multipart upload is buffered in
// memory before spilling to temporary files.
const maxMultipartMemory = 32 << 20

func (h *Handler) uploadResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	if err := r.ParseMultipartForm(maxMultipartMemory); err != nil {
		log.Err(err).Msg("invalid multipart form")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid multipart form"}, http.StatusBadRequest)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		log.Err(err).Msg("no file in upload request")
		utils.WriteJSON(w, models.ErrorResponse{Error: "a file is required"}, http.StatusBadRequest)
		return
	}
	defer file.Close()

	input := service.UploadInput{
		Title:       r.FormValue("title"),
		Description: r.FormValue("description"),
		Subject:     r.FormValue("subject"),
		Department:  r.FormValue("department"),
		Category:    models.Category(r.FormValue("category")),
		FileName:    header.Filename,
		ContentType: header.Header.Get("Content-Type"),
		File:        file,
		UploadedBy:  userID,
	}

	resource, err := h.services.ResourceService.Upload(ctx, input)
	if err != nil {
		log.Err(err).Msg("resource upload failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", resource.ResourceID).Str("file", resource.FileName).Msg("resource uploaded")

	utils.WriteJSON(w, resource, http.StatusCreated)
}

func (h *Handler) listResources(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	filter := models.ResourceFilter{
		Department: r.URL.Query().Get("department"),
		Subject:    r.URL.Query().Get("subject"),
		Category:   r.URL.Query().Get("category"),
		Search:     r.URL.Query().Get("search"),
	}

	resources, err := h.services.ResourceService.List(ctx, filter)
	if err != nil {
		log.Err(err).Msg("resource listing failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, resources, http.StatusOK)
}

func (h *Handler) getResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	resourceID, err := idParam(r, "resourceID")
	if err != nil {
		log.Err(err).Msg("invalid resource id")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid resource id"}, http.StatusBadRequest)
		return
	}

	resource, err := h.services.ResourceService.Get(ctx, resourceID)
	if err != nil {
		log.Err(err).Int64("id", resourceID).Msg("resource lookup failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, resource, http.StatusOK)
}

func (h *Handler) downloadResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	resourceID, err := idParam(r, "resourceID")
	if err != nil {
		log.Err(err).Msg("invalid resource id")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid resource id"}, http.StatusBadRequest)
		return
	}

	resource, reader, err := h.services.ResourceService.Download(ctx, resourceID)
	if err != nil {
		log.Err(err).Int64("id", resourceID).Msg("resource download failed")
		writeError(w, err)
		return
	}
	defer reader.Close()

	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", resource.FileName))
	if resource.FileType != "" {
		w.Header().Set("Content-Type", resource.FileType)
	}

	http.ServeContent(w, r, resource.FileName, resource.CreatedAt, reader)
}

func (h *Handler) myUploads(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok {
		log.Error().Msg("no user id in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	resources, err := h.services.ResourceService.MyUploads(ctx, userID)
	if err != nil {
		log.Err(err).Msg("listing own uploads failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, resources, http.StatusOK)
}

func (h *Handler) approveResource(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	role, ok := utils.GetRoleFromContext(ctx)
	if !ok {
		log.Error().Msg("no role in request context")
		utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusUnauthorized)}, http.StatusUnauthorized)
		return
	}

	resourceID, err := idParam(r, "resourceID")
	if err != nil {
		log.Err(err).Msg("invalid resource id")
		utils.WriteJSON(w, models.ErrorResponse{Error: "invalid resource id"}, http.StatusBadRequest)
		return
	}

	var input struct {
		Approved bool `json:"approved"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if err := h.services.ResourceService.SetApproval(ctx, role, resourceID, input.Approved); err != nil {
		log.Err(err).Int64("id", resourceID).Msg("changing resource approval failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{Message: "Resource approval updated"}, http.StatusOK)
}
