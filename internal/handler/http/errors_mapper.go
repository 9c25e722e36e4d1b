package http

import (
	"errors"
	"net/http"

	"github.com/dkoval/college-resource-hub/internal/service"
	"github.com/dkoval/college-resource-hub/internal/store"
	"github.com/dkoval/college-resource-hub/internal/utils"
	"github.com/dkoval/college-resource-hub/models"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidRole:         http.StatusBadRequest,
	service.ErrInvalidCategory:     http.StatusBadRequest,
	service.ErrInvalidEventType:    http.StatusBadRequest,
	service.ErrInvalidEmail:        http.StatusBadRequest,
	service.ErrInvalidRating:       http.StatusBadRequest,
	service.ErrInvalidCode:         http.StatusBadRequest,
	service.ErrCodeExpired:         http.StatusBadRequest,
	service.ErrCodeAlreadyUsed:     http.StatusBadRequest,

	service.ErrWrongCredentials:        http.StatusUnauthorized,
	service.ErrAccountNotVerified:      http.StatusUnauthorized,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,

	service.ErrAdminRequired: http.StatusForbidden,

	service.ErrUserNotFound: http.StatusNotFound,

	service.ErrDuplicateAccount: http.StatusConflict,
	service.ErrAlreadyVerified:  http.StatusConflict,

	service.ErrNotificationFailed: http.StatusBadGateway,

	store.ErrEmailAlreadyExists: http.StatusConflict,
	store.ErrAlreadyBookmarked:  http.StatusConflict,
	store.ErrAlreadySubscribed:  http.StatusConflict,
	store.ErrNoUserWasFound:     http.StatusNotFound,
	store.ErrResourceNotFound:   http.StatusNotFound,
	store.ErrBookmarkNotFound:   http.StatusNotFound,
	store.ErrFeedbackNotFound:   http.StatusNotFound,
	store.ErrOTPNotFound:        http.StatusBadRequest,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}

// writeError maps err to an HTTP status and writes the uniform JSON error
// body. Internal failures are masked with a generic message.
func writeError(w http.ResponseWriter, err error) {
	status := statusFromError(err)

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = http.StatusText(http.StatusInternalServerError)
	}

	utils.WriteJSON(w, models.ErrorResponse{Error: message}, status)
}
