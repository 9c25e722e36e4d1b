package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/internal/service"
	"github.com/dkoval/college-resource-hub/internal/utils"
	"github.com/dkoval/college-resource-hub/models"
)

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input service.RegisterInput
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	result, err := h.services.AuthService.Register(ctx, input)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrInvalidDataProvided) || errors.Is(err, service.ErrInvalidRole):
			log.Err(err).Msg("invalid data provided")
			utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadRequest)
			return
		case errors.Is(err, service.ErrDuplicateAccount):
			log.Err(err).Msg("email already registered")
			utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusConflict)
			return
		case errors.Is(err, service.ErrNotificationFailed):
			log.Err(err).Msg("verification email was not delivered")
			utils.WriteJSON(w, models.ErrorResponse{Error: err.Error()}, http.StatusBadGateway)
			return
		default:
			log.Err(err).Msg("unexpected error occurred during user registration")
			utils.WriteJSON(w, models.ErrorResponse{Error: http.StatusText(http.StatusInternalServerError)}, http.StatusInternalServerError)
			return
		}
	}

	utils.WriteJSON(w, models.RegisterResponse{
		Message:    "Registration successful. Please check your email for the verification code.",
		TempUserID: result.UserID,
		Email:      result.Email,
	}, http.StatusCreated)
}

func (h *Handler) verifyOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input struct {
		Email string `json:"email"`
		Code  string `json:"otp"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	user, token, err := h.services.AuthService.VerifyOTP(ctx, input.Email, input.Code)
	if err != nil {
		log.Err(err).Str("email", input.Email).Msg("otp verification failed")
		writeError(w, err)
		return
	}

	log.Debug().Int64("id", user.UserID).Msg("account verified")

	utils.WriteJSON(w, models.AuthResponse{
		Message: "Email verified successfully! Welcome to College Resource Hub.",
		User:    user,
		Token:   token.SignedString,
	}, http.StatusOK)
}

func (h *Handler) resendOTP(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	if err := h.services.AuthService.ResendOTP(ctx, input.Email); err != nil {
		log.Err(err).Str("email", input.Email).Msg("otp resend failed")
		writeError(w, err)
		return
	}

	utils.WriteJSON(w, models.MessageResponse{
		Message: "A new verification code has been sent to your email.",
	}, http.StatusOK)
}

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	log := logger.FromRequest(r)

	var input struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&input); err != nil {
		log.Err(err).Msg("Invalid JSON was passed")
		utils.WriteJSON(w, models.ErrorResponse{Error: "Invalid JSON was passed"}, http.StatusBadRequest)
		return
	}

	user, token, err := h.services.AuthService.Login(ctx, input.Email, input.Password)
	if err != nil {
		switch {
		case errors.Is(err, service.ErrAccountNotVerified):
			// The SPA redirects to the OTP screen on this response.
			log.Err(err).Str("email", input.Email).Msg("login hit an unverified account")
			utils.WriteJSON(w, models.LoginRequiresVerification{
				Error:                err.Error(),
				RequiresVerification: true,
				Email:                input.Email,
			}, http.StatusUnauthorized)
			return
		default:
			log.Err(err).Msg("login failed")
			writeError(w, err)
			return
		}
	}

	log.Debug().Int64("id", user.UserID).Msg("user successfully logged in")

	utils.WriteJSON(w, models.AuthResponse{
		Message: "Login successful",
		User:    user,
		Token:   token.SignedString,
	}, http.StatusOK)
}
