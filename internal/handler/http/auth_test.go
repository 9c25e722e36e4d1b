package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/internal/service"
	"github.com/dkoval/college-resource-hub/models"
)

// ─────────────────────────────────────────────
// Mock: service.AuthService
// ─────────────────────────────────────────────

type mockAuthService struct {
	registerFn    func(ctx context.Context, input service.RegisterInput) (service.RegisterResult, error)
	verifyOTPFn   func(ctx context.Context, email, code string) (models.User, models.Token, error)
	resendOTPFn   func(ctx context.Context, email string) error
	loginFn       func(ctx context.Context, email, password string) (models.User, models.Token, error)
	createTokenFn func(ctx context.Context, user models.User) (models.Token, error)
	parseTokenFn  func(ctx context.Context, tokenString string) (models.Token, error)
}

func (m *mockAuthService) Register(ctx context.Context, input service.RegisterInput) (service.RegisterResult, error) {
	if m.registerFn != nil {
		return m.registerFn(ctx, input)
	}
	return service.RegisterResult{UserID: 1, Email: input.Email}, nil
}

func (m *mockAuthService) VerifyOTP(ctx context.Context, email, code string) (models.User, models.Token, error) {
	if m.verifyOTPFn != nil {
		return m.verifyOTPFn(ctx, email, code)
	}
	return models.User{UserID: 1, Email: email, IsVerified: true}, models.Token{SignedString: "signed"}, nil
}

func (m *mockAuthService) ResendOTP(ctx context.Context, email string) error {
	if m.resendOTPFn != nil {
		return m.resendOTPFn(ctx, email)
	}
	return nil
}

func (m *mockAuthService) Login(ctx context.Context, email, password string) (models.User, models.Token, error) {
	if m.loginFn != nil {
		return m.loginFn(ctx, email, password)
	}
	return models.User{UserID: 1, Email: email, IsVerified: true}, models.Token{SignedString: "signed"}, nil
}

func (m *mockAuthService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	if m.createTokenFn != nil {
		return m.createTokenFn(ctx, user)
	}
	return models.Token{SignedString: "signed", UserID: user.UserID}, nil
}

func (m *mockAuthService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	if m.parseTokenFn != nil {
		return m.parseTokenFn(ctx, tokenString)
	}
	return models.Token{UserID: 1, Role: models.RoleStudent}, nil
}

func newAuthTestRouter(auth service.AuthService) http.Handler {
	h := NewHandler(&service.Services{AuthService: auth}, logger.Nop())
	return h.Init()
}

func doJSON(t *testing.T, router http.Handler, method, target, body string) *httptest.ResponseRecorder {
	t.Helper()

	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

// ─────────────────────────────────────────────
// POST /api/auth/register
// ─────────────────────────────────────────────

func TestRegisterHandler_Success(t *testing.T) {
	auth := &mockAuthService{
		registerFn: func(_ context.Context, input service.RegisterInput) (service.RegisterResult, error) {
			assert.Equal(t, "Alice", input.Name)
			assert.Equal(t, "alice@college.edu", input.Email)
			return service.RegisterResult{UserID: 7, Email: input.Email}, nil
		},
	}
	router := newAuthTestRouter(auth)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register",
		`{"name":"Alice","email":"alice@college.edu","password":"s3cret-pass","department":"CSE"}`)

	require.Equal(t, http.StatusCreated, rec.Code)

	var resp models.RegisterResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, int64(7), resp.TempUserID)
	assert.Equal(t, "alice@college.edu", resp.Email)
	assert.Contains(t, resp.Message, "check your email")
}

func TestRegisterHandler_InvalidJSON(t *testing.T) {
	router := newAuthTestRouter(&mockAuthService{})

	rec := doJSON(t, router, http.MethodPost, "/api/auth/register", `{not json`)

	require.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "missing fields", serviceErr: service.ErrInvalidDataProvided, wantStatus: http.StatusBadRequest},
		{name: "unknown role", serviceErr: service.ErrInvalidRole, wantStatus: http.StatusBadRequest},
		{name: "duplicate account", serviceErr: service.ErrDuplicateAccount, wantStatus: http.StatusConflict},
		{name: "mail relay down", serviceErr: service.ErrNotificationFailed, wantStatus: http.StatusBadGateway},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				registerFn: func(_ context.Context, _ service.RegisterInput) (service.RegisterResult, error) {
					return service.RegisterResult{}, tt.serviceErr
				},
			}
			router := newAuthTestRouter(auth)

			rec := doJSON(t, router, http.MethodPost, "/api/auth/register",
				`{"name":"Alice","email":"alice@college.edu","password":"s3cret-pass"}`)

			require.Equal(t, tt.wantStatus, rec.Code)

			var resp models.ErrorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Equal(t, tt.serviceErr.Error(), resp.Error)
		})
	}
}

// ─────────────────────────────────────────────
// POST /api/auth/verify-otp
// ─────────────────────────────────────────────

func TestVerifyOTPHandler_Success(t *testing.T) {
	auth := &mockAuthService{
		verifyOTPFn: func(_ context.Context, email, code string) (models.User, models.Token, error) {
			assert.Equal(t, "alice@college.edu", email)
			assert.Equal(t, "123456", code)
			return models.User{UserID: 7, Email: email, IsVerified: true},
				models.Token{SignedString: "signed-jwt"}, nil
		},
	}
	router := newAuthTestRouter(auth)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/verify-otp",
		`{"email":"alice@college.edu","otp":"123456"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "signed-jwt", resp.Token)
	assert.True(t, resp.User.IsVerified)
}

func TestVerifyOTPHandler_ErrorMapping(t *testing.T) {
	tests := []struct {
		name       string
		serviceErr error
		wantStatus int
	}{
		{name: "wrong code", serviceErr: service.ErrInvalidCode, wantStatus: http.StatusBadRequest},
		{name: "expired code", serviceErr: service.ErrCodeExpired, wantStatus: http.StatusBadRequest},
		{name: "consumed code", serviceErr: service.ErrCodeAlreadyUsed, wantStatus: http.StatusBadRequest},
		{name: "vanished account", serviceErr: service.ErrUserNotFound, wantStatus: http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			auth := &mockAuthService{
				verifyOTPFn: func(_ context.Context, _, _ string) (models.User, models.Token, error) {
					return models.User{}, models.Token{}, tt.serviceErr
				},
			}
			router := newAuthTestRouter(auth)

			rec := doJSON(t, router, http.MethodPost, "/api/auth/verify-otp",
				`{"email":"alice@college.edu","otp":"000000"}`)

			require.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}

// ─────────────────────────────────────────────
// POST /api/auth/resend-otp
// ─────────────────────────────────────────────

func TestResendOTPHandler_Success(t *testing.T) {
	router := newAuthTestRouter(&mockAuthService{})

	rec := doJSON(t, router, http.MethodPost, "/api/auth/resend-otp",
		`{"email":"alice@college.edu"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.MessageResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Contains(t, resp.Message, "verification code")
}

func TestResendOTPHandler_AlreadyVerified(t *testing.T) {
	auth := &mockAuthService{
		resendOTPFn: func(_ context.Context, _ string) error {
			return service.ErrAlreadyVerified
		},
	}
	router := newAuthTestRouter(auth)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/resend-otp",
		`{"email":"alice@college.edu"}`)

	require.Equal(t, http.StatusConflict, rec.Code)
}

// ─────────────────────────────────────────────
// POST /api/auth/login
// ─────────────────────────────────────────────

func TestLoginHandler_Success(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, email, password string) (models.User, models.Token, error) {
			assert.Equal(t, "alice@college.edu", email)
			assert.Equal(t, "s3cret-pass", password)
			return models.User{UserID: 7, Email: email, IsVerified: true},
				models.Token{SignedString: "signed-jwt"}, nil
		},
	}
	router := newAuthTestRouter(auth)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login",
		`{"email":"alice@college.edu","password":"s3cret-pass"}`)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.AuthResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "Login successful", resp.Message)
	assert.Equal(t, "signed-jwt", resp.Token)
}

func TestLoginHandler_WrongCredentials(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, models.Token, error) {
			return models.User{}, models.Token{}, service.ErrWrongCredentials
		},
	}
	router := newAuthTestRouter(auth)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login",
		`{"email":"alice@college.edu","password":"wrong"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestLoginHandler_UnverifiedAccountFlagsVerification(t *testing.T) {
	auth := &mockAuthService{
		loginFn: func(_ context.Context, _, _ string) (models.User, models.Token, error) {
			return models.User{}, models.Token{}, service.ErrAccountNotVerified
		},
	}
	router := newAuthTestRouter(auth)

	rec := doJSON(t, router, http.MethodPost, "/api/auth/login",
		`{"email":"alice@college.edu","password":"s3cret-pass"}`)

	require.Equal(t, http.StatusUnauthorized, rec.Code)

	var resp models.LoginRequiresVerification
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.RequiresVerification)
	assert.Equal(t, "alice@college.edu", resp.Email)
}
