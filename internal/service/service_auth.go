// SPDX-License-Identifier: Apache-2.0

package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/dkoval/college-resource-hub/internal/config"
	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/internal/store"
	"github.com/dkoval/college-resource-hub/internal/utils"
	"github.com/dkoval/college-resource-hub/models"
)

// otpTTL is how long an issued one-time code stays valid.
const otpTTL = 10 * time.Minute

// authService is the concrete implementation of [AuthService]. It orchestrates
// the user repository, the OTP repository and the mail notifier to move an
// account from "unverified" to "verified", and owns the JWT session token
// lifecycle.
//
// The service holds no mutable state across requests. Two concurrent
// registrations or resends for the same email are resolved last-writer-wins:
// the newest inserted code is authoritative and earlier ones become
// permanently unusable once superseded. No locking is done, since code
// issuance is not safety-critical.
type authService struct {
	userRepository store.UserRepository
	otpRepository  store.OTPRepository
	notifier       Notifier

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// bcryptCost selects the bcrypt work factor; 0 means the library default.
	bcryptCost int

	logger *logger.Logger
}

// NewAuthService constructs an [AuthService] wired to the given repositories
// and notifier, with security parameters taken from cfg.
//
// The returned service is safe for concurrent use; all state is read-only
// after construction.
func NewAuthService(userRepository store.UserRepository, otpRepository store.OTPRepository, notifier Notifier, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		otpRepository:  otpRepository,
		notifier:       notifier,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		bcryptCost:     cfg.BcryptCost,
		logger:         logger,
	}
}

// Register creates an unverified account and emails it a one-time code.
//
// Branches on the existing state of the email:
//   - verified account exists → [ErrDuplicateAccount];
//   - unverified account exists → it is deleted and registration proceeds
//     (re-registration is allowed until verification completes).
//
// On notifier failure the just-created account and code are rolled back with
// explicit compensating deletes (user first, then codes); failures of the
// compensation itself are logged and never mask [ErrNotificationFailed].
func (a *authService) Register(ctx context.Context, input RegisterInput) (RegisterResult, error) {
	log := logger.FromContext(ctx)

	if input.Name == "" || input.Email == "" || input.Password == "" {
		log.Error().Str("email", input.Email).Msg("invalid registration data provided")
		return RegisterResult{}, ErrInvalidDataProvided
	}

	if input.Role == "" {
		input.Role = models.RoleStudent
	}
	if !input.Role.Valid() {
		log.Error().Str("role", string(input.Role)).Msg("unknown role in registration")
		return RegisterResult{}, ErrInvalidRole
	}

	existing, err := a.userRepository.FindByEmail(ctx, input.Email)
	switch {
	case err == nil:
		if existing.IsVerified {
			return RegisterResult{}, ErrDuplicateAccount
		}
		// Unverified leftover from an earlier attempt: drop it and let the
		// user register again.
		if err := a.userRepository.DeleteUnverified(ctx, input.Email); err != nil {
			return RegisterResult{}, fmt.Errorf("removing stale unverified user failed: %w", err)
		}
	case errors.Is(err, store.ErrNoUserWasFound):
		// fresh email, proceed
	default:
		return RegisterResult{}, fmt.Errorf("user lookup failed: %w", err)
	}

	passwordHash, err := utils.HashPassword(input.Password, a.bcryptCost)
	if err != nil {
		return RegisterResult{}, fmt.Errorf("hashing password failed: %w", err)
	}

	user, err := a.userRepository.Create(ctx, models.User{
		Name:         input.Name,
		Email:        input.Email,
		PasswordHash: passwordHash,
		Role:         input.Role,
		Department:   input.Department,
	})
	if err != nil {
		return RegisterResult{}, fmt.Errorf("user creation failed: %w", err)
	}

	if err := a.issueCode(ctx, user.Email, user.Name); err != nil {
		// Compensating rollback: no transaction spans the notifier call, so
		// the inserted rows are removed explicitly, user first, then codes.
		if delErr := a.userRepository.DeleteUnverified(ctx, user.Email); delErr != nil {
			log.Err(delErr).Str("email", user.Email).Msg("rollback of unverified user failed")
		}
		if delErr := a.otpRepository.DeleteAllForEmail(ctx, user.Email); delErr != nil {
			log.Err(delErr).Str("email", user.Email).Msg("rollback of otp codes failed")
		}
		return RegisterResult{}, err
	}

	log.Info().Int64("user_id", user.UserID).Str("email", user.Email).Msg("registration initiated, otp sent")

	return RegisterResult{UserID: user.UserID, Email: user.Email}, nil
}

// issueCode generates a fresh 6-digit code, replaces any earlier codes for
// the email, and asks the notifier to deliver it. A delivery failure is
// surfaced as [ErrNotificationFailed].
func (a *authService) issueCode(ctx context.Context, email, name string) error {
	log := logger.FromContext(ctx)

	code := utils.GenerateOTP()
	expiresAt := time.Now().Add(otpTTL)

	if err := a.otpRepository.DeleteAllForEmail(ctx, email); err != nil {
		return fmt.Errorf("cleaning up old otp codes failed: %w", err)
	}

	if _, err := a.otpRepository.Insert(ctx, email, code, expiresAt); err != nil {
		return fmt.Errorf("storing otp code failed: %w", err)
	}

	if err := a.notifier.SendCode(ctx, email, code, name); err != nil {
		log.Err(err).Str("email", email).Msg("otp delivery failed")
		return fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}

	return nil
}

// VerifyOTP consumes a one-time code and completes account verification.
//
// The submitted code is compared with exact string equality against the most
// recently issued code for the email; expiry and consumption are checked in
// that order so the caller can distinguish [ErrCodeExpired] from
// [ErrCodeAlreadyUsed]. On success the account's verification flag is set,
// a session token is issued and a best-effort welcome email goes out
// (its failure is logged, never propagated).
func (a *authService) VerifyOTP(ctx context.Context, email, code string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if email == "" || code == "" {
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	otp, err := a.otpRepository.FindLatestMatching(ctx, email, code)
	if errors.Is(err, store.ErrOTPNotFound) {
		return models.User{}, models.Token{}, ErrInvalidCode
	}
	if err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("otp lookup failed: %w", err)
	}

	if otp.Expired(time.Now()) {
		return models.User{}, models.Token{}, ErrCodeExpired
	}
	if otp.Consumed {
		return models.User{}, models.Token{}, ErrCodeAlreadyUsed
	}

	if err := a.otpRepository.MarkConsumed(ctx, otp.OTPID); err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("marking otp consumed failed: %w", err)
	}

	affected, err := a.userRepository.SetVerified(ctx, email)
	if err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("setting user verified failed: %w", err)
	}
	if affected == 0 {
		// Should not occur in the normal flow: the code implies a user row.
		return models.User{}, models.Token{}, ErrUserNotFound
	}

	user, err := a.userRepository.FindByEmail(ctx, email)
	if err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("reloading verified user failed: %w", err)
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	if err := a.notifier.SendWelcome(ctx, user.Email, user.Name); err != nil {
		log.Err(err).Str("email", user.Email).Msg("welcome email delivery failed")
	}

	log.Info().Int64("user_id", user.UserID).Str("email", user.Email).Msg("account verified")

	return user, token, nil
}

// ResendOTP issues a fresh code to an existing unverified account.
//
// Fails with [ErrUserNotFound] when no account exists for the email and with
// [ErrAlreadyVerified] when verification has already completed. Unlike
// [Register], a notifier failure here needs no compensating deletes: the
// user row predates this call and must be preserved.
func (a *authService) ResendOTP(ctx context.Context, email string) error {
	if email == "" {
		return ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return ErrUserNotFound
	}
	if err != nil {
		return fmt.Errorf("user lookup failed: %w", err)
	}

	if user.IsVerified {
		return ErrAlreadyVerified
	}

	return a.issueCode(ctx, user.Email, user.Name)
}

// Login authenticates a verified account and issues a session token.
//
// Returns [ErrWrongCredentials] for both unknown emails and wrong passwords,
// and [ErrAccountNotVerified] when the account has not completed OTP
// verification yet.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, models.Token, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		return models.User{}, models.Token{}, ErrInvalidDataProvided
	}

	user, err := a.userRepository.FindByEmail(ctx, email)
	if errors.Is(err, store.ErrNoUserWasFound) {
		return models.User{}, models.Token{}, ErrWrongCredentials
	}
	if err != nil {
		return models.User{}, models.Token{}, fmt.Errorf("user lookup failed: %w", err)
	}

	if !user.IsVerified {
		return models.User{}, models.Token{}, ErrAccountNotVerified
	}

	if err := utils.CheckPassword(user.PasswordHash, password); err != nil {
		log.Warn().Str("email", email).Msg("failed login attempt")
		return models.User{}, models.Token{}, ErrWrongCredentials
	}

	token, err := a.CreateToken(ctx, user)
	if err != nil {
		return models.User{}, models.Token{}, err
	}

	return user, token, nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token is signed with the configured sign key, carries the configured
// issuer as the "iss" claim plus the account email and role, and expires
// after the configured duration. Validity is stateless: nothing is persisted
// server-side.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("token creation failed: %w", err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Any validation failure (expired, wrong issuer, bad signature, malformed)
// is normalised to [ErrTokenIsExpiredOrInvalid] so that callers do not need
// to inspect low-level JWT errors.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
