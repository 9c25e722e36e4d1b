package service

import "errors"

// User-facing errors surfaced by the service layer. All of them are
// recoverable; none is fatal to the process. The HTTP layer maps each one to
// a status code, infrastructure failures fall through as 500.
var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidRole         = errors.New("unknown account role")
	ErrInvalidCategory     = errors.New("unknown resource category")
	ErrInvalidEventType    = errors.New("unknown calendar event type")
	ErrInvalidEmail        = errors.New("invalid email format")
	ErrInvalidRating       = errors.New("rating must be between 1 and 5")

	// ErrDuplicateAccount is returned when registration targets an email
	// already bound to a verified account.
	ErrDuplicateAccount = errors.New("user already exists with this email")

	// ErrNotificationFailed is returned when the mail relay could not deliver
	// a verification code.
	ErrNotificationFailed = errors.New("failed to send verification email")

	// ErrInvalidCode is returned when no issued code matches the submitted
	// (email, code) pair.
	ErrInvalidCode = errors.New("invalid otp code")

	// ErrCodeExpired is returned when the matching code is past its expiry.
	ErrCodeExpired = errors.New("otp code has expired")

	// ErrCodeAlreadyUsed is returned when the matching code was already
	// consumed by an earlier verification.
	ErrCodeAlreadyUsed = errors.New("otp code has already been used")

	// ErrUserNotFound is returned when an operation targets an email or id
	// with no account behind it.
	ErrUserNotFound = errors.New("user not found")

	// ErrAlreadyVerified is returned when a resend targets an account that
	// has already completed verification.
	ErrAlreadyVerified = errors.New("account is already verified")

	// ErrAccountNotVerified is returned when login hits an account that has
	// not completed OTP verification yet.
	ErrAccountNotVerified = errors.New("account not verified")

	// ErrWrongCredentials is returned on a failed login. It deliberately does
	// not distinguish a missing account from a wrong password.
	ErrWrongCredentials = errors.New("invalid email or password")

	// ErrTokenIsExpiredOrInvalid is returned for any session token that fails
	// signature, issuer or expiry checks.
	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")

	// ErrAdminRequired is returned when a non-admin invokes an admin-only
	// operation.
	ErrAdminRequired = errors.New("admin access required")
)
