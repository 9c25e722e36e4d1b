package models

import "time"

// OTPCode is one issued one-time verification code. Several rows may exist
// per email over time; only the most recently created, matching, unconsumed
// and unexpired one is actionable. Older rows are deleted before a new code
// is inserted, so at most one valid code exists per email at any moment.
type OTPCode struct {
	// OTPID is the internal unique identifier of the code row.
	OTPID int64 `json:"-"`

	// Email is the address the code was issued for.
	Email string `json:"email"`

	// Code is the fixed-width 6-digit numeric code as typed by the user.
	Code string `json:"-"`

	// ExpiresAt is the absolute expiry timestamp (issue time + 10 minutes).
	ExpiresAt time.Time `json:"expires_at"`

	// Consumed is set exactly once when the code is successfully verified.
	Consumed bool `json:"-"`

	// CreatedAt orders competing codes for the same email; the newest wins.
	CreatedAt time.Time `json:"-"`
}

// Expired reports whether the code is past its expiry at the given instant.
func (o OTPCode) Expired(now time.Time) bool {
	return now.After(o.ExpiresAt)
}

// TableName returns the name of the database table
// associated with the OTPCode model.
func (o OTPCode) TableName() string {
	return "otp_codes"
}
