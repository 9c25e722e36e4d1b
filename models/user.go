package models

import "time"

// Role is the closed set of account roles recognised by the application.
// Free-form role strings coming from clients are rejected at the service
// boundary via [Role.Valid].
type Role string

const (
	RoleStudent Role = "student"
	RoleFaculty Role = "faculty"
	RoleAdmin   Role = "admin"
)

// Valid reports whether r is one of the known roles.
func (r Role) Valid() bool {
	switch r {
	case RoleStudent, RoleFaculty, RoleAdmin:
		return true
	}
	return false
}

// User represents an account entity used for authentication and authorization.
// PasswordHash must never leave trusted boundaries; it is excluded from JSON.
type User struct {
	// UserID is the internal unique identifier of the user.
	UserID int64 `json:"id"`

	// Name is the display name of the user.
	Name string `json:"name"`

	// Email is the unique account identifier used during authentication
	// and OTP delivery. Stored case-sensitively.
	Email string `json:"email"`

	// PasswordHash is the bcrypt hash of the user's password.
	// Never exposed via JSON.
	PasswordHash string `json:"-"`

	// Role determines the user's privileges (student, faculty, admin).
	Role Role `json:"role"`

	// Department is an optional free-text department tag.
	Department string `json:"department,omitempty"`

	// IsVerified is false until the user completes OTP verification.
	IsVerified bool `json:"is_verified"`

	// CreatedAt is the timestamp when the account row was inserted.
	CreatedAt time.Time `json:"created_at"`

	// UpdatedAt tracks the last mutation of the account row.
	UpdatedAt time.Time `json:"-"`
}

// TableName returns the name of the database table
// associated with the User model.
func (u User) TableName() string {
	return "users"
}
