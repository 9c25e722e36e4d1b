package store

import "errors"

// Sentinel errors returned by repository methods to signal well-known failure
// conditions. Callers should use [errors.Is] to match against these values.
var (
	// ErrEmailAlreadyExists is returned when an INSERT into the users table
	// collides with the unique email constraint.
	ErrEmailAlreadyExists = errors.New("email already exists")

	// ErrNoUserWasFound is returned when a query expected to match a user
	// record produces an empty result set or affects zero rows.
	ErrNoUserWasFound = errors.New("no user was found")

	// ErrOTPNotFound is returned when no one-time code matches the supplied
	// (email, code) pair.
	ErrOTPNotFound = errors.New("no matching otp code was found")

	// ErrResourceNotFound is returned when a query targets a resource row
	// that does not exist.
	ErrResourceNotFound = errors.New("resource was not found")

	// ErrAlreadyBookmarked is returned when inserting a bookmark collides
	// with the unique (user_id, resource_id) constraint.
	ErrAlreadyBookmarked = errors.New("resource already bookmarked")

	// ErrBookmarkNotFound is returned when a bookmark delete affects zero rows.
	ErrBookmarkNotFound = errors.New("bookmark was not found")

	// ErrFeedbackNotFound is returned when a feedback update or delete scoped
	// by (id, user_id) affects zero rows.
	ErrFeedbackNotFound = errors.New("feedback was not found")

	// ErrAlreadySubscribed is returned when a newsletter subscription insert
	// collides with the unique email constraint.
	ErrAlreadySubscribed = errors.New("email already subscribed")
)

// Low-level database operation errors. These are returned (or wrapped) by
// repository methods when a SQL-level operation fails before any domain logic
// can be applied.
var (
	// ErrBuildingSQLQuery is returned when constructing a parameterised SQL
	// query fails (e.g. invalid argument count or unsupported type).
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when executing a SELECT or similar
	// read-only query against the database fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when executing a DML statement
	// (INSERT, UPDATE, DELETE) fails.
	ErrExecutingStatement = errors.New("failed to execute statement")

	// ErrScanningRow is returned when scanning column values from a single
	// result row into a destination struct fails.
	ErrScanningRow = errors.New("failed to scan row")

	// ErrScanningRows is returned when scanning column values during
	// multi-row iteration fails, typically mid-result-set.
	ErrScanningRows = errors.New("failed to scan rows")
)
