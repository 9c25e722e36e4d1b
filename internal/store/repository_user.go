package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles account creation, lookup, verification flagging and unverified
// account cleanup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// Create persists a new unverified account and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt, UpdatedAt).
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error".
//   - Scan failure → returned directly.
func (r *userRepository) Create(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Name, user.Email, user.PasswordHash, user.Role, user.Department)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.Create").Msg("error: row is nil")

		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			return models.User{}, ErrEmailAlreadyExists
		default:
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	if err := row.Scan(&user.UserID, &user.CreatedAt, &user.UpdatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.Create").Msg("error: scanning error")
		return models.User{}, err
	}

	user.IsVerified = false
	return user, nil
}

// FindByEmail retrieves the account whose email matches exactly.
//
// Returns [ErrNoUserWasFound] when no row matches; any other driver-level
// error is wrapped as "unexpected DB error".
func (r *userRepository) FindByEmail(ctx context.Context, email string) (models.User, error) {
	return r.findOne(ctx, findUserByEmail, email)
}

// FindByID retrieves the account with the given identifier.
//
// Returns [ErrNoUserWasFound] when no row matches; any other driver-level
// error is wrapped as "unexpected DB error".
func (r *userRepository) FindByID(ctx context.Context, userID int64) (models.User, error) {
	return r.findOne(ctx, findUserByID, userID)
}

func (r *userRepository) findOne(ctx context.Context, query string, arg any) (models.User, error) {
	log := logger.FromContext(ctx)

	var user models.User
	row := r.db.QueryRowContext(ctx, query, arg)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*userRepository.findOne").Msg("error: row is nil")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	err := row.Scan(&user.UserID, &user.Name, &user.Email, &user.PasswordHash,
		&user.Role, &user.Department, &user.IsVerified, &user.CreatedAt, &user.UpdatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.User{}, ErrNoUserWasFound
	}
	if err != nil {
		log.Err(err).Str("func", "*userRepository.findOne").Msg("error: scanning error")
		return models.User{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return user, nil
}

// DeleteUnverified removes an unverified account with the given email.
// A missing or already-verified row is not an error; the delete simply
// affects zero rows.
func (r *userRepository) DeleteUnverified(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteUnverifiedUser, email); err != nil {
		log.Err(err).Str("func", "*userRepository.DeleteUnverified").Msg("error deleting unverified user")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// SetVerified flips the verification flag for the account with the given
// email and returns the number of affected rows. Zero affected rows means
// the account does not exist; the caller decides how to surface that.
func (r *userRepository) SetVerified(ctx context.Context, email string) (int64, error) {
	log := logger.FromContext(ctx)

	result, err := r.db.ExecContext(ctx, setUserVerified, email)
	if err != nil {
		log.Err(err).Str("func", "*userRepository.SetVerified").Msg("error setting user verified")
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return affected, nil
}
