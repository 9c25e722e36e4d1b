package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/models"
)

// otpRepository is the PostgreSQL-backed implementation of [OTPRepository].
// It manages rows of the "otp_codes" table. The table intentionally has no
// uniqueness constraint on email: the single-valid-code invariant is enforced
// by deleting prior rows before each insert, and [FindLatestMatching] always
// picks the newest row, so a superseded code can never verify.
type otpRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewOTPRepository constructs an [OTPRepository] backed by the provided
// database connection and logger.
func NewOTPRepository(db *DB, logger *logger.Logger) OTPRepository {
	logger.Debug().Msg("creating otp repository")
	return &otpRepository{
		db:     db,
		logger: logger,
	}
}

// Insert stores a freshly issued code and returns the persisted row with
// server-assigned fields (OTPID, CreatedAt).
func (r *otpRepository) Insert(ctx context.Context, email, code string, expiresAt time.Time) (models.OTPCode, error) {
	log := logger.FromContext(ctx)

	otp := models.OTPCode{
		Email:     email,
		Code:      code,
		ExpiresAt: expiresAt,
	}

	row := r.db.QueryRowContext(ctx, createOTP, email, code, expiresAt)
	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*otpRepository.Insert").Msg("error inserting otp code")
		return models.OTPCode{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	if err := row.Scan(&otp.OTPID, &otp.CreatedAt); err != nil {
		log.Err(err).Str("func", "*otpRepository.Insert").Msg("error: scanning error")
		return models.OTPCode{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return otp, nil
}

// DeleteAllForEmail removes every code ever issued for the given email.
// Called before each new issuance so earlier codes become permanently
// unusable once superseded.
func (r *otpRepository) DeleteAllForEmail(ctx context.Context, email string) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, deleteOTPsForEmail, email); err != nil {
		log.Err(err).Str("func", "*otpRepository.DeleteAllForEmail").Msg("error deleting otp codes")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// FindLatestMatching returns the most recently created code matching
// (email, code) exactly. Expiry and consumption are NOT checked here; the
// service layer inspects them so it can distinguish "expired" from "used".
//
// Returns [ErrOTPNotFound] when no row matches.
func (r *otpRepository) FindLatestMatching(ctx context.Context, email, code string) (models.OTPCode, error) {
	log := logger.FromContext(ctx)

	var otp models.OTPCode
	row := r.db.QueryRowContext(ctx, findLatestOTP, email, code)

	if err := row.Err(); err != nil {
		log.Err(err).Str("func", "*otpRepository.FindLatestMatching").Msg("error querying otp code")
		return models.OTPCode{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	err := row.Scan(&otp.OTPID, &otp.Email, &otp.Code, &otp.ExpiresAt, &otp.Consumed, &otp.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return models.OTPCode{}, ErrOTPNotFound
	}
	if err != nil {
		log.Err(err).Str("func", "*otpRepository.FindLatestMatching").Msg("error: scanning error")
		return models.OTPCode{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return otp, nil
}

// MarkConsumed flags the code row as used.
func (r *otpRepository) MarkConsumed(ctx context.Context, otpID int64) error {
	log := logger.FromContext(ctx)

	if _, err := r.db.ExecContext(ctx, markOTPConsumed, otpID); err != nil {
		log.Err(err).Str("func", "*otpRepository.MarkConsumed").Msg("error marking otp consumed")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}
