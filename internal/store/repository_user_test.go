package store

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/dkoval/college-resource-hub/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
)

func newTestUserRepo(t *testing.T) (*userRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &userRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

func TestUserRepositoryCreate_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	user := models.User{
		Name:         "Alice",
		Email:        "alice@college.edu",
		PasswordHash: "hash",
		Role:         models.RoleStudent,
		Department:   "CSE",
	}

	now := time.Now()

	rows := sqlmock.
		NewRows([]string{"user_id", "created_at", "updated_at"}).
		AddRow(1, now, now)

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(user.Name, user.Email, user.PasswordHash, user.Role, user.Department).
		WillReturnRows(rows)

	created, err := repo.Create(ctx, user)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.UserID != 1 {
		t.Errorf("expected UserID=1, got %d", created.UserID)
	}
	if created.IsVerified {
		t.Error("created account must start unverified")
	}
}

func TestUserRepositoryCreate_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	_, err := repo.Create(ctx, models.User{Email: "alice@college.edu"})
	if !errors.Is(err, ErrEmailAlreadyExists) {
		t.Fatalf("expected ErrEmailAlreadyExists, got %v", err)
	}
}

func TestUserRepositoryCreate_UnexpectedDBError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("INSERT INTO users").
		WillReturnError(errors.New("db network error"))

	_, err := repo.Create(ctx, models.User{Email: "alice@college.edu"})
	if err == nil || !strings.Contains(err.Error(), "unexpected DB error") {
		t.Fatalf("expected wrapped unexpected DB error, got %v", err)
	}
}

func userRows(user models.User) *sqlmock.Rows {
	now := time.Now()
	return sqlmock.
		NewRows([]string{"user_id", "name", "email", "password_hash", "role", "department", "is_verified", "created_at", "updated_at"}).
		AddRow(user.UserID, user.Name, user.Email, user.PasswordHash, user.Role, user.Department, user.IsVerified, now, now)
}

func TestFindUserByEmail_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	stored := models.User{
		UserID:     7,
		Name:       "Alice",
		Email:      "alice@college.edu",
		Role:       models.RoleStudent,
		IsVerified: true,
	}

	mock.ExpectQuery("FROM users").
		WithArgs(stored.Email).
		WillReturnRows(userRows(stored))

	found, err := repo.FindByEmail(ctx, stored.Email)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.UserID != 7 || !found.IsVerified {
		t.Errorf("unexpected user returned: %+v", found)
	}
}

func TestFindUserByEmail_NotFound(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("FROM users").
		WithArgs("ghost@college.edu").
		WillReturnRows(sqlmock.NewRows([]string{"user_id", "name", "email", "password_hash", "role", "department", "is_verified", "created_at", "updated_at"}))

	_, err := repo.FindByEmail(ctx, "ghost@college.edu")
	if !errors.Is(err, ErrNoUserWasFound) {
		t.Fatalf("expected ErrNoUserWasFound, got %v", err)
	}
}

func TestFindUserByID_Success(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()
	stored := models.User{
		UserID: 7,
		Name:   "Alice",
		Email:  "alice@college.edu",
		Role:   models.RoleStudent,
	}

	mock.ExpectQuery("FROM users").
		WithArgs(stored.UserID).
		WillReturnRows(userRows(stored))

	found, err := repo.FindByID(ctx, 7)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if found.Email != "alice@college.edu" {
		t.Errorf("unexpected user returned: %+v", found)
	}
}

func TestSetVerified_ReportsAffectedRows(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE users").
		WithArgs("alice@college.edu").
		WillReturnResult(sqlmock.NewResult(0, 1))

	affected, err := repo.SetVerified(ctx, "alice@college.edu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if affected != 1 {
		t.Errorf("expected 1 affected row, got %d", affected)
	}
}

func TestSetVerified_ZeroAffectedRows(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("UPDATE users").
		WithArgs("ghost@college.edu").
		WillReturnResult(sqlmock.NewResult(0, 0))

	affected, err := repo.SetVerified(ctx, "ghost@college.edu")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if affected != 0 {
		t.Errorf("expected 0 affected rows, got %d", affected)
	}
}

func TestDeleteUnverified_ExecError(t *testing.T) {
	repo, mock, db := newTestUserRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("DELETE FROM users").
		WithArgs("alice@college.edu").
		WillReturnError(errors.New("db network error"))

	err := repo.DeleteUnverified(ctx, "alice@college.edu")
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}
