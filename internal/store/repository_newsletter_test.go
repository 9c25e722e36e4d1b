package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/dkoval/college-resource-hub/internal/logger"
	"github.com/jackc/pgerrcode"
)

func newTestNewsletterRepo(t *testing.T) (*newsletterRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.Nop()
	repo := &newsletterRepository{
		db:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSubscribe_Success(t *testing.T) {
	repo, mock, db := newTestNewsletterRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO newsletter_subscriptions").
		WithArgs("alice@college.edu").
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Subscribe(context.Background(), "alice@college.edu"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSubscribe_UniqueViolation(t *testing.T) {
	repo, mock, db := newTestNewsletterRepo(t)
	defer db.Close()

	mock.ExpectExec("INSERT INTO newsletter_subscriptions").
		WithArgs("alice@college.edu").
		WillReturnError(pgError(pgerrcode.UniqueViolation))

	err := repo.Subscribe(context.Background(), "alice@college.edu")
	if !errors.Is(err, ErrAlreadySubscribed) {
		t.Fatalf("expected ErrAlreadySubscribed, got %v", err)
	}
}

func TestUnsubscribe_MissingRowIsNoError(t *testing.T) {
	repo, mock, db := newTestNewsletterRepo(t)
	defer db.Close()

	mock.ExpectExec("UPDATE newsletter_subscriptions").
		WithArgs("ghost@college.edu").
		WillReturnResult(sqlmock.NewResult(0, 0))

	if err := repo.Unsubscribe(context.Background(), "ghost@college.edu"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}
