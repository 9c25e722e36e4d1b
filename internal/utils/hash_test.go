package utils

import (
	"strings"
	"testing"

	"golang.org/x/crypto/bcrypt"
)

func TestHashPassword_RoundTrip(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if hash == "s3cret-pass" {
		t.Error("hash must not equal the plaintext password")
	}

	if err := CheckPassword(hash, "s3cret-pass"); err != nil {
		t.Errorf("expected the original password to verify, got %v", err)
	}
	if err := CheckPassword(hash, "wrong-pass"); err == nil {
		t.Error("expected a wrong password to be rejected")
	}
}

func TestHashPassword_ZeroCostUsesDefault(t *testing.T) {
	hash, err := HashPassword("s3cret-pass", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cost, err := bcrypt.Cost([]byte(hash))
	if err != nil {
		t.Fatalf("unexpected error reading cost: %v", err)
	}
	if cost != bcrypt.DefaultCost {
		t.Errorf("expected cost %d, got %d", bcrypt.DefaultCost, cost)
	}
}

func TestHashPassword_SaltedHashesDiffer(t *testing.T) {
	first, err := HashPassword("s3cret-pass", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := HashPassword("s3cret-pass", bcrypt.MinCost)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first == second {
		t.Error("two hashes of the same password must differ by salt")
	}
	if !strings.HasPrefix(first, "$2a$") {
		t.Errorf("expected a bcrypt hash, got %q", first)
	}
}
