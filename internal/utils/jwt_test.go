package utils

import (
	"testing"
	"time"

	"github.com/dkoval/college-resource-hub/models"
)

const (
	testIssuer  = "resource-hub-test"
	testSignKey = "test-sign-key"
)

func testUser() models.User {
	return models.User{
		UserID: 42,
		Email:  "alice@college.edu",
		Role:   models.RoleStudent,
	}
}

func TestGenerateJWTToken_Success(t *testing.T) {
	token, err := GenerateJWTToken(testIssuer, testUser(), time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if token.SignedString == "" {
		t.Error("expected a non-empty signed token")
	}
	if token.UserID != 42 || token.Email != "alice@college.edu" || token.Role != models.RoleStudent {
		t.Errorf("token does not carry the user identity: %+v", token)
	}
}

func TestGenerateJWTToken_InvalidParams(t *testing.T) {
	tests := []struct {
		name     string
		issuer   string
		duration time.Duration
		signKey  string
	}{
		{name: "empty issuer", issuer: "", duration: time.Hour, signKey: testSignKey},
		{name: "zero duration", issuer: testIssuer, duration: 0, signKey: testSignKey},
		{name: "empty sign key", issuer: testIssuer, duration: time.Hour, signKey: ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := GenerateJWTToken(tt.issuer, testUser(), tt.duration, tt.signKey); err == nil {
				t.Error("expected an error, got nil")
			}
		})
	}
}

func TestValidateAndParseJWTToken_RoundTrip(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testUser(), time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}

	parsed, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer)
	if err != nil {
		t.Fatalf("unexpected error parsing token: %v", err)
	}
	if parsed.UserID != 42 {
		t.Errorf("expected UserID=42, got %d", parsed.UserID)
	}
	if parsed.Email != "alice@college.edu" {
		t.Errorf("expected email to round-trip, got %q", parsed.Email)
	}
	if parsed.Role != models.RoleStudent {
		t.Errorf("expected role to round-trip, got %q", parsed.Role)
	}
}

func TestValidateAndParseJWTToken_WrongSignKey(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testUser(), time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(issued.SignedString, "another-key", testIssuer); err == nil {
		t.Error("expected validation to fail with a different sign key")
	}
}

func TestValidateAndParseJWTToken_WrongIssuer(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testUser(), time.Hour, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, "another-service"); err == nil {
		t.Error("expected validation to fail with a different issuer")
	}
}

func TestValidateAndParseJWTToken_Expired(t *testing.T) {
	issued, err := GenerateJWTToken(testIssuer, testUser(), -time.Minute, testSignKey)
	if err != nil {
		t.Fatalf("unexpected error generating token: %v", err)
	}

	if _, err := ValidateAndParseJWTToken(issued.SignedString, testSignKey, testIssuer); err == nil {
		t.Error("expected validation to fail for an expired token")
	}
}

func TestValidateAndParseJWTToken_Garbage(t *testing.T) {
	if _, err := ValidateAndParseJWTToken("not.a.token", testSignKey, testIssuer); err == nil {
		t.Error("expected validation to fail for a malformed token")
	}
}
