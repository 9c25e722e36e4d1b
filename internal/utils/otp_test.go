package utils

import (
	"strconv"
	"testing"
)

func TestGenerateOTP_SixDigits(t *testing.T) {
	for i := 0; i < 1000; i++ {
		code := GenerateOTP()

		if len(code) != 6 {
			t.Fatalf("expected a 6-character code, got %q", code)
		}

		n, err := strconv.Atoi(code)
		if err != nil {
			t.Fatalf("expected a numeric code, got %q", code)
		}
		if n < 100000 || n > 999999 {
			t.Fatalf("code %d out of range [100000, 999999]", n)
		}
	}
}

func TestGenerateOTP_NotConstant(t *testing.T) {
	seen := make(map[string]struct{})
	for i := 0; i < 50; i++ {
		seen[GenerateOTP()] = struct{}{}
	}
	if len(seen) < 2 {
		t.Error("expected at least two distinct codes over 50 draws")
	}
}
