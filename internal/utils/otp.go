package utils

import (
	"math/rand/v2"
	"strconv"
)

// GenerateOTP returns a 6-digit numeric one-time code sampled uniformly from
// [100000, 999999]. The fixed width means no leading-zero normalisation is
// ever needed when comparing stored and submitted codes.
//
// No cryptographic secrecy is claimed: the code only has to be hard to guess
// within its 10-minute validity window, and codes are scoped per email.
func GenerateOTP() string {
	return strconv.Itoa(100000 + rand.IntN(900000))
}
