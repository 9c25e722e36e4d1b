// SPDX-License-Identifier: Apache-2.0

package models

import (
	"fmt"
	"strconv"

	"github.com/golang-jwt/jwt/v5"
)

// Claims is the JWT claim set carried by every session token. On top of the
// registered claims (sub, iss, iat, exp) it binds the account email and role
// so authenticated routes can authorise without a database round trip.
type Claims struct {
	jwt.RegisteredClaims

	// Email is the account email the token was issued for.
	Email string `json:"email"`

	// Role is the account role at issue time.
	Role Role `json:"role"`
}

// Token wraps an issued or parsed session credential.
//
// SignedString holds the compact serialized form of the token
// (header.payload.signature) ready to be transmitted in HTTP headers.
// UserID, Email and Role are parsed copies of the claims so callers do not
// need to re-inspect the underlying [jwt.Token].
type Token struct {
	// Token is the underlying JWT used for signing and claim inspection.
	// Excluded from JSON because only the compact string form is meaningful
	// outside the server process.
	*jwt.Token `json:"-"`

	// SignedString is the compact JWS representation of the token.
	SignedString string `json:"-"`

	// UserID is the owner identifier extracted from the "sub" claim.
	UserID int64 `json:"-"`

	// Email is the account email extracted from the custom claim.
	Email string `json:"-"`

	// Role is the account role extracted from the custom claim.
	Role Role `json:"-"`
}

// GetUserID extracts the user identifier from the claims' "sub" (subject)
// claim, parses it as a base-10 int64, and returns the result.
func (c *Claims) GetUserID() (int64, error) {
	userIDString, err := c.GetSubject()
	if err != nil {
		return 0, fmt.Errorf("error extracting UserID from token: %w", err)
	}

	userID, err := strconv.ParseInt(userIDString, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("error converting UserID from token to int64: %w", err)
	}

	return userID, nil
}

// String returns the compact JWS serialization of the token.
// It implements the [fmt.Stringer] interface.
func (t *Token) String() string {
	return t.SignedString
}
