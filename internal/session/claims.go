// ABOUTME: Bearer credential decoding for tokens issued by the backend
// ABOUTME: Reads userId, role, sub and exp without verifying the signature

package session

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var (
	// ErrMalformedCredential means the token could not be decoded
	ErrMalformedCredential = errors.New("malformed credential")
	// ErrExpiredCredential means the token decoded but its exp is not in the future
	ErrExpiredCredential = errors.New("credential expired")
)

// Claims is the payload embedded in backend tokens
type Claims struct {
	UserID int64 `json:"userId"`
	Role   Role  `json:"role"`
	jwt.RegisteredClaims
}

// The signing key stays on the backend, so the client only ever reads the payload.
var parser = jwt.NewParser()

// DecodeToken parses the token payload. Signature and claims are not validated.
func DecodeToken(token string) (*Claims, error) {
	if strings.TrimSpace(token) == "" {
		return nil, fmt.Errorf("%w: empty token", ErrMalformedCredential)
	}

	claims := &Claims{}
	if _, _, err := parser.ParseUnverified(token, claims); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedCredential, err)
	}
	return claims, nil
}

// Identity projects the claims onto the session user
func (c *Claims) Identity() *User {
	return &User{
		UserID:   c.UserID,
		Username: c.Subject,
		Role:     ParseRole(string(c.Role)),
	}
}

// CheckExpiry returns ErrExpiredCredential unless exp is strictly after now.
// A token without exp has no future expiry and is rejected.
func (c *Claims) CheckExpiry(now time.Time) error {
	if c.ExpiresAt == nil {
		return fmt.Errorf("%w: no exp claim", ErrExpiredCredential)
	}
	if !c.ExpiresAt.Time.After(now) {
		return fmt.Errorf("%w at %s", ErrExpiredCredential, c.ExpiresAt.Time.UTC().Format(time.RFC3339))
	}
	return nil
}
