// ABOUTME: Test helpers for minting backend-style bearer tokens
// ABOUTME: Tokens are HS256-signed with a throwaway key; the client never verifies them

package sessiontest

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const signingKey = "sessiontest-secret"

// Token mints a token carrying userId, role and sub that expires at exp
func Token(tb testing.TB, userID int64, role, subject string, exp time.Time) string {
	tb.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": userID,
		"role":   role,
		"sub":    subject,
		"iat":    time.Now().Unix(),
		"exp":    exp.Unix(),
	})
	signed, err := token.SignedString([]byte(signingKey))
	if err != nil {
		tb.Fatalf("sign token: %v", err)
	}
	return signed
}

// Buyer mints a buyer token valid for an hour
func Buyer(tb testing.TB) string {
	tb.Helper()
	return Token(tb, 1, "BUYER", "buyer", time.Now().Add(time.Hour))
}

// Seller mints a seller token valid for an hour
func Seller(tb testing.TB) string {
	tb.Helper()
	return Token(tb, 2, "SELLER", "seller", time.Now().Add(time.Hour))
}

// Expired mints a buyer token that expired a minute ago
func Expired(tb testing.TB) string {
	tb.Helper()
	return Token(tb, 1, "BUYER", "buyer", time.Now().Add(-time.Minute))
}

// WithoutExpiry mints a token that carries no exp claim
func WithoutExpiry(tb testing.TB) string {
	tb.Helper()

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"userId": 3,
		"role":   "BUYER",
		"sub":    "noexp",
	})
	signed, err := token.SignedString([]byte(signingKey))
	if err != nil {
		tb.Fatalf("sign token: %v", err)
	}
	return signed
}
