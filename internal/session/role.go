// ABOUTME: Role enumeration carried in the credential payload
// ABOUTME: Used for route-level access hints only, never as an authorization boundary

package session

import "strings"

// Role is the account type the backend assigns to a user
type Role string

const (
	RoleBuyer  Role = "BUYER"
	RoleSeller Role = "SELLER"
)

// ParseRole converts a claim value to a Role. Matching is exact: "buyer" or
// " BUYER" stay unknown and fail every role check.
func ParseRole(s string) Role {
	return Role(s)
}

// Valid reports whether r is one of the known roles
func (r Role) Valid() bool {
	return r == RoleBuyer || r == RoleSeller
}

// String returns the lowercase display form
func (r Role) String() string {
	return strings.ToLower(string(r))
}
