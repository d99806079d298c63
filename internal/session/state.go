// ABOUTME: Persisted session record and its user identity
// ABOUTME: Serialized as {"token": string|null, "user": {...}|null} under one storage key

package session

// StorageKey is the well-known key the session record is stored under
const StorageKey = "auth"

// User is the identity derived from a credential
type User struct {
	UserID   int64  `json:"userId"`
	Username string `json:"username"`
	Role     Role   `json:"role"`
}

// State is the whole persisted session record
type State struct {
	Token *string `json:"token"`
	User  *User   `json:"user"`
}

// Empty reports whether the record holds neither token nor user
func (s State) Empty() bool {
	return s.Token == nil && s.User == nil
}

func stateOf(token string, user *User) State {
	var st State
	if token != "" {
		t := token
		st.Token = &t
	}
	if user != nil {
		u := *user
		st.User = &u
	}
	return st
}
