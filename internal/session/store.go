// ABOUTME: Session store holding the current credential and decoded identity
// ABOUTME: Writes the whole state to its persister on every change

package session

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"sync"
	"time"
)

const defaultPersistTimeout = 5 * time.Second

// Store owns the session for one user. It is created from persisted state at
// startup, mutated by login/logout flows, and read by the HTTP client and guards.
type Store struct {
	mu    sync.RWMutex
	token string
	user  *User

	persister      Persister
	persistTimeout time.Duration
	now            func() time.Time
	logger         *slog.Logger
}

// Option configures a Store
type Option func(*Store)

// WithClock overrides the wall clock used for expiry checks
func WithClock(now func() time.Time) Option {
	return func(s *Store) {
		s.now = now
	}
}

// WithLogger sets the logger used for persistence and decode failures
func WithLogger(l *slog.Logger) Option {
	return func(s *Store) {
		s.logger = l
	}
}

// WithPersistTimeout bounds each persister write
func WithPersistTimeout(d time.Duration) Option {
	return func(s *Store) {
		s.persistTimeout = d
	}
}

// New creates an empty store. A nil persister keeps state in memory only.
func New(p Persister, opts ...Option) *Store {
	if p == nil {
		p = NewMemoryStore()
	}
	s := &Store{
		persister:      p,
		persistTimeout: defaultPersistTimeout,
		now:            time.Now,
		logger:         slog.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Open creates a store and restores the state saved by a previous process
func Open(ctx context.Context, p Persister, opts ...Option) (*Store, error) {
	s := New(p, opts...)

	st, err := s.persister.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("restore session: %w", err)
	}
	s.restore(st)
	return s, nil
}

// restore applies a loaded record, re-deriving identity so that
// identity is present only when the token decodes
func (s *Store) restore(st State) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if st.Token == nil || *st.Token == "" {
		if st.User != nil {
			s.clearLocked()
		}
		return
	}

	claims, err := DecodeToken(*st.Token)
	if err != nil {
		s.logger.Warn("Discarding persisted session", "error", err)
		s.clearLocked()
		return
	}

	s.token = *st.Token
	if st.User != nil {
		u := *st.User
		s.user = &u
	} else {
		s.user = claims.Identity()
		s.persistLocked()
	}
}

// SetSession overwrites credential and identity without validation.
// The login flow is trusted to pass a token it just received from the backend.
func (s *Store) SetSession(token string, user User) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.token = token
	u := user
	s.user = &u
	s.persistLocked()
}

// SetToken stores token and derives identity from its payload.
// A token that fails to decode logs the user out instead.
func (s *Store) SetToken(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	claims, err := DecodeToken(token)
	if err != nil {
		s.logger.Debug("Failed to decode token", "error", err)
		s.clearLocked()
		return
	}

	s.token = token
	s.user = claims.Identity()
	s.persistLocked()
}

// Establish stores a freshly issued login credential. A complete identity
// from the login response is kept as given; otherwise identity is decoded
// from the token. It reports whether the result is a valid session.
func (s *Store) Establish(token string, user User) bool {
	if user.UserID != 0 && user.Username != "" && user.Role != "" {
		s.SetSession(token, user)
	} else {
		s.SetToken(token)
	}
	return s.CheckAuth()
}

// Logout clears credential and identity. Local only, no network call.
func (s *Store) Logout() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearLocked()
}

// CheckAuth reports whether the credential is present, decodable and
// unexpired. An undecodable or expired credential is cleared.
func (s *Store) CheckAuth() bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.token == "" {
		return false
	}

	claims, err := DecodeToken(s.token)
	if err == nil {
		err = claims.CheckExpiry(s.now())
	}
	if err != nil {
		if errors.Is(err, ErrExpiredCredential) {
			s.logger.Info("Session expired", "user", s.username())
		} else {
			s.logger.Debug("Stored credential is invalid", "error", err)
		}
		s.clearLocked()
		return false
	}
	return true
}

// IsAuthenticated reports whether a credential is held
func (s *Store) IsAuthenticated() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token != ""
}

// IsBuyer reports whether the current identity has the buyer role
func (s *Store) IsBuyer() bool {
	return s.hasRole(RoleBuyer)
}

// IsSeller reports whether the current identity has the seller role
func (s *Store) IsSeller() bool {
	return s.hasRole(RoleSeller)
}

func (s *Store) hasRole(r Role) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.user != nil && s.user.Role == r
}

// Token returns the current credential, or "" when absent
func (s *Store) Token() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token
}

// User returns a copy of the current identity
func (s *Store) User() (User, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.user == nil {
		return User{}, false
	}
	return *s.user, true
}

// Expiry returns the exp claim of the current credential
func (s *Store) Expiry() (time.Time, bool) {
	token := s.Token()
	if token == "" {
		return time.Time{}, false
	}
	claims, err := DecodeToken(token)
	if err != nil || claims.ExpiresAt == nil {
		return time.Time{}, false
	}
	return claims.ExpiresAt.Time, true
}

// Snapshot returns the state as it would be persisted
func (s *Store) Snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return stateOf(s.token, s.user)
}

// Close releases the persister if it holds resources
func (s *Store) Close() error {
	if c, ok := s.persister.(io.Closer); ok {
		return c.Close()
	}
	return nil
}

func (s *Store) clearLocked() {
	s.token = ""
	s.user = nil
	s.persistLocked()
}

func (s *Store) username() string {
	if s.user == nil {
		return ""
	}
	return s.user.Username
}

// persistLocked writes the whole state. Failures are logged; in-memory
// state stays authoritative for the running process.
func (s *Store) persistLocked() {
	ctx, cancel := context.WithTimeout(context.Background(), s.persistTimeout)
	defer cancel()

	if err := s.persister.Save(ctx, stateOf(s.token, s.user)); err != nil {
		s.logger.Error("Failed to persist session", "error", err)
	}
}
