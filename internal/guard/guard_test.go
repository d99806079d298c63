// ABOUTME: Tests for route guards and the router
// ABOUTME: Uses a real session store so expiry self-healing is exercised end to end

package guard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shopdemo/storefront/internal/guard"
	"github.com/shopdemo/storefront/internal/session"
	"github.com/shopdemo/storefront/internal/session/sessiontest"
)

func storeWith(t *testing.T, token string) *session.Store {
	t.Helper()
	s := session.New(nil)
	if token != "" {
		s.SetToken(token)
	}
	return s
}

func TestGuards(t *testing.T) {
	tests := []struct {
		name  string
		token func(testing.TB) string
		guard guard.Guard
		want  guard.Decision
	}{
		{"authenticated without token", func(testing.TB) string { return "" }, guard.Authenticated,
			guard.Decision{Outcome: guard.RedirectedLogin, To: "/login"}},
		{"authenticated with buyer", sessiontest.Buyer, guard.Authenticated,
			guard.Decision{Outcome: guard.Proceed, To: "/target"}},
		{"buyer guard with buyer", sessiontest.Buyer, guard.Buyer,
			guard.Decision{Outcome: guard.Proceed, To: "/target"}},
		{"seller guard with buyer", sessiontest.Buyer, guard.Seller,
			guard.Decision{Outcome: guard.RedirectedHome, To: "/"}},
		{"seller guard with seller", sessiontest.Seller, guard.Seller,
			guard.Decision{Outcome: guard.Proceed, To: "/target"}},
		{"buyer guard with seller", sessiontest.Seller, guard.Buyer,
			guard.Decision{Outcome: guard.RedirectedHome, To: "/"}},
		{"buyer guard without token", func(testing.TB) string { return "" }, guard.Buyer,
			guard.Decision{Outcome: guard.RedirectedLogin, To: "/login"}},
		{"seller guard with expired", sessiontest.Expired, guard.Seller,
			guard.Decision{Outcome: guard.RedirectedLogin, To: "/login"}},
		{"public without token", func(testing.TB) string { return "" }, guard.Public,
			guard.Decision{Outcome: guard.Proceed, To: "/target"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := storeWith(t, tt.token(t))
			assert.Equal(t, tt.want, tt.guard("/target", s))
		})
	}
}

func TestAuthenticated_ExpiredClearsSession(t *testing.T) {
	s := storeWith(t, sessiontest.Expired(t))

	d := guard.Authenticated("/account", s)

	assert.Equal(t, guard.RedirectedLogin, d.Outcome)
	assert.Equal(t, guard.LoginRoute, d.To)
	assert.False(t, s.IsAuthenticated())
	_, ok := s.User()
	assert.False(t, ok)
}

func TestRouter_DefaultTable(t *testing.T) {
	buyer := storeWith(t, sessiontest.Buyer(t))
	r := guard.NewRouter(buyer, nil)

	assert.True(t, r.Resolve(guard.CartRoute).Proceeds())
	assert.True(t, r.Resolve(guard.OrdersRoute).Proceeds())
	assert.Equal(t, guard.HomeRoute, r.Resolve(guard.SellerProducts).To)
	assert.True(t, r.Resolve("/unknown").Proceeds())
}

func TestRouter_NavigateRecordsFinalRoute(t *testing.T) {
	rec := guard.NewRecorder()
	r := guard.NewRouter(storeWith(t, ""), rec)

	d := r.Navigate(guard.OrdersRoute)
	require.False(t, d.Proceeds())

	route, ok := rec.Take()
	require.True(t, ok)
	assert.Equal(t, guard.LoginRoute, route)

	_, ok = rec.Take()
	assert.False(t, ok, "Take consumes the pending intent")

	last, ok := rec.Last()
	require.True(t, ok)
	assert.Equal(t, guard.LoginRoute, last)
}

func TestRouter_HandleOverrides(t *testing.T) {
	r := guard.NewRouter(storeWith(t, ""), nil)
	r.Handle(guard.ProductsRoute, guard.Authenticated)

	assert.Equal(t, guard.RedirectedLogin, r.Resolve(guard.ProductsRoute).Outcome)
}

func TestRecorder_History(t *testing.T) {
	rec := guard.NewRecorder()
	rec.Navigate("/login")
	rec.Navigate("/")

	assert.Equal(t, []string{"/login", "/"}, rec.History())
}

func TestOutcomeString(t *testing.T) {
	assert.Equal(t, "proceed", guard.Proceed.String())
	assert.Equal(t, "redirect-login", guard.RedirectedLogin.String())
	assert.Equal(t, "redirect-home", guard.RedirectedHome.String())
}
