// ABOUTME: Tests for command wiring: guard outcomes, exit codes and 401 handling
// ABOUTME: Commands run against an httptest backend with an in-memory session

package cmd

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/shopdemo/storefront/internal/client"
	"github.com/shopdemo/storefront/internal/config"
	"github.com/shopdemo/storefront/internal/guard"
	"github.com/shopdemo/storefront/internal/session"
	"github.com/shopdemo/storefront/internal/session/sessiontest"
)

// newTestApp builds an app over handler with the given credential
func newTestApp(t *testing.T, token string, handler http.HandlerFunc) *app {
	t.Helper()

	if handler == nil {
		handler = func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusNotFound)
		}
	}
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)

	store := session.New(nil)
	if token != "" {
		store.SetToken(token)
	}
	nav := guard.NewRecorder()
	return &app{
		cfg:     &config.Config{APIBase: server.URL},
		session: store,
		nav:     nav,
		router:  guard.NewRouter(store, nav),
		client:  client.New(server.URL, client.WithSession(store), client.WithNavigator(nav)),
	}
}

func jsonHandler(status int, v interface{}) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if v != nil {
			json.NewEncoder(w).Encode(v)
		}
	}
}

func TestRunRouteGuardOutcomes(t *testing.T) {
	tests := []struct {
		name     string
		token    func(testing.TB) string
		route    string
		wantCode int
		wantOut  string
		wantRan  bool
	}{
		{"guest on public route", nil, guard.ProductsRoute, exitOK, "", true},
		{"guest on buyer route", nil, guard.CartRoute, exitError, "Redirected to /login", false},
		{"guest on account", nil, guard.AccountRoute, exitError, "Redirected to /login", false},
		{"expired on buyer route", sessiontest.Expired, guard.OrdersRoute, exitError, "Redirected to /login", false},
		{"buyer on seller route", sessiontest.Buyer, guard.SellerProducts, exitRedirectHome, "Redirected to /.", false},
		{"seller on buyer route", sessiontest.Seller, guard.CartRoute, exitRedirectHome, "not available for your role", false},
		{"seller on seller route", sessiontest.Seller, guard.SellerProductsNew, exitOK, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			token := ""
			if tt.token != nil {
				token = tt.token(t)
			}
			a := newTestApp(t, token, nil)

			ran := false
			fn := func(context.Context, *app, io.Writer, []string) int {
				ran = true
				return exitOK
			}

			var out bytes.Buffer
			code := runRoute(context.Background(), a, tt.route, &out, nil, fn)

			if code != tt.wantCode {
				t.Errorf("expected exit code %d, got %d", tt.wantCode, code)
			}
			if ran != tt.wantRan {
				t.Errorf("expected ran=%v, got %v", tt.wantRan, ran)
			}
			if !strings.Contains(out.String(), tt.wantOut) {
				t.Errorf("expected output containing %q, got %q", tt.wantOut, out.String())
			}
		})
	}
}

func TestUnauthorizedClearsSession(t *testing.T) {
	a := newTestApp(t, sessiontest.Buyer(t), jsonHandler(http.StatusUnauthorized,
		client.ErrorResponse{Status: 401, Error: "Unauthorized", Message: "Token revoked"}))

	var out bytes.Buffer
	code := runRoute(context.Background(), a, guard.CartRoute, &out, nil, runCartList)

	if code != exitError {
		t.Errorf("expected exit code %d, got %d", exitError, code)
	}
	if a.session.IsAuthenticated() {
		t.Error("expected session to be cleared after 401")
	}
	if !strings.Contains(out.String(), "Session cleared. Redirected to /login") {
		t.Errorf("unexpected output %q", out.String())
	}
}

func TestForbiddenKeepsSession(t *testing.T) {
	a := newTestApp(t, sessiontest.Buyer(t), jsonHandler(http.StatusForbidden,
		client.ErrorResponse{Status: 403, Error: "Forbidden", Message: "Access denied"}))

	var out bytes.Buffer
	code := runRoute(context.Background(), a, guard.OrdersRoute, &out, nil, runOrdersList)

	if code != exitError {
		t.Errorf("expected exit code %d, got %d", exitError, code)
	}
	if !a.session.IsAuthenticated() {
		t.Error("403 must not clear the session")
	}
	if !strings.Contains(out.String(), "Access denied") {
		t.Errorf("unexpected output %q", out.String())
	}
}
