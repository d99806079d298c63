// ABOUTME: Route table binding paths to guards, plus navigation recording
// ABOUTME: Navigate evaluates the guard once and records where navigation ended

package guard

import (
	"log/slog"
	"sync"
)

// Application routes
const (
	ProductsRoute      = "/products"
	CartRoute          = "/cart"
	OrdersRoute        = "/orders"
	AccountRoute       = "/account"
	SellerProducts     = "/seller/products"
	SellerProductsNew  = "/seller/products/new"
	SellerProductsEdit = "/seller/products/edit"
)

// Navigator receives navigation intents
type Navigator interface {
	Navigate(route string)
}

// Recorder is a Navigator that remembers intents until they are taken
type Recorder struct {
	mu      sync.Mutex
	pending string
	history []string
}

// NewRecorder creates an empty Recorder
func NewRecorder() *Recorder {
	return &Recorder{}
}

// Navigate records route as the pending intent
func (r *Recorder) Navigate(route string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.pending = route
	r.history = append(r.history, route)
}

// Last returns the most recent intent without consuming it
func (r *Recorder) Last() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if len(r.history) == 0 {
		return "", false
	}
	return r.history[len(r.history)-1], true
}

// Take returns and clears the pending intent
func (r *Recorder) Take() (string, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	route := r.pending
	r.pending = ""
	return route, route != ""
}

// History returns every recorded intent in order
func (r *Recorder) History() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string(nil), r.history...)
}

// Router maps routes to guards. Unknown routes are public.
type Router struct {
	session Session
	nav     Navigator
	guards  map[string]Guard
	logger  *slog.Logger
}

// NewRouter creates a router with the default route table
func NewRouter(s Session, nav Navigator) *Router {
	r := &Router{
		session: s,
		nav:     nav,
		guards:  make(map[string]Guard),
		logger:  slog.Default(),
	}
	r.Handle(HomeRoute, Public)
	r.Handle(LoginRoute, Public)
	r.Handle(ProductsRoute, Public)
	r.Handle(AccountRoute, Authenticated)
	r.Handle(CartRoute, Buyer)
	r.Handle(OrdersRoute, Buyer)
	r.Handle(SellerProducts, Seller)
	r.Handle(SellerProductsNew, Seller)
	r.Handle(SellerProductsEdit, Seller)
	return r
}

// Handle binds a guard to a route, replacing any previous binding
func (r *Router) Handle(route string, g Guard) {
	r.guards[route] = g
}

// GuardFor returns the guard bound to route
func (r *Router) GuardFor(route string) Guard {
	if g, ok := r.guards[route]; ok {
		return g
	}
	return Public
}

// Resolve evaluates the route's guard without recording anything
func (r *Router) Resolve(to string) Decision {
	return r.GuardFor(to)(to, r.session)
}

// Navigate resolves to and records the route navigation ends on
func (r *Router) Navigate(to string) Decision {
	d := r.Resolve(to)
	if !d.Proceeds() {
		r.logger.Debug("Navigation redirected", "to", to, "redirect", d.To, "outcome", d.Outcome.String())
	}
	if r.nav != nil {
		r.nav.Navigate(d.To)
	}
	return d
}
