// ABOUTME: Route guards gating navigation by session validity and role
// ABOUTME: Each guard is a pure function of the target route and session state

package guard

import "fmt"

// Routes referenced by the guards
const (
	LoginRoute = "/login"
	HomeRoute  = "/"
)

// Session is the view of the session store the guards need
type Session interface {
	CheckAuth() bool
	IsBuyer() bool
	IsSeller() bool
}

// Outcome is the terminal state of one guard evaluation
type Outcome int

const (
	Proceed Outcome = iota
	RedirectedLogin
	RedirectedHome
)

// String returns a short name for the outcome
func (o Outcome) String() string {
	switch o {
	case Proceed:
		return "proceed"
	case RedirectedLogin:
		return "redirect-login"
	case RedirectedHome:
		return "redirect-home"
	default:
		return "unknown"
	}
}

// Decision is the result of evaluating a guard for one navigation
type Decision struct {
	Outcome Outcome
	// To is the route navigation ends on: the target when proceeding,
	// otherwise the redirect route
	To string
}

// Proceeds reports whether navigation continues to the target
func (d Decision) Proceeds() bool {
	return d.Outcome == Proceed
}

func (d Decision) String() string {
	return fmt.Sprintf("%s %s", d.Outcome, d.To)
}

// Guard evaluates one navigation attempt against the session
type Guard func(to string, s Session) Decision

// Public lets every navigation through
func Public(to string, _ Session) Decision {
	return Decision{Outcome: Proceed, To: to}
}

// Authenticated redirects to the login route unless the session is valid
func Authenticated(to string, s Session) Decision {
	if !s.CheckAuth() {
		return Decision{Outcome: RedirectedLogin, To: LoginRoute}
	}
	return Decision{Outcome: Proceed, To: to}
}

// Buyer requires a valid session with the buyer role
func Buyer(to string, s Session) Decision {
	return requireRole(to, s, Session.IsBuyer)
}

// Seller requires a valid session with the seller role
func Seller(to string, s Session) Decision {
	return requireRole(to, s, Session.IsSeller)
}

// requireRole applies Authenticated first, then redirects home
// when the role projection is false
func requireRole(to string, s Session, hasRole func(Session) bool) Decision {
	d := Authenticated(to, s)
	if !d.Proceeds() {
		return d
	}
	if !hasRole(s) {
		return Decision{Outcome: RedirectedHome, To: HomeRoute}
	}
	return d
}
