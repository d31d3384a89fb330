package application

import (
	"context"

	"uadm/internal/domain"
)

// LoginRoute is the public entry point unauthenticated operators are sent to.
const LoginRoute = "/login"

type Admission string

const (
	// AdmissionPending means session state is not yet known; render a
	// neutral placeholder, never the protected view.
	AdmissionPending Admission = "pending"
	AdmissionGrant   Admission = "grant"
	// AdmissionRedirect replaces the current view with the login entry
	// point. The replacement is not stacked, so there is no way back into
	// a stale protected view.
	AdmissionRedirect Admission = "redirect"
)

type Decision struct {
	Admission  Admission
	RedirectTo string
}

// Decide maps a session snapshot to a guard outcome without any I/O.
func Decide(snap Snapshot) Decision {
	switch {
	case snap.Loading:
		return Decision{Admission: AdmissionPending}
	case snap.State == domain.SessionAuthenticated:
		return Decision{Admission: AdmissionGrant}
	default:
		return Decision{Admission: AdmissionRedirect, RedirectTo: LoginRoute}
	}
}

// Guard gates protected views on session state.
type Guard struct {
	session *Session
}

func NewGuard(session *Session) *Guard {
	return &Guard{session: session}
}

// Admit resolves the session first when it is still undetermined, so the
// returned decision is never Pending unless the context gave out mid-read.
func (g *Guard) Admit(ctx context.Context) Decision {
	if g.session.Current().Loading {
		// A failed read resolves to Unauthenticated, which redirects.
		_ = g.session.Resolve(ctx)
	}

	return Decide(g.session.Current())
}
