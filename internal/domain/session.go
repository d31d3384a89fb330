package domain

import "time"

type SessionState string

const (
	SessionUnknown         SessionState = "unknown"
	SessionAuthenticated   SessionState = "authenticated"
	SessionUnauthenticated SessionState = "unauthenticated"
)

// Credential is the single persisted piece of client state: an opaque bearer
// token. Validity is decided only by server responses, never locally.
type Credential struct {
	Token   string
	SavedAt time.Time
}
