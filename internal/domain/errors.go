package domain

import "errors"

var (
	// ErrNoSelection is a local precondition failure; it never reaches the server.
	ErrNoSelection = errors.New("no accounts selected")

	// ErrAuthDenied marks 401/403-class responses. Whichever component first
	// observes it must log the session out and point the operator at login.
	ErrAuthDenied = errors.New("authorization denied")

	ErrNoCredential     = errors.New("no stored credential")
	ErrNotAuthenticated = errors.New("not authenticated")
)

func IsAuthDenied(err error) bool {
	return errors.Is(err, ErrAuthDenied)
}
