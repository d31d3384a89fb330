package domain

import "time"

type AccountID string

type AccountStatus string

const (
	StatusActive  AccountStatus = "active"
	StatusBlocked AccountStatus = "blocked"
)

func (s AccountStatus) Valid() bool {
	switch s {
	case StatusActive, StatusBlocked:
		return true
	default:
		return false
	}
}

// Account is one row of the roster. The roster is replaced wholesale on each
// refresh; ids are assumed unique within one snapshot, not enforced.
type Account struct {
	ID        AccountID
	Name      string
	Email     string
	LastLogin time.Time // zero when the account never signed in
	Status    AccountStatus
}
