package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"uadm/internal/domain"
	"uadm/internal/ports"
)

// ErrRosterClosed is returned when a refresh is requested after the owning
// view tore the store down.
var ErrRosterClosed = errors.New("roster store is closed")

// Roster holds the current account snapshot for the management view. The
// snapshot is replaced wholesale under the lock, so readers never observe a
// partial list. A sequence counter orders overlapping refreshes: a fetch that
// started earlier can never overwrite the result of one that started later,
// and nothing is applied after Close.
type Roster struct {
	gateway ports.AdminGateway

	mu       sync.Mutex
	accounts []domain.Account
	started  uint64
	applied  uint64
	closed   bool
	subs     map[int]func()
	nextSub  int
}

func NewRoster(gateway ports.AdminGateway) *Roster {
	return &Roster{
		gateway: gateway,
		subs:    map[int]func(){},
	}
}

// Refresh fetches the full roster and swaps the snapshot atomically. It
// returns the store's snapshot after reconciliation, which is the fetched
// list unless a younger refresh already landed. Auth-denied errors propagate
// to the caller, which owns the forced-logout side effect.
func (r *Roster) Refresh(ctx context.Context) ([]domain.Account, error) {
	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrRosterClosed
	}
	r.started++
	seq := r.started
	r.mu.Unlock()

	accounts, err := r.gateway.FetchRoster(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch roster: %w", err)
	}

	r.mu.Lock()
	if r.closed {
		r.mu.Unlock()
		return nil, ErrRosterClosed
	}
	if seq <= r.applied {
		// Stale completion; a younger refresh already replaced the snapshot.
		snapshot := copyAccounts(r.accounts)
		r.mu.Unlock()
		return snapshot, nil
	}
	r.applied = seq
	r.accounts = copyAccounts(accounts)
	snapshot := copyAccounts(r.accounts)
	r.mu.Unlock()
	r.notify()

	return snapshot, nil
}

func (r *Roster) Snapshot() []domain.Account {
	r.mu.Lock()
	defer r.mu.Unlock()

	return copyAccounts(r.accounts)
}

func (r *Roster) IDs() []domain.AccountID {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]domain.AccountID, 0, len(r.accounts))
	for _, account := range r.accounts {
		ids = append(ids, account.ID)
	}

	return ids
}

// Close marks the store torn down. In-flight refreshes complete but their
// results are discarded.
func (r *Roster) Close() {
	r.mu.Lock()
	r.closed = true
	r.mu.Unlock()
}

func (r *Roster) Subscribe(fn func()) func() {
	r.mu.Lock()
	id := r.nextSub
	r.nextSub++
	r.subs[id] = fn
	r.mu.Unlock()

	return func() {
		r.mu.Lock()
		delete(r.subs, id)
		r.mu.Unlock()
	}
}

func (r *Roster) notify() {
	r.mu.Lock()
	fns := make([]func(), 0, len(r.subs))
	for _, fn := range r.subs {
		fns = append(fns, fn)
	}
	r.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}

func copyAccounts(accounts []domain.Account) []domain.Account {
	out := make([]domain.Account, len(accounts))
	copy(out, accounts)
	return out
}
