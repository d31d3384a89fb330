package application

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"uadm/internal/domain"
	"uadm/internal/ports"
)

// Snapshot is the observable session state. Loading is true only until the
// initial credential read has completed; every later transition is immediate.
type Snapshot struct {
	State   domain.SessionState
	Loading bool
}

// Session is the process-wide authentication state. It is the single writer
// of both the state enum and the credential store; everything else reads
// through Current/Token or subscribes for change notifications.
type Session struct {
	store ports.CredentialStore
	clock ports.Clock

	mu       sync.Mutex
	state    domain.SessionState
	token    string
	resolved bool
	subs     map[int]func()
	nextSub  int
}

func NewSession(store ports.CredentialStore, clock ports.Clock) *Session {
	if clock == nil {
		clock = ports.SystemClock{}
	}

	return &Session{
		store: store,
		clock: clock,
		state: domain.SessionUnknown,
		subs:  map[int]func(){},
	}
}

// Resolve performs the initial state determination from the credential store.
// It runs the read at most once; repeated calls are cheap no-ops. A failed or
// empty read resolves to Unauthenticated so callers are never stuck loading.
func (s *Session) Resolve(ctx context.Context) error {
	s.mu.Lock()
	if s.resolved {
		s.mu.Unlock()
		return nil
	}
	s.mu.Unlock()

	cred, err := s.store.Read(ctx)

	s.mu.Lock()
	if s.resolved {
		// Login or Logout won the race; their state stands.
		s.mu.Unlock()
		return nil
	}
	s.resolved = true

	if err != nil || cred.Token == "" {
		s.state = domain.SessionUnauthenticated
		s.token = ""
	} else {
		s.state = domain.SessionAuthenticated
		s.token = cred.Token
	}
	s.mu.Unlock()
	s.notify()

	if err != nil && !errors.Is(err, domain.ErrNoCredential) {
		return fmt.Errorf("read stored credential: %w", err)
	}

	return nil
}

// Login commits an already-validated token: persists it and flips the state
// to Authenticated. No server round-trip happens here.
func (s *Session) Login(ctx context.Context, token string) error {
	if token == "" {
		return errors.New("login token is empty")
	}

	cred := domain.Credential{Token: token, SavedAt: s.clock.Now()}
	if err := s.store.Save(ctx, cred); err != nil {
		return fmt.Errorf("save credential: %w", err)
	}

	s.mu.Lock()
	s.resolved = true
	s.state = domain.SessionAuthenticated
	s.token = token
	s.mu.Unlock()
	s.notify()

	return nil
}

// Logout clears the stored credential and flips the state to Unauthenticated.
// The state transition happens even when the clear fails, so a half-broken
// store can never keep a session alive.
func (s *Session) Logout(ctx context.Context) error {
	clearErr := s.store.Clear(ctx)

	s.mu.Lock()
	s.resolved = true
	s.state = domain.SessionUnauthenticated
	s.token = ""
	s.mu.Unlock()
	s.notify()

	if clearErr != nil {
		return fmt.Errorf("clear credential: %w", clearErr)
	}

	return nil
}

func (s *Session) Current() Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()

	return Snapshot{State: s.state, Loading: !s.resolved}
}

// Token returns the current bearer token, empty when unauthenticated. The
// transport collaborator reads it when attaching the Authorization header.
func (s *Session) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.token
}

// Subscribe registers a change notification and returns a cancel func.
// Callbacks run synchronously after each transition; read the new state via
// Current from inside them.
func (s *Session) Subscribe(fn func()) func() {
	s.mu.Lock()
	id := s.nextSub
	s.nextSub++
	s.subs[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

func (s *Session) notify() {
	s.mu.Lock()
	fns := make([]func(), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn()
	}
}
