package application

import (
	"context"
	"errors"
	"testing"
	"time"

	"uadm/internal/domain"
	"uadm/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func mockAnyContext() interface{} {
	return mock.Anything
}

func TestSessionStartsUnknownAndLoading(t *testing.T) {
	store := mocks.NewMockCredentialStore(t)
	clock := mocks.NewMockClock(t)
	session := NewSession(store, clock)

	snap := session.Current()
	assert.Equal(t, domain.SessionUnknown, snap.State)
	assert.True(t, snap.Loading)
}

func TestSessionResolveFindsStoredCredential(t *testing.T) {
	store := mocks.NewMockCredentialStore(t)
	clock := mocks.NewMockClock(t)
	session := NewSession(store, clock)

	cred := domain.Credential{Token: "tok-1", SavedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)}
	store.EXPECT().Read(mockAnyContext()).Return(cred, nil).Once()

	require.NoError(t, session.Resolve(context.Background()))

	snap := session.Current()
	assert.Equal(t, domain.SessionAuthenticated, snap.State)
	assert.False(t, snap.Loading)
	assert.Equal(t, "tok-1", session.Token())

	// A second resolve must not hit the store again.
	require.NoError(t, session.Resolve(context.Background()))
}

func TestSessionResolveWithoutCredentialIsUnauthenticated(t *testing.T) {
	store := mocks.NewMockCredentialStore(t)
	clock := mocks.NewMockClock(t)
	session := NewSession(store, clock)

	store.EXPECT().Read(mockAnyContext()).Return(domain.Credential{}, domain.ErrNoCredential).Once()

	require.NoError(t, session.Resolve(context.Background()))

	snap := session.Current()
	assert.Equal(t, domain.SessionUnauthenticated, snap.State)
	assert.False(t, snap.Loading)
	assert.Empty(t, session.Token())
}

func TestSessionResolveReadFailureFallsBackToUnauthenticated(t *testing.T) {
	store := mocks.NewMockCredentialStore(t)
	clock := mocks.NewMockClock(t)
	session := NewSession(store, clock)

	readErr := errors.New("disk on fire")
	store.EXPECT().Read(mockAnyContext()).Return(domain.Credential{}, readErr).Once()

	err := session.Resolve(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, readErr)

	// An unreadable store must never leave the session stuck in unknown.
	snap := session.Current()
	assert.Equal(t, domain.SessionUnauthenticated, snap.State)
	assert.False(t, snap.Loading)
}

func TestSessionLoginPersistsAndAuthenticates(t *testing.T) {
	store := mocks.NewMockCredentialStore(t)
	clock := mocks.NewMockClock(t)
	session := NewSession(store, clock)

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now)
	store.EXPECT().Save(mockAnyContext(), domain.Credential{Token: "tok-new", SavedAt: now}).Return(nil)

	require.NoError(t, session.Login(context.Background(), "tok-new"))

	snap := session.Current()
	assert.Equal(t, domain.SessionAuthenticated, snap.State)
	assert.False(t, snap.Loading)
	assert.Equal(t, "tok-new", session.Token())
}

func TestSessionLoginRejectsEmptyToken(t *testing.T) {
	store := mocks.NewMockCredentialStore(t)
	clock := mocks.NewMockClock(t)
	session := NewSession(store, clock)

	err := session.Login(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, domain.SessionUnknown, session.Current().State)
}

func TestSessionLoginSaveFailureDoesNotAuthenticate(t *testing.T) {
	store := mocks.NewMockCredentialStore(t)
	clock := mocks.NewMockClock(t)
	session := NewSession(store, clock)

	saveErr := errors.New("save credential failed")
	clock.EXPECT().Now().Return(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	store.EXPECT().Save(mockAnyContext(), mock.Anything).Return(saveErr)

	err := session.Login(context.Background(), "tok-new")
	require.ErrorIs(t, err, saveErr)
	assert.NotEqual(t, domain.SessionAuthenticated, session.Current().State)
	assert.Empty(t, session.Token())
}

func TestSessionLogoutClearsStore(t *testing.T) {
	store := mocks.NewMockCredentialStore(t)
	clock := mocks.NewMockClock(t)
	session := NewSession(store, clock)

	now := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	clock.EXPECT().Now().Return(now)
	store.EXPECT().Save(mockAnyContext(), mock.Anything).Return(nil)
	store.EXPECT().Clear(mockAnyContext()).Return(nil)

	require.NoError(t, session.Login(context.Background(), "tok-new"))
	require.NoError(t, session.Logout(context.Background()))

	snap := session.Current()
	assert.Equal(t, domain.SessionUnauthenticated, snap.State)
	assert.Empty(t, session.Token())
}

func TestSessionLogoutFlipsStateEvenWhenClearFails(t *testing.T) {
	store := mocks.NewMockCredentialStore(t)
	clock := mocks.NewMockClock(t)
	session := NewSession(store, clock)

	clearErr := errors.New("clear credential failed")
	store.EXPECT().Clear(mockAnyContext()).Return(clearErr)

	err := session.Logout(context.Background())
	require.ErrorIs(t, err, clearErr)

	assert.Equal(t, domain.SessionUnauthenticated, session.Current().State)
	assert.Empty(t, session.Token())
}

func TestSessionSubscribeNotifiesOnEveryTransition(t *testing.T) {
	store := mocks.NewMockCredentialStore(t)
	clock := mocks.NewMockClock(t)
	session := NewSession(store, clock)

	store.EXPECT().Read(mockAnyContext()).Return(domain.Credential{}, domain.ErrNoCredential).Once()
	clock.EXPECT().Now().Return(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	store.EXPECT().Save(mockAnyContext(), mock.Anything).Return(nil)
	store.EXPECT().Clear(mockAnyContext()).Return(nil)

	var seen []domain.SessionState
	cancel := session.Subscribe(func() {
		seen = append(seen, session.Current().State)
	})

	require.NoError(t, session.Resolve(context.Background()))
	require.NoError(t, session.Login(context.Background(), "tok"))
	require.NoError(t, session.Logout(context.Background()))

	require.Equal(t, []domain.SessionState{
		domain.SessionUnauthenticated,
		domain.SessionAuthenticated,
		domain.SessionUnauthenticated,
	}, seen)

	cancel()
	session.notify()
	assert.Len(t, seen, 3)
}

func TestSessionLoginBeforeResolveWins(t *testing.T) {
	store := mocks.NewMockCredentialStore(t)
	clock := mocks.NewMockClock(t)
	session := NewSession(store, clock)

	clock.EXPECT().Now().Return(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC))
	store.EXPECT().Save(mockAnyContext(), mock.Anything).Return(nil)

	require.NoError(t, session.Login(context.Background(), "tok-live"))

	// A late initial resolve must not clobber a session established in the meantime.
	require.NoError(t, session.Resolve(context.Background()))
	assert.Equal(t, domain.SessionAuthenticated, session.Current().State)
	assert.Equal(t, "tok-live", session.Token())
}
