package application

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"uadm/internal/domain"
	"uadm/internal/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRosterRefreshReplacesSnapshotWholesale(t *testing.T) {
	gateway := mocks.NewMockAdminGateway(t)
	roster := NewRoster(gateway)

	first := []domain.Account{
		{ID: "1", Name: "Ada", Status: domain.StatusActive},
		{ID: "2", Name: "Grace", Status: domain.StatusBlocked},
	}
	second := []domain.Account{
		{ID: "3", Name: "Edsger", Status: domain.StatusActive},
	}
	gateway.EXPECT().FetchRoster(mockAnyContext()).Return(first, nil).Once()
	gateway.EXPECT().FetchRoster(mockAnyContext()).Return(second, nil).Once()

	got, err := roster.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, got)
	assert.Equal(t, first, roster.Snapshot())

	got, err = roster.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, second, got)
	// No merging: the earlier entries are gone.
	assert.Equal(t, second, roster.Snapshot())
	assert.Equal(t, []domain.AccountID{"3"}, roster.IDs())
}

func TestRosterStaleRefreshCannotOverwriteYoungerOne(t *testing.T) {
	gateway := mocks.NewMockAdminGateway(t)
	roster := NewRoster(gateway)

	stale := []domain.Account{{ID: "1", Name: "Old", Status: domain.StatusActive}}
	fresh := []domain.Account{{ID: "2", Name: "New", Status: domain.StatusActive}}

	firstStarted := make(chan struct{})
	release := make(chan struct{})
	gateway.EXPECT().FetchRoster(mockAnyContext()).RunAndReturn(func(context.Context) ([]domain.Account, error) {
		close(firstStarted)
		<-release
		return stale, nil
	}).Once()
	gateway.EXPECT().FetchRoster(mockAnyContext()).Return(fresh, nil).Once()

	firstDone := make(chan struct{})
	var firstGot []domain.Account
	var firstErr error
	go func() {
		defer close(firstDone)
		firstGot, firstErr = roster.Refresh(context.Background())
	}()

	<-firstStarted
	got, err := roster.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, fresh, got)

	close(release)
	select {
	case <-firstDone:
	case <-time.After(5 * time.Second):
		t.Fatal("first refresh never completed")
	}

	// The slow, older fetch lost the race: its result is discarded and the
	// caller sees the snapshot the younger refresh installed.
	require.NoError(t, firstErr)
	assert.Equal(t, fresh, firstGot)
	assert.Equal(t, fresh, roster.Snapshot())
}

func TestRosterCloseDiscardsInFlightRefresh(t *testing.T) {
	gateway := mocks.NewMockAdminGateway(t)
	roster := NewRoster(gateway)

	started := make(chan struct{})
	release := make(chan struct{})
	gateway.EXPECT().FetchRoster(mockAnyContext()).RunAndReturn(func(context.Context) ([]domain.Account, error) {
		close(started)
		<-release
		return []domain.Account{{ID: "1", Name: "Ada", Status: domain.StatusActive}}, nil
	}).Once()

	done := make(chan struct{})
	var refreshErr error
	go func() {
		defer close(done)
		_, refreshErr = roster.Refresh(context.Background())
	}()

	<-started
	roster.Close()
	close(release)
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		t.Fatal("refresh never completed")
	}

	require.ErrorIs(t, refreshErr, ErrRosterClosed)
	assert.Empty(t, roster.Snapshot())
}

func TestRosterRefreshAfterCloseIsRejectedWithoutNetwork(t *testing.T) {
	gateway := mocks.NewMockAdminGateway(t)
	roster := NewRoster(gateway)

	roster.Close()

	_, err := roster.Refresh(context.Background())
	require.ErrorIs(t, err, ErrRosterClosed)
	gateway.AssertNotCalled(t, "FetchRoster")
}

func TestRosterRefreshPropagatesAuthDenied(t *testing.T) {
	gateway := mocks.NewMockAdminGateway(t)
	roster := NewRoster(gateway)

	denied := fmt.Errorf("%w: token rejected", domain.ErrAuthDenied)
	gateway.EXPECT().FetchRoster(mockAnyContext()).Return(nil, denied).Once()

	_, err := roster.Refresh(context.Background())
	require.Error(t, err)
	assert.True(t, domain.IsAuthDenied(err))
	assert.Empty(t, roster.Snapshot())
}

func TestRosterRefreshKeepsSnapshotOnFailure(t *testing.T) {
	gateway := mocks.NewMockAdminGateway(t)
	roster := NewRoster(gateway)

	accounts := []domain.Account{{ID: "1", Name: "Ada", Status: domain.StatusActive}}
	gateway.EXPECT().FetchRoster(mockAnyContext()).Return(accounts, nil).Once()
	gateway.EXPECT().FetchRoster(mockAnyContext()).Return(nil, errors.New("gateway timeout")).Once()

	_, err := roster.Refresh(context.Background())
	require.NoError(t, err)

	_, err = roster.Refresh(context.Background())
	require.Error(t, err)
	assert.Equal(t, accounts, roster.Snapshot())
}

func TestRosterSubscribeNotifiesOnApply(t *testing.T) {
	gateway := mocks.NewMockAdminGateway(t)
	roster := NewRoster(gateway)

	gateway.EXPECT().FetchRoster(mockAnyContext()).Return([]domain.Account{{ID: "1"}}, nil).Twice()

	notified := 0
	cancel := roster.Subscribe(func() { notified++ })

	_, err := roster.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, notified)

	cancel()
	_, err = roster.Refresh(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, notified)
}
