package pass

import (
	"context"
	"errors"
	"testing"
	"time"

	"uadm/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordedCall struct {
	input string
	args  []string
}

func fakeRun(calls *[]recordedCall, stdout, stderr string, err error) runFunc {
	return func(_ context.Context, input string, args ...string) (string, string, error) {
		*calls = append(*calls, recordedCall{input: input, args: args})
		return stdout, stderr, err
	}
}

func TestStoreSaveInsertsTokenAndTimestamp(t *testing.T) {
	t.Parallel()

	var calls []recordedCall
	store := &Store{run: fakeRun(&calls, "", "", nil)}

	savedAt := time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)
	err := store.Save(context.Background(), domain.Credential{Token: "tok-1", SavedAt: savedAt})
	require.NoError(t, err)

	require.Len(t, calls, 1)
	assert.Equal(t, []string{"insert", "-m", "-f", Entry}, calls[0].args)
	assert.Equal(t, "tok-1\n2025-06-01T10:00:00Z\n", calls[0].input)
}

func TestStoreSaveRejectsEmptyToken(t *testing.T) {
	t.Parallel()

	var calls []recordedCall
	store := &Store{run: fakeRun(&calls, "", "", nil)}

	require.Error(t, store.Save(context.Background(), domain.Credential{}))
	assert.Empty(t, calls)
}

func TestStoreReadParsesTokenAndTimestamp(t *testing.T) {
	t.Parallel()

	var calls []recordedCall
	store := &Store{run: fakeRun(&calls, "tok-1\n2025-06-01T10:00:00Z\n", "", nil)}

	cred, err := store.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", cred.Token)
	assert.True(t, cred.SavedAt.Equal(time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC)))

	require.Len(t, calls, 1)
	assert.Equal(t, []string{"show", Entry}, calls[0].args)
}

func TestStoreReadTokenOnlyEntry(t *testing.T) {
	t.Parallel()

	var calls []recordedCall
	store := &Store{run: fakeRun(&calls, "tok-1\n", "", nil)}

	cred, err := store.Read(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "tok-1", cred.Token)
	assert.True(t, cred.SavedAt.IsZero())
}

func TestStoreReadMissingEntryIsNoCredential(t *testing.T) {
	t.Parallel()

	var calls []recordedCall
	stderr := "Error: uadm/session is not in the password store."
	store := &Store{run: fakeRun(&calls, "", stderr, errors.New("exit status 1"))}

	_, err := store.Read(context.Background())
	require.ErrorIs(t, err, domain.ErrNoCredential)
}

func TestStoreReadOtherFailuresCarryStderr(t *testing.T) {
	t.Parallel()

	var calls []recordedCall
	store := &Store{run: fakeRun(&calls, "", "gpg: decryption failed", errors.New("exit status 2"))}

	_, err := store.Read(context.Background())
	require.Error(t, err)
	assert.NotErrorIs(t, err, domain.ErrNoCredential)
	assert.Contains(t, err.Error(), "gpg: decryption failed")
}

func TestStoreClearRemovesEntry(t *testing.T) {
	t.Parallel()

	var calls []recordedCall
	store := &Store{run: fakeRun(&calls, "", "", nil)}

	require.NoError(t, store.Clear(context.Background()))
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"rm", "-f", Entry}, calls[0].args)
}

func TestStoreClearMissingEntryIsFine(t *testing.T) {
	t.Parallel()

	var calls []recordedCall
	stderr := "Error: uadm/session is not in the password store."
	store := &Store{run: fakeRun(&calls, "", stderr, errors.New("exit status 1"))}

	require.NoError(t, store.Clear(context.Background()))
}

func TestStoreHonorsCancelledContext(t *testing.T) {
	t.Parallel()

	var calls []recordedCall
	store := &Store{run: fakeRun(&calls, "", "", nil)}

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	require.ErrorIs(t, store.Save(ctx, domain.Credential{Token: "tok"}), context.Canceled)
	_, err := store.Read(ctx)
	require.ErrorIs(t, err, context.Canceled)
	require.ErrorIs(t, store.Clear(ctx), context.Canceled)
	assert.Empty(t, calls)
}
