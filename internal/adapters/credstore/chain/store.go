package chain

import (
	"context"
	"errors"
	"fmt"

	filestore "uadm/internal/adapters/credstore/file"
	passstore "uadm/internal/adapters/credstore/pass"
	"uadm/internal/domain"
	"uadm/internal/ports"
)

// Store chains two credential stores: writes prefer the primary and fall
// back on failure, reads consult the fallback when the primary has nothing,
// and Clear always sweeps both so a logout never leaves a live token behind.
type Store struct {
	primary  ports.CredentialStore
	fallback ports.CredentialStore
}

var _ ports.CredentialStore = (*Store)(nil)

var (
	errNilPrimaryStore  = errors.New("primary credential store is nil")
	errNilFallbackStore = errors.New("fallback credential store is nil")
)

func NewStore(primary, fallback ports.CredentialStore) (*Store, error) {
	if primary == nil {
		return nil, errNilPrimaryStore
	}
	if fallback == nil {
		return nil, errNilFallbackStore
	}

	return &Store{primary: primary, fallback: fallback}, nil
}

// NewPassFirstWithFileFallback prefers the operator's pass store and falls
// back to a plain credential file at filePath.
func NewPassFirstWithFileFallback(filePath string) (*Store, error) {
	fileStore, err := filestore.NewStore(filePath)
	if err != nil {
		return nil, err
	}

	return NewStore(passstore.NewStore(), fileStore)
}

func (s *Store) Save(ctx context.Context, cred domain.Credential) error {
	err := s.primary.Save(ctx, cred)
	if err == nil {
		return nil
	}
	if shouldSkipFallback(err) {
		return err
	}

	fallbackErr := s.fallback.Save(ctx, cred)
	if fallbackErr == nil {
		return nil
	}

	return fmt.Errorf("primary store save failed: %w; fallback store save failed: %w", err, fallbackErr)
}

func (s *Store) Read(ctx context.Context) (domain.Credential, error) {
	cred, err := s.primary.Read(ctx)
	if err == nil {
		return cred, nil
	}
	if shouldSkipFallback(err) {
		return domain.Credential{}, err
	}

	fallbackCred, fallbackErr := s.fallback.Read(ctx)
	if fallbackErr == nil {
		return fallbackCred, nil
	}
	if errors.Is(fallbackErr, domain.ErrNoCredential) {
		if errors.Is(err, domain.ErrNoCredential) {
			return domain.Credential{}, domain.ErrNoCredential
		}
		// Neither store produced a credential; a broken primary must still
		// resolve to "not signed in" rather than an opaque failure.
		return domain.Credential{}, fmt.Errorf("%w (primary store read failed: %s)", domain.ErrNoCredential, err)
	}

	return domain.Credential{}, fmt.Errorf("primary store read failed: %w; fallback store read failed: %w", err, fallbackErr)
}

func (s *Store) Clear(ctx context.Context) error {
	primaryErr := s.primary.Clear(ctx)
	if shouldSkipFallback(primaryErr) {
		return primaryErr
	}

	fallbackErr := s.fallback.Clear(ctx)
	if primaryErr == nil && fallbackErr == nil {
		return nil
	}
	if primaryErr != nil && fallbackErr != nil {
		return fmt.Errorf("primary store clear failed: %w; fallback store clear failed: %w", primaryErr, fallbackErr)
	}
	if primaryErr != nil {
		return fmt.Errorf("primary store clear failed: %w", primaryErr)
	}

	return fmt.Errorf("fallback store clear failed: %w", fallbackErr)
}

func shouldSkipFallback(err error) bool {
	return errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)
}
