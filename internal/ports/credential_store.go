package ports

import (
	"context"

	"uadm/internal/domain"
)

// CredentialStore holds the one session credential across process restarts.
// Read returns domain.ErrNoCredential when nothing is stored.
type CredentialStore interface {
	Save(ctx context.Context, cred domain.Credential) error
	Read(ctx context.Context) (domain.Credential, error)
	Clear(ctx context.Context) error
}
