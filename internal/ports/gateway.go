package ports

import (
	"context"

	"uadm/internal/domain"
)

// AdminGateway is the backend boundary. Implementations attach the bearer
// credential to authenticated calls and translate 401/403 responses into
// errors matching domain.ErrAuthDenied.
type AdminGateway interface {
	Login(ctx context.Context, email, password string) (token string, err error)
	Register(ctx context.Context, name, email, password string) (message string, err error)
	RequestPasswordReset(ctx context.Context, email string) (message string, err error)
	FetchRoster(ctx context.Context) ([]domain.Account, error)
	ApplyBulk(ctx context.Context, kind domain.ActionKind, ids []domain.AccountID) (message string, err error)
}
