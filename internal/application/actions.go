package application

import (
	"context"
	"errors"
	"fmt"

	"uadm/internal/domain"
	"uadm/internal/ports"
)

var ErrUnsupportedActionKind = errors.New("unsupported bulk action kind")

// Actions is the batch action orchestrator. One Apply is one sequential unit
// of work: issue the bulk request, then reconcile selection, roster and
// session against the outcome. It performs no retries and assumes nothing
// about server-side atomicity beyond what the response says.
type Actions struct {
	gateway ports.AdminGateway
	session *Session
	roster  *Roster
}

func NewActions(gateway ports.AdminGateway, session *Session, roster *Roster) *Actions {
	return &Actions{
		gateway: gateway,
		session: session,
		roster:  roster,
	}
}

// Apply issues one bulk request carrying every selected id. On success the
// selection is cleared and the roster refreshed before the confirmation
// message is returned. An auth-denied outcome, from the bulk call or from
// the follow-up refresh, forces a logout and propagates so the caller can
// redirect to login.
func (a *Actions) Apply(ctx context.Context, kind domain.ActionKind, selection *Selection) (string, error) {
	if !kind.Valid() {
		return "", fmt.Errorf("%w: %q", ErrUnsupportedActionKind, kind)
	}

	ids := selection.IDs()
	if len(ids) == 0 {
		return "", domain.ErrNoSelection
	}

	message, err := a.gateway.ApplyBulk(ctx, kind, ids)
	if err != nil {
		return "", a.fail(ctx, "apply bulk action", err)
	}

	selection.ClearAll()

	if _, err := a.roster.Refresh(ctx); err != nil {
		return "", a.fail(ctx, "refresh roster after bulk action", err)
	}

	if message == "" {
		message = fmt.Sprintf("%s applied to %d account(s)", kind, len(ids))
	}

	return message, nil
}

func (a *Actions) fail(ctx context.Context, op string, err error) error {
	if domain.IsAuthDenied(err) {
		// Forced logout; the clear outcome does not mask the original error.
		_ = a.session.Logout(ctx)
	}

	return fmt.Errorf("%s: %w", op, err)
}
