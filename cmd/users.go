package cmd

import (
	"encoding/json"
	"fmt"

	rosterrender "uadm/internal/adapters/render/roster"
	"uadm/internal/application"
	"uadm/internal/domain"
	"github.com/spf13/cobra"
)

func newUsersCmd(app *app) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "users",
		Short: "View and manage the account roster",
	}

	cmd.AddCommand(
		newUsersListCmd(app),
		newUsersActionCmd(app, domain.ActionBlock, "block", "Block the selected accounts"),
		newUsersActionCmd(app, domain.ActionUnblock, "unblock", "Unblock the selected accounts"),
		newUsersActionCmd(app, domain.ActionDelete, "delete", "Delete the selected accounts"),
		newUsersManageCmd(app),
	)

	return cmd
}

// requireSession is the command-line face of the route guard: protected
// subcommands refuse to run until the session resolves to Authenticated.
func requireSession(cmd *cobra.Command, app *app) error {
	decision := app.guard.Admit(cmd.Context())
	if decision.Admission != application.AdmissionGrant {
		return fmt.Errorf("%w: run `uadm login` first", domain.ErrNotAuthenticated)
	}

	return nil
}

// failAuth translates an auth-denied outcome into the forced-logout contract
// for one-shot commands: clear the session, point at login.
func failAuth(cmd *cobra.Command, app *app, err error) error {
	if !domain.IsAuthDenied(err) {
		return err
	}

	_ = app.session.Logout(cmd.Context())
	return fmt.Errorf("%w; session cleared, run `uadm login` again", err)
}

func newUsersListCmd(app *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "Fetch and display the account roster",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			roster := application.NewRoster(app.gateway)
			accounts, err := roster.Refresh(cmd.Context())
			if err != nil {
				return failAuth(cmd, app, err)
			}

			if asJSON {
				enc := json.NewEncoder(cmd.OutOrStdout())
				enc.SetIndent("", "  ")
				return enc.Encode(accounts)
			}

			rendered, err := rosterrender.Render(accounts, rosterrender.RenderOptions{Now: app.now()})
			if err != nil {
				return fmt.Errorf("render roster: %w", err)
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), rendered)
			return err
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "Render JSON output")

	return cmd
}

func newUsersActionCmd(app *app, kind domain.ActionKind, use, short string) *cobra.Command {
	var ids []string
	var all bool
	var yes bool

	cmd := &cobra.Command{
		Use:   use,
		Short: short,
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}
			if kind == domain.ActionDelete && !yes {
				return fmt.Errorf("deleting accounts is irreversible; confirm with --yes")
			}

			roster := application.NewRoster(app.gateway)
			if _, err := roster.Refresh(cmd.Context()); err != nil {
				return failAuth(cmd, app, err)
			}

			selection, err := buildSelection(roster, ids, all)
			if err != nil {
				return err
			}

			actions := application.NewActions(app.gateway, app.session, roster)
			message, err := actions.Apply(cmd.Context(), kind, selection)
			if err != nil {
				return failAuth(cmd, app, err)
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}

	cmd.Flags().StringSliceVar(&ids, "id", nil, "Account id to target (repeatable)")
	cmd.Flags().BoolVar(&all, "all", false, "Target every account in the roster")
	if kind == domain.ActionDelete {
		cmd.Flags().BoolVar(&yes, "yes", false, "Confirm the delete")
	}

	return cmd
}

// buildSelection turns --id/--all flags into a selection set scoped to the
// freshly fetched roster; ids outside the snapshot are rejected rather than
// silently forwarded.
func buildSelection(roster *application.Roster, ids []string, all bool) (*application.Selection, error) {
	selection := application.NewSelection()
	currentIDs := roster.IDs()

	if all {
		selection.SelectAll(currentIDs)
		return selection, nil
	}

	known := make(map[domain.AccountID]struct{}, len(currentIDs))
	for _, id := range currentIDs {
		known[id] = struct{}{}
	}

	for _, raw := range ids {
		id := domain.AccountID(raw)
		if _, ok := known[id]; !ok {
			return nil, fmt.Errorf("unknown account id %q", raw)
		}
		if !selection.Contains(id) {
			selection.Toggle(id)
		}
	}

	return selection, nil
}
