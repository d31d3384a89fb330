package cmd

import (
	"fmt"

	"uadm/internal/adapters/tui/manage"
	"uadm/internal/application"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

func newUsersManageCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "manage",
		Short: "Interactively select accounts and apply bulk actions",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := requireSession(cmd, app); err != nil {
				return err
			}

			roster := application.NewRoster(app.gateway)
			defer roster.Close()
			selection := application.NewSelection()
			actions := application.NewActions(app.gateway, app.session, roster)

			program := tea.NewProgram(
				manage.New(app.session, roster, selection, actions),
				tea.WithAltScreen(),
				tea.WithContext(cmd.Context()),
			)

			finalModel, err := program.Run()
			if err != nil {
				return fmt.Errorf("run management view: %w", err)
			}

			if view, ok := finalModel.(manage.Model); ok {
				if err := view.Err(); err != nil {
					// The view already logged the session out.
					return fmt.Errorf("%w; run `uadm login` again", err)
				}
			}

			return nil
		},
	}
}
