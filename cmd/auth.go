package cmd

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"
)

func newLoginCmd(app *app) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Exchange credentials for a session token",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			token, err := app.gateway.Login(cmd.Context(), email, password)
			if err != nil {
				return err
			}

			if err := app.session.Login(cmd.Context(), token); err != nil {
				return fmt.Errorf("commit session: %w", err)
			}

			who := email
			if claimed := claimedEmail(token); claimed != "" {
				who = claimed
			}
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Logged in as %s\n", who)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newLogoutCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Clear the stored session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.session.Logout(cmd.Context()); err != nil {
				return err
			}

			_, _ = fmt.Fprintln(cmd.OutOrStdout(), "Logged out.")
			return nil
		},
	}
}

func newRegisterCmd(app *app) *cobra.Command {
	var name, email, password string

	cmd := &cobra.Command{
		Use:   "register",
		Short: "Create a new operator account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			message, err := app.gateway.Register(cmd.Context(), name, email, password)
			if err != nil {
				return err
			}

			if message == "" {
				message = "Registration successful."
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "Display name")
	cmd.Flags().StringVar(&email, "email", "", "Account email")
	cmd.Flags().StringVar(&password, "password", "", "Account password")
	_ = cmd.MarkFlagRequired("name")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")

	return cmd
}

func newForgotPasswordCmd(app *app) *cobra.Command {
	var email string

	cmd := &cobra.Command{
		Use:   "forgot-password",
		Short: "Request a password reset link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			message, err := app.gateway.RequestPasswordReset(cmd.Context(), email)
			if err != nil {
				return err
			}

			if message == "" {
				message = "If the email exists, a reset link has been sent."
			}
			_, _ = fmt.Fprintln(cmd.OutOrStdout(), message)
			return nil
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "Account email")
	_ = cmd.MarkFlagRequired("email")

	return cmd
}

func newWhoamiCmd(app *app) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := app.session.Resolve(cmd.Context()); err != nil {
				return err
			}

			snap := app.session.Current()
			_, _ = fmt.Fprintf(cmd.OutOrStdout(), "session: %s\n", snap.State)

			token := app.session.Token()
			if token == "" {
				return nil
			}

			// Display only; the server remains the sole validity judge.
			if email := claimedEmail(token); email != "" {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "email: %s\n", email)
			}
			if expiry := claimedExpiry(token); !expiry.IsZero() {
				_, _ = fmt.Fprintf(cmd.OutOrStdout(), "token expires: %s\n", expiry.Local().Format(time.RFC1123))
			}

			return nil
		},
	}
}

type sessionClaims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

func parseSessionClaims(token string) *sessionClaims {
	claims := &sessionClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil
	}

	return claims
}

func claimedEmail(token string) string {
	claims := parseSessionClaims(token)
	if claims == nil {
		return ""
	}

	return claims.Email
}

func claimedExpiry(token string) time.Time {
	claims := parseSessionClaims(token)
	if claims == nil || claims.ExpiresAt == nil {
		return time.Time{}
	}

	return claims.ExpiresAt.Time
}
