package cli

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/osse101/RecipeBook_Go/internal/validation"
)

// NewSignupCommand creates the signup command.
func NewSignupCommand(rootOpts *RootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "signup",
		Short: "Create an account",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := rootOpts.open(cmd)
			if err != nil {
				return err
			}
			user, err := e.client.SignUp(cmd.Context(), validation.SignupForm{
				Email:           email,
				Password:        password,
				ConfirmPassword: password,
			})
			if err != nil {
				return err
			}
			return e.out.Emit(user, func() error {
				e.out.Linef("Created account %s", user.Email)
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// NewLoginCommand creates the login command.
func NewLoginCommand(rootOpts *RootOptions) *cobra.Command {
	var email, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and remember the session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := rootOpts.open(cmd)
			if err != nil {
				return err
			}
			tok, err := e.client.SignIn(cmd.Context(), validation.Credentials{Email: email, Password: password})
			if err != nil {
				return err
			}

			e.profile.Token = tok.Value
			e.profile.Email = tok.Identity.Email
			if err := e.saveProfile(); err != nil {
				return err
			}
			return e.out.Emit(tok.Identity, func() error {
				e.out.Linef("Signed in as %s (session expires %s)", tok.Identity.Email, tok.ExpiresAt.Local().Format("2006-01-02 15:04"))
				return nil
			})
		},
	}

	cmd.Flags().StringVar(&email, "email", "", "account email")
	cmd.Flags().StringVar(&password, "password", "", "account password")
	_ = cmd.MarkFlagRequired("email")
	_ = cmd.MarkFlagRequired("password")
	return cmd
}

// NewLogoutCommand creates the logout command.
func NewLogoutCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Revoke the session and forget it",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := rootOpts.open(cmd)
			if err != nil {
				return err
			}
			// The local token goes even when the server is unreachable
			signOutErr := e.client.SignOut(cmd.Context())
			e.profile.Token = ""
			e.profile.Email = ""
			if err := e.saveProfile(); err != nil {
				return errors.Join(signOutErr, err)
			}
			if signOutErr != nil {
				return fmt.Errorf("signed out locally: %w", signOutErr)
			}
			e.out.Linef(MsgSignedOut)
			return nil
		},
	}
}

// NewWhoamiCommand creates the whoami command.
func NewWhoamiCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "whoami",
		Short: "Show the current session",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			e, err := rootOpts.open(cmd)
			if err != nil {
				return err
			}
			session, err := e.session(cmd.Context())
			if err != nil {
				return err
			}
			return e.out.Emit(session, func() error {
				if !session.Authenticated() {
					e.out.Linef(MsgNotSignedIn)
					return nil
				}
				email := ""
				if session.Email != nil {
					email = *session.Email
				}
				e.out.Linef("%s (%s)", email, *session.UserID)
				return nil
			})
		},
	}
}
