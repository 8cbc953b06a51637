// Package cli is the recipectl command tree. It keeps the same client-side
// store and derived views the web client uses, backed by the HTTP API.
package cli

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"github.com/spf13/cobra"

	"github.com/osse101/RecipeBook_Go/internal/client"
	"github.com/osse101/RecipeBook_Go/internal/domain"
	"github.com/osse101/RecipeBook_Go/internal/store"
)

// RootOptions holds global flags for all commands.
type RootOptions struct {
	Server      string
	ProfilePath string
	Format      string
}

// NewRootCommand creates the root command for recipectl.
func NewRootCommand() *cobra.Command {
	opts := &RootOptions{}

	cmd := &cobra.Command{
		Use:   AppName,
		Short: "Manage your recipe book from the terminal",
		Long: `recipectl signs in to a recipe book server and manages your ingredients
and recipes. The session token is kept in a YAML profile.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if !slices.Contains(ValidFormats, opts.Format) {
				return &ExitError{Code: ExitCommandError, Message: fmt.Sprintf("invalid format %q: must be one of %v", opts.Format, ValidFormats)}
			}
			return nil
		},
	}

	cmd.PersistentFlags().StringVar(&opts.Server, "server", "", "server URL (defaults to the profile, then "+DefaultServer+")")
	cmd.PersistentFlags().StringVar(&opts.ProfilePath, "profile", DefaultProfilePath(), "profile file")
	cmd.PersistentFlags().StringVar(&opts.Format, "format", FormatText, "output format (json|text)")

	cmd.AddCommand(NewSignupCommand(opts))
	cmd.AddCommand(NewLoginCommand(opts))
	cmd.AddCommand(NewLogoutCommand(opts))
	cmd.AddCommand(NewWhoamiCommand(opts))
	cmd.AddCommand(NewIngredientsCommand(opts))
	cmd.AddCommand(NewRecipesCommand(opts))

	return cmd
}

// env is what a command runs against
type env struct {
	opts    *RootOptions
	profile *Profile
	client  *client.Client
	out     *OutputFormatter
}

func (o *RootOptions) open(cmd *cobra.Command) (*env, error) {
	profile, err := LoadProfile(o.ProfilePath)
	if err != nil {
		return nil, err
	}

	server := o.Server
	if server == "" {
		server = profile.Server
	}
	if server == "" {
		server = DefaultServer
	}
	profile.Server = server

	c := client.New(server)
	c.SetToken(profile.Token)

	return &env{
		opts:    o,
		profile: profile,
		client:  c,
		out:     &OutputFormatter{Format: o.Format, Writer: cmd.OutOrStdout()},
	}, nil
}

func (e *env) saveProfile() error {
	return e.profile.Save(e.opts.ProfilePath)
}

// session asks the server who we are; no token means anonymous
func (e *env) session(ctx context.Context) (domain.Session, error) {
	if e.client.Token() == "" {
		return domain.AnonymousSession(), nil
	}
	return e.client.Session(ctx)
}

// container builds the client store for the current session
func (e *env) container(ctx context.Context) (*store.Container, domain.Session, error) {
	session, err := e.session(ctx)
	if err != nil {
		return nil, session, err
	}
	c := store.NewContainer(e.client.Ingredients(), e.client.Recipes())
	c.SetSession(session)
	return c, session, nil
}

// resultErr turns a failed store result into an error carrying the message
// the store chose to show
func resultErr[T any](res store.Result[T]) error {
	if res.Success {
		return nil
	}
	if res.Err == nil {
		return errors.New(res.Error)
	}
	if res.Err.Error() == res.Error {
		return res.Err
	}
	return fmt.Errorf("%s: %w", res.Error, res.Err)
}
