// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package client

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/MKhiriev/cpoint/internal/adapter"
	"github.com/MKhiriev/cpoint/internal/logger"
	"github.com/MKhiriev/cpoint/models"
)

const usage = `usage: cpoint <command> [flags]

commands:
  register   create an account (-email, -first, -last)
  login      sign in (-email)
  me         show the signed-in user
  profile    change your names (-first, -last)
  logout     sign out and forget the token
  health     check that the server is running
`

// App is the command-line client. Every Run executes one command.
type App struct {
	server   adapter.ServerAdapter
	tokens   TokenStore
	prompter Prompter
	out      io.Writer

	logger *logger.Logger
}

func NewApp(server adapter.ServerAdapter, tokens TokenStore, prompter Prompter, out io.Writer, logger *logger.Logger) (*App, error) {
	if server == nil {
		return nil, ErrNilAdapter
	}

	return &App{
		server:   server,
		tokens:   tokens,
		prompter: prompter,
		out:      out,
		logger:   logger,
	}, nil
}

func (a *App) Run(ctx context.Context, args []string) error {
	if len(args) == 0 {
		fmt.Fprint(a.out, usage)
		return ErrNoCommand
	}

	command, rest := args[0], args[1:]
	a.logger.Debug().Str("command", command).Msg("running command")

	var err error
	switch command {
	case "register":
		err = a.register(ctx, rest)
	case "login":
		err = a.login(ctx, rest)
	case "me":
		err = a.me(ctx)
	case "profile":
		err = a.profile(ctx, rest)
	case "logout":
		err = a.logout(ctx)
	case "health":
		err = a.health(ctx)
	case "help", "-h", "--help":
		fmt.Fprint(a.out, usage)
		return nil
	default:
		fmt.Fprint(a.out, usage)
		return fmt.Errorf("%w: %q", ErrUnknownCommand, command)
	}

	if err != nil {
		a.logger.Error().Err(err).Str("command", command).Msg("command failed")
	}
	return err
}

func (a *App) register(ctx context.Context, args []string) error {
	fs := newFlagSet("register")
	email := fs.String("email", "", "account e-mail")
	first := fs.String("first", "", "first name")
	last := fs.String("last", "", "last name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	request := models.RegisterRequest{Email: *email, FirstName: *first, LastName: *last}

	var err error
	if request.Email, err = a.ask("Email", request.Email); err != nil {
		return err
	}
	if request.Password, err = a.prompter.Password("Password"); err != nil {
		return err
	}
	if request.FirstName, err = a.ask("First name", request.FirstName); err != nil {
		return err
	}
	if request.LastName, err = a.ask("Last name", request.LastName); err != nil {
		return err
	}

	user, err := a.server.Register(ctx, request)
	if err != nil {
		return fmt.Errorf("register: %w", err)
	}
	if err = a.tokens.Save(a.server.Token()); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "User registered successfully")
	a.printUser(user)
	return nil
}

func (a *App) login(ctx context.Context, args []string) error {
	fs := newFlagSet("login")
	email := fs.String("email", "", "account e-mail")
	if err := fs.Parse(args); err != nil {
		return err
	}

	request := models.LoginRequest{Email: *email}

	var err error
	if request.Email, err = a.ask("Email", request.Email); err != nil {
		return err
	}
	if request.Password, err = a.prompter.Password("Password"); err != nil {
		return err
	}

	user, err := a.server.Login(ctx, request)
	if err != nil {
		return fmt.Errorf("login: %w", err)
	}
	if err = a.tokens.Save(a.server.Token()); err != nil {
		return err
	}

	fmt.Fprintln(a.out, "Login successful")
	a.printUser(user)
	return nil
}

func (a *App) me(ctx context.Context) error {
	if err := a.restoreToken(); err != nil {
		return err
	}

	user, err := a.server.Me(ctx)
	if err != nil {
		return a.gatedFailure("me", err)
	}

	a.printUser(user)
	return nil
}

func (a *App) profile(ctx context.Context, args []string) error {
	fs := newFlagSet("profile")
	first := fs.String("first", "", "new first name")
	last := fs.String("last", "", "new last name")
	if err := fs.Parse(args); err != nil {
		return err
	}

	if err := a.restoreToken(); err != nil {
		return err
	}

	request := models.ProfileUpdateRequest{FirstName: *first, LastName: *last}

	var err error
	if request.FirstName, err = a.ask("First name", request.FirstName); err != nil {
		return err
	}
	if request.LastName, err = a.ask("Last name", request.LastName); err != nil {
		return err
	}

	user, err := a.server.UpdateProfile(ctx, request)
	if err != nil {
		return a.gatedFailure("update profile", err)
	}

	fmt.Fprintln(a.out, "Profile updated successfully")
	a.printUser(user)
	return nil
}

func (a *App) logout(ctx context.Context) error {
	if err := a.restoreToken(); err != nil {
		return err
	}

	// the local token goes away whatever the server answers
	serverErr := a.server.Logout(ctx)
	if err := a.tokens.Delete(); err != nil {
		return errors.Join(serverErr, err)
	}
	if serverErr != nil {
		return fmt.Errorf("logout: %w", serverErr)
	}

	fmt.Fprintln(a.out, "Logout successful")
	return nil
}

func (a *App) health(ctx context.Context) error {
	resp, err := a.server.Health(ctx)
	if err != nil {
		return fmt.Errorf("health: %w", err)
	}

	fmt.Fprintln(a.out, resp.Message)
	if resp.Version != "" {
		fmt.Fprintf(a.out, "version:   %s\n", resp.Version)
	}
	if resp.Timestamp != nil {
		fmt.Fprintf(a.out, "timestamp: %s\n", resp.Timestamp.Format(time.RFC3339))
	}
	return nil
}

// restoreToken hands the stored token to the adapter. A missing token is
// reported as [adapter.ErrNoToken] before any request is sent.
func (a *App) restoreToken() error {
	token, err := a.tokens.Load()
	if err != nil {
		return err
	}
	if token == "" {
		return adapter.ErrNoToken
	}

	a.server.SetToken(token)
	return nil
}

// gatedFailure forgets a token the server no longer accepts.
func (a *App) gatedFailure(operation string, err error) error {
	if errors.Is(err, adapter.ErrUnauthorized) {
		if deleteErr := a.tokens.Delete(); deleteErr != nil {
			a.logger.Warn().Err(deleteErr).Msg("failed to forget rejected token")
		}
	}
	return fmt.Errorf("%s: %w", operation, err)
}

// ask returns preset when it is set and prompts for a non-empty value otherwise.
func (a *App) ask(label, preset string) (string, error) {
	if value := strings.TrimSpace(preset); value != "" {
		return value, nil
	}

	value, err := a.prompter.Line(label)
	if err != nil {
		return "", err
	}
	value = strings.TrimSpace(value)
	if value == "" {
		return "", fmt.Errorf("%s: %w", strings.ToLower(label), ErrEmptyInput)
	}
	return value, nil
}

func (a *App) printUser(user models.UserView) {
	fmt.Fprintf(a.out, "id:         %s\n", user.ID)
	fmt.Fprintf(a.out, "email:      %s\n", user.Email)
	fmt.Fprintf(a.out, "first name: %s\n", user.FirstName)
	fmt.Fprintf(a.out, "last name:  %s\n", user.LastName)
	if user.CreatedAt != nil {
		fmt.Fprintf(a.out, "created at: %s\n", user.CreatedAt.Format(time.RFC3339))
	}
	if user.UpdatedAt != nil {
		fmt.Fprintf(a.out, "updated at: %s\n", user.UpdatedAt.Format(time.RFC3339))
	}
}

func newFlagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	return fs
}
