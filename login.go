package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/twliao/mega-go/internal/config"
	"github.com/twliao/mega-go/internal/mega"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login",
		Short: "Verify account credentials against the API",
		Args:  cobra.NoArgs,
		RunE:  runLogin,
	}
}

func runLogin(cmd *cobra.Command, _ []string) error {
	logger := buildLogger()

	if _, _, err := newSession(cmd.Context(), logger); err != nil {
		return err
	}

	if flagJSON {
		return json.NewEncoder(os.Stdout).Encode(map[string]any{
			"logged_in": true,
			"email":     resolvedCfg.Email,
		})
	}

	statusf("Logged in as %s\n", resolvedCfg.Email)

	return nil
}

// resolveCredentials determines the login email and password. Email comes
// from the config chain; password from MEGA_GO_PASSWORD or an interactive
// no-echo prompt. The password is never accepted via argv, where it would
// leak into the process table.
func resolveCredentials() (string, string, error) {
	email := resolvedCfg.Email
	if email == "" {
		return "", "", fmt.Errorf("no email configured: set email in the config file or %s", config.EnvEmail)
	}

	env := config.ReadEnvOverrides()
	if env.Password != "" {
		return email, env.Password, nil
	}

	fd := os.Stdin.Fd()
	if !isatty.IsTerminal(fd) && !isatty.IsCygwinTerminal(fd) {
		return "", "", fmt.Errorf("stdin is not a terminal: set %s to log in non-interactively", config.EnvPassword)
	}

	fmt.Fprintf(os.Stderr, "Password for %s: ", email)

	pw, err := term.ReadPassword(int(fd))

	fmt.Fprintln(os.Stderr)

	if err != nil {
		return "", "", fmt.Errorf("reading password: %w", err)
	}

	return email, string(pw), nil
}

// newSession resolves credentials, builds an API client, and performs the
// login handshake. Every command authenticates fresh: sessions are held in
// memory only and die with the process.
func newSession(ctx context.Context, logger *slog.Logger) (*mega.SessionClient, *mega.Client, error) {
	email, password, err := resolveCredentials()
	if err != nil {
		return nil, nil, err
	}

	client := apiClient(logger)
	sc := mega.NewSessionClient(client, logger)

	if _, err := sc.Login(ctx, email, password); err != nil {
		var authErr *mega.AuthError
		if errors.As(err, &authErr) {
			return nil, nil, fmt.Errorf("login failed for %s: check email and password", email)
		}

		return nil, nil, err
	}

	return sc, client, nil
}
