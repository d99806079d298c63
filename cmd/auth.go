// ABOUTME: Session commands: login, register, logout and whoami
// ABOUTME: Login stores the backend credential in the persisted session

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/shopdemo/storefront/internal/client"
	"github.com/shopdemo/storefront/internal/guard"
	"github.com/shopdemo/storefront/internal/session"
)

var (
	loginUsername string
	loginPassword string
	loginToken    string

	registerEmail string
	registerRole  string
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Log in and save the session",
	Long: `Log in with a username and password, or store an existing token with --token.

Missing credentials are prompted for when running in a terminal.`,
	Args: cobra.NoArgs,
	Run:  bind(guard.LoginRoute, runLogin),
}

var registerCmd = &cobra.Command{
	Use:   "register",
	Short: "Create an account and log in",
	Args:  cobra.NoArgs,
	Run:   bind(guard.LoginRoute, runRegister),
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Clear the saved session",
	Args:  cobra.NoArgs,
	Run:   bind(guard.HomeRoute, runLogout),
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the logged-in user",
	Args:  cobra.NoArgs,
	Run:   bind(guard.AccountRoute, runWhoami),
}

func init() {
	rootCmd.AddCommand(loginCmd, registerCmd, logoutCmd, whoamiCmd)

	for _, c := range []*cobra.Command{loginCmd, registerCmd} {
		c.Flags().StringVarP(&loginUsername, "username", "u", "", "Username")
		c.Flags().StringVarP(&loginPassword, "password", "p", "", "Password")
	}
	loginCmd.Flags().StringVar(&loginToken, "token", "", "Use an existing bearer token instead of a password")
	registerCmd.Flags().StringVar(&registerEmail, "email", "", "Email address")
	registerCmd.Flags().StringVar(&registerRole, "role", "BUYER", "Account role: BUYER or SELLER")
}

// runLogin authenticates and stores the session
func runLogin(ctx context.Context, a *app, w io.Writer, _ []string) int {
	if loginToken != "" {
		a.session.SetToken(loginToken)
		if !a.session.CheckAuth() {
			fmt.Fprintln(w, "Error: token is malformed or expired")
			return exitError
		}
		return printLoggedIn(a, w)
	}

	if err := promptCredentials(ctx, &loginUsername, &loginPassword); err != nil {
		return a.fail(w, err)
	}

	resp, err := a.client.Login(ctx, loginUsername, loginPassword)
	if err != nil {
		return a.fail(w, err)
	}
	if err := establishSession(a.session, resp); err != nil {
		return a.fail(w, err)
	}
	return printLoggedIn(a, w)
}

// runRegister creates an account and logs in with the returned credential
func runRegister(ctx context.Context, a *app, w io.Writer, _ []string) int {
	if err := promptCredentials(ctx, &loginUsername, &loginPassword); err != nil {
		return a.fail(w, err)
	}

	resp, err := a.client.Register(ctx, &client.RegisterRequest{
		Username: loginUsername,
		Password: loginPassword,
		Email:    registerEmail,
		Role:     string(session.ParseRole(strings.ToUpper(strings.TrimSpace(registerRole)))),
	})
	if err != nil {
		return a.fail(w, err)
	}
	if resp.Token == "" {
		fmt.Fprintf(w, "Account %s created. Run 'storefront login' to sign in.\n", loginUsername)
		return exitOK
	}
	if err := establishSession(a.session, resp); err != nil {
		return a.fail(w, err)
	}
	return printLoggedIn(a, w)
}

// establishSession stores the login response in the session
func establishSession(s *session.Store, resp *client.AuthResponse) error {
	if !s.Establish(resp.Token, resp.Identity()) {
		return errors.New("backend returned a malformed or expired credential")
	}
	return nil
}

// promptCredentials asks for whatever is missing when stdin is a terminal
func promptCredentials(ctx context.Context, username, password *string) error {
	if *username != "" && *password != "" {
		return nil
	}
	if !isatty.IsTerminal(os.Stdin.Fd()) {
		return errors.New("username and password are required (use --username and --password)")
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().Title("Username").Value(username),
			huh.NewInput().Title("Password").EchoMode(huh.EchoModePassword).Value(password),
		),
	)
	if err := form.RunWithContext(ctx); err != nil {
		return fmt.Errorf("login cancelled: %w", err)
	}
	return nil
}

func printLoggedIn(a *app, w io.Writer) int {
	user, _ := a.session.User()
	if IsJSONOutput() {
		writeJSON(w, whoamiOutput(a.session))
		return exitOK
	}
	fmt.Fprintf(w, "Logged in as %s (%s)\n", user.Username, string(user.Role))
	return exitOK
}

// runLogout clears the session. It succeeds when already logged out.
func runLogout(_ context.Context, a *app, w io.Writer, _ []string) int {
	a.session.Logout()
	fmt.Fprintln(w, "Logged out.")
	return exitOK
}

// runWhoami prints the current identity
func runWhoami(_ context.Context, a *app, w io.Writer, _ []string) int {
	out := whoamiOutput(a.session)
	if IsJSONOutput() {
		writeJSON(w, out)
		return exitOK
	}
	fmt.Fprintln(w, formatWhoamiHuman(out))
	return exitOK
}

type whoami struct {
	UserID    int64      `json:"userId"`
	Username  string     `json:"username"`
	Role      string     `json:"role"`
	ExpiresAt *time.Time `json:"expiresAt,omitempty"`
}

func whoamiOutput(s *session.Store) whoami {
	user, _ := s.User()
	out := whoami{UserID: user.UserID, Username: user.Username, Role: string(user.Role)}
	if exp, ok := s.Expiry(); ok {
		out.ExpiresAt = &exp
	}
	return out
}

func formatWhoamiHuman(o whoami) string {
	out := fmt.Sprintf(`User:         %s (#%d)
Role:         %s`, o.Username, o.UserID, o.Role)
	if o.ExpiresAt != nil {
		out += fmt.Sprintf("\nExpires:      %s (in %s)", o.ExpiresAt.Local().Format(time.RFC1123), time.Until(*o.ExpiresAt).Round(time.Minute))
	}
	return out
}
