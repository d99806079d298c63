// ABOUTME: Per-invocation wiring of config, session store, router and API client
// ABOUTME: Every command runs behind the guard bound to its route

package cmd

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/shopdemo/storefront/internal/client"
	"github.com/shopdemo/storefront/internal/config"
	"github.com/shopdemo/storefront/internal/guard"
	"github.com/shopdemo/storefront/internal/logger"
	"github.com/shopdemo/storefront/internal/session"
)

// Exit codes
const (
	exitOK           = 0
	exitRedirectHome = 1
	exitError        = 2
)

// app holds everything a command needs
type app struct {
	cfg     *config.Config
	session *session.Store
	nav     *guard.Recorder
	router  *guard.Router
	client  *client.Client
}

// action is a command body. It returns the process exit code.
type action func(ctx context.Context, a *app, w io.Writer, args []string) int

// newApp loads configuration and opens the persisted session
func newApp(ctx context.Context, cfg *config.Config) (*app, error) {
	persister, err := openPersister(ctx, cfg)
	if err != nil {
		return nil, err
	}

	store, err := session.Open(ctx, persister)
	if err != nil {
		return nil, err
	}

	transport, err := client.NewTransport(cfg.AllProxy)
	if err != nil {
		store.Close()
		return nil, err
	}

	nav := guard.NewRecorder()
	return &app{
		cfg:     cfg,
		session: store,
		nav:     nav,
		router:  guard.NewRouter(store, nav),
		client: client.New(GetAPIURL(cfg),
			client.WithSession(store),
			client.WithNavigator(nav),
			client.WithTimeout(cfg.Timeout),
			client.WithTransport(transport),
			client.WithLogger(slog.Default()),
		),
	}, nil
}

// openPersister picks the session backend. A nil persister keeps the session in memory.
func openPersister(ctx context.Context, cfg *config.Config) (session.Persister, error) {
	if noPersist {
		return nil, nil
	}
	if cfg.SessionBackend == config.BackendRedis {
		return session.DialRedis(ctx, cfg.RedisSession())
	}
	return session.NewFileStore(cfg.ConfigDir), nil
}

// Close releases the session persister
func (a *app) Close() {
	if err := a.session.Close(); err != nil {
		slog.Warn("Failed to close session store", "error", err)
	}
}

// bind builds a cobra Run func that runs fn behind the guard for route.
// Log lines go to stderr.
func bind(route string, fn action) func(cmd *cobra.Command, args []string) {
	return start(route, fn, false)
}

// start loads config, sets up logging, opens the app and runs fn. With
// logToFile set, log lines go to debug.log in the config directory.
func start(route string, fn action, logToFile bool) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer cancel()

		cfg, err := config.Load(ctx)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(exitError)
		}
		if configDir != "" {
			cfg.ConfigDir = configDir
		}

		logOpts := logger.Options{Level: cfg.LogLevel, Format: cfg.LogFormat, Writer: os.Stderr}
		closeLog := func() error { return nil }
		if logToFile {
			if _, closeLog, err = logger.InitFile(cfg.ConfigDir, logOpts); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(exitError)
			}
		} else {
			logger.Init(logOpts)
		}

		a, err := newApp(ctx, cfg)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			closeLog()
			os.Exit(exitError)
		}

		exitCode := runRoute(ctx, a, route, os.Stdout, args, fn)
		a.Close()
		closeLog()
		if exitCode != 0 {
			os.Exit(exitCode)
		}
	}
}

// runRoute evaluates the route's guard once, then runs fn if it proceeds
func runRoute(ctx context.Context, a *app, route string, w io.Writer, args []string, fn action) int {
	d := a.router.Navigate(route)
	switch d.Outcome {
	case guard.RedirectedLogin:
		fmt.Fprintf(w, "Not logged in or session expired. Redirected to %s: run 'storefront login'.\n", d.To)
		return exitError
	case guard.RedirectedHome:
		fmt.Fprintf(w, "%s is not available for your role. Redirected to %s.\n", route, d.To)
		return exitRedirectHome
	}
	return fn(ctx, a, w, args)
}

// fail reports err and returns the matching exit code
func (a *app) fail(w io.Writer, err error) int {
	if errors.Is(err, client.ErrUnauthorized) {
		route, _ := a.nav.Last()
		fmt.Fprintf(w, "Error: %v\nSession cleared. Redirected to %s: run 'storefront login'.\n", err, route)
		return exitError
	}
	fmt.Fprintf(w, "Error: %v\n", err)
	return exitError
}
