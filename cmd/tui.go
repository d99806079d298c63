// ABOUTME: Interactive terminal UI command
// ABOUTME: Runs the bubbletea app over the same session, router and client as the CLI

package cmd

import (
	"context"
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/shopdemo/storefront/internal/guard"
	"github.com/shopdemo/storefront/internal/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Browse the shop in an interactive terminal UI",
	Long: `Start the interactive terminal UI.

Log output goes to debug.log in the config directory while the UI is running.`,
	Args: cobra.NoArgs,
	Run:  start(guard.HomeRoute, runTUI, true),
}

func init() {
	rootCmd.AddCommand(tuiCmd)

	// Bare invocation opens the UI in a terminal and prints help otherwise
	rootCmd.Args = cobra.NoArgs
	rootCmd.Run = func(cmd *cobra.Command, args []string) {
		if !isatty.IsTerminal(os.Stdout.Fd()) || jsonOutput {
			cmd.Help()
			return
		}
		tuiCmd.Run(cmd, args)
	}
}

func runTUI(ctx context.Context, a *app, w io.Writer, _ []string) int {
	err := tui.Run(ctx, tui.Deps{
		Client:    a.client,
		Session:   a.session,
		Router:    a.router,
		Navigator: a.nav,
	})
	if err != nil {
		return a.fail(w, err)
	}
	return exitOK
}
