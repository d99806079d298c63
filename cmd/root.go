// ABOUTME: Root command for the storefront CLI
// ABOUTME: Handles global flags and configuration

package cmd

import (
	"github.com/spf13/cobra"

	"github.com/shopdemo/storefront/internal/config"
)

var (
	apiURL     string
	jsonOutput bool
	configDir  string
	noPersist  bool
)

// rootCmd is the base command
var rootCmd = &cobra.Command{
	Use:   "storefront",
	Short: "Terminal client for the storefront shop",
	Long: `storefront is a command-line and terminal UI client for the storefront e-commerce backend.

Buyers browse products, manage their cart and check out. Sellers manage their catalog.
The session is kept between runs; commands that need a buyer or seller session
redirect to login when it is missing or expired.

Exit codes:
  0 - Success
  1 - Redirected home (the command needs a different role)
  2 - Error, or redirected to login

Environment Variables:
  STOREFRONT_API_BASE         Backend API base URL (default: http://localhost:8080/api)
  STOREFRONT_API_HOST         Backend host, used as https://<host> when no base is set
  STOREFRONT_TIMEOUT          Per-request timeout (default: 30s)
  STOREFRONT_CONFIG_DIR       Session and log directory (default: ~/.config/storefront)
  STOREFRONT_SESSION_BACKEND  file or redis (default: file)
  STOREFRONT_REDIS_ADDR       Redis address for the redis backend (default: localhost:6379)
  STOREFRONT_ALL_PROXY        ssh+socks5://user@jumpbox:22?private-key=/path/to/key
  STOREFRONT_LOG_LEVEL        debug, info, warn, error (default: info)
  STOREFRONT_LOG_FORMAT       text or json (default: text)`,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api-url", "", "Backend API URL (overrides STOREFRONT_API_BASE)")
	rootCmd.PersistentFlags().BoolVar(&jsonOutput, "json", false, "Output JSON instead of human-readable text")
	rootCmd.PersistentFlags().StringVar(&configDir, "config-dir", "", "Directory for the saved session (overrides STOREFRONT_CONFIG_DIR)")
	rootCmd.PersistentFlags().BoolVar(&noPersist, "no-persist", false, "Keep the session in memory for this run only")
}

// GetAPIURL returns the API URL from flag, env, or default (in priority order)
func GetAPIURL(cfg *config.Config) string {
	if apiURL != "" {
		return apiURL
	}
	return cfg.APIBaseURL()
}

// IsJSONOutput returns whether JSON output is requested
func IsJSONOutput() bool {
	return jsonOutput
}
