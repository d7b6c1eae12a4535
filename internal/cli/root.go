// Package cli defines the cobra command tree for rms.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/WeddyNkatha265/rental-management/internal/api"
	"github.com/WeddyNkatha265/rental-management/internal/logging"
	"github.com/WeddyNkatha265/rental-management/internal/session"
)

var (
	flagFormat  string
	flagServer  string
	flagVerbose bool
)

// sessionStore is the single process-wide session instance, created
// and initialized before any command runs.
var sessionStore *session.Store

// NewRootCmd creates the root cobra command with global flags.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "rms",
		Short:         "Manage rental houses, tenants and payments",
		Long:          "Administrative client for the rental-management API. Track houses, tenants and rent payments, and review occupancy and revenue from the dashboard.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			logging.Setup(flagVerbose)
			return initSession()
		},
	}

	root.PersistentFlags().StringVar(&flagFormat, "format", "text", "output format (text|json)")
	root.PersistentFlags().StringVar(&flagServer, "server", "", "server URL (default: from config or http://localhost:8000)")
	root.PersistentFlags().BoolVar(&flagVerbose, "verbose", false, "enable debug logging")

	root.AddCommand(
		newLoginCmd(),
		newLogoutCmd(),
		newStatusCmd(),
		newDashboardCmd(),
		newHousesCmd(),
		newTenantsCmd(),
		newPaymentsCmd(),
		newVersionCmd(),
	)

	return root
}

// initSession builds and initializes the session store exactly once
// per invocation. Expiry notifications print the re-login hint before
// the command's own error surfaces.
func initSession() error {
	sessionStore = session.NewStore()
	if err := sessionStore.Initialize(); err != nil {
		return err
	}
	sessionStore.Subscribe(func(event session.Event) {
		if event == session.EventExpired {
			fmt.Fprintln(os.Stderr, "Session expired. Run 'rms login' to sign in again.")
		}
	})
	return nil
}

// getServerURL returns the server URL from flag, env var, stored
// config, or the default.
func getServerURL() string {
	if flagServer != "" {
		return flagServer
	}
	if v := os.Getenv("RMS_SERVER_URL"); v != "" {
		return v
	}
	if u := sessionStore.ServerURL(); u != "" {
		return u
	}
	return "http://localhost:8000"
}

// newAPIClient creates an HTTP client wired to the session store: the
// store supplies the bearer token, and any 401 resets the session.
func newAPIClient() *api.Client {
	c := api.New(getServerURL(), sessionStore)
	c.OnUnauthorized(sessionStore.Invalidate)
	return c
}

// requireAuth gates a protected command on the session state.
func requireAuth() (string, error) {
	if sessionStore.Loading() {
		return "", fmt.Errorf("session not initialized")
	}
	name, ok := sessionStore.Identity()
	if !ok {
		return "", fmt.Errorf("not logged in. Run 'rms login' to authenticate")
	}
	return name, nil
}

// isJSON returns true if the --format flag is set to json.
func isJSON() bool {
	return flagFormat == "json"
}
