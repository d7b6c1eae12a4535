package cli

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/spf13/cobra"

	"github.com/WeddyNkatha265/rental-management/internal/api"
)

func newStatusCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "status",
		Short: "Check connection and session status",
		Long:  "Shows the configured server, the signed-in admin, and whether the stored credential is still accepted.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runStatus()
		},
	}
}

func runStatus() error {
	fmt.Printf("Server:  %s\n", getServerURL())

	name, ok := sessionStore.Identity()
	if !ok {
		fmt.Println("Session: not logged in")
		fmt.Println("\nRun 'rms login' to authenticate.")
		return nil
	}
	fmt.Printf("Admin:   %s\n", name)

	if expiry, ok := tokenExpiry(sessionStore.Token()); ok {
		fmt.Printf("Expires: %s\n", expiry.Local().Format("2006-01-02 15:04"))
	}

	admin, err := newAPIClient().Me()
	switch {
	case err == nil:
		fmt.Printf("Status:  ✓ connected and authenticated (%s)\n", admin.Username)
	case api.IsUnauthorized(err):
		fmt.Println("Status:  ✗ credential rejected")
		fmt.Println("\nRun 'rms login' to re-authenticate.")
	default:
		fmt.Printf("Status:  ✗ cannot reach server (%v)\n", err)
	}

	return nil
}

// tokenExpiry reads the exp claim from the stored token without
// verifying the signature. Display only: session validity is always
// the server's call, never a local expiry check.
func tokenExpiry(token string) (time.Time, bool) {
	claims := jwt.MapClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return time.Time{}, false
	}
	expiry, err := claims.GetExpirationTime()
	if err != nil || expiry == nil {
		return time.Time{}, false
	}
	return expiry.Time, true
}
