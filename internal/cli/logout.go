package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newLogoutCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "logout",
		Short: "Sign out and remove the stored credential",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogout()
		},
	}
}

func runLogout() error {
	if _, ok := sessionStore.Identity(); !ok {
		fmt.Println("Not logged in.")
		return nil
	}

	if err := sessionStore.Logout(); err != nil {
		return fmt.Errorf("clearing credential: %w", err)
	}

	fmt.Println("✓ Logged out. Credential removed.")
	return nil
}
