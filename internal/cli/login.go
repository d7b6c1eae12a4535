package cli

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

func newLoginCmd() *cobra.Command {
	var server, username, password string

	cmd := &cobra.Command{
		Use:   "login",
		Short: "Sign in and store the session credential",
		Long:  "Authenticates against the rental-management server and stores the bearer token and admin name for later commands.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLogin(server, username, password)
		},
	}

	cmd.Flags().StringVar(&server, "server", "", "server URL to save alongside the credential")
	cmd.Flags().StringVarP(&username, "username", "u", "", "admin username (prompted if omitted)")
	cmd.Flags().StringVarP(&password, "password", "p", "", "admin password (prompted if omitted)")

	return cmd
}

func runLogin(serverFlag, username, password string) error {
	// Already-authenticated logins short-circuit instead of stacking
	// a second session.
	if name, ok := sessionStore.Identity(); ok {
		fmt.Printf("Already logged in as %s. Run 'rms logout' first to switch accounts.\n", name)
		return nil
	}

	if serverFlag != "" {
		if err := sessionStore.SetServerURL(serverFlag); err != nil {
			return fmt.Errorf("saving server URL: %w", err)
		}
	}

	reader := bufio.NewReader(os.Stdin)
	var err error
	if username == "" {
		fmt.Print("Username: ")
		if username, err = readLine(reader); err != nil {
			return err
		}
	}
	if password == "" {
		fmt.Print("Password: ")
		if password, err = readLine(reader); err != nil {
			return err
		}
	}

	// Required-field check happens before any request goes out.
	if username == "" || password == "" {
		return fmt.Errorf("username and password are required")
	}

	name, err := sessionStore.Login(newAPIClient(), username, password)
	if err != nil {
		return fmt.Errorf("login failed: %w", err)
	}

	fmt.Printf("✓ Welcome back, %s!\n", name)
	return nil
}

func readLine(reader *bufio.Reader) (string, error) {
	line, err := reader.ReadString('\n')
	if err != nil {
		return "", fmt.Errorf("reading input: %w", err)
	}
	return strings.TrimSpace(line), nil
}
