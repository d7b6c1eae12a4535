package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/WeddyNkatha265/rental-management/internal/tenant"
)

func newTenantsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "tenants",
		Short: "Manage tenants",
	}
	cmd.AddCommand(
		newTenantsListCmd(),
		newTenantsShowCmd(),
		newTenantsAddCmd(),
		newTenantsRemoveCmd(),
	)
	return cmd
}

func newTenantsListCmd() *cobra.Command {
	var search string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List tenants",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runTenantsList(search)
		},
	}

	cmd.Flags().StringVar(&search, "search", "", "filter by name, phone or email")

	return cmd
}

func runTenantsList(search string) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	tenants, err := newAPIClient().ListTenants()
	if err != nil {
		return fmt.Errorf("loading tenants: %w", err)
	}

	if search != "" {
		tenants = filterTenants(tenants, search)
	}

	if isJSON() {
		return printJSON(tenants)
	}
	return printTenantTable(tenants)
}

// filterTenants matches the search term against name, phone and
// email, case-insensitively.
func filterTenants(tenants []*tenant.Tenant, search string) []*tenant.Tenant {
	term := strings.ToLower(search)
	matched := tenants[:0]
	for _, t := range tenants {
		if strings.Contains(strings.ToLower(t.FullName), term) ||
			strings.Contains(t.Phone, search) ||
			strings.Contains(strings.ToLower(t.Email), term) {
			matched = append(matched, t)
		}
	}
	return matched
}

func newTenantsShowCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Show a tenant's full record and payment history",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "tenant")
			if err != nil {
				return err
			}
			return runTenantsShow(id)
		},
	}
}

func runTenantsShow(id int64) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	c := newAPIClient()
	t, err := c.GetTenant(id)
	if err != nil {
		return fmt.Errorf("loading tenant: %w", err)
	}
	history, err := c.TenantPayments(id)
	if err != nil {
		return fmt.Errorf("loading payment history: %w", err)
	}

	if isJSON() {
		return printJSON(map[string]interface{}{"tenant": t, "payments": history})
	}

	printTenantDetail(t)
	fmt.Println("\nPayment history:")
	return printPaymentTable(history)
}

func newTenantsAddCmd() *cobra.Command {
	form := &tenant.Form{}
	var houseID int64

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Register a tenant",
		Long:  "Registers a tenant, optionally assigning a house. Occupied houses trigger a warning here, but the server has the final say on the assignment.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("house") {
				form.HouseID = &houseID
			}
			return runTenantsAdd(form)
		},
	}

	cmd.Flags().StringVar(&form.FullName, "name", "", "full name")
	cmd.Flags().StringVar(&form.Phone, "phone", "", "phone number")
	cmd.Flags().StringVar(&form.IDNumber, "id-number", "", "national ID number")
	cmd.Flags().StringVar(&form.Email, "email", "", "email address")
	cmd.Flags().Int64Var(&houseID, "house", 0, "house ID to assign (see 'rms houses list --vacant')")
	cmd.Flags().StringVar(&form.MoveInDate, "move-in", "", "move-in date (YYYY-MM-DD)")
	cmd.Flags().StringVar(&form.Occupation, "occupation", "", "occupation")
	cmd.Flags().StringVar(&form.EmergencyContactName, "emergency-name", "", "emergency contact name")
	cmd.Flags().StringVar(&form.EmergencyContactPhone, "emergency-phone", "", "emergency contact phone")
	cmd.Flags().Float64Var(&form.DepositPaid, "deposit", 0, "deposit paid in KES")
	cmd.Flags().StringVar(&form.PrivateNotes, "notes", "", "private notes (admin only)")

	return cmd
}

func runTenantsAdd(form *tenant.Form) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	// Reject incomplete forms before anything hits the network.
	if err := form.Validate(); err != nil {
		return err
	}

	c := newAPIClient()

	// Advisory only: the server enforces one active tenant per house
	// and may still reject a stale choice.
	if form.HouseID != nil {
		if houses, err := c.ListHousesWithTenants(); err == nil {
			for _, h := range houses {
				if h.ID == *form.HouseID && h.IsOccupied {
					fmt.Printf("Warning: %q is currently occupied by %s.\n", h.Name, h.CurrentTenant)
				}
			}
		}
	}

	t, err := c.CreateTenant(form)
	if err != nil {
		return fmt.Errorf("adding tenant: %w", err)
	}

	if isJSON() {
		return printJSON(t)
	}
	fmt.Printf("✓ Tenant %q added (#%d).\n", t.FullName, t.ID)
	return nil
}

func newTenantsRemoveCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Remove a tenant (marks them inactive)",
		Long:  "Soft-deletes a tenant: the record is marked inactive and the house freed, nothing is purged.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "tenant")
			if err != nil {
				return err
			}
			return runTenantsRemove(id, yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func runTenantsRemove(id int64, yes bool) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	c := newAPIClient()
	t, err := c.GetTenant(id)
	if err != nil {
		return fmt.Errorf("loading tenant: %w", err)
	}

	if !yes && !confirm(fmt.Sprintf("Remove tenant %q? They will be marked as inactive.", t.FullName)) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := c.RemoveTenant(id); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]interface{}{"id": id, "removed": true})
	}
	fmt.Printf("✓ Tenant %q removed.\n", t.FullName)
	return nil
}
