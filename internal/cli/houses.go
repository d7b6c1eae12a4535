package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/WeddyNkatha265/rental-management/internal/house"
)

func newHousesCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "houses",
		Short: "Manage rental units",
	}
	cmd.AddCommand(
		newHousesListCmd(),
		newHousesAddCmd(),
		newHousesEditCmd(),
		newHousesRemoveCmd(),
	)
	return cmd
}

func newHousesListCmd() *cobra.Command {
	var vacantOnly bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List rental units with occupancy",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runHousesList(vacantOnly)
		},
	}

	cmd.Flags().BoolVar(&vacantOnly, "vacant", false, "only show vacant units")

	return cmd
}

func runHousesList(vacantOnly bool) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	houses, err := newAPIClient().ListHousesWithTenants()
	if err != nil {
		return fmt.Errorf("loading houses: %w", err)
	}

	if vacantOnly {
		vacant := houses[:0]
		for _, h := range houses {
			if !h.IsOccupied {
				vacant = append(vacant, h)
			}
		}
		houses = vacant
	}

	if isJSON() {
		return printJSON(houses)
	}
	return printHouseTable(houses)
}

func newHousesAddCmd() *cobra.Command {
	form := &house.Form{}
	var houseType string

	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add a rental unit",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form.Type = house.Type(houseType)
			return runHousesAdd(form)
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "unit name, e.g. \"Bedsitter B1\"")
	cmd.Flags().StringVar(&houseType, "type", "", "unit type (bedsitter|single_room)")
	cmd.Flags().Float64Var(&form.RentAmount, "rent", 0, "monthly rent in KES")
	cmd.Flags().StringVar(&form.Floor, "floor", "", "floor, e.g. \"Ground\"")
	cmd.Flags().StringVar(&form.Description, "description", "", "free-form description")

	return cmd
}

func runHousesAdd(form *house.Form) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	// Reject incomplete forms before anything hits the network.
	if err := form.Validate(); err != nil {
		return err
	}

	h, err := newAPIClient().CreateHouse(form)
	if err != nil {
		return fmt.Errorf("creating house: %w", err)
	}

	if isJSON() {
		return printJSON(h)
	}

	fmt.Printf("✓ House %q created (#%d).\n", h.Name, h.ID)
	printHouseSummary(h)
	return nil
}

func newHousesEditCmd() *cobra.Command {
	var (
		name, houseType, floor, description string
		rent                                float64
	)

	cmd := &cobra.Command{
		Use:   "edit <id>",
		Short: "Edit a rental unit",
		Long:  "Updates a rental unit. Only the provided flags change; everything else keeps its current value.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "house")
			if err != nil {
				return err
			}

			if _, err := requireAuth(); err != nil {
				return err
			}

			c := newAPIClient()
			existing, err := c.GetHouse(id)
			if err != nil {
				return fmt.Errorf("loading house: %w", err)
			}

			form := &house.Form{
				Name:        existing.Name,
				Type:        existing.Type,
				RentAmount:  existing.RentAmount,
				Floor:       existing.Floor,
				Description: existing.Description,
			}
			if cmd.Flags().Changed("name") {
				form.Name = name
			}
			if cmd.Flags().Changed("type") {
				form.Type = house.Type(houseType)
			}
			if cmd.Flags().Changed("rent") {
				form.RentAmount = rent
			}
			if cmd.Flags().Changed("floor") {
				form.Floor = floor
			}
			if cmd.Flags().Changed("description") {
				form.Description = description
			}

			if err := form.Validate(); err != nil {
				return err
			}

			updated, err := c.UpdateHouse(id, form)
			if err != nil {
				return fmt.Errorf("updating house: %w", err)
			}

			if isJSON() {
				return printJSON(updated)
			}
			fmt.Printf("✓ House %q updated.\n", updated.Name)
			printHouseSummary(updated)
			return nil
		},
	}

	cmd.Flags().StringVar(&name, "name", "", "unit name")
	cmd.Flags().StringVar(&houseType, "type", "", "unit type (bedsitter|single_room)")
	cmd.Flags().Float64Var(&rent, "rent", 0, "monthly rent in KES")
	cmd.Flags().StringVar(&floor, "floor", "", "floor")
	cmd.Flags().StringVar(&description, "description", "", "free-form description")

	return cmd
}

func newHousesRemoveCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a rental unit",
		Long:  "Deletes a rental unit. The server refuses while a tenant occupies it.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "house")
			if err != nil {
				return err
			}
			return runHousesRemove(id, yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func runHousesRemove(id int64, yes bool) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	c := newAPIClient()
	h, err := c.GetHouse(id)
	if err != nil {
		return fmt.Errorf("loading house: %w", err)
	}

	if !yes && !confirm(fmt.Sprintf("Delete %q? This cannot be undone.", h.Name)) {
		fmt.Println("Aborted.")
		return nil
	}

	if err := c.DeleteHouse(id); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]interface{}{"id": id, "deleted": true})
	}
	fmt.Printf("✓ House %q deleted.\n", h.Name)
	return nil
}

// parseID parses a positional numeric ID argument.
func parseID(arg, noun string) (int64, error) {
	id, err := strconv.ParseInt(arg, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s ID: %s", noun, arg)
	}
	return id, nil
}
