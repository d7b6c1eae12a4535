package cli

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/shopspring/decimal"

	"github.com/WeddyNkatha265/rental-management/internal/house"
	"github.com/WeddyNkatha265/rental-management/internal/metrics"
	"github.com/WeddyNkatha265/rental-management/internal/payment"
	"github.com/WeddyNkatha265/rental-management/internal/tenant"
)

// printJSON marshals v as indented JSON and writes it to stdout.
func printJSON(v interface{}) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// formatMoney renders a KES amount with digit grouping, dropping the
// cents when they are zero.
func formatMoney(amount float64) string {
	return formatDecimal(decimal.NewFromFloat(amount))
}

// formatDecimal renders a decimal amount with digit grouping.
func formatDecimal(d decimal.Decimal) string {
	s := d.StringFixed(2)
	negative := strings.HasPrefix(s, "-")
	s = strings.TrimPrefix(s, "-")

	intPart, cents, _ := strings.Cut(s, ".")
	out := groupDigits(intPart)
	if cents != "00" {
		out += "." + cents
	}
	if negative {
		out = "-" + out
	}
	return out
}

// groupDigits inserts thousands separators into a digit string.
func groupDigits(s string) string {
	if len(s) <= 3 {
		return s
	}

	var parts []string
	for len(s) > 3 {
		parts = append([]string{s[len(s)-3:]}, parts...)
		s = s[:len(s)-3]
	}
	parts = append([]string{s}, parts...)

	return strings.Join(parts, ",")
}

// truncate shortens a string to maxLen, adding "..." if truncated.
func truncate(s string, maxLen int) string {
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// printHouseTable prints houses as a formatted table with an
// occupancy summary.
func printHouseTable(houses []*house.House) error {
	if len(houses) == 0 {
		fmt.Println("No houses found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tTYPE\tRENT\tFLOOR\tSTATUS\tTENANT"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t----\t----\t----\t-----\t------\t------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	occupied := 0
	for _, h := range houses {
		status := "vacant"
		tenantName := "-"
		if h.IsOccupied {
			occupied++
			status = "occupied"
			if h.CurrentTenant != "" {
				tenantName = h.CurrentTenant
			}
		}
		floor := h.Floor
		if floor == "" {
			floor = "-"
		}

		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			h.ID, truncate(h.Name, 30), h.Type.Label(), formatMoney(h.RentAmount),
			floor, status, truncate(tenantName, 24)); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d units, %d occupied, %d vacant\n",
		len(houses), occupied, len(houses)-occupied)
	return nil
}

// printHouseSummary prints a single house in text format.
func printHouseSummary(h *house.House) {
	fmt.Printf("House #%d\n", h.ID)
	fmt.Printf("  Name:   %s\n", h.Name)
	fmt.Printf("  Type:   %s\n", h.Type.Label())
	fmt.Printf("  Rent:   KES %s\n", formatMoney(h.RentAmount))
	if h.Floor != "" {
		fmt.Printf("  Floor:  %s\n", h.Floor)
	}
	if h.Description != "" {
		fmt.Printf("  Notes:  %s\n", h.Description)
	}
	if h.IsOccupied {
		fmt.Printf("  Status: occupied (%s)\n", h.CurrentTenant)
	} else {
		fmt.Println("  Status: vacant")
	}
}

// printTenantTable prints tenants as a formatted table. The STATUS
// column reflects is_active only; per-tenant arrears are not computed
// in this layer.
func printTenantTable(tenants []*tenant.Tenant) error {
	if len(tenants) == 0 {
		fmt.Println("No tenants found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tNAME\tHOUSE\tPHONE\tMOVE-IN\tDEPOSIT\tSTATUS"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t----\t-----\t-----\t-------\t-------\t------"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, t := range tenants {
		houseName := "unassigned"
		if t.House != nil {
			houseName = t.House.Name
		}
		moveIn := t.MoveInDate
		if moveIn == "" {
			moveIn = "-"
		}
		status := "active"
		if !t.IsActive {
			status = "inactive"
		}

		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\n",
			t.ID, truncate(t.FullName, 28), truncate(houseName, 20), t.Phone,
			moveIn, formatMoney(t.DepositPaid), status); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	fmt.Printf("\nTotal: %d tenants\n", len(tenants))
	return nil
}

// printTenantDetail prints a tenant's full record, private fields
// included.
func printTenantDetail(t *tenant.Tenant) {
	fmt.Printf("Tenant #%d\n", t.ID)
	fmt.Printf("  Name:       %s\n", t.FullName)
	fmt.Printf("  Phone:      %s\n", t.Phone)
	if t.Email != "" {
		fmt.Printf("  Email:      %s\n", t.Email)
	}
	if t.IDNumber != "" {
		fmt.Printf("  ID number:  %s\n", t.IDNumber)
	}
	if t.Occupation != "" {
		fmt.Printf("  Occupation: %s\n", t.Occupation)
	}
	if t.House != nil {
		fmt.Printf("  House:      %s (KES %s/month)\n", t.House.Name, formatMoney(t.House.RentAmount))
	} else {
		fmt.Println("  House:      unassigned")
	}
	if t.MoveInDate != "" {
		fmt.Printf("  Move-in:    %s\n", t.MoveInDate)
	}
	if t.MoveOutDate != "" {
		fmt.Printf("  Move-out:   %s\n", t.MoveOutDate)
	}
	fmt.Printf("  Deposit:    KES %s\n", formatMoney(t.DepositPaid))
	if t.EmergencyContactName != "" || t.EmergencyContactPhone != "" {
		fmt.Printf("  Emergency:  %s %s\n", t.EmergencyContactName, t.EmergencyContactPhone)
	}
	if !t.IsActive {
		fmt.Println("  Status:     inactive")
	}
	if t.PrivateNotes != "" {
		fmt.Printf("  Notes:      %s\n", t.PrivateNotes)
	}
}

// printPaymentTable prints payments as a formatted table.
func printPaymentTable(payments []*payment.Payment) error {
	if len(payments) == 0 {
		fmt.Println("No payments found.")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	if _, err := fmt.Fprintln(w, "ID\tTENANT\tHOUSE\tAMOUNT\tMONTH\tMETHOD\tREF\tDATE\tEMAIL"); err != nil {
		return fmt.Errorf("writing table header: %w", err)
	}
	if _, err := fmt.Fprintln(w, "--\t------\t-----\t------\t-----\t------\t---\t----\t-----"); err != nil {
		return fmt.Errorf("writing table separator: %w", err)
	}

	for _, p := range payments {
		tenantName := "-"
		if p.Tenant != nil {
			tenantName = p.Tenant.FullName
		}
		houseName := "-"
		if p.House != nil {
			houseName = p.House.Name
		}
		ref := p.ReferenceCode
		if ref == "" {
			ref = "-"
		}
		email := "-"
		if p.EmailSent {
			email = "✓"
		}

		if _, err := fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\t%s\t%s\t%s\t%s\n",
			p.ID, truncate(tenantName, 24), truncate(houseName, 20),
			formatMoney(p.AmountPaid), p.MonthPaidFor, p.Method.Label(),
			ref, p.PaymentDate, email); err != nil {
			return fmt.Errorf("writing table row: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flushing table: %w", err)
	}

	return nil
}

// printDashboard renders the dashboard summary with client-derived
// collection and performance figures.
func printDashboard(stats *payment.DashboardStats) {
	current := metrics.MonthOptions(time.Now())[0]
	fmt.Printf("Estate Overview, %s\n\n", current.Label)

	fmt.Printf("Units:        %d total, %d occupied, %d vacant (%.1f%% occupancy)\n",
		stats.TotalUnits, stats.OccupiedUnits, stats.VacantUnits, stats.OccupancyRate)
	fmt.Printf("Expected:     KES %s\n", formatMoney(stats.TotalExpectedRent))
	fmt.Printf("Received:     KES %s\n", formatMoney(stats.TotalReceivedRent))
	fmt.Printf("Outstanding:  KES %s (%d tenants overdue)\n",
		formatMoney(stats.OutstandingRent), stats.OverdueTenants)

	collected := metrics.CollectionPercent(stats.TotalReceivedRent, stats.TotalExpectedRent)
	fmt.Printf("Collection:   %s %d%%\n", gaugeBar(collected, 30), collected)

	fmt.Println("\nRevenue trend:")
	maxAmount := 0.0
	for _, m := range stats.MonthlyRevenue {
		if m.Amount > maxAmount {
			maxAmount = m.Amount
		}
	}
	for _, m := range stats.MonthlyRevenue {
		width := 0
		if maxAmount > 0 {
			width = int(m.Amount / maxAmount * 24)
		}
		fmt.Printf("  %-4s %-24s KES %s\n", m.Month, strings.Repeat("▇", width), formatMoney(m.Amount))
	}

	fmt.Println("\nRecent payments:")
	if len(stats.RecentPayments) == 0 {
		fmt.Println("  No payments recorded yet.")
	}
	for _, p := range stats.RecentPayments {
		fmt.Printf("  %s  %-24s %-20s %-8s +%s\n",
			p.Date, truncate(p.TenantName, 24), truncate(p.HouseName, 20),
			p.Method, formatMoney(p.Amount))
	}

	fmt.Println("\nHouse performance:")
	if len(stats.TopHouses) == 0 {
		fmt.Println("  No data yet.")
	}
	for _, h := range stats.TopHouses {
		pct := metrics.PerformancePercent(h.Received, h.Expected)
		tier := metrics.PerformanceTier(pct)
		fmt.Printf("  %-24s %s %3d%% (%s)  KES %s / %s\n",
			truncate(h.Name, 24), gaugeBar(pct, 16), pct, tier,
			formatMoney(h.Received), formatMoney(h.Expected))
	}
}

// gaugeBar renders a fixed-width progress bar. The displayed percent
// may exceed 100 on overpayment; the bar itself fills at most the
// full width.
func gaugeBar(pct, width int) string {
	filled := pct * width / 100
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	return strings.Repeat("█", filled) + strings.Repeat("░", width-filled)
}
