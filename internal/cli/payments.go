package cli

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/WeddyNkatha265/rental-management/internal/api"
	"github.com/WeddyNkatha265/rental-management/internal/metrics"
	"github.com/WeddyNkatha265/rental-management/internal/payment"
)

func newPaymentsCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "payments",
		Short: "Record and review rent payments",
	}
	cmd.AddCommand(
		newPaymentsListCmd(),
		newPaymentsRecordCmd(),
		newPaymentsRemoveCmd(),
		newPaymentsRemindCmd(),
	)
	return cmd
}

func newPaymentsListCmd() *cobra.Command {
	var filter api.PaymentFilter

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List payments",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaymentsList(filter)
		},
	}

	cmd.Flags().StringVar(&filter.Month, "month", "", "filter by billing month (YYYY-MM)")
	cmd.Flags().Int64Var(&filter.TenantID, "tenant", 0, "filter by tenant ID")
	cmd.Flags().Int64Var(&filter.HouseID, "house", 0, "filter by house ID")

	return cmd
}

func runPaymentsList(filter api.PaymentFilter) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	if filter.Month != "" && !payment.ValidMonth(filter.Month) {
		return fmt.Errorf("invalid month %q (expected YYYY-MM)", filter.Month)
	}

	payments, err := newAPIClient().ListPayments(filter)
	if err != nil {
		return fmt.Errorf("loading payments: %w", err)
	}

	if isJSON() {
		return printJSON(payments)
	}

	if err := printPaymentTable(payments); err != nil {
		return err
	}
	if len(payments) > 0 {
		fmt.Printf("\nTotal: KES %s across %d payments\n",
			formatDecimal(metrics.TotalPaid(payments)), len(payments))
	}
	return nil
}

func newPaymentsRecordCmd() *cobra.Command {
	form := &payment.Form{SendEmail: true}
	var method string
	var noEmail bool

	cmd := &cobra.Command{
		Use:   "record",
		Short: "Record a rent payment",
		Long:  "Records a rent payment. When --house or --amount are omitted they default to the tenant's assigned house and that house's monthly rent.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			form.Method = payment.Method(method)
			form.SendEmail = !noEmail
			return runPaymentsRecord(form)
		},
	}

	cmd.Flags().Int64Var(&form.TenantID, "tenant", 0, "tenant ID (required)")
	cmd.Flags().Int64Var(&form.HouseID, "house", 0, "house ID (default: tenant's house)")
	cmd.Flags().Float64Var(&form.AmountPaid, "amount", 0, "amount paid in KES (default: the house's rent)")
	cmd.Flags().StringVar(&form.PaymentDate, "date", "", "payment date (YYYY-MM-DD, default: today)")
	cmd.Flags().StringVar(&form.MonthPaidFor, "month", "", "billing month (YYYY-MM, default: current month)")
	cmd.Flags().StringVar(&method, "method", string(payment.Mpesa), "payment method (mpesa|cash|bank)")
	cmd.Flags().StringVar(&form.ReferenceCode, "ref", "", "M-Pesa code or bank reference")
	cmd.Flags().StringVar(&form.Notes, "notes", "", "free-form notes")
	cmd.Flags().BoolVar(&noEmail, "no-email", false, "skip the email receipt")

	return cmd
}

func runPaymentsRecord(form *payment.Form) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	// The tenant selection is checked before any request; the
	// remaining fields are validated after autofill resolves them.
	if form.TenantID <= 0 {
		return fmt.Errorf("tenant is required")
	}

	now := time.Now()
	if form.PaymentDate == "" {
		form.PaymentDate = now.Format("2006-01-02")
	}
	if form.MonthPaidFor == "" {
		form.MonthPaidFor = metrics.CurrentMonth(now)
	}

	c := newAPIClient()
	if err := autofillFromTenant(c, form); err != nil {
		return err
	}

	if err := form.Validate(); err != nil {
		return err
	}

	p, err := c.CreatePayment(form)
	if err != nil {
		return fmt.Errorf("recording payment: %w", err)
	}

	if isJSON() {
		return printJSON(p)
	}

	receipt := ""
	if form.SendEmail {
		receipt = " Email receipt queued."
	}
	fmt.Printf("✓ Payment #%d recorded: KES %s for %s.%s\n",
		p.ID, formatMoney(p.AmountPaid), p.MonthPaidFor, receipt)
	return nil
}

// autofillFromTenant fills the house and default amount from the
// tenant's assignment. Explicitly provided values are never
// overwritten, so repeating the same selection leaves edits alone.
func autofillFromTenant(c *api.Client, form *payment.Form) error {
	if form.HouseID != 0 && form.AmountPaid != 0 {
		return nil
	}

	t, err := c.GetTenant(form.TenantID)
	if err != nil {
		return fmt.Errorf("loading tenant: %w", err)
	}
	if t.HouseID == nil {
		return nil // unassigned tenant, the caller must pass both
	}

	if form.HouseID == 0 {
		form.HouseID = *t.HouseID
	}
	if form.AmountPaid == 0 {
		h, err := c.GetHouse(form.HouseID)
		if err != nil {
			return fmt.Errorf("loading house: %w", err)
		}
		form.AmountPaid = h.RentAmount
	}
	return nil
}

func newPaymentsRemoveCmd() *cobra.Command {
	var yes bool

	cmd := &cobra.Command{
		Use:   "remove <id>",
		Short: "Delete a payment record",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			id, err := parseID(args[0], "payment")
			if err != nil {
				return err
			}
			return runPaymentsRemove(id, yes)
		},
	}

	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func runPaymentsRemove(id int64, yes bool) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	if !yes && !confirm("Delete this payment record?") {
		fmt.Println("Aborted.")
		return nil
	}

	if err := newAPIClient().DeletePayment(id); err != nil {
		return err
	}

	if isJSON() {
		return printJSON(map[string]interface{}{"id": id, "deleted": true})
	}
	fmt.Printf("✓ Payment #%d deleted.\n", id)
	return nil
}

func newPaymentsRemindCmd() *cobra.Command {
	var month string
	var yes bool

	cmd := &cobra.Command{
		Use:   "remind",
		Short: "Email payment reminders to unpaid tenants",
		Long:  "Asks the server to email a reminder to every active tenant without a payment for the month.",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPaymentsRemind(month, yes)
		},
	}

	cmd.Flags().StringVar(&month, "month", "", "billing month (YYYY-MM, default: current month)")
	cmd.Flags().BoolVarP(&yes, "yes", "y", false, "skip the confirmation prompt")

	return cmd
}

func runPaymentsRemind(month string, yes bool) error {
	if _, err := requireAuth(); err != nil {
		return err
	}

	if month == "" {
		month = metrics.CurrentMonth(time.Now())
	}
	if !payment.ValidMonth(month) {
		return fmt.Errorf("invalid month %q (expected YYYY-MM)", month)
	}

	if !yes && !confirm(fmt.Sprintf("Send payment reminders to all unpaid tenants for %s?", month)) {
		fmt.Println("Aborted.")
		return nil
	}

	sent, err := newAPIClient().SendReminders(month)
	if err != nil {
		return fmt.Errorf("sending reminders: %w", err)
	}

	if isJSON() {
		return printJSON(map[string]interface{}{"month": month, "sent": sent})
	}
	fmt.Printf("✓ Reminders sent to %d tenant(s) for %s.\n", sent, month)
	return nil
}
