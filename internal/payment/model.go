// Package payment provides the rent payment domain model and the
// dashboard summary types.
package payment

import (
	"fmt"
	"regexp"
	"time"

	"github.com/WeddyNkatha265/rental-management/internal/house"
	"github.com/WeddyNkatha265/rental-management/internal/tenant"
)

// Method is how a rent payment was made.
type Method string

const (
	Mpesa Method = "mpesa"
	Cash  Method = "cash"
	Bank  Method = "bank"
)

// ValidMethods is the set of allowed payment methods.
var ValidMethods = []Method{Mpesa, Cash, Bank}

// IsValid checks if a payment method is recognized.
func (m Method) IsValid() bool {
	for _, v := range ValidMethods {
		if m == v {
			return true
		}
	}
	return false
}

// Label returns a human-readable label for the payment method.
func (m Method) Label() string {
	switch m {
	case Mpesa:
		return "M-Pesa"
	case Cash:
		return "Cash"
	case Bank:
		return "Bank Transfer"
	default:
		return string(m)
	}
}

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ValidMonth reports whether s is a YYYY-MM billing period token.
func ValidMonth(s string) bool {
	return monthPattern.MatchString(s)
}

// Payment represents a recorded rent payment. Payments are immutable
// from this layer except for delete.
type Payment struct {
	ID            int64     `json:"id"`
	TenantID      int64     `json:"tenant_id"`
	HouseID       int64     `json:"house_id"`
	AmountPaid    float64   `json:"amount_paid"`
	PaymentDate   string    `json:"payment_date"` // YYYY-MM-DD
	MonthPaidFor  string    `json:"month_paid_for"`
	Method        Method    `json:"payment_method"`
	ReferenceCode string    `json:"reference_code,omitempty"`
	Notes         string    `json:"notes,omitempty"`
	EmailSent     bool      `json:"email_sent"`
	CreatedAt     time.Time `json:"created_at"`

	Tenant *tenant.Tenant `json:"tenant,omitempty"`
	House  *house.House   `json:"house,omitempty"`
}

// Form carries user input for recording a payment.
type Form struct {
	TenantID      int64   `json:"tenant_id"`
	HouseID       int64   `json:"house_id"`
	AmountPaid    float64 `json:"amount_paid"`
	PaymentDate   string  `json:"payment_date"`
	MonthPaidFor  string  `json:"month_paid_for"`
	Method        Method  `json:"payment_method"`
	ReferenceCode string  `json:"reference_code,omitempty"`
	Notes         string  `json:"notes,omitempty"`
	SendEmail     bool    `json:"send_email"`
}

// Validate checks required fields before any request is issued.
func (f *Form) Validate() error {
	if f.TenantID <= 0 {
		return fmt.Errorf("tenant is required")
	}
	if f.AmountPaid <= 0 {
		return fmt.Errorf("amount is required and must be greater than zero")
	}
	if f.MonthPaidFor == "" {
		return fmt.Errorf("month is required")
	}
	if !ValidMonth(f.MonthPaidFor) {
		return fmt.Errorf("invalid month %q (expected YYYY-MM)", f.MonthPaidFor)
	}
	if f.Method == "" {
		return fmt.Errorf("payment method is required")
	}
	if !f.Method.IsValid() {
		return fmt.Errorf("invalid payment method %q (expected mpesa, cash or bank)", f.Method)
	}
	return nil
}

// MonthlyRevenue is one point in the dashboard revenue series.
type MonthlyRevenue struct {
	Month  string  `json:"month"`
	Amount float64 `json:"amount"`
}

// RecentPayment is a dashboard line item for a recent payment.
type RecentPayment struct {
	ID         int64   `json:"id"`
	TenantName string  `json:"tenant_name"`
	HouseName  string  `json:"house_name"`
	Amount     float64 `json:"amount"`
	Method     string  `json:"method"`
	Date       string  `json:"date"`
}

// TopHouse is a per-house revenue entry for the current month.
type TopHouse struct {
	Name     string  `json:"name"`
	Received float64 `json:"received"`
	Expected float64 `json:"expected"`
}

// DashboardStats is the aggregate summary computed by the server.
type DashboardStats struct {
	TotalUnits        int              `json:"total_units"`
	OccupiedUnits     int              `json:"occupied_units"`
	VacantUnits       int              `json:"vacant_units"`
	TotalExpectedRent float64          `json:"total_expected_rent"`
	TotalReceivedRent float64          `json:"total_received_rent"`
	OutstandingRent   float64          `json:"outstanding_rent"`
	OverdueTenants    int              `json:"overdue_tenants"`
	OccupancyRate     float64          `json:"occupancy_rate"`
	MonthlyRevenue    []MonthlyRevenue `json:"monthly_revenue"`
	RecentPayments    []RecentPayment  `json:"recent_payments"`
	TopHouses         []TopHouse       `json:"top_houses"`
}
