// Package tenant provides the tenant domain model.
package tenant

import (
	"fmt"
	"time"

	"github.com/WeddyNkatha265/rental-management/internal/house"
)

// Tenant represents a renter as reported by the server. Removal is a
// soft delete: the record stays, IsActive flips to false.
type Tenant struct {
	ID                    int64     `json:"id"`
	FullName              string    `json:"full_name"`
	IDNumber              string    `json:"id_number,omitempty"`
	Phone                 string    `json:"phone"`
	Email                 string    `json:"email,omitempty"`
	HouseID               *int64    `json:"house_id"`
	MoveInDate            string    `json:"move_in_date,omitempty"` // YYYY-MM-DD
	MoveOutDate           string    `json:"move_out_date,omitempty"`
	EmergencyContactName  string    `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string    `json:"emergency_contact_phone,omitempty"`
	Occupation            string    `json:"occupation,omitempty"`
	PrivateNotes          string    `json:"private_notes,omitempty"`
	DepositPaid           float64   `json:"deposit_paid"`
	IsActive              bool      `json:"is_active"`
	CreatedAt             time.Time `json:"created_at"`

	House *house.House `json:"house,omitempty"`
}

// Form carries user input for creating or updating a tenant.
type Form struct {
	FullName              string  `json:"full_name"`
	IDNumber              string  `json:"id_number,omitempty"`
	Phone                 string  `json:"phone"`
	Email                 string  `json:"email,omitempty"`
	HouseID               *int64  `json:"house_id,omitempty"`
	MoveInDate            string  `json:"move_in_date,omitempty"`
	EmergencyContactName  string  `json:"emergency_contact_name,omitempty"`
	EmergencyContactPhone string  `json:"emergency_contact_phone,omitempty"`
	Occupation            string  `json:"occupation,omitempty"`
	PrivateNotes          string  `json:"private_notes,omitempty"`
	DepositPaid           float64 `json:"deposit_paid"`
}

// Validate checks required fields before any request is issued.
func (f *Form) Validate() error {
	if f.FullName == "" {
		return fmt.Errorf("tenant name is required")
	}
	if f.Phone == "" {
		return fmt.Errorf("tenant phone is required")
	}
	return nil
}
