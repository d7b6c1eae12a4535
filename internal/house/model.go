// Package house provides the rental unit domain model.
package house

import (
	"fmt"
	"time"
)

// Type categorizes a rental unit.
type Type string

const (
	Bedsitter  Type = "bedsitter"
	SingleRoom Type = "single_room"
)

// ValidTypes is the set of allowed house types.
var ValidTypes = []Type{Bedsitter, SingleRoom}

// IsValid checks if a house type is recognized.
func (t Type) IsValid() bool {
	for _, v := range ValidTypes {
		if t == v {
			return true
		}
	}
	return false
}

// Label returns a human-readable label for the house type.
func (t Type) Label() string {
	switch t {
	case Bedsitter:
		return "Bedsitter"
	case SingleRoom:
		return "Single Room"
	default:
		return string(t)
	}
}

// House represents a rental unit as reported by the server.
// Occupancy fields are server-derived; the client never writes them.
type House struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Type        Type      `json:"house_type"`
	RentAmount  float64   `json:"rent_amount"`
	Floor       string    `json:"floor,omitempty"`
	Description string    `json:"description,omitempty"`
	IsOccupied  bool      `json:"is_occupied"`
	IsActive    bool      `json:"is_active"`
	CreatedAt   time.Time `json:"created_at"`

	// CurrentTenant is only populated by the with-tenants listing.
	CurrentTenant string `json:"current_tenant,omitempty"`
}

// Form carries user input for creating or updating a house.
type Form struct {
	Name        string  `json:"name"`
	Type        Type    `json:"house_type"`
	RentAmount  float64 `json:"rent_amount"`
	Floor       string  `json:"floor,omitempty"`
	Description string  `json:"description,omitempty"`
}

// Validate checks required fields before any request is issued.
func (f *Form) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("house name is required")
	}
	if f.Type == "" {
		return fmt.Errorf("house type is required")
	}
	if !f.Type.IsValid() {
		return fmt.Errorf("invalid house type %q (expected bedsitter or single_room)", f.Type)
	}
	if f.RentAmount <= 0 {
		return fmt.Errorf("rent amount is required and must be greater than zero")
	}
	return nil
}
