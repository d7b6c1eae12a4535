package api

import (
	"fmt"

	"github.com/WeddyNkatha265/rental-management/internal/house"
)

// ListHouses returns all houses.
func (c *Client) ListHouses() ([]*house.House, error) {
	var houses []*house.House
	if err := c.get("/houses/", nil, &houses); err != nil {
		return nil, err
	}
	return houses, nil
}

// ListHousesWithTenants returns all houses with server-derived
// occupancy and the current tenant's name.
func (c *Client) ListHousesWithTenants() ([]*house.House, error) {
	var houses []*house.House
	if err := c.get("/houses/with-tenants", nil, &houses); err != nil {
		return nil, err
	}
	return houses, nil
}

// GetHouse returns a single house.
func (c *Client) GetHouse(id int64) (*house.House, error) {
	var h house.House
	if err := c.get(fmt.Sprintf("/houses/%d", id), nil, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// CreateHouse adds a new rental unit.
func (c *Client) CreateHouse(form *house.Form) (*house.House, error) {
	var h house.House
	if err := c.post("/houses/", nil, form, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// UpdateHouse replaces a house's editable fields.
func (c *Client) UpdateHouse(id int64, form *house.Form) (*house.House, error) {
	var h house.House
	if err := c.put(fmt.Sprintf("/houses/%d", id), form, &h); err != nil {
		return nil, err
	}
	return &h, nil
}

// DeleteHouse removes a house. The server rejects the delete while a
// tenant occupies it.
func (c *Client) DeleteHouse(id int64) error {
	return c.doDelete(fmt.Sprintf("/houses/%d", id))
}
