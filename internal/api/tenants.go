package api

import (
	"fmt"

	"github.com/WeddyNkatha265/rental-management/internal/payment"
	"github.com/WeddyNkatha265/rental-management/internal/tenant"
)

// ListTenants returns all active tenants.
func (c *Client) ListTenants() ([]*tenant.Tenant, error) {
	var tenants []*tenant.Tenant
	if err := c.get("/tenants/", nil, &tenants); err != nil {
		return nil, err
	}
	return tenants, nil
}

// GetTenant returns a tenant's full record, private notes included.
func (c *Client) GetTenant(id int64) (*tenant.Tenant, error) {
	var t tenant.Tenant
	if err := c.get(fmt.Sprintf("/tenants/%d", id), nil, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// CreateTenant registers a new tenant, optionally assigned to a house.
func (c *Client) CreateTenant(form *tenant.Form) (*tenant.Tenant, error) {
	var t tenant.Tenant
	if err := c.post("/tenants/", nil, form, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// UpdateTenant replaces a tenant's editable fields.
func (c *Client) UpdateTenant(id int64, form *tenant.Form) (*tenant.Tenant, error) {
	var t tenant.Tenant
	if err := c.put(fmt.Sprintf("/tenants/%d", id), form, &t); err != nil {
		return nil, err
	}
	return &t, nil
}

// RemoveTenant soft-deletes a tenant: the server marks the record
// inactive and frees the house, it does not purge anything.
func (c *Client) RemoveTenant(id int64) error {
	return c.doDelete(fmt.Sprintf("/tenants/%d", id))
}

// TenantPayments returns a tenant's payment history.
func (c *Client) TenantPayments(id int64) ([]*payment.Payment, error) {
	var payments []*payment.Payment
	if err := c.get(fmt.Sprintf("/tenants/%d/payments", id), nil, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}
