package api

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/WeddyNkatha265/rental-management/internal/payment"
)

// PaymentFilter narrows ListPayments. Zero values mean no filter.
type PaymentFilter struct {
	Month    string // YYYY-MM
	TenantID int64
	HouseID  int64
}

// Dashboard returns the server-computed dashboard summary.
func (c *Client) Dashboard() (*payment.DashboardStats, error) {
	var stats payment.DashboardStats
	if err := c.get("/payments/dashboard", nil, &stats); err != nil {
		return nil, err
	}
	return &stats, nil
}

// ListPayments returns payments, optionally filtered.
func (c *Client) ListPayments(filter PaymentFilter) ([]*payment.Payment, error) {
	query := url.Values{}
	if filter.Month != "" {
		query.Set("month", filter.Month)
	}
	if filter.TenantID > 0 {
		query.Set("tenant_id", strconv.FormatInt(filter.TenantID, 10))
	}
	if filter.HouseID > 0 {
		query.Set("house_id", strconv.FormatInt(filter.HouseID, 10))
	}

	var payments []*payment.Payment
	if err := c.get("/payments/", query, &payments); err != nil {
		return nil, err
	}
	return payments, nil
}

// GetPayment returns a single payment.
func (c *Client) GetPayment(id int64) (*payment.Payment, error) {
	var p payment.Payment
	if err := c.get(fmt.Sprintf("/payments/%d", id), nil, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// CreatePayment records a rent payment. The server sends an email
// receipt when the form asks for one.
func (c *Client) CreatePayment(form *payment.Form) (*payment.Payment, error) {
	var p payment.Payment
	if err := c.post("/payments/", nil, form, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// UpdatePayment corrects a payment's details. Exposed for API
// completeness; the CLI deliberately offers no edit path.
func (c *Client) UpdatePayment(id int64, form *payment.Form) (*payment.Payment, error) {
	var p payment.Payment
	if err := c.put(fmt.Sprintf("/payments/%d", id), form, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

// DeletePayment removes a payment record.
func (c *Client) DeletePayment(id int64) error {
	return c.doDelete(fmt.Sprintf("/payments/%d", id))
}

// reminderResponse is the envelope returned by POST /payments/send-reminders.
type reminderResponse struct {
	Message string `json:"message"`
	Sent    int    `json:"sent"`
}

// SendReminders emails every unpaid tenant for the given month and
// returns how many reminders went out.
func (c *Client) SendReminders(month string) (int, error) {
	query := url.Values{"month": {month}}
	var resp reminderResponse
	if err := c.post("/payments/send-reminders", query, nil, &resp); err != nil {
		return 0, err
	}
	return resp.Sent, nil
}
