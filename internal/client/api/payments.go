package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/minsu-cho/sajubook/internal/client/models"
)

// RequestPayment initiates a payment for a reservation.
func (c *Client) RequestPayment(ctx context.Context, req models.PaymentRequest) (*models.Payment, error) {
	var res models.Payment
	if err := c.do(ctx, http.MethodPost, "/payments/request", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// MyPayments lists the caller's payments.
func (c *Client) MyPayments(ctx context.Context) ([]models.Payment, error) {
	var res []models.Payment
	if err := c.do(ctx, http.MethodGet, "/payments/my", nil, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// RefundPayment requests a refund for one payment.
func (c *Client) RefundPayment(ctx context.Context, id int64) (*models.Payment, error) {
	var res models.Payment
	if err := c.do(ctx, http.MethodPost, fmt.Sprintf("/payments/%d/refund", id), nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// AllPayments lists payments across all users, optionally filtered by
// status (admin endpoint).
func (c *Client) AllPayments(ctx context.Context, status string) ([]models.Payment, error) {
	q := url.Values{}
	if status != "" {
		q.Set("status", status)
	}
	var res []models.Payment
	if err := c.do(ctx, http.MethodGet, "/admin/payments", q, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// MonthlyPaymentStats returns aggregated payment volume per month for the
// given year (admin endpoint).
func (c *Client) MonthlyPaymentStats(ctx context.Context, year int) ([]models.MonthlyPaymentStat, error) {
	q := url.Values{}
	if year > 0 {
		q.Set("year", strconv.Itoa(year))
	}
	var res []models.MonthlyPaymentStat
	if err := c.do(ctx, http.MethodGet, "/admin/payments/stats/monthly", q, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}
