package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/minsu-cho/sajubook/internal/client/models"
)

// RequestCounselorRole applies for the COUNSELOR role on behalf of the
// caller.
func (c *Client) RequestCounselorRole(ctx context.Context) (*models.RoleRequest, error) {
	var res models.RoleRequest
	if err := c.do(ctx, http.MethodPost, "/roles/request", nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// PendingRoleRequests lists unresolved role applications (admin endpoint).
func (c *Client) PendingRoleRequests(ctx context.Context) ([]models.RoleRequest, error) {
	var res []models.RoleRequest
	if err := c.do(ctx, http.MethodGet, "/roles/requests", nil, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// ApproveRoleRequest grants a pending application (admin endpoint).
func (c *Client) ApproveRoleRequest(ctx context.Context, requestID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/roles/approve/%d", requestID), nil, nil, nil)
}

// RejectRoleRequest declines a pending application (admin endpoint).
func (c *Client) RejectRoleRequest(ctx context.Context, requestID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/roles/reject/%d", requestID), nil, nil, nil)
}
