package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"

	"github.com/minsu-cho/sajubook/internal/client/models"
)

// AllUsers lists every account (admin endpoint).
func (c *Client) AllUsers(ctx context.Context) ([]models.User, error) {
	var res []models.User
	if err := c.do(ctx, http.MethodGet, "/admin/users", nil, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// ChangeUserRole assigns a new role to a user (admin endpoint).
func (c *Client) ChangeUserRole(ctx context.Context, userID int64, newRole models.Role) (*models.User, error) {
	q := url.Values{}
	q.Set("newRole", string(newRole))

	var res models.User
	if err := c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%d/role", userID), q, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// DeactivateUser disables an account (admin endpoint).
func (c *Client) DeactivateUser(ctx context.Context, userID int64) error {
	return c.do(ctx, http.MethodPut, fmt.Sprintf("/admin/users/%d/deactivate", userID), nil, nil, nil)
}
