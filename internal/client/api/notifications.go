package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/minsu-cho/sajubook/internal/client/models"
)

// MyNotifications returns one page of the caller's notification feed.
func (c *Client) MyNotifications(ctx context.Context, page, size int) (*models.NotificationPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var res models.NotificationPage
	if err := c.do(ctx, http.MethodGet, "/notifications/my", q, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// MarkNotificationRead marks one notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodPatch, fmt.Sprintf("/notifications/%d/read", id), nil, nil, nil)
}

// MarkAllNotificationsRead marks the whole feed as read.
func (c *Client) MarkAllNotificationsRead(ctx context.Context) error {
	return c.do(ctx, http.MethodPatch, "/notifications/read-all", nil, nil, nil)
}

// UnreadNotificationCount returns the number of unread notifications.
func (c *Client) UnreadNotificationCount(ctx context.Context) (int64, error) {
	var count int64
	if err := c.do(ctx, http.MethodGet, "/notifications/unread-count", nil, nil, &count); err != nil {
		return 0, err
	}
	return count, nil
}
