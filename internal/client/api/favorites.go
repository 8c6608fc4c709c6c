package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/minsu-cho/sajubook/internal/client/models"
)

// AddFavorite bookmarks a counselor.
func (c *Client) AddFavorite(ctx context.Context, counselorID int64) error {
	return c.do(ctx, http.MethodPost, fmt.Sprintf("/favorites/%d", counselorID), nil, nil, nil)
}

// RemoveFavorite removes a counselor bookmark.
func (c *Client) RemoveFavorite(ctx context.Context, counselorID int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/favorites/%d", counselorID), nil, nil, nil)
}

// MyFavorites lists the caller's bookmarked counselors.
func (c *Client) MyFavorites(ctx context.Context) ([]models.Counselor, error) {
	var res []models.Counselor
	if err := c.do(ctx, http.MethodGet, "/favorites", nil, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}
