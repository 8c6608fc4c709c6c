package api

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strconv"

	"github.com/minsu-cho/sajubook/internal/client/models"
)

// CreateReview posts a review for a completed reservation.
func (c *Client) CreateReview(ctx context.Context, req models.ReviewRequest) (*models.Review, error) {
	var res models.Review
	if err := c.do(ctx, http.MethodPost, "/reviews", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// MyReviews lists the caller's reviews.
func (c *Client) MyReviews(ctx context.Context) ([]models.Review, error) {
	var res []models.Review
	if err := c.do(ctx, http.MethodGet, "/reviews/my", nil, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// CounselorReviews returns one page of a counselor's reviews.
func (c *Client) CounselorReviews(ctx context.Context, counselorID int64, page, size int) (*models.ReviewPage, error) {
	q := url.Values{}
	q.Set("page", strconv.Itoa(page))
	q.Set("size", strconv.Itoa(size))

	var res models.ReviewPage
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/reviews/counselor/%d", counselorID), q, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// AllReviews lists every review (admin endpoint).
func (c *Client) AllReviews(ctx context.Context) ([]models.Review, error) {
	var res []models.Review
	if err := c.do(ctx, http.MethodGet, "/reviews", nil, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// DeleteReview removes one review (admin endpoint).
func (c *Client) DeleteReview(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/reviews/%d", id), nil, nil, nil)
}
