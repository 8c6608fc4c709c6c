package api

import (
	"context"
	"fmt"
	"net/http"

	"github.com/minsu-cho/sajubook/internal/client/models"
)

// CreateReservation books a counselor's service item.
func (c *Client) CreateReservation(ctx context.Context, req models.ReservationRequest) (*models.Reservation, error) {
	var res models.Reservation
	if err := c.do(ctx, http.MethodPost, "/reservations", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// MyReservations lists the caller's reservations.
func (c *Client) MyReservations(ctx context.Context) ([]models.Reservation, error) {
	var res []models.Reservation
	if err := c.do(ctx, http.MethodGet, "/reservations/my", nil, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// CancelReservation cancels one reservation by id.
func (c *Client) CancelReservation(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, fmt.Sprintf("/reservations/%d", id), nil, nil, nil)
}
