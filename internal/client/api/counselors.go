package api

import (
	"bytes"
	"context"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/url"

	"github.com/minsu-cho/sajubook/internal/client/models"
)

// Counselors lists all counselors.
func (c *Client) Counselors(ctx context.Context) ([]models.Counselor, error) {
	var res []models.Counselor
	if err := c.do(ctx, http.MethodGet, "/counselors", nil, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// CounselorProfile fetches one counselor's public profile.
func (c *Client) CounselorProfile(ctx context.Context, counselorID int64) (*models.CounselorProfile, error) {
	var res models.CounselorProfile
	if err := c.do(ctx, http.MethodGet, fmt.Sprintf("/counselors/profile/%d", counselorID), nil, nil, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// UpdateProfile registers or updates the caller's counselor profile.
func (c *Client) UpdateProfile(ctx context.Context, req models.ProfileRequest) (*models.CounselorProfile, error) {
	var res models.CounselorProfile
	if err := c.do(ctx, http.MethodPut, "/counselors/profile", nil, req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// SearchCounselorsByTag finds counselor profiles carrying the given tag.
func (c *Client) SearchCounselorsByTag(ctx context.Context, tag string) ([]models.CounselorProfile, error) {
	q := url.Values{}
	q.Set("tag", tag)

	var res []models.CounselorProfile
	if err := c.do(ctx, http.MethodGet, "/counselors/profile/search", q, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// UploadProfileImage sends a profile image as multipart form data and
// returns the updated profile.
func (c *Client) UploadProfileImage(ctx context.Context, filename string, data []byte) (*models.CounselorProfile, error) {
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)

	part, err := w.CreateFormFile("file", filename)
	if err != nil {
		return nil, err
	}
	if _, err := part.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/counselors/profile/image", &buf)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", w.FormDataContentType())

	var res models.CounselorProfile
	if err := c.exchange(req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}

// TodayDashboard returns the caller's schedule for today (counselor
// endpoint).
func (c *Client) TodayDashboard(ctx context.Context) ([]models.DashboardEntry, error) {
	var res []models.DashboardEntry
	if err := c.do(ctx, http.MethodGet, "/counselors/dashboard/today", nil, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}

// MonthlyDashboard returns the caller's schedule for the given month
// (counselor endpoint). Zero year or month means the backend's current
// period.
func (c *Client) MonthlyDashboard(ctx context.Context, year, month int) ([]models.DashboardEntry, error) {
	q := url.Values{}
	if year > 0 {
		q.Set("year", fmt.Sprint(year))
	}
	if month > 0 {
		q.Set("month", fmt.Sprint(month))
	}

	var res []models.DashboardEntry
	if err := c.do(ctx, http.MethodGet, "/counselors/dashboard", q, nil, &res); err != nil {
		return nil, err
	}
	return res, nil
}
