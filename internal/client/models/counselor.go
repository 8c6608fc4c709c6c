package models

// Counselor is a summary entry in the counselor listing.
type Counselor struct {
	ID            int64   `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email,omitempty"`
	Phone         string  `json:"phone,omitempty"`
	AverageRating float64 `json:"averageRating,omitempty"`
	ReviewCount   int     `json:"reviewCount,omitempty"`
}

// CounselorProfile is the public profile page of a counselor,
// including aggregated review data.
type CounselorProfile struct {
	ID            int64    `json:"id"`
	CounselorID   int64    `json:"counselorId"`
	CounselorName string   `json:"counselorName"`
	Bio           string   `json:"bio,omitempty"`
	Experience    string   `json:"experience,omitempty"`
	Tags          []string `json:"tags,omitempty"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	CreatedAt     string   `json:"createdAt,omitempty"`
	AverageRating float64  `json:"averageRating,omitempty"`
	ReviewCount   int      `json:"reviewCount,omitempty"`
	Reviews       []Review `json:"reviews,omitempty"`
}

// ProfileRequest is the payload for registering or updating the caller's
// counselor profile. Tags are sent as a single comma-separated string,
// matching the backend storage format.
type ProfileRequest struct {
	Bio        string `json:"bio,omitempty"`
	Experience string `json:"experience,omitempty"`
	Tags       string `json:"tags,omitempty"`
	ImageURL   string `json:"imageUrl,omitempty"`
}

// DashboardEntry is one scheduled slot in a counselor's dashboard.
type DashboardEntry struct {
	ReservationID   int64  `json:"reservationId"`
	UserName        string `json:"userName"`
	ServiceItemID   int64  `json:"serviceItemId"`
	ReservationTime string `json:"reservationTime"`
	Status          string `json:"status"`
}
