package models

// Review is a user's rating of a completed reservation.
type Review struct {
	ID            int64  `json:"id"`
	UserID        int64  `json:"userId"`
	ReservationID int64  `json:"reservationId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
}

// ReviewRequest is the payload for creating a review.
type ReviewRequest struct {
	ReservationID int64  `json:"reservationId"`
	Rating        int    `json:"rating"`
	Comment       string `json:"comment,omitempty"`
}

// ReviewPage is one page of counselor reviews.
type ReviewPage struct {
	Content       []Review `json:"content"`
	TotalElements int64    `json:"totalElements"`
	TotalPages    int      `json:"totalPages"`
	Number        int      `json:"number"`
}
