package models

// ReservationStatus values mirror the backend enumeration.
const (
	ReservationRequested = "REQUESTED"
	ReservationConfirmed = "CONFIRMED"
	ReservationCompleted = "COMPLETED"
	ReservationCancelled = "CANCELLED"
)

// Reservation is a booking of a counselor's service item.
// Timestamps are kept as wire strings; the client only displays them.
type Reservation struct {
	ID              int64  `json:"id"`
	UserID          int64  `json:"userId"`
	CounselorID     int64  `json:"counselorId"`
	ServiceItemID   int64  `json:"serviceItemId"`
	ReservationTime string `json:"reservationTime"`
	Status          string `json:"status"`
	Note            string `json:"note,omitempty"`
}

// ReservationRequest is the payload for creating a reservation.
type ReservationRequest struct {
	CounselorID     int64  `json:"counselorId"`
	ServiceItemID   int64  `json:"serviceItemId"`
	ReservationTime string `json:"reservationTime"`
	Note            string `json:"note,omitempty"`
}
