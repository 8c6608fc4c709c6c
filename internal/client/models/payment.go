package models

// Payment is a charge tied to a reservation.
type Payment struct {
	ID            int64  `json:"id"`
	ReservationID int64  `json:"reservationId"`
	Amount        int    `json:"amount"`
	Method        string `json:"method,omitempty"`
	Status        string `json:"status"`
	TransactionID string `json:"transactionId,omitempty"`
	PaidAt        string `json:"paidAt,omitempty"`
	CreatedAt     string `json:"createdAt,omitempty"`
}

// PaymentRequest is the payload for initiating a payment.
type PaymentRequest struct {
	ReservationID int64  `json:"reservationId"`
	Amount        int    `json:"amount"`
	Method        string `json:"method"`
}

// MonthlyPaymentStat is one month's aggregated payment volume
// (admin statistics endpoint).
type MonthlyPaymentStat struct {
	Month  int   `json:"month"`
	Total  int64 `json:"total"`
	Count  int64 `json:"count"`
	Refund int64 `json:"refund,omitempty"`
}
