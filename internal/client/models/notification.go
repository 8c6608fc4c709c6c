package models

// Notification is one entry in the user's notification feed.
type Notification struct {
	ID        int64  `json:"id"`
	Type      string `json:"type"`
	Message   string `json:"message"`
	Read      bool   `json:"isRead"`
	CreatedAt string `json:"createdAt,omitempty"`
}

// NotificationPage is one page of the notification feed.
type NotificationPage struct {
	Content       []Notification `json:"content"`
	TotalElements int64          `json:"totalElements"`
	TotalPages    int            `json:"totalPages"`
	Number        int            `json:"number"`
}
