package models

// RoleRequest is a pending or resolved application for the COUNSELOR role.
type RoleRequest struct {
	RequestID     int64  `json:"requestId"`
	UserID        int64  `json:"userId"`
	UserName      string `json:"userName,omitempty"`
	UserEmail     string `json:"userEmail,omitempty"`
	RequestedRole string `json:"requestedRole"`
	Status        string `json:"status"`
	RequestedAt   string `json:"requestedAt,omitempty"`
	UpdatedAt     string `json:"updatedAt,omitempty"`
}
