package update_booking_status

// UpdateStatusRequest HTTP request model
type UpdateStatusRequest struct {
	Status string  `json:"status"` // pending | confirmed | completed | cancelled
	Reason *string `json:"reason,omitempty"`
}
