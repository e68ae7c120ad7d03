package create_booking

import (
	createBooking "github.com/travelops/TLO-LeadService/internal/usecase/create_booking"
	"github.com/travelops/TLO-LeadService/pkg/types"
)

// CreateBookingRequest HTTP request model
type CreateBookingRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Company *string `json:"company,omitempty"`

	PreferredDate string  `json:"preferredDate"` // "2026-09-15"
	PreferredTime string  `json:"preferredTime"` // "10:30"
	Message       *string `json:"message,omitempty"`

	SessionID *string `json:"sessionId,omitempty"`
	Source    *string `json:"source,omitempty"`
}

// CreateBookingResponse HTTP response model
type CreateBookingResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	BookingID *int64 `json:"bookingId,omitempty"`
	Note      string `json:"note,omitempty"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *CreateBookingRequest) ToUseCaseRequest() *createBooking.Request {
	return &createBooking.Request{
		Name:      r.Name,
		Email:     r.Email,
		Phone:     r.Phone,
		Company:   r.Company,
		DateKey:   r.PreferredDate,
		SlotKey:   types.TimeString(r.PreferredTime),
		Message:   r.Message,
		SessionID: r.SessionID,
		Source:    r.Source,
	}
}
