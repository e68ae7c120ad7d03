package models

import (
	"time"

	"github.com/travelops/TLO-LeadService/internal/domain"
)

// BookingResponse полное представление заявки для админских ручек
type BookingResponse struct {
	ID      int64   `json:"id"`
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Phone   string  `json:"phone"`
	Company *string `json:"company,omitempty"`

	Date      string  `json:"date"` // YYYY-MM-DD
	Time      string  `json:"time"` // ключ слота HH:MM
	TimeLabel string  `json:"timeLabel"`
	Message   *string `json:"message,omitempty"`

	Status string `json:"status"`

	SessionID *string `json:"sessionId,omitempty"`
	Source    *string `json:"source,omitempty"`

	CancellationReason *string    `json:"cancellationReason,omitempty"`
	CancelledAt        *time.Time `json:"cancelledAt,omitempty"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// FromDomainBooking конвертирует доменную модель в ответ API
func FromDomainBooking(b *domain.Booking) *BookingResponse {
	return &BookingResponse{
		ID:                 b.ID,
		Name:               b.Name,
		Email:              b.Email,
		Phone:              b.Phone,
		Company:            b.Company,
		Date:               b.SlotDateKey(),
		Time:               b.SlotTime.String(),
		TimeLabel:          domain.SlotLabel(b.SlotTime),
		Message:            b.Message,
		Status:             string(b.Status),
		SessionID:          b.SessionID,
		Source:             b.Source,
		CancellationReason: b.CancellationReason,
		CancelledAt:        b.CancelledAt,
		CreatedAt:          b.CreatedAt,
		UpdatedAt:          b.UpdatedAt,
	}
}

// BookedSlotsResponse карта занятых слотов по датам для предзагрузки месяца
type BookedSlotsResponse struct {
	From  string              `json:"from"`
	To    string              `json:"to"`
	Slots map[string][]string `json:"slots"`
}

// UpdateStatusRequest запрос на смену статуса заявки
type UpdateStatusRequest struct {
	ID     int64
	Status string
	Reason *string
}
