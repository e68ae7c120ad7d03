package domain

import (
	"time"

	"github.com/travelops/TLO-LeadService/pkg/types"
)

// BookingStatus represents the status of a consultation booking
type BookingStatus string

const (
	StatusPending   BookingStatus = "pending"
	StatusConfirmed BookingStatus = "confirmed"
	StatusCompleted BookingStatus = "completed"
	StatusCancelled BookingStatus = "cancelled"
)

// ValidBookingStatus проверяет, что строка является известным статусом
func ValidBookingStatus(s string) bool {
	switch BookingStatus(s) {
	case StatusPending, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	default:
		return false
	}
}

// Booking represents a consultation booking request captured from the site.
// Created as "pending" on submit; transitions only via the admin endpoint;
// rows are never deleted (soft state only).
type Booking struct {
	ID       int64
	Name     string
	Email    string
	Phone    string
	Company  *string
	SlotDate time.Time        // дата консультации (без времени)
	SlotTime types.TimeString // слот из каталога, например "10:30"
	Message  *string

	Status BookingStatus

	// Атрибуция лида
	SessionID *string
	Source    *string

	CancellationReason *string
	CancelledAt        *time.Time

	CreatedAt time.Time
	UpdatedAt time.Time
}

// HoldsSlot returns true while the booking keeps its slot reserved.
// Cancelled and completed bookings free the slot for new requests.
func (b *Booking) HoldsSlot() bool {
	return b.Status == StatusPending || b.Status == StatusConfirmed
}

// CanTransitionTo проверяет допустимость перехода статуса.
// pending -> confirmed/cancelled, confirmed -> completed/cancelled.
// Терминальные статусы (completed, cancelled) не меняются.
func (b *Booking) CanTransitionTo(next BookingStatus) bool {
	switch b.Status {
	case StatusPending:
		return next == StatusConfirmed || next == StatusCancelled
	case StatusConfirmed:
		return next == StatusCompleted || next == StatusCancelled
	default:
		return false
	}
}

// SlotDateKey возвращает нормализованный ключ даты бронирования
func (b *Booking) SlotDateKey() string {
	return FormatDateKey(b.SlotDate)
}
