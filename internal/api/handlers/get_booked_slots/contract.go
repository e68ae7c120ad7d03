package get_booked_slots

import (
	"context"

	"github.com/travelops/TLO-LeadService/internal/service/bookings/models"
)

type BookingService interface {
	ListBookedSlots(ctx context.Context, fromKey, toKey string) (*models.BookedSlotsResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
