package bookings

import (
	"context"
	"time"

	"github.com/travelops/TLO-LeadService/internal/domain"
	"github.com/travelops/TLO-LeadService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	GetByID(ctx context.Context, id int64) (*domain.Booking, error)
	ListBookedSlotsRange(ctx context.Context, from, to time.Time) (map[string][]types.TimeString, error)
	UpdateStatus(ctx context.Context, id int64, status domain.BookingStatus, reason *string) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
