package get_available_slots

import (
	"context"
	"time"

	"github.com/travelops/TLO-LeadService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	// ListBookedSlotKeys получает ключи слотов, удержанных активными заявками на дату
	ListBookedSlotKeys(ctx context.Context, date time.Time) ([]types.TimeString, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
