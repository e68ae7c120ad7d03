package create_booking

import (
	"context"
	"time"

	"github.com/travelops/TLO-LeadService/internal/domain"
	"github.com/travelops/TLO-LeadService/internal/integrations/mailrelay"
	"github.com/travelops/TLO-LeadService/pkg/types"
)

// BookingRepository интерфейс репозитория бронирований
type BookingRepository interface {
	Create(ctx context.Context, booking *domain.Booking) (*domain.Booking, error)
	CreateReservation(ctx context.Context, bookingID int64, slotDate time.Time, slotTime types.TimeString) error
}

// LeadRepository интерфейс репозитория лидов
type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error)
}

// MailClient интерфейс клиента почтового релея
type MailClient interface {
	SendBookingEmails(ctx context.Context, n mailrelay.BookingNotification) (mailrelay.Result, error)
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
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
