package create_booking

import (
	"context"

	createBooking "github.com/travelops/TLO-LeadService/internal/usecase/create_booking"
)

type CreateBookingUseCase interface {
	Execute(ctx context.Context, req *createBooking.Request) (*createBooking.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics бизнес-счетчики формы бронирования (реализуется pkg/metrics)
type Metrics interface {
	IncBookingCreated()
	IncLeadCaptured(formType string)
	IncSlotConflict()
	IncStoreDegradation()
}
