package bookings

import (
	"context"
	"errors"
	"fmt"

	"github.com/travelops/TLO-LeadService/internal/domain"
	bookingRepo "github.com/travelops/TLO-LeadService/internal/infra/storage/booking"
	"github.com/travelops/TLO-LeadService/internal/service/bookings/models"
)

// Окно предзагрузки занятых слотов: модальное окно грузит максимум два
// соседних месяца за раз
const maxRangeDays = 62

// Service сервис для работы с заявками: админские операции и предзагрузка
// занятых слотов для календаря
type Service struct {
	bookingRepo BookingRepository
	logger      Logger
}

// NewService создает новый экземпляр сервиса бронирований
func NewService(bookingRepo BookingRepository, logger Logger) *Service {
	return &Service{
		bookingRepo: bookingRepo,
		logger:      logger,
	}
}

// GetByID получает заявку по ID
func (s *Service) GetByID(ctx context.Context, id int64) (*models.BookingResponse, error) {
	s.logger.Info("GetByID: fetching booking id=%d", id)

	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("GetByID: booking id=%d not found", id)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("GetByID: repository error for booking id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainBooking(booking), nil
}

// ListBookedSlots возвращает занятые слоты за период [from, to] одной выборкой.
// Период задается ключами дат YYYY-MM-DD и ограничен maxRangeDays.
func (s *Service) ListBookedSlots(ctx context.Context, fromKey, toKey string) (*models.BookedSlotsResponse, error) {
	from, err := domain.ParseDateKey(fromKey)
	if err != nil {
		return nil, fmt.Errorf("%w: from must be YYYY-MM-DD", ErrInvalidInput)
	}
	to, err := domain.ParseDateKey(toKey)
	if err != nil {
		return nil, fmt.Errorf("%w: to must be YYYY-MM-DD", ErrInvalidInput)
	}
	if to.Before(from) {
		return nil, fmt.Errorf("%w: to must not be before from", ErrInvalidInput)
	}
	if int(to.Sub(from).Hours()/24) > maxRangeDays {
		return nil, fmt.Errorf("%w: range must not exceed %d days", ErrInvalidInput, maxRangeDays)
	}

	byDate, err := s.bookingRepo.ListBookedSlotsRange(ctx, from, to)
	if err != nil {
		s.logger.Error("ListBookedSlots: repository error for %s..%s: %v", fromKey, toKey, err)
		return nil, fmt.Errorf("%w: ListBookedSlots - repository error: %v", ErrInternal, err)
	}

	slots := make(map[string][]string, len(byDate))
	for dateKey, keys := range byDate {
		out := make([]string, len(keys))
		for i, k := range keys {
			out[i] = k.String()
		}
		slots[dateKey] = out
	}

	s.logger.Info("ListBookedSlots: %s..%s, %d dates with reservations", fromKey, toKey, len(slots))

	return &models.BookedSlotsResponse{
		From:  fromKey,
		To:    toKey,
		Slots: slots,
	}, nil
}

// UpdateStatus переводит заявку в новый статус.
// Допустимые переходы проверяются доменной моделью; cancelled/completed
// освобождают слот через синхронизацию строки резервирования.
func (s *Service) UpdateStatus(ctx context.Context, req *models.UpdateStatusRequest) (*models.BookingResponse, error) {
	s.logger.Info("UpdateStatus: booking id=%d -> %s", req.ID, req.Status)

	if !domain.ValidBookingStatus(req.Status) {
		s.logger.Warn("UpdateStatus: unknown status %q for booking id=%d", req.Status, req.ID)
		return nil, fmt.Errorf("%w: unknown status %q", ErrInvalidInput, req.Status)
	}
	next := domain.BookingStatus(req.Status)

	booking, err := s.bookingRepo.GetByID(ctx, req.ID)
	if err != nil {
		if errors.Is(err, bookingRepo.ErrBookingNotFound) {
			s.logger.Warn("UpdateStatus: booking id=%d not found", req.ID)
			return nil, ErrBookingNotFound
		}
		s.logger.Error("UpdateStatus: repository error for booking id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	if !booking.CanTransitionTo(next) {
		s.logger.Warn("UpdateStatus: transition %s -> %s is not allowed for booking id=%d",
			booking.Status, next, req.ID)
		return nil, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, booking.Status, next)
	}

	if err := s.bookingRepo.UpdateStatus(ctx, req.ID, next, req.Reason); err != nil {
		s.logger.Error("UpdateStatus: failed to update booking id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	updated, err := s.bookingRepo.GetByID(ctx, req.ID)
	if err != nil {
		s.logger.Error("UpdateStatus: failed to reload booking id=%d: %v", req.ID, err)
		return nil, fmt.Errorf("%w: UpdateStatus - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateStatus: booking id=%d is now %s", req.ID, updated.Status)
	return models.FromDomainBooking(updated), nil
}
