package get_available_slots

import (
	"context"

	"github.com/travelops/TLO-LeadService/internal/domain"
	"github.com/travelops/TLO-LeadService/pkg/types"
)

// UseCase use case для получения слотов консультаций на дату.
// Доступность слота складывается из трех источников: часовой отсечки для
// сегодняшней даты, реальных бронирований из БД и синтетической занятости.
type UseCase struct {
	bookingRepo  BookingRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(bookingRepo BookingRepository, logger Logger) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения слотов
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	date, err := validateRequest(req)
	if err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("GetAvailableSlots: date=%s", req.DateKey)

	// 2. Получаем текущее время
	now := uc.timeProvider.Now()

	// 3. Выходные и прошедшие даты не выбираются
	if !domain.IsSelectableDate(date, now) {
		uc.logger.Warn("GetAvailableSlots: date %s is not selectable", req.DateKey)
		return nil, ErrDateNotSelectable
	}

	// 4. Реальные бронирования из БД. При ошибке деградируем до
	// синтетической занятости: календарь важнее точности картинки
	booked := make(map[types.TimeString]bool)
	bookedKeys, err := uc.bookingRepo.ListBookedSlotKeys(ctx, date)
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to load booked slots for %s, degrading to synthetic only: %v",
			req.DateKey, err)
	} else {
		for _, key := range bookedKeys {
			booked[key] = true
		}
	}

	// 5. Синтетическая занятость поверх реальной
	synthetic := syntheticBusySlots(req.DateKey, domain.DaysFromToday(date, now))

	// 6. Собираем полный каталог с причинами недоступности.
	// Приоритет причин: past > booked
	catalog := domain.SlotCatalog()
	slots := make([]Slot, 0, len(catalog))
	availableCount := 0

	for _, cs := range catalog {
		slot := Slot{
			Key:       cs.Key,
			Label:     cs.Label,
			Available: true,
		}

		switch {
		case domain.IsPastSlot(date, cs.Key, now):
			slot.Available = false
			slot.Reason = ReasonPast
		case booked[cs.Key] || synthetic[cs.Key]:
			slot.Available = false
			slot.Reason = ReasonBooked
		}

		if slot.Available {
			availableCount++
		}
		slots = append(slots, slot)
	}

	uc.logger.Info("GetAvailableSlots: date=%s, available=%d of %d", req.DateKey, availableCount, len(slots))

	return &Response{
		DateKey: req.DateKey,
		Slots:   slots,
	}, nil
}
