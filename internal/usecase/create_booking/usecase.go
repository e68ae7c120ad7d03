package create_booking

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/travelops/TLO-LeadService/internal/domain"
	bookingRepo "github.com/travelops/TLO-LeadService/internal/infra/storage/booking"
	"github.com/travelops/TLO-LeadService/internal/integrations/mailrelay"
	"github.com/travelops/TLO-LeadService/pkg/ptr"
)

// UseCase use case создания заявки на консультацию.
// Запись в БД best-effort: падение хранилища не роняет заявку, если письма
// ушли. Письма критичны: без пары уведомлений заявка считается проваленной.
type UseCase struct {
	bookingRepo  BookingRepository
	leadRepo     LeadRepository
	mailClient   MailClient
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	bookingRepo BookingRepository,
	leadRepo LeadRepository,
	mailClient MailClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		bookingRepo:  bookingRepo,
		leadRepo:     leadRepo,
		mailClient:   mailClient,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет пайплайн создания заявки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: email=%s, date=%s, time=%s", req.Email, req.DateKey, req.SlotKey)

	// 1. Валидация всей формы разом
	now := uc.timeProvider.Now()
	date, vErr := validateRequest(req, now)
	if vErr != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", vErr)
		return nil, vErr
	}

	// 2. Запись заявки и резервирования слота в сериализуемой транзакции.
	// Конфликт слота фатален, остальные ошибки хранилища терпимы
	var created *domain.Booking
	err := uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		booking := &domain.Booking{
			Name:      strings.TrimSpace(req.Name),
			Email:     strings.TrimSpace(req.Email),
			Phone:     strings.TrimSpace(req.Phone),
			Company:   req.Company,
			SlotDate:  date,
			SlotTime:  req.SlotKey,
			Message:   req.Message,
			Status:    domain.StatusPending,
			SessionID: req.SessionID,
			Source:    req.Source,
		}

		result, err := uc.bookingRepo.Create(txCtx, booking)
		if err != nil {
			return fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
		}

		if err := uc.bookingRepo.CreateReservation(txCtx, result.ID, date, req.SlotKey); err != nil {
			if errors.Is(err, bookingRepo.ErrSlotTaken) {
				return ErrSlotNotAvailable
			}
			return fmt.Errorf("%w: failed to reserve slot: %v", ErrInternal, err)
		}

		created = result
		return nil
	})

	storeOK := err == nil
	if err != nil {
		// Проигранная гонка за слот прерывает пайплайн до отправки писем
		if errors.Is(err, ErrSlotNotAvailable) {
			uc.logger.Warn("CreateBooking: slot %s %s already taken", req.DateKey, req.SlotKey)
			return nil, ErrSlotNotAvailable
		}
		uc.logger.Error("CreateBooking: store write failed, continuing without persistence: %v", err)
	}

	// 3. Лид пишется best-effort вне транзакции
	uc.captureLead(ctx, req)

	// 4. Письма критичны: заявка без уведомлений бесполезна обеим сторонам
	slotLabel := domain.SlotLabel(req.SlotKey)
	mailResult, mailErr := uc.mailClient.SendBookingEmails(ctx, mailrelay.BookingNotification{
		Name:      strings.TrimSpace(req.Name),
		Email:     strings.TrimSpace(req.Email),
		Phone:     strings.TrimSpace(req.Phone),
		Company:   req.Company,
		DateKey:   req.DateKey,
		TimeLabel: slotLabel,
		Message:   ptr.Deref(req.Message),
	})

	if errors.Is(mailErr, mailrelay.ErrNotConfigured) {
		uc.logger.Error("CreateBooking: mail relay is not configured")
		return nil, ErrMailerNotConfigured
	}
	if !mailResult.Ok() {
		uc.logger.Error("CreateBooking: email dispatch incomplete (admin=%t, user=%t): %v",
			mailResult.AdminSent, mailResult.UserSent, mailErr)
		return nil, fmt.Errorf("%w: admin=%t, user=%t", ErrNotificationFailed, mailResult.AdminSent, mailResult.UserSent)
	}

	resp := &Response{
		Outcome:   OutcomeNotified,
		DateKey:   req.DateKey,
		SlotKey:   req.SlotKey,
		SlotLabel: slotLabel,
	}

	if storeOK {
		resp.BookingID = created.ID
		uc.logger.Info("CreateBooking: booking id=%d created and both parties notified", created.ID)
	} else {
		resp.Outcome = OutcomePartialFailure
		uc.logger.Warn("CreateBooking: emails sent but booking was not persisted, date=%s time=%s",
			req.DateKey, req.SlotKey)
	}

	return resp, nil
}

// captureLead записывает плоский лид для маркетинга. Ошибки только логируются
func (uc *UseCase) captureLead(ctx context.Context, req *Request) {
	lead := &domain.Lead{
		FormType:  domain.FormBooking,
		Name:      ptr.Ptr(strings.TrimSpace(req.Name)),
		Email:     strings.TrimSpace(req.Email),
		Phone:     ptr.Ptr(strings.TrimSpace(req.Phone)),
		Company:   req.Company,
		Message:   req.Message,
		SessionID: req.SessionID,
		Source:    req.Source,
	}

	if _, err := uc.leadRepo.Create(ctx, lead); err != nil {
		uc.logger.Error("CreateBooking: failed to capture lead: %v", err)
	}
}
