package submit_contact

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/travelops/TLO-LeadService/internal/domain"
	"github.com/travelops/TLO-LeadService/internal/integrations/mailrelay"
	"github.com/travelops/TLO-LeadService/pkg/ptr"
)

// Тема по умолчанию, когда форма не передала свою
const defaultSubject = "Website contact form"

// UseCase use case контактной формы: запись лида best-effort,
// пара писем критична
type UseCase struct {
	leadRepo   LeadRepository
	mailClient MailClient
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(leadRepo LeadRepository, mailClient MailClient, logger Logger) *UseCase {
	return &UseCase{
		leadRepo:   leadRepo,
		mailClient: mailClient,
		logger:     logger,
	}
}

// Execute выполняет пайплайн контактной формы
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("SubmitContact: email=%s", req.Email)

	// 1. Валидация всей формы разом
	if vErr := validateRequest(req); vErr != nil {
		uc.logger.Warn("SubmitContact: validation failed: %v", vErr)
		return nil, vErr
	}

	// 2. Лид пишется best-effort
	var leadID int64
	lead := &domain.Lead{
		FormType:  domain.FormContact,
		Name:      ptr.Ptr(strings.TrimSpace(req.Name)),
		Email:     strings.TrimSpace(req.Email),
		Message:   ptr.Ptr(strings.TrimSpace(req.Message)),
		SessionID: req.SessionID,
		Source:    req.Source,
	}
	if created, err := uc.leadRepo.Create(ctx, lead); err != nil {
		uc.logger.Error("SubmitContact: failed to capture lead: %v", err)
	} else {
		leadID = created.ID
	}

	// 3. Письма критичны
	subject := strings.TrimSpace(ptr.Deref(req.Subject))
	if subject == "" {
		subject = defaultSubject
	}

	result, err := uc.mailClient.SendContactEmails(ctx, mailrelay.ContactNotification{
		Name:    strings.TrimSpace(req.Name),
		Email:   strings.TrimSpace(req.Email),
		Subject: subject,
		Message: strings.TrimSpace(req.Message),
	})

	if errors.Is(err, mailrelay.ErrNotConfigured) {
		uc.logger.Error("SubmitContact: mail relay is not configured")
		return nil, ErrMailerNotConfigured
	}
	if !result.Ok() {
		uc.logger.Error("SubmitContact: email dispatch incomplete (admin=%t, user=%t): %v",
			result.AdminSent, result.UserSent, err)
		return nil, fmt.Errorf("%w: admin=%t, user=%t", ErrNotificationFailed, result.AdminSent, result.UserSent)
	}

	resp := &Response{LeadID: leadID, Outcome: OutcomeNotified}
	if leadID == 0 {
		resp.Outcome = OutcomePartialFailure
		uc.logger.Warn("SubmitContact: emails sent but lead was not persisted, email=%s", req.Email)
	} else {
		uc.logger.Info("SubmitContact: lead id=%d captured and both parties notified", leadID)
	}

	return resp, nil
}
