package subscribe_newsletter

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/travelops/TLO-LeadService/internal/domain"
	"github.com/travelops/TLO-LeadService/internal/integrations/mailrelay"
)

// UseCase use case подписки на рассылку: единственное поле формы — email
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

// Execute выполняет пайплайн подписки
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	email := strings.TrimSpace(req.Email)
	uc.logger.Info("SubscribeNewsletter: email=%s", email)

	// 1. Валидация
	if !domain.ValidEmail(email) {
		uc.logger.Warn("SubscribeNewsletter: invalid email %q", req.Email)
		return nil, ErrInvalidEmail
	}

	// 2. Лид пишется best-effort
	var leadID int64
	lead := &domain.Lead{
		FormType:  domain.FormNewsletter,
		Email:     email,
		SessionID: req.SessionID,
		Source:    req.Source,
	}
	if created, err := uc.leadRepo.Create(ctx, lead); err != nil {
		uc.logger.Error("SubscribeNewsletter: failed to capture lead: %v", err)
	} else {
		leadID = created.ID
	}

	// 3. Письма критичны
	result, err := uc.mailClient.SendNewsletterEmails(ctx, mailrelay.NewsletterNotification{Email: email})

	if errors.Is(err, mailrelay.ErrNotConfigured) {
		uc.logger.Error("SubscribeNewsletter: mail relay is not configured")
		return nil, ErrMailerNotConfigured
	}
	if !result.Ok() {
		uc.logger.Error("SubscribeNewsletter: email dispatch incomplete (admin=%t, user=%t): %v",
			result.AdminSent, result.UserSent, err)
		return nil, fmt.Errorf("%w: admin=%t, user=%t", ErrNotificationFailed, result.AdminSent, result.UserSent)
	}

	resp := &Response{LeadID: leadID, Outcome: OutcomeNotified}
	if leadID == 0 {
		resp.Outcome = OutcomePartialFailure
		uc.logger.Warn("SubscribeNewsletter: emails sent but lead was not persisted, email=%s", email)
	} else {
		uc.logger.Info("SubscribeNewsletter: lead id=%d captured and both parties notified", leadID)
	}

	return resp, nil
}
