package subscribe_newsletter

import (
	"context"

	"github.com/travelops/TLO-LeadService/internal/domain"
	"github.com/travelops/TLO-LeadService/internal/integrations/mailrelay"
)

// LeadRepository интерфейс репозитория лидов
type LeadRepository interface {
	Create(ctx context.Context, lead *domain.Lead) (*domain.Lead, error)
}

// MailClient интерфейс клиента почтового релея
type MailClient interface {
	SendNewsletterEmails(ctx context.Context, n mailrelay.NewsletterNotification) (mailrelay.Result, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
