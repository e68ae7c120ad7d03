package subscribe_newsletter

import (
	"context"

	subscribeNewsletter "github.com/travelops/TLO-LeadService/internal/usecase/subscribe_newsletter"
)

type SubscribeNewsletterUseCase interface {
	Execute(ctx context.Context, req *subscribeNewsletter.Request) (*subscribeNewsletter.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// Metrics бизнес-счетчики формы подписки (реализуется pkg/metrics)
type Metrics interface {
	IncLeadCaptured(formType string)
	IncStoreDegradation()
}
