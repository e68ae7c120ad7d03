package subscribe_newsletter

import (
	"errors"
	"net/http"

	"github.com/travelops/TLO-LeadService/internal/api/handlers"
	"github.com/travelops/TLO-LeadService/internal/domain"
	subscribeNewsletter "github.com/travelops/TLO-LeadService/internal/usecase/subscribe_newsletter"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidEmail       = "please enter a valid email address"
	msgSubscribed         = "you are subscribed, welcome aboard"
	msgMailerUnconfigured = "email service is not configured, set MAILRELAY_ACCESS_KEY"
)

type Handler struct {
	useCase SubscribeNewsletterUseCase
	metrics Metrics
	logger  Logger
}

func NewHandler(useCase SubscribeNewsletterUseCase, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle POST /api/v1/newsletter
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req SubscribeRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /newsletter - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		switch {
		case errors.Is(err, subscribeNewsletter.ErrInvalidEmail):
			h.logger.Warn("POST /newsletter - Invalid email")
			handlers.RespondBadRequest(w, msgInvalidEmail)

		case errors.Is(err, subscribeNewsletter.ErrMailerNotConfigured):
			h.logger.Error("POST /newsletter - Mail relay is not configured, set MAILRELAY_ACCESS_KEY")
			handlers.RespondError(w, http.StatusInternalServerError, msgMailerUnconfigured)

		case errors.Is(err, subscribeNewsletter.ErrNotificationFailed):
			h.logger.Error("POST /newsletter - Notification dispatch failed: %v", err)
			handlers.RespondServiceUnavailable(w, "we could not process your subscription right now, please try again")

		default:
			h.logger.Error("POST /newsletter - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.Outcome == subscribeNewsletter.OutcomePartialFailure {
		h.metrics.IncStoreDegradation()
	} else {
		h.metrics.IncLeadCaptured(string(domain.FormNewsletter))
	}

	h.logger.Info("POST /newsletter - Subscription processed: outcome=%s", result.Outcome)
	handlers.RespondJSON(w, http.StatusOK, &SubscribeResponse{
		Success: true,
		Message: msgSubscribed,
	})
}
