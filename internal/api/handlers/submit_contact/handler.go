package submit_contact

import (
	"errors"
	"net/http"

	"github.com/travelops/TLO-LeadService/internal/api/handlers"
	"github.com/travelops/TLO-LeadService/internal/domain"
	submitContact "github.com/travelops/TLO-LeadService/internal/usecase/submit_contact"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgValidationFailed   = "please correct the highlighted fields"
	msgMessageReceived    = "thanks for reaching out, we will get back to you shortly"
	msgMailerUnconfigured = "email service is not configured, set MAILRELAY_ACCESS_KEY"
)

type Handler struct {
	useCase SubmitContactUseCase
	metrics Metrics
	logger  Logger
}

func NewHandler(useCase SubmitContactUseCase, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle POST /api/v1/contact
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req ContactRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /contact - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var vErr *submitContact.ValidationErrors
		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("POST /contact - Validation failed: %d field(s)", len(vErr.Fields))
			fields := make(map[string]string, len(vErr.Fields))
			for _, f := range vErr.Fields {
				fields[f.Field] = f.Message
			}
			handlers.RespondValidationError(w, msgValidationFailed, fields)

		case errors.Is(err, submitContact.ErrMailerNotConfigured):
			h.logger.Error("POST /contact - Mail relay is not configured, set MAILRELAY_ACCESS_KEY")
			handlers.RespondError(w, http.StatusInternalServerError, msgMailerUnconfigured)

		case errors.Is(err, submitContact.ErrNotificationFailed):
			h.logger.Error("POST /contact - Notification dispatch failed: %v", err)
			handlers.RespondServiceUnavailable(w, "we could not process your message right now, please try again")

		default:
			h.logger.Error("POST /contact - Failed: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	if result.Outcome == submitContact.OutcomePartialFailure {
		h.metrics.IncStoreDegradation()
	} else {
		h.metrics.IncLeadCaptured(string(domain.FormContact))
	}

	h.logger.Info("POST /contact - Message processed: outcome=%s", result.Outcome)
	handlers.RespondJSON(w, http.StatusOK, &ContactResponse{
		Success: true,
		Message: msgMessageReceived,
	})
}
