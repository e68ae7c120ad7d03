package create_booking

import (
	"errors"
	"net/http"
	"strings"

	"github.com/travelops/TLO-LeadService/internal/api/handlers"
	"github.com/travelops/TLO-LeadService/internal/domain"
	createBooking "github.com/travelops/TLO-LeadService/internal/usecase/create_booking"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgNameEmailRequired  = "name and email are required"
	msgValidationFailed   = "please correct the highlighted fields"
	msgSlotNotAvailable   = "this time slot has just been taken, please pick another one"
	msgMailerUnconfigured = "email service is not configured, set MAILRELAY_ACCESS_KEY"
	msgBookingReceived    = "your consultation request has been received, check your email for confirmation"
	msgPartialNote        = "your request was received and confirmed by email; our team will follow up to finalize the details"
)

type Handler struct {
	useCase CreateBookingUseCase
	metrics Metrics
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, metrics Metrics, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		metrics: metrics,
		logger:  logger,
	}
}

// Handle POST /api/v1/bookings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	var req CreateBookingRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /bookings - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Граница API: без имени и email разговаривать не о чем
	if strings.TrimSpace(req.Name) == "" || strings.TrimSpace(req.Email) == "" {
		h.logger.Warn("POST /bookings - Missing name or email")
		handlers.RespondBadRequest(w, msgNameEmailRequired)
		return
	}

	result, err := h.useCase.Execute(r.Context(), req.ToUseCaseRequest())
	if err != nil {
		var vErr *createBooking.ValidationErrors
		switch {
		case errors.As(err, &vErr):
			h.logger.Warn("POST /bookings - Validation failed: %d field(s)", len(vErr.Fields))
			handlers.RespondValidationError(w, msgValidationFailed, fieldMap(vErr))

		case errors.Is(err, createBooking.ErrSlotNotAvailable):
			h.logger.Warn("POST /bookings - Slot not available: date=%s, time=%s", req.PreferredDate, req.PreferredTime)
			h.metrics.IncSlotConflict()
			handlers.RespondConflict(w, msgSlotNotAvailable)

		case errors.Is(err, createBooking.ErrMailerNotConfigured):
			// Ошибка конфигурации должна быть видна оператору, а не прятаться
			// за общим "internal server error"
			h.logger.Error("POST /bookings - Mail relay is not configured, set MAILRELAY_ACCESS_KEY")
			handlers.RespondError(w, http.StatusInternalServerError, msgMailerUnconfigured)

		case errors.Is(err, createBooking.ErrNotificationFailed):
			h.logger.Error("POST /bookings - Notification dispatch failed: %v", err)
			handlers.RespondServiceUnavailable(w, "we could not process your request right now, please try again")

		default:
			h.logger.Error("POST /bookings - Failed to create booking: %v", err)
			handlers.RespondInternalError(w)
		}
		return
	}

	response := &CreateBookingResponse{
		Success: true,
		Message: msgBookingReceived,
	}

	if result.Outcome == createBooking.OutcomePartialFailure {
		h.metrics.IncStoreDegradation()
		response.Note = msgPartialNote
	} else {
		h.metrics.IncBookingCreated()
		h.metrics.IncLeadCaptured(string(domain.FormBooking))
		response.BookingID = &result.BookingID
	}

	h.logger.Info("POST /bookings - Request processed: outcome=%s, date=%s, time=%s",
		result.Outcome, result.DateKey, result.SlotKey)
	handlers.RespondJSON(w, http.StatusOK, response)
}

func fieldMap(vErr *createBooking.ValidationErrors) map[string]string {
	fields := make(map[string]string, len(vErr.Fields))
	for _, f := range vErr.Fields {
		if _, ok := fields[f.Field]; !ok {
			fields[f.Field] = f.Message
		}
	}
	return fields
}
