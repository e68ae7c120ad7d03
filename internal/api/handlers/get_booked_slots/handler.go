package get_booked_slots

import (
	"errors"
	"net/http"

	"github.com/travelops/TLO-LeadService/internal/api/handlers"
	"github.com/travelops/TLO-LeadService/internal/service/bookings"
)

const (
	msgRangeRequired = "from and to query parameters are required"
	msgInvalidRange  = "from and to must be YYYY-MM-DD and span at most two months"
)

type Handler struct {
	service BookingService
	logger  Logger
}

func NewHandler(service BookingService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/booked?from=YYYY-MM-DD&to=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	fromKey := r.URL.Query().Get("from")
	toKey := r.URL.Query().Get("to")
	if fromKey == "" || toKey == "" {
		h.logger.Warn("GET /slots/booked - Missing from/to parameters")
		handlers.RespondBadRequest(w, msgRangeRequired)
		return
	}

	result, err := h.service.ListBookedSlots(r.Context(), fromKey, toKey)
	if err != nil {
		switch {
		case errors.Is(err, bookings.ErrInvalidInput):
			h.logger.Warn("GET /slots/booked - Invalid range %s..%s: %v", fromKey, toKey, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		default:
			h.logger.Error("GET /slots/booked - Failed for range %s..%s: %v", fromKey, toKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, result)
}
