package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/travelops/TLO-LeadService/internal/api/handlers"
	getSlots "github.com/travelops/TLO-LeadService/internal/usecase/get_available_slots"
)

const (
	msgDateRequired      = "date query parameter is required"
	msgInvalidDate       = "date must be in YYYY-MM-DD format"
	msgDateNotSelectable = "slots are offered on weekdays from today onward"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/slots/available?date=YYYY-MM-DD
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	dateKey := r.URL.Query().Get("date")
	if dateKey == "" {
		h.logger.Warn("GET /slots/available - Missing date parameter")
		handlers.RespondBadRequest(w, msgDateRequired)
		return
	}

	result, err := h.useCase.Execute(r.Context(), &getSlots.Request{DateKey: dateKey})
	if err != nil {
		switch {
		case errors.Is(err, getSlots.ErrInvalidDate), errors.Is(err, getSlots.ErrInvalidInput):
			h.logger.Warn("GET /slots/available - Invalid date %q: %v", dateKey, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getSlots.ErrDateNotSelectable):
			h.logger.Warn("GET /slots/available - Date %s is not selectable", dateKey)
			handlers.RespondBadRequest(w, msgDateNotSelectable)

		default:
			h.logger.Error("GET /slots/available - Failed for date %s: %v", dateKey, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
