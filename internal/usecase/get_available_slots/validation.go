package get_available_slots

import (
	"fmt"
	"strings"
	"time"

	"github.com/travelops/TLO-LeadService/internal/domain"
)

// validateRequest проверяет формат даты и возвращает распарсенную дату
func validateRequest(req *Request) (time.Time, error) {
	if req == nil || strings.TrimSpace(req.DateKey) == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	date, err := domain.ParseDateKey(req.DateKey)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: expected YYYY-MM-DD, got %q", ErrInvalidDate, req.DateKey)
	}

	return date, nil
}
