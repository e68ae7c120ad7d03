package create_booking

import "github.com/travelops/TLO-LeadService/pkg/types"

// Итоги пайплайна. partial_failure означает, что заявка не записана в БД,
// но обе стороны уведомлены письмами: для пользователя это успех.
const (
	OutcomeNotified       = "notified"
	OutcomePartialFailure = "partial_failure"
)

// Request модель запроса на создание заявки на консультацию
type Request struct {
	Name    string
	Email   string
	Phone   string
	Company *string

	DateKey string           // Дата консультации в формате YYYY-MM-DD
	SlotKey types.TimeString // Ключ слота из каталога

	Message *string

	// Атрибуция лида
	SessionID *string
	Source    *string
}

// Response модель ответа на создание заявки
type Response struct {
	BookingID int64  // 0 при partial_failure
	Outcome   string // notified | partial_failure

	DateKey   string
	SlotKey   types.TimeString
	SlotLabel string
}
