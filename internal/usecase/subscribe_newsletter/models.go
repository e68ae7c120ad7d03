package subscribe_newsletter

// Итоги пайплайна подписки
const (
	OutcomeNotified       = "notified"
	OutcomePartialFailure = "partial_failure"
)

// Request модель запроса подписки на рассылку
type Request struct {
	Email string

	// Атрибуция лида
	SessionID *string
	Source    *string
}

// Response модель ответа подписки
type Response struct {
	LeadID  int64  // 0 при partial_failure
	Outcome string // notified | partial_failure
}
