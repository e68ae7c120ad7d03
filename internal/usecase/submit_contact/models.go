package submit_contact

// Итоги пайплайна контактной формы
const (
	OutcomeNotified       = "notified"
	OutcomePartialFailure = "partial_failure"
)

// Request модель запроса контактной формы
type Request struct {
	Name    string
	Email   string
	Subject *string
	Message string

	// Атрибуция лида
	SessionID *string
	Source    *string
}

// Response модель ответа контактной формы
type Response struct {
	LeadID  int64  // 0 при partial_failure
	Outcome string // notified | partial_failure
}
