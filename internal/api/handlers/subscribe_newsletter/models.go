package subscribe_newsletter

import (
	subscribeNewsletter "github.com/travelops/TLO-LeadService/internal/usecase/subscribe_newsletter"
)

// SubscribeRequest HTTP request model
type SubscribeRequest struct {
	Email string `json:"email"`

	SessionID *string `json:"sessionId,omitempty"`
	Source    *string `json:"source,omitempty"`
}

// SubscribeResponse HTTP response model
type SubscribeResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *SubscribeRequest) ToUseCaseRequest() *subscribeNewsletter.Request {
	return &subscribeNewsletter.Request{
		Email:     r.Email,
		SessionID: r.SessionID,
		Source:    r.Source,
	}
}
