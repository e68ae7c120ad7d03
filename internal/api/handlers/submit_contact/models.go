package submit_contact

import (
	submitContact "github.com/travelops/TLO-LeadService/internal/usecase/submit_contact"
)

// ContactRequest HTTP request model
type ContactRequest struct {
	Name    string  `json:"name"`
	Email   string  `json:"email"`
	Subject *string `json:"subject,omitempty"`
	Message string  `json:"message"`

	SessionID *string `json:"sessionId,omitempty"`
	Source    *string `json:"source,omitempty"`
}

// ContactResponse HTTP response model
type ContactResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *ContactRequest) ToUseCaseRequest() *submitContact.Request {
	return &submitContact.Request{
		Name:      r.Name,
		Email:     r.Email,
		Subject:   r.Subject,
		Message:   r.Message,
		SessionID: r.SessionID,
		Source:    r.Source,
	}
}
