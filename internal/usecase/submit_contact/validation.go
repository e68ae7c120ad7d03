package submit_contact

import (
	"strings"

	"github.com/travelops/TLO-LeadService/internal/domain"
)

// validateRequest проверяет контактную форму целиком
func validateRequest(req *Request) *ValidationErrors {
	vErr := &ValidationErrors{}

	if len([]rune(strings.TrimSpace(req.Name))) < domain.MinCompanyLength {
		vErr.Add("name", "please enter your name")
	}

	if !domain.ValidEmail(req.Email) {
		vErr.Add("email", "please enter a valid email address")
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		vErr.Add("message", "message is required")
	} else if len([]rune(message)) > domain.MaxContactMessageLength {
		vErr.Add("message", "message must be at most 2000 characters")
	}

	if vErr.HasErrors() {
		return vErr
	}
	return nil
}
