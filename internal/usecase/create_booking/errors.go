package create_booking

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation возвращается при ошибках валидации полей формы
	ErrValidation = errors.New("validation failed")

	// ErrSlotNotAvailable возвращается, когда слот уже удержан другой заявкой
	ErrSlotNotAvailable = errors.New("slot is not available")

	// ErrMailerNotConfigured возвращается, когда ключ почтового релея не задан.
	// Без писем пайплайн бессмыслен, заявка отклоняется целиком.
	ErrMailerNotConfigured = errors.New("mailer is not configured")

	// ErrNotificationFailed возвращается, когда не удалось отправить оба письма
	ErrNotificationFailed = errors.New("failed to send notification emails")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)

// FieldError ошибка валидации одного поля формы
type FieldError struct {
	Field   string
	Message string
}

// ValidationErrors агрегат ошибок валидации: форма проверяется целиком,
// пользователь получает все проблемы за один запрос
type ValidationErrors struct {
	Fields []FieldError
}

// Add добавляет ошибку поля
func (e *ValidationErrors) Add(field, message string) {
	e.Fields = append(e.Fields, FieldError{Field: field, Message: message})
}

// HasErrors сообщает, есть ли накопленные ошибки
func (e *ValidationErrors) HasErrors() bool {
	return len(e.Fields) > 0
}

// Error реализует интерфейс error
func (e *ValidationErrors) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// Is позволяет errors.Is(err, ErrValidation)
func (e *ValidationErrors) Is(target error) bool {
	return target == ErrValidation
}
