package subscribe_newsletter

import "errors"

var (
	// ErrInvalidEmail возвращается при невалидном адресе подписки
	ErrInvalidEmail = errors.New("invalid email address")

	// ErrMailerNotConfigured возвращается, когда ключ почтового релея не задан
	ErrMailerNotConfigured = errors.New("mailer is not configured")

	// ErrNotificationFailed возвращается, когда не удалось отправить оба письма
	ErrNotificationFailed = errors.New("failed to send notification emails")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("usecase: internal error")
)
