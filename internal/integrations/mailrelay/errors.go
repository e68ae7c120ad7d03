package mailrelay

import "errors"

var (
	// ErrNotConfigured возвращается, когда ключ доступа к релею не задан.
	// Без ключа отправка невозможна, пайплайны обязаны падать жестко.
	ErrNotConfigured = errors.New("mailrelay client: access key is not configured")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("mailrelay client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от релея
	ErrInvalidResponse = errors.New("mailrelay client: invalid response")

	// ErrRejected возвращается, когда релей принял запрос, но отказал в отправке
	ErrRejected = errors.New("mailrelay client: relay rejected message")
)
