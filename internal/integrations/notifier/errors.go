package notifier

import "errors"

var (
	// ErrInternal возвращается при сбоях на стороне клиента
	ErrInternal = errors.New("notifier client: internal error")

	// ErrInvalidResponse возвращается при неожиданном ответе сервиса
	ErrInvalidResponse = errors.New("notifier client: invalid response")
)
