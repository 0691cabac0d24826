package create_appointment

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных запроса
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDuration возвращается для длительности вне бизнес-границ
	ErrInvalidDuration = errors.New("invalid appointment duration")

	// ErrSlotNotAvailable возвращается, когда запрошенное окно пересекается
	// с существующей записью на момент коммита
	ErrSlotNotAvailable = errors.New("requested time is not available")

	// ErrTooSoon возвращается, когда запрошенное время нарушает минимальный
	// notice центра
	ErrTooSoon = errors.New("requested time is below the minimum booking notice")

	// ErrDateInPast возвращается, когда запрошенное время уже прошло
	ErrDateInPast = errors.New("requested time is in the past")

	// ErrInternal возвращается при инфраструктурных сбоях
	ErrInternal = errors.New("usecase: internal error")
)
