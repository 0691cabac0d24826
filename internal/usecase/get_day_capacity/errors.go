package get_day_capacity

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных запроса
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDuration возвращается, когда базовая длительность центра
	// неположительна
	ErrInvalidDuration = errors.New("invalid slot duration")

	// ErrInternal возвращается при инфраструктурных сбоях
	ErrInternal = errors.New("usecase: internal error")
)
