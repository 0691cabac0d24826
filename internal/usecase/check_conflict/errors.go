package check_conflict

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных запроса
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDuration возвращается, когда эффективная длительность
	// слота неположительна
	ErrInvalidDuration = errors.New("invalid slot duration")

	// ErrInternal возвращается при инфраструктурных сбоях
	ErrInternal = errors.New("usecase: internal error")
)
