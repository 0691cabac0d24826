package appointments

import "errors"

var (
	// ErrAppointmentNotFound возвращается, когда записи не существует
	// для этого центра
	ErrAppointmentNotFound = errors.New("appointment not found")

	// ErrCannotCancel возвращается, когда статус записи запрещает
	// отмену
	ErrCannotCancel = errors.New("appointment cannot be cancelled")

	// ErrInvalidInput возвращается при некорректных данных запроса
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при инфраструктурных сбоях
	ErrInternal = errors.New("service: internal error")
)
