package settings

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных данных запроса
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidDuration возвращается для базовой длительности вне
	// бизнес-границ. В отличие от чтения, запись никогда не подменяет
	// плохую конфигурацию дефолтами; вызывающая сторона должна её
	// исправить.
	ErrInvalidDuration = errors.New("invalid appointment duration")

	// ErrInvalidWorkingHours возвращается, когда присланное расписание
	// нарушает инварианты дней
	ErrInvalidWorkingHours = errors.New("invalid working hours")

	// ErrInternal возвращается при инфраструктурных сбоях
	ErrInternal = errors.New("service: internal error")
)
