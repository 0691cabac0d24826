package schedule

import "errors"

var (
	// ErrInvalidDuration возвращается для неположительных длительностей.
	// Это ошибка конфигурации; вызывающая сторона падает до обращения к
	// хранилищу, а не зацикливается на сетке нулевой ширины.
	ErrInvalidDuration = errors.New("schedule: slot duration must be positive")
)
