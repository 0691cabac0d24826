package models

import "errors"

// ErrUnknownStatus возвращается для значения фильтра статуса вне
// множества статусов записи
var ErrUnknownStatus = errors.New("unknown appointment status")
