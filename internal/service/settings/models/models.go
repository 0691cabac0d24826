package models

import "github.com/m04kA/CTC-ScheduleService/internal/domain"

// SettingsResponse представление настроек после разбора: рабочие часы
// возвращаются в виде расписания, которое движок реально использует,
// плюс результат разбора, чтобы вызывающая сторона могла показать
// деградировавшую конфигурацию.
type SettingsResponse struct {
	AppointmentDuration int
	MinBookingNotice    int
	WorkingHours        domain.WeekSchedule
	WorkingHoursSource  string // valid | missing | malformed
}

// UpdateSettingsRequest запрос замены настроек центра
type UpdateSettingsRequest struct {
	UserID              int64
	AppointmentDuration int
	MinBookingNotice    int
	WorkingHours        *domain.WeekSchedule // nil = оставить сохранённое значение
}
