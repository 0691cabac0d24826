package domain

import (
	"encoding/json"
	"time"
)

// CenterSettings конфигурация расписания центра.
// WorkingHoursRaw хранит JSONB blob как есть; он разбирается в WeekSchedule
// ровно один раз, на границе модели рабочих часов.
type CenterSettings struct {
	ID                  int64
	UserID              int64
	AppointmentDuration int             // минуты, шаг сетки слотов
	MinBookingNotice    int             // часы
	WorkingHoursRaw     json.RawMessage // nil = не настроено
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// DefaultCenterSettings возвращает конфигурацию по умолчанию, применяемую
// когда у центра нет строки настроек
func DefaultCenterSettings(userID int64) *CenterSettings {
	return &CenterSettings{
		UserID:              userID,
		AppointmentDuration: DefaultAppointmentDurationMinutes,
		MinBookingNotice:    DefaultMinBookingNoticeHours,
	}
}

// BaseDuration возвращает базовую длительность слота с fallback на дефолт
func (s *CenterSettings) BaseDuration() int {
	if s == nil || s.AppointmentDuration <= 0 {
		return DefaultAppointmentDurationMinutes
	}
	return s.AppointmentDuration
}
