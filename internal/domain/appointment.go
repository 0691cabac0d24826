package domain

import "time"

// AppointmentStatus статус записи
type AppointmentStatus string

const (
	StatusScheduled AppointmentStatus = "scheduled"
	StatusConfirmed AppointmentStatus = "confirmed"
	StatusCompleted AppointmentStatus = "completed"
	StatusCancelled AppointmentStatus = "cancelled"
)

// Appointment запись на техосмотр в календаре центра
type Appointment struct {
	ID              int64
	UserID          int64 // центр-владелец (tenant)
	ClientID        int64
	AppointmentDate time.Time // момент начала с учётом таймзоны
	DurationMinutes *int      // nil = базовая длительность центра на момент вычисления
	Status          AppointmentStatus
	Notes           *string
	IsOnlineBooking bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// OccupiesCapacity возвращает true, если запись занимает временное окно.
// Отменённые записи освобождают свой слот.
func (a *Appointment) OccupiesCapacity() bool {
	return a.Status != StatusCancelled
}

// CanBeCancelled возвращает true, если запись ещё можно отменить
func (a *Appointment) CanBeCancelled() bool {
	return a.Status == StatusScheduled || a.Status == StatusConfirmed
}

// EffectiveDuration возвращает занимаемую длительность в минутах,
// с fallback на baseDurationMinutes, если override не задан.
func (a *Appointment) EffectiveDuration(baseDurationMinutes int) int {
	if a.DurationMinutes != nil && *a.DurationMinutes > 0 {
		return *a.DurationMinutes
	}
	return baseDurationMinutes
}

// OccupiedInterval возвращает полуоткрытый интервал [start, start+duration),
// который запись занимает в календаре.
func (a *Appointment) OccupiedInterval(baseDurationMinutes int) (time.Time, time.Time) {
	end := a.AppointmentDate.Add(time.Duration(a.EffectiveDuration(baseDurationMinutes)) * time.Minute)
	return a.AppointmentDate, end
}

// AppointmentsFilter фильтр выборки записей
type AppointmentsFilter struct {
	UserID               int64      // обязательный
	StartDate            *time.Time // включительная нижняя граница appointment_date
	EndDate              *time.Time // исключающая верхняя граница appointment_date
	Status               *AppointmentStatus
	ExcludeAppointmentID *int64 // исключить одну запись (для сценариев редактирования)
	IncludeCancelled     bool
}

// ValidStatus проверяет, что s - известный статус записи
func ValidStatus(s AppointmentStatus) bool {
	switch s {
	case StatusScheduled, StatusConfirmed, StatusCompleted, StatusCancelled:
		return true
	}
	return false
}
