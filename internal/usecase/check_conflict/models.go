package check_conflict

import (
	"time"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
)

// Request запрос, занято ли конкретное время начала
type Request struct {
	UserID               int64
	RequestedStart       time.Time // точное запрошенное время начала записи
	DurationMinutes      int       // 0 = базовая длительность центра
	ExcludeAppointmentID *int64    // игнорировать эту запись (сценарии редактирования)
}

// Response вердикт о конфликте с ранжированными альтернативами.
// SuggestedSlots заполняется всегда (до лимита) независимо от вердикта,
// по возрастанию времени начала: ближайшая альтернатива первой.
type Response struct {
	HasConflict            bool
	ConflictingAppointment *domain.Appointment
	SuggestedSlots         []domain.TimeSlot
}
