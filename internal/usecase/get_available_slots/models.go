package get_available_slots

import (
	"time"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
)

// Request запрос дневной сетки слотов с наложенной доступностью
type Request struct {
	UserID               int64     // id центра (tenant)
	Date                 time.Time // календарный день, интерпретируется в своей локации
	DurationMinutes      int       // запрошенное окно; 0 = базовая длительность центра
	ExcludeAppointmentID *int64    // игнорировать эту запись (сценарии редактирования)
}

// Response размеченная сетка плюс длительности, с которыми она посчитана
type Response struct {
	Date                     time.Time
	BaseDurationMinutes      int
	RequestedDurationMinutes int
	Slots                    []domain.TimeSlot
}
