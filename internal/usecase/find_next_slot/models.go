package find_next_slot

import (
	"time"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
)

// Request запрос ближайшего свободного слота начиная с желаемой даты
type Request struct {
	UserID          int64
	PreferredDate   time.Time
	DurationMinutes int // 0 = базовая длительность центра
}

// Response найденный слот. Slot равен nil, когда в пределах горизонта
// нет доступности; это успешный исход, а не ошибка.
type Response struct {
	Slot *domain.TimeSlot
}
