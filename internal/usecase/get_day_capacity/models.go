package get_day_capacity

import (
	"time"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
)

// Request запрос сводки ёмкости одного дня
type Request struct {
	UserID int64
	Date   time.Time
}

// Response пересчитанный дневной агрегат
type Response struct {
	Date     time.Time
	Capacity domain.DayCapacity
}
