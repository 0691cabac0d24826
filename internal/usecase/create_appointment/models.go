package create_appointment

import (
	"time"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
)

// Request запрос создания записи в календаре центра
type Request struct {
	UserID          int64
	ClientID        int64
	AppointmentDate time.Time
	DurationMinutes *int // nil = базовая длительность центра
	Notes           *string
	IsOnlineBooking bool
}

// Response созданная запись
type Response struct {
	Appointment *domain.Appointment
}
