package get_appointment

import (
	"context"

	"github.com/m04kA/CTC-ScheduleService/internal/service/appointments/models"
)

type AppointmentService interface {
	GetByID(ctx context.Context, id, userID int64) (*models.AppointmentResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
