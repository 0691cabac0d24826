package get_available_slots

import (
	"context"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
)

// AppointmentRepository интерфейс чтения записей, нужный этому usecase
type AppointmentRepository interface {
	// GetWithFilter возвращает записи центра за период, отменённые
	// исключены, опционально пропуская один id записи
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// SettingsRepository читает конфигурацию расписания центра
type SettingsRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.CenterSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
