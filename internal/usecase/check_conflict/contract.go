package check_conflict

import (
	"context"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
	getAvailableSlots "github.com/m04kA/CTC-ScheduleService/internal/usecase/get_available_slots"
)

// SlotsProvider вычисляет размеченную дневную сетку слотов
type SlotsProvider interface {
	Execute(ctx context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error)
}

// AppointmentRepository интерфейс чтения записей, нужный этому usecase
type AppointmentRepository interface {
	// GetByID получает детали конфликтующей записи для отображения
	GetByID(ctx context.Context, id, userID int64) (*domain.Appointment, error)
	// GetWithFilter получает записи дня для проверки вне сетки
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
