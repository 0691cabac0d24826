package create_appointment

import (
	"context"
	"time"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
	"github.com/m04kA/CTC-ScheduleService/internal/integrations/notifier"
)

// AppointmentRepository интерфейс записей, нужный этому usecase
type AppointmentRepository interface {
	Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error)
	// GetWithFilter внутри транзакции блокирует строки дня (FOR UPDATE)
	GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error)
}

// SettingsRepository читает конфигурацию расписания центра
type SettingsRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.CenterSettings, error)
}

// NotifierClient отправляет подтверждение бронирования, best effort
type NotifierClient interface {
	SendConfirmation(ctx context.Context, req *notifier.ConfirmationRequest) error
}

// TransactionManager атомарно выполняет перепроверку доступности и вставку
type TransactionManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
