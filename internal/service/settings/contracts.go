package settings

import (
	"context"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
)

// SettingsRepository интерфейс репозитория настроек
type SettingsRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.CenterSettings, error)
	Upsert(ctx context.Context, s *domain.CenterSettings) (*domain.CenterSettings, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
