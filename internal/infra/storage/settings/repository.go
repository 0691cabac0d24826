package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
	"github.com/m04kA/CTC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/CTC-ScheduleService/pkg/psqlbuilder"
)

// Repository Postgres хранилище настроек центров.
// Колонка рабочих часов здесь остаётся сырым JSONB; разбор в WeekSchedule
// происходит один раз на доменной границе, а не в SQL.
type Repository struct {
	db dbmetrics.DBExecutor
}

// NewRepository создает репозиторий настроек
func NewRepository(db dbmetrics.DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetByUserID получает строку настроек центра
func (r *Repository) GetByUserID(ctx context.Context, userID int64) (*domain.CenterSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(
		"id",
		"user_id",
		"appointment_duration",
		"min_booking_notice",
		"working_hours",
		"created_at",
		"updated_at",
	).
		From("center_settings").
		Where(squirrel.Eq{"user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - build select query: %v", ErrBuildQuery, err)
	}

	var s domain.CenterSettings
	var workingHours []byte
	var createdAt, updatedAt sql.NullTime

	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&s.UserID,
		&s.AppointmentDuration,
		&s.MinBookingNotice,
		&workingHours,
		&createdAt,
		&updatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrSettingsNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByUserID - scan settings: %v", ErrScanRow, err)
	}

	s.WorkingHoursRaw = workingHours
	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return &s, nil
}

// Upsert сохраняет настройки центра, создавая строку при первом сохранении
func (r *Repository) Upsert(ctx context.Context, s *domain.CenterSettings) (*domain.CenterSettings, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("center_settings").
		Columns(
			"user_id",
			"appointment_duration",
			"min_booking_notice",
			"working_hours",
		).
		Values(
			s.UserID,
			s.AppointmentDuration,
			s.MinBookingNotice,
			[]byte(s.WorkingHoursRaw),
		).
		Suffix(`ON CONFLICT (user_id) DO UPDATE SET
			appointment_duration = EXCLUDED.appointment_duration,
			min_booking_notice = EXCLUDED.min_booking_notice,
			working_hours = EXCLUDED.working_hours,
			updated_at = NOW()
		RETURNING id, created_at, updated_at`).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - build upsert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&s.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Upsert - execute upsert: %v", ErrExecQuery, err)
	}

	s.CreatedAt = createdAt.Time
	s.UpdatedAt = updatedAt.Time

	return s, nil
}
