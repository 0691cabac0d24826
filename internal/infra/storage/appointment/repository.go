package appointment

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

var appointmentColumns = []string{
	"id",
	"user_id",
	"client_id",
	"appointment_date",
	"duration_minutes",
	"status",
	"notes",
	"is_online_booking",
	"created_at",
	"updated_at",
}

// Repository Postgres хранилище записей
type Repository struct {
	db DBExecutor
}

// NewRepository создает репозиторий записей
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// Create вставляет новую запись. Если контекст несёт открытую транзакцию
// (через dbmetrics), insert присоединяется к ней; usecase создания
// опирается на это, чтобы атомарно перепроверить доступность и вставить.
func (r *Repository) Create(ctx context.Context, appt *domain.Appointment) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Insert("appointments").
		Columns(
			"user_id",
			"client_id",
			"appointment_date",
			"duration_minutes",
			"status",
			"notes",
			"is_online_booking",
		).
		Values(
			appt.UserID,
			appt.ClientID,
			appt.AppointmentDate,
			appt.DurationMinutes,
			appt.Status,
			appt.Notes,
			appt.IsOnlineBooking,
		).
		Suffix("RETURNING id, created_at, updated_at").
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: Create - build insert query: %v", ErrBuildQuery, err)
	}

	var createdAt, updatedAt sql.NullTime
	err = executor.QueryRowContext(ctx, query, args...).Scan(
		&appt.ID,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, fmt.Errorf("%w: Create - execute insert: %v", ErrExecQuery, err)
	}

	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return appt, nil
}

// GetByID получает одну запись в рамках центра-владельца
func (r *Repository) GetByID(ctx context.Context, id, userID int64) (*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"id": id, "user_id": userID}).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - build select query: %v", ErrBuildQuery, err)
	}

	appt, err := scanAppointment(executor.QueryRowContext(ctx, query, args...))
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrAppointmentNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetByID - scan appointment: %v", ErrScanRow, err)
	}

	return appt, nil
}

// GetWithFilter выбирает записи центра. Отменённые записи исключаются,
// если не задан IncludeCancelled; движок никогда не считает их занимающими
// ёмкость. Результаты для ограниченного диапазона возвращаются по
// возрастанию appointment_date - на это опираются разметка слотов и
// многодневный поиск. Внутри транзакции запрос по диапазону дня берёт
// FOR UPDATE, чтобы перепроверка доступности при создании была защищена
// от гонок.
func (r *Repository) GetWithFilter(ctx context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	selectBuilder := psqlbuilder.Select(appointmentColumns...).
		From("appointments").
		Where(squirrel.Eq{"user_id": filter.UserID})

	if filter.StartDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.GtOrEq{"appointment_date": *filter.StartDate})
	}
	if filter.EndDate != nil {
		selectBuilder = selectBuilder.Where(squirrel.Lt{"appointment_date": *filter.EndDate})
	}
	if filter.ExcludeAppointmentID != nil {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"id": *filter.ExcludeAppointmentID})
	}

	if filter.Status != nil {
		selectBuilder = selectBuilder.Where(squirrel.Eq{"status": *filter.Status})
	} else if !filter.IncludeCancelled {
		selectBuilder = selectBuilder.Where(squirrel.NotEq{"status": domain.StatusCancelled})
	}

	selectBuilder = selectBuilder.OrderBy("appointment_date ASC")

	if dbmetrics.IsInTransaction(ctx) && filter.StartDate != nil && filter.EndDate != nil {
		selectBuilder = selectBuilder.Suffix("FOR UPDATE")
	}

	query, args, err := selectBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetWithFilter - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	return scanAppointments(rows)
}

// Cancel переводит запись в статус cancelled. Отменить можно только
// записи в статусах scheduled и confirmed.
func (r *Repository) Cancel(ctx context.Context, id, userID int64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Update("appointments").
		Set("status", domain.StatusCancelled).
		Set("updated_at", squirrel.Expr("NOW()")).
		Where(squirrel.Eq{
			"id":      id,
			"user_id": userID,
			"status":  []domain.AppointmentStatus{domain.StatusScheduled, domain.StatusConfirmed},
		}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: Cancel - build update query: %v", ErrBuildQuery, err)
	}

	res, err := executor.ExecContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("%w: Cancel - execute update: %v", ErrExecQuery, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: Cancel - rows affected: %v", ErrExecQuery, err)
	}
	if affected == 0 {
		// Различаем "не найдено" и "неподходящий статус"
		if _, err := r.GetByID(ctx, id, userID); err != nil {
			return err
		}
		return ErrCannotCancel
	}

	return nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAppointment(row rowScanner) (*domain.Appointment, error) {
	var appt domain.Appointment
	var duration sql.NullInt64
	var notes sql.NullString
	var createdAt, updatedAt sql.NullTime

	err := row.Scan(
		&appt.ID,
		&appt.UserID,
		&appt.ClientID,
		&appt.AppointmentDate,
		&duration,
		&appt.Status,
		&notes,
		&appt.IsOnlineBooking,
		&createdAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	if duration.Valid {
		d := int(duration.Int64)
		appt.DurationMinutes = &d
	}
	if notes.Valid {
		appt.Notes = &notes.String
	}
	appt.CreatedAt = createdAt.Time
	appt.UpdatedAt = updatedAt.Time

	return &appt, nil
}

func scanAppointments(rows *sql.Rows) ([]*domain.Appointment, error) {
	appointments := make([]*domain.Appointment, 0)
	for rows.Next() {
		appt, err := scanAppointment(rows)
		if err != nil {
			return nil, fmt.Errorf("%w: scan appointment: %v", ErrScanRow, err)
		}
		appointments = append(appointments, appt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: iterate rows: %v", ErrScanRow, err)
	}
	return appointments, nil
}
