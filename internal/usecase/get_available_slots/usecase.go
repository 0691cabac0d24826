package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
	settingsRepo "github.com/m04kA/CTC-ScheduleService/internal/infra/storage/settings"
	"github.com/m04kA/CTC-ScheduleService/internal/schedule"
)

// UseCase вычисляет слоты-кандидаты одного дня с наложением существующих
// записей. Не хранит состояния; все рабочие данные загружаются заново на
// каждый вызов.
type UseCase struct {
	appointmentRepo AppointmentRepository
	settingsRepo    SettingsRepository
	logger          Logger
}

// NewUseCase создает use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	settingsRepo SettingsRepository,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		settingsRepo:    settingsRepo,
		logger:          logger,
	}
}

// Execute строит дневную сетку по базовой длительности центра и размечает
// каждый слот по записям дня с учётом запрошенной длины окна. Два вызова
// при неизменных записях дают идентичный результат.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: user=%d, date=%s, duration=%d",
		req.UserID, req.Date.Format(domain.DateFormat), req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	settings, week, err := uc.resolveSettings(ctx, req.UserID)
	if err != nil {
		return nil, err
	}

	baseDuration := settings.BaseDuration()
	requestedDuration := req.DurationMinutes
	if requestedDuration == 0 {
		requestedDuration = baseDuration
	}

	day := week.ForDay(req.Date.Weekday())
	slots, err := schedule.GenerateSlots(req.Date, day, baseDuration)
	if err != nil {
		if errors.Is(err, schedule.ErrInvalidDuration) {
			uc.logger.Warn("GetAvailableSlots: invalid base duration %d for user=%d", baseDuration, req.UserID)
			return nil, fmt.Errorf("%w: %d minutes", ErrInvalidDuration, baseDuration)
		}
		uc.logger.Error("GetAvailableSlots: failed to generate slots: %v", err)
		return nil, fmt.Errorf("%w: failed to generate slots: %v", ErrInternal, err)
	}

	if len(slots) == 0 {
		uc.logger.Info("GetAvailableSlots: center closed on %s for user=%d",
			req.Date.Format(domain.DateFormat), req.UserID)
		return &Response{
			Date:                     req.Date,
			BaseDurationMinutes:      baseDuration,
			RequestedDurationMinutes: requestedDuration,
			Slots:                    slots,
		}, nil
	}

	dayStart, dayEnd := schedule.DayRange(req.Date)
	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, domain.AppointmentsFilter{
		UserID:               req.UserID,
		StartDate:            &dayStart,
		EndDate:              &dayEnd,
		ExcludeAppointmentID: req.ExcludeAppointmentID,
	})
	if err != nil {
		uc.logger.Error("GetAvailableSlots: failed to get appointments: %v", err)
		return nil, fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
	}

	slots = schedule.MarkAvailability(slots, appointments, requestedDuration, baseDuration)

	uc.logger.Info("GetAvailableSlots: generated %d slots for user=%d, date=%s",
		len(slots), req.UserID, req.Date.Format(domain.DateFormat))

	return &Response{
		Date:                     req.Date,
		BaseDurationMinutes:      baseDuration,
		RequestedDurationMinutes: requestedDuration,
		Slots:                    slots,
	}, nil
}

// resolveSettings загружает настройки и рабочие часы центра с деградацией
// на дефолты, когда строки нет или blob рабочих часов не парсится.
// Деградация - warning, а не ошибка: расписание остаётся доступным даже
// при испорченном хранилище настроек.
func (uc *UseCase) resolveSettings(ctx context.Context, userID int64) (*domain.CenterSettings, domain.WeekSchedule, error) {
	settings, err := uc.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Info("GetAvailableSlots: no settings for user=%d, using defaults", userID)
			return domain.DefaultCenterSettings(userID), domain.DefaultWeekSchedule(), nil
		}
		uc.logger.Error("GetAvailableSlots: failed to get settings for user=%d: %v", userID, err)
		return nil, domain.WeekSchedule{}, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}

	week, resolution := domain.ResolveWorkingHours(settings.WorkingHoursRaw)
	if resolution == domain.WorkingHoursMalformed {
		uc.logger.Warn("GetAvailableSlots: malformed working hours for user=%d, using defaults", userID)
	}

	return settings, week, nil
}
