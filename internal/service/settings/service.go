package settings

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
	"github.com/m04kA/CTC-ScheduleService/internal/infra/storage/settings"
	"github.com/m04kA/CTC-ScheduleService/internal/service/settings/models"
)

// Service управляет настройками расписания центра
type Service struct {
	repo SettingsRepository
	logs Logger
}

func NewService(repo SettingsRepository, logs Logger) *Service {
	return &Service{
		repo: repo,
		logs: logs,
	}
}

// Get возвращает настройки центра с fallback на дефолты, когда строки
// нет. Рабочие часы разбираются; деградация логируется, но чтение
// никогда не падает из-за неё.
func (s *Service) Get(ctx context.Context, userID int64) (*models.SettingsResponse, error) {
	stored, err := s.repo.GetByUserID(ctx, userID)
	switch {
	case err == nil:
	case errors.Is(err, settings.ErrSettingsNotFound):
		stored = domain.DefaultCenterSettings(userID)
	default:
		s.logs.Error("service.settings.Get: load settings for user %d: %v", userID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	week, resolution := domain.ResolveWorkingHours(stored.WorkingHoursRaw)
	if resolution == domain.WorkingHoursMalformed {
		s.logs.Warn("service.settings.Get: malformed working hours for user %d, defaults applied", userID)
	}

	return &models.SettingsResponse{
		AppointmentDuration: stored.BaseDuration(),
		MinBookingNotice:    stored.MinBookingNotice,
		WorkingHours:        week,
		WorkingHoursSource:  resolution.String(),
	}, nil
}

// Update заменяет настройки центра. Запись строгая: невалидные значения
// отклоняются, а не подменяются дефолтами.
func (s *Service) Update(ctx context.Context, req *models.UpdateSettingsRequest) (*models.SettingsResponse, error) {
	if req == nil || req.UserID <= 0 {
		return nil, fmt.Errorf("%w: user id is required", ErrInvalidInput)
	}
	if req.AppointmentDuration < domain.MinAppointmentDurationMinutes ||
		req.AppointmentDuration > domain.MaxAppointmentDurationMinutes {
		return nil, fmt.Errorf("%w: duration %d must be within [%d, %d] minutes",
			ErrInvalidDuration, req.AppointmentDuration,
			domain.MinAppointmentDurationMinutes, domain.MaxAppointmentDurationMinutes)
	}
	if req.MinBookingNotice < domain.MinBookingNoticeHoursLimit ||
		req.MinBookingNotice > domain.MaxBookingNoticeHoursLimit {
		return nil, fmt.Errorf("%w: booking notice %d must be within [%d, %d] hours",
			ErrInvalidInput, req.MinBookingNotice,
			domain.MinBookingNoticeHoursLimit, domain.MaxBookingNoticeHoursLimit)
	}

	row := &domain.CenterSettings{
		UserID:              req.UserID,
		AppointmentDuration: req.AppointmentDuration,
		MinBookingNotice:    req.MinBookingNotice,
	}

	if req.WorkingHours != nil {
		if err := req.WorkingHours.Validate(); err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidWorkingHours, err)
		}
		raw, err := json.Marshal(req.WorkingHours)
		if err != nil {
			s.logs.Error("service.settings.Update: marshal working hours for user %d: %v", req.UserID, err)
			return nil, fmt.Errorf("%w: %v", ErrInternal, err)
		}
		row.WorkingHoursRaw = raw
	} else if stored, err := s.repo.GetByUserID(ctx, req.UserID); err == nil {
		row.WorkingHoursRaw = stored.WorkingHoursRaw
	} else if !errors.Is(err, settings.ErrSettingsNotFound) {
		s.logs.Error("service.settings.Update: load settings for user %d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	saved, err := s.repo.Upsert(ctx, row)
	if err != nil {
		s.logs.Error("service.settings.Update: upsert settings for user %d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInternal, err)
	}

	week, resolution := domain.ResolveWorkingHours(saved.WorkingHoursRaw)
	s.logs.Info("service.settings.Update: settings updated for user %d", req.UserID)

	return &models.SettingsResponse{
		AppointmentDuration: saved.BaseDuration(),
		MinBookingNotice:    saved.MinBookingNotice,
		WorkingHours:        week,
		WorkingHoursSource:  resolution.String(),
	}, nil
}
