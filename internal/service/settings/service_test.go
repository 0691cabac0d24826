package settings

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
	settingsRepo "github.com/m04kA/CTC-ScheduleService/internal/infra/storage/settings"
	"github.com/m04kA/CTC-ScheduleService/internal/service/settings/models"
	"github.com/m04kA/CTC-ScheduleService/pkg/types"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubRepo struct {
	stored    *domain.CenterSettings
	getErr    error
	upserted  *domain.CenterSettings
	upsertErr error
}

func (s *stubRepo) GetByUserID(context.Context, int64) (*domain.CenterSettings, error) {
	return s.stored, s.getErr
}

func (s *stubRepo) Upsert(_ context.Context, row *domain.CenterSettings) (*domain.CenterSettings, error) {
	if s.upsertErr != nil {
		return nil, s.upsertErr
	}
	out := *row
	out.ID = 1
	s.upserted = &out
	return &out, nil
}

func TestGet_DefaultsWhenNoRow(t *testing.T) {
	svc := NewService(&stubRepo{getErr: settingsRepo.ErrSettingsNotFound}, nopLogger{})

	resp, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, domain.DefaultAppointmentDurationMinutes, resp.AppointmentDuration)
	assert.Equal(t, domain.DefaultMinBookingNoticeHours, resp.MinBookingNotice)
	assert.Equal(t, "missing", resp.WorkingHoursSource)
	assert.Equal(t, domain.DefaultWeekSchedule(), resp.WorkingHours)
}

func TestGet_StoredSettings(t *testing.T) {
	raw := json.RawMessage(`{"monday": {"start": "10:00", "end": "16:00"}}`)
	svc := NewService(&stubRepo{stored: &domain.CenterSettings{
		UserID:              1,
		AppointmentDuration: 45,
		MinBookingNotice:    12,
		WorkingHoursRaw:     raw,
	}}, nopLogger{})

	resp, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)

	assert.Equal(t, 45, resp.AppointmentDuration)
	assert.Equal(t, 12, resp.MinBookingNotice)
	assert.Equal(t, "valid", resp.WorkingHoursSource)
	assert.Equal(t, types.TimeString("10:00"), resp.WorkingHours.Monday.Start)
}

func TestGet_MalformedWorkingHoursDegrade(t *testing.T) {
	svc := NewService(&stubRepo{stored: &domain.CenterSettings{
		UserID:              1,
		AppointmentDuration: 30,
		WorkingHoursRaw:     json.RawMessage(`{broken`),
	}}, nopLogger{})

	resp, err := svc.Get(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, "malformed", resp.WorkingHoursSource)
	assert.Equal(t, domain.DefaultWeekSchedule(), resp.WorkingHours)
}

func TestGet_StorageError(t *testing.T) {
	svc := NewService(&stubRepo{getErr: errors.New("connection refused")}, nopLogger{})

	_, err := svc.Get(context.Background(), 1)
	assert.ErrorIs(t, err, ErrInternal)
}

func TestUpdate_PersistsAndResolves(t *testing.T) {
	repo := &stubRepo{getErr: settingsRepo.ErrSettingsNotFound}
	svc := NewService(repo, nopLogger{})

	week := domain.DefaultWeekSchedule()
	week.Saturday.Enabled = false

	resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		UserID:              1,
		AppointmentDuration: 45,
		MinBookingNotice:    48,
		WorkingHours:        &week,
	})
	require.NoError(t, err)

	assert.Equal(t, 45, resp.AppointmentDuration)
	assert.Equal(t, 48, resp.MinBookingNotice)
	assert.Equal(t, "valid", resp.WorkingHoursSource)
	assert.False(t, resp.WorkingHours.Saturday.Enabled)

	require.NotNil(t, repo.upserted)
	assert.NotEmpty(t, repo.upserted.WorkingHoursRaw)
}

func TestUpdate_NilWorkingHoursKeepsStored(t *testing.T) {
	raw := json.RawMessage(`{"monday": {"start": "10:00", "end": "16:00"}}`)
	repo := &stubRepo{stored: &domain.CenterSettings{UserID: 1, WorkingHoursRaw: raw}}
	svc := NewService(repo, nopLogger{})

	resp, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		UserID:              1,
		AppointmentDuration: 30,
		MinBookingNotice:    24,
	})
	require.NoError(t, err)

	assert.Equal(t, "valid", resp.WorkingHoursSource)
	assert.Equal(t, types.TimeString("10:00"), resp.WorkingHours.Monday.Start)
}

func TestUpdate_DurationBounds(t *testing.T) {
	svc := NewService(&stubRepo{}, nopLogger{})

	for _, duration := range []int{0, domain.MinAppointmentDurationMinutes - 1, domain.MaxAppointmentDurationMinutes + 1} {
		_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
			UserID:              1,
			AppointmentDuration: duration,
			MinBookingNotice:    24,
		})
		assert.ErrorIs(t, err, ErrInvalidDuration, "duration %d must be rejected", duration)
	}
}

func TestUpdate_NoticeBounds(t *testing.T) {
	svc := NewService(&stubRepo{}, nopLogger{})

	for _, notice := range []int{-1, domain.MaxBookingNoticeHoursLimit + 1} {
		_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
			UserID:              1,
			AppointmentDuration: 30,
			MinBookingNotice:    notice,
		})
		assert.ErrorIs(t, err, ErrInvalidInput, "notice %d must be rejected", notice)
	}
}

func TestUpdate_InvalidWorkingHours(t *testing.T) {
	svc := NewService(&stubRepo{}, nopLogger{})

	week := domain.DefaultWeekSchedule()
	week.Monday.Start = types.TimeString("18:00")
	week.Monday.End = types.TimeString("09:00")

	_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		UserID:              1,
		AppointmentDuration: 30,
		MinBookingNotice:    24,
		WorkingHours:        &week,
	})
	assert.ErrorIs(t, err, ErrInvalidWorkingHours)
}

func TestUpdate_UpsertFailure(t *testing.T) {
	svc := NewService(&stubRepo{getErr: settingsRepo.ErrSettingsNotFound, upsertErr: errors.New("boom")}, nopLogger{})

	_, err := svc.Update(context.Background(), &models.UpdateSettingsRequest{
		UserID:              1,
		AppointmentDuration: 30,
		MinBookingNotice:    24,
	})
	assert.ErrorIs(t, err, ErrInternal)
}
