package get_available_slots

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
	settingsRepo "github.com/m04kA/CTC-ScheduleService/internal/infra/storage/settings"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubAppointmentRepo struct {
	appointments []*domain.Appointment
	err          error
	gotFilter    domain.AppointmentsFilter
}

func (s *stubAppointmentRepo) GetWithFilter(_ context.Context, filter domain.AppointmentsFilter) ([]*domain.Appointment, error) {
	s.gotFilter = filter
	return s.appointments, s.err
}

type stubSettingsRepo struct {
	settings *domain.CenterSettings
	err      error
}

func (s *stubSettingsRepo) GetByUserID(context.Context, int64) (*domain.CenterSettings, error) {
	return s.settings, s.err
}

// Понедельник
var testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func at(hour, minute int) time.Time {
	return time.Date(2026, 3, 2, hour, minute, 0, 0, time.UTC)
}

func TestExecute_DefaultsWhenNoSettings(t *testing.T) {
	appts := &stubAppointmentRepo{}
	uc := NewUseCase(appts, &stubSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: testDate})
	require.NoError(t, err)

	// Дефолт 09:00-18:00 с перерывом 12:00-14:00 по 30 минут
	assert.Equal(t, domain.DefaultAppointmentDurationMinutes, resp.BaseDurationMinutes)
	assert.Len(t, resp.Slots, 14)
	assert.Equal(t, at(9, 0), resp.Slots[0].Start)
}

func TestExecute_MarksOccupiedSlots(t *testing.T) {
	appts := &stubAppointmentRepo{
		appointments: []*domain.Appointment{
			{ID: 4, UserID: 1, AppointmentDate: at(10, 0), Status: domain.StatusScheduled},
		},
	}
	uc := NewUseCase(appts, &stubSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: testDate})
	require.NoError(t, err)

	occupied := 0
	for _, s := range resp.Slots {
		if !s.Available {
			occupied++
			assert.Equal(t, at(10, 0), s.Start)
			require.NotNil(t, s.ConflictingAppointmentID)
			assert.Equal(t, int64(4), *s.ConflictingAppointmentID)
		}
	}
	assert.Equal(t, 1, occupied)

	// Репозиторий должен запрашиваться ровно за этот календарный день
	require.NotNil(t, appts.gotFilter.StartDate)
	require.NotNil(t, appts.gotFilter.EndDate)
	assert.Equal(t, testDate, *appts.gotFilter.StartDate)
	assert.Equal(t, testDate.AddDate(0, 0, 1), *appts.gotFilter.EndDate)
}

func TestExecute_RequestedDurationLongerThanBase(t *testing.T) {
	appts := &stubAppointmentRepo{
		appointments: []*domain.Appointment{
			{ID: 2, UserID: 1, AppointmentDate: at(10, 30), Status: domain.StatusScheduled},
		},
	}
	uc := NewUseCase(appts, &stubSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: testDate, DurationMinutes: 60})
	require.NoError(t, err)
	assert.Equal(t, 60, resp.RequestedDurationMinutes)

	byStart := map[string]bool{}
	for _, s := range resp.Slots {
		byStart[s.Start.Format("15:04")] = s.Available
	}
	assert.False(t, byStart["10:00"], "second increment lands on the occupied 10:30")
	assert.False(t, byStart["10:30"])
	assert.True(t, byStart["11:00"])
}

func TestExecute_ExcludeAppointmentForwardedToFilter(t *testing.T) {
	appts := &stubAppointmentRepo{}
	uc := NewUseCase(appts, &stubSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, nopLogger{})

	excludeID := int64(42)
	_, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: testDate, ExcludeAppointmentID: &excludeID})
	require.NoError(t, err)

	require.NotNil(t, appts.gotFilter.ExcludeAppointmentID)
	assert.Equal(t, excludeID, *appts.gotFilter.ExcludeAppointmentID)
}

func TestExecute_StoredSettingsDriveTheGrid(t *testing.T) {
	raw, err := json.Marshal(map[string]interface{}{
		"monday": map[string]string{"start": "10:00", "end": "12:00"},
	})
	require.NoError(t, err)

	settings := &domain.CenterSettings{
		UserID:              1,
		AppointmentDuration: 60,
		WorkingHoursRaw:     raw,
	}
	uc := NewUseCase(&stubAppointmentRepo{}, &stubSettingsRepo{settings: settings}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, 60, resp.BaseDurationMinutes)
	require.Len(t, resp.Slots, 2)
	assert.Equal(t, at(10, 0), resp.Slots[0].Start)
	assert.Equal(t, at(11, 0), resp.Slots[1].Start)
}

func TestExecute_MalformedWorkingHoursFallBackToDefaults(t *testing.T) {
	settings := &domain.CenterSettings{
		UserID:              1,
		AppointmentDuration: 30,
		WorkingHoursRaw:     json.RawMessage(`{broken`),
	}
	uc := NewUseCase(&stubAppointmentRepo{}, &stubSettingsRepo{settings: settings}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: testDate})
	require.NoError(t, err)
	assert.Len(t, resp.Slots, 14)
}

func TestExecute_ClosedDayYieldsEmptyGrid(t *testing.T) {
	raw := json.RawMessage(`{"monday": {"enabled": false, "start": "09:00", "end": "18:00"}}`)
	settings := &domain.CenterSettings{UserID: 1, AppointmentDuration: 30, WorkingHoursRaw: raw}

	appts := &stubAppointmentRepo{err: errors.New("must not be called")}
	uc := NewUseCase(appts, &stubSettingsRepo{settings: settings}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: testDate})
	require.NoError(t, err)
	assert.Empty(t, resp.Slots)
}

func TestExecute_RepeatedCallsReturnIdenticalGrid(t *testing.T) {
	appts := &stubAppointmentRepo{
		appointments: []*domain.Appointment{
			{ID: 4, UserID: 1, AppointmentDate: at(10, 0), Status: domain.StatusScheduled},
			{ID: 5, UserID: 1, AppointmentDate: at(15, 30), Status: domain.StatusConfirmed},
		},
	}
	uc := NewUseCase(appts, &stubSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, nopLogger{})

	first, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: testDate})
	require.NoError(t, err)
	second, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, first.Slots, second.Slots)
}

func TestExecute_ValidationErrors(t *testing.T) {
	uc := NewUseCase(&stubAppointmentRepo{}, &stubSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 0, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: 1, Date: testDate, DurationMinutes: -30})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}

func TestExecute_RepositoryErrorIsInternal(t *testing.T) {
	appts := &stubAppointmentRepo{err: errors.New("connection refused")}
	uc := NewUseCase(appts, &stubSettingsRepo{err: settingsRepo.ErrSettingsNotFound}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: testDate})
	assert.ErrorIs(t, err, ErrInternal)
}
