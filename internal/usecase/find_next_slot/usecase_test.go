package find_next_slot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
	getAvailableSlots "github.com/m04kA/CTC-ScheduleService/internal/usecase/get_available_slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

// dayFunc позволяет каждому тесту задать доступность по календарным дням
type stubSlots struct {
	dayFunc       func(date time.Time) *getAvailableSlots.Response
	err           error
	requestedDays []time.Time
}

func (s *stubSlots) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.requestedDays = append(s.requestedDays, req.Date)
	if s.err != nil {
		return nil, s.err
	}
	return s.dayFunc(req.Date), nil
}

func emptyDay(date time.Time) *getAvailableSlots.Response {
	return &getAvailableSlots.Response{Date: date, BaseDurationMinutes: 30, Slots: []domain.TimeSlot{}}
}

func dayWithFreeSlot(date time.Time, hour int) *getAvailableSlots.Response {
	start := time.Date(date.Year(), date.Month(), date.Day(), hour, 0, 0, 0, date.Location())
	return &getAvailableSlots.Response{
		Date:                date,
		BaseDurationMinutes: 30,
		Slots: []domain.TimeSlot{
			{Start: start.Add(-time.Hour), End: start.Add(-30 * time.Minute), Available: false},
			{Start: start, End: start.Add(30 * time.Minute), Available: true},
		},
	}
}

// Понедельник
var monday = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

// Пятница перед выходными
var friday = time.Date(2026, 3, 6, 0, 0, 0, 0, time.UTC)

func TestExecute_FirstDayHasAvailability(t *testing.T) {
	slots := &stubSlots{dayFunc: func(d time.Time) *getAvailableSlots.Response {
		return dayWithFreeSlot(d, 10)
	}}
	uc := NewUseCase(slots, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, PreferredDate: monday})
	require.NoError(t, err)

	require.NotNil(t, resp.Slot)
	assert.Equal(t, monday.Add(10*time.Hour), resp.Slot.Start)
	assert.Len(t, slots.requestedDays, 1)
}

func TestExecute_SkipsFullDays(t *testing.T) {
	target := monday.AddDate(0, 0, 2)
	slots := &stubSlots{dayFunc: func(d time.Time) *getAvailableSlots.Response {
		if d.Equal(target) {
			return dayWithFreeSlot(d, 9)
		}
		return emptyDay(d)
	}}
	uc := NewUseCase(slots, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, PreferredDate: monday})
	require.NoError(t, err)

	require.NotNil(t, resp.Slot)
	assert.Equal(t, target.Add(9*time.Hour), resp.Slot.Start)
}

func TestExecute_NeverLandsOnWeekend(t *testing.T) {
	slots := &stubSlots{dayFunc: func(d time.Time) *getAvailableSlots.Response {
		if d.Equal(friday) {
			return emptyDay(d)
		}
		return dayWithFreeSlot(d, 9)
	}}
	uc := NewUseCase(slots, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, PreferredDate: friday})
	require.NoError(t, err)

	require.NotNil(t, resp.Slot)
	// Суббота и воскресенье пропускаются без вызова провайдера
	assert.Equal(t, time.Monday, resp.Slot.Start.Weekday())
	for _, d := range slots.requestedDays {
		wd := d.Weekday()
		assert.NotEqual(t, time.Saturday, wd)
		assert.NotEqual(t, time.Sunday, wd)
	}
}

func TestExecute_HorizonExhausted(t *testing.T) {
	slots := &stubSlots{dayFunc: emptyDay}
	uc := NewUseCase(slots, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, PreferredDate: monday})
	require.NoError(t, err)

	assert.Nil(t, resp.Slot)
	// Горизонт 30 дней минус выходные внутри него
	assert.LessOrEqual(t, len(slots.requestedDays), domain.MaxSearchHorizonDays)
}

func TestExecute_ProviderErrorStopsSearch(t *testing.T) {
	uc := NewUseCase(&stubSlots{err: errors.New("boom")}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 1, PreferredDate: monday})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&stubSlots{dayFunc: emptyDay}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: 0, PreferredDate: monday})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: 1, PreferredDate: monday, DurationMinutes: -5})
	assert.ErrorIs(t, err, ErrInvalidDuration)
}
