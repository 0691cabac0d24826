package get_day_capacity

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

type stubSlots struct {
	resp   *getAvailableSlots.Response
	err    error
	gotReq *getAvailableSlots.Request
}

func (s *stubSlots) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

var testDate = time.Date(2026, 3, 2, 0, 0, 0, 0, time.UTC)

func grid(availability ...bool) *getAvailableSlots.Response {
	slots := make([]domain.TimeSlot, len(availability))
	cursor := testDate.Add(9 * time.Hour)
	for i, a := range availability {
		slots[i] = domain.TimeSlot{Start: cursor, End: cursor.Add(30 * time.Minute), Available: a}
		cursor = cursor.Add(30 * time.Minute)
	}
	return &getAvailableSlots.Response{Date: testDate, BaseDurationMinutes: 30, Slots: slots}
}

func TestExecute_CountsAndRate(t *testing.T) {
	slots := &stubSlots{resp: grid(true, false, false, true)}
	uc := NewUseCase(slots, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: testDate})
	require.NoError(t, err)

	assert.Equal(t, 4, resp.Capacity.TotalSlots)
	assert.Equal(t, 2, resp.Capacity.AvailableSlots)
	assert.Equal(t, 2, resp.Capacity.OccupiedSlots)
	assert.InDelta(t, 50.0, resp.Capacity.UtilizationRate, 0.001)

	// Ёмкость всегда считается по базовой длительности центра
	assert.Zero(t, slots.gotReq.DurationMinutes)
}

func TestExecute_FullyBooked(t *testing.T) {
	uc := NewUseCase(&stubSlots{resp: grid(false, false)}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: testDate})
	require.NoError(t, err)
	assert.InDelta(t, 100.0, resp.Capacity.UtilizationRate, 0.001)
}

func TestExecute_ClosedDay(t *testing.T) {
	uc := NewUseCase(&stubSlots{resp: grid()}, nopLogger{})

	resp, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: testDate})
	require.NoError(t, err)

	assert.Zero(t, resp.Capacity.TotalSlots)
	assert.Zero(t, resp.Capacity.UtilizationRate)
}

func TestExecute_ErrorsPropagate(t *testing.T) {
	uc := NewUseCase(&stubSlots{err: getAvailableSlots.ErrInvalidDuration}, nopLogger{})
	_, err := uc.Execute(context.Background(), &Request{UserID: 1, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidDuration)

	uc = NewUseCase(&stubSlots{err: errors.New("boom")}, nopLogger{})
	_, err = uc.Execute(context.Background(), &Request{UserID: 1, Date: testDate})
	assert.ErrorIs(t, err, ErrInternal)
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(&stubSlots{resp: grid()}, nopLogger{})

	_, err := uc.Execute(context.Background(), &Request{UserID: -1, Date: testDate})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{UserID: 1})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
