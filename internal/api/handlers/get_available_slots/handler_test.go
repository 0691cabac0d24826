package get_available_slots

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CTC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/CTC-ScheduleService/internal/domain"
	getAvailableSlots "github.com/m04kA/CTC-ScheduleService/internal/usecase/get_available_slots"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	resp   *getAvailableSlots.Response
	err    error
	gotReq *getAvailableSlots.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *getAvailableSlots.Request) (*getAvailableSlots.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

// serve прогоняет запрос через auth middleware, чтобы handler видел
// user id так же, как в production
func serve(h *Handler, target, userID string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, target, nil)
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	rec := httptest.NewRecorder()
	middleware.Auth(nopLogger{})(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	start := time.Date(2026, 3, 2, 9, 0, 0, 0, time.UTC)
	uc := &stubUseCase{resp: &getAvailableSlots.Response{
		Date:                     start,
		BaseDurationMinutes:      30,
		RequestedDurationMinutes: 60,
		Slots: []domain.TimeSlot{
			{Start: start, End: start.Add(30 * time.Minute), Available: true},
			{Start: start.Add(30 * time.Minute), End: start.Add(time.Hour), Available: false},
		},
	}}
	h := NewHandler(uc, nopLogger{})

	rec := serve(h, "/api/v1/schedule/available-slots?date=2026-03-02&duration=60&excludeAppointmentId=5", "1")

	require.Equal(t, http.StatusOK, rec.Code)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(1), uc.gotReq.UserID)
	assert.Equal(t, 60, uc.gotReq.DurationMinutes)
	require.NotNil(t, uc.gotReq.ExcludeAppointmentID)
	assert.Equal(t, int64(5), *uc.gotReq.ExcludeAppointmentID)

	var body AvailableSlotsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, "2026-03-02", body.Date)
	require.Len(t, body.Slots, 2)
	assert.Equal(t, "09:00", body.Slots[0].StartTime)
	assert.True(t, body.Slots[0].Available)
	assert.False(t, body.Slots[1].Available)
}

func TestHandle_MissingDate(t *testing.T) {
	h := NewHandler(&stubUseCase{}, nopLogger{})
	rec := serve(h, "/api/v1/schedule/available-slots", "1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadDate(t *testing.T) {
	h := NewHandler(&stubUseCase{}, nopLogger{})
	rec := serve(h, "/api/v1/schedule/available-slots?date=03-02-2026", "1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_BadDuration(t *testing.T) {
	h := NewHandler(&stubUseCase{}, nopLogger{})
	rec := serve(h, "/api/v1/schedule/available-slots?date=2026-03-02&duration=long", "1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHandle_Unauthorized(t *testing.T) {
	h := NewHandler(&stubUseCase{}, nopLogger{})
	rec := serve(h, "/api/v1/schedule/available-slots?date=2026-03-02", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestHandle_UseCaseErrors(t *testing.T) {
	h := NewHandler(&stubUseCase{err: getAvailableSlots.ErrInvalidDuration}, nopLogger{})
	rec := serve(h, "/api/v1/schedule/available-slots?date=2026-03-02", "1")
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	h = NewHandler(&stubUseCase{err: getAvailableSlots.ErrInternal}, nopLogger{})
	rec = serve(h, "/api/v1/schedule/available-slots?date=2026-03-02", "1")
	assert.Equal(t, http.StatusInternalServerError, rec.Code)
}
