package create_appointment

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/CTC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/CTC-ScheduleService/internal/domain"
	createAppointment "github.com/m04kA/CTC-ScheduleService/internal/usecase/create_appointment"
)

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

type stubUseCase struct {
	resp   *createAppointment.Response
	err    error
	gotReq *createAppointment.Request
}

func (s *stubUseCase) Execute(_ context.Context, req *createAppointment.Request) (*createAppointment.Response, error) {
	s.gotReq = req
	return s.resp, s.err
}

func serve(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/appointments", strings.NewReader(body))
	req.Header.Set(middleware.HeaderUserID, "1")
	rec := httptest.NewRecorder()
	middleware.Auth(nopLogger{})(http.HandlerFunc(h.Handle)).ServeHTTP(rec, req)
	return rec
}

const validBody = `{"clientId": 200, "date": "2026-03-02", "startTime": "10:00", "isOnlineBooking": true}`

func TestHandle_Created(t *testing.T) {
	created := &domain.Appointment{
		ID:              101,
		UserID:          1,
		ClientID:        200,
		AppointmentDate: time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC),
		Status:          domain.StatusScheduled,
		IsOnlineBooking: true,
		CreatedAt:       time.Now(),
	}
	uc := &stubUseCase{resp: &createAppointment.Response{Appointment: created}}
	h := NewHandler(uc, nopLogger{})

	rec := serve(h, validBody)

	require.Equal(t, http.StatusCreated, rec.Code)

	require.NotNil(t, uc.gotReq)
	assert.Equal(t, int64(1), uc.gotReq.UserID)
	assert.Equal(t, int64(200), uc.gotReq.ClientID)
	assert.Equal(t, created.AppointmentDate, uc.gotReq.AppointmentDate)

	var body AppointmentResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	assert.Equal(t, int64(101), body.ID)
	assert.Equal(t, "2026-03-02", body.Date)
	assert.Equal(t, "10:00", body.StartTime)
	assert.Equal(t, "scheduled", body.Status)
}

func TestHandle_BadBody(t *testing.T) {
	h := NewHandler(&stubUseCase{}, nopLogger{})
	assert.Equal(t, http.StatusBadRequest, serve(h, `{not json`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, `{"clientId": 1, "date": "today", "startTime": "10:00"}`).Code)
	assert.Equal(t, http.StatusBadRequest, serve(h, `{"clientId": 1, "date": "2026-03-02", "startTime": "10am"}`).Code)
}

func TestHandle_ErrorMapping(t *testing.T) {
	cases := []struct {
		err  error
		code int
	}{
		{createAppointment.ErrSlotNotAvailable, http.StatusConflict},
		{createAppointment.ErrTooSoon, http.StatusConflict},
		{createAppointment.ErrDateInPast, http.StatusBadRequest},
		{createAppointment.ErrInvalidDuration, http.StatusBadRequest},
		{createAppointment.ErrInvalidInput, http.StatusBadRequest},
		{createAppointment.ErrInternal, http.StatusInternalServerError},
	}

	for _, tc := range cases {
		h := NewHandler(&stubUseCase{err: tc.err}, nopLogger{})
		assert.Equal(t, tc.code, serve(h, validBody).Code, "error %v", tc.err)
	}
}
