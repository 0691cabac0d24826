package create_appointment

import (
	"time"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
	createAppointment "github.com/m04kA/CTC-ScheduleService/internal/usecase/create_appointment"
)

// CreateAppointmentRequest HTTP request model
type CreateAppointmentRequest struct {
	ClientID        int64   `json:"clientId"`
	Date            string  `json:"date"`      // YYYY-MM-DD
	StartTime       string  `json:"startTime"` // HH:MM
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	IsOnlineBooking bool    `json:"isOnlineBooking"`
}

// ToUseCaseRequest создает запрос use case, объединяя дату и время
func (r *CreateAppointmentRequest) ToUseCaseRequest(userID int64) (*createAppointment.Request, error) {
	start, err := time.Parse(domain.DateFormat+" "+domain.TimeFormat, r.Date+" "+r.StartTime)
	if err != nil {
		return nil, err
	}

	return &createAppointment.Request{
		UserID:          userID,
		ClientID:        r.ClientID,
		AppointmentDate: start,
		DurationMinutes: r.DurationMinutes,
		Notes:           r.Notes,
		IsOnlineBooking: r.IsOnlineBooking,
	}, nil
}

// AppointmentResponse HTTP response model
type AppointmentResponse struct {
	ID              int64   `json:"id"`
	ClientID        int64   `json:"clientId"`
	Date            string  `json:"date"`
	StartTime       string  `json:"startTime"`
	DurationMinutes *int    `json:"durationMinutes,omitempty"`
	Status          string  `json:"status"`
	Notes           *string `json:"notes,omitempty"`
	IsOnlineBooking bool    `json:"isOnlineBooking"`
	CreatedAt       string  `json:"createdAt"`
}

// FromUseCaseResponse конвертирует созданную запись в HTTP response
func FromUseCaseResponse(resp *createAppointment.Response) *AppointmentResponse {
	a := resp.Appointment
	return &AppointmentResponse{
		ID:              a.ID,
		ClientID:        a.ClientID,
		Date:            a.AppointmentDate.Format(domain.DateFormat),
		StartTime:       a.AppointmentDate.Format(domain.TimeFormat),
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		Notes:           a.Notes,
		IsOnlineBooking: a.IsOnlineBooking,
		CreatedAt:       a.CreatedAt.Format(time.RFC3339),
	}
}
