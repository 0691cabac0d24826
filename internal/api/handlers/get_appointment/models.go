package get_appointment

import (
	"time"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
	"github.com/m04kA/CTC-ScheduleService/internal/service/appointments/models"
)

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
	UpdatedAt       string  `json:"updatedAt"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(a *models.AppointmentResponse) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              a.ID,
		ClientID:        a.ClientID,
		Date:            a.AppointmentDate.Format(domain.DateFormat),
		StartTime:       a.AppointmentDate.Format(domain.TimeFormat),
		DurationMinutes: a.DurationMinutes,
		Status:          a.Status,
		Notes:           a.Notes,
		IsOnlineBooking: a.IsOnlineBooking,
		CreatedAt:       a.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       a.UpdatedAt.Format(time.RFC3339),
	}
}
