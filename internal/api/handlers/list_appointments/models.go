package list_appointments

import (
	"strconv"
	"time"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
	"github.com/m04kA/CTC-ScheduleService/internal/service/appointments/models"
	"github.com/m04kA/CTC-ScheduleService/pkg/ptr"
)

// AppointmentListResponse HTTP response model
type AppointmentListResponse struct {
	Appointments []Appointment `json:"appointments"`
	Total        int           `json:"total"`
}

// Appointment один элемент списка
type Appointment struct {
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

// FromServiceResponse конвертирует список сервиса в HTTP response
func FromServiceResponse(resp *models.AppointmentListResponse) *AppointmentListResponse {
	out := &AppointmentListResponse{
		Appointments: make([]Appointment, len(resp.Appointments)),
		Total:        resp.Total,
	}
	for i, a := range resp.Appointments {
		out.Appointments[i] = Appointment{
			ID:              a.ID,
			ClientID:        a.ClientID,
			Date:            a.AppointmentDate.Format(domain.DateFormat),
			StartTime:       a.AppointmentDate.Format(domain.TimeFormat),
			DurationMinutes: a.DurationMinutes,
			Status:          a.Status,
			Notes:           a.Notes,
			IsOnlineBooking: a.IsOnlineBooking,
			CreatedAt:       a.CreatedAt.Format(time.RFC3339),
		}
	}
	return out
}

// ToServiceRequest формирует запрос к сервису из query параметров
func ToServiceRequest(userID int64, startDateStr, endDateStr, status, includeCancelledStr string) (*models.GetAppointmentsRequest, error) {
	req := &models.GetAppointmentsRequest{UserID: userID}

	if startDateStr != "" {
		startDate, err := time.Parse(domain.DateFormat, startDateStr)
		if err != nil {
			return nil, err
		}
		req.StartDate = &startDate
	}

	if endDateStr != "" {
		endDate, err := time.Parse(domain.DateFormat, endDateStr)
		if err != nil {
			return nil, err
		}
		// endDate на wire включительная; верхняя граница фильтра
		// исключающая
		req.EndDate = ptr.Ptr(endDate.AddDate(0, 0, 1))
	}

	if status != "" {
		req.Status = &status
	}

	if includeCancelledStr != "" {
		includeCancelled, err := strconv.ParseBool(includeCancelledStr)
		if err != nil {
			return nil, err
		}
		req.IncludeCancelled = includeCancelled
	}

	return req, nil
}
