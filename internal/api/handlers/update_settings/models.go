package update_settings

import (
	"github.com/m04kA/CTC-ScheduleService/internal/domain"
	"github.com/m04kA/CTC-ScheduleService/internal/service/settings/models"
)

// UpdateSettingsRequest HTTP request model. null в workingHours оставляет
// сохранённое расписание.
type UpdateSettingsRequest struct {
	AppointmentDuration int                  `json:"appointmentDuration"`
	MinBookingNotice    int                  `json:"minBookingNotice"`
	WorkingHours        *domain.WeekSchedule `json:"workingHours,omitempty"`
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateSettingsRequest) ToServiceRequest(userID int64) *models.UpdateSettingsRequest {
	return &models.UpdateSettingsRequest{
		UserID:              userID,
		AppointmentDuration: r.AppointmentDuration,
		MinBookingNotice:    r.MinBookingNotice,
		WorkingHours:        r.WorkingHours,
	}
}

// SettingsResponse HTTP response model
type SettingsResponse struct {
	AppointmentDuration int                 `json:"appointmentDuration"`
	MinBookingNotice    int                 `json:"minBookingNotice"`
	WorkingHours        domain.WeekSchedule `json:"workingHours"`
	WorkingHoursSource  string              `json:"workingHoursSource"`
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.SettingsResponse) *SettingsResponse {
	return &SettingsResponse{
		AppointmentDuration: resp.AppointmentDuration,
		MinBookingNotice:    resp.MinBookingNotice,
		WorkingHours:        resp.WorkingHours,
		WorkingHoursSource:  resp.WorkingHoursSource,
	}
}
