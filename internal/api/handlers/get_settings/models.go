package get_settings

import (
	"github.com/m04kA/CTC-ScheduleService/internal/domain"
	"github.com/m04kA/CTC-ScheduleService/internal/service/settings/models"
)

// SettingsResponse HTTP response model. WorkingHoursSource показывает,
// пришло расписание из хранилища или из дефолтов.
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
