package models

import (
	"time"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
)

// GetAppointmentsRequest запрос списка записей центра
type GetAppointmentsRequest struct {
	UserID           int64
	StartDate        *time.Time
	EndDate          *time.Time
	Status           *string
	IncludeCancelled bool
}

// ToDomainFilter конвертирует запрос в фильтр репозитория
func (r *GetAppointmentsRequest) ToDomainFilter() (domain.AppointmentsFilter, error) {
	filter := domain.AppointmentsFilter{
		UserID:           r.UserID,
		StartDate:        r.StartDate,
		EndDate:          r.EndDate,
		IncludeCancelled: r.IncludeCancelled,
	}
	if r.Status != nil {
		status := domain.AppointmentStatus(*r.Status)
		if !domain.ValidStatus(status) {
			return domain.AppointmentsFilter{}, ErrUnknownStatus
		}
		filter.Status = &status
	}
	return filter, nil
}

// AppointmentResponse представление записи на уровне сервиса
type AppointmentResponse struct {
	ID              int64
	UserID          int64
	ClientID        int64
	AppointmentDate time.Time
	DurationMinutes *int
	Status          string
	Notes           *string
	IsOnlineBooking bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// AppointmentListResponse список записей с их количеством
type AppointmentListResponse struct {
	Appointments []AppointmentResponse
	Total        int
}

// FromDomainAppointment конвертирует доменную запись
func FromDomainAppointment(a *domain.Appointment) *AppointmentResponse {
	return &AppointmentResponse{
		ID:              a.ID,
		UserID:          a.UserID,
		ClientID:        a.ClientID,
		AppointmentDate: a.AppointmentDate,
		DurationMinutes: a.DurationMinutes,
		Status:          string(a.Status),
		Notes:           a.Notes,
		IsOnlineBooking: a.IsOnlineBooking,
		CreatedAt:       a.CreatedAt,
		UpdatedAt:       a.UpdatedAt,
	}
}

// FromDomainAppointmentList конвертирует список доменных записей
func FromDomainAppointmentList(list []*domain.Appointment) *AppointmentListResponse {
	out := make([]AppointmentResponse, len(list))
	for i, a := range list {
		out[i] = *FromDomainAppointment(a)
	}
	return &AppointmentListResponse{
		Appointments: out,
		Total:        len(out),
	}
}
