package notifier

import "time"

// ConfirmationRequest payload, отправляемый сервису уведомлений при
// создании записи
type ConfirmationRequest struct {
	UserID          int64     `json:"user_id"`
	ClientID        int64     `json:"client_id"`
	AppointmentID   int64     `json:"appointment_id"`
	AppointmentDate time.Time `json:"appointment_date"`
	DurationMinutes int       `json:"duration_minutes"`
	IsOnlineBooking bool      `json:"is_online_booking"`
}

// ErrorResponse тело ошибки, возвращаемое сервисом уведомлений
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}
