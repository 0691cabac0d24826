package create_appointment

import (
	"fmt"
	"time"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
)

func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.ClientID <= 0 {
		return fmt.Errorf("%w: clientID must be positive", ErrInvalidInput)
	}
	if req.AppointmentDate.IsZero() {
		return fmt.Errorf("%w: appointment date is required", ErrInvalidInput)
	}
	if req.DurationMinutes != nil {
		d := *req.DurationMinutes
		if d < domain.MinAppointmentDurationMinutes || d > domain.MaxAppointmentDurationMinutes {
			return fmt.Errorf("%w: %d minutes, allowed %d-%d", ErrInvalidDuration,
				d, domain.MinAppointmentDurationMinutes, domain.MaxAppointmentDurationMinutes)
		}
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return fmt.Errorf("%w: notes exceed %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}
	return nil
}

// validateBookingTime применяет окно минимального notice
func validateBookingTime(appointmentDate, now time.Time, minNoticeHours int) error {
	if appointmentDate.Before(now) {
		return ErrDateInPast
	}
	if minNoticeHours <= 0 {
		return nil
	}
	earliest := now.Add(time.Duration(minNoticeHours) * time.Hour)
	if appointmentDate.Before(earliest) {
		return fmt.Errorf("%w: requires %d hours of notice", ErrTooSoon, minNoticeHours)
	}
	return nil
}
