package check_conflict

import "fmt"

func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.RequestedStart.IsZero() {
		return fmt.Errorf("%w: requested start is required", ErrInvalidInput)
	}
	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: %d minutes", ErrInvalidDuration, req.DurationMinutes)
	}
	if req.ExcludeAppointmentID != nil && *req.ExcludeAppointmentID <= 0 {
		return fmt.Errorf("%w: excludeAppointmentID must be positive", ErrInvalidInput)
	}
	return nil
}
