package find_next_slot

import "fmt"

func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.PreferredDate.IsZero() {
		return fmt.Errorf("%w: preferred date is required", ErrInvalidInput)
	}
	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: %d minutes", ErrInvalidDuration, req.DurationMinutes)
	}
	return nil
}
