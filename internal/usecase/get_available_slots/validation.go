package get_available_slots

import "fmt"

// validateRequest валидирует запрос до любого обращения к хранилищу.
// Отрицательная запрошенная длительность - ошибка класса конфигурации и
// сразу даёт ErrInvalidDuration.
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	if req.DurationMinutes < 0 {
		return fmt.Errorf("%w: %d minutes", ErrInvalidDuration, req.DurationMinutes)
	}
	if req.ExcludeAppointmentID != nil && *req.ExcludeAppointmentID <= 0 {
		return fmt.Errorf("%w: excludeAppointmentID must be positive", ErrInvalidInput)
	}
	return nil
}
