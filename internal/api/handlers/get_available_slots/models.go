package get_available_slots

import (
	"strconv"
	"time"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
	getAvailableSlots "github.com/m04kA/CTC-ScheduleService/internal/usecase/get_available_slots"
)

// AvailableSlotsResponse HTTP response model
type AvailableSlotsResponse struct {
	Date                     string `json:"date"`
	BaseDurationMinutes      int    `json:"baseDurationMinutes"`
	RequestedDurationMinutes int    `json:"requestedDurationMinutes"`
	Slots                    []Slot `json:"slots"`
}

// Slot одна позиция сетки с вердиктом о доступности
type Slot struct {
	StartTime                string `json:"startTime"`
	EndTime                  string `json:"endTime"`
	Available                bool   `json:"available"`
	ConflictingAppointmentID *int64 `json:"conflictingAppointmentId,omitempty"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailableSlots.Response) *AvailableSlotsResponse {
	slots := make([]Slot, len(resp.Slots))
	for i, s := range resp.Slots {
		slots[i] = Slot{
			StartTime:                s.Start.Format(domain.TimeFormat),
			EndTime:                  s.End.Format(domain.TimeFormat),
			Available:                s.Available,
			ConflictingAppointmentID: s.ConflictingAppointmentID,
		}
	}

	return &AvailableSlotsResponse{
		Date:                     resp.Date.Format(domain.DateFormat),
		BaseDurationMinutes:      resp.BaseDurationMinutes,
		RequestedDurationMinutes: resp.RequestedDurationMinutes,
		Slots:                    slots,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(userID int64, dateStr, durationStr, excludeIDStr string) (*getAvailableSlots.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &getAvailableSlots.Request{
		UserID: userID,
		Date:   date,
	}

	if durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil {
			return nil, err
		}
		req.DurationMinutes = duration
	}

	if excludeIDStr != "" {
		excludeID, err := strconv.ParseInt(excludeIDStr, 10, 64)
		if err != nil {
			return nil, err
		}
		req.ExcludeAppointmentID = &excludeID
	}

	return req, nil
}
