package check_conflict

import (
	"strconv"
	"time"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
	checkConflict "github.com/m04kA/CTC-ScheduleService/internal/usecase/check_conflict"
)

// ConflictResponse HTTP response model
type ConflictResponse struct {
	HasConflict            bool                    `json:"hasConflict"`
	ConflictingAppointment *ConflictingAppointment `json:"conflictingAppointment,omitempty"`
	SuggestedSlots         []SuggestedSlot         `json:"suggestedSlots"`
}

// ConflictingAppointment идентифицирует запись, занявшую запрошенное время
type ConflictingAppointment struct {
	ID        int64  `json:"id"`
	ClientID  int64  `json:"clientId"`
	StartTime string `json:"startTime"`
	Status    string `json:"status"`
}

// SuggestedSlot одна свободная альтернатива
type SuggestedSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkConflict.Response) *ConflictResponse {
	out := &ConflictResponse{
		HasConflict:    resp.HasConflict,
		SuggestedSlots: make([]SuggestedSlot, len(resp.SuggestedSlots)),
	}

	if resp.ConflictingAppointment != nil {
		out.ConflictingAppointment = &ConflictingAppointment{
			ID:        resp.ConflictingAppointment.ID,
			ClientID:  resp.ConflictingAppointment.ClientID,
			StartTime: resp.ConflictingAppointment.AppointmentDate.Format(domain.TimeFormat),
			Status:    string(resp.ConflictingAppointment.Status),
		}
	}

	for i, s := range resp.SuggestedSlots {
		out.SuggestedSlots[i] = SuggestedSlot{
			StartTime: s.Start.Format(domain.TimeFormat),
			EndTime:   s.End.Format(domain.TimeFormat),
		}
	}

	return out
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(userID int64, dateStr, timeStr, durationStr, excludeIDStr string) (*checkConflict.Request, error) {
	start, err := time.Parse(domain.DateFormat+" "+domain.TimeFormat, dateStr+" "+timeStr)
	if err != nil {
		return nil, err
	}

	req := &checkConflict.Request{
		UserID:         userID,
		RequestedStart: start,
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
