package find_next_slot

import (
	"strconv"
	"time"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
	findNextSlot "github.com/m04kA/CTC-ScheduleService/internal/usecase/find_next_slot"
)

// NextSlotResponse HTTP response model. Slot равен null, когда в пределах
// горизонта поиска нет доступности.
type NextSlotResponse struct {
	Found bool      `json:"found"`
	Slot  *NextSlot `json:"slot,omitempty"`
}

// NextSlot самый ранний свободный слот
type NextSlot struct {
	Date      string `json:"date"`
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *findNextSlot.Response) *NextSlotResponse {
	if resp.Slot == nil {
		return &NextSlotResponse{Found: false}
	}

	return &NextSlotResponse{
		Found: true,
		Slot: &NextSlot{
			Date:      resp.Slot.Start.Format(domain.DateFormat),
			StartTime: resp.Slot.Start.Format(domain.TimeFormat),
			EndTime:   resp.Slot.End.Format(domain.TimeFormat),
		},
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(userID int64, dateStr, durationStr string) (*findNextSlot.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	req := &findNextSlot.Request{
		UserID:        userID,
		PreferredDate: date,
	}

	if durationStr != "" {
		duration, err := strconv.Atoi(durationStr)
		if err != nil {
			return nil, err
		}
		req.DurationMinutes = duration
	}

	return req, nil
}
