package get_day_capacity

import (
	"time"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
	getDayCapacity "github.com/m04kA/CTC-ScheduleService/internal/usecase/get_day_capacity"
)

// DayCapacityResponse HTTP response model
type DayCapacityResponse struct {
	Date            string  `json:"date"`
	TotalSlots      int     `json:"totalSlots"`
	AvailableSlots  int     `json:"availableSlots"`
	OccupiedSlots   int     `json:"occupiedSlots"`
	UtilizationRate float64 `json:"utilizationRate"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getDayCapacity.Response) *DayCapacityResponse {
	return &DayCapacityResponse{
		Date:            resp.Date.Format(domain.DateFormat),
		TotalSlots:      resp.Capacity.TotalSlots,
		AvailableSlots:  resp.Capacity.AvailableSlots,
		OccupiedSlots:   resp.Capacity.OccupiedSlots,
		UtilizationRate: resp.Capacity.UtilizationRate,
	}
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(userID int64, dateStr string) (*getDayCapacity.Request, error) {
	date, err := time.Parse(domain.DateFormat, dateStr)
	if err != nil {
		return nil, err
	}

	return &getDayCapacity.Request{
		UserID: userID,
		Date:   date,
	}, nil
}
