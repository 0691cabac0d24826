package get_day_capacity

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
	getAvailableSlots "github.com/m04kA/CTC-ScheduleService/internal/usecase/get_available_slots"
)

// UseCase сворачивает слоты дня в счётчики и процент загрузки.
// Чистый агрегат на чтение; пороги отображения остаются в UI.
type UseCase struct {
	slots  SlotsProvider
	logger Logger
}

// NewUseCase создает use case
func NewUseCase(slots SlotsProvider, logger Logger) *UseCase {
	return &UseCase{slots: slots, logger: logger}
}

// Execute размечает сетку дня по базовой длительности центра и считает.
// Закрытый день даёт нулевые счётчики и нулевую загрузку.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetDayCapacity: user=%d, date=%s", req.UserID, req.Date.Format(domain.DateFormat))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetDayCapacity: validation failed: %v", err)
		return nil, err
	}

	slotsResp, err := uc.slots.Execute(ctx, &getAvailableSlots.Request{
		UserID: req.UserID,
		Date:   req.Date,
	})
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
		default:
			return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
		}
	}

	total := len(slotsResp.Slots)
	available := 0
	for i := range slotsResp.Slots {
		if slotsResp.Slots[i].Available {
			available++
		}
	}
	occupied := total - available

	capacity := domain.DayCapacity{
		TotalSlots:     total,
		AvailableSlots: available,
		OccupiedSlots:  occupied,
	}
	if total > 0 {
		capacity.UtilizationRate = float64(occupied) / float64(total) * 100
	}

	uc.logger.Info("GetDayCapacity: user=%d, date=%s, %d/%d occupied (%.1f%%)",
		req.UserID, req.Date.Format(domain.DateFormat), occupied, total, capacity.UtilizationRate)

	return &Response{
		Date:     req.Date,
		Capacity: capacity,
	}, nil
}

func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}
	return nil
}
