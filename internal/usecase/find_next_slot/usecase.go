package find_next_slot

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
	"github.com/m04kA/CTC-ScheduleService/internal/schedule"
	getAvailableSlots "github.com/m04kA/CTC-ScheduleService/internal/usecase/get_available_slots"
)

// UseCase идёт вперёд по дням в поисках первого доступного слота
type UseCase struct {
	slots  SlotsProvider
	logger Logger
}

// NewUseCase создает use case
func NewUseCase(slots SlotsProvider, logger Logger) *UseCase {
	return &UseCase{slots: slots, logger: logger}
}

// Execute проверяет до MaxSearchHorizonDays дней начиная с желаемой даты.
// Выходные пропускаются безусловно, так что результат никогда не суббота
// и не воскресенье; дни с выключенными рабочими часами дают пустую сетку
// и проходятся естественно. Слоты внутри дня уже по возрастанию, так что
// первый доступный и есть самый ранний.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("FindNextAvailableSlot: user=%d, preferred=%s, duration=%d",
		req.UserID, req.PreferredDate.Format(domain.DateFormat), req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("FindNextAvailableSlot: validation failed: %v", err)
		return nil, err
	}

	for dayOffset := 0; dayOffset < domain.MaxSearchHorizonDays; dayOffset++ {
		checkDate := req.PreferredDate.AddDate(0, 0, dayOffset)
		if schedule.IsWeekend(checkDate) {
			continue
		}

		slotsResp, err := uc.slots.Execute(ctx, &getAvailableSlots.Request{
			UserID:          req.UserID,
			Date:            checkDate,
			DurationMinutes: req.DurationMinutes,
		})
		if err != nil {
			switch {
			case errors.Is(err, getAvailableSlots.ErrInvalidInput):
				return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
			case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
				return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
			default:
				return nil, fmt.Errorf("%w: failed to compute slots for %s: %v",
					ErrInternal, checkDate.Format(domain.DateFormat), err)
			}
		}

		for i := range slotsResp.Slots {
			if slotsResp.Slots[i].Available {
				slot := slotsResp.Slots[i]
				uc.logger.Info("FindNextAvailableSlot: found slot for user=%d on %s",
					req.UserID, slot.Start.Format(domain.DateFormat))
				return &Response{Slot: &slot}, nil
			}
		}
	}

	uc.logger.Info("FindNextAvailableSlot: no availability within %d days for user=%d",
		domain.MaxSearchHorizonDays, req.UserID)

	return &Response{Slot: nil}, nil
}
