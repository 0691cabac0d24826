package check_conflict

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
	appointmentRepo "github.com/m04kA/CTC-ScheduleService/internal/infra/storage/appointment"
	"github.com/m04kA/CTC-ScheduleService/internal/schedule"
	getAvailableSlots "github.com/m04kA/CTC-ScheduleService/internal/usecase/get_available_slots"
)

// UseCase отвечает на вопрос "занято ли это точное время" и предлагает
// альтернативы
type UseCase struct {
	slots           SlotsProvider
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewUseCase создает use case
func NewUseCase(slots SlotsProvider, appointmentRepo AppointmentRepository, logger Logger) *UseCase {
	return &UseCase{
		slots:           slots,
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// Execute вычисляет размеченную сетку дня, ищет слот, точно совпадающий с
// запрошенным началом, а при отсутствии точного совпадения (время вне
// сетки или вне рабочих часов) откатывается на прямую интервальную
// проверку по записям дня. Альтернативы считаются в обоих случаях.
// "Нет конфликта" - успешный исход, а не ошибка.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckConflict: user=%d, start=%s, duration=%d",
		req.UserID, req.RequestedStart.Format(time.RFC3339), req.DurationMinutes)

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckConflict: validation failed: %v", err)
		return nil, err
	}

	slotsResp, err := uc.slots.Execute(ctx, &getAvailableSlots.Request{
		UserID:               req.UserID,
		Date:                 req.RequestedStart,
		DurationMinutes:      req.DurationMinutes,
		ExcludeAppointmentID: req.ExcludeAppointmentID,
	})
	if err != nil {
		// Маппинг sentinel-ошибок сохраняет классификацию slots usecase
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			return nil, fmt.Errorf("%w: %v", ErrInvalidDuration, err)
		default:
			return nil, fmt.Errorf("%w: failed to compute slots: %v", ErrInternal, err)
		}
	}

	resp := &Response{
		SuggestedSlots: suggestions(slotsResp.Slots),
	}

	requested := findExactSlot(slotsResp.Slots, req.RequestedStart)
	if requested == nil {
		// Запрошенное время вне сетки слотов; проверяем занятость напрямую,
		// чтобы запрос 10:15 против 30-минутной сетки видел реальные пересечения
		if err := uc.offGridCheck(ctx, req, slotsResp, resp); err != nil {
			return nil, err
		}
		return resp, nil
	}

	if requested.Available {
		uc.logger.Info("CheckConflict: no conflict for user=%d at %s",
			req.UserID, req.RequestedStart.Format(time.RFC3339))
		return resp, nil
	}

	resp.HasConflict = true
	if requested.ConflictingAppointmentID != nil {
		appt, err := uc.appointmentRepo.GetByID(ctx, *requested.ConflictingAppointmentID, req.UserID)
		if err != nil {
			if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
				// Запись исчезла между двумя чтениями; вердикт остаётся,
				// опускаются только детали
				uc.logger.Warn("CheckConflict: conflicting appointment id=%d vanished for user=%d",
					*requested.ConflictingAppointmentID, req.UserID)
			} else {
				uc.logger.Error("CheckConflict: failed to get appointment id=%d: %v",
					*requested.ConflictingAppointmentID, err)
				return nil, fmt.Errorf("%w: failed to get conflicting appointment: %v", ErrInternal, err)
			}
		} else {
			resp.ConflictingAppointment = appt
		}
	}

	uc.logger.Info("CheckConflict: conflict for user=%d at %s, %d alternatives",
		req.UserID, req.RequestedStart.Format(time.RFC3339), len(resp.SuggestedSlots))

	return resp, nil
}

// offGridCheck обрабатывает времена, не совпавшие ни с одним слотом сетки
func (uc *UseCase) offGridCheck(ctx context.Context, req *Request, slotsResp *getAvailableSlots.Response, resp *Response) error {
	duration := req.DurationMinutes
	if duration == 0 {
		duration = slotsResp.BaseDurationMinutes
	}

	dayStart, dayEnd := schedule.DayRange(req.RequestedStart)
	appointments, err := uc.appointmentRepo.GetWithFilter(ctx, domain.AppointmentsFilter{
		UserID:               req.UserID,
		StartDate:            &dayStart,
		EndDate:              &dayEnd,
		ExcludeAppointmentID: req.ExcludeAppointmentID,
	})
	if err != nil {
		uc.logger.Error("CheckConflict: off-grid check failed for user=%d: %v", req.UserID, err)
		return fmt.Errorf("%w: failed to check off-grid conflict: %v", ErrInternal, err)
	}

	if appt := schedule.ConflictingAppointmentAt(req.RequestedStart, duration, appointments, slotsResp.BaseDurationMinutes); appt != nil {
		resp.HasConflict = true
		resp.ConflictingAppointment = appt
		uc.logger.Info("CheckConflict: off-grid conflict for user=%d at %s with appointment id=%d",
			req.UserID, req.RequestedStart.Format(time.RFC3339), appt.ID)
	}
	return nil
}

// findExactSlot возвращает слот, чьё начало равно запрошенному моменту
func findExactSlot(slots []domain.TimeSlot, start time.Time) *domain.TimeSlot {
	for i := range slots {
		if slots[i].Start.Equal(start) {
			return &slots[i]
		}
	}
	return nil
}

// suggestions возвращает до лимита доступных слотов, ближайшие первыми.
// Сетка уже отсортирована по возрастанию, так что префикс и есть ранжирование.
func suggestions(slots []domain.TimeSlot) []domain.TimeSlot {
	available := schedule.AvailableOnly(slots)
	if len(available) > domain.MaxSuggestedSlots {
		available = available[:domain.MaxSuggestedSlots]
	}
	return available
}
