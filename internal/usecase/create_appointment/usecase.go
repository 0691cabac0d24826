package create_appointment

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/CTC-ScheduleService/internal/domain"
	settingsRepo "github.com/m04kA/CTC-ScheduleService/internal/infra/storage/settings"
	"github.com/m04kA/CTC-ScheduleService/internal/integrations/notifier"
	"github.com/m04kA/CTC-ScheduleService/internal/schedule"
)

// UseCase создаёт записи. Движок на чтение только находит конфликты;
// настоящее взаимное исключение живёт здесь: доступность перепроверяется
// внутри serializable транзакции с блокировкой строк дня, так что два
// конкурентных запроса на одно окно не могут закоммититься оба.
type UseCase struct {
	appointmentRepo AppointmentRepository
	settingsRepo    SettingsRepository
	notifierClient  NotifierClient
	txManager       TransactionManager
	timeProvider    TimeProvider
	logger          Logger
}

// NewUseCase создает use case
func NewUseCase(
	appointmentRepo AppointmentRepository,
	settingsRepo SettingsRepository,
	notifierClient NotifierClient,
	txManager TransactionManager,
	logger Logger,
) *UseCase {
	return &UseCase{
		appointmentRepo: appointmentRepo,
		settingsRepo:    settingsRepo,
		notifierClient:  notifierClient,
		txManager:       txManager,
		timeProvider:    &RealTimeProvider{},
		logger:          logger,
	}
}

// Execute валидирует запрос, применяет минимальный notice центра, затем
// атомарно перепроверяет окно и вставляет. Подтверждение отправляется
// после коммита; сбои доставки логируются и никогда не откатывают
// бронирование.
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateAppointment: user=%d, client=%d, date=%s",
		req.UserID, req.ClientID, req.AppointmentDate.Format(time.RFC3339))

	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateAppointment: validation failed: %v", err)
		return nil, err
	}

	now := uc.timeProvider.Now()

	settings, err := uc.resolveSettings(ctx, req.UserID)
	if err != nil {
		return nil, err
	}
	baseDuration := settings.BaseDuration()

	if err := validateBookingTime(req.AppointmentDate, now, settings.MinBookingNotice); err != nil {
		uc.logger.Warn("CreateAppointment: booking time rejected for user=%d: %v", req.UserID, err)
		return nil, err
	}

	effectiveDuration := baseDuration
	if req.DurationMinutes != nil {
		effectiveDuration = *req.DurationMinutes
	}

	var result *domain.Appointment

	err = uc.txManager.DoSerializable(ctx, func(txCtx context.Context) error {
		dayStart, dayEnd := schedule.DayRange(req.AppointmentDate)
		appointments, err := uc.appointmentRepo.GetWithFilter(txCtx, domain.AppointmentsFilter{
			UserID:    req.UserID,
			StartDate: &dayStart,
			EndDate:   &dayEnd,
		})
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to get appointments: %v", err)
			return fmt.Errorf("%w: failed to get appointments: %v", ErrInternal, err)
		}

		if conflict := schedule.ConflictingAppointmentAt(
			req.AppointmentDate, effectiveDuration, appointments, baseDuration,
		); conflict != nil {
			uc.logger.Warn("CreateAppointment: slot taken for user=%d at %s by appointment id=%d",
				req.UserID, req.AppointmentDate.Format(time.RFC3339), conflict.ID)
			return ErrSlotNotAvailable
		}

		appt := &domain.Appointment{
			UserID:          req.UserID,
			ClientID:        req.ClientID,
			AppointmentDate: req.AppointmentDate,
			DurationMinutes: req.DurationMinutes,
			Status:          domain.StatusScheduled,
			Notes:           req.Notes,
			IsOnlineBooking: req.IsOnlineBooking,
		}

		created, err := uc.appointmentRepo.Create(txCtx, appt)
		if err != nil {
			uc.logger.Error("CreateAppointment: failed to create appointment: %v", err)
			return fmt.Errorf("%w: failed to create appointment: %v", ErrInternal, err)
		}

		result = created
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.logger.Info("CreateAppointment: created appointment id=%d for user=%d", result.ID, result.UserID)

	uc.sendConfirmation(ctx, result, effectiveDuration)

	return &Response{Appointment: result}, nil
}

func (uc *UseCase) sendConfirmation(ctx context.Context, appt *domain.Appointment, durationMinutes int) {
	err := uc.notifierClient.SendConfirmation(ctx, &notifier.ConfirmationRequest{
		UserID:          appt.UserID,
		ClientID:        appt.ClientID,
		AppointmentID:   appt.ID,
		AppointmentDate: appt.AppointmentDate,
		DurationMinutes: durationMinutes,
		IsOnlineBooking: appt.IsOnlineBooking,
	})
	if err != nil {
		uc.logger.Error("CreateAppointment: confirmation for appointment id=%d failed: %v", appt.ID, err)
	}
}

func (uc *UseCase) resolveSettings(ctx context.Context, userID int64) (*domain.CenterSettings, error) {
	settings, err := uc.settingsRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, settingsRepo.ErrSettingsNotFound) {
			uc.logger.Info("CreateAppointment: no settings for user=%d, using defaults", userID)
			return domain.DefaultCenterSettings(userID), nil
		}
		uc.logger.Error("CreateAppointment: failed to get settings for user=%d: %v", userID, err)
		return nil, fmt.Errorf("%w: failed to get settings: %v", ErrInternal, err)
	}
	return settings, nil
}
