package appointments

import (
	"context"
	"errors"
	"fmt"

	appointmentRepo "github.com/m04kA/CTC-ScheduleService/internal/infra/storage/appointment"
	"github.com/m04kA/CTC-ScheduleService/internal/service/appointments/models"
)

// Service покрывает чтение и отмену записей.
// Создание идёт через usecase create_appointment, потому что ему нужна
// транзакционная перепроверка доступности.
type Service struct {
	appointmentRepo AppointmentRepository
	logger          Logger
}

// NewService создает сервис записей
func NewService(appointmentRepo AppointmentRepository, logger Logger) *Service {
	return &Service{
		appointmentRepo: appointmentRepo,
		logger:          logger,
	}
}

// GetByID получает одну запись в рамках вызывающего центра
func (s *Service) GetByID(ctx context.Context, id, userID int64) (*models.AppointmentResponse, error) {
	s.logger.Info("GetByID: fetching appointment id=%d for user=%d", id, userID)

	appt, err := s.appointmentRepo.GetByID(ctx, id, userID)
	if err != nil {
		if errors.Is(err, appointmentRepo.ErrAppointmentNotFound) {
			s.logger.Warn("GetByID: appointment id=%d not found for user=%d", id, userID)
			return nil, ErrAppointmentNotFound
		}
		s.logger.Error("GetByID: repository error for appointment id=%d: %v", id, err)
		return nil, fmt.Errorf("%w: GetByID - repository error: %v", ErrInternal, err)
	}

	return models.FromDomainAppointment(appt), nil
}

// List возвращает записи центра с опциональными фильтрами по периоду и статусу
func (s *Service) List(ctx context.Context, req *models.GetAppointmentsRequest) (*models.AppointmentListResponse, error) {
	s.logger.Info("List: fetching appointments for user=%d", req.UserID)

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid filter for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	list, err := s.appointmentRepo.GetWithFilter(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for user=%d: %v", req.UserID, err)
		return nil, fmt.Errorf("%w: List - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("List: fetched %d appointments for user=%d", len(list), req.UserID)
	return models.FromDomainAppointmentList(list), nil
}

// Cancel переводит запись в cancelled, освобождая её слот
func (s *Service) Cancel(ctx context.Context, id, userID int64) error {
	s.logger.Info("Cancel: cancelling appointment id=%d for user=%d", id, userID)

	if err := s.appointmentRepo.Cancel(ctx, id, userID); err != nil {
		switch {
		case errors.Is(err, appointmentRepo.ErrAppointmentNotFound):
			s.logger.Warn("Cancel: appointment id=%d not found for user=%d", id, userID)
			return ErrAppointmentNotFound
		case errors.Is(err, appointmentRepo.ErrCannotCancel):
			s.logger.Warn("Cancel: appointment id=%d cannot be cancelled", id)
			return ErrCannotCancel
		default:
			s.logger.Error("Cancel: repository error for appointment id=%d: %v", id, err)
			return fmt.Errorf("%w: Cancel - repository error: %v", ErrInternal, err)
		}
	}

	s.logger.Info("Cancel: cancelled appointment id=%d", id)
	return nil
}
