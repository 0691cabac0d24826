package create_appointment

import (
	"errors"
	"net/http"

	"github.com/m04kA/CTC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/CTC-ScheduleService/internal/api/middleware"
	createAppointment "github.com/m04kA/CTC-ScheduleService/internal/usecase/create_appointment"
)

const (
	msgInvalidRequestBody = "invalid request body"
	msgInvalidDateTime    = "invalid date or time, expected date=YYYY-MM-DD and startTime=HH:MM"
	msgInvalidInput       = "invalid appointment data"
	msgInvalidDuration    = "invalid appointment duration"
	msgSlotNotAvailable   = "requested time slot is not available"
	msgTooSoon            = "requested time is below the minimum booking notice"
	msgDateInPast         = "requested time is in the past"
)

type Handler struct {
	useCase CreateAppointmentUseCase
	logger  Logger
}

func NewHandler(useCase CreateAppointmentUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/appointments
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Error("POST /appointments - Missing user id in context")
		handlers.RespondInternalError(w)
		return
	}

	var req CreateAppointmentRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /appointments - Invalid request body: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(userID)
	if err != nil {
		h.logger.Warn("POST /appointments - Invalid date/time: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidDateTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, createAppointment.ErrSlotNotAvailable):
			h.logger.Warn("POST /appointments - Slot not available: user_id=%d, client_id=%d, date=%s %s",
				userID, req.ClientID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgSlotNotAvailable)

		case errors.Is(err, createAppointment.ErrTooSoon):
			h.logger.Warn("POST /appointments - Too soon: user_id=%d, date=%s %s", userID, req.Date, req.StartTime)
			handlers.RespondError(w, http.StatusConflict, msgTooSoon)

		case errors.Is(err, createAppointment.ErrDateInPast):
			h.logger.Warn("POST /appointments - Date in past: user_id=%d, date=%s %s", userID, req.Date, req.StartTime)
			handlers.RespondBadRequest(w, msgDateInPast)

		case errors.Is(err, createAppointment.ErrInvalidDuration):
			h.logger.Warn("POST /appointments - Invalid duration: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, createAppointment.ErrInvalidInput):
			h.logger.Warn("POST /appointments - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /appointments - Failed to create appointment: user_id=%d, client_id=%d, error=%v",
				userID, req.ClientID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /appointments - Appointment created: user_id=%d, appointment_id=%d, date=%s %s",
		userID, result.Appointment.ID, req.Date, req.StartTime)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
