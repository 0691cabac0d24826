package cancel_appointment

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gorilla/mux"

	"github.com/m04kA/CTC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/CTC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/CTC-ScheduleService/internal/service/appointments"
)

const (
	msgInvalidAppointmentID = "invalid appointment ID"
	msgNotFound             = "appointment not found"
	msgCannotCancel         = "appointment cannot be cancelled"
)

type Handler struct {
	service AppointmentService
	logger  Logger
}

func NewHandler(service AppointmentService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PATCH /api/v1/appointments/{appointmentId}/cancel
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Error("PATCH /appointments/{id}/cancel - Missing user id in context")
		handlers.RespondInternalError(w)
		return
	}

	vars := mux.Vars(r)
	appointmentID, err := strconv.ParseInt(vars["appointmentId"], 10, 64)
	if err != nil {
		h.logger.Warn("PATCH /appointments/{id}/cancel - Invalid appointment ID: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidAppointmentID)
		return
	}

	err = h.service.Cancel(r.Context(), appointmentID, userID)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrAppointmentNotFound):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Not found: user_id=%d, appointment_id=%d",
				userID, appointmentID)
			handlers.RespondNotFound(w, msgNotFound)

		case errors.Is(err, appointments.ErrCannotCancel):
			h.logger.Warn("PATCH /appointments/{id}/cancel - Cannot cancel: user_id=%d, appointment_id=%d",
				userID, appointmentID)
			handlers.RespondError(w, http.StatusConflict, msgCannotCancel)

		default:
			h.logger.Error("PATCH /appointments/{id}/cancel - Failed to cancel: user_id=%d, appointment_id=%d, error=%v",
				userID, appointmentID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PATCH /appointments/{id}/cancel - Appointment cancelled: user_id=%d, appointment_id=%d",
		userID, appointmentID)
	handlers.RespondJSON(w, http.StatusOK, nil)
}
