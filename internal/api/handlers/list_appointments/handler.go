package list_appointments

import (
	"errors"
	"net/http"

	"github.com/m04kA/CTC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/CTC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/CTC-ScheduleService/internal/service/appointments"
)

const (
	msgInvalidParams = "invalid query parameters, expected startDate/endDate=YYYY-MM-DD, includeCancelled=true|false"
	msgInvalidStatus = "unknown appointment status"
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

// Handle GET /api/v1/appointments
// Query params: startDate, endDate (YYYY-MM-DD, inclusive), status,
// includeCancelled (all optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /appointments - Missing user id in context")
		handlers.RespondInternalError(w)
		return
	}

	query := r.URL.Query()
	serviceReq, err := ToServiceRequest(userID,
		query.Get("startDate"), query.Get("endDate"),
		query.Get("status"), query.Get("includeCancelled"))
	if err != nil {
		h.logger.Warn("GET /appointments - Invalid parameters: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, appointments.ErrInvalidInput):
			h.logger.Warn("GET /appointments - Invalid status: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		default:
			h.logger.Error("GET /appointments - Failed to list appointments: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /appointments - Appointments listed: user_id=%d, total=%d", userID, result.Total)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
