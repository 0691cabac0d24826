package update_settings

import (
	"errors"
	"net/http"

	"github.com/m04kA/CTC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/CTC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/CTC-ScheduleService/internal/service/settings"
)

const (
	msgInvalidRequestBody  = "invalid request body"
	msgInvalidDuration     = "appointment duration out of allowed bounds"
	msgInvalidNotice       = "booking notice out of allowed bounds"
	msgInvalidWorkingHours = "invalid working hours configuration"
)

type Handler struct {
	service SettingsService
	logger  Logger
}

func NewHandler(service SettingsService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Error("PUT /settings - Missing user id in context")
		handlers.RespondInternalError(w)
		return
	}

	var req UpdateSettingsRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /settings - Invalid request body: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Update(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		switch {
		case errors.Is(err, settings.ErrInvalidDuration):
			h.logger.Warn("PUT /settings - Invalid duration: user_id=%d, duration=%d", userID, req.AppointmentDuration)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		case errors.Is(err, settings.ErrInvalidWorkingHours):
			h.logger.Warn("PUT /settings - Invalid working hours: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidWorkingHours)

		case errors.Is(err, settings.ErrInvalidInput):
			h.logger.Warn("PUT /settings - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidNotice)

		default:
			h.logger.Error("PUT /settings - Failed to update settings: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /settings - Settings updated: user_id=%d, duration=%d, notice=%d",
		userID, result.AppointmentDuration, result.MinBookingNotice)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
