package get_settings

import (
	"net/http"

	"github.com/m04kA/CTC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/CTC-ScheduleService/internal/api/middleware"
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

// Handle GET /api/v1/settings
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /settings - Missing user id in context")
		handlers.RespondInternalError(w)
		return
	}

	result, err := h.service.Get(r.Context(), userID)
	if err != nil {
		h.logger.Error("GET /settings - Failed to get settings: user_id=%d, error=%v", userID, err)
		handlers.RespondInternalError(w)
		return
	}

	h.logger.Info("GET /settings - Settings retrieved: user_id=%d, source=%s", userID, result.WorkingHoursSource)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}
