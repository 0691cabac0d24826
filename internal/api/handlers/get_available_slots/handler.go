package get_available_slots

import (
	"errors"
	"net/http"

	"github.com/m04kA/CTC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/CTC-ScheduleService/internal/api/middleware"
	getAvailableSlots "github.com/m04kA/CTC-ScheduleService/internal/usecase/get_available_slots"
)

const (
	msgMissingDate     = "date is required"
	msgInvalidParams   = "invalid query parameters, expected date=YYYY-MM-DD and numeric duration"
	msgInvalidDuration = "invalid slot duration"
)

type Handler struct {
	useCase GetAvailableSlotsUseCase
	logger  Logger
}

func NewHandler(useCase GetAvailableSlotsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/available-slots
// Query params: date (required, YYYY-MM-DD), duration (optional, minutes),
// excludeAppointmentId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /schedule/available-slots - Missing user id in context")
		handlers.RespondInternalError(w)
		return
	}

	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /schedule/available-slots - Missing date: user_id=%d", userID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(userID, dateStr, query.Get("duration"), query.Get("excludeAppointmentId"))
	if err != nil {
		h.logger.Warn("GET /schedule/available-slots - Invalid parameters: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailableSlots.ErrInvalidInput):
			h.logger.Warn("GET /schedule/available-slots - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, getAvailableSlots.ErrInvalidDuration):
			h.logger.Warn("GET /schedule/available-slots - Invalid duration: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("GET /schedule/available-slots - Failed to get slots: user_id=%d, date=%s, error=%v",
				userID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/available-slots - Slots retrieved: user_id=%d, date=%s, slots_count=%d",
		userID, dateStr, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
