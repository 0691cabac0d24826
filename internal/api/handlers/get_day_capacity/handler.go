package get_day_capacity

import (
	"errors"
	"net/http"

	"github.com/m04kA/CTC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/CTC-ScheduleService/internal/api/middleware"
	getDayCapacity "github.com/m04kA/CTC-ScheduleService/internal/usecase/get_day_capacity"
)

const (
	msgMissingDate     = "date is required"
	msgInvalidDate     = "invalid date format, expected YYYY-MM-DD"
	msgInvalidDuration = "invalid slot duration"
)

type Handler struct {
	useCase GetDayCapacityUseCase
	logger  Logger
}

func NewHandler(useCase GetDayCapacityUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/day-capacity
// Query params: date (required, YYYY-MM-DD)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /schedule/day-capacity - Missing user id in context")
		handlers.RespondInternalError(w)
		return
	}

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /schedule/day-capacity - Missing date: user_id=%d", userID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(userID, dateStr)
	if err != nil {
		h.logger.Warn("GET /schedule/day-capacity - Invalid date: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getDayCapacity.ErrInvalidInput):
			h.logger.Warn("GET /schedule/day-capacity - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidDate)

		case errors.Is(err, getDayCapacity.ErrInvalidDuration):
			h.logger.Warn("GET /schedule/day-capacity - Invalid duration: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("GET /schedule/day-capacity - Failed to get capacity: user_id=%d, date=%s, error=%v",
				userID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/day-capacity - Capacity retrieved: user_id=%d, date=%s, total=%d, occupied=%d",
		userID, dateStr, result.Capacity.TotalSlots, result.Capacity.OccupiedSlots)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
