package check_conflict

import (
	"errors"
	"net/http"

	"github.com/m04kA/CTC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/CTC-ScheduleService/internal/api/middleware"
	checkConflict "github.com/m04kA/CTC-ScheduleService/internal/usecase/check_conflict"
)

const (
	msgMissingDate     = "date is required"
	msgMissingTime     = "time is required"
	msgInvalidParams   = "invalid query parameters, expected date=YYYY-MM-DD, time=HH:MM and numeric duration"
	msgInvalidDuration = "invalid slot duration"
)

type Handler struct {
	useCase CheckConflictUseCase
	logger  Logger
}

func NewHandler(useCase CheckConflictUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/conflict
// Query params: date (required, YYYY-MM-DD), time (required, HH:MM),
// duration (optional, minutes), excludeAppointmentId (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /schedule/conflict - Missing user id in context")
		handlers.RespondInternalError(w)
		return
	}

	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /schedule/conflict - Missing date: user_id=%d", userID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	timeStr := query.Get("time")
	if timeStr == "" {
		h.logger.Warn("GET /schedule/conflict - Missing time: user_id=%d", userID)
		handlers.RespondBadRequest(w, msgMissingTime)
		return
	}

	useCaseReq, err := ToUseCaseRequest(userID, dateStr, timeStr, query.Get("duration"), query.Get("excludeAppointmentId"))
	if err != nil {
		h.logger.Warn("GET /schedule/conflict - Invalid parameters: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, checkConflict.ErrInvalidInput):
			h.logger.Warn("GET /schedule/conflict - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, checkConflict.ErrInvalidDuration):
			h.logger.Warn("GET /schedule/conflict - Invalid duration: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("GET /schedule/conflict - Failed to check conflict: user_id=%d, date=%s, time=%s, error=%v",
				userID, dateStr, timeStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/conflict - Conflict checked: user_id=%d, date=%s, time=%s, has_conflict=%t",
		userID, dateStr, timeStr, result.HasConflict)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
