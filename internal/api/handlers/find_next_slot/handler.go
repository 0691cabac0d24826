package find_next_slot

import (
	"errors"
	"net/http"

	"github.com/m04kA/CTC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/CTC-ScheduleService/internal/api/middleware"
	findNextSlot "github.com/m04kA/CTC-ScheduleService/internal/usecase/find_next_slot"
)

const (
	msgMissingDate     = "date is required"
	msgInvalidParams   = "invalid query parameters, expected date=YYYY-MM-DD and numeric duration"
	msgInvalidDuration = "invalid slot duration"
)

type Handler struct {
	useCase FindNextSlotUseCase
	logger  Logger
}

func NewHandler(useCase FindNextSlotUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/schedule/next-available
// Query params: date (required, YYYY-MM-DD), duration (optional, minutes)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.UserIDFromContext(r.Context())
	if !ok {
		h.logger.Error("GET /schedule/next-available - Missing user id in context")
		handlers.RespondInternalError(w)
		return
	}

	query := r.URL.Query()

	dateStr := query.Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /schedule/next-available - Missing date: user_id=%d", userID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(userID, dateStr, query.Get("duration"))
	if err != nil {
		h.logger.Warn("GET /schedule/next-available - Invalid parameters: user_id=%d, error=%v", userID, err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, findNextSlot.ErrInvalidInput):
			h.logger.Warn("GET /schedule/next-available - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, findNextSlot.ErrInvalidDuration):
			h.logger.Warn("GET /schedule/next-available - Invalid duration: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidDuration)

		default:
			h.logger.Error("GET /schedule/next-available - Failed to find slot: user_id=%d, date=%s, error=%v",
				userID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /schedule/next-available - Search completed: user_id=%d, date=%s, found=%t",
		userID, dateStr, result.Slot != nil)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
