package find_next_slot

import (
	"context"

	findNextSlot "github.com/m04kA/CTC-ScheduleService/internal/usecase/find_next_slot"
)

type FindNextSlotUseCase interface {
	Execute(ctx context.Context, req *findNextSlot.Request) (*findNextSlot.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
