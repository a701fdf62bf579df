package check_conflict

import (
	"context"

	checkConflict "github.com/m04kA/SMC-ScheduleService/internal/usecase/check_conflict"
)

type CheckConflictUseCase interface {
	Execute(ctx context.Context, req *checkConflict.Request) (*checkConflict.Response, error)
}

type Metrics interface {
	ObserveConflictCheck(hasConflict bool)
	ObserveStoreFailure(operation string)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
