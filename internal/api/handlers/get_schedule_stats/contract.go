package get_schedule_stats

import (
	"context"

	getScheduleStats "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_schedule_stats"
)

type GetScheduleStatsUseCase interface {
	Execute(ctx context.Context, req *getScheduleStats.Request) (*getScheduleStats.Response, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
