package breaker

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// JobStore хранилище заказов
type JobStore interface {
	QueryJobs(ctx context.Context, filter domain.JobsFilter) ([]*domain.CommittedJob, error)
}

// WorkingHoursStore хранилище рабочих часов
type WorkingHoursStore interface {
	GetWorkingHours(ctx context.Context, handymanID string) (*domain.WorkingHoursPolicy, error)
	SetWorkingHours(ctx context.Context, handymanID string, policy domain.WorkingHoursPolicy) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
}
