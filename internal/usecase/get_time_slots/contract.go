package get_time_slots

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// JobRepository интерфейс хранилища заказов
type JobRepository interface {
	QueryJobs(ctx context.Context, filter domain.JobsFilter) ([]*domain.CommittedJob, error)
}

// WorkingHoursRepository интерфейс хранилища рабочих часов
type WorkingHoursRepository interface {
	// GetWorkingHours возвращает domain.ErrPolicyNotFound, если рабочие часы не настроены
	GetWorkingHours(ctx context.Context, handymanID string) (*domain.WorkingHoursPolicy, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
