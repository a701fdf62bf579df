package get_availability

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// JobRepository интерфейс хранилища заказов
type JobRepository interface {
	QueryJobs(ctx context.Context, filter domain.JobsFilter) ([]*domain.CommittedJob, error)
}

// WorkingHoursRepository интерфейс хранилища рабочих часов
// Возвращает domain.ErrPolicyNotFound, если мастер не настраивал рабочие часы
type WorkingHoursRepository interface {
	GetWorkingHours(ctx context.Context, handymanID string) (*domain.WorkingHoursPolicy, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
