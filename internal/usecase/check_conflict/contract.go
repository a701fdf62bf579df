package check_conflict

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// JobRepository интерфейс хранилища заказов
// Фильтрация по статусам - ответственность хранилища
type JobRepository interface {
	QueryJobs(ctx context.Context, filter domain.JobsFilter) ([]*domain.CommittedJob, error)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
