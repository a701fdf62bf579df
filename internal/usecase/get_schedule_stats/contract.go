package get_schedule_stats

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// JobRepository интерфейс хранилища заказов
type JobRepository interface {
	QueryJobs(ctx context.Context, filter domain.JobsFilter) ([]*domain.CommittedJob, error)
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct {
	Location *time.Location // nil - локальный часовой пояс
}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	if p.Location != nil {
		return time.Now().In(p.Location)
	}
	return time.Now()
}
