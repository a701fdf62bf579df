package suggest_alternatives

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// ConflictChecker проверка пересечения окна с расписанием мастера
// Реализуется check_conflict.UseCase
type ConflictChecker interface {
	Check(ctx context.Context, handymanID string, window domain.TimeWindow, excludeJobID string) (*domain.ConflictResult, error)
}

// WorkingHoursRepository интерфейс хранилища рабочих часов
type WorkingHoursRepository interface {
	GetWorkingHours(ctx context.Context, handymanID string) (*domain.WorkingHoursPolicy, error)
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
