package working_hours

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// WorkingHoursRepository интерфейс хранилища рабочих часов мастера
type WorkingHoursRepository interface {
	// GetWorkingHours возвращает domain.ErrPolicyNotFound, если рабочие часы не настроены
	GetWorkingHours(ctx context.Context, handymanID string) (*domain.WorkingHoursPolicy, error)
	// SetWorkingHours записывает политику целиком (одна запись на мастера)
	SetWorkingHours(ctx context.Context, handymanID string, policy domain.WorkingHoursPolicy) error
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
