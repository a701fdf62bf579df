package check_conflict

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request модель запроса на проверку конфликта расписания
type Request struct {
	HandymanID    string     // ID мастера
	StartTime     time.Time  // Желаемое время начала
	EndTime       *time.Time // Время окончания (опционально, приоритетнее длительности)
	DurationHours *float64   // Длительность в часах (опционально, по умолчанию 4)
	ExcludeJobID  *string    // ID заказа, который не учитывается (редактирование этого же заказа)
}

// Response модель ответа с результатом проверки
type Response struct {
	HandymanID      string
	Window          domain.TimeWindow
	HasConflict     bool
	ConflictingJobs []*domain.CommittedJob
}
