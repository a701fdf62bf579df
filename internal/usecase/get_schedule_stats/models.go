package get_schedule_stats

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request модель запроса статистики
type Request struct {
	HandymanID string
}

// Response модель ответа со статистикой загрузки
type Response struct {
	HandymanID  string
	GeneratedAt time.Time
	Stats       domain.ScheduleStats
}
