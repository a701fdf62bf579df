package suggest_alternatives

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request модель запроса на подбор альтернативных дат
type Request struct {
	HandymanID    string    // ID мастера
	DesiredStart  time.Time // Желаемое время начала
	DurationHours *float64  // Длительность заказа, nil - domain.DefaultJobDurationHours
	ExcludeJobID  *string   // Заказ, который сейчас редактируется
	MaxDays       *int      // Глубина поиска в каждую сторону, nil - domain.DefaultMaxSearchDays
	MaxResults    *int      // Максимум вариантов, nil - domain.DefaultMaxSuggestions
}

// Response модель ответа со списком альтернатив (по возрастанию даты)
type Response struct {
	HandymanID  string
	Suggestions []domain.AlternativeSuggestion
}
