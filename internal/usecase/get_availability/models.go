package get_availability

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request модель запроса на получение доступности мастера по дням
type Request struct {
	HandymanID string    // ID мастера
	RangeStart time.Time // Первый день периода (включительно)
	RangeEnd   time.Time // Последний день периода (включительно)
}

// Response модель ответа со списком дней
// Выходные дни в Slots отсутствуют
type Response struct {
	HandymanID string
	Policy     domain.WorkingHoursPolicy
	Slots      []domain.AvailabilitySlot
}
