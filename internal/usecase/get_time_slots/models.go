package get_time_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request модель запроса на получение слотов мастера на день
type Request struct {
	HandymanID string    // ID мастера
	Date       time.Time // Дата (время игнорируется)
	SlotHours  *float64  // Длина слота в часах, nil - domain.DefaultSlotHours
}

// Response модель ответа со списком слотов
type Response struct {
	HandymanID string
	Date       time.Time
	SlotHours  float64
	DayOff     bool // true - выходной день, Slots пустой
	Slots      []domain.TimeSlot
}
