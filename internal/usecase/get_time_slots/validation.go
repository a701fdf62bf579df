package get_time_slots

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.HandymanID == "" {
		return fmt.Errorf("%w: handymanID is required", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	if req.SlotHours != nil {
		hours := *req.SlotHours
		if hours < domain.MinSlotHours || hours > domain.MaxSlotHours {
			return fmt.Errorf("%w: slotHours must be in %.1f..%.1f, got %.2f",
				ErrInvalidSlotHours, domain.MinSlotHours, domain.MaxSlotHours, hours)
		}
	}

	return nil
}
