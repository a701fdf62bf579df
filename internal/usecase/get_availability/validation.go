package get_availability

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.HandymanID == "" {
		return fmt.Errorf("%w: handymanID is required", ErrInvalidInput)
	}

	if req.RangeStart.IsZero() || req.RangeEnd.IsZero() {
		return fmt.Errorf("%w: rangeStart and rangeEnd are required", ErrInvalidInput)
	}

	first := domain.StartOfDay(req.RangeStart)
	last := domain.StartOfDay(req.RangeEnd)
	if last.Before(first) {
		return fmt.Errorf("%w: rangeEnd must not be before rangeStart", ErrInvalidInput)
	}

	if last.After(first.AddDate(0, 0, domain.MaxAvailabilityRangeDays-1)) {
		return fmt.Errorf("%w: at most %d days allowed", ErrRangeTooLong, domain.MaxAvailabilityRangeDays)
	}

	return nil
}
