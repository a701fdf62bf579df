package check_conflict

import (
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.HandymanID == "" {
		return fmt.Errorf("%w: handymanID is required", ErrInvalidInput)
	}

	if req.StartTime.IsZero() {
		return fmt.Errorf("%w: startTime is required", ErrInvalidInput)
	}

	if req.DurationHours != nil && *req.DurationHours > domain.MaxJobDurationHours {
		return fmt.Errorf("%w: durationHours must not exceed %.0f", ErrInvalidInput, domain.MaxJobDurationHours)
	}

	return nil
}

// resolveWindow вычисляет проверяемое окно
// Явное время окончания приоритетнее длительности; без обоих используется длительность по умолчанию
// Некорректное окно (начало не раньше конца) возвращает domain.ErrInvalidWindow
func resolveWindow(req *Request) (domain.TimeWindow, error) {
	if req.EndTime != nil {
		return domain.NewTimeWindow(req.StartTime, *req.EndTime)
	}

	duration := domain.DefaultJobDurationHours
	if req.DurationHours != nil {
		duration = *req.DurationHours
	}

	return domain.NewTimeWindowForDuration(req.StartTime, duration)
}
