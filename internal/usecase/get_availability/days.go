package get_availability

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// buildDailySlots формирует по одному слоту на каждый рабочий день периода [first, last]
//
// Выходные дни пропускаются (слот не формируется).
// Заказы сопоставляются с днём по календарной дате начала, а не по пересечению окон:
// заказ, переходящий через полночь, учитывается только в день начала.
func buildDailySlots(first, last time.Time, policy domain.WorkingHoursPolicy, jobs []*domain.CommittedJob) []domain.AvailabilitySlot {
	slots := make([]domain.AvailabilitySlot, 0)

	for day := domain.StartOfDay(first); !day.After(last); day = day.AddDate(0, 0, 1) {
		if policy.IsDayOff(day) {
			continue
		}

		working := policy.WorkingWindow(day)
		count := countJobsOnDay(day, jobs)

		slots = append(slots, domain.AvailabilitySlot{
			Date:          day,
			StartTime:     working.Start,
			EndTime:       working.End,
			Available:     count == 0,
			ConflictCount: count,
		})
	}

	return slots
}

// countJobsOnDay подсчитывает заказы, начинающиеся в календарный день day
func countJobsOnDay(day time.Time, jobs []*domain.CommittedJob) int {
	count := 0
	for _, job := range jobs {
		if job.ScheduledOn(day) {
			count++
		}
	}
	return count
}
