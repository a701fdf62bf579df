package get_time_slots

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// generateTimeSlots делит рабочее окно на слоты фиксированной длины
// Последний неполный слот обрезается по концу рабочего дня
//
// Пример для 08:00-18:00 и слота 3 часа:
// 08:00-11:00, 11:00-14:00, 14:00-17:00, 17:00-18:00
func generateTimeSlots(working domain.TimeWindow, slotLength time.Duration) []domain.TimeWindow {
	slots := make([]domain.TimeWindow, 0)
	if slotLength <= 0 {
		return slots
	}

	for start := working.Start; start.Before(working.End); start = start.Add(slotLength) {
		end := start.Add(slotLength)
		if end.After(working.End) {
			end = working.End
		}
		slots = append(slots, domain.TimeWindow{Start: start, End: end})
	}

	return slots
}

// markAvailability помечает слот занятым, если он реально пересекается с окном хотя бы одного заказа
//
// Примеры:
// - Слот 10:00-12:00, заказ 11:00-15:00 → занят
// - Слот 10:00-12:00, заказ 12:00-16:00 → свободен (граничат)
// - Слот 08:00-10:00, заказ вчера 22:00 + 12ч → занят (заказ переходит через полночь)
func markAvailability(slots []domain.TimeWindow, jobs []*domain.CommittedJob) []domain.TimeSlot {
	windows := make([]domain.TimeWindow, 0, len(jobs))
	for _, job := range jobs {
		// Заказы без времени начала не занимают слоты
		if w, ok := job.EffectiveWindow(); ok {
			windows = append(windows, w)
		}
	}

	result := make([]domain.TimeSlot, len(slots))
	for i, slot := range slots {
		result[i] = domain.TimeSlot{
			StartTime: slot.Start,
			EndTime:   slot.End,
			Available: !overlapsAny(slot, windows),
		}
	}

	return result
}

func overlapsAny(slot domain.TimeWindow, windows []domain.TimeWindow) bool {
	for _, w := range windows {
		if domain.Overlaps(slot, w) {
			return true
		}
	}
	return false
}
