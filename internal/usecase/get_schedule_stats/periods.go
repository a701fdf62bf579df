package get_schedule_stats

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// periods диапазоны выборки статистики
type periods struct {
	thisWeek domain.TimeWindow
	nextWeek domain.TimeWindow
	month    domain.TimeWindow
}

// buildPeriods вычисляет диапазоны относительно now
// Неделя начинается с воскресенья; месяц - StatsMonthDays дней начиная с сегодняшнего
func buildPeriods(now time.Time) periods {
	today := domain.StartOfDay(now)
	weekStart := today.AddDate(0, 0, -int(today.Weekday()))
	nextWeekStart := weekStart.AddDate(0, 0, domain.DaysPerWeek)

	return periods{
		thisWeek: domain.TimeWindow{Start: weekStart, End: nextWeekStart},
		nextWeek: domain.TimeWindow{Start: nextWeekStart, End: nextWeekStart.AddDate(0, 0, domain.DaysPerWeek)},
		month:    domain.TimeWindow{Start: today, End: today.AddDate(0, 0, domain.StatsMonthDays)},
	}
}

// sumHours суммирует длительность заказов (по умолчанию DefaultJobDurationHours)
func sumHours(jobs []*domain.CommittedJob) float64 {
	total := 0.0
	for _, job := range jobs {
		total += job.EffectiveDurationHours()
	}
	return total
}

// averageHours средняя длительность, 0 для пустого списка
func averageHours(jobs []*domain.CommittedJob) float64 {
	if len(jobs) == 0 {
		return 0
	}
	return sumHours(jobs) / float64(len(jobs))
}
