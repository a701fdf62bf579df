package suggest_alternatives

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

const (
	labelToday     = "today"
	labelTomorrow  = "tomorrow"
	labelYesterday = "yesterday"
	labelDayFormat = "Jan 2"
)

// dateLabel формирует подпись даты относительно now:
// today / tomorrow / yesterday, название дня недели в пределах недели, иначе "Jan 2"
func dateLabel(date, now time.Time) string {
	days := calendarDaysBetween(now, date)

	switch {
	case days == 0:
		return labelToday
	case days == 1:
		return labelTomorrow
	case days == -1:
		return labelYesterday
	case days > -domain.DaysPerWeek && days < domain.DaysPerWeek:
		return date.Weekday().String()
	default:
		return date.Format(labelDayFormat)
	}
}

// calendarDaysBetween количество календарных дней от from до to в часовом поясе to
func calendarDaysBetween(from, to time.Time) int {
	a := domain.StartOfDay(from.In(to.Location()))
	b := domain.StartOfDay(to)
	// Round сглаживает переходы на летнее время
	return int(b.Sub(a).Round(24*time.Hour) / (24 * time.Hour))
}

func newSuggestion(date, now time.Time) domain.AlternativeSuggestion {
	return domain.AlternativeSuggestion{
		Date:      date,
		Label:     dateLabel(date, now),
		DayOfWeek: date.Weekday().String(),
	}
}
