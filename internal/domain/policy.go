package domain

import (
	"fmt"
	"sort"
	"time"
)

// WorkingHoursPolicy рабочие часы и выходные дни мастера
// Часы задаются в диапазоне 0..23, выходные - как time.Weekday (0 = воскресенье)
type WorkingHoursPolicy struct {
	StartHour int
	EndHour   int
	DaysOff   []time.Weekday
}

// DefaultWorkingHoursPolicy политика, применяемая, когда мастер не настроил рабочие часы
func DefaultWorkingHoursPolicy() WorkingHoursPolicy {
	return WorkingHoursPolicy{
		StartHour: DefaultStartHour,
		EndHour:   DefaultEndHour,
		DaysOff:   []time.Weekday{time.Sunday},
	}
}

// Validate проверяет инварианты политики
func (p WorkingHoursPolicy) Validate() error {
	if p.StartHour < 0 || p.StartHour > 23 {
		return fmt.Errorf("%w: startHour must be in 0..23, got %d", ErrInvalidPolicy, p.StartHour)
	}
	if p.EndHour < 0 || p.EndHour > 23 {
		return fmt.Errorf("%w: endHour must be in 0..23, got %d", ErrInvalidPolicy, p.EndHour)
	}
	if p.StartHour >= p.EndHour {
		return fmt.Errorf("%w: startHour (%d) must be before endHour (%d)", ErrInvalidPolicy, p.StartHour, p.EndHour)
	}
	for _, d := range p.DaysOff {
		if d < time.Sunday || d > time.Saturday {
			return fmt.Errorf("%w: day off must be in 0..6, got %d", ErrInvalidPolicy, d)
		}
	}
	return nil
}

// IsDayOff проверяет, что день недели момента t - выходной
func (p WorkingHoursPolicy) IsDayOff(t time.Time) bool {
	weekday := t.Weekday()
	for _, d := range p.DaysOff {
		if d == weekday {
			return true
		}
	}
	return false
}

// WorkingWindow возвращает рабочее окно [date@StartHour, date@EndHour) в часовом поясе date
func (p WorkingHoursPolicy) WorkingWindow(date time.Time) TimeWindow {
	return TimeWindow{
		Start: time.Date(date.Year(), date.Month(), date.Day(), p.StartHour, 0, 0, 0, date.Location()),
		End:   time.Date(date.Year(), date.Month(), date.Day(), p.EndHour, 0, 0, 0, date.Location()),
	}
}

// Normalized возвращает копию с отсортированными выходными без дубликатов
func (p WorkingHoursPolicy) Normalized() WorkingHoursPolicy {
	seen := make(map[time.Weekday]struct{}, len(p.DaysOff))
	days := make([]time.Weekday, 0, len(p.DaysOff))
	for _, d := range p.DaysOff {
		if _, ok := seen[d]; ok {
			continue
		}
		seen[d] = struct{}{}
		days = append(days, d)
	}
	sort.Slice(days, func(i, j int) bool { return days[i] < days[j] })

	return WorkingHoursPolicy{
		StartHour: p.StartHour,
		EndHour:   p.EndHour,
		DaysOff:   days,
	}
}

// IsWorkingTime проверяет, что момент попадает в рабочее время мастера:
// день не выходной и StartHour <= час < EndHour
func IsWorkingTime(t time.Time, policy WorkingHoursPolicy) bool {
	if policy.IsDayOff(t) {
		return false
	}
	hour := t.Hour()
	return policy.StartHour <= hour && hour < policy.EndHour
}

// PolicyOrDefault возвращает сохранённую политику или политику по умолчанию, если её нет
func PolicyOrDefault(p *WorkingHoursPolicy) WorkingHoursPolicy {
	if p == nil {
		return DefaultWorkingHoursPolicy()
	}
	return *p
}
