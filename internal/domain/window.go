package domain

import (
	"fmt"
	"time"
)

// TimeWindow полуинтервал времени [Start, End)
// Окно, заканчивающееся в момент T, не пересекается с окном, начинающимся в T
type TimeWindow struct {
	Start time.Time
	End   time.Time
}

// NewTimeWindow создает окно и проверяет инвариант Start < End
func NewTimeWindow(start, end time.Time) (TimeWindow, error) {
	w := TimeWindow{Start: start, End: end}
	if err := w.Validate(); err != nil {
		return TimeWindow{}, err
	}
	return w, nil
}

// NewTimeWindowForDuration создает окно [start, start+hours)
func NewTimeWindowForDuration(start time.Time, hours float64) (TimeWindow, error) {
	return NewTimeWindow(start, start.Add(HoursToDuration(hours)))
}

// Validate возвращает ErrInvalidWindow, если Start >= End
func (w TimeWindow) Validate() error {
	if !w.Start.Before(w.End) {
		return fmt.Errorf("%w: start=%s end=%s", ErrInvalidWindow,
			w.Start.Format(time.RFC3339), w.End.Format(time.RFC3339))
	}
	return nil
}

// Duration возвращает длительность окна
func (w TimeWindow) Duration() time.Duration {
	return w.End.Sub(w.Start)
}

// Hours возвращает длительность окна в часах
func (w TimeWindow) Hours() float64 {
	return w.Duration().Hours()
}

// Contains проверяет, что момент t попадает в [Start, End)
func (w TimeWindow) Contains(t time.Time) bool {
	return !t.Before(w.Start) && t.Before(w.End)
}

// CheckOverlap проверяет пересечение двух окон, предварительно проверяя оба на Start < End
// Некорректное окно возвращает ErrInvalidWindow
func CheckOverlap(a, b TimeWindow) (bool, error) {
	if err := a.Validate(); err != nil {
		return false, err
	}
	if err := b.Validate(); err != nil {
		return false, err
	}
	return Overlaps(a, b), nil
}

// Overlaps проверяет пересечение двух полуинтервалов без проверки инварианта окон
// Для перевёрнутого окна результат false; проверку выполняют NewTimeWindow, Validate и CheckOverlap
//
// a.Start < b.End && b.Start < a.End
//
// Примеры:
// - [09:00, 13:00) и [12:00, 14:00) → пересекаются
// - [09:00, 13:00) и [13:00, 15:00) → НЕ пересекаются (граничат)
func Overlaps(a, b TimeWindow) bool {
	return a.Start.Before(b.End) && b.Start.Before(a.End)
}

// OverlapHours возвращает длительность пересечения в часах, 0 если окна не пересекаются
// Инвариант окон не проверяется, для перевёрнутого окна результат 0
func OverlapHours(a, b TimeWindow) float64 {
	start := a.Start
	if b.Start.After(start) {
		start = b.Start
	}
	end := a.End
	if b.End.Before(end) {
		end = b.End
	}

	if !start.Before(end) {
		return 0
	}
	return end.Sub(start).Hours()
}

// HoursToDuration переводит дробное количество часов в time.Duration
func HoursToDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}

// StartOfDay возвращает полночь календарного дня t в его часовом поясе
func StartOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
}

// IsSameDay проверяет, что два момента относятся к одному календарному дню
func IsSameDay(a, b time.Time) bool {
	y1, m1, d1 := a.Date()
	y2, m2, d2 := b.Date()
	return y1 == y2 && m1 == m2 && d1 == d2
}
