package handlers

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// localDateTimeFormat дата и время без смещения, трактуются в часовом поясе сервиса
const localDateTimeFormat = "2006-01-02T15:04"

// ParseDate разбирает дату YYYY-MM-DD в указанном часовом поясе
func ParseDate(value string, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(domain.DateFormat, strings.TrimSpace(value), loc)
}

// ParseDateTime разбирает момент времени в формате RFC3339
// или YYYY-MM-DDTHH:MM (тогда используется часовой пояс loc)
func ParseDateTime(value string, loc *time.Location) (time.Time, error) {
	value = strings.TrimSpace(value)

	if t, err := time.Parse(time.RFC3339, value); err == nil {
		return t.In(loc), nil
	}

	return time.ParseInLocation(localDateTimeFormat, value, loc)
}

// FormatDateTime форматирует момент времени для ответа
func FormatDateTime(t time.Time) string {
	return t.Format(time.RFC3339)
}
