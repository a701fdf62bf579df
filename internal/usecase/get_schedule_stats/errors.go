package get_schedule_stats

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_schedule_stats: invalid input data")
)
