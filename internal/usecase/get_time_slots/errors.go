package get_time_slots

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_time_slots: invalid input data")

	// ErrInvalidSlotHours возвращается при длине слота вне допустимого диапазона
	ErrInvalidSlotHours = errors.New("get_time_slots: invalid slot length")
)
