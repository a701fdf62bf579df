package get_availability

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("get_availability: invalid input data")

	// ErrRangeTooLong возвращается, когда период превышает допустимое количество дней
	ErrRangeTooLong = errors.New("get_availability: date range is too long")
)
