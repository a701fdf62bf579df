package jobs

import "errors"

var (
	// ErrInvalidStatus возвращается при неизвестном статусе заказа
	ErrInvalidStatus = errors.New("invalid job status")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInvalidTimeRange возвращается при некорректном временном диапазоне
	ErrInvalidTimeRange = errors.New("invalid time range")
)
