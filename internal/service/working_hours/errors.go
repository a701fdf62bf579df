package working_hours

import "errors"

var (
	// ErrAccessDenied возвращается, когда рабочие часы меняет не сам мастер
	ErrAccessDenied = errors.New("access denied")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")
)
