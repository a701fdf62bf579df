package suggest_alternatives

import "errors"

var (
	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("suggest_alternatives: invalid input data")
)
