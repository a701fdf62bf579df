package breaker

import "errors"

var (
	// ErrCircuitOpen возвращается без обращения к хранилищу, пока breaker разомкнут
	ErrCircuitOpen = errors.New("breaker: store circuit is open")
)
