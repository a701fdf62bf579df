package domain

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidWindow возвращается для окна с началом не раньше конца
	ErrInvalidWindow = errors.New("invalid time window")

	// ErrInvalidPolicy возвращается для некорректной политики рабочих часов
	ErrInvalidPolicy = errors.New("invalid working hours policy")

	// ErrPolicyNotFound возвращается хранилищем, когда мастер не настраивал рабочие часы
	// Use case'ы не пробрасывают её наружу, а подставляют DefaultWorkingHoursPolicy
	ErrPolicyNotFound = errors.New("working hours policy not found")

	// ErrStoreUnavailable возвращается, когда хранилище заказов недоступно
	// Повторные попытки - ответственность вызывающей стороны
	ErrStoreUnavailable = errors.New("job store unavailable")
)

// OperationError ошибка операции планировщика с контекстом для вызывающей стороны:
// вид ошибки (через errors.Is), ID мастера и название операции
type OperationError struct {
	Op         string
	HandymanID string
	Err        error
}

// NewOperationError оборачивает ошибку контекстом операции
func NewOperationError(op, handymanID string, err error) *OperationError {
	return &OperationError{Op: op, HandymanID: handymanID, Err: err}
}

func (e *OperationError) Error() string {
	return fmt.Sprintf("%s: handyman=%s: %v", e.Op, e.HandymanID, e.Err)
}

func (e *OperationError) Unwrap() error {
	return e.Err
}

// StoreUnavailable оборачивает ошибку хранилища в ErrStoreUnavailable с контекстом операции
func StoreUnavailable(op, handymanID string, err error) error {
	return NewOperationError(op, handymanID, fmt.Errorf("%w: %v", ErrStoreUnavailable, err))
}
