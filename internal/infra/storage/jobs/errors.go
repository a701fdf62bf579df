package jobs

import "errors"

var (
	// ErrInvalidFilter возвращается при фильтре без ID мастера
	ErrInvalidFilter = errors.New("jobs.repository: handyman id is required")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("jobs.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("jobs.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("jobs.repository: failed to scan row")
)
