package check_conflict

import (
	"context"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

const opCheckConflict = "CheckConflict"

// UseCase use case проверки пересечения нового заказа с расписанием мастера
type UseCase struct {
	jobRepo JobRepository
	logger  Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(jobRepo JobRepository, logger Logger) *UseCase {
	return &UseCase{
		jobRepo: jobRepo,
		logger:  logger,
	}
}

// Execute выполняет use case проверки конфликта
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CheckConflict: handyman=%s, start=%s, exclude=%s",
		req.HandymanID, req.StartTime.Format(time.RFC3339), ptr.Value(req.ExcludeJobID, "-"))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CheckConflict: validation failed: %v", err)
		return nil, err
	}

	// 2. Вычисляем проверяемое окно
	window, err := resolveWindow(req)
	if err != nil {
		uc.logger.Warn("CheckConflict: invalid window for handyman=%s: %v", req.HandymanID, err)
		return nil, domain.NewOperationError(opCheckConflict, req.HandymanID, err)
	}

	// 3. Проверяем пересечения
	result, err := uc.Check(ctx, req.HandymanID, window, ptr.Value(req.ExcludeJobID, ""))
	if err != nil {
		return nil, err
	}

	return &Response{
		HandymanID:      req.HandymanID,
		Window:          window,
		HasConflict:     result.HasConflict,
		ConflictingJobs: result.ConflictingJobs,
	}, nil
}

// Check проверяет окно против всех занимающих время заказов мастера
// Ошибка хранилища возвращается как domain.ErrStoreUnavailable без повторных попыток
func (uc *UseCase) Check(ctx context.Context, handymanID string, window domain.TimeWindow, excludeJobID string) (*domain.ConflictResult, error) {
	// Некорректное окно отклоняется до обращения к хранилищу
	if err := window.Validate(); err != nil {
		return nil, domain.NewOperationError(opCheckConflict, handymanID, err)
	}

	jobs, err := uc.jobRepo.QueryJobs(ctx, domain.OccupyingJobsFilter(handymanID, nil, nil))
	if err != nil {
		uc.logger.Error("CheckConflict: failed to query jobs for handyman=%s: %v", handymanID, err)
		return nil, domain.StoreUnavailable(opCheckConflict, handymanID, err)
	}

	result, err := findConflicts(window, jobs, excludeJobID)
	if err != nil {
		return nil, domain.NewOperationError(opCheckConflict, handymanID, err)
	}

	if result.HasConflict {
		uc.logger.Info("CheckConflict: handyman=%s has %d conflicting jobs in %s - %s",
			handymanID, len(result.ConflictingJobs),
			window.Start.Format(time.RFC3339), window.End.Format(time.RFC3339))
	}

	return result, nil
}
