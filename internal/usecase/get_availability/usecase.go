package get_availability

import (
	"context"
	"errors"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

const opGetAvailability = "GetAvailability"

// UseCase use case получения доступности мастера по дням (календарь)
type UseCase struct {
	jobRepo    JobRepository
	policyRepo WorkingHoursRepository
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(jobRepo JobRepository, policyRepo WorkingHoursRepository, logger Logger) *UseCase {
	return &UseCase{
		jobRepo:    jobRepo,
		policyRepo: policyRepo,
		logger:     logger,
	}
}

// Execute выполняет use case получения доступности
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailability: handyman=%s, from=%s, to=%s",
		req.HandymanID, req.RangeStart.Format(domain.DateFormat), req.RangeEnd.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailability: validation failed: %v", err)
		return nil, err
	}

	first := domain.StartOfDay(req.RangeStart)
	last := domain.StartOfDay(req.RangeEnd)

	// 2. Получаем рабочие часы мастера
	stored, err := uc.policyRepo.GetWorkingHours(ctx, req.HandymanID)
	if err != nil && !errors.Is(err, domain.ErrPolicyNotFound) {
		uc.logger.Error("GetAvailability: failed to get working hours for handyman=%s: %v", req.HandymanID, err)
		return nil, domain.StoreUnavailable(opGetAvailability, req.HandymanID, err)
	}

	// Если рабочие часы не настроены, используем значения по умолчанию
	policy := domain.PolicyOrDefault(stored)
	if stored == nil {
		uc.logger.Info("GetAvailability: using default working hours for handyman=%s", req.HandymanID)
	}

	// 3. Получаем заказы за весь период одним запросом
	to := last.AddDate(0, 0, 1)
	jobs, err := uc.jobRepo.QueryJobs(ctx, domain.OccupyingJobsFilter(req.HandymanID, &first, &to))
	if err != nil {
		uc.logger.Error("GetAvailability: failed to query jobs for handyman=%s: %v", req.HandymanID, err)
		return nil, domain.StoreUnavailable(opGetAvailability, req.HandymanID, err)
	}

	// 4. Формируем слоты по дням
	slots := buildDailySlots(first, last, policy, jobs)

	uc.logger.Info("GetAvailability: generated %d day slots for handyman=%s (%d jobs in range)",
		len(slots), req.HandymanID, len(jobs))

	return &Response{
		HandymanID: req.HandymanID,
		Policy:     policy,
		Slots:      slots,
	}, nil
}
