package get_schedule_stats

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

const opGetScheduleStats = "GetScheduleStats"

// UseCase use case получения статистики загрузки мастера
type UseCase struct {
	jobRepo      JobRepository
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(jobRepo JobRepository, timeProvider TimeProvider, logger Logger) *UseCase {
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}
	return &UseCase{
		jobRepo:      jobRepo,
		timeProvider: timeProvider,
		logger:       logger,
	}
}

// Execute выполняет use case получения статистики
// Три выборки выполняются параллельно; ошибка любой из них - ошибка всей операции
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetScheduleStats: handyman=%s", req.HandymanID)

	// 1. Валидация входных данных
	if req.HandymanID == "" {
		uc.logger.Warn("GetScheduleStats: validation failed: empty handymanID")
		return nil, fmt.Errorf("%w: handymanID is required", ErrInvalidInput)
	}

	// 2. Вычисляем периоды
	now := uc.timeProvider.Now()
	p := buildPeriods(now)

	// 3. Параллельно получаем заказы за каждый период
	var thisWeek, nextWeek, month []*domain.CommittedJob

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		jobs, err := uc.queryPeriod(gCtx, req.HandymanID, p.thisWeek)
		thisWeek = jobs
		return err
	})
	g.Go(func() error {
		jobs, err := uc.queryPeriod(gCtx, req.HandymanID, p.nextWeek)
		nextWeek = jobs
		return err
	})
	g.Go(func() error {
		jobs, err := uc.queryPeriod(gCtx, req.HandymanID, p.month)
		month = jobs
		return err
	})

	if err := g.Wait(); err != nil {
		uc.logger.Error("GetScheduleStats: failed to query jobs for handyman=%s: %v", req.HandymanID, err)
		return nil, domain.StoreUnavailable(opGetScheduleStats, req.HandymanID, err)
	}

	// 4. Агрегируем
	stats := domain.ScheduleStats{
		ProjectsThisWeek:       len(thisWeek),
		ProjectsNextWeek:       len(nextWeek),
		ProjectsNextMonth:      len(month),
		HoursThisWeek:          sumHours(thisWeek),
		HoursNextWeek:          sumHours(nextWeek),
		AverageProjectDuration: averageHours(month),
	}

	uc.logger.Info("GetScheduleStats: handyman=%s, thisWeek=%d, nextWeek=%d, month=%d",
		req.HandymanID, stats.ProjectsThisWeek, stats.ProjectsNextWeek, stats.ProjectsNextMonth)

	return &Response{
		HandymanID:  req.HandymanID,
		GeneratedAt: now,
		Stats:       stats,
	}, nil
}

func (uc *UseCase) queryPeriod(ctx context.Context, handymanID string, period domain.TimeWindow) ([]*domain.CommittedJob, error) {
	from, to := period.Start, period.End
	return uc.jobRepo.QueryJobs(ctx, domain.OccupyingJobsFilter(handymanID, &from, &to))
}
