package jobs

import (
	"context"
	"fmt"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/jobs/models"
)

const opListJobs = "ListJobs"

// Service сервис чтения заказов мастера
// Заказы принадлежат внешнему хранилищу, сервис их только читает
type Service struct {
	jobRepo JobRepository
	logger  Logger
}

// NewService создает новый экземпляр сервиса заказов
func NewService(jobRepo JobRepository, logger Logger) *Service {
	return &Service{
		jobRepo: jobRepo,
		logger:  logger,
	}
}

// List получает заказы мастера с фильтрацией по периоду и статусам
//
// Примеры использования:
// - Все занимающие время заказы: List(ctx, &ListJobsRequest{HandymanID: "h-1"})
// - Заказы за период: From и To
// - Завершённые заказы: Statuses = []string{"completed"}
func (s *Service) List(ctx context.Context, req *models.ListJobsRequest) (*models.JobListResponse, error) {
	s.logger.Info("List: fetching jobs for handyman=%s, statuses=%v", req.HandymanID, req.Statuses)

	if req.HandymanID == "" {
		return nil, fmt.Errorf("%w: handymanID is required", ErrInvalidInput)
	}

	if req.From != nil && req.To != nil && !req.From.Before(*req.To) {
		s.logger.Warn("List: invalid range from=%s to=%s",
			req.From.Format(domain.DateFormat), req.To.Format(domain.DateFormat))
		return nil, fmt.Errorf("%w: from must be before to", ErrInvalidTimeRange)
	}

	filter, err := req.ToDomainFilter()
	if err != nil {
		s.logger.Warn("List: invalid status for handyman=%s: %v", req.HandymanID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidStatus, err)
	}

	jobs, err := s.jobRepo.QueryJobs(ctx, filter)
	if err != nil {
		s.logger.Error("List: repository error for handyman=%s: %v", req.HandymanID, err)
		return nil, domain.StoreUnavailable(opListJobs, req.HandymanID, err)
	}

	s.logger.Info("List: successfully fetched %d jobs for handyman=%s", len(jobs), req.HandymanID)
	return models.FromDomainJobList(jobs), nil
}
