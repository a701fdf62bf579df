package list_jobs

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/jobs/models"
)

type JobService interface {
	List(ctx context.Context, req *models.ListJobsRequest) (*models.JobListResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
