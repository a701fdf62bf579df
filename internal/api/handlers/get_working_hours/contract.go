package get_working_hours

import (
	"context"

	"github.com/m04kA/SMC-ScheduleService/internal/service/working_hours/models"
)

type WorkingHoursService interface {
	Get(ctx context.Context, handymanID string) (*models.WorkingHoursResponse, error)
}

type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
