package list_jobs

import (
	"strings"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/service/jobs/models"
)

// ToServiceRequest формирует запрос к сервису из query параметров
// to - последний день периода (включительно), status - список через запятую
func ToServiceRequest(handymanID, fromStr, toStr, statusStr string, loc *time.Location) (*models.ListJobsRequest, error) {
	req := &models.ListJobsRequest{HandymanID: handymanID}

	if fromStr != "" {
		from, err := handlers.ParseDate(fromStr, loc)
		if err != nil {
			return nil, err
		}
		req.From = &from
	}

	if toStr != "" {
		to, err := handlers.ParseDate(toStr, loc)
		if err != nil {
			return nil, err
		}
		to = to.AddDate(0, 0, 1)
		req.To = &to
	}

	if statusStr != "" {
		for _, s := range strings.Split(statusStr, ",") {
			if s = strings.TrimSpace(s); s != "" {
				req.Statuses = append(req.Statuses, s)
			}
		}
	}

	return req, nil
}
