package check_conflict

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	checkConflict "github.com/m04kA/SMC-ScheduleService/internal/usecase/check_conflict"
)

// CheckConflictRequest HTTP request model
type CheckConflictRequest struct {
	StartTime     string   `json:"startTime"`         // RFC3339 или YYYY-MM-DDTHH:MM
	EndTime       *string  `json:"endTime,omitempty"` // приоритетнее durationHours
	DurationHours *float64 `json:"durationHours,omitempty"`
	ExcludeJobID  *string  `json:"excludeJobId,omitempty"`
}

// CheckConflictResponse HTTP response model
type CheckConflictResponse struct {
	HandymanID      string           `json:"handymanId"`
	StartTime       string           `json:"startTime"`
	EndTime         string           `json:"endTime"`
	HasConflict     bool             `json:"hasConflict"`
	ConflictingJobs []ConflictingJob `json:"conflictingJobs"`
}

// ConflictingJob заказ, пересекающийся с запрошенным окном
type ConflictingJob struct {
	ID        string  `json:"id"`
	Title     string  `json:"title"`
	Status    string  `json:"status"`
	StartTime string  `json:"startTime"`
	EndTime   string  `json:"endTime"`
	Hours     float64 `json:"durationHours"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case (с парсингом времени)
func (r *CheckConflictRequest) ToUseCaseRequest(handymanID string, loc *time.Location) (*checkConflict.Request, error) {
	start, err := handlers.ParseDateTime(r.StartTime, loc)
	if err != nil {
		return nil, err
	}

	req := &checkConflict.Request{
		HandymanID:    handymanID,
		StartTime:     start,
		DurationHours: r.DurationHours,
		ExcludeJobID:  r.ExcludeJobID,
	}

	if r.EndTime != nil {
		end, err := handlers.ParseDateTime(*r.EndTime, loc)
		if err != nil {
			return nil, err
		}
		req.EndTime = &end
	}

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *checkConflict.Response) *CheckConflictResponse {
	jobs := make([]ConflictingJob, 0, len(resp.ConflictingJobs))
	for _, job := range resp.ConflictingJobs {
		jobs = append(jobs, fromDomainJob(job))
	}

	return &CheckConflictResponse{
		HandymanID:      resp.HandymanID,
		StartTime:       handlers.FormatDateTime(resp.Window.Start),
		EndTime:         handlers.FormatDateTime(resp.Window.End),
		HasConflict:     resp.HasConflict,
		ConflictingJobs: jobs,
	}
}

func fromDomainJob(job *domain.CommittedJob) ConflictingJob {
	result := ConflictingJob{
		ID:     job.ID,
		Title:  job.Title,
		Status: string(job.Status),
		Hours:  job.EffectiveDurationHours(),
	}

	if w, ok := job.EffectiveWindow(); ok {
		result.StartTime = handlers.FormatDateTime(w.Start)
		result.EndTime = handlers.FormatDateTime(w.End)
		result.Hours = w.Hours()
	}

	return result
}
