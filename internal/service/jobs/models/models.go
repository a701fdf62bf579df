package models

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request модели

// ListJobsRequest запрос на получение заказов мастера (календарь)
type ListJobsRequest struct {
	HandymanID string     `json:"handymanId"`
	From       *time.Time `json:"from,omitempty"`     // Начало периода (опционально, включительно)
	To         *time.Time `json:"to,omitempty"`       // Конец периода (опционально, не включительно)
	Statuses   []string   `json:"statuses,omitempty"` // Пусто - только занимающие время статусы
}

// ToDomainFilter конвертирует request в domain фильтр
func (r *ListJobsRequest) ToDomainFilter() (domain.JobsFilter, error) {
	filter := domain.OccupyingJobsFilter(r.HandymanID, r.From, r.To)

	if len(r.Statuses) > 0 {
		statuses := make([]domain.JobStatus, 0, len(r.Statuses))
		for _, s := range r.Statuses {
			status, err := ToDomainJobStatus(s)
			if err != nil {
				return filter, err
			}
			statuses = append(statuses, status)
		}
		filter.Statuses = statuses
	}

	return filter, nil
}

// Response модели

// JobResponse ответ с данными заказа
type JobResponse struct {
	ID            string     `json:"id"`
	Title         string     `json:"title"`
	Status        string     `json:"status"`
	StartTime     *time.Time `json:"startTime,omitempty"`
	EndTime       *time.Time `json:"endTime,omitempty"` // Явный или вычисленный конец
	DurationHours float64    `json:"durationHours"`
	Occupying     bool       `json:"occupying"`
}

// JobListResponse ответ со списком заказов
type JobListResponse struct {
	Jobs       []JobResponse `json:"jobs"`
	TotalHours float64       `json:"totalHours"`
}

// Методы конвертации

// FromDomainJob конвертирует domain модель в DTO
func FromDomainJob(j *domain.CommittedJob) *JobResponse {
	if j == nil {
		return nil
	}

	resp := &JobResponse{
		ID:            j.ID,
		Title:         j.Title,
		Status:        string(j.Status),
		StartTime:     j.StartTime,
		DurationHours: j.EffectiveDurationHours(),
		Occupying:     j.Status.IsOccupying(),
	}

	if w, ok := j.EffectiveWindow(); ok {
		end := w.End
		resp.EndTime = &end
	}

	return resp
}

// FromDomainJobList конвертирует список domain моделей в DTO
func FromDomainJobList(jobs []*domain.CommittedJob) *JobListResponse {
	resp := &JobListResponse{
		Jobs: make([]JobResponse, 0, len(jobs)),
	}

	for _, job := range jobs {
		if jobResp := FromDomainJob(job); jobResp != nil {
			resp.Jobs = append(resp.Jobs, *jobResp)
			resp.TotalHours += jobResp.DurationHours
		}
	}

	return resp
}

// ToDomainJobStatus конвертирует строку в статус заказа
func ToDomainJobStatus(s string) (domain.JobStatus, error) {
	switch status := domain.JobStatus(s); status {
	case domain.StatusPending, domain.StatusQuoted, domain.StatusAgreedScheduled,
		domain.StatusAwaitingPayment, domain.StatusInProgress, domain.StatusPaymentProcessing,
		domain.StatusCompleted, domain.StatusCancelled, domain.StatusDisputed:
		return status, nil
	default:
		return "", fmt.Errorf("unknown job status %q", s)
	}
}
