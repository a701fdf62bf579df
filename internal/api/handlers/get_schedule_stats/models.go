package get_schedule_stats

import (
	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	getScheduleStats "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_schedule_stats"
)

// ScheduleStatsResponse HTTP response model
type ScheduleStatsResponse struct {
	HandymanID             string  `json:"handymanId"`
	GeneratedAt            string  `json:"generatedAt"`
	ProjectsThisWeek       int     `json:"projectsThisWeek"`
	ProjectsNextWeek       int     `json:"projectsNextWeek"`
	ProjectsNextMonth      int     `json:"projectsNextMonth"`
	HoursThisWeek          float64 `json:"hoursThisWeek"`
	HoursNextWeek          float64 `json:"hoursNextWeek"`
	AverageProjectDuration float64 `json:"averageProjectDuration"`
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getScheduleStats.Response) *ScheduleStatsResponse {
	return &ScheduleStatsResponse{
		HandymanID:             resp.HandymanID,
		GeneratedAt:            handlers.FormatDateTime(resp.GeneratedAt),
		ProjectsThisWeek:       resp.Stats.ProjectsThisWeek,
		ProjectsNextWeek:       resp.Stats.ProjectsNextWeek,
		ProjectsNextMonth:      resp.Stats.ProjectsNextMonth,
		HoursThisWeek:          resp.Stats.HoursThisWeek,
		HoursNextWeek:          resp.Stats.HoursNextWeek,
		AverageProjectDuration: resp.Stats.AverageProjectDuration,
	}
}
