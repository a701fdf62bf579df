package domain

import "time"

// ConflictResult результат проверки пересечения окна с заказами мастера
type ConflictResult struct {
	HasConflict     bool
	ConflictingJobs []*CommittedJob // Порядок соответствует порядку хранилища
}

// AvailabilitySlot доступность мастера на календарный день
type AvailabilitySlot struct {
	Date          time.Time
	StartTime     time.Time
	EndTime       time.Time
	Available     bool
	ConflictCount int
}

// TimeSlot слот фиксированной длины внутри рабочего дня
type TimeSlot struct {
	StartTime time.Time
	EndTime   time.Time
	Available bool
}

// AlternativeSuggestion альтернативная дата для заказа
type AlternativeSuggestion struct {
	Date      time.Time
	Label     string // today / tomorrow / yesterday / день недели / "Jan 2"
	DayOfWeek string
}

// ScheduleStats сводная статистика загрузки мастера
type ScheduleStats struct {
	ProjectsThisWeek       int
	ProjectsNextWeek       int
	ProjectsNextMonth      int
	HoursThisWeek          float64
	HoursNextWeek          float64
	AverageProjectDuration float64
}
