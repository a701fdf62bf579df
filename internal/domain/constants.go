package domain

// Значения по умолчанию
const (
	DefaultStartHour        = 8
	DefaultEndHour          = 18
	DefaultJobDurationHours = 4.0
	DefaultSlotHours        = 2.0
	DefaultMaxSearchDays    = 7
	DefaultMaxSuggestions   = 3
)

// Ограничения бизнес-валидации
const (
	MinMaxSuggestions        = 1
	MaxMaxSuggestions        = 5
	MinSearchDays            = 1
	MaxSearchDays            = 30
	MaxJobDurationHours      = 24.0
	MinSlotHours             = 0.5
	MaxSlotHours             = 12.0
	MaxAvailabilityRangeDays = 62
	StatsMonthDays           = 30
	DaysPerWeek              = 7
)

// Форматы даты и времени
const (
	TimeFormat = "15:04"      // HH:MM
	DateFormat = "2006-01-02" // YYYY-MM-DD
)
