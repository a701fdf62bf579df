package domain

import "time"

// JobStatus статус заказа (проекта) мастера
type JobStatus string

const (
	StatusPending           JobStatus = "pending"
	StatusQuoted            JobStatus = "quoted"
	StatusAgreedScheduled   JobStatus = "agreed_scheduled"
	StatusAwaitingPayment   JobStatus = "awaiting_payment"
	StatusInProgress        JobStatus = "in_progress"
	StatusPaymentProcessing JobStatus = "payment_processing"
	StatusCompleted         JobStatus = "completed"
	StatusCancelled         JobStatus = "cancelled"
	StatusDisputed          JobStatus = "disputed"
)

// OccupyingStatuses статусы, при которых заказ занимает время мастера
var OccupyingStatuses = []JobStatus{
	StatusAgreedScheduled,
	StatusAwaitingPayment,
	StatusInProgress,
	StatusPaymentProcessing,
}

// IsOccupying возвращает true, если заказ в этом статусе занимает время мастера
func (s JobStatus) IsOccupying() bool {
	for _, st := range OccupyingStatuses {
		if st == s {
			return true
		}
	}
	return false
}

// CommittedJob проекция заказа, используемая планировщиком (только чтение)
type CommittedJob struct {
	ID            string
	Title         string
	HandymanID    string
	Status        JobStatus
	StartTime     *time.Time // nil - время начала не задано
	EndTime       *time.Time // nil - вычисляется из длительности
	DurationHours *float64   // nil - используется DefaultJobDurationHours
}

// EffectiveDurationHours длительность заказа в часах, по умолчанию DefaultJobDurationHours
func (j *CommittedJob) EffectiveDurationHours() float64 {
	if j.DurationHours == nil || *j.DurationHours <= 0 {
		return DefaultJobDurationHours
	}
	return *j.DurationHours
}

// HasStartTime проверяет, что у заказа есть время начала
func (j *CommittedJob) HasStartTime() bool {
	return j.StartTime != nil && !j.StartTime.IsZero()
}

// EffectiveWindow возвращает фактическое окно заказа
// Если конец не сохранён явно, он вычисляется как start + длительность
// Второе значение false, если у заказа нет времени начала
func (j *CommittedJob) EffectiveWindow() (TimeWindow, bool) {
	if !j.HasStartTime() {
		return TimeWindow{}, false
	}

	start := *j.StartTime
	if j.EndTime != nil && j.EndTime.After(start) {
		return TimeWindow{Start: start, End: *j.EndTime}, true
	}

	return TimeWindow{Start: start, End: start.Add(HoursToDuration(j.EffectiveDurationHours()))}, true
}

// ScheduledOn проверяет, что заказ начинается в тот же календарный день, что и date
// Время начала приводится к часовому поясу date
func (j *CommittedJob) ScheduledOn(date time.Time) bool {
	if !j.HasStartTime() {
		return false
	}
	return IsSameDay(j.StartTime.In(date.Location()), date)
}

// JobsFilter параметры выборки заказов мастера
type JobsFilter struct {
	HandymanID string      // Обязательный параметр
	Statuses   []JobStatus // Пустой список - без фильтра по статусу
	From       *time.Time  // Начало периода по времени начала (включительно)
	To         *time.Time  // Конец периода по времени начала (не включительно)
}

// OccupyingJobsFilter фильтр занимающих время заказов мастера за период
func OccupyingJobsFilter(handymanID string, from, to *time.Time) JobsFilter {
	return JobsFilter{
		HandymanID: handymanID,
		Statuses:   OccupyingStatuses,
		From:       from,
		To:         to,
	}
}

// StatusStrings возвращает статусы фильтра строками (для запросов к хранилищу)
func (f JobsFilter) StatusStrings() []string {
	result := make([]string, len(f.Statuses))
	for i, s := range f.Statuses {
		result[i] = string(s)
	}
	return result
}
