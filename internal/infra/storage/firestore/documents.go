package firestore

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Названия полей документов
const (
	fieldHandymanID   = "handymanId"
	fieldStatus       = "status"
	fieldStartTime    = "startTime"
	fieldWorkingHours = "workingHours"
)

// jobDocument документ заказа в коллекции проектов
type jobDocument struct {
	Title         string     `firestore:"title"`
	HandymanID    string     `firestore:"handymanId"`
	Status        string     `firestore:"status"`
	StartTime     *time.Time `firestore:"startTime"`
	EndTime       *time.Time `firestore:"endTime"`
	DurationHours *float64   `firestore:"durationHours"`
}

// workingHoursDocument вложенное поле workingHours документа пользователя
type workingHoursDocument struct {
	Start   int   `firestore:"start"`
	End     int   `firestore:"end"`
	DaysOff []int `firestore:"daysOff"`
}

// userDocument документ пользователя (интересует только workingHours)
type userDocument struct {
	WorkingHours *workingHoursDocument `firestore:"workingHours"`
}

func (d *jobDocument) toDomain(id string) *domain.CommittedJob {
	return &domain.CommittedJob{
		ID:            id,
		Title:         d.Title,
		HandymanID:    d.HandymanID,
		Status:        domain.JobStatus(d.Status),
		StartTime:     d.StartTime,
		EndTime:       d.EndTime,
		DurationHours: d.DurationHours,
	}
}

func (d *workingHoursDocument) toDomain() *domain.WorkingHoursPolicy {
	days := make([]time.Weekday, len(d.DaysOff))
	for i, day := range d.DaysOff {
		days[i] = time.Weekday(day)
	}
	return &domain.WorkingHoursPolicy{
		StartHour: d.Start,
		EndHour:   d.End,
		DaysOff:   days,
	}
}

func fromDomainPolicy(p domain.WorkingHoursPolicy) workingHoursDocument {
	days := make([]int, len(p.DaysOff))
	for i, day := range p.DaysOff {
		days[i] = int(day)
	}
	return workingHoursDocument{
		Start:   p.StartHour,
		End:     p.EndHour,
		DaysOff: days,
	}
}
