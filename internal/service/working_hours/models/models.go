package models

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Request модели

// UpdateWorkingHoursRequest запрос на обновление рабочих часов
// Все поля опциональны - обновляются только переданные значения
type UpdateWorkingHoursRequest struct {
	UserID     string `json:"-"` // Кто выполняет изменение (из заголовка авторизации)
	HandymanID string `json:"-"`
	StartHour  *int   `json:"startHour,omitempty"`
	EndHour    *int   `json:"endHour,omitempty"`
	DaysOff    *[]int `json:"daysOff,omitempty"` // 0 = воскресенье
}

// Response модели

// WorkingHoursResponse ответ с рабочими часами мастера
type WorkingHoursResponse struct {
	HandymanID string `json:"handymanId"`
	StartHour  int    `json:"startHour"`
	EndHour    int    `json:"endHour"`
	DaysOff    []int  `json:"daysOff"`
	IsDefault  bool   `json:"isDefault"` // true - мастер не настраивал часы, показаны значения по умолчанию
}

// Методы конвертации

// FromDomainPolicy конвертирует domain модель в DTO
func FromDomainPolicy(handymanID string, p domain.WorkingHoursPolicy, isDefault bool) *WorkingHoursResponse {
	days := make([]int, len(p.DaysOff))
	for i, d := range p.DaysOff {
		days[i] = int(d)
	}

	return &WorkingHoursResponse{
		HandymanID: handymanID,
		StartHour:  p.StartHour,
		EndHour:    p.EndHour,
		DaysOff:    days,
		IsDefault:  isDefault,
	}
}

// ApplyToPolicy применяет обновления к существующей политике
// Обновляются только непустые (not nil) поля из request
func (r *UpdateWorkingHoursRequest) ApplyToPolicy(policy *domain.WorkingHoursPolicy) {
	if r.StartHour != nil {
		policy.StartHour = *r.StartHour
	}
	if r.EndHour != nil {
		policy.EndHour = *r.EndHour
	}
	if r.DaysOff != nil {
		days := make([]time.Weekday, len(*r.DaysOff))
		for i, d := range *r.DaysOff {
			days[i] = time.Weekday(d)
		}
		policy.DaysOff = days
	}
}

// IsEmpty проверяет, что в запросе нет ни одного изменения
func (r *UpdateWorkingHoursRequest) IsEmpty() bool {
	return r.StartHour == nil && r.EndHour == nil && r.DaysOff == nil
}
