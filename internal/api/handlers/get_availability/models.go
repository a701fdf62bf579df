package get_availability

import (
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getAvailability "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_availability"
)

// AvailabilityResponse HTTP response model
type AvailabilityResponse struct {
	HandymanID   string       `json:"handymanId"`
	WorkingHours WorkingHours `json:"workingHours"`
	Days         []Day        `json:"days"` // выходные дни не попадают в список
}

// WorkingHours применённая политика рабочих часов
type WorkingHours struct {
	StartHour int   `json:"startHour"`
	EndHour   int   `json:"endHour"`
	DaysOff   []int `json:"daysOff"`
}

// Day доступность мастера на день
type Day struct {
	Date          string `json:"date"`
	StartTime     string `json:"startTime"`
	EndTime       string `json:"endTime"`
	Available     bool   `json:"available"`
	ConflictCount int    `json:"conflictCount"`
}

// ToUseCaseRequest создает запрос use case из query параметров
func ToUseCaseRequest(handymanID, fromStr, toStr string, loc *time.Location) (*getAvailability.Request, error) {
	from, err := handlers.ParseDate(fromStr, loc)
	if err != nil {
		return nil, err
	}

	to, err := handlers.ParseDate(toStr, loc)
	if err != nil {
		return nil, err
	}

	return &getAvailability.Request{
		HandymanID: handymanID,
		RangeStart: from,
		RangeEnd:   to,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getAvailability.Response) *AvailabilityResponse {
	days := make([]Day, len(resp.Slots))
	for i, slot := range resp.Slots {
		days[i] = Day{
			Date:          slot.Date.Format(domain.DateFormat),
			StartTime:     slot.StartTime.Format(domain.TimeFormat),
			EndTime:       slot.EndTime.Format(domain.TimeFormat),
			Available:     slot.Available,
			ConflictCount: slot.ConflictCount,
		}
	}

	daysOff := make([]int, len(resp.Policy.DaysOff))
	for i, d := range resp.Policy.DaysOff {
		daysOff[i] = int(d)
	}

	return &AvailabilityResponse{
		HandymanID: resp.HandymanID,
		WorkingHours: WorkingHours{
			StartHour: resp.Policy.StartHour,
			EndHour:   resp.Policy.EndHour,
			DaysOff:   daysOff,
		},
		Days: days,
	}
}
