package get_time_slots

import (
	"strconv"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getTimeSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_time_slots"
)

// TimeSlotsResponse HTTP response model
type TimeSlotsResponse struct {
	HandymanID string     `json:"handymanId"`
	Date       string     `json:"date"`
	SlotHours  float64    `json:"slotHours"`
	DayOff     bool       `json:"dayOff"`
	Slots      []TimeSlot `json:"slots"`
}

// TimeSlot модель временного слота
type TimeSlot struct {
	StartTime string `json:"startTime"`
	EndTime   string `json:"endTime"`
	Available bool   `json:"available"`
}

// ToUseCaseRequest создает запрос use case из query параметров
// Пустой slotHoursStr означает длину слота по умолчанию
func ToUseCaseRequest(handymanID, dateStr, slotHoursStr string, defaultSlotHours float64, loc *time.Location) (*getTimeSlots.Request, error) {
	date, err := handlers.ParseDate(dateStr, loc)
	if err != nil {
		return nil, err
	}

	slotHours := defaultSlotHours
	if slotHoursStr != "" {
		slotHours, err = strconv.ParseFloat(slotHoursStr, 64)
		if err != nil {
			return nil, err
		}
	}

	return &getTimeSlots.Request{
		HandymanID: handymanID,
		Date:       date,
		SlotHours:  &slotHours,
	}, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *getTimeSlots.Response) *TimeSlotsResponse {
	slots := make([]TimeSlot, len(resp.Slots))
	for i, slot := range resp.Slots {
		slots[i] = TimeSlot{
			StartTime: slot.StartTime.Format(domain.TimeFormat),
			EndTime:   slot.EndTime.Format(domain.TimeFormat),
			Available: slot.Available,
		}
	}

	return &TimeSlotsResponse{
		HandymanID: resp.HandymanID,
		Date:       resp.Date.Format(domain.DateFormat),
		SlotHours:  resp.SlotHours,
		DayOff:     resp.DayOff,
		Slots:      slots,
	}
}
