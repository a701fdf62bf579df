package update_working_hours

import (
	"github.com/m04kA/SMC-ScheduleService/internal/service/working_hours/models"
)

// UpdateWorkingHoursRequest HTTP request model
type UpdateWorkingHoursRequest struct {
	StartHour *int   `json:"startHour,omitempty"`
	EndHour   *int   `json:"endHour,omitempty"`
	DaysOff   *[]int `json:"daysOff,omitempty"` // 0 = воскресенье
}

// ToServiceRequest конвертирует HTTP request в модель сервиса
func (r *UpdateWorkingHoursRequest) ToServiceRequest(userID, handymanID string) *models.UpdateWorkingHoursRequest {
	return &models.UpdateWorkingHoursRequest{
		UserID:     userID,
		HandymanID: handymanID,
		StartHour:  r.StartHour,
		EndHour:    r.EndHour,
		DaysOff:    r.DaysOff,
	}
}
