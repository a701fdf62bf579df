package update_working_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	workingHours "github.com/m04kA/SMC-ScheduleService/internal/service/working_hours"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgMissingUserID      = "отсутствует ID пользователя"
	msgForbidden          = "изменять рабочие часы может только сам мастер"
	msgInvalidData        = "некорректные рабочие часы: часы 0..23, начало раньше конца, выходные 0..6"
)

type Handler struct {
	service WorkingHoursService
	logger  Logger
}

func NewHandler(service WorkingHoursService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Handle PUT /api/v1/handymen/{handymanId}/working-hours
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handymanID := mux.Vars(r)["handymanId"]

	// Получаем userID из контекста (через middleware Auth)
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("PUT /handymen/{id}/working-hours - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var req UpdateWorkingHoursRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("PUT /handymen/{id}/working-hours - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	// Сервис сам проверит, что мастер меняет свои часы
	result, err := h.service.Update(r.Context(), req.ToServiceRequest(userID, handymanID))
	if err != nil {
		switch {
		case errors.Is(err, workingHours.ErrAccessDenied):
			h.logger.Warn("PUT /handymen/{id}/working-hours - Access denied: handyman_id=%s, user_id=%s", handymanID, userID)
			handlers.RespondForbidden(w, msgForbidden)

		case errors.Is(err, workingHours.ErrInvalidInput), errors.Is(err, domain.ErrInvalidPolicy):
			h.logger.Warn("PUT /handymen/{id}/working-hours - Invalid data: handyman_id=%s, error=%v", handymanID, err)
			handlers.RespondBadRequest(w, msgInvalidData)

		case errors.Is(err, domain.ErrStoreUnavailable):
			h.logger.Error("PUT /handymen/{id}/working-hours - Store unavailable: handyman_id=%s, error=%v", handymanID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("PUT /handymen/{id}/working-hours - Failed to update working hours: handyman_id=%s, error=%v",
				handymanID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("PUT /handymen/{id}/working-hours - Working hours updated: handyman_id=%s, hours=%d-%d",
		handymanID, result.StartHour, result.EndHour)
	handlers.RespondJSON(w, http.StatusOK, result)
}
