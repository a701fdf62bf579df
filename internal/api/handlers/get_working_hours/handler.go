package get_working_hours

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	workingHours "github.com/m04kA/SMC-ScheduleService/internal/service/working_hours"
)

const msgInvalidHandymanID = "некорректный ID мастера"

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

// Handle GET /api/v1/handymen/{handymanId}/working-hours
// Если мастер не настраивал рабочие часы, возвращаются значения по умолчанию (isDefault=true)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handymanID := mux.Vars(r)["handymanId"]

	result, err := h.service.Get(r.Context(), handymanID)
	if err != nil {
		switch {
		case errors.Is(err, workingHours.ErrInvalidInput):
			h.logger.Warn("GET /handymen/{id}/working-hours - Invalid handyman ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHandymanID)

		case errors.Is(err, domain.ErrStoreUnavailable):
			h.logger.Error("GET /handymen/{id}/working-hours - Store unavailable: handyman_id=%s, error=%v", handymanID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /handymen/{id}/working-hours - Failed to get working hours: handyman_id=%s, error=%v", handymanID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /handymen/{id}/working-hours - Working hours retrieved: handyman_id=%s, is_default=%t",
		handymanID, result.IsDefault)
	handlers.RespondJSON(w, http.StatusOK, result)
}
