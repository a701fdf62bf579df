package list_jobs

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/jobs"
)

const (
	msgInvalidParams = "некорректные параметры запроса"
	msgInvalidRange  = "некорректный период: from должен быть не позже to"
	msgInvalidStatus = "неизвестный статус заказа"
)

type Handler struct {
	service  JobService
	location *time.Location
	logger   Logger
}

func NewHandler(service JobService, location *time.Location, logger Logger) *Handler {
	return &Handler{
		service:  service,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/handymen/{handymanId}/jobs
// Query params: from, to (YYYY-MM-DD, опционально), status (через запятую, по умолчанию занимающие время)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handymanID := mux.Vars(r)["handymanId"]
	query := r.URL.Query()

	serviceReq, err := ToServiceRequest(handymanID, query.Get("from"), query.Get("to"), query.Get("status"), h.location)
	if err != nil {
		h.logger.Warn("GET /handymen/{id}/jobs - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.service.List(r.Context(), serviceReq)
	if err != nil {
		switch {
		case errors.Is(err, jobs.ErrInvalidTimeRange):
			h.logger.Warn("GET /handymen/{id}/jobs - Invalid range: handyman_id=%s, error=%v", handymanID, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, jobs.ErrInvalidStatus):
			h.logger.Warn("GET /handymen/{id}/jobs - Invalid status: handyman_id=%s, error=%v", handymanID, err)
			handlers.RespondBadRequest(w, msgInvalidStatus)

		case errors.Is(err, jobs.ErrInvalidInput):
			h.logger.Warn("GET /handymen/{id}/jobs - Invalid input: handyman_id=%s, error=%v", handymanID, err)
			handlers.RespondBadRequest(w, msgInvalidParams)

		case errors.Is(err, domain.ErrStoreUnavailable):
			h.logger.Error("GET /handymen/{id}/jobs - Store unavailable: handyman_id=%s, error=%v", handymanID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /handymen/{id}/jobs - Failed to list jobs: handyman_id=%s, error=%v", handymanID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /handymen/{id}/jobs - Jobs retrieved successfully: handyman_id=%s, count=%d, total_hours=%.1f",
		handymanID, len(result.Jobs), result.TotalHours)
	handlers.RespondJSON(w, http.StatusOK, result)
}
