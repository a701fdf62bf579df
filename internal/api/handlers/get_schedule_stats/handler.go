package get_schedule_stats

import (
	"errors"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getScheduleStats "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_schedule_stats"
)

const msgInvalidHandymanID = "некорректный ID мастера"

type Handler struct {
	useCase GetScheduleStatsUseCase
	logger  Logger
}

func NewHandler(useCase GetScheduleStatsUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle GET /api/v1/handymen/{handymanId}/stats
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handymanID := mux.Vars(r)["handymanId"]

	result, err := h.useCase.Execute(r.Context(), &getScheduleStats.Request{HandymanID: handymanID})
	if err != nil {
		switch {
		case errors.Is(err, getScheduleStats.ErrInvalidInput):
			h.logger.Warn("GET /handymen/{id}/stats - Invalid handyman ID: %v", err)
			handlers.RespondBadRequest(w, msgInvalidHandymanID)

		case errors.Is(err, domain.ErrStoreUnavailable):
			h.logger.Error("GET /handymen/{id}/stats - Store unavailable: handyman_id=%s, error=%v", handymanID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /handymen/{id}/stats - Failed to get stats: handyman_id=%s, error=%v", handymanID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /handymen/{id}/stats - Stats retrieved successfully: handyman_id=%s, this_week=%d, next_week=%d",
		handymanID, result.Stats.ProjectsThisWeek, result.Stats.ProjectsNextWeek)
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
