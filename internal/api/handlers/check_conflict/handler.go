package check_conflict

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	checkConflict "github.com/m04kA/SMC-ScheduleService/internal/usecase/check_conflict"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат времени, ожидается RFC3339 или YYYY-MM-DDTHH:MM"
	msgInvalidWindow      = "время окончания должно быть позже времени начала"
	msgInvalidInput       = "некорректные параметры проверки"
)

const opCheckConflict = "CheckConflict"

type Handler struct {
	useCase  CheckConflictUseCase
	metrics  Metrics
	location *time.Location
	logger   Logger
}

func NewHandler(useCase CheckConflictUseCase, metrics Metrics, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		metrics:  metrics,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/handymen/{handymanId}/conflicts/check
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handymanID := mux.Vars(r)["handymanId"]

	var req CheckConflictRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /handymen/{id}/conflicts/check - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(handymanID, h.location)
	if err != nil {
		h.logger.Warn("POST /handymen/{id}/conflicts/check - Invalid time: handyman_id=%s, error=%v", handymanID, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, domain.ErrInvalidWindow):
			h.logger.Warn("POST /handymen/{id}/conflicts/check - Invalid window: handyman_id=%s, error=%v", handymanID, err)
			handlers.RespondBadRequest(w, msgInvalidWindow)

		case errors.Is(err, checkConflict.ErrInvalidInput):
			h.logger.Warn("POST /handymen/{id}/conflicts/check - Invalid input: handyman_id=%s, error=%v", handymanID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, domain.ErrStoreUnavailable):
			h.logger.Error("POST /handymen/{id}/conflicts/check - Store unavailable: handyman_id=%s, error=%v", handymanID, err)
			h.metrics.ObserveStoreFailure(opCheckConflict)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /handymen/{id}/conflicts/check - Failed to check conflict: handyman_id=%s, error=%v", handymanID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.metrics.ObserveConflictCheck(result.HasConflict)

	h.logger.Info("POST /handymen/{id}/conflicts/check - Checked: handyman_id=%s, has_conflict=%t, conflicts=%d",
		handymanID, result.HasConflict, len(result.ConflictingJobs))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
