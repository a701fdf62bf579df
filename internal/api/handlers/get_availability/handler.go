package get_availability

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getAvailability "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_availability"
)

const (
	msgMissingRange = "параметры from и to обязательны"
	msgInvalidDate  = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidRange = "некорректный период: from должен быть не позже to"
	msgRangeTooLong = "период слишком длинный, максимум 62 дня"
)

type Handler struct {
	useCase  GetAvailabilityUseCase
	location *time.Location
	logger   Logger
}

func NewHandler(useCase GetAvailabilityUseCase, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		location: location,
		logger:   logger,
	}
}

// Handle GET /api/v1/handymen/{handymanId}/availability
// Query params: from (required, YYYY-MM-DD), to (required, YYYY-MM-DD, включительно)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handymanID := mux.Vars(r)["handymanId"]

	fromStr := r.URL.Query().Get("from")
	toStr := r.URL.Query().Get("to")
	if fromStr == "" || toStr == "" {
		h.logger.Warn("GET /handymen/{id}/availability - Missing range: handyman_id=%s", handymanID)
		handlers.RespondBadRequest(w, msgMissingRange)
		return
	}

	useCaseReq, err := ToUseCaseRequest(handymanID, fromStr, toStr, h.location)
	if err != nil {
		h.logger.Warn("GET /handymen/{id}/availability - Invalid date format: %v", err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getAvailability.ErrRangeTooLong):
			h.logger.Warn("GET /handymen/{id}/availability - Range too long: handyman_id=%s, from=%s, to=%s",
				handymanID, fromStr, toStr)
			handlers.RespondBadRequest(w, msgRangeTooLong)

		case errors.Is(err, getAvailability.ErrInvalidInput):
			h.logger.Warn("GET /handymen/{id}/availability - Invalid range: handyman_id=%s, error=%v", handymanID, err)
			handlers.RespondBadRequest(w, msgInvalidRange)

		case errors.Is(err, domain.ErrStoreUnavailable):
			h.logger.Error("GET /handymen/{id}/availability - Store unavailable: handyman_id=%s, error=%v", handymanID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /handymen/{id}/availability - Failed to get availability: handyman_id=%s, error=%v", handymanID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /handymen/{id}/availability - Availability retrieved: handyman_id=%s, days=%d",
		handymanID, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
