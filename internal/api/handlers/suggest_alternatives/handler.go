package suggest_alternatives

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	suggestAlternatives "github.com/m04kA/SMC-ScheduleService/internal/usecase/suggest_alternatives"
)

const (
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidTime        = "некорректный формат желаемого времени, ожидается RFC3339 или YYYY-MM-DDTHH:MM"
	msgInvalidInput       = "некорректные параметры подбора"
)

const opSuggestAlternatives = "SuggestAlternatives"

type Handler struct {
	useCase  SuggestAlternativesUseCase
	defaults Defaults
	metrics  Metrics
	location *time.Location
	logger   Logger
}

func NewHandler(useCase SuggestAlternativesUseCase, defaults Defaults, metrics Metrics, location *time.Location, logger Logger) *Handler {
	return &Handler{
		useCase:  useCase,
		defaults: defaults,
		metrics:  metrics,
		location: location,
		logger:   logger,
	}
}

// Handle POST /api/v1/handymen/{handymanId}/alternatives
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handymanID := mux.Vars(r)["handymanId"]

	var req SuggestAlternativesRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("POST /handymen/{id}/alternatives - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	useCaseReq, err := req.ToUseCaseRequest(handymanID, h.defaults, h.location)
	if err != nil {
		h.logger.Warn("POST /handymen/{id}/alternatives - Invalid desired start: handyman_id=%s, error=%v", handymanID, err)
		handlers.RespondBadRequest(w, msgInvalidTime)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, suggestAlternatives.ErrInvalidInput):
			h.logger.Warn("POST /handymen/{id}/alternatives - Invalid input: handyman_id=%s, error=%v", handymanID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, domain.ErrStoreUnavailable):
			h.logger.Error("POST /handymen/{id}/alternatives - Store unavailable: handyman_id=%s, error=%v", handymanID, err)
			h.metrics.ObserveStoreFailure(opSuggestAlternatives)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("POST /handymen/{id}/alternatives - Failed to suggest alternatives: handyman_id=%s, error=%v", handymanID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.metrics.ObserveSuggestions(len(result.Suggestions))

	h.logger.Info("POST /handymen/{id}/alternatives - Suggestions built: handyman_id=%s, count=%d",
		handymanID, len(result.Suggestions))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
