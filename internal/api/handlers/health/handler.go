package health

import (
	"context"
	"net/http"
	"time"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
)

const (
	statusOK          = "ok"
	statusUnavailable = "unavailable"
)

const pingTimeout = 2 * time.Second

// Response HTTP response model
type Response struct {
	Status  string `json:"status"`
	Storage string `json:"storage"`
}

type Handler struct {
	store   StorePinger
	storage string
	logger  Logger
}

func NewHandler(store StorePinger, storage string, logger Logger) *Handler {
	return &Handler{
		store:   store,
		storage: storage,
		logger:  logger,
	}
}

// Handle GET /health
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), pingTimeout)
	defer cancel()

	if err := h.store.Ping(ctx); err != nil {
		h.logger.Warn("GET /health - Store ping failed: storage=%s, error=%v", h.storage, err)
		handlers.RespondJSON(w, http.StatusServiceUnavailable, Response{Status: statusUnavailable, Storage: h.storage})
		return
	}

	handlers.RespondJSON(w, http.StatusOK, Response{Status: statusOK, Storage: h.storage})
}
