package get_time_slots

import (
	"errors"
	"net/http"
	"time"

	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-ScheduleService/internal/api/handlers"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getTimeSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_time_slots"
)

const (
	msgMissingDate      = "дата обязательна"
	msgInvalidParams    = "некорректный формат даты (YYYY-MM-DD) или длины слота"
	msgInvalidSlotHours = "длина слота должна быть от 0.5 до 12 часов"
	msgInvalidInput     = "некорректные параметры запроса"
)

type Handler struct {
	useCase          GetTimeSlotsUseCase
	defaultSlotHours float64
	location         *time.Location
	logger           Logger
}

func NewHandler(useCase GetTimeSlotsUseCase, defaultSlotHours float64, location *time.Location, logger Logger) *Handler {
	if defaultSlotHours <= 0 {
		defaultSlotHours = domain.DefaultSlotHours
	}
	return &Handler{
		useCase:          useCase,
		defaultSlotHours: defaultSlotHours,
		location:         location,
		logger:           logger,
	}
}

// Handle GET /api/v1/handymen/{handymanId}/time-slots
// Query params: date (required, YYYY-MM-DD), slotHours (optional)
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	handymanID := mux.Vars(r)["handymanId"]

	dateStr := r.URL.Query().Get("date")
	if dateStr == "" {
		h.logger.Warn("GET /handymen/{id}/time-slots - Missing date: handyman_id=%s", handymanID)
		handlers.RespondBadRequest(w, msgMissingDate)
		return
	}

	useCaseReq, err := ToUseCaseRequest(handymanID, dateStr, r.URL.Query().Get("slotHours"), h.defaultSlotHours, h.location)
	if err != nil {
		h.logger.Warn("GET /handymen/{id}/time-slots - Invalid parameters: %v", err)
		handlers.RespondBadRequest(w, msgInvalidParams)
		return
	}

	result, err := h.useCase.Execute(r.Context(), useCaseReq)
	if err != nil {
		switch {
		case errors.Is(err, getTimeSlots.ErrInvalidSlotHours):
			h.logger.Warn("GET /handymen/{id}/time-slots - Invalid slot length: handyman_id=%s, slot_hours=%v",
				handymanID, *useCaseReq.SlotHours)
			handlers.RespondBadRequest(w, msgInvalidSlotHours)

		case errors.Is(err, getTimeSlots.ErrInvalidInput):
			h.logger.Warn("GET /handymen/{id}/time-slots - Invalid input: handyman_id=%s, error=%v", handymanID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		case errors.Is(err, domain.ErrStoreUnavailable):
			h.logger.Error("GET /handymen/{id}/time-slots - Store unavailable: handyman_id=%s, error=%v", handymanID, err)
			handlers.RespondServiceUnavailable(w)

		default:
			h.logger.Error("GET /handymen/{id}/time-slots - Failed to get slots: handyman_id=%s, date=%s, error=%v",
				handymanID, dateStr, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("GET /handymen/{id}/time-slots - Slots retrieved successfully: handyman_id=%s, date=%s, day_off=%t, slots_count=%d",
		handymanID, dateStr, result.DayOff, len(result.Slots))
	handlers.RespondJSON(w, http.StatusOK, FromUseCaseResponse(result))
}
