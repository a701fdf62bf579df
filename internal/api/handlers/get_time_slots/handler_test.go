package get_time_slots

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	getTimeSlots "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_time_slots"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *getTimeSlots.Request) (*getTimeSlots.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*getTimeSlots.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

func doRequest(h *Handler, query string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/handymen/h-1/time-slots"+query, nil)
	req = mux.SetURLVars(req, map[string]string{"handymanId": "h-1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_DefaultSlotHours(t *testing.T) {
	day := time.Date(2025, 6, 10, 0, 0, 0, 0, time.UTC)

	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *getTimeSlots.Request) bool {
		return r.HandymanID == "h-1" && r.Date.Equal(day) && r.SlotHours != nil && *r.SlotHours == 3
	})).Return(&getTimeSlots.Response{
		HandymanID: "h-1",
		Date:       day,
		SlotHours:  3,
		Slots: []domain.TimeSlot{
			{StartTime: day.Add(8 * time.Hour), EndTime: day.Add(11 * time.Hour), Available: true},
			{StartTime: day.Add(11 * time.Hour), EndTime: day.Add(14 * time.Hour), Available: false},
		},
	}, nil)

	h := NewHandler(uc, 3, time.UTC, logger.NewNop())
	rec := doRequest(h, "?date=2025-06-10")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"handymanId": "h-1",
		"date": "2025-06-10",
		"slotHours": 3,
		"dayOff": false,
		"slots": [
			{"startTime": "08:00", "endTime": "11:00", "available": true},
			{"startTime": "11:00", "endTime": "14:00", "available": false}
		]
	}`, rec.Body.String())
	uc.AssertExpectations(t)
}

func TestHandle_ExplicitSlotHours(t *testing.T) {
	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *getTimeSlots.Request) bool {
		return *r.SlotHours == 1.5
	})).Return(&getTimeSlots.Response{HandymanID: "h-1", DayOff: true}, nil)

	rec := doRequest(NewHandler(uc, 2, time.UTC, logger.NewNop()), "?date=2025-06-08&slotHours=1.5")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"dayOff":true`)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		query      string
		ucErr      error
		wantStatus int
	}{
		{"missing date", "", nil, http.StatusBadRequest},
		{"bad date", "?date=June", nil, http.StatusBadRequest},
		{"bad slot hours", "?date=2025-06-10&slotHours=two", nil, http.StatusBadRequest},
		{"slot out of range", "?date=2025-06-10&slotHours=20", getTimeSlots.ErrInvalidSlotHours, http.StatusBadRequest},
		{"store unavailable", "?date=2025-06-10",
			domain.StoreUnavailable("GetAvailableTimeSlots", "h-1", assert.AnError), http.StatusServiceUnavailable},
		{"unexpected", "?date=2025-06-10", assert.AnError, http.StatusInternalServerError},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			rec := doRequest(NewHandler(uc, 2, time.UTC, logger.NewNop()), tt.query)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
