package get_working_hours

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/internal/service/working_hours/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Get(ctx context.Context, handymanID string) (*models.WorkingHoursResponse, error) {
	args := m.Called(ctx, handymanID)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.WorkingHoursResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

func doRequest(h *Handler) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/api/v1/handymen/h-1/working-hours", nil)
	req = mux.SetURLVars(req, map[string]string{"handymanId": "h-1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_Default(t *testing.T) {
	svc := new(mockService)
	svc.On("Get", mock.Anything, "h-1").
		Return(models.FromDomainPolicy("h-1", domain.DefaultWorkingHoursPolicy(), true), nil)

	rec := doRequest(NewHandler(svc, logger.NewNop()))

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"handymanId":"h-1","startHour":8,"endHour":18,"daysOff":[0],"isDefault":true}`, rec.Body.String())
}

func TestHandle_StoreUnavailable(t *testing.T) {
	svc := new(mockService)
	svc.On("Get", mock.Anything, "h-1").
		Return(nil, domain.StoreUnavailable("GetWorkingHours", "h-1", assert.AnError))

	rec := doRequest(NewHandler(svc, logger.NewNop()))

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}
