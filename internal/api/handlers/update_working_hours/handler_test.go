package update_working_hours

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	workingHours "github.com/m04kA/SMC-ScheduleService/internal/service/working_hours"
	"github.com/m04kA/SMC-ScheduleService/internal/service/working_hours/models"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type mockService struct {
	mock.Mock
}

func (m *mockService) Update(ctx context.Context, req *models.UpdateWorkingHoursRequest) (*models.WorkingHoursResponse, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*models.WorkingHoursResponse), args.Error(1)
	}
	return nil, args.Error(1)
}

// serve прогоняет запрос через mux с Auth, как в cmd/main.go
func serve(h *Handler, userID, body string) *httptest.ResponseRecorder {
	r := mux.NewRouter()
	protected := r.PathPrefix("/api/v1").Subrouter()
	protected.Use(middleware.Auth)
	protected.HandleFunc("/handymen/{handymanId}/working-hours", h.Handle).Methods(http.MethodPut)

	req := httptest.NewRequest(http.MethodPut, "/api/v1/handymen/h-1/working-hours", strings.NewReader(body))
	if userID != "" {
		req.Header.Set(middleware.HeaderUserID, userID)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func TestHandle_Success(t *testing.T) {
	svc := new(mockService)
	svc.On("Update", mock.Anything, mock.MatchedBy(func(req *models.UpdateWorkingHoursRequest) bool {
		return req.UserID == "h-1" && req.HandymanID == "h-1" &&
			req.StartHour != nil && *req.StartHour == 9 &&
			req.EndHour == nil &&
			req.DaysOff != nil && assert.ObjectsAreEqual([]int{0, 6}, *req.DaysOff)
	})).Return(&models.WorkingHoursResponse{
		HandymanID: "h-1",
		StartHour:  9,
		EndHour:    18,
		DaysOff:    []int{0, 6},
	}, nil)

	rec := serve(NewHandler(svc, logger.NewNop()), "h-1", `{"startHour":9,"daysOff":[0,6]}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"handymanId":"h-1","startHour":9,"endHour":18,"daysOff":[0,6],"isDefault":false}`, rec.Body.String())
	svc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name       string
		userID     string
		body       string
		svcErr     error
		wantStatus int
	}{
		{"no user", "", `{"startHour":9}`, nil, http.StatusUnauthorized},
		{"bad body", "h-1", `{"startHour":"nine"}`, nil, http.StatusBadRequest},
		{"other user", "h-2", `{"startHour":9}`, workingHours.ErrAccessDenied, http.StatusForbidden},
		{"invalid policy", "h-1", `{"startHour":19}`, domain.ErrInvalidPolicy, http.StatusBadRequest},
		{"empty update", "h-1", `{}`, workingHours.ErrInvalidInput, http.StatusBadRequest},
		{"store unavailable", "h-1", `{"startHour":9}`,
			domain.StoreUnavailable("UpdateWorkingHours", "h-1", assert.AnError), http.StatusServiceUnavailable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(mockService)
			if tt.svcErr != nil {
				svc.On("Update", mock.Anything, mock.Anything).Return(nil, tt.svcErr)
			}

			rec := serve(NewHandler(svc, logger.NewNop()), tt.userID, tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
		})
	}
}
