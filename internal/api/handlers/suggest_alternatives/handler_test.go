package suggest_alternatives

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	suggestAlternatives "github.com/m04kA/SMC-ScheduleService/internal/usecase/suggest_alternatives"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
)

type mockUseCase struct {
	mock.Mock
}

func (m *mockUseCase) Execute(ctx context.Context, req *suggestAlternatives.Request) (*suggestAlternatives.Response, error) {
	args := m.Called(ctx, req)
	if resp := args.Get(0); resp != nil {
		return resp.(*suggestAlternatives.Response), args.Error(1)
	}
	return nil, args.Error(1)
}

type fakeMetrics struct {
	counts   []int
	failures []string
}

func (f *fakeMetrics) ObserveSuggestions(count int)         { f.counts = append(f.counts, count) }
func (f *fakeMetrics) ObserveStoreFailure(operation string) { f.failures = append(f.failures, operation) }

func doRequest(h *Handler, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/handymen/h-1/alternatives", strings.NewReader(body))
	req = mux.SetURLVars(req, map[string]string{"handymanId": "h-1"})
	rec := httptest.NewRecorder()
	h.Handle(rec, req)
	return rec
}

func TestHandle_AppliesDefaults(t *testing.T) {
	desired := time.Date(2025, 6, 10, 9, 0, 0, 0, time.UTC)
	alt := desired.AddDate(0, 0, 1)

	uc := new(mockUseCase)
	uc.On("Execute", mock.Anything, mock.MatchedBy(func(r *suggestAlternatives.Request) bool {
		return r.HandymanID == "h-1" && r.DesiredStart.Equal(desired) &&
			r.MaxDays != nil && *r.MaxDays == 10 &&
			r.MaxResults != nil && *r.MaxResults == 2 &&
			r.DurationHours != nil && *r.DurationHours == 3
	})).Return(&suggestAlternatives.Response{
		HandymanID: "h-1",
		Suggestions: []domain.AlternativeSuggestion{
			{Date: alt, Label: "Wednesday", DayOfWeek: "Wednesday"},
		},
	}, nil)

	m := &fakeMetrics{}
	h := NewHandler(uc, Defaults{MaxDays: 10, MaxResults: 4}, m, time.UTC, logger.NewNop())

	rec := doRequest(h, `{"desiredStart":"2025-06-10T09:00","durationHours":3,"maxResults":2}`)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{
		"handymanId": "h-1",
		"suggestions": [{"date": "2025-06-11", "startTime": "2025-06-11T09:00:00Z", "label": "Wednesday", "dayOfWeek": "Wednesday"}]
	}`, rec.Body.String())
	assert.Equal(t, []int{1}, m.counts)
	uc.AssertExpectations(t)
}

func TestHandle_Errors(t *testing.T) {
	tests := []struct {
		name        string
		body        string
		ucErr       error
		wantStatus  int
		wantFailure bool
	}{
		{"bad body", `[]`, nil, http.StatusBadRequest, false},
		{"bad desired start", `{"desiredStart":"soon"}`, nil, http.StatusBadRequest, false},
		{"invalid input", `{"desiredStart":"2025-06-10T09:00","maxDays":100}`, suggestAlternatives.ErrInvalidInput, http.StatusBadRequest, false},
		{"store unavailable", `{"desiredStart":"2025-06-10T09:00"}`,
			domain.StoreUnavailable("SuggestAlternatives", "h-1", assert.AnError), http.StatusServiceUnavailable, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := new(mockUseCase)
			if tt.ucErr != nil {
				uc.On("Execute", mock.Anything, mock.Anything).Return(nil, tt.ucErr)
			}

			m := &fakeMetrics{}
			rec := doRequest(NewHandler(uc, Defaults{}, m, time.UTC, logger.NewNop()), tt.body)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantFailure {
				assert.Equal(t, []string{opSuggestAlternatives}, m.failures)
			}
			assert.Empty(t, m.counts)
		})
	}
}
