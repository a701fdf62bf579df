package get_schedule_stats

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

type mockJobRepository struct {
	mock.Mock
}

func (m *mockJobRepository) QueryJobs(ctx context.Context, filter domain.JobsFilter) ([]*domain.CommittedJob, error) {
	args := m.Called(ctx, filter)
	if jobs := args.Get(0); jobs != nil {
		return jobs.([]*domain.CommittedJob), args.Error(1)
	}
	return nil, args.Error(1)
}

type fixedTime struct {
	now time.Time
}

func (f fixedTime) Now() time.Time {
	return f.now
}

func june(day int) time.Time {
	return time.Date(2025, 6, day, 0, 0, 0, 0, time.UTC)
}

func job(id string, hours *float64) *domain.CommittedJob {
	start := june(11).Add(9 * time.Hour)
	return &domain.CommittedJob{ID: id, HandymanID: "h-1", Status: domain.StatusAgreedScheduled, StartTime: &start, DurationHours: hours}
}

func periodFilter(from, to time.Time) domain.JobsFilter {
	return domain.OccupyingJobsFilter("h-1", &from, &to)
}

func TestBuildPeriods(t *testing.T) {
	// Среда 2025-06-11, неделя с воскресенья 2025-06-08
	p := buildPeriods(june(11).Add(15 * time.Hour))

	assert.Equal(t, june(8), p.thisWeek.Start)
	assert.Equal(t, june(15), p.thisWeek.End)
	assert.Equal(t, june(15), p.nextWeek.Start)
	assert.Equal(t, june(22), p.nextWeek.End)
	assert.Equal(t, june(11), p.month.Start)
	assert.Equal(t, time.Date(2025, 7, 11, 0, 0, 0, 0, time.UTC), p.month.End)

	// Воскресенье - первый день своей недели
	p = buildPeriods(june(8).Add(10 * time.Hour))
	assert.Equal(t, june(8), p.thisWeek.Start)
}

func TestExecute_Aggregates(t *testing.T) {
	repo := new(mockJobRepository)
	repo.On("QueryJobs", mock.Anything, periodFilter(june(8), june(15))).
		Return([]*domain.CommittedJob{job("a", ptr.Ptr(2.0)), job("b", nil)}, nil)
	repo.On("QueryJobs", mock.Anything, periodFilter(june(15), june(22))).
		Return([]*domain.CommittedJob{job("c", ptr.Ptr(1.5))}, nil)
	repo.On("QueryJobs", mock.Anything, periodFilter(june(11), june(11).AddDate(0, 0, 30))).
		Return([]*domain.CommittedJob{job("a", ptr.Ptr(2.0)), job("b", nil), job("c", ptr.Ptr(1.5)), job("d", ptr.Ptr(8.5))}, nil)

	uc := NewUseCase(repo, fixedTime{now: june(11).Add(15 * time.Hour)}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{HandymanID: "h-1"})
	require.NoError(t, err)

	assert.Equal(t, domain.ScheduleStats{
		ProjectsThisWeek:       2,
		ProjectsNextWeek:       1,
		ProjectsNextMonth:      4,
		HoursThisWeek:          6.0, // 2 + 4 по умолчанию
		HoursNextWeek:          1.5,
		AverageProjectDuration: 4.0, // (2 + 4 + 1.5 + 8.5) / 4
	}, resp.Stats)
	repo.AssertExpectations(t)
}

func TestExecute_ZeroJobs(t *testing.T) {
	repo := new(mockJobRepository)
	repo.On("QueryJobs", mock.Anything, mock.Anything).Return([]*domain.CommittedJob{}, nil)

	uc := NewUseCase(repo, fixedTime{now: june(11)}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{HandymanID: "h-1"})
	require.NoError(t, err)

	assert.Equal(t, 0.0, resp.Stats.AverageProjectDuration)
	assert.Equal(t, 0, resp.Stats.ProjectsNextMonth)
}

func TestExecute_AnyFailureFailsWhole(t *testing.T) {
	repo := new(mockJobRepository)
	repo.On("QueryJobs", mock.Anything, periodFilter(june(8), june(15))).Return([]*domain.CommittedJob{}, nil)
	repo.On("QueryJobs", mock.Anything, periodFilter(june(15), june(22))).Return(nil, errors.New("unavailable"))
	repo.On("QueryJobs", mock.Anything, periodFilter(june(11), june(11).AddDate(0, 0, 30))).Return([]*domain.CommittedJob{}, nil).Maybe()

	uc := NewUseCase(repo, fixedTime{now: june(11)}, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{HandymanID: "h-1"})

	assert.Nil(t, resp)
	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	var opErr *domain.OperationError
	require.ErrorAs(t, err, &opErr)
	assert.Equal(t, "GetScheduleStats", opErr.Op)
}

func TestExecute_InvalidInput(t *testing.T) {
	uc := NewUseCase(new(mockJobRepository), fixedTime{now: june(11)}, logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{})
	assert.ErrorIs(t, err, ErrInvalidInput)
}
