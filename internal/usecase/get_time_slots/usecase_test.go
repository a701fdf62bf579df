package get_time_slots

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

type mockWorkingHoursRepository struct {
	mock.Mock
}

func (m *mockWorkingHoursRepository) GetWorkingHours(ctx context.Context, handymanID string) (*domain.WorkingHoursPolicy, error) {
	args := m.Called(ctx, handymanID)
	if p := args.Get(0); p != nil {
		return p.(*domain.WorkingHoursPolicy), args.Error(1)
	}
	return nil, args.Error(1)
}

// 2025-06-10 - вторник
func tuesday(hour int) time.Time {
	return time.Date(2025, 6, 10, hour, 0, 0, 0, time.UTC)
}

func scheduledJob(id string, start time.Time, hours float64) *domain.CommittedJob {
	return &domain.CommittedJob{
		ID:            id,
		HandymanID:    "h-1",
		Status:        domain.StatusAgreedScheduled,
		StartTime:     &start,
		DurationHours: &hours,
	}
}

func slotHours(slots []domain.TimeSlot) [][2]int {
	result := make([][2]int, len(slots))
	for i, s := range slots {
		result[i] = [2]int{s.StartTime.Hour(), s.EndTime.Hour()}
	}
	return result
}

func TestExecute_DefaultSlotsWithBusyJob(t *testing.T) {
	jobs := new(mockJobRepository)
	jobs.On("QueryJobs", mock.Anything, mock.Anything).
		Return([]*domain.CommittedJob{scheduledJob("job-1", tuesday(11), 4)}, nil)

	policies := new(mockWorkingHoursRepository)
	policies.On("GetWorkingHours", mock.Anything, "h-1").Return(nil, domain.ErrPolicyNotFound)

	uc := NewUseCase(jobs, policies, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{HandymanID: "h-1", Date: tuesday(15)})
	require.NoError(t, err)

	assert.False(t, resp.DayOff)
	assert.Equal(t, 2.0, resp.SlotHours)
	assert.Equal(t, [][2]int{{8, 10}, {10, 12}, {12, 14}, {14, 16}, {16, 18}}, slotHours(resp.Slots))

	available := make([]bool, len(resp.Slots))
	for i, s := range resp.Slots {
		available[i] = s.Available
	}
	// Заказ 11:00-15:00 занимает слоты 10-12, 12-14 и 14-16
	assert.Equal(t, []bool{true, false, false, false, true}, available)
}

func TestExecute_QueryCoversPreviousDay(t *testing.T) {
	jobs := new(mockJobRepository)
	policies := new(mockWorkingHoursRepository)
	policies.On("GetWorkingHours", mock.Anything, "h-1").Return(nil, domain.ErrPolicyNotFound)

	day := tuesday(0)
	to := day.AddDate(0, 0, 1)
	overnight := scheduledJob("overnight", day.Add(-2*time.Hour), 12)

	jobs.On("QueryJobs", mock.Anything, domain.OccupyingJobsFilter("h-1", nil, &to)).
		Return([]*domain.CommittedJob{overnight}, nil)

	uc := NewUseCase(jobs, policies, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{HandymanID: "h-1", Date: tuesday(9)})
	require.NoError(t, err)

	// Заказ 22:00 накануне + 12ч заканчивается в 10:00
	require.Len(t, resp.Slots, 5)
	assert.False(t, resp.Slots[0].Available)
	assert.True(t, resp.Slots[1].Available)
	jobs.AssertExpectations(t)
}

// rangeJobStore отбирает заказы по времени начала так же, как адаптеры хранилища
type rangeJobStore struct {
	jobs []*domain.CommittedJob
}

func (s *rangeJobStore) QueryJobs(_ context.Context, filter domain.JobsFilter) ([]*domain.CommittedJob, error) {
	result := make([]*domain.CommittedJob, 0)
	for _, job := range s.jobs {
		if !job.HasStartTime() {
			continue
		}
		if filter.From != nil && job.StartTime.Before(*filter.From) {
			continue
		}
		if filter.To != nil && !job.StartTime.Before(*filter.To) {
			continue
		}
		result = append(result, job)
	}
	return result, nil
}

func TestExecute_MultiDayJobStartedEarlier(t *testing.T) {
	start := time.Date(2025, 6, 8, 8, 0, 0, 0, time.UTC)
	end := time.Date(2025, 6, 11, 18, 0, 0, 0, time.UTC)
	store := &rangeJobStore{jobs: []*domain.CommittedJob{{
		ID:         "renovation",
		HandymanID: "h-1",
		Status:     domain.StatusInProgress,
		StartTime:  &start,
		EndTime:    &end,
	}}}

	policies := new(mockWorkingHoursRepository)
	policies.On("GetWorkingHours", mock.Anything, "h-1").Return(nil, domain.ErrPolicyNotFound)

	uc := NewUseCase(store, policies, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{HandymanID: "h-1", Date: tuesday(0)})
	require.NoError(t, err)

	// Заказ 8-11 июня занимает весь рабочий день 10-го
	require.Len(t, resp.Slots, 5)
	for _, s := range resp.Slots {
		assert.False(t, s.Available, "slot %s", s.StartTime.Format(domain.TimeFormat))
	}
}

func TestExecute_DayOff(t *testing.T) {
	jobs := new(mockJobRepository)
	policies := new(mockWorkingHoursRepository)
	policies.On("GetWorkingHours", mock.Anything, "h-1").Return(nil, domain.ErrPolicyNotFound)

	uc := NewUseCase(jobs, policies, logger.NewNop())

	// 2025-06-08 - воскресенье, выходной по умолчанию
	resp, err := uc.Execute(context.Background(), &Request{
		HandymanID: "h-1",
		Date:       time.Date(2025, 6, 8, 12, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)

	assert.True(t, resp.DayOff)
	assert.Empty(t, resp.Slots)
	jobs.AssertNotCalled(t, "QueryJobs", mock.Anything, mock.Anything)
}

func TestExecute_CustomPolicyAndSlotLength(t *testing.T) {
	jobs := new(mockJobRepository)
	jobs.On("QueryJobs", mock.Anything, mock.Anything).Return([]*domain.CommittedJob{}, nil)

	policies := new(mockWorkingHoursRepository)
	policies.On("GetWorkingHours", mock.Anything, "h-1").
		Return(&domain.WorkingHoursPolicy{StartHour: 9, EndHour: 17}, nil)

	uc := NewUseCase(jobs, policies, logger.NewNop())

	resp, err := uc.Execute(context.Background(), &Request{
		HandymanID: "h-1",
		Date:       tuesday(0),
		SlotHours:  ptr.Ptr(3.0),
	})
	require.NoError(t, err)

	// Последний слот обрезан по концу рабочего дня
	assert.Equal(t, [][2]int{{9, 12}, {12, 15}, {15, 17}}, slotHours(resp.Slots))
	for _, s := range resp.Slots {
		assert.True(t, s.Available)
	}
}

func TestExecute_StoreUnavailable(t *testing.T) {
	t.Run("policy store", func(t *testing.T) {
		policies := new(mockWorkingHoursRepository)
		policies.On("GetWorkingHours", mock.Anything, "h-1").Return(nil, errors.New("timeout"))

		uc := NewUseCase(new(mockJobRepository), policies, logger.NewNop())

		_, err := uc.Execute(context.Background(), &Request{HandymanID: "h-1", Date: tuesday(0)})
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})

	t.Run("job store", func(t *testing.T) {
		policies := new(mockWorkingHoursRepository)
		policies.On("GetWorkingHours", mock.Anything, "h-1").Return(nil, domain.ErrPolicyNotFound)
		jobs := new(mockJobRepository)
		jobs.On("QueryJobs", mock.Anything, mock.Anything).Return(nil, errors.New("timeout"))

		uc := NewUseCase(jobs, policies, logger.NewNop())

		_, err := uc.Execute(context.Background(), &Request{HandymanID: "h-1", Date: tuesday(0)})
		assert.ErrorIs(t, err, domain.ErrStoreUnavailable)
	})
}

func TestExecute_Validation(t *testing.T) {
	uc := NewUseCase(new(mockJobRepository), new(mockWorkingHoursRepository), logger.NewNop())

	_, err := uc.Execute(context.Background(), &Request{Date: tuesday(0)})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{HandymanID: "h-1"})
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{HandymanID: "h-1", Date: tuesday(0), SlotHours: ptr.Ptr(0.25)})
	assert.ErrorIs(t, err, ErrInvalidSlotHours)
}

func TestGenerateTimeSlots(t *testing.T) {
	working := domain.TimeWindow{Start: tuesday(8), End: tuesday(18)}

	assert.Len(t, generateTimeSlots(working, 2*time.Hour), 5)
	assert.Len(t, generateTimeSlots(working, 30*time.Minute), 20)
	assert.Len(t, generateTimeSlots(working, 12*time.Hour), 1)
	assert.Empty(t, generateTimeSlots(working, 0))
}
