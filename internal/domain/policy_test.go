package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/ptr"
)

// 2025-06-08 - воскресенье
func sundayAt(hour int) time.Time {
	return time.Date(2025, 6, 8, hour, 0, 0, 0, time.UTC)
}

func TestDefaultWorkingHoursPolicy(t *testing.T) {
	p := domain.DefaultWorkingHoursPolicy()

	assert.Equal(t, 8, p.StartHour)
	assert.Equal(t, 18, p.EndHour)
	assert.Equal(t, []time.Weekday{time.Sunday}, p.DaysOff)
	assert.NoError(t, p.Validate())
}

func TestWorkingHoursPolicy_Validate(t *testing.T) {
	tests := []struct {
		name    string
		policy  domain.WorkingHoursPolicy
		wantErr bool
	}{
		{"valid", domain.WorkingHoursPolicy{StartHour: 9, EndHour: 17}, false},
		{"start equals end", domain.WorkingHoursPolicy{StartHour: 9, EndHour: 9}, true},
		{"start after end", domain.WorkingHoursPolicy{StartHour: 18, EndHour: 8}, true},
		{"negative start", domain.WorkingHoursPolicy{StartHour: -1, EndHour: 8}, true},
		{"end out of range", domain.WorkingHoursPolicy{StartHour: 8, EndHour: 24}, true},
		{"bad day off", domain.WorkingHoursPolicy{StartHour: 8, EndHour: 18, DaysOff: []time.Weekday{7}}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.policy.Validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, domain.ErrInvalidPolicy)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestIsWorkingTime(t *testing.T) {
	p := domain.DefaultWorkingHoursPolicy()
	monday := sundayAt(0).AddDate(0, 0, 1)

	assert.False(t, domain.IsWorkingTime(sundayAt(10), p), "sunday is a day off")
	assert.True(t, domain.IsWorkingTime(monday.Add(8*time.Hour), p))
	assert.True(t, domain.IsWorkingTime(monday.Add(17*time.Hour+59*time.Minute), p))
	assert.False(t, domain.IsWorkingTime(monday.Add(18*time.Hour), p))
	assert.False(t, domain.IsWorkingTime(monday.Add(7*time.Hour), p))
}

func TestWorkingHoursPolicy_WorkingWindow(t *testing.T) {
	loc := time.FixedZone("UTC+3", 3*60*60)
	date := time.Date(2025, 6, 10, 15, 30, 0, 0, loc)

	w := domain.WorkingHoursPolicy{StartHour: 9, EndHour: 17}.WorkingWindow(date)

	assert.Equal(t, time.Date(2025, 6, 10, 9, 0, 0, 0, loc), w.Start)
	assert.Equal(t, time.Date(2025, 6, 10, 17, 0, 0, 0, loc), w.End)
}

func TestWorkingHoursPolicy_Normalized(t *testing.T) {
	p := domain.WorkingHoursPolicy{
		StartHour: 8,
		EndHour:   18,
		DaysOff:   []time.Weekday{time.Saturday, time.Sunday, time.Saturday},
	}

	assert.Equal(t, []time.Weekday{time.Sunday, time.Saturday}, p.Normalized().DaysOff)
}

func TestCommittedJob_EffectiveWindow(t *testing.T) {
	start := at(9, 0)

	t.Run("derived end uses default duration", func(t *testing.T) {
		job := domain.CommittedJob{ID: "j1", StartTime: &start}
		w, ok := job.EffectiveWindow()
		assert.True(t, ok)
		assert.Equal(t, at(13, 0), w.End)
	})

	t.Run("derived end uses stored duration", func(t *testing.T) {
		job := domain.CommittedJob{ID: "j1", StartTime: &start, DurationHours: ptr.Ptr(2.5)}
		w, ok := job.EffectiveWindow()
		assert.True(t, ok)
		assert.Equal(t, at(11, 30), w.End)
	})

	t.Run("explicit end wins", func(t *testing.T) {
		end := at(10, 0)
		job := domain.CommittedJob{ID: "j1", StartTime: &start, EndTime: &end, DurationHours: ptr.Ptr(6.0)}
		w, ok := job.EffectiveWindow()
		assert.True(t, ok)
		assert.Equal(t, end, w.End)
	})

	t.Run("missing start", func(t *testing.T) {
		job := domain.CommittedJob{ID: "j1"}
		_, ok := job.EffectiveWindow()
		assert.False(t, ok)
	})
}

func TestJobStatus_IsOccupying(t *testing.T) {
	assert.True(t, domain.StatusAgreedScheduled.IsOccupying())
	assert.True(t, domain.StatusAwaitingPayment.IsOccupying())
	assert.True(t, domain.StatusInProgress.IsOccupying())
	assert.True(t, domain.StatusPaymentProcessing.IsOccupying())
	assert.False(t, domain.StatusPending.IsOccupying())
	assert.False(t, domain.StatusCompleted.IsOccupying())
	assert.False(t, domain.StatusCancelled.IsOccupying())
}

func TestOperationError(t *testing.T) {
	err := domain.StoreUnavailable("CheckConflict", "h-1", assert.AnError)

	assert.ErrorIs(t, err, domain.ErrStoreUnavailable)

	var opErr *domain.OperationError
	if assert.ErrorAs(t, err, &opErr) {
		assert.Equal(t, "CheckConflict", opErr.Op)
		assert.Equal(t, "h-1", opErr.HandymanID)
	}
}
