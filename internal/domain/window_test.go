package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

func at(hour, min int) time.Time {
	return time.Date(2025, 6, 10, hour, min, 0, 0, time.UTC)
}

func window(startHour, endHour int) domain.TimeWindow {
	return domain.TimeWindow{Start: at(startHour, 0), End: at(endHour, 0)}
}

func TestNewTimeWindow(t *testing.T) {
	w, err := domain.NewTimeWindow(at(9, 0), at(13, 0))
	require.NoError(t, err)
	assert.Equal(t, 4.0, w.Hours())

	_, err = domain.NewTimeWindow(at(13, 0), at(13, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidWindow)

	_, err = domain.NewTimeWindow(at(14, 0), at(13, 0))
	assert.ErrorIs(t, err, domain.ErrInvalidWindow)
}

func TestNewTimeWindowForDuration(t *testing.T) {
	w, err := domain.NewTimeWindowForDuration(at(9, 0), 1.5)
	require.NoError(t, err)
	assert.Equal(t, at(10, 30), w.End)

	_, err = domain.NewTimeWindowForDuration(at(9, 0), 0)
	assert.ErrorIs(t, err, domain.ErrInvalidWindow)
}

func TestOverlaps(t *testing.T) {
	tests := []struct {
		name string
		a, b domain.TimeWindow
		want bool
	}{
		{"partial overlap", window(9, 13), window(12, 14), true},
		{"adjacent after", window(9, 13), window(13, 15), false},
		{"adjacent before", window(9, 13), window(7, 9), false},
		{"contained", window(9, 17), window(10, 11), true},
		{"identical", window(9, 13), window(9, 13), true},
		{"disjoint", window(9, 10), window(14, 15), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, domain.Overlaps(tt.a, tt.b))
			// Пересечение симметрично
			assert.Equal(t, tt.want, domain.Overlaps(tt.b, tt.a))
		})
	}
}

func TestOverlaps_HalfOpenBoundary(t *testing.T) {
	base := time.Unix(0, 0).UTC()
	a := domain.TimeWindow{Start: base, End: base.Add(10 * time.Second)}
	b := domain.TimeWindow{Start: base.Add(10 * time.Second), End: base.Add(20 * time.Second)}

	assert.False(t, domain.Overlaps(a, b))
	assert.False(t, domain.Overlaps(b, a))
}

func TestCheckOverlap(t *testing.T) {
	ok, err := domain.CheckOverlap(window(9, 13), window(12, 14))
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = domain.CheckOverlap(window(9, 13), window(13, 15))
	require.NoError(t, err)
	assert.False(t, ok)

	// Перевёрнутое окно - ошибка, а не молчаливый false
	assert.False(t, domain.Overlaps(window(13, 9), window(10, 11)))
	_, err = domain.CheckOverlap(window(13, 9), window(10, 11))
	assert.ErrorIs(t, err, domain.ErrInvalidWindow)
	_, err = domain.CheckOverlap(window(10, 11), window(12, 12))
	assert.ErrorIs(t, err, domain.ErrInvalidWindow)
}

func TestOverlapHours(t *testing.T) {
	assert.Equal(t, 1.0, domain.OverlapHours(window(9, 13), window(12, 14)))
	assert.Equal(t, 0.0, domain.OverlapHours(window(9, 13), window(13, 15)))
	assert.Equal(t, 0.0, domain.OverlapHours(window(9, 10), window(14, 15)))
	assert.Equal(t, 2.0, domain.OverlapHours(window(9, 17), window(10, 12)))
	assert.Equal(t,
		domain.OverlapHours(window(8, 12), window(10, 16)),
		domain.OverlapHours(window(10, 16), window(8, 12)))
}

func TestTimeWindow_Contains(t *testing.T) {
	w := window(9, 13)
	assert.True(t, w.Contains(at(9, 0)))
	assert.True(t, w.Contains(at(12, 59)))
	assert.False(t, w.Contains(at(13, 0)))
	assert.False(t, w.Contains(at(8, 59)))
}

func TestIsSameDay(t *testing.T) {
	assert.True(t, domain.IsSameDay(at(0, 0), at(23, 59)))
	assert.False(t, domain.IsSameDay(at(23, 59), at(23, 59).Add(time.Minute)))
	assert.Equal(t, at(0, 0), domain.StartOfDay(at(15, 45)))
}
