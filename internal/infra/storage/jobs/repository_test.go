package jobs

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

func TestBuildQuery(t *testing.T) {
	from := time.Date(2025, 6, 8, 0, 0, 0, 0, time.UTC)
	to := from.AddDate(0, 0, 7)

	t.Run("occupying statuses with period", func(t *testing.T) {
		query, args, err := buildQuery(domain.OccupyingJobsFilter("h-1", &from, &to))
		require.NoError(t, err)

		assert.Equal(t,
			"SELECT id, title, handyman_id, status, start_time, end_time, duration_hours FROM jobs "+
				"WHERE handyman_id = $1 AND status IN ($2,$3,$4,$5) AND start_time >= $6 AND start_time < $7 "+
				"ORDER BY start_time ASC NULLS LAST, id ASC",
			query)
		assert.Equal(t, []interface{}{
			"h-1", "agreed_scheduled", "awaiting_payment", "in_progress", "payment_processing", from, to,
		}, args)
	})

	t.Run("no status filter", func(t *testing.T) {
		query, args, err := buildQuery(domain.JobsFilter{HandymanID: "h-1"})
		require.NoError(t, err)

		assert.NotContains(t, query, "status IN")
		assert.Equal(t, []interface{}{"h-1"}, args)
	})

	t.Run("missing handyman", func(t *testing.T) {
		_, _, err := buildQuery(domain.JobsFilter{})
		assert.ErrorIs(t, err, ErrInvalidFilter)
	})
}
