package working_hours

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"
	"github.com/lib/pq"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

const tableWorkingHours = "working_hours"

// Repository репозиторий рабочих часов мастеров
// Одна запись на мастера, выходные хранятся массивом INTEGER[]
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория рабочих часов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetWorkingHours получает рабочие часы мастера
// Возвращает domain.ErrPolicyNotFound, если мастер их не настраивал
func (r *Repository) GetWorkingHours(ctx context.Context, handymanID string) (*domain.WorkingHoursPolicy, error) {
	query, args, err := psqlbuilder.Select(
		"start_hour",
		"end_hour",
		"days_off",
	).
		From(tableWorkingHours).
		Where(squirrel.Eq{"handyman_id": handymanID}).
		ToSql()

	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - build select query: %v", ErrBuildQuery, err)
	}

	var (
		policy  domain.WorkingHoursPolicy
		daysOff []int64
	)

	err = r.db.QueryRowContext(ctx, query, args...).Scan(
		&policy.StartHour,
		&policy.EndHour,
		pq.Array(&daysOff),
	)

	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: handyman=%s", domain.ErrPolicyNotFound, handymanID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - scan working hours: %v", ErrScanRow, err)
	}

	policy.DaysOff = make([]time.Weekday, len(daysOff))
	for i, d := range daysOff {
		policy.DaysOff[i] = time.Weekday(d)
	}

	return &policy, nil
}

// SetWorkingHours сохраняет рабочие часы мастера (INSERT ... ON CONFLICT DO UPDATE)
func (r *Repository) SetWorkingHours(ctx context.Context, handymanID string, policy domain.WorkingHoursPolicy) error {
	daysOff := make([]int64, len(policy.DaysOff))
	for i, d := range policy.DaysOff {
		daysOff[i] = int64(d)
	}

	query, args, err := psqlbuilder.Insert(tableWorkingHours).
		Columns(
			"handyman_id",
			"start_hour",
			"end_hour",
			"days_off",
		).
		Values(
			handymanID,
			policy.StartHour,
			policy.EndHour,
			pq.Array(daysOff),
		).
		Suffix("ON CONFLICT (handyman_id) DO UPDATE SET " +
			"start_hour = EXCLUDED.start_hour, " +
			"end_hour = EXCLUDED.end_hour, " +
			"days_off = EXCLUDED.days_off, " +
			"updated_at = NOW()").
		ToSql()

	if err != nil {
		return fmt.Errorf("%w: SetWorkingHours - build upsert query: %v", ErrBuildQuery, err)
	}

	if _, err := r.db.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: SetWorkingHours - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
