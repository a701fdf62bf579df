package jobs

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	"github.com/m04kA/SMC-ScheduleService/pkg/psqlbuilder"
)

const tableJobs = "jobs"

var jobColumns = []string{
	"id",
	"title",
	"handyman_id",
	"status",
	"start_time",
	"end_time",
	"duration_hours",
}

// Repository репозиторий заказов мастеров (только чтение)
// Таблица jobs принадлежит сервису заказов, планировщик её не изменяет
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория заказов
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// QueryJobs получает заказы мастера с фильтрацией по статусам и периоду начала
// Период: start_time >= From и start_time < To; заказы без start_time при заданном периоде не попадают в выборку
// Порядок - по времени начала, заказы без времени начала в конце
func (r *Repository) QueryJobs(ctx context.Context, filter domain.JobsFilter) ([]*domain.CommittedJob, error) {
	query, args, err := buildQuery(filter)
	if err != nil {
		return nil, err
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: QueryJobs - execute select: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	jobs := make([]*domain.CommittedJob, 0)
	for rows.Next() {
		job, err := scanJob(rows)
		if err != nil {
			return nil, err
		}
		jobs = append(jobs, job)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: QueryJobs - rows iteration: %v", ErrScanRow, err)
	}

	return jobs, nil
}

// buildQuery строит SELECT по фильтру
func buildQuery(filter domain.JobsFilter) (string, []interface{}, error) {
	if filter.HandymanID == "" {
		return "", nil, ErrInvalidFilter
	}

	builder := psqlbuilder.Select(jobColumns...).
		From(tableJobs).
		Where(squirrel.Eq{"handyman_id": filter.HandymanID})

	// Фильтр по статусам (squirrel.Eq со слайсом превращается в IN)
	if len(filter.Statuses) > 0 {
		builder = builder.Where(squirrel.Eq{"status": filter.StatusStrings()})
	}

	// Фильтр по периоду
	if filter.From != nil {
		builder = builder.Where(squirrel.GtOrEq{"start_time": *filter.From})
	}
	if filter.To != nil {
		builder = builder.Where(squirrel.Lt{"start_time": *filter.To})
	}

	query, args, err := builder.OrderBy("start_time ASC NULLS LAST", "id ASC").ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: QueryJobs - build select query: %v", ErrBuildQuery, err)
	}

	return query, args, nil
}

// scanJob сканирует строку в domain модель
// NULL в start_time, end_time и duration_hours превращается в nil
func scanJob(rows *sql.Rows) (*domain.CommittedJob, error) {
	var (
		job       domain.CommittedJob
		status    string
		startTime sql.NullTime
		endTime   sql.NullTime
		duration  sql.NullFloat64
	)

	if err := rows.Scan(
		&job.ID,
		&job.Title,
		&job.HandymanID,
		&status,
		&startTime,
		&endTime,
		&duration,
	); err != nil {
		return nil, fmt.Errorf("%w: QueryJobs - scan job: %v", ErrScanRow, err)
	}

	job.Status = domain.JobStatus(status)
	if startTime.Valid {
		job.StartTime = &startTime.Time
	}
	if endTime.Valid {
		job.EndTime = &endTime.Time
	}
	if duration.Valid {
		job.DurationHours = &duration.Float64
	}

	return &job, nil
}
