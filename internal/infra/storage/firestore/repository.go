package firestore

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

const (
	defaultJobsCollection  = "projects"
	defaultUsersCollection = "users"
)

// Repository адаптер хранилища заказов и рабочих часов поверх Firestore
// Заказы читаются из коллекции проектов, рабочие часы хранятся в поле workingHours документа пользователя
type Repository struct {
	client          *firestore.Client
	jobsCollection  string
	usersCollection string
}

// NewRepository создает новый экземпляр репозитория
func NewRepository(client *firestore.Client, cfg Config) *Repository {
	r := &Repository{
		client:          client,
		jobsCollection:  cfg.JobsCollection,
		usersCollection: cfg.UsersCollection,
	}
	if r.jobsCollection == "" {
		r.jobsCollection = defaultJobsCollection
	}
	if r.usersCollection == "" {
		r.usersCollection = defaultUsersCollection
	}
	return r
}

// QueryJobs получает заказы мастера с фильтрацией по статусам и периоду начала
// Порядок - по времени начала
func (r *Repository) QueryJobs(ctx context.Context, filter domain.JobsFilter) ([]*domain.CommittedJob, error) {
	if filter.HandymanID == "" {
		return nil, ErrInvalidFilter
	}

	query := r.client.Collection(r.jobsCollection).Where(fieldHandymanID, "==", filter.HandymanID)

	if len(filter.Statuses) > 0 {
		query = query.Where(fieldStatus, "in", filter.StatusStrings())
	}
	if filter.From != nil {
		query = query.Where(fieldStartTime, ">=", *filter.From)
	}
	if filter.To != nil {
		query = query.Where(fieldStartTime, "<", *filter.To)
	}

	iter := query.Documents(ctx)
	defer iter.Stop()

	jobs := make([]*domain.CommittedJob, 0)
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("%w: QueryJobs - handyman=%s: %v", ErrQuery, filter.HandymanID, err)
		}

		var jd jobDocument
		if err := doc.DataTo(&jd); err != nil {
			return nil, fmt.Errorf("%w: QueryJobs - job=%s: %v", ErrDecode, doc.Ref.ID, err)
		}
		jobs = append(jobs, jd.toDomain(doc.Ref.ID))
	}

	sortByStart(jobs)
	return jobs, nil
}

// GetWorkingHours получает рабочие часы из документа пользователя
// Отсутствие документа или поля workingHours - domain.ErrPolicyNotFound
func (r *Repository) GetWorkingHours(ctx context.Context, handymanID string) (*domain.WorkingHoursPolicy, error) {
	doc, err := r.client.Collection(r.usersCollection).Doc(handymanID).Get(ctx)
	if status.Code(err) == codes.NotFound {
		return nil, fmt.Errorf("%w: handyman=%s", domain.ErrPolicyNotFound, handymanID)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - handyman=%s: %v", ErrQuery, handymanID, err)
	}

	var ud userDocument
	if err := doc.DataTo(&ud); err != nil {
		return nil, fmt.Errorf("%w: GetWorkingHours - handyman=%s: %v", ErrDecode, handymanID, err)
	}
	if ud.WorkingHours == nil {
		return nil, fmt.Errorf("%w: handyman=%s", domain.ErrPolicyNotFound, handymanID)
	}

	return ud.WorkingHours.toDomain(), nil
}

// SetWorkingHours записывает поле workingHours, остальные поля документа пользователя не затрагиваются
func (r *Repository) SetWorkingHours(ctx context.Context, handymanID string, policy domain.WorkingHoursPolicy) error {
	_, err := r.client.Collection(r.usersCollection).Doc(handymanID).Set(ctx,
		map[string]interface{}{fieldWorkingHours: fromDomainPolicy(policy)},
		firestore.MergeAll,
	)
	if err != nil {
		return fmt.Errorf("%w: SetWorkingHours - handyman=%s: %v", ErrWrite, handymanID, err)
	}
	return nil
}

// Ping проверяет доступность Firestore чтением одного документа коллекции заказов
func (r *Repository) Ping(ctx context.Context) error {
	iter := r.client.Collection(r.jobsCollection).Limit(1).Documents(ctx)
	defer iter.Stop()

	if _, err := iter.Next(); err != nil && !errors.Is(err, iterator.Done) {
		return fmt.Errorf("%w: Ping: %v", ErrQuery, err)
	}
	return nil
}

// sortByStart сортирует заказы по времени начала, заказы без времени - в конце
// Firestore не позволяет сортировать по startTime при фильтре "in" без составного индекса
func sortByStart(jobs []*domain.CommittedJob) {
	sort.SliceStable(jobs, func(i, j int) bool {
		a, b := jobs[i], jobs[j]
		switch {
		case !a.HasStartTime():
			return false
		case !b.HasStartTime():
			return true
		default:
			return a.StartTime.Before(*b.StartTime)
		}
	})
}
