package breaker

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sony/gobreaker/v2"

	"github.com/m04kA/SMC-ScheduleService/internal/domain"
)

// Config параметры circuit breaker
type Config struct {
	Name             string
	MaxRequests      uint32        // Запросов в полуоткрытом состоянии
	Interval         time.Duration // Период сброса счётчиков в закрытом состоянии
	Timeout          time.Duration // Время в открытом состоянии
	FailureThreshold uint32        // Подряд идущих ошибок до размыкания
}

// DefaultConfig значения по умолчанию
func DefaultConfig() Config {
	return Config{
		Name:             "store",
		MaxRequests:      3,
		Interval:         10 * time.Second,
		Timeout:          30 * time.Second,
		FailureThreshold: 5,
	}
}

// Store декоратор хранилища заказов и рабочих часов с circuit breaker
// Пока breaker разомкнут, вызовы сразу возвращают ErrCircuitOpen
type Store struct {
	jobs    JobStore
	hours   WorkingHoursStore
	breaker *gobreaker.CircuitBreaker[any]
}

// NewStore оборачивает хранилища одним breaker (оба ходят в один backend)
func NewStore(jobs JobStore, hours WorkingHoursStore, cfg Config, logger Logger) *Store {
	settings := gobreaker.Settings{
		Name:        cfg.Name,
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.FailureThreshold
		},
		IsSuccessful: isSuccessful,
		OnStateChange: func(name string, from, to gobreaker.State) {
			logger.Warn("StoreBreaker: name=%s state changed %s -> %s", name, from.String(), to.String())
		},
	}

	return &Store{
		jobs:    jobs,
		hours:   hours,
		breaker: gobreaker.NewCircuitBreaker[any](settings),
	}
}

// QueryJobs выполняет запрос к хранилищу заказов через breaker
func (s *Store) QueryJobs(ctx context.Context, filter domain.JobsFilter) ([]*domain.CommittedJob, error) {
	result, err := s.execute(func() (any, error) {
		return s.jobs.QueryJobs(ctx, filter)
	})
	if err != nil {
		return nil, err
	}
	return result.([]*domain.CommittedJob), nil
}

// GetWorkingHours читает рабочие часы через breaker
func (s *Store) GetWorkingHours(ctx context.Context, handymanID string) (*domain.WorkingHoursPolicy, error) {
	result, err := s.execute(func() (any, error) {
		return s.hours.GetWorkingHours(ctx, handymanID)
	})
	if err != nil {
		return nil, err
	}
	return result.(*domain.WorkingHoursPolicy), nil
}

// SetWorkingHours записывает рабочие часы через breaker
func (s *Store) SetWorkingHours(ctx context.Context, handymanID string, policy domain.WorkingHoursPolicy) error {
	_, err := s.execute(func() (any, error) {
		return nil, s.hours.SetWorkingHours(ctx, handymanID, policy)
	})
	return err
}

// State текущее состояние breaker
func (s *Store) State() gobreaker.State {
	return s.breaker.State()
}

func (s *Store) execute(fn func() (any, error)) (any, error) {
	result, err := s.breaker.Execute(fn)
	if errors.Is(err, gobreaker.ErrOpenState) || errors.Is(err, gobreaker.ErrTooManyRequests) {
		return nil, fmt.Errorf("%w: %v", ErrCircuitOpen, err)
	}
	return result, err
}

// isSuccessful ошибки, которые не говорят о недоступности хранилища, не размыкают breaker
func isSuccessful(err error) bool {
	return err == nil ||
		errors.Is(err, domain.ErrPolicyNotFound) ||
		errors.Is(err, context.Canceled)
}
