package main

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-ScheduleService/internal/config"
	"github.com/m04kA/SMC-ScheduleService/internal/domain"
	workingHoursCache "github.com/m04kA/SMC-ScheduleService/internal/infra/cache/working_hours"
	"github.com/m04kA/SMC-ScheduleService/internal/infra/storage/breaker"
	firestoreStore "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/firestore"
	jobsRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/jobs"
	workingHoursRepo "github.com/m04kA/SMC-ScheduleService/internal/infra/storage/working_hours"
	"github.com/m04kA/SMC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
)

type jobStore interface {
	QueryJobs(ctx context.Context, filter domain.JobsFilter) ([]*domain.CommittedJob, error)
}

type workingHoursStore interface {
	GetWorkingHours(ctx context.Context, handymanID string) (*domain.WorkingHoursPolicy, error)
	SetWorkingHours(ctx context.Context, handymanID string, policy domain.WorkingHoursPolicy) error
}

// stores собранные адаптеры хранилища с декораторами
type stores struct {
	jobs    jobStore
	hours   workingHoursStore
	ping    func(ctx context.Context) error
	closers []func()
}

func (s *stores) close() {
	for i := len(s.closers) - 1; i >= 0; i-- {
		s.closers[i]()
	}
}

// openStores подключает выбранное хранилище и оборачивает его breaker'ом и кэшем
func openStores(ctx context.Context, cfg *config.Config, m *metrics.Metrics, log *logger.Logger, stopCh <-chan struct{}) (*stores, error) {
	var (
		s   *stores
		err error
	)

	switch cfg.Storage.Driver {
	case config.StorageDriverFirestore:
		s, err = openFirestore(ctx, cfg, log)
	default:
		s, err = openPostgres(ctx, cfg, m, log, stopCh)
	}
	if err != nil {
		return nil, err
	}

	if cfg.Breaker.Enabled {
		b := breaker.NewStore(s.jobs, s.hours, breaker.Config{
			Name:             cfg.Storage.Driver,
			MaxRequests:      cfg.Breaker.MaxRequests,
			Interval:         time.Duration(cfg.Breaker.Interval) * time.Second,
			Timeout:          time.Duration(cfg.Breaker.Timeout) * time.Second,
			FailureThreshold: cfg.Breaker.FailureThreshold,
		}, log)
		s.jobs, s.hours = b, b
		log.Info("Store circuit breaker enabled (failure_threshold=%d, timeout=%ds)",
			cfg.Breaker.FailureThreshold, cfg.Breaker.Timeout)
	}

	if cfg.Redis.Enabled {
		client := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err := client.Ping(ctx).Err(); err != nil {
			// Кэш пропускается при ошибках redis, поэтому сервис стартует и без него
			log.Warn("Redis is not reachable at %s: %v", cfg.Redis.Addr, err)
		}
		s.hours = workingHoursCache.NewCache(s.hours, client, cfg.Redis.PolicyTTL(), log)
		s.closers = append(s.closers, func() { _ = client.Close() })
		log.Info("Working hours cache enabled (addr=%s, ttl=%s)", cfg.Redis.Addr, cfg.Redis.PolicyTTL())
	}

	return s, nil
}

func openPostgres(ctx context.Context, cfg *config.Config, m *metrics.Metrics, log *logger.Logger, stopCh <-chan struct{}) (*stores, error) {
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, m, stopCh)
		log.Info("Database metrics collection started")
	}

	return &stores{
		jobs:    jobsRepo.NewRepository(executor),
		hours:   workingHoursRepo.NewRepository(executor),
		ping:    executor.PingContext,
		closers: []func(){func() { _ = db.Close() }},
	}, nil
}

func openFirestore(ctx context.Context, cfg *config.Config, log *logger.Logger) (*stores, error) {
	fsCfg := firestoreStore.Config{
		ProjectID:       cfg.Firestore.ProjectID,
		CredentialsFile: cfg.Firestore.CredentialsFile,
		JobsCollection:  cfg.Firestore.JobsCollection,
		UsersCollection: cfg.Firestore.UsersCollection,
	}

	client, err := firestoreStore.NewClient(ctx, fsCfg)
	if err != nil {
		return nil, err
	}
	log.Info("Connected to Firestore (project=%s, jobs=%s, users=%s)",
		fsCfg.ProjectID, fsCfg.JobsCollection, fsCfg.UsersCollection)

	repo := firestoreStore.NewRepository(client, fsCfg)

	return &stores{
		jobs:    repo,
		hours:   repo,
		ping:    repo.Ping,
		closers: []func(){func() { _ = client.Close() }},
	}, nil
}
