package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	checkConflictHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/check_conflict"
	getAvailabilityHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_availability"
	getScheduleStatsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_schedule_stats"
	getTimeSlotsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_time_slots"
	getWorkingHoursHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/get_working_hours"
	healthHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/health"
	listJobsHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/list_jobs"
	suggestAlternativesHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/suggest_alternatives"
	updateWorkingHoursHandler "github.com/m04kA/SMC-ScheduleService/internal/api/handlers/update_working_hours"
	"github.com/m04kA/SMC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/SMC-ScheduleService/internal/config"
	jobsService "github.com/m04kA/SMC-ScheduleService/internal/service/jobs"
	workingHoursService "github.com/m04kA/SMC-ScheduleService/internal/service/working_hours"
	checkConflictUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/check_conflict"
	getAvailabilityUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_availability"
	getScheduleStatsUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_schedule_stats"
	getTimeSlotsUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/get_time_slots"
	suggestAlternativesUC "github.com/m04kA/SMC-ScheduleService/internal/usecase/suggest_alternatives"
	"github.com/m04kA/SMC-ScheduleService/pkg/logger"
	"github.com/m04kA/SMC-ScheduleService/pkg/metrics"
)

func main() {
	// Загружаем конфигурацию
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Инициализируем логгер
	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting SMC-ScheduleService...")
	log.Info("Configuration loaded from config.toml (storage=%s, timezone=%s)",
		cfg.Storage.Driver, cfg.Scheduling.Timezone)

	location, err := cfg.Scheduling.Location()
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Scheduling.Timezone, err)
	}

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаем хранилище расписания
	startupCtx, cancelStartup := context.WithTimeout(context.Background(), 30*time.Second)
	store, err := openStores(startupCtx, cfg, metricsCollector, log, stopMetricsCh)
	cancelStartup()
	if err != nil {
		log.Fatal("Failed to open schedule store: %v", err)
	}
	defer store.close()

	// Инициализируем сервисы
	jobSvc := jobsService.NewService(store.jobs, log)
	workingHoursSvc := workingHoursService.NewService(store.hours, log)

	// Инициализируем use cases
	checkConflictUseCase := checkConflictUC.NewUseCase(store.jobs, log)
	getAvailabilityUseCase := getAvailabilityUC.NewUseCase(store.jobs, store.hours, log)
	getTimeSlotsUseCase := getTimeSlotsUC.NewUseCase(store.jobs, store.hours, log)
	suggestAlternativesUseCase := suggestAlternativesUC.NewUseCase(
		checkConflictUseCase,
		store.hours,
		&suggestAlternativesUC.RealTimeProvider{Location: location},
		log,
	)
	getScheduleStatsUseCase := getScheduleStatsUC.NewUseCase(
		store.jobs,
		&getScheduleStatsUC.RealTimeProvider{Location: location},
		log,
	)

	// Инициализируем handlers
	checkConflict := checkConflictHandler.NewHandler(checkConflictUseCase, metricsCollector, location, log)
	getAvailability := getAvailabilityHandler.NewHandler(getAvailabilityUseCase, location, log)
	getTimeSlots := getTimeSlotsHandler.NewHandler(getTimeSlotsUseCase, cfg.Scheduling.DefaultSlotHours, location, log)
	suggestAlternatives := suggestAlternativesHandler.NewHandler(
		suggestAlternativesUseCase,
		suggestAlternativesHandler.Defaults{
			MaxDays:    cfg.Scheduling.MaxSearchDays,
			MaxResults: cfg.Scheduling.MaxSuggestions,
		},
		metricsCollector,
		location,
		log,
	)
	getScheduleStats := getScheduleStatsHandler.NewHandler(getScheduleStatsUseCase, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(workingHoursSvc, log)
	updateWorkingHours := updateWorkingHoursHandler.NewHandler(workingHoursSvc, log)
	listJobs := listJobsHandler.NewHandler(jobSvc, location, log)
	health := healthHandler.NewHandler(healthHandler.PingFunc(store.ping), cfg.Storage.Driver, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.AccessLog(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	r.HandleFunc("/health", health.Handle).Methods(http.MethodGet)

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Проверка пересечения окна с расписанием мастера
	api.HandleFunc("/handymen/{handymanId}/conflicts/check", checkConflict.Handle).Methods(http.MethodPost)

	// Доступность по дням за период
	api.HandleFunc("/handymen/{handymanId}/availability", getAvailability.Handle).Methods(http.MethodGet)

	// Слоты внутри рабочего дня
	api.HandleFunc("/handymen/{handymanId}/time-slots", getTimeSlots.Handle).Methods(http.MethodGet)

	// Альтернативные даты для пересекающегося заказа
	api.HandleFunc("/handymen/{handymanId}/alternatives", suggestAlternatives.Handle).Methods(http.MethodPost)

	// Статистика загрузки
	api.HandleFunc("/handymen/{handymanId}/stats", getScheduleStats.Handle).Methods(http.MethodGet)

	// Календарь заказов
	api.HandleFunc("/handymen/{handymanId}/jobs", listJobs.Handle).Methods(http.MethodGet)

	// Рабочие часы мастера
	api.HandleFunc("/handymen/{handymanId}/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Изменение рабочих часов (только сам мастер)
	protected.HandleFunc("/handymen/{handymanId}/working-hours", updateWorkingHours.Handle).Methods(http.MethodPut)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Graceful shutdown
	go func() {
		log.Info("Starting server on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start: %v", err)
		}
	}()

	// Ожидаем сигнал завершения
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

	// Останавливаем сбор метрик connection pool
	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully")
}
