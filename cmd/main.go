package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	getAvailableSlotsHandler "github.com/m04kA/SMC-TimeslotService/internal/api/handlers/get_available_slots"
	getWorkingHoursHandler "github.com/m04kA/SMC-TimeslotService/internal/api/handlers/get_working_hours"
	"github.com/m04kA/SMC-TimeslotService/internal/api/middleware"
	"github.com/m04kA/SMC-TimeslotService/internal/config"
	appointmentRepo "github.com/m04kA/SMC-TimeslotService/internal/infra/storage/appointment"
	shopRepo "github.com/m04kA/SMC-TimeslotService/internal/infra/storage/shop"
	staffRepo "github.com/m04kA/SMC-TimeslotService/internal/infra/storage/staff"
	shopService "github.com/m04kA/SMC-TimeslotService/internal/service/shop"
	getAvailableSlotsUC "github.com/m04kA/SMC-TimeslotService/internal/usecase/get_available_slots"
	"github.com/m04kA/SMC-TimeslotService/pkg/dbmetrics"
	"github.com/m04kA/SMC-TimeslotService/pkg/logger"
	"github.com/m04kA/SMC-TimeslotService/pkg/metrics"
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

	log.Info("Starting SMC-TimeslotService...")

	location, err := cfg.Shop.Location()
	if err != nil {
		log.Fatal("Invalid shop timezone: %v", err)
	}
	log.Info("Shop timezone: %s", location)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName, prometheus.DefaultRegisterer)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение
	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	err = db.PingContext(pingCtx)
	cancelPing()
	if err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозитории работают через обёртку с метриками, если метрики включены
	var executor dbmetrics.DBExecutor = db
	var slotMetrics getAvailableSlotsUC.MetricsRecorder

	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		slotMetrics = metricsCollector
		log.Info("Database metrics collection started")
	}

	appointmentRepository := appointmentRepo.NewRepository(executor)
	staffRepository := staffRepo.NewRepository(executor)
	shopRepository := shopRepo.NewRepository(executor)

	// Инициализируем сервисы и use cases
	shopSvc := shopService.NewService(shopRepository, log)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		staffRepository,
		shopRepository,
		slotMetrics,
		log,
	)

	// Инициализируем handlers
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, location, log)
	getWorkingHours := getWorkingHoursHandler.NewHandler(shopSvc, location, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.Recovery(log))

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	if cfg.RateLimit.Enabled {
		api.Use(middleware.RateLimit(cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst, log))
		log.Info("Rate limit enabled: %.1f rps, burst %d", cfg.RateLimit.RequestsPerSecond, cfg.RateLimit.Burst)
	}

	// Поиск свободных слотов под набор процедур
	api.HandleFunc("/timeslots", getAvailableSlots.Handle).Methods(http.MethodPost)

	// Рабочее окно салона на дату
	api.HandleFunc("/working-hours", getWorkingHours.Handle).Methods(http.MethodGet)

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
