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
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	getAvailableProfessionalsHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_available_professionals"
	getProfessionalAvailabilityHandler "github.com/m04kA/SMC-AvailabilityService/internal/api/handlers/get_professional_availability"
	"github.com/m04kA/SMC-AvailabilityService/internal/api/middleware"
	"github.com/m04kA/SMC-AvailabilityService/internal/config"
	companyCache "github.com/m04kA/SMC-AvailabilityService/internal/infra/cache/company"
	bookingRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/booking"
	companyRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/company"
	exceptionRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/exception"
	professionalRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/professional"
	serviceRepo "github.com/m04kA/SMC-AvailabilityService/internal/infra/storage/service"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/conflicts"
	"github.com/m04kA/SMC-AvailabilityService/internal/service/workinghours"
	getAvailableProfessionalsUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_available_professionals"
	getProfessionalAvailabilityUC "github.com/m04kA/SMC-AvailabilityService/internal/usecase/get_professional_availability"
	"github.com/m04kA/SMC-AvailabilityService/pkg/dbmetrics"
	"github.com/m04kA/SMC-AvailabilityService/pkg/logger"
	"github.com/m04kA/SMC-AvailabilityService/pkg/metrics"
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

	log.Info("Starting SMC-AvailabilityService...")

	location := cfg.Company.Location()
	log.Info("Company timezone: %s", location)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных
	db, err := sql.Open("postgres", cfg.Database.DSN())
	if err != nil {
		log.Fatal("Failed to connect to database: %v", err)
	}
	defer db.Close()

	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Репозитории читают через обертку с метриками или напрямую
	var executor dbmetrics.DBExecutor = db
	if cfg.Metrics.Enabled {
		executor = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	professionalRepository := professionalRepo.NewRepository(executor)
	serviceRepository := serviceRepo.NewRepository(executor)
	bookingRepository := bookingRepo.NewRepository(executor)
	exceptionRepository := exceptionRepo.NewRepository(executor)

	// Компания читается на каждый запрос по расписанию компании, поэтому кэшируется в Redis
	var companySource workinghours.CompanyRepository = companyRepo.NewRepository(executor)
	var redisClient *redis.Client
	if cfg.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Addr,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer redisClient.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 3*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is unreachable at %s, company cache will fall back to database: %v", cfg.Redis.Addr, err)
		}
		cancel()

		companySource = companyCache.NewCache(companySource, redisClient, cfg.Redis.CacheTTL(), log)
		log.Info("Company cache enabled (redis=%s, ttl=%ds)", cfg.Redis.Addr, cfg.Redis.TTL)
	}

	// Инициализируем сервисы
	resolver := workinghours.NewResolver(companySource, professionalRepository, log)
	collector := conflicts.NewCollector(bookingRepository, exceptionRepository, log)

	// Инициализируем use cases
	getProfessionalAvailabilityUseCase := getProfessionalAvailabilityUC.NewUseCase(
		professionalRepository,
		serviceRepository,
		resolver,
		collector,
		metricsCollector,
		log,
	)

	getAvailableProfessionalsUseCase := getAvailableProfessionalsUC.NewUseCase(
		serviceRepository,
		professionalRepository,
		resolver,
		collector,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getProfessionalAvailability := getProfessionalAvailabilityHandler.NewHandler(getProfessionalAvailabilityUseCase, location, log)
	getAvailableProfessionals := getAvailableProfessionalsHandler.NewHandler(getAvailableProfessionalsUseCase, location, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// Слоты специалиста на дату
	api.HandleFunc("/professionals/{professionalId}/availability",
		getProfessionalAvailability.Handle).Methods(http.MethodGet)

	// Специалисты, работающие в дату
	api.HandleFunc("/services/{serviceId}/professionals",
		getAvailableProfessionals.Handle).Methods(http.MethodGet)

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
