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

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createCustomerHandler "github.com/mcozcn/salondesk/internal/api/handlers/create_customer"
	deleteCustomerHandler "github.com/mcozcn/salondesk/internal/api/handlers/delete_customer"
	deleteScheduleHandler "github.com/mcozcn/salondesk/internal/api/handlers/delete_schedule"
	enrollScheduleHandler "github.com/mcozcn/salondesk/internal/api/handlers/enroll_schedule"
	getCustomerHandler "github.com/mcozcn/salondesk/internal/api/handlers/get_customer"
	getCustomerScheduleHandler "github.com/mcozcn/salondesk/internal/api/handlers/get_customer_schedule"
	getSlotAvailabilityHandler "github.com/mcozcn/salondesk/internal/api/handlers/get_slot_availability"
	getSlotSchedulesHandler "github.com/mcozcn/salondesk/internal/api/handlers/get_slot_schedules"
	listCustomersHandler "github.com/mcozcn/salondesk/internal/api/handlers/list_customers"
	listSchedulesHandler "github.com/mcozcn/salondesk/internal/api/handlers/list_schedules"
	updateCustomerHandler "github.com/mcozcn/salondesk/internal/api/handlers/update_customer"
	updateScheduleHandler "github.com/mcozcn/salondesk/internal/api/handlers/update_schedule"
	"github.com/mcozcn/salondesk/internal/api/middleware"
	"github.com/mcozcn/salondesk/internal/config"
	"github.com/mcozcn/salondesk/internal/infra/localstore"
	customerRepo "github.com/mcozcn/salondesk/internal/infra/storage/customer"
	scheduleRepo "github.com/mcozcn/salondesk/internal/infra/storage/schedule"
	"github.com/mcozcn/salondesk/internal/infra/storage/schedulefallback"
	customersService "github.com/mcozcn/salondesk/internal/service/customers"
	schedulesService "github.com/mcozcn/salondesk/internal/service/schedules"
	enrollScheduleUC "github.com/mcozcn/salondesk/internal/usecase/enroll_schedule"
	getSlotAvailabilityUC "github.com/mcozcn/salondesk/internal/usecase/get_slot_availability"
	"github.com/mcozcn/salondesk/pkg/dbmetrics"
	"github.com/mcozcn/salondesk/pkg/logger"
	"github.com/mcozcn/salondesk/pkg/metrics"
	"github.com/mcozcn/salondesk/pkg/simpletxmanager"
	"github.com/mcozcn/salondesk/pkg/txmanager"
)

// uuidGenerator выдает идентификаторы для записей локального происхождения
type uuidGenerator struct{}

func (g *uuidGenerator) NewID() string {
	return uuid.NewString()
}

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

	log.Info("Starting SalonDesk schedule service...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
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

	// Настраиваем connection pool
	db.SetMaxOpenConns(cfg.Database.MaxOpenConns)
	db.SetMaxIdleConns(cfg.Database.MaxIdleConns)
	db.SetConnMaxLifetime(time.Duration(cfg.Database.ConnMaxLifetime) * time.Second)

	// Проверяем соединение. Сбой не фатален: сервис работает в
	// деградированном режиме поверх локального хранилища
	if err := db.Ping(); err != nil {
		log.Warn("Database unreachable at startup, running degraded: %v", err)
	} else {
		log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
			cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)
	}

	// Локальное файловое хранилище для автономного режима
	store := localstore.NewStore(cfg.Localstore.Path)
	log.Info("Local store initialized at %s", cfg.Localstore.Path)

	var degradedRecorder schedulefallback.DegradedWriteRecorder
	if cfg.Metrics.Enabled {
		degradedRecorder = metricsCollector
	}
	fallbackRepository := schedulefallback.NewRepository(store, degradedRecorder)

	// Инициализируем репозитории (с метриками или без)
	var (
		scheduleRepository *scheduleRepo.Repository
		customerRepository *customerRepo.Repository
	)

	// Интерфейс для transaction manager (используется в usecases)
	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		scheduleRepository = scheduleRepo.NewRepository(wrappedDB)
		customerRepository = customerRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		scheduleRepository = scheduleRepo.NewRepository(db)
		customerRepository = customerRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	schedulesSvc := schedulesService.NewService(
		scheduleRepository,
		fallbackRepository,
		log,
	)
	customersSvc := customersService.NewService(customerRepository, log)

	// Инициализируем use cases
	enrollScheduleUseCase := enrollScheduleUC.NewUseCase(
		scheduleRepository,
		fallbackRepository,
		txMgr,
		&uuidGenerator{},
		log,
	)
	getSlotAvailabilityUseCase := getSlotAvailabilityUC.NewUseCase(schedulesSvc, log)

	// Инициализируем handlers
	enrollSchedule := enrollScheduleHandler.NewHandler(enrollScheduleUseCase, log)
	listSchedules := listSchedulesHandler.NewHandler(schedulesSvc, log)
	getSlotSchedules := getSlotSchedulesHandler.NewHandler(schedulesSvc, log)
	getSlotAvailability := getSlotAvailabilityHandler.NewHandler(getSlotAvailabilityUseCase, log)
	getCustomerSchedule := getCustomerScheduleHandler.NewHandler(schedulesSvc, log)
	updateSchedule := updateScheduleHandler.NewHandler(schedulesSvc, log)
	deleteSchedule := deleteScheduleHandler.NewHandler(schedulesSvc, log)
	listCustomers := listCustomersHandler.NewHandler(customersSvc, log)
	createCustomer := createCustomerHandler.NewHandler(customersSvc, log)
	getCustomer := getCustomerHandler.NewHandler(customersSvc, log)
	updateCustomer := updateCustomerHandler.NewHandler(customersSvc, log)
	deleteCustomer := deleteCustomerHandler.NewHandler(customersSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Расписания групп ---
	// Запись клиента в группу
	api.HandleFunc("/schedules", enrollSchedule.Handle).Methods(http.MethodPost)

	// Полный список записей (удаленные + локальные)
	api.HandleFunc("/schedules", listSchedules.Handle).Methods(http.MethodGet)

	// Активные записи слота на заданный день недели
	api.HandleFunc("/schedules/slot", getSlotSchedules.Handle).Methods(http.MethodGet)

	// Сетка занятости слотов на день
	api.HandleFunc("/schedules/availability", getSlotAvailability.Handle).Methods(http.MethodGet)

	// Изменение записи расписания
	api.HandleFunc("/schedules/{scheduleId}", updateSchedule.Handle).Methods(http.MethodPatch)

	// Удаление записи расписания
	api.HandleFunc("/schedules/{scheduleId}", deleteSchedule.Handle).Methods(http.MethodDelete)

	// --- Клиенты ---
	api.HandleFunc("/customers", listCustomers.Handle).Methods(http.MethodGet)
	api.HandleFunc("/customers", createCustomer.Handle).Methods(http.MethodPost)
	api.HandleFunc("/customers/{customerId}/schedule", getCustomerSchedule.Handle).Methods(http.MethodGet)
	api.HandleFunc("/customers/{customerId}", getCustomer.Handle).Methods(http.MethodGet)
	api.HandleFunc("/customers/{customerId}", updateCustomer.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/customers/{customerId}", deleteCustomer.Handle).Methods(http.MethodDelete)

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
	if cfg.Metrics.Enabled {
		close(stopMetricsCh)
		log.Info("Metrics collection stopped")
	}

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
