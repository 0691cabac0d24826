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

	cancelAppointmentHandler "github.com/m04kA/CTC-ScheduleService/internal/api/handlers/cancel_appointment"
	checkConflictHandler "github.com/m04kA/CTC-ScheduleService/internal/api/handlers/check_conflict"
	createAppointmentHandler "github.com/m04kA/CTC-ScheduleService/internal/api/handlers/create_appointment"
	findNextSlotHandler "github.com/m04kA/CTC-ScheduleService/internal/api/handlers/find_next_slot"
	getAppointmentHandler "github.com/m04kA/CTC-ScheduleService/internal/api/handlers/get_appointment"
	getAvailableSlotsHandler "github.com/m04kA/CTC-ScheduleService/internal/api/handlers/get_available_slots"
	getDayCapacityHandler "github.com/m04kA/CTC-ScheduleService/internal/api/handlers/get_day_capacity"
	getSettingsHandler "github.com/m04kA/CTC-ScheduleService/internal/api/handlers/get_settings"
	listAppointmentsHandler "github.com/m04kA/CTC-ScheduleService/internal/api/handlers/list_appointments"
	updateSettingsHandler "github.com/m04kA/CTC-ScheduleService/internal/api/handlers/update_settings"
	"github.com/m04kA/CTC-ScheduleService/internal/api/middleware"
	"github.com/m04kA/CTC-ScheduleService/internal/config"
	appointmentRepo "github.com/m04kA/CTC-ScheduleService/internal/infra/storage/appointment"
	settingsRepo "github.com/m04kA/CTC-ScheduleService/internal/infra/storage/settings"
	notifierClient "github.com/m04kA/CTC-ScheduleService/internal/integrations/notifier"
	appointmentsService "github.com/m04kA/CTC-ScheduleService/internal/service/appointments"
	settingsService "github.com/m04kA/CTC-ScheduleService/internal/service/settings"
	checkConflictUC "github.com/m04kA/CTC-ScheduleService/internal/usecase/check_conflict"
	createAppointmentUC "github.com/m04kA/CTC-ScheduleService/internal/usecase/create_appointment"
	findNextSlotUC "github.com/m04kA/CTC-ScheduleService/internal/usecase/find_next_slot"
	getAvailableSlotsUC "github.com/m04kA/CTC-ScheduleService/internal/usecase/get_available_slots"
	getDayCapacityUC "github.com/m04kA/CTC-ScheduleService/internal/usecase/get_day_capacity"
	"github.com/m04kA/CTC-ScheduleService/pkg/dbmetrics"
	"github.com/m04kA/CTC-ScheduleService/pkg/logger"
	"github.com/m04kA/CTC-ScheduleService/pkg/metrics"
	"github.com/m04kA/CTC-ScheduleService/pkg/simpletxmanager"
	"github.com/m04kA/CTC-ScheduleService/pkg/txmanager"
)

func main() {
	cfg, err := config.Load("config.toml")
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}

	log, err := logger.New(cfg.Logs.File, cfg.Logs.Level)
	if err != nil {
		fmt.Printf("Failed to initialize logger: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	log.Info("Starting CTC-ScheduleService...")
	log.Info("Configuration loaded from config.toml")

	var metricsCollector *metrics.Metrics
	var wrappedDB *dbmetrics.DB
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

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

	notifier := notifierClient.NewClient(
		cfg.Notifier.URL,
		time.Duration(cfg.Notifier.Timeout)*time.Second,
		cfg.Notifier.Enabled,
		log,
	)
	log.Info("Notifier client initialized (url=%s, enabled=%t, timeout=%ds)",
		cfg.Notifier.URL, cfg.Notifier.Enabled, cfg.Notifier.Timeout)

	var (
		appointmentRepository *appointmentRepo.Repository
		settingsRepository    *settingsRepo.Repository
	)

	type TxManager interface {
		DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
	}
	var txMgr TxManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		appointmentRepository = appointmentRepo.NewRepository(wrappedDB)
		settingsRepository = settingsRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		appointmentRepository = appointmentRepo.NewRepository(db)
		settingsRepository = settingsRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	appointmentsSvc := appointmentsService.NewService(appointmentRepository, log)
	settingsSvc := settingsService.NewService(settingsRepository, log)

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		appointmentRepository,
		settingsRepository,
		log,
	)

	// Usecase сетки слотов одновременно служит провайдером слотов для всех
	// производных операций расписания
	checkConflictUseCase := checkConflictUC.NewUseCase(getAvailableSlotsUseCase, appointmentRepository, log)
	findNextSlotUseCase := findNextSlotUC.NewUseCase(getAvailableSlotsUseCase, log)
	getDayCapacityUseCase := getDayCapacityUC.NewUseCase(getAvailableSlotsUseCase, log)

	createAppointmentUseCase := createAppointmentUC.NewUseCase(
		appointmentRepository,
		settingsRepository,
		notifier,
		txMgr,
		log,
	)

	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkConflict := checkConflictHandler.NewHandler(checkConflictUseCase, log)
	findNextSlot := findNextSlotHandler.NewHandler(findNextSlotUseCase, log)
	getDayCapacity := getDayCapacityHandler.NewHandler(getDayCapacityUseCase, log)
	createAppointment := createAppointmentHandler.NewHandler(createAppointmentUseCase, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	listAppointments := listAppointmentsHandler.NewHandler(appointmentsSvc, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	getSettings := getSettingsHandler.NewHandler(settingsSvc, log)
	updateSettings := updateSettingsHandler.NewHandler(settingsSvc, log)

	r := mux.NewRouter()

	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// Все бизнес-роуты привязаны к тенанту и требуют X-User-ID
	api := r.PathPrefix("/api/v1").Subrouter()
	api.Use(middleware.Auth(log))

	// --- Schedule ---
	api.HandleFunc("/schedule/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/conflict", checkConflict.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/next-available", findNextSlot.Handle).Methods(http.MethodGet)
	api.HandleFunc("/schedule/day-capacity", getDayCapacity.Handle).Methods(http.MethodGet)

	// --- Appointments ---
	api.HandleFunc("/appointments", createAppointment.Handle).Methods(http.MethodPost)
	api.HandleFunc("/appointments", listAppointments.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// --- Settings ---
	api.HandleFunc("/settings", getSettings.Handle).Methods(http.MethodGet)
	api.HandleFunc("/settings", updateSettings.Handle).Methods(http.MethodPut)

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

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
