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

	addWorkingDayHandler "github.com/frolovsnails/FSN-BookingService/internal/api/handlers/add_working_day"
	bookClientHandler "github.com/frolovsnails/FSN-BookingService/internal/api/handlers/book_client"
	bookMasterHandler "github.com/frolovsnails/FSN-BookingService/internal/api/handlers/book_master"
	cancelAppointmentHandler "github.com/frolovsnails/FSN-BookingService/internal/api/handlers/cancel_appointment"
	createBlockHandler "github.com/frolovsnails/FSN-BookingService/internal/api/handlers/create_block"
	deactivateBlockHandler "github.com/frolovsnails/FSN-BookingService/internal/api/handlers/deactivate_block"
	deleteAppointmentHandler "github.com/frolovsnails/FSN-BookingService/internal/api/handlers/delete_appointment"
	deleteWorkingDayHandler "github.com/frolovsnails/FSN-BookingService/internal/api/handlers/delete_working_day"
	getAppointmentHandler "github.com/frolovsnails/FSN-BookingService/internal/api/handlers/get_appointment"
	getAppointmentsHandler "github.com/frolovsnails/FSN-BookingService/internal/api/handlers/get_appointments"
	getClientSlotsHandler "github.com/frolovsnails/FSN-BookingService/internal/api/handlers/get_client_slots"
	getFreeRangesHandler "github.com/frolovsnails/FSN-BookingService/internal/api/handlers/get_free_ranges"
	getMyAppointmentsHandler "github.com/frolovsnails/FSN-BookingService/internal/api/handlers/get_my_appointments"
	getServicesHandler "github.com/frolovsnails/FSN-BookingService/internal/api/handlers/get_services"
	getWorkingDaysHandler "github.com/frolovsnails/FSN-BookingService/internal/api/handlers/get_working_days"
	rescheduleHandler "github.com/frolovsnails/FSN-BookingService/internal/api/handlers/reschedule_appointment"
	updateStatusHandler "github.com/frolovsnails/FSN-BookingService/internal/api/handlers/update_status"
	updateWorkingDayHandler "github.com/frolovsnails/FSN-BookingService/internal/api/handlers/update_working_day"
	"github.com/frolovsnails/FSN-BookingService/internal/api/middleware"
	"github.com/frolovsnails/FSN-BookingService/internal/config"
	"github.com/frolovsnails/FSN-BookingService/internal/domain"
	appointmentRepo "github.com/frolovsnails/FSN-BookingService/internal/infra/storage/appointment"
	catalogRepo "github.com/frolovsnails/FSN-BookingService/internal/infra/storage/catalog"
	clientRepo "github.com/frolovsnails/FSN-BookingService/internal/infra/storage/client"
	scheduleRepo "github.com/frolovsnails/FSN-BookingService/internal/infra/storage/schedule"
	appointmentsService "github.com/frolovsnails/FSN-BookingService/internal/service/appointments"
	scheduleService "github.com/frolovsnails/FSN-BookingService/internal/service/schedule"
	bookClientUC "github.com/frolovsnails/FSN-BookingService/internal/usecase/book_client"
	bookMasterUC "github.com/frolovsnails/FSN-BookingService/internal/usecase/book_master"
	getClientSlotsUC "github.com/frolovsnails/FSN-BookingService/internal/usecase/get_client_slots"
	getFreeRangesUC "github.com/frolovsnails/FSN-BookingService/internal/usecase/get_free_ranges"
	rescheduleUC "github.com/frolovsnails/FSN-BookingService/internal/usecase/reschedule"
	"github.com/frolovsnails/FSN-BookingService/pkg/logger"
	"github.com/frolovsnails/FSN-BookingService/pkg/metrics"
	"github.com/frolovsnails/FSN-BookingService/pkg/txmanager"
)

// salonClock отдает текущее время в таймзоне салона: расписание и окна
// видимости считаются по местному времени, а не по времени сервера
type salonClock struct {
	loc *time.Location
}

func (c salonClock) Now() time.Time {
	return time.Now().In(c.loc)
}

// nopCounter заглушка счетчика конфликтов при выключенных метриках
type nopCounter struct{}

func (nopCounter) Inc() {}

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

	log.Info("Starting FSN-BookingService...")
	log.Info("Configuration loaded from config.toml")

	// Таймзона салона
	location, err := time.LoadLocation(cfg.Booking.Timezone)
	if err != nil {
		log.Fatal("Failed to load timezone %s: %v", cfg.Booking.Timezone, err)
	}
	clock := salonClock{loc: location}

	// Политика расписания
	policy := domain.SchedulePolicy{
		ClientSlotStepMinutes: cfg.Booking.ClientSlotStepMinutes,
		GranularityMinutes:    cfg.Booking.GranularityMinutes,
	}
	log.Info("Schedule policy: client slot step=%dmin, granularity=%dmin, timezone=%s",
		policy.ClientSlotStepMinutes, policy.GranularityMinutes, cfg.Booking.Timezone)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	var conflictCounter interface{ Inc() } = nopCounter{}

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		conflictCounter = metricsCollector.BookingConflicts
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
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Инициализируем репозитории
	appointmentRepository := appointmentRepo.NewRepository(db)
	scheduleRepository := scheduleRepo.NewRepository(db)
	catalogRepository := catalogRepo.NewRepository(db)
	clientRepository := clientRepo.NewRepository(db)
	txManager := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	scheduleSvc := scheduleService.NewService(
		scheduleRepository,
		appointmentRepository,
		txManager,
		clock,
		log,
	)
	appointmentsSvc := appointmentsService.NewService(
		appointmentRepository,
		clientRepository,
		txManager,
		clock,
		log,
	)

	// Инициализируем use cases
	getClientSlotsUseCase := getClientSlotsUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		catalogRepository,
		policy,
		log,
	)
	getFreeRangesUseCase := getFreeRangesUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		log,
	)
	bookClientUseCase := bookClientUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		catalogRepository,
		clientRepository,
		txManager,
		conflictCounter,
		policy,
		log,
	)
	bookMasterUseCase := bookMasterUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		catalogRepository,
		clientRepository,
		txManager,
		conflictCounter,
		policy,
		log,
	)
	rescheduleUseCase := rescheduleUC.NewUseCase(
		appointmentRepository,
		scheduleRepository,
		catalogRepository,
		txManager,
		conflictCounter,
		policy,
		log,
	)

	// Инициализируем handlers
	getClientSlots := getClientSlotsHandler.NewHandler(getClientSlotsUseCase, log)
	getFreeRanges := getFreeRangesHandler.NewHandler(getFreeRangesUseCase, log)
	bookClient := bookClientHandler.NewHandler(bookClientUseCase, log)
	bookMaster := bookMasterHandler.NewHandler(bookMasterUseCase, log)
	reschedule := rescheduleHandler.NewHandler(rescheduleUseCase, log)
	cancelAppointment := cancelAppointmentHandler.NewHandler(appointmentsSvc, log)
	updateStatus := updateStatusHandler.NewHandler(appointmentsSvc, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(appointmentsSvc, log)
	getAppointment := getAppointmentHandler.NewHandler(appointmentsSvc, log)
	getAppointments := getAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getMyAppointments := getMyAppointmentsHandler.NewHandler(appointmentsSvc, log)
	getServices := getServicesHandler.NewHandler(catalogRepository, log)
	addWorkingDay := addWorkingDayHandler.NewHandler(scheduleSvc, log)
	updateWorkingDay := updateWorkingDayHandler.NewHandler(scheduleSvc, log)
	deleteWorkingDay := deleteWorkingDayHandler.NewHandler(scheduleSvc, log)
	getWorkingDays := getWorkingDaysHandler.NewHandler(scheduleSvc, log)
	createBlock := createBlockHandler.NewHandler(scheduleSvc, log)
	deactivateBlock := deactivateBlockHandler.NewHandler(scheduleSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Каталог услуг
	api.HandleFunc("/services", getServices.Handle).Methods(http.MethodGet)

	// Доступные клиентские слоты на дату
	api.HandleFunc("/slots", getClientSlots.Handle).Methods(http.MethodGet)

	// Рабочие дни (ближайшие открытые или по диапазону)
	api.HandleFunc("/schedule/days", getWorkingDays.Handle).Methods(http.MethodGet)

	// ============================================================
	// CLIENT ROUTES (требуют X-Client-Phone header)
	// ============================================================

	client := api.PathPrefix("").Subrouter()
	client.Use(middleware.ClientAuth)

	client.HandleFunc("/appointments", bookClient.Handle).Methods(http.MethodPost)
	client.HandleFunc("/me/appointments", getMyAppointments.Handle).Methods(http.MethodGet)
	client.HandleFunc("/me/appointments/{appointmentId}/cancel", cancelAppointment.Handle).Methods(http.MethodPatch)

	// ============================================================
	// MASTER ROUTES (требуют X-Master header)
	// ============================================================

	master := api.PathPrefix("").Subrouter()
	master.Use(middleware.MasterAuth)

	// Свободные промежутки дня
	master.HandleFunc("/free-ranges", getFreeRanges.Handle).Methods(http.MethodGet)

	// Записи
	master.HandleFunc("/master/appointments", bookMaster.Handle).Methods(http.MethodPost)
	master.HandleFunc("/appointments", getAppointments.Handle).Methods(http.MethodGet)
	master.HandleFunc("/appointments/{appointmentId}", getAppointment.Handle).Methods(http.MethodGet)
	master.HandleFunc("/appointments/{appointmentId}", deleteAppointment.Handle).Methods(http.MethodDelete)
	master.HandleFunc("/appointments/{appointmentId}/status", updateStatus.Handle).Methods(http.MethodPatch)
	master.HandleFunc("/appointments/{appointmentId}/reschedule", reschedule.Handle).Methods(http.MethodPatch)

	// Календарь
	master.HandleFunc("/schedule/days", addWorkingDay.Handle).Methods(http.MethodPost)
	master.HandleFunc("/schedule/days/{dayId}", updateWorkingDay.Handle).Methods(http.MethodPut)
	master.HandleFunc("/schedule/days/{dayId}", deleteWorkingDay.Handle).Methods(http.MethodDelete)

	// Блокировки
	master.HandleFunc("/schedule/blocks", createBlock.Handle).Methods(http.MethodPost)
	master.HandleFunc("/schedule/blocks/{blockId}/deactivate", deactivateBlock.Handle).Methods(http.MethodPatch)

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

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("Shutting down server...")

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
