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
	"github.com/pressly/goose/v3"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	cancelBookingHandler "github.com/lessonhub/LMS-BookingService/internal/api/handlers/cancel_booking"
	createBookingHandler "github.com/lessonhub/LMS-BookingService/internal/api/handlers/create_booking"
	createTemplateHandler "github.com/lessonhub/LMS-BookingService/internal/api/handlers/create_template"
	deleteTemplateHandler "github.com/lessonhub/LMS-BookingService/internal/api/handlers/delete_template"
	getBookingHandler "github.com/lessonhub/LMS-BookingService/internal/api/handlers/get_booking"
	getCalendarHandler "github.com/lessonhub/LMS-BookingService/internal/api/handlers/get_calendar"
	getOrganizationBookingsHandler "github.com/lessonhub/LMS-BookingService/internal/api/handlers/get_organization_bookings"
	getStudentBookingsHandler "github.com/lessonhub/LMS-BookingService/internal/api/handlers/get_student_bookings"
	getTemplatesHandler "github.com/lessonhub/LMS-BookingService/internal/api/handlers/get_templates"
	updateBookingStatusHandler "github.com/lessonhub/LMS-BookingService/internal/api/handlers/update_booking_status"
	updateTemplateHandler "github.com/lessonhub/LMS-BookingService/internal/api/handlers/update_template"
	"github.com/lessonhub/LMS-BookingService/internal/api/middleware"
	"github.com/lessonhub/LMS-BookingService/internal/config"
	bookingRepo "github.com/lessonhub/LMS-BookingService/internal/infra/storage/booking"
	templateRepo "github.com/lessonhub/LMS-BookingService/internal/infra/storage/template"
	coreServiceClient "github.com/lessonhub/LMS-BookingService/internal/integrations/coreservice"
	bookingsService "github.com/lessonhub/LMS-BookingService/internal/service/bookings"
	templatesService "github.com/lessonhub/LMS-BookingService/internal/service/templates"
	createBookingUC "github.com/lessonhub/LMS-BookingService/internal/usecase/create_booking"
	getCalendarUC "github.com/lessonhub/LMS-BookingService/internal/usecase/get_calendar"
	"github.com/lessonhub/LMS-BookingService/migrations"
	"github.com/lessonhub/LMS-BookingService/pkg/dbmetrics"
	"github.com/lessonhub/LMS-BookingService/pkg/logger"
	"github.com/lessonhub/LMS-BookingService/pkg/metrics"
	"github.com/lessonhub/LMS-BookingService/pkg/simpletxmanager"
	"github.com/lessonhub/LMS-BookingService/pkg/txmanager"
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

	log.Info("Starting LMS-BookingService...")
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

	// Проверяем соединение
	if err := db.Ping(); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to database (host=%s, port=%d, db=%s)",
		cfg.Database.Host, cfg.Database.Port, cfg.Database.DBName)

	// Применяем миграции (если включено)
	if cfg.Database.Migrate {
		goose.SetBaseFS(migrations.FS)
		if err := goose.SetDialect("postgres"); err != nil {
			log.Fatal("Failed to set goose dialect: %v", err)
		}
		if err := goose.Up(db, "."); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
		log.Info("Database migrations applied")
	}

	// Инициализируем клиента основного сервиса платформы
	coreClient := coreServiceClient.NewClient(
		cfg.CoreService.URL,
		time.Duration(cfg.CoreService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (CoreService=%s timeout=%ds)",
		cfg.CoreService.URL, cfg.CoreService.Timeout)

	// Инициализируем репозитории (с метриками или без)
	var (
		bookingRepository  *bookingRepo.Repository
		templateRepository *templateRepo.Repository
	)

	var txMgr createBookingUC.TransactionManager

	if cfg.Metrics.Enabled {
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		templateRepository = templateRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		templateRepository = templateRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Инициализируем сервисы
	bookingSvc := bookingsService.NewService(
		bookingRepository,
		coreClient,
		log,
	)
	templateSvc := templatesService.NewService(
		templateRepository,
		coreClient,
		log,
	)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		templateRepository,
		coreClient,
		txMgr,
		log,
	)

	getCalendarUseCase := getCalendarUC.NewUseCase(
		bookingRepository,
		templateRepository,
		log,
	)

	// Инициализируем handlers
	getCalendar := getCalendarHandler.NewHandler(getCalendarUseCase, log)
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	getStudentBookings := getStudentBookingsHandler.NewHandler(bookingSvc, log)
	getOrganizationBookings := getOrganizationBookingsHandler.NewHandler(bookingSvc, log)
	getTemplates := getTemplatesHandler.NewHandler(templateSvc, log)
	createTemplate := createTemplateHandler.NewHandler(templateSvc, log)
	updateTemplate := updateTemplateHandler.NewHandler(templateSvc, log)
	deleteTemplate := deleteTemplateHandler.NewHandler(templateSvc, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector, cfg.Metrics.ServiceName))
		log.Info("HTTP metrics middleware enabled")
	}

	// Metrics endpoint (публичный, без аутентификации)
	if cfg.Metrics.Enabled {
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	// Календарь доступных слотов организации
	api.HandleFunc("/organizations/{organizationId}/calendar",
		getCalendar.Handle).Methods(http.MethodGet)

	// Шаблоны расписания организации
	api.HandleFunc("/organizations/{organizationId}/templates",
		getTemplates.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Бронирования ---
	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Перевод бронирования в completed / no_show
	protected.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// История бронирований ученика
	protected.HandleFunc("/students/{studentId}/bookings", getStudentBookings.Handle).Methods(http.MethodGet)

	// --- Управление организацией (для администраторов) ---
	// Список бронирований организации
	protected.HandleFunc("/organizations/{organizationId}/bookings", getOrganizationBookings.Handle).Methods(http.MethodGet)

	// Создание шаблона расписания
	protected.HandleFunc("/organizations/{organizationId}/templates", createTemplate.Handle).Methods(http.MethodPost)

	// Обновление шаблона расписания
	protected.HandleFunc("/templates/{templateId}", updateTemplate.Handle).Methods(http.MethodPut)

	// Удаление шаблона расписания
	protected.HandleFunc("/templates/{templateId}", deleteTemplate.Handle).Methods(http.MethodDelete)

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
