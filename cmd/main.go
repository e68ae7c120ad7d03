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
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	createBookingHandler "github.com/travelops/TLO-LeadService/internal/api/handlers/create_booking"
	getAvailableSlotsHandler "github.com/travelops/TLO-LeadService/internal/api/handlers/get_available_slots"
	getBookedSlotsHandler "github.com/travelops/TLO-LeadService/internal/api/handlers/get_booked_slots"
	getBookingHandler "github.com/travelops/TLO-LeadService/internal/api/handlers/get_booking"
	submitContactHandler "github.com/travelops/TLO-LeadService/internal/api/handlers/submit_contact"
	subscribeNewsletterHandler "github.com/travelops/TLO-LeadService/internal/api/handlers/subscribe_newsletter"
	updateBookingStatusHandler "github.com/travelops/TLO-LeadService/internal/api/handlers/update_booking_status"
	"github.com/travelops/TLO-LeadService/internal/api/middleware"
	"github.com/travelops/TLO-LeadService/internal/config"
	bookingRepo "github.com/travelops/TLO-LeadService/internal/infra/storage/booking"
	leadRepo "github.com/travelops/TLO-LeadService/internal/infra/storage/lead"
	"github.com/travelops/TLO-LeadService/internal/integrations/mailrelay"
	bookingsService "github.com/travelops/TLO-LeadService/internal/service/bookings"
	createBookingUC "github.com/travelops/TLO-LeadService/internal/usecase/create_booking"
	getAvailableSlotsUC "github.com/travelops/TLO-LeadService/internal/usecase/get_available_slots"
	submitContactUC "github.com/travelops/TLO-LeadService/internal/usecase/submit_contact"
	subscribeNewsletterUC "github.com/travelops/TLO-LeadService/internal/usecase/subscribe_newsletter"
	"github.com/travelops/TLO-LeadService/pkg/dbmetrics"
	"github.com/travelops/TLO-LeadService/pkg/logger"
	"github.com/travelops/TLO-LeadService/pkg/metrics"
	"github.com/travelops/TLO-LeadService/pkg/simpletxmanager"
	"github.com/travelops/TLO-LeadService/pkg/txmanager"
)

// TxManager интерфейс для транзакционных операций
type TxManager interface {
	DoSerializable(ctx context.Context, fn func(ctx context.Context) error) error
}

func main() {
	// Секреты приходят из окружения; .env поддерживается для локальной разработки
	_ = godotenv.Load()

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

	log.Info("Starting TLO-LeadService...")
	log.Info("Configuration loaded from config.toml")

	// Метрики создаем всегда: бизнес-счетчики нужны хендлерам независимо
	// от того, выставлен ли /metrics наружу
	metricsCollector := metrics.New(cfg.Metrics.ServiceName)
	stopMetricsCh := make(chan struct{})

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

	// Клиент почтового релея. Пустой ключ не мешает старту: формы вернут
	// ошибку, а календарь продолжит работать
	accessKey := os.Getenv("MAILRELAY_ACCESS_KEY")
	if accessKey == "" {
		log.Warn("MAILRELAY_ACCESS_KEY is not set, form submissions will fail until it is provided")
	}
	mailClient := mailrelay.NewClient(
		cfg.Mailer.URL,
		accessKey,
		cfg.Mailer.AdminEmail,
		cfg.Mailer.FromName,
		cfg.Mailer.FromEmail,
		time.Duration(cfg.Mailer.Timeout)*time.Second,
		log,
	).WithRecorder(metricsCollector)
	log.Info("Mail relay client initialized (url=%s, timeout=%ds)", cfg.Mailer.URL, cfg.Mailer.Timeout)

	adminKey := os.Getenv("ADMIN_API_KEY")
	if adminKey == "" {
		log.Warn("ADMIN_API_KEY is not set, admin endpoints will reject all requests")
	}

	// Репозитории: с метриками запросов или поверх голого соединения
	var (
		bookingRepository *bookingRepo.Repository
		leadRepository    *leadRepo.Repository
		txMgr             TxManager
	)

	if cfg.Metrics.Enabled {
		wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Metrics.ServiceName, stopMetricsCh)
		log.Info("Database metrics collection started")

		bookingRepository = bookingRepo.NewRepository(wrappedDB)
		leadRepository = leadRepo.NewRepository(wrappedDB)
		txMgr = txmanager.NewTransactionManager(wrappedDB)
	} else {
		bookingRepository = bookingRepo.NewRepository(db)
		leadRepository = leadRepo.NewRepository(db)
		txMgr = simpletxmanager.NewTransactionManager(db)
	}

	// Сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		leadRepository,
		mailClient,
		txMgr,
		log,
	)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, log)
	submitContactUseCase := submitContactUC.NewUseCase(leadRepository, mailClient, log)
	subscribeNewsletterUseCase := subscribeNewsletterUC.NewUseCase(leadRepository, mailClient, log)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, metricsCollector, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	getBookedSlots := getBookedSlotsHandler.NewHandler(bookingSvc, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	updateBookingStatus := updateBookingStatusHandler.NewHandler(bookingSvc, log)
	submitContact := submitContactHandler.NewHandler(submitContactUseCase, metricsCollector, log)
	subscribeNewsletter := subscribeNewsletterHandler.NewHandler(subscribeNewsletterUseCase, metricsCollector, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.Metrics(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (календарь и формы сайта)
	// ============================================================

	// Слоты на дату с вычисленной доступностью
	api.HandleFunc("/slots/available", getAvailableSlots.Handle).Methods(http.MethodGet)

	// Предзагрузка занятых слотов на окно календаря
	api.HandleFunc("/slots/booked", getBookedSlots.Handle).Methods(http.MethodGet)

	// Формы сайта, под rate limit'ом на IP
	forms := api.PathPrefix("").Subrouter()
	if cfg.RateLimit.Enabled {
		limiter := middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst, log)
		forms.Use(limiter.Middleware)
		log.Info("Rate limiting enabled (rps=%.2f, burst=%d)", cfg.RateLimit.RPS, cfg.RateLimit.Burst)
	}

	forms.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	forms.HandleFunc("/contact", submitContact.Handle).Methods(http.MethodPost)
	forms.HandleFunc("/newsletter", subscribeNewsletter.Handle).Methods(http.MethodPost)

	// ============================================================
	// ADMIN ROUTES (требуют X-Admin-Key)
	// ============================================================

	admin := api.PathPrefix("").Subrouter()
	admin.Use(middleware.AdminAuth(adminKey, log))

	admin.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)
	admin.HandleFunc("/bookings/{bookingId}/status", updateBookingStatus.Handle).Methods(http.MethodPatch)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}

	// Запускаем сервер в горутине
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
