package main

import (
	"context"
	"database/sql"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	cancelBookingHandler "github.com/m04kA/booking-calendar/internal/api/handlers/cancel_booking"
	checkAvailabilityHandler "github.com/m04kA/booking-calendar/internal/api/handlers/check_availability"
	createAvailabilityHandler "github.com/m04kA/booking-calendar/internal/api/handlers/create_availability"
	createBookingHandler "github.com/m04kA/booking-calendar/internal/api/handlers/create_booking"
	deleteAvailabilityHandler "github.com/m04kA/booking-calendar/internal/api/handlers/delete_availability"
	deleteBookingHandler "github.com/m04kA/booking-calendar/internal/api/handlers/delete_booking"
	eventsHandler "github.com/m04kA/booking-calendar/internal/api/handlers/events"
	exportBookingsHandler "github.com/m04kA/booking-calendar/internal/api/handlers/export_bookings"
	getAvailableSlotsHandler "github.com/m04kA/booking-calendar/internal/api/handlers/get_available_slots"
	getBookingHandler "github.com/m04kA/booking-calendar/internal/api/handlers/get_booking"
	getUserBookingsHandler "github.com/m04kA/booking-calendar/internal/api/handlers/get_user_bookings"
	listAvailabilityHandler "github.com/m04kA/booking-calendar/internal/api/handlers/list_availability"
	listBookingsHandler "github.com/m04kA/booking-calendar/internal/api/handlers/list_bookings"
	syncBookingHandler "github.com/m04kA/booking-calendar/internal/api/handlers/sync_booking"
	updateAvailabilityHandler "github.com/m04kA/booking-calendar/internal/api/handlers/update_availability"
	updateBookingHandler "github.com/m04kA/booking-calendar/internal/api/handlers/update_booking"
	"github.com/m04kA/booking-calendar/internal/api/middleware"
	"github.com/m04kA/booking-calendar/internal/availability"
	"github.com/m04kA/booking-calendar/internal/config"
	"github.com/m04kA/booking-calendar/internal/conflict"
	windowRepo "github.com/m04kA/booking-calendar/internal/infra/storage/availability"
	bookingRepo "github.com/m04kA/booking-calendar/internal/infra/storage/booking"
	"github.com/m04kA/booking-calendar/internal/infra/storage/migrations"
	"github.com/m04kA/booking-calendar/internal/integrations/calendarsync"
	"github.com/m04kA/booking-calendar/internal/notify"
	availabilityService "github.com/m04kA/booking-calendar/internal/service/availability"
	bookingsService "github.com/m04kA/booking-calendar/internal/service/bookings"
	checkAvailabilityUC "github.com/m04kA/booking-calendar/internal/usecase/check_availability"
	createBookingUC "github.com/m04kA/booking-calendar/internal/usecase/create_booking"
	exportBookingsUC "github.com/m04kA/booking-calendar/internal/usecase/export_bookings"
	getAvailableSlotsUC "github.com/m04kA/booking-calendar/internal/usecase/get_available_slots"
	syncBookingUC "github.com/m04kA/booking-calendar/internal/usecase/sync_booking"
	updateBookingUC "github.com/m04kA/booking-calendar/internal/usecase/update_booking"
	"github.com/m04kA/booking-calendar/pkg/dbmetrics"
	"github.com/m04kA/booking-calendar/pkg/logger"
	"github.com/m04kA/booking-calendar/pkg/metrics"
	"github.com/m04kA/booking-calendar/pkg/txmanager"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("CONFIG_PATH"); p != "" {
		configPath = p
	}

	// Загружаем конфигурацию
	cfg, err := config.Load(configPath)
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

	log.Info("Starting booking-calendar...")
	log.Info("Configuration loaded from %s", configPath)

	loc, err := cfg.Booking.Location()
	if err != nil {
		log.Fatal("Failed to load booking timezone %q: %v", cfg.Booking.Timezone, err)
	}

	// Метрики (nil, если выключены - все потребители это учитывают)
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

	if cfg.Database.RunMigrations {
		if err := migrations.Up(db, log); err != nil {
			log.Fatal("Failed to apply migrations: %v", err)
		}
	}

	wrappedDB := dbmetrics.WrapWithDefault(db, metricsCollector, cfg.Database.DBName, stopMetricsCh)

	txMgr := txmanager.NewTransactionManager(wrappedDB).
		WithMaxRetries(cfg.Booking.SerializationRetries).
		WithRetryObserver(func(attempt int, err error) {
			log.Warn("Serializable transaction retry #%d: %v", attempt, err)
			metricsCollector.IncTxRetry(wrappedDB.Name())
		})

	// Репозитории
	bookingRepository := bookingRepo.NewRepository(wrappedDB)
	windowRepository := windowRepo.NewRepository(wrappedDB)

	// Ядро: индекс доступности и проверка конфликтов
	availabilityIndex := availability.NewIndex(loc)
	conflictChecker := conflict.NewChecker(bookingRepository, windowRepository, availabilityIndex)

	// Доставка событий: SSE хаб всегда, Redis и Kafka по конфигурации
	hub := notify.NewHub(cfg.Events.StreamBuffer, log)
	publisher := notify.NewFanout(metricsCollector, notify.Sink{Name: "sse", Publisher: hub})

	var redisClient *redis.Client
	if cfg.Events.Redis.Enabled {
		redisClient = redis.NewClient(&redis.Options{
			Addr:     cfg.Events.Redis.Addr,
			Password: cfg.Events.Redis.Password,
			DB:       cfg.Events.Redis.DB,
		})
		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		if err := redisClient.Ping(pingCtx).Err(); err != nil {
			log.Warn("Redis is not reachable at %s: %v", cfg.Events.Redis.Addr, err)
		}
		cancel()
		publisher.Add("redis", notify.NewRedisPublisher(redisClient, cfg.Events.Redis.Channel))
	}

	var kafkaPublisher *notify.KafkaPublisher
	if cfg.Events.Kafka.Enabled {
		kafkaPublisher = notify.NewKafkaPublisher(notify.NewKafkaWriter(cfg.Events.Kafka.BrokerList(), cfg.Events.Kafka.Topic))
		publisher.Add("kafka", kafkaPublisher)
	}

	if !cfg.Events.Redis.Enabled && !cfg.Events.Kafka.Enabled {
		publisher.Add("log", notify.NewLogPublisher(log))
	}
	log.Info("Change events delivered to sinks: %v", publisher.Sinks())

	// Интеграция с внешним календарем (nil - выключена)
	var calendarClient syncBookingUC.CalendarClient
	if cfg.CalendarSync.Enabled {
		calendarClient = calendarsync.NewClient(
			cfg.CalendarSync.URL,
			cfg.CalendarSync.CalendarID,
			time.Duration(cfg.CalendarSync.Timeout)*time.Second,
			log,
		)
		log.Info("Calendar sync enabled (url=%s, timeout=%ds)", cfg.CalendarSync.URL, cfg.CalendarSync.Timeout)
	}

	// Сервисы
	bookingSvc := bookingsService.NewService(bookingRepository, txMgr, publisher, log)
	availabilitySvc := availabilityService.NewService(windowRepository, availabilityIndex, txMgr, publisher, log)

	// Use cases
	createBookingUseCase := createBookingUC.NewUseCase(bookingRepository, conflictChecker, txMgr, publisher, metricsCollector, log)
	updateBookingUseCase := updateBookingUC.NewUseCase(bookingRepository, conflictChecker, txMgr, publisher, metricsCollector, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(conflictChecker, log)
	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(bookingRepository, windowRepository, availabilityIndex, log)
	syncBookingUseCase := syncBookingUC.NewUseCase(bookingRepository, calendarClient, publisher, log)
	exportBookingsUseCase := exportBookingsUC.NewUseCase(bookingRepository, loc, log)

	// Handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	updateBooking := updateBookingHandler.NewHandler(updateBookingUseCase, log)
	cancelBooking := cancelBookingHandler.NewHandler(updateBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	deleteBooking := deleteBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	listBookings := listBookingsHandler.NewHandler(bookingSvc, log)
	exportBookings := exportBookingsHandler.NewHandler(exportBookingsUseCase, log)
	syncBooking := syncBookingHandler.NewHandler(syncBookingUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	listAvailability := listAvailabilityHandler.NewHandler(availabilitySvc, log)
	createAvailability := createAvailabilityHandler.NewHandler(availabilitySvc, log)
	updateAvailability := updateAvailabilityHandler.NewHandler(availabilitySvc, log)
	deleteAvailability := deleteAvailabilityHandler.NewHandler(availabilitySvc, log)
	events := eventsHandler.NewHandler(hub, 0, log)

	// Настраиваем роутер
	r := mux.NewRouter()
	r.Use(middleware.RequestID)

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (без аутентификации)
	// ============================================================

	api.HandleFunc("/availability", listAvailability.Handle).Methods(http.MethodGet)
	api.HandleFunc("/availability/slots", getAvailableSlots.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// --- Окна доступности (администратор) ---
	protected.HandleFunc("/availability", createAvailability.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/availability/check", checkAvailability.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/availability/{windowId:[0-9]+}", updateAvailability.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/availability/{windowId:[0-9]+}", deleteAvailability.Handle).Methods(http.MethodDelete)

	// --- Бронирования ---
	// Статические пути регистрируются раньше /bookings/{bookingId}
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/bookings", listBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/me", getUserBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/export", exportBookings.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", getBooking.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", updateBooking.Handle).Methods(http.MethodPut)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}", deleteBooking.Handle).Methods(http.MethodDelete)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)
	protected.HandleFunc("/bookings/{bookingId:[0-9]+}/sync", syncBooking.Handle).Methods(http.MethodPost)

	// --- Поток изменений ---
	protected.HandleFunc("/events", events.Handle).Methods(http.MethodGet)

	// Создаем HTTP сервер. Контекст запросов отменяется при остановке, чтобы закрыть SSE потоки.
	baseCtx, cancelBase := context.WithCancel(context.Background())
	defer cancelBase()

	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      r,
		BaseContext:  func(net.Listener) context.Context { return baseCtx },
		ReadTimeout:  time.Duration(cfg.Server.ReadTimeout) * time.Second,
		WriteTimeout: time.Duration(cfg.Server.WriteTimeout) * time.Second,
		IdleTimeout:  time.Duration(cfg.Server.IdleTimeout) * time.Second,
	}
	srv.RegisterOnShutdown(cancelBase)

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

	close(stopMetricsCh)

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	if kafkaPublisher != nil {
		if err := kafkaPublisher.Close(); err != nil {
			log.Error("Failed to close kafka writer: %v", err)
		}
	}
	if redisClient != nil {
		if err := redisClient.Close(); err != nil {
			log.Error("Failed to close redis client: %v", err)
		}
	}

	log.Info("Server stopped gracefully")
}
