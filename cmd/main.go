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

	gorillaHandlers "github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/lib/pq"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	checkAvailabilityHandler "github.com/sudeal/Nokta-sub000/internal/api/handlers/check_availability"
	createAppointmentHandler "github.com/sudeal/Nokta-sub000/internal/api/handlers/create_appointment"
	deleteAppointmentHandler "github.com/sudeal/Nokta-sub000/internal/api/handlers/delete_appointment"
	exportAppointmentsHandler "github.com/sudeal/Nokta-sub000/internal/api/handlers/export_appointments"
	getAppointmentEventsHandler "github.com/sudeal/Nokta-sub000/internal/api/handlers/get_appointment_events"
	getCustomerAppointmentsHandler "github.com/sudeal/Nokta-sub000/internal/api/handlers/get_customer_appointments"
	getBusinessAppointmentsHandler "github.com/sudeal/Nokta-sub000/internal/api/handlers/get_business_appointments"
	getBusinessPageHandler "github.com/sudeal/Nokta-sub000/internal/api/handlers/get_business_page"
	getStatisticsHandler "github.com/sudeal/Nokta-sub000/internal/api/handlers/get_statistics"
	transitionAppointmentHandler "github.com/sudeal/Nokta-sub000/internal/api/handlers/transition_appointment"
	"github.com/sudeal/Nokta-sub000/internal/api/middleware"
	"github.com/sudeal/Nokta-sub000/internal/config"
	"github.com/sudeal/Nokta-sub000/internal/domain"
	"github.com/sudeal/Nokta-sub000/internal/infra/confirmations"
	eventsRepo "github.com/sudeal/Nokta-sub000/internal/infra/storage/events"
	"github.com/sudeal/Nokta-sub000/internal/integrations/remotestore"
	appointmentsService "github.com/sudeal/Nokta-sub000/internal/service/appointments"
	businessesService "github.com/sudeal/Nokta-sub000/internal/service/businesses"
	bookAppointmentUC "github.com/sudeal/Nokta-sub000/internal/usecase/book_appointment"
	transitionAppointmentUC "github.com/sudeal/Nokta-sub000/internal/usecase/transition_appointment"
	"github.com/sudeal/Nokta-sub000/pkg/dbmetrics"
	"github.com/sudeal/Nokta-sub000/pkg/logger"
	"github.com/sudeal/Nokta-sub000/pkg/metrics"
)

// eventJournal объединяет запись и чтение журнала; nil, если база не настроена
type eventJournal interface {
	Append(ctx context.Context, event *domain.AppointmentEvent) error
	ListByAppointment(ctx context.Context, businessID, appointmentID string) ([]*domain.AppointmentEvent, error)
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

	log.Info("Starting Nokta...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Журнал аудита (опционально)
	var journal eventJournal
	if cfg.DatabaseEnabled() {
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

		if metricsCollector != nil {
			journal = eventsRepo.NewRepository(dbmetrics.Wrap(db, metricsCollector))
		} else {
			journal = eventsRepo.NewRepository(db)
		}
	} else {
		log.Warn("Database is not configured, audit journal disabled")
	}

	// Хранилище токенов подтверждения
	var confirmationStore confirmations.Store
	if cfg.Redis.Address != "" {
		rdb := redis.NewClient(&redis.Options{
			Addr:     cfg.Redis.Address,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		defer rdb.Close()

		pingCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		err := rdb.Ping(pingCtx).Err()
		cancel()
		if err != nil {
			log.Fatal("Failed to ping redis: %v", err)
		}
		confirmationStore = confirmations.NewRedisStore(rdb, cfg.Confirmations.KeyPrefix)
		log.Info("Confirmation tokens stored in redis (addr=%s)", cfg.Redis.Address)
	} else {
		confirmationStore = confirmations.NewMemoryStore(nil)
		log.Warn("Redis is not configured, confirmation tokens kept in memory")
	}
	confirmationManager := confirmations.NewManager(confirmationStore, cfg.ConfirmationTTL(), nil, metricsCollector)

	// Клиент удаленного хранилища
	storeClient := remotestore.NewClient(
		cfg.RemoteStore.URL,
		cfg.RemoteStoreTimeout(),
		log,
		remotestore.WithAPIKey(cfg.RemoteStore.APIKey),
		remotestore.WithMetrics(metricsCollector),
	)
	log.Info("Remote store client initialized (url=%s, timeout=%s)", cfg.RemoteStore.URL, cfg.RemoteStoreTimeout())

	// Инициализируем сервисы
	businessSvc := businessesService.NewService(storeClient, metricsCollector, log)
	appointmentSvc := appointmentsService.NewService(storeClient, journal, log)

	// Инициализируем use cases
	bookAppointmentUseCase := bookAppointmentUC.NewUseCase(storeClient, journal, metricsCollector, log)
	transitionAppointmentUseCase := transitionAppointmentUC.NewUseCase(
		storeClient,
		confirmationManager,
		journal,
		metricsCollector,
		log,
	)

	// Инициализируем handlers
	getBusinessPage := getBusinessPageHandler.NewHandler(businessSvc, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(businessSvc, log)
	createAppointment := createAppointmentHandler.NewHandler(bookAppointmentUseCase, log)
	getCustomerAppointments := getCustomerAppointmentsHandler.NewHandler(appointmentSvc, log)
	getBusinessAppointments := getBusinessAppointmentsHandler.NewHandler(appointmentSvc, log)
	transitionAppointment := transitionAppointmentHandler.NewHandler(transitionAppointmentUseCase, log)
	deleteAppointment := deleteAppointmentHandler.NewHandler(transitionAppointmentUseCase, log)
	getAppointmentEvents := getAppointmentEventsHandler.NewHandler(appointmentSvc, log)
	getStatistics := getStatisticsHandler.NewHandler(appointmentSvc, log)
	exportAppointments := exportAppointmentsHandler.NewHandler(appointmentSvc, log)

	authCfg := middleware.AuthConfig{
		Secret:     []byte(cfg.Auth.JWTSecret),
		Issuer:     cfg.Auth.Issuer,
		DevHeaders: cfg.Auth.DevHeaders,
	}
	if cfg.Auth.DevHeaders {
		log.Warn("Development identity headers are accepted without a token")
	}

	// Настраиваем роутер
	r := mux.NewRouter()

	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	api := r.PathPrefix("/api/v1").Subrouter()

	// ============================================================
	// PUBLIC ROUTES (сессия необязательна)
	// ============================================================

	public := api.PathPrefix("").Subrouter()
	public.Use(middleware.OptionalAuth(authCfg))

	// Страница бизнеса
	public.HandleFunc("/businesses/{businessId}/page", getBusinessPage.Handle).Methods(http.MethodGet)

	// Проверка времени записи
	public.HandleFunc("/businesses/{businessId}/availability", checkAvailability.Handle).Methods(http.MethodPost)

	// ============================================================
	// PROTECTED ROUTES (Bearer JWT)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth(authCfg, log))

	// --- Клиент ---
	protected.HandleFunc("/businesses/{businessId}/appointments", createAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/businesses/{businessId}/appointments/mine", getCustomerAppointments.Handle).Methods(http.MethodGet)

	// --- Владелец бизнеса ---
	protected.HandleFunc("/businesses/{businessId}/appointments", getBusinessAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/appointments/export", exportAppointments.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/statistics", getStatistics.Handle).Methods(http.MethodGet)

	// --- Переходы статусов (клиент и владелец) ---
	protected.HandleFunc("/businesses/{businessId}/appointments/{appointmentId}/events",
		getAppointmentEvents.Handle).Methods(http.MethodGet)
	protected.HandleFunc("/businesses/{businessId}/appointments/{appointmentId}/{action}",
		transitionAppointment.Handle).Methods(http.MethodPost)
	protected.HandleFunc("/businesses/{businessId}/appointments/{appointmentId}",
		deleteAppointment.Handle).Methods(http.MethodDelete)

	var handler http.Handler = r
	if len(cfg.CORS.AllowedOrigins) > 0 {
		handler = gorillaHandlers.CORS(
			gorillaHandlers.AllowedOrigins(cfg.CORS.AllowedOrigins),
			gorillaHandlers.AllowedMethods([]string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions}),
			gorillaHandlers.AllowedHeaders([]string{"Authorization", "Content-Type", "X-Confirmation-Token"}),
		)(handler)
	}
	handler = otelhttp.NewHandler(handler, cfg.Metrics.ServiceName)

	// Создаем HTTP сервер
	addr := fmt.Sprintf(":%d", cfg.Server.HTTPPort)
	srv := &http.Server{
		Addr:         addr,
		Handler:      handler,
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
