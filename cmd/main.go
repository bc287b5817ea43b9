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

	cancelReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/cancel_reservation"
	checkAvailabilityHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/check_availability"
	createReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_reservation"
	createRestaurantHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_restaurant"
	createTableHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/create_table"
	getAvailableSlotsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_available_slots"
	getReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_reservation"
	getRestaurantHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_restaurant"
	getRestaurantReservationsHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_restaurant_reservations"
	getTablesHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/get_tables"
	suggestTableHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/suggest_table"
	updateReservationHandler "github.com/m04kA/SMC-ReservationService/internal/api/handlers/update_reservation"
	"github.com/m04kA/SMC-ReservationService/internal/api/middleware"
	"github.com/m04kA/SMC-ReservationService/internal/config"
	reservationRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/reservation"
	restaurantRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/restaurant"
	tableRepo "github.com/m04kA/SMC-ReservationService/internal/infra/storage/table"
	notifyServiceClient "github.com/m04kA/SMC-ReservationService/internal/integrations/notifyservice"
	reservationsService "github.com/m04kA/SMC-ReservationService/internal/service/reservations"
	restaurantsService "github.com/m04kA/SMC-ReservationService/internal/service/restaurants"
	checkAvailabilityUC "github.com/m04kA/SMC-ReservationService/internal/usecase/check_availability"
	createReservationUC "github.com/m04kA/SMC-ReservationService/internal/usecase/create_reservation"
	getAvailableSlotsUC "github.com/m04kA/SMC-ReservationService/internal/usecase/get_available_slots"
	suggestTableUC "github.com/m04kA/SMC-ReservationService/internal/usecase/suggest_table"
	"github.com/m04kA/SMC-ReservationService/pkg/logger"
	"github.com/m04kA/SMC-ReservationService/pkg/metrics"
	"github.com/m04kA/SMC-ReservationService/pkg/txmanager"
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

	log.Info("Starting SMC-ReservationService...")
	log.Info("Configuration loaded from config.toml")

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
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

	// Инициализируем репозитории
	restaurantRepository := restaurantRepo.NewRepository(db)
	tableRepository := tableRepo.NewRepository(db)
	reservationRepository := reservationRepo.NewRepository(db)

	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы и use cases.
	// Клиент уведомлений опционален: при выключенной интеграции
	// бронирования создаются и отменяются без отправки уведомлений.
	restaurantSvc := restaurantsService.NewService(restaurantRepository, tableRepository, log)

	var (
		reservationSvc           *reservationsService.Service
		createReservationUseCase *createReservationUC.UseCase
	)

	if cfg.NotifyService.Enabled {
		notifyClient := notifyServiceClient.NewClient(
			cfg.NotifyService.URL,
			time.Duration(cfg.NotifyService.Timeout)*time.Second,
			log,
		)
		log.Info("NotifyService client initialized (url=%s, timeout=%ds)",
			cfg.NotifyService.URL, cfg.NotifyService.Timeout)

		reservationSvc = reservationsService.NewService(
			reservationRepository, tableRepository, restaurantRepository, notifyClient, txMgr, log)
		createReservationUseCase = createReservationUC.NewUseCase(
			reservationRepository, tableRepository, restaurantRepository, notifyClient, txMgr,
			&createReservationUC.RealTimeProvider{}, log)
	} else {
		log.Info("NotifyService integration disabled")

		reservationSvc = reservationsService.NewService(
			reservationRepository, tableRepository, restaurantRepository, nil, txMgr, log)
		createReservationUseCase = createReservationUC.NewUseCase(
			reservationRepository, tableRepository, restaurantRepository, nil, txMgr,
			&createReservationUC.RealTimeProvider{}, log)
	}

	getAvailableSlotsUseCase := getAvailableSlotsUC.NewUseCase(
		restaurantRepository, tableRepository, reservationRepository, log)
	checkAvailabilityUseCase := checkAvailabilityUC.NewUseCase(
		tableRepository, reservationRepository, log)
	suggestTableUseCase := suggestTableUC.NewUseCase(
		restaurantRepository, tableRepository, reservationRepository, log)

	// Инициализируем handlers
	createRestaurant := createRestaurantHandler.NewHandler(restaurantSvc, log)
	getRestaurant := getRestaurantHandler.NewHandler(restaurantSvc, log)
	createTable := createTableHandler.NewHandler(restaurantSvc, log)
	getTables := getTablesHandler.NewHandler(restaurantSvc, log)
	createReservation := createReservationHandler.NewHandler(createReservationUseCase, log)
	getReservation := getReservationHandler.NewHandler(reservationSvc, log)
	updateReservation := updateReservationHandler.NewHandler(reservationSvc, log)
	cancelReservation := cancelReservationHandler.NewHandler(reservationSvc, log)
	getRestaurantReservations := getRestaurantReservationsHandler.NewHandler(reservationSvc, log)
	getAvailableSlots := getAvailableSlotsHandler.NewHandler(getAvailableSlotsUseCase, log)
	checkAvailability := checkAvailabilityHandler.NewHandler(checkAvailabilityUseCase, log)
	suggestTable := suggestTableHandler.NewHandler(suggestTableUseCase, log)

	// Настраиваем роутер
	r := mux.NewRouter()

	// Добавляем metrics middleware (если метрики включены)
	if cfg.Metrics.Enabled {
		r.Use(middleware.MetricsMiddleware(metricsCollector))
		r.Handle(cfg.Metrics.Path, promhttp.Handler()).Methods(http.MethodGet)
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}

	// API prefix
	api := r.PathPrefix("/api/v1").Subrouter()

	// --- Рестораны и столики ---
	api.HandleFunc("/restaurants", createRestaurant.Handle).Methods(http.MethodPost)
	api.HandleFunc("/restaurants/{restaurantId}", getRestaurant.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{restaurantId}/tables", createTable.Handle).Methods(http.MethodPost)
	api.HandleFunc("/restaurants/{restaurantId}/tables", getTables.Handle).Methods(http.MethodGet)

	// --- Доступность ---
	api.HandleFunc("/restaurants/{restaurantId}/available-slots", getAvailableSlots.Handle).Methods(http.MethodGet)
	api.HandleFunc("/restaurants/{restaurantId}/suggest-table", suggestTable.Handle).Methods(http.MethodGet)
	api.HandleFunc("/tables/{tableId}/availability", checkAvailability.Handle).Methods(http.MethodGet)

	// --- Бронирования ---
	api.HandleFunc("/reservations", createReservation.Handle).Methods(http.MethodPost)
	api.HandleFunc("/reservations/{reservationId}", getReservation.Handle).Methods(http.MethodGet)
	api.HandleFunc("/reservations/{reservationId}", updateReservation.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/reservations/{reservationId}/cancel", cancelReservation.Handle).Methods(http.MethodPatch)
	api.HandleFunc("/restaurants/{restaurantId}/reservations", getRestaurantReservations.Handle).Methods(http.MethodGet)

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
