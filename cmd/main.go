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

	cancelBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/cancel_booking"
	confirmBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/confirm_booking"
	createBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/create_booking"
	getBookingHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_booking"
	getBookingHistoryHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_booking_history"
	getBookingOptionsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_booking_options"
	getParkingLotHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_parking_lot"
	getParkingLotsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_parking_lots"
	getTicketHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_ticket"
	getUserBookingsHandler "github.com/m04kA/SMC-ParkingService/internal/api/handlers/get_user_bookings"
	"github.com/m04kA/SMC-ParkingService/internal/api/middleware"
	"github.com/m04kA/SMC-ParkingService/internal/config"
	bookingRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/booking"
	parkinglotRepo "github.com/m04kA/SMC-ParkingService/internal/infra/storage/parkinglot"
	paymentServiceClient "github.com/m04kA/SMC-ParkingService/internal/integrations/paymentservice"
	bookingsService "github.com/m04kA/SMC-ParkingService/internal/service/bookings"
	parkinglotsService "github.com/m04kA/SMC-ParkingService/internal/service/parkinglots"
	"github.com/m04kA/SMC-ParkingService/internal/service/pricing"
	ticketsService "github.com/m04kA/SMC-ParkingService/internal/service/tickets"
	confirmBookingUC "github.com/m04kA/SMC-ParkingService/internal/usecase/confirm_booking"
	createBookingUC "github.com/m04kA/SMC-ParkingService/internal/usecase/create_booking"
	expireBookingsUC "github.com/m04kA/SMC-ParkingService/internal/usecase/expire_bookings"
	"github.com/m04kA/SMC-ParkingService/pkg/logger"
	"github.com/m04kA/SMC-ParkingService/pkg/metrics"
	"github.com/m04kA/SMC-ParkingService/pkg/txmanager"
)

const dbStatsInterval = 10 * time.Second

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

	log.Info("Starting SMC-ParkingService...")
	log.Info("Configuration loaded from config.toml")

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

	// Сбор метрик connection pool
	if cfg.Metrics.Enabled {
		go metricsCollector.CollectDBStats(db, cfg.Database.DBName, dbStatsInterval, stopMetricsCh)
		log.Info("Database metrics collection started")
	}

	// Инициализируем интеграционного клиента платежного сервиса
	paymentClient := paymentServiceClient.NewClient(
		cfg.PaymentService.URL,
		time.Duration(cfg.PaymentService.Timeout)*time.Second,
		log,
	)
	log.Info("Integration client initialized (PaymentService=%s timeout=%ds)",
		cfg.PaymentService.URL, cfg.PaymentService.Timeout)

	// Инициализируем репозитории и transaction manager
	bookingRepository := bookingRepo.NewRepository(db)
	lotRepository := parkinglotRepo.NewRepository(db)
	txMgr := txmanager.NewTransactionManager(db)

	// Инициализируем сервисы
	priceCalculator := pricing.NewCalculator()
	bookingSvc := bookingsService.NewService(bookingRepository, lotRepository, txMgr, log)
	parkingLotSvc := parkinglotsService.NewService(lotRepository, log)
	ticketSvc := ticketsService.NewService(bookingRepository, log)

	// Инициализируем use cases
	createBookingUseCase := createBookingUC.NewUseCase(
		bookingRepository,
		lotRepository,
		priceCalculator,
		txMgr,
		log,
	)
	confirmBookingUseCase := confirmBookingUC.NewUseCase(
		bookingRepository,
		paymentClient,
		log,
	)
	expireBookingsUseCase := expireBookingsUC.NewUseCase(
		bookingRepository,
		lotRepository,
		txMgr,
		log,
	)

	// Инициализируем handlers
	createBooking := createBookingHandler.NewHandler(createBookingUseCase, log)
	confirmBooking := confirmBookingHandler.NewHandler(confirmBookingUseCase, log)
	getBooking := getBookingHandler.NewHandler(bookingSvc, log)
	cancelBooking := cancelBookingHandler.NewHandler(bookingSvc, log)
	getUserBookings := getUserBookingsHandler.NewHandler(bookingSvc, log)
	getBookingHistory := getBookingHistoryHandler.NewHandler(bookingSvc, log)
	getParkingLots := getParkingLotsHandler.NewHandler(parkingLotSvc, log)
	getParkingLot := getParkingLotHandler.NewHandler(parkingLotSvc, log)
	getTicket := getTicketHandler.NewHandler(ticketSvc, log)
	getBookingOptions := getBookingOptionsHandler.NewHandler(log)

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

	// Список парковок с доступностью
	api.HandleFunc("/parking-lots", getParkingLots.Handle).Methods(http.MethodGet)

	// Парковка по ID
	api.HandleFunc("/parking-lots/{lotId}", getParkingLot.Handle).Methods(http.MethodGet)

	// Справочник типов мест, длительностей и способов оплаты
	api.HandleFunc("/booking-options", getBookingOptions.Handle).Methods(http.MethodGet)

	// ============================================================
	// PROTECTED ROUTES (требуют X-User-ID header)
	// ============================================================

	protected := api.PathPrefix("").Subrouter()
	protected.Use(middleware.Auth)

	// Создание бронирования
	protected.HandleFunc("/bookings", createBooking.Handle).Methods(http.MethodPost)

	// Получение бронирования по ID
	protected.HandleFunc("/bookings/{bookingId}", getBooking.Handle).Methods(http.MethodGet)

	// Отмена бронирования
	protected.HandleFunc("/bookings/{bookingId}/cancel", cancelBooking.Handle).Methods(http.MethodPatch)

	// Подтверждение бронирования оплатой
	protected.HandleFunc("/bookings/{bookingId}/confirm", confirmBooking.Handle).Methods(http.MethodPost)

	// Текстовый талон бронирования
	protected.HandleFunc("/bookings/{bookingId}/ticket", getTicket.Handle).Methods(http.MethodGet)

	// Активные бронирования пользователя
	protected.HandleFunc("/users/{userId}/bookings", getUserBookings.Handle).Methods(http.MethodGet)

	// История бронирований пользователя
	protected.HandleFunc("/users/{userId}/bookings/history", getBookingHistory.Handle).Methods(http.MethodGet)

	// Фоновое завершение истекших бронирований
	stopExpiryCh := make(chan struct{})
	if cfg.Expiry.Enabled {
		interval := time.Duration(cfg.Expiry.IntervalSeconds) * time.Second
		go func() {
			ticker := time.NewTicker(interval)
			defer ticker.Stop()

			for {
				select {
				case <-ticker.C:
					count, err := expireBookingsUseCase.Execute(context.Background())
					if err != nil {
						log.Error("Expiry sweep failed: %v", err)
						continue
					}
					if count > 0 {
						log.Info("Expiry sweep completed: %d bookings completed", count)
					}
				case <-stopExpiryCh:
					return
				}
			}
		}()
		log.Info("Expiry sweep started (interval=%ds)", cfg.Expiry.IntervalSeconds)
	}

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

	// Останавливаем фоновые процессы
	if cfg.Expiry.Enabled {
		close(stopExpiryCh)
		log.Info("Expiry sweep stopped")
	}
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
