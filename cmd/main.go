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

	_ "github.com/lib/pq"

	"github.com/m04kA/SMC-BannerCaseService/internal/api"
	"github.com/m04kA/SMC-BannerCaseService/internal/api/middleware"
	"github.com/m04kA/SMC-BannerCaseService/internal/config"
	"github.com/m04kA/SMC-BannerCaseService/internal/domain"
	casesRepo "github.com/m04kA/SMC-BannerCaseService/internal/infra/storage/cases"
	catalogRepo "github.com/m04kA/SMC-BannerCaseService/internal/infra/storage/catalog"
	bookingServiceClient "github.com/m04kA/SMC-BannerCaseService/internal/integrations/bookingservice"
	casesService "github.com/m04kA/SMC-BannerCaseService/internal/service/cases"
	catalogService "github.com/m04kA/SMC-BannerCaseService/internal/service/catalog"
	workflowService "github.com/m04kA/SMC-BannerCaseService/internal/service/workflow"
	addMaterialUC "github.com/m04kA/SMC-BannerCaseService/internal/usecase/add_material"
	addProposalSlotUC "github.com/m04kA/SMC-BannerCaseService/internal/usecase/add_proposal_slot"
	createCaseUC "github.com/m04kA/SMC-BannerCaseService/internal/usecase/create_case"
	getSlotCalendarUC "github.com/m04kA/SMC-BannerCaseService/internal/usecase/get_slot_calendar"
	"github.com/m04kA/SMC-BannerCaseService/pkg/dbmetrics"
	"github.com/m04kA/SMC-BannerCaseService/pkg/logger"
	"github.com/m04kA/SMC-BannerCaseService/pkg/metrics"
	"github.com/m04kA/SMC-BannerCaseService/pkg/txmanager"
)

// caseRepository общий интерфейс in-memory и PostgreSQL хранилищ кейсов
type caseRepository interface {
	Create(ctx context.Context, c *domain.Case) error
	GetByID(ctx context.Context, id string) (*domain.Case, error)
	List(ctx context.Context, filter domain.CaseFilter) ([]*domain.Case, error)
	Update(ctx context.Context, id string, fn func(c *domain.Case) error) (*domain.Case, error)
	Delete(ctx context.Context, id string) error
}

// areaCatalog общий интерфейс справочника из fixture и из PostgreSQL
type areaCatalog interface {
	ListAreaSlots(ctx context.Context, filter domain.CatalogFilter) ([]domain.AreaSlot, error)
	GetAreaSlot(ctx context.Context, id string) (domain.AreaSlot, error)
	ListBookings(ctx context.Context, from, to time.Time, filter domain.CatalogFilter) ([]domain.SlotBooking, error)
	ListAnniversaryPacks(ctx context.Context, corporateName string) ([]domain.AnniversaryPack, error)
	GetAnniversaryPack(ctx context.Context, id string) (domain.AnniversaryPack, error)
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

	log.Info("Starting SMC-BannerCaseService...")
	log.Info("Configuration loaded from config.toml (storage=%s, catalog=%s)", cfg.Storage.Driver, cfg.Catalog.Source)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopMetricsCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к базе данных, если она нужна хранилищу или справочнику
	var wrappedDB *dbmetrics.DB
	if cfg.UsesPostgres() {
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

		// С выключенными метриками обёртка работает как обычный *sql.DB
		wrappedDB = dbmetrics.WrapWithDefault(db, metricsCollector, stopMetricsCh)
	}

	// Инициализируем хранилище кейсов
	var caseRepository caseRepository
	switch cfg.Storage.Driver {
	case config.StoragePostgres:
		txMgr := txmanager.NewTransactionManager(wrappedDB)
		caseRepository = casesRepo.NewRepository(wrappedDB, txMgr)
		log.Info("Case storage: PostgreSQL")
	default:
		caseRepository = casesRepo.NewMemoryRepository()
		log.Info("Case storage: in-memory (data is lost on restart)")
	}

	// Инициализируем справочник площадок, бронирований и пакетов
	var catalog areaCatalog
	switch cfg.Catalog.Source {
	case config.CatalogPostgres:
		catalog = catalogRepo.NewRepository(wrappedDB)
		log.Info("Catalog source: PostgreSQL")
	default:
		fixture, err := catalogRepo.LoadFixture(cfg.Catalog.FixturePath)
		if err != nil {
			log.Fatal("Failed to load catalog fixture: %v", err)
		}
		catalog = fixture
		log.Info("Catalog source: fixture %q", cfg.Catalog.FixturePath)
	}

	// Инициализируем интеграционного клиента (nil интерфейс - клиент выключен)
	var bookingClient getSlotCalendarUC.BookingServiceClient
	if cfg.BookingService.Enabled {
		bookingClient = bookingServiceClient.NewClient(
			cfg.BookingService.URL,
			time.Duration(cfg.BookingService.Timeout)*time.Second,
			log,
		)
		log.Info("Integration client initialized (BookingService=%s timeout=%ds)",
			cfg.BookingService.URL, cfg.BookingService.Timeout)
	}

	// Инициализируем сервисы
	caseSvc := casesService.NewService(caseRepository, catalog, log)
	workflowSvc := workflowService.NewService(caseRepository, metricsCollector, log)
	catalogSvc := catalogService.NewService(catalog, log)

	// Инициализируем use cases
	createCaseUseCase := createCaseUC.NewUseCase(caseRepository, log)
	addProposalSlotUseCase := addProposalSlotUC.NewUseCase(caseRepository, catalog, log)
	addMaterialUseCase := addMaterialUC.NewUseCase(caseRepository, metricsCollector, log)
	slotCalendarUseCase := getSlotCalendarUC.NewUseCase(catalog, bookingClient, caseRepository, metricsCollector, log)

	// Настраиваем роутер
	r := api.NewRouter(api.Dependencies{
		CreateCase:      createCaseUseCase,
		AddProposalSlot: addProposalSlotUseCase,
		AddMaterial:     addMaterialUseCase,
		SlotCalendar:    slotCalendarUseCase,
		Cases:           caseSvc,
		Workflow:        workflowSvc,
		Catalog:         catalogSvc,
		Metrics:         metricsCollector,
		MetricsPath:     cfg.Metrics.Path,
		Logger:          log,
	})
	r.Use(middleware.RequestLogging(log))

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
