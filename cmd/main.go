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

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/m04kA/Festum-DesignService/internal/api"
	"github.com/m04kA/Festum-DesignService/internal/catalog"
	"github.com/m04kA/Festum-DesignService/internal/config"
	"github.com/m04kA/Festum-DesignService/internal/infra/storage"
	kvRepo "github.com/m04kA/Festum-DesignService/internal/infra/storage/kv"
	designsService "github.com/m04kA/Festum-DesignService/internal/service/designs"
	"github.com/m04kA/Festum-DesignService/internal/templates"
	"github.com/m04kA/Festum-DesignService/pkg/dbmetrics"
	"github.com/m04kA/Festum-DesignService/pkg/logger"
	"github.com/m04kA/Festum-DesignService/pkg/metrics"
	"github.com/m04kA/Festum-DesignService/pkg/sqlbuilder"
)

func main() {
	configPath := "config.toml"
	if p := os.Getenv("FESTUM_CONFIG"); p != "" {
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

	log.Info("Starting Festum-DesignService...")
	log.Info("Configuration loaded from %s", configPath)

	// Инициализируем метрики (если включены)
	var metricsCollector *metrics.Metrics
	stopBackgroundCh := make(chan struct{})

	if cfg.Metrics.Enabled {
		metricsCollector = metrics.New(cfg.Metrics.ServiceName)
		log.Info("Metrics enabled at %s", cfg.Metrics.Path)
	}

	// Подключаемся к хранилищу автосохранений
	db, err := openDatabase(cfg.Storage)
	if err != nil {
		log.Fatal("Failed to open database: %v", err)
	}
	defer db.Close()

	pingCtx, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := db.PingContext(pingCtx); err != nil {
		log.Fatal("Failed to ping database: %v", err)
	}
	log.Info("Successfully connected to %s storage", cfg.Storage.Driver)

	// Инициализируем репозиторий (с метриками или без)
	builder := sqlbuilder.New(cfg.Storage.Driver)
	var kvRepository *kvRepo.Repository
	if cfg.Metrics.Enabled {
		kvRepository = kvRepo.NewRepository(dbmetrics.WrapWithDefault(db, metricsCollector, stopBackgroundCh), builder)
		log.Info("Database metrics collection started")
	} else {
		kvRepository = kvRepo.NewRepository(db, builder)
	}

	if err := kvRepository.EnsureSchema(context.Background()); err != nil {
		log.Fatal("Failed to prepare schema: %v", err)
	}

	// Инициализируем сервисы
	var designMetrics designsService.Metrics
	if metricsCollector != nil {
		designMetrics = metricsCollector
	}
	designSvc := designsService.NewService(
		catalog.New(),
		templates.NewRegistry(),
		kvRepository,
		designMetrics,
		log,
		designsService.Options{
			DefaultTemplateID:  cfg.Designer.DefaultTemplate,
			MaxSessions:        cfg.Designer.MaxSessions,
			AutosaveTimeout:    time.Duration(cfg.Designer.AutosaveTimeout) * time.Millisecond,
			SessionIdleTimeout: time.Duration(cfg.Designer.SessionIdleTimeout) * time.Second,
		},
	)

	// Закрываем брошенные сессии (вкладка закрыта без DELETE)
	if cfg.Designer.SessionIdleTimeout > 0 {
		go designSvc.RunEvictor(time.Duration(cfg.Designer.EvictInterval)*time.Second, stopBackgroundCh)
		log.Info("Idle design eviction enabled (timeout=%ds, interval=%ds)",
			cfg.Designer.SessionIdleTimeout, cfg.Designer.EvictInterval)
	}

	// Настраиваем роутер
	routerOpts := api.RouterOptions{}
	if cfg.Metrics.Enabled {
		routerOpts.Metrics = metricsCollector
		routerOpts.MetricsPath = cfg.Metrics.Path
		routerOpts.MetricsHandler = promhttp.Handler()
		log.Info("Prometheus metrics endpoint exposed at %s", cfg.Metrics.Path)
	}
	r := api.NewRouter(designSvc, log, routerOpts)

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

	// Останавливаем сбор метрик пула и вытеснение сессий
	close(stopBackgroundCh)
	log.Info("Background collectors stopped")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Duration(cfg.Server.ShutdownTimeout)*time.Second,
	)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown: %v", err)
	}

	log.Info("Server stopped gracefully (open designs: %d)", designSvc.SessionCount())
}

func openDatabase(cfg config.StorageConfig) (*sql.DB, error) {
	switch cfg.Driver {
	case sqlbuilder.DriverPostgres:
		return storage.OpenPostgres(cfg.Postgres.DSN(), storage.PoolOptions{
			MaxOpenConns:    cfg.Postgres.MaxOpenConns,
			MaxIdleConns:    cfg.Postgres.MaxIdleConns,
			ConnMaxLifetime: time.Duration(cfg.Postgres.ConnMaxLifetime) * time.Second,
		})
	default:
		return storage.OpenSQLite(cfg.SQLitePath)
	}
}
