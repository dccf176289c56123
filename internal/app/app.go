package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"newsboard/internal/adapter/fetcher"
	"newsboard/internal/adapter/parser"
	"newsboard/internal/config"
	"newsboard/internal/logger"
	"newsboard/internal/migrations"
	server "newsboard/internal/transport/http"
	"newsboard/internal/usecase"
	"newsboard/internal/worker"
	"newsboard/storage"
)

const shutdownTimeout = 10 * time.Second

// App связывает компоненты сервиса newsboard: HTTP-сервер, воркер
// синхронизации источников, базу данных и логгер.
type App struct {
	config   *config.Config
	logger   *slog.Logger
	server   *http.Server
	worker   *worker.Worker
	dbPool   *pgxpool.Pool
	stopChan chan os.Signal
	wg       sync.WaitGroup
}

// New настраивает логгер, подключается к PostgreSQL, применяет миграции
// и собирает зависимости. Возвращает ошибку при сбое любого шага.
func New(cfg *config.Config) (*App, error) {
	interval, err := cfg.App.SyncIntervalDuration()
	if err != nil {
		return nil, fmt.Errorf("bad init app: %w", err)
	}
	appLogger, err := logger.New(cfg.Logger)
	if err != nil {
		return nil, fmt.Errorf("failed to setup logger: %w", err)
	}
	slog.SetDefault(appLogger)

	ctx := context.Background()
	dbPool, err := pgxpool.New(ctx, cfg.Database.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database ping failed: %w", err)
	}
	appLogger.Info("Database connection established", slog.String("component", "database"))
	if err := migrations.Apply(ctx, appLogger, dbPool); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("migrations failed: %w", err)
	}

	dbStorage := storage.NewPostgresNewsDB(dbPool, appLogger)
	sourceFetcher := fetcher.New(appLogger)
	documentParser := parser.NewDocumentParser(appLogger)

	sectionSync := usecase.NewSectionSyncUseCase(sourceFetcher, documentParser, dbStorage, appLogger)
	sectionGetter := usecase.NewSectionGetterUseCase(dbStorage)

	handler := server.NewHandler(appLogger, sectionGetter, cfg.App.DefaultSection)
	router := server.NewServer(appLogger, handler)

	return &App{
		config: cfg,
		logger: appLogger,
		server: &http.Server{
			Addr:              cfg.Server.Address,
			Handler:           router,
			ReadHeaderTimeout: 5 * time.Second,
		},
		worker:   worker.New(sectionSync, cfg.App.Sources, interval, appLogger),
		dbPool:   dbPool,
		stopChan: make(chan os.Signal, 1),
	}, nil
}

// Run запускает воркер и HTTP-сервер и блокируется до сигнала
// SIGINT/SIGTERM либо до падения сервера, после чего выполняет Shutdown.
func (a *App) Run() error {
	a.logger.Info("Starting newsboard",
		slog.String("component", "app"),
		slog.Int("source_count", len(a.worker.Sources())),
		slog.String("sync_interval", a.worker.Interval().String()),
		slog.String("default_section", a.config.App.DefaultSection),
	)
	listener, err := net.Listen("tcp", a.server.Addr)
	if err != nil {
		return fmt.Errorf("failed to create listener: %w", err)
	}
	a.worker.Start()
	a.logger.Info("HTTP server ready",
		slog.String("component", "server"),
		slog.String("address", listener.Addr().String()),
	)

	serveErr := make(chan error, 1)
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.logger.Error("HTTP server failed",
				slog.String("component", "server"),
				slog.Any("error", err),
			)
			serveErr <- err
		}
	}()

	signal.Notify(a.stopChan, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(a.stopChan)
	var runErr error
	select {
	case sig := <-a.stopChan:
		a.logger.Info("Shutdown signal received",
			slog.String("component", "app"),
			slog.String("signal", sig.String()),
		)
	case runErr = <-serveErr:
	}
	if err := a.Shutdown(); err != nil {
		return err
	}
	return runErr
}

// Shutdown останавливает воркер, завершает HTTP-сервер с таймаутом
// 10 секунд, закрывает пул соединений и дожидается горутин.
func (a *App) Shutdown() error {
	a.logger.Info("Starting graceful shutdown", slog.String("component", "app"))
	if a.worker != nil {
		a.worker.Stop()
	}
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	var shutdownErr error
	if err := a.server.Shutdown(shutdownCtx); err != nil {
		a.logger.Error("HTTP server shutdown failed",
			slog.String("component", "server"),
			slog.Any("error", err),
		)
		shutdownErr = fmt.Errorf("server shutdown: %w", err)
	}
	a.wg.Wait()
	if a.dbPool != nil {
		a.dbPool.Close()
	}
	a.logger.Info("Application stopped gracefully", slog.String("component", "app"))
	return shutdownErr
}
