package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/funcoin/internal/audit"
	"github.com/GlebRadaev/funcoin/internal/config"
	"github.com/GlebRadaev/funcoin/internal/handlers"
	"github.com/GlebRadaev/funcoin/internal/pg"
	"github.com/GlebRadaev/funcoin/internal/repo"
	"github.com/GlebRadaev/funcoin/internal/repo/memory"
	"github.com/GlebRadaev/funcoin/internal/service"
	"github.com/GlebRadaev/funcoin/pkg/logger"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg     *config.Config
	api     *handlers.Handlers
	srv     *service.Services
	repo    *repo.Repositories
	auditor *audit.Service
	pool    *pgxpool.Pool

	errCh chan error
	wg    sync.WaitGroup
	ready bool
}

func New() *Application {
	return &Application{
		errCh: make(chan error),
	}
}

func (a *Application) Start(ctx context.Context) error {
	cfg, err := config.New()
	if err != nil {
		return fmt.Errorf("can't load config: %w", err)
	}

	if err := logger.InitLogger(cfg); err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}

	a.cfg = cfg
	if err := a.initStorage(ctx); err != nil {
		return err
	}
	a.srv = service.New(a.repo, cfg)
	a.api = handlers.New(a.srv)
	a.auditor = audit.New(a.repo.AuditAccounts, a.repo.AuditLedger, a.repo.TXManager, audit.Options{
		Interval: cfg.AuditInterval,
		Workers:  cfg.AuditWorkers,
	})

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	a.startAuditor(ctx)

	a.ready = true
	zap.L().Info("all systems started successfully", zap.String("storage", cfg.Storage))
	return nil
}

func (a *Application) initStorage(ctx context.Context) error {
	if a.cfg.Storage == config.StorageMemory {
		zap.L().Warn("using in-memory storage, balances are lost on restart")
		a.repo = repo.NewInMemory(memory.New())
		return nil
	}

	pool, err := getPgxpool(ctx, a.cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(ctx, pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		pool.Close()
		return fmt.Errorf("can't run migrations: %w", err)
	}

	a.pool = pool
	a.repo = repo.New(pg.New(pool), pg.NewTXManager(pool))
	return nil
}

func getPgxpool(ctx context.Context, cfg *config.Config) (*pgxpool.Pool, error) {
	cfgpool, err := pgxpool.ParseConfig(cfg.Database)
	if err != nil {
		return nil, err
	}
	dbpool, err := pgxpool.NewWithConfig(ctx, cfgpool)
	if err != nil {
		return nil, err
	}
	if err = dbpool.Ping(ctx); err != nil {
		dbpool.Close()
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:              a.cfg.Address,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := server.Shutdown(sCtx); err != nil {
			zap.L().Error("http server shutdown failed", zap.Error(err))
		}
		if a.pool != nil {
			a.pool.Close()
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startAuditor(ctx context.Context) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.auditor.Start(ctx)
		<-ctx.Done()
	}()
}

func (a *Application) Wait(ctx context.Context, cancel context.CancelFunc) error {
	var appErr error

	var wg sync.WaitGroup
	wg.Add(1)

	go func() {
		defer wg.Done()

		for err := range a.errCh {
			cancel()
			zap.L().Error(err.Error())
			appErr = err
		}
	}()

	<-ctx.Done()
	a.wg.Wait()
	close(a.errCh)
	wg.Wait()

	return appErr
}
