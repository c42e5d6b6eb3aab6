package app

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/robfig/cron/v3"
	"go.uber.org/zap"

	"github.com/tigglepay/backend/internal/bank"
	"github.com/tigglepay/backend/internal/config"
	"github.com/tigglepay/backend/internal/donation"
	"github.com/tigglepay/backend/internal/handlers"
	"github.com/tigglepay/backend/internal/pg"
	"github.com/tigglepay/backend/internal/repo"
	"github.com/tigglepay/backend/internal/service"
	"github.com/tigglepay/backend/internal/sweep"
	pkgauth "github.com/tigglepay/backend/pkg/auth"
	"github.com/tigglepay/backend/pkg/clients"
	"github.com/tigglepay/backend/pkg/logger"
	"github.com/tigglepay/backend/pkg/vault"
)

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg      *config.Config
	api      *handlers.Handlers
	srv      *service.Services
	repo     *repo.Repositories
	sweep    *sweep.Service
	donation *donation.Service
	cron     *cron.Cron

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
	cfg := config.New()

	err := logger.InitLogger(cfg)
	if err != nil {
		return fmt.Errorf("can't init logger: %w", err)
	}
	pkgauth.SetSecret(cfg.JWTSecret)

	pool, err := getPgxpool(ctx, cfg)
	if err != nil {
		zap.L().Error("build pgx pool failed: ", zap.Error(err))
		return fmt.Errorf("can't build pgx pool: %w", err)
	}
	if err := pg.RunMigrations(pool); err != nil {
		zap.L().Error("migrations failed: ", zap.Error(err))
		return fmt.Errorf("can't run migrations: %w", err)
	}
	txManager := pg.NewTXManager(pool)

	credVault, err := vault.New(cfg.VaultKey)
	if err != nil {
		return fmt.Errorf("can't init credential vault: %w", err)
	}
	bankAPI := bank.New(cfg.BankAddress, clients.NewHTTPClient())

	conn := pg.New(pool)
	a.cfg = cfg
	a.repo = repo.New(conn, txManager)
	a.srv = service.New(a.repo, bankAPI, credVault)
	a.api = handlers.New(a.srv)
	a.sweep = sweep.New(a.repo.UserRepo, a.repo.PiggyBankRepo, bankAPI, credVault)
	a.donation = donation.New(a.repo.UserRepo, a.repo.PiggyBankRepo, a.repo.UniversityRepo, a.repo.DonationRepo, bankAPI, credVault, donation.Config{
		SettlementAccount:    cfg.SettlementAccount,
		SettlementCredential: cfg.SettlementCredential,
		AuditDir:             cfg.AuditDir,
	})

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}

	if err = a.startScheduler(ctx); err != nil {
		return fmt.Errorf("can't start scheduler: %w", err)
	}

	a.ready = true
	zap.L().Info("all systems started successfully")
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
		return nil, err
	}
	return dbpool, nil
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

// startScheduler registers the two settlement jobs with the calendar
// scheduler. Overlap safety comes from the jobs' own idempotency checks, not
// from cron.
func (a *Application) startScheduler(ctx context.Context) error {
	a.cron = cron.New()

	if _, err := a.cron.AddFunc(a.cfg.SweepCron, func() { a.sweep.Run(ctx) }); err != nil {
		return fmt.Errorf("invalid sweep cron spec %q: %w", a.cfg.SweepCron, err)
	}
	if _, err := a.cron.AddFunc(a.cfg.DonationCron, func() { a.donation.Run(ctx) }); err != nil {
		return fmt.Errorf("invalid donation cron spec %q: %w", a.cfg.DonationCron, err)
	}

	a.cron.Start()
	zap.L().Info("settlement scheduler started",
		zap.String("sweep", a.cfg.SweepCron),
		zap.String("donation", a.cfg.DonationCron))

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		<-a.cron.Stop().Done()
	}()

	return nil
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
