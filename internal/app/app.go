package app

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/GlebRadaev/wordpay/internal/callback"
	"github.com/GlebRadaev/wordpay/internal/config"
	"github.com/GlebRadaev/wordpay/internal/gateway"
	"github.com/GlebRadaev/wordpay/internal/handlers"
	"github.com/GlebRadaev/wordpay/internal/pg"
	"github.com/GlebRadaev/wordpay/internal/repo"
	"github.com/GlebRadaev/wordpay/internal/service"
	"github.com/GlebRadaev/wordpay/pkg/auth"
	"github.com/GlebRadaev/wordpay/pkg/clients"
	"github.com/GlebRadaev/wordpay/pkg/logger"
)

const callbackPath = "/payments/callback"

type ApplicationI interface {
	Start(ctx context.Context) error
	Wait(ctx context.Context, cancel context.CancelFunc) error
}

type Application struct {
	cfg   *config.Config
	api   *handlers.Handlers
	srv   *service.Services
	repo  *repo.Repositories
	queue *callback.Queue

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

	// The callback listener is bound before anything else is wired so the
	// resolved port can go into the URL sent to the provider.
	listener, err := net.Listen("tcp", cfg.CallbackAddress)
	if err != nil {
		return fmt.Errorf("can't bind callback listener: %w", err)
	}
	cbURL := callbackURL(cfg.CallbackURL, listener.Addr())

	conn := pg.New(pool)
	jwtService := auth.NewJWTService(cfg.JWTSecret)
	gw := gateway.New(cfg.PaymentAPIURL, cfg.PaymentAPIKey, clients.NewHTTPClient(cfg.PaymentTimeout))

	a.cfg = cfg
	a.repo = repo.New(conn)
	a.srv = service.New(a.repo, txManager, gw, jwtService, cbURL)

	var queue callback.QueueI
	if cfg.CallbackWorkers > 0 {
		a.queue = callback.NewQueue(cfg.CallbackWorkers, cfg.CallbackQueueSize)
		queue = a.queue
	}
	a.api = handlers.New(a.srv, jwtService, conn, queue, cfg.CallbackSecret)

	if err = a.startHTTPServer(ctx); err != nil {
		return fmt.Errorf("can't start http server: %w", err)
	}
	a.startCallbackServer(ctx, listener, cbURL)
	a.startCallbackQueue(ctx)

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

// callbackURL returns the configured public base with the callback path
// appended, or the local listener address when none is configured.
func callbackURL(public string, addr net.Addr) string {
	if public != "" {
		return public + callbackPath
	}
	return "http://" + addr.String() + callbackPath
}

func (a *Application) startHTTPServer(ctx context.Context) error {
	router := chi.NewRouter()
	a.api.InitRoutes(router)
	server := &http.Server{
		Addr:    a.cfg.Address,
		Handler: router,
	}
	a.shutdownOnDone(ctx, server)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting http server on port", zap.String("port", a.cfg.Address))
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("http server exited with error: %w", err)
		}
	}()

	return nil
}

func (a *Application) startCallbackServer(ctx context.Context, listener net.Listener, url string) {
	router := chi.NewRouter()
	a.api.InitCallbackRoutes(router)
	server := &http.Server{
		Handler: router,
	}
	a.shutdownOnDone(ctx, server)

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		zap.L().Info("starting callback listener",
			zap.String("address", listener.Addr().String()), zap.String("callback_url", url))
		if err := server.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.errCh <- fmt.Errorf("callback server exited with error: %w", err)
		}
	}()
}

// startCallbackQueue runs the workers detached from ctx so tasks already
// accepted are still processed after shutdown begins. The queue is closed
// once ctx is done and Wait returns after it drains.
func (a *Application) startCallbackQueue(ctx context.Context) {
	if a.queue == nil {
		return
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		if err := a.queue.Run(context.WithoutCancel(ctx)); err != nil {
			a.errCh <- fmt.Errorf("callback queue exited with error: %w", err)
		}
	}()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()
		a.queue.Close()
	}()
}

func (a *Application) shutdownOnDone(ctx context.Context, server *http.Server) {
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		<-ctx.Done()

		sCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		server.Shutdown(sCtx)
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
