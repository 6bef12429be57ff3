package main

import (
	"context"
	"fmt"
	stdlog "log"
	"net"
	"net/http"
	_ "net/http/pprof" //nolint:gosec // localhost-only ${PPROF_PORT}
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/gorilla/mux"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	application "truckboard/internal/app"
	"truckboard/internal/handlers/rest/deliveries_get"
	"truckboard/internal/handlers/rest/delivery_delete"
	"truckboard/internal/handlers/rest/delivery_get"
	"truckboard/internal/handlers/rest/delivery_post"
	"truckboard/internal/handlers/rest/delivery_put"
	"truckboard/internal/handlers/rest/event_delete"
	"truckboard/internal/handlers/rest/event_get"
	"truckboard/internal/handlers/rest/event_post"
	"truckboard/internal/handlers/rest/event_put"
	"truckboard/internal/handlers/rest/events_get"
	"truckboard/internal/handlers/rest/healthcheck_head"
	"truckboard/internal/handlers/rest/item_delete"
	"truckboard/internal/handlers/rest/item_get"
	"truckboard/internal/handlers/rest/item_post"
	"truckboard/internal/handlers/rest/item_put"
	"truckboard/internal/handlers/rest/items_get"
	"truckboard/internal/handlers/rest/login_post"
	"truckboard/internal/handlers/rest/logout_post"
	"truckboard/internal/handlers/rest/ping_get"
	"truckboard/internal/handlers/rest/recommendations_get"
	"truckboard/internal/handlers/rest/register_post"
	"truckboard/internal/handlers/rest/route_delete"
	"truckboard/internal/handlers/rest/route_get"
	"truckboard/internal/handlers/rest/route_optimize_post"
	"truckboard/internal/handlers/rest/route_post"
	"truckboard/internal/handlers/rest/route_put"
	"truckboard/internal/handlers/rest/routes_get"
	"truckboard/internal/handlers/rest/session_get"
	"truckboard/internal/handlers/rest/station_delete"
	"truckboard/internal/handlers/rest/station_get"
	"truckboard/internal/handlers/rest/station_post"
	"truckboard/internal/handlers/rest/station_put"
	"truckboard/internal/handlers/rest/stations_get"
	"truckboard/internal/handlers/rest/stations_nearby_get"
	"truckboard/internal/pkg/config"
	"truckboard/internal/pkg/dotenv"
	metrics_system "truckboard/internal/pkg/metrics"
	authmw "truckboard/internal/pkg/middlewares/auth"
	"truckboard/internal/pkg/middlewares/graceful_shutdown"
	"truckboard/internal/pkg/middlewares/metrics"
	"truckboard/internal/pkg/middlewares/rate_limiter"
	"truckboard/internal/pkg/middlewares/request_id"
	"truckboard/internal/pkg/middlewares/timeout"
	"truckboard/internal/pkg/postgres"
	"truckboard/internal/pkg/seed"
	"truckboard/pkg/logger"
	"truckboard/pkg/logger/zap_adapter"
	"truckboard/pkg/token_bucket"
)

func main() {
	zapLogger, err := zap_adapter.NewZapAdapter()
	if err != nil {
		stdlog.Fatalf("failed to initialize logger: %v", err)
	}
	defer func() {
		if err := zapLogger.Sync(); err != nil {
			stdlog.Printf("failed to sync logger: %v", err)
		}
	}()

	var appLogger logger.Logger = zapLogger
	mainLog := appLogger.With()

	mainLog.Info("starting truckboard application")

	if _, err := os.Stat(".env"); err == nil {
		if err := dotenv.Load(); err != nil {
			mainLog.Error("failed to load .env file", logger.NewField("error", err))
			return
		}
	} else {
		mainLog.Warn("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		mainLog.Error("load config", logger.NewField("error", err))
		return
	}

	err = run(context.Background(), cfg, appLogger)
	if err != nil {
		mainLog.Error("application failed", logger.NewField("error", err))
		return
	}
}

//nolint:contextcheck // ongoing-request contexts intentionally derive from context.Background() so in-flight work survives the shutdown signal
func run(ctx context.Context, cfg *config.Config, log logger.Logger) error {
	const (
		shutdownPeriod      = 15 * time.Second
		shutdownHardPeriod  = 3 * time.Second
		readinessDrainDelay = 5 * time.Second
	)

	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	var isShuttingDown atomic.Bool

	ctx, stop := signal.NotifyContext(ctx, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	runLog := log.With()

	var businessApp *application.Application

	switch cfg.Storage.Driver {
	case config.StorageDriverPostgres:
		pool, err := postgres.NewConnPool(ctx, log, &cfg.Database)
		if err != nil {
			return fmt.Errorf("database: %w", err)
		}
		defer pool.Close()

		businessApp, err = application.InitializePostgresApplication(ctx, log, pool, cfg)
		if err != nil {
			return fmt.Errorf("business logic: %w", err)
		}
	default:
		var err error
		businessApp, err = application.InitializeMemoryApplication(ctx, log, cfg)
		if err != nil {
			return fmt.Errorf("business logic: %w", err)
		}
	}

	if err := seed.Stations(ctx, log, businessApp.ServiceStation, cfg.Seed.StationsPath); err != nil {
		return fmt.Errorf("seed stations: %w", err)
	}

	metrics_system.StartSystemMetricsCollector()

	// ongoingCtx backs BaseContext and must not end on SIGTERM; it is
	// cancelled only after server.Shutdown() so in-flight requests finish.
	// https://victoriametrics.com/blog/go-graceful-shutdown/#b-use-basecontext-to-provide-a-global-context-to-all-connections
	ongoingCtx, stopOngoingGracefully := context.WithCancel(context.Background())
	defer stopOngoingGracefully()

	server := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: initRouter(ongoingCtx, log, &isShuttingDown, businessApp, cfg.Server),
		BaseContext: func(_ net.Listener) context.Context {
			return ongoingCtx
		},

		ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	serverErr := make(chan error, 1)
	go func() {
		defer close(serverErr)
		runLog.Info("server starting",
			logger.NewField("port", cfg.Server.Port),
			logger.NewField("storage", cfg.Storage.Driver),
		)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			serverErr <- err
		}
	}()

	var pprofServer *http.Server
	var pprofServerErr chan error
	if cfg.Server.PprofEnabled {
		pprofMux := http.NewServeMux()
		pprofMux.Handle("/debug/pprof/", http.DefaultServeMux)

		pprofServer = &http.Server{
			Addr:    fmt.Sprintf(":%s", cfg.Server.PprofPort),
			Handler: initPprofRouter(&isShuttingDown),
			BaseContext: func(_ net.Listener) context.Context {
				return ongoingCtx
			},

			ReadHeaderTimeout: 5 * time.Second, // Slowloris DoS gosec G112
			ReadTimeout:       60 * time.Second,
			WriteTimeout:      60 * time.Second,
			IdleTimeout:       60 * time.Second,
		}

		pprofServerErr = make(chan error, 1)
		go func() {
			defer close(pprofServerErr)
			runLog.Info("pprof server starting",
				logger.NewField("port", cfg.Server.PprofPort),
			)
			if err := pprofServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
				pprofServerErr <- err
			}
		}()
	}

	select {
	case <-ctx.Done():
		runLog.Info("Shutdown signal received")
	case err := <-serverErr:
		return fmt.Errorf("server: %w", err)
	case err := <-pprofServerErr: // stays nil (blocks forever) when pprof is disabled
		return fmt.Errorf("pprof server: %w", err)
	}

	stop()
	isShuttingDown.Store(true)

	time.Sleep(readinessDrainDelay)
	runLog.Info("draining requests")

	// shutdownCtx must not derive from ctx, which is already cancelled here.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownPeriod)

	defer cancel()

	var shutdownErr error
	err := server.Shutdown(shutdownCtx)
	if pprofServer != nil {
		shutdownErr = pprofServer.Shutdown(shutdownCtx)
		if shutdownErr != nil {
			runLog.Error("pprof server shutdown error", logger.NewField("error", shutdownErr))
		} else {
			runLog.Info("pprof server stopped")
		}
	}

	stopOngoingGracefully()
	if err != nil || shutdownErr != nil {
		runLog.Info("Graceful shutdown timeout, forcing close")
		time.Sleep(shutdownHardPeriod)
	}

	runLog.Info("Server stopped")
	return nil
}

func initRouter(ongoingCtx context.Context, log logger.Logger, isShuttingDown *atomic.Bool, app *application.Application, cfg config.HTTPServer) http.Handler {
	router := mux.NewRouter()

	router.Use(graceful_shutdown.Middleware(isShuttingDown, ongoingCtx))

	router.Use(request_id.Middleware())
	router.Use(timeout.Middleware(cfg.RequestTimeout))
	router.Use(metrics.Middleware(log))
	router.Use(rate_limiter.Middleware(log, cfg.RateLimiterQPS, token_bucket.NewTokenBucket(cfg.RateLimiterQPS, float64(cfg.RateLimiterBurst))))
	router.Handle("/metrics", promhttp.Handler())

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.Handle("/ping", ping_get.New(log)).Methods("GET")

	// Session management stays outside the auth middleware.
	router.Handle("/api/register", register_post.New(log, app.ServiceAuth)).Methods("POST")
	router.Handle("/api/login", login_post.New(log, app.ServiceAuth, app.Sessions)).Methods("POST")
	router.Handle("/api/logout", logout_post.New()).Methods("POST")

	api := router.PathPrefix("/api").Subrouter()
	api.Use(authmw.Middleware(log, app.Sessions))

	api.Handle("/session", session_get.New(log, app.ServiceAuth)).Methods("GET")

	api.Handle("/inventory", item_post.New(log, app.ServiceInventory)).Methods("POST")
	api.Handle("/inventory", items_get.New(log, app.ServiceInventory)).Methods("GET")
	api.Handle("/inventory/{id}", item_get.New(log, app.ServiceInventory)).Methods("GET")
	api.Handle("/inventory/{id}", item_put.New(log, app.ServiceInventory)).Methods("PUT")
	api.Handle("/inventory/{id}", item_delete.New(log, app.ServiceInventory)).Methods("DELETE")

	api.Handle("/deliveries", delivery_post.New(log, app.ServiceDelivery)).Methods("POST")
	api.Handle("/deliveries", deliveries_get.New(log, app.ServiceDelivery)).Methods("GET")
	api.Handle("/deliveries/{id}", delivery_get.New(log, app.ServiceDelivery)).Methods("GET")
	api.Handle("/deliveries/{id}", delivery_put.New(log, app.ServiceDelivery)).Methods("PUT")
	api.Handle("/deliveries/{id}", delivery_delete.New(log, app.ServiceDelivery)).Methods("DELETE")

	api.Handle("/routes", route_post.New(log, app.ServiceRoute)).Methods("POST")
	api.Handle("/routes", routes_get.New(log, app.ServiceRoute)).Methods("GET")
	api.Handle("/routes/{id}", route_get.New(log, app.ServiceRoute)).Methods("GET")
	api.Handle("/routes/{id}", route_put.New(log, app.ServiceRoute)).Methods("PUT")
	api.Handle("/routes/{id}", route_delete.New(log, app.ServiceRoute)).Methods("DELETE")
	api.Handle("/routes/{id}/optimize", route_optimize_post.New(log, app.ServiceRoute)).Methods("POST")

	api.Handle("/recommendations", recommendations_get.New(log, app.ServiceAdvisor)).Methods("GET")

	// /stations/nearby registers before /stations/{id} so "nearby" is
	// never parsed as an id.
	api.Handle("/stations", station_post.New(log, app.ServiceStation)).Methods("POST")
	api.Handle("/stations", stations_get.New(log, app.ServiceStation)).Methods("GET")
	api.Handle("/stations/nearby", stations_nearby_get.New(log, app.ServiceStation)).Methods("GET")
	api.Handle("/stations/{id}", station_get.New(log, app.ServiceStation)).Methods("GET")
	api.Handle("/stations/{id}", station_put.New(log, app.ServiceStation)).Methods("PUT")
	api.Handle("/stations/{id}", station_delete.New(log, app.ServiceStation)).Methods("DELETE")

	api.Handle("/events", event_post.New(log, app.ServiceSchedule)).Methods("POST")
	api.Handle("/events", events_get.New(log, app.ServiceSchedule)).Methods("GET")
	api.Handle("/events/{id}", event_get.New(log, app.ServiceSchedule)).Methods("GET")
	api.Handle("/events/{id}", event_put.New(log, app.ServiceSchedule)).Methods("PUT")
	api.Handle("/events/{id}", event_delete.New(log, app.ServiceSchedule)).Methods("DELETE")

	return router
}

func initPprofRouter(isShuttingDown *atomic.Bool) http.Handler {
	router := mux.NewRouter()

	router.Handle("/healthcheck", healthcheck_head.New(isShuttingDown)).Methods("HEAD")
	router.PathPrefix("/debug/pprof/").Handler(http.DefaultServeMux)

	return router
}
