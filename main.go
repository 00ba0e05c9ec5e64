package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"tubeline/config"
	"tubeline/database"
	"tubeline/handlers"
	"tubeline/media"
	"tubeline/routes"
	"tubeline/service"
)

func main() {
	// A missing .env is fine; the environment may already be set.
	_ = godotenv.Load()

	var configPath string
	flag.StringVar(&configPath, "config", "", "path to config file (overrides CONFIG_PATH env)")
	flag.Parse()

	cfg := config.MustLoad(configPath)

	log := setupLogger(cfg.Env)
	slog.SetDefault(log)
	log.Info("starting tubeline", "env", cfg.Env, "media", cfg.Media.Provider)

	rootCtx, rootCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer rootCancel()

	store, err := connectStore(rootCtx, log, cfg.DB)
	if err != nil {
		log.Error("mongo_connect_failed", slog.String("err", err.Error()))
		os.Exit(1)
	}
	log.Info("mongo_connected")

	provider, err := newMedia(rootCtx, cfg.Media)
	if err != nil {
		log.Error("media_init_failed", slog.String("err", err.Error()))
		_ = store.Close(context.Background())
		os.Exit(1)
	}

	svc := service.New(store, provider, cfg)
	h := handlers.New(svc, cfg.Timeouts.Request, cfg.Timeouts.Upload)

	if cfg.Env == config.EnvProd {
		gin.SetMode(gin.ReleaseMode)
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

	server := &http.Server{
		Addr:         cfg.HTTP.Addr(),
		Handler:      routes.SetupRouter(cfg, h, log, reg),
		ReadTimeout:  cfg.HTTP.ReadTimeout,
		WriteTimeout: cfg.HTTP.WriteTimeout,
		IdleTimeout:  cfg.HTTP.IdleTimeout,
	}

	serveErrCh := make(chan error, 1)
	go func() {
		log.Info("http_listen_start", "addr", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErrCh <- err
		}
		close(serveErrCh)
	}()

	select {
	case <-rootCtx.Done():
		log.Info("shutdown_requested")
	case err := <-serveErrCh:
		if err != nil {
			log.Error("http_serve_failed", slog.String("err", err.Error()))
		}
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Warn("http_force_stop", slog.String("err", err.Error()))
	}

	// Replaced files still being released finish before the store goes away.
	svc.Wait()

	if err := store.Close(shutdownCtx); err != nil {
		log.Warn("mongo_close_failed", slog.String("err", err.Error()))
	}

	log.Info("service_stopped")
}

// connectStore retries the initial connection; Mongo often comes up after
// the API in container setups.
func connectStore(ctx context.Context, log *slog.Logger, cfg config.DBConfig) (*database.Store, error) {
	attempts := max(cfg.ConnectRetries, 1)

	var lastErr error
	for i := 1; i <= attempts; i++ {
		dbCtx, cancel := context.WithTimeout(ctx, 10*time.Second)
		store, err := database.Connect(dbCtx, cfg)
		cancel()
		if err == nil {
			return store, nil
		}

		lastErr = err
		log.Warn("mongo_connect_attempt_failed", slog.Int("attempt", i), slog.String("err", err.Error()))

		if i < attempts {
			select {
			case <-ctx.Done():
				return nil, ctx.Err()
			case <-time.After(cfg.RetryDelay):
			}
		}
	}

	return nil, fmt.Errorf("mongo: %d attempts: %w", attempts, lastErr)
}

func newMedia(ctx context.Context, cfg config.MediaConfig) (service.Media, error) {
	switch cfg.Provider {
	case config.MediaMinIO:
		return media.NewMinIO(ctx, cfg)
	case config.MediaCloudinary:
		return media.NewCloudinary(cfg)
	default:
		return nil, fmt.Errorf("unknown media provider %q", cfg.Provider)
	}
}

func setupLogger(env string) *slog.Logger {
	switch env {
	case config.EnvLocal:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvDev:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	case config.EnvProd:
		return slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelInfo}))
	default:
		return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelDebug}))
	}
}
