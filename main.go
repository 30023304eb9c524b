package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"allaboutxrp/config"
	"allaboutxrp/di"
	"allaboutxrp/driver/digest_db"
	middleware_custom "allaboutxrp/middleware"
	"allaboutxrp/rest"
	"allaboutxrp/utils/logger"
	"allaboutxrp/utils/otel"

	"github.com/labstack/echo/v4"
	"go.opentelemetry.io/contrib/instrumentation/github.com/labstack/echo/otelecho"
	"golang.org/x/sync/errgroup"
)

const limiterSweepInterval = time.Minute

func main() {
	// Docker healthcheck in the distroless image
	if len(os.Args) > 1 && os.Args[1] == "healthcheck" {
		if err := runHealthcheck(); err != nil {
			fmt.Fprintf(os.Stderr, "Healthcheck failed: %v\n", err)
			os.Exit(1)
		}
		os.Exit(0)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	cfg, err := config.NewConfig()
	if err != nil {
		slog.ErrorContext(ctx, "failed to load configuration", "error", err)
		os.Exit(1)
	}

	otelShutdown, err := otel.InitProvider(ctx, cfg.OTel)
	if err != nil {
		slog.Warn("failed to initialize OpenTelemetry, continuing without tracing", "error", err)
		cfg.OTel.Enabled = false
		otelShutdown = func(context.Context) error { return nil }
	}

	log := logger.Init(cfg.OTel.Enabled)
	log.InfoContext(ctx, "configuration loaded",
		"port", cfg.Server.Port,
		"site_url", cfg.Digest.SiteURL,
		"redis_enabled", cfg.Redis.Enabled,
		"billing_configured", cfg.Billing.Configured(),
		"catalog_path", cfg.Catalog.Path)

	pool, err := digest_db.InitPool(ctx, cfg.Database)
	if err != nil {
		log.ErrorContext(ctx, "failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer pool.Close()

	container, err := di.NewApplicationComponents(cfg, pool)
	if err != nil {
		log.ErrorContext(ctx, "failed to build application", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := container.Close(); err != nil {
			log.Warn("failed to release resources", "error", err)
		}
	}()

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Server.ReadTimeout = cfg.Server.ReadTimeout
	e.Server.WriteTimeout = cfg.Server.WriteTimeout
	e.Server.IdleTimeout = cfg.Server.IdleTimeout

	if cfg.OTel.Enabled {
		e.Use(otelecho.Middleware(cfg.OTel.ServiceName))
		e.Use(middleware_custom.OTelStatusMiddleware())
	}
	rest.RegisterRoutes(e, container, cfg)

	address := fmt.Sprintf(":%d", cfg.Server.Port)
	log.InfoContext(ctx, "starting allaboutxrp server", "address", address)

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		if err := e.Start(address); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		container.BillingLimiter.Run(gCtx, limiterSweepInterval)
		return nil
	})

	g.Go(func() error {
		reloadCatalogOnHangup(gCtx, container)
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		log.Info("shutting down server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()
		return e.Shutdown(shutdownCtx)
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return otelShutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Error("shutdown error", "error", err)
		os.Exit(1)
	}

	log.Info("server exited properly")
}

func reloadCatalogOnHangup(ctx context.Context, container *di.ApplicationComponents) {
	hup := make(chan os.Signal, 1)
	signal.Notify(hup, syscall.SIGHUP)
	defer signal.Stop(hup)

	for {
		select {
		case <-ctx.Done():
			return
		case <-hup:
			if err := container.Catalog.Reload(); err != nil {
				logger.Logger.Error("catalog reload failed, keeping previous contents", "error", err)
			}
		}
	}
}

// runHealthcheck performs a health check against the local server.
func runHealthcheck() error {
	port := os.Getenv("SERVER_PORT")
	if port == "" {
		port = "9000"
	}

	client := &http.Client{Timeout: 2 * time.Second}
	resp, err := client.Get(fmt.Sprintf("http://127.0.0.1:%s/v1/health", port))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("health endpoint returned status: %d", resp.StatusCode)
	}
	return nil
}
