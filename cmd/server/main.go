// Package main is the entry point for the service. It wires all dependencies
// using samber/do v2, starts the HTTP server, and handles graceful shutdown
// on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	adapthttp "github.com/carolinafmacedo/workflowmanagement/internal/adapters/http"
	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/handlers"
	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/http/middleware"

	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/clients/webhook"
	"github.com/carolinafmacedo/workflowmanagement/internal/adapters/store/sqlite"
	"github.com/carolinafmacedo/workflowmanagement/internal/app"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/config"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/health"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/httpclient"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/logging"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/password"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/telemetry"
	"github.com/carolinafmacedo/workflowmanagement/internal/platform/token"
	"github.com/carolinafmacedo/workflowmanagement/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	serverShutdownTimeout = 15 * time.Second
	otelShutdownTimeout   = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)

	ctx := context.Background()
	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Open the database, migrate and seed roles before serving.
	store, err := do.Invoke[*sqlite.Store](injector)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer func() {
		if err := store.Close(); err != nil {
			logger.Error("database close error", slog.Any("error", err))
		}
	}()

	if cfg.Database.MigrateOnStart {
		if err := store.ApplyMigrations(); err != nil {
			return fmt.Errorf("applying migrations: %w", err)
		}
	}

	directory := do.MustInvoke[*app.DirectoryService](injector)
	if err := directory.SeedRoles(ctx); err != nil {
		return fmt.Errorf("seeding roles: %w", err)
	}

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	// Register health checkers after the graph is wired.
	registry := do.MustInvoke[ports.HealthRegistry](injector)
	registry.Register(store, true)
	if cfg.Notifier.Enabled {
		registry.Register(do.MustInvoke[*httpclient.Client](injector), false)
	}

	// Bind before serving so a taken port fails startup directly.
	if err := server.Listen(); err != nil {
		return err
	}

	// Start server in background.
	serverErr := make(chan error, 1)
	go func() {
		serverErr <- server.Start()
	}()

	// Wait for shutdown signal or server error.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-quit:
		logger.Info("received shutdown signal", slog.String("signal", sig.String()))
	case err := <-serverErr:
		return fmt.Errorf("server failed: %w", err)
	}

	// Graceful shutdown: drain HTTP requests.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), serverShutdownTimeout)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
	}

	// Wait for Start() goroutine to return.
	<-serverErr

	// Flush telemetry.
	otelCtx, otelCancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer otelCancel()

	if err := otel.Shutdown(otelCtx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. All fields are nil
// when telemetry is disabled.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Infrastructure.
	do.Provide(injector, func(_ do.Injector) (*sqlite.Store, error) {
		return sqlite.NewStore(cfg.Database.DSN)
	})

	do.Provide(injector, func(i do.Injector) (ports.Store, error) {
		return do.MustInvoke[*sqlite.Store](i), nil
	})

	do.Provide(injector, func(_ do.Injector) (*password.Hasher, error) {
		return password.NewHasher(cfg.Auth.PasswordPepper), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.TokenService, error) {
		return token.New(cfg.Auth.JWTSecret, cfg.Auth.Issuer, cfg.Auth.AccessTokenTTL)
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Notifier.Client, "notifier", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.Notifier, error) {
		if !cfg.Notifier.Enabled {
			return webhook.Noop{}, nil
		}
		client := do.MustInvoke[*httpclient.Client](i)
		return webhook.NewNotifier(client, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	// Application services.
	do.Provide(injector, func(i do.Injector) (*app.Dispatcher, error) {
		notifier := do.MustInvoke[ports.Notifier](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewDispatcher(notifier, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*app.DirectoryService, error) {
		store := do.MustInvoke[ports.Store](i)
		hasher := do.MustInvoke[*password.Hasher](i)
		return app.NewDirectoryService(store, hasher, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.DirectoryService, error) {
		return do.MustInvoke[*app.DirectoryService](i), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.WorkflowService, error) {
		return app.NewWorkflowService(do.MustInvoke[ports.Store](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ProjectService, error) {
		return app.NewProjectService(do.MustInvoke[ports.Store](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TaskService, error) {
		store := do.MustInvoke[ports.Store](i)
		dispatcher := do.MustInvoke[*app.Dispatcher](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return app.NewTaskService(store, dispatcher, metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.TimeLedgerService, error) {
		return app.NewTimeLedgerService(do.MustInvoke[ports.Store](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.CommentService, error) {
		return app.NewCommentService(do.MustInvoke[ports.Store](i), logger), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.NotificationService, error) {
		return app.NewNotificationService(do.MustInvoke[ports.Store](i), logger), nil
	})

	// HTTP.
	do.Provide(injector, func(i do.Injector) (adapthttp.Handlers, error) {
		dir := do.MustInvoke[ports.DirectoryService](i)
		tasks := do.MustInvoke[ports.TaskService](i)
		hours := do.MustInvoke[ports.TimeLedgerService](i)

		return adapthttp.Handlers{
			Auth:         handlers.NewAuthHandler(dir, do.MustInvoke[ports.TokenService](i)),
			User:         handlers.NewUserHandler(dir, tasks, hours),
			Workflow:     handlers.NewWorkflowHandler(do.MustInvoke[ports.WorkflowService](i)),
			Project:      handlers.NewProjectHandler(do.MustInvoke[ports.ProjectService](i), tasks, hours),
			Task:         handlers.NewTaskHandler(tasks),
			Hours:        handlers.NewHoursHandler(hours),
			Comment:      handlers.NewCommentHandler(do.MustInvoke[ports.CommentService](i)),
			Notification: handlers.NewNotificationHandler(do.MustInvoke[ports.NotificationService](i)),
			Health:       handlers.NewHealthHandler(do.MustInvoke[ports.HealthRegistry](i)),
		}, nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		h := do.MustInvoke[adapthttp.Handlers](i)
		tokens := do.MustInvoke[ports.TokenService](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		guards := adapthttp.Guards{
			Authenticate: middleware.Authenticate(tokens),
			AuthLimit:    middleware.RateLimit(cfg.Auth.LoginRate, cfg.Auth.LoginBurst),
		}

		// Spans and server metrics only when telemetry is on.
		var tracing func(nethttp.Handler) nethttp.Handler
		if cfg.Telemetry.Enabled {
			tracing = middleware.OpenTelemetry(metrics)
		}

		pipeline := middleware.Chain(
			middleware.Recovery(logger),
			middleware.RequestID(),
			middleware.CorrelationID(),
			tracing,
			middleware.Logging(logger),
			middleware.Timeout(cfg.Server.RequestTimeout),
		)

		return adapthttp.NewRouter(h, guards, pipeline), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}
