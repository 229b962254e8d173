package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"pickup/cmd"
	"pickup/internal/adapters/out/postgres/migrations"
	"pickup/internal/pkg/logger"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func main() {
	if err := run(); err != nil {
		log.Fatalf("pickup: %v", err)
	}
}

// run owns every deferred cleanup, so main exits only after they ran.
func run() error {
	configs, err := cmd.LoadConfig()
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	appLogger := logger.New(logger.Options{
		ServiceName: "pickup",
		Level:       logger.ParseLevel(configs.LogLevel),
		Format:      configs.LogFormat,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	gormDB, err := openDatabase(ctx, configs)
	if err != nil {
		appLogger.Error(ctx, "database unavailable", err)
		return err
	}

	app, err := cmd.NewCompositionRoot(configs, gormDB, appLogger)
	if err != nil {
		appLogger.Error(ctx, "invalid configuration", err)
		return err
	}

	jobManager := app.CreateJobManager()
	if err = jobManager.StartAll(); err != nil {
		appLogger.Error(ctx, "jobs did not start", err)
		return err
	}
	defer jobManager.StopAll()

	return startWebServer(ctx, app, configs, appLogger)
}

func openDatabase(ctx context.Context, configs cmd.Config) (*gorm.DB, error) {
	gormDB, err := gorm.Open(postgres.Open(configs.DSN()), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Warn),
	})
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}

	sqlDB, err := gormDB.DB()
	if err != nil {
		return nil, fmt.Errorf("getting sql.DB: %w", err)
	}
	if err = sqlDB.PingContext(ctx); err != nil {
		return nil, fmt.Errorf("pinging postgres: %w", err)
	}
	if err = migrations.Up(ctx, sqlDB); err != nil {
		return nil, fmt.Errorf("migrating: %w", err)
	}
	return gormDB, nil
}

func startWebServer(ctx context.Context, app *cmd.CompositionRoot, configs cmd.Config, appLogger *logger.Logger) error {
	e := echo.New()
	e.HideBanner = true
	if appLogger.Zerolog().GetLevel() <= zerolog.DebugLevel {
		e.Logger.SetLevel(log.DEBUG)
	} else {
		e.Logger.SetLevel(log.WARN)
	}

	app.CreateServer().Register(e)
	e.GET("/metrics", echo.WrapHandler(promhttp.HandlerFor(app.Registry(), promhttp.HandlerOpts{})))

	serveErr := make(chan error, 1)
	go func() {
		if err := e.Start(fmt.Sprintf("0.0.0.0:%s", configs.HTTPPort)); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
	}()

	select {
	case err := <-serveErr:
		appLogger.Error(ctx, "http server stopped", err)
		return fmt.Errorf("serving http: %w", err)
	case <-ctx.Done():
	}
	appLogger.Info(context.Background(), "shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), configs.ShutdownTimeout)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down http server: %w", err)
	}
	return nil
}
