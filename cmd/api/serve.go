package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/spf13/cobra"

	"github.com/uceva/country-service/app"
	"github.com/uceva/country-service/app/api"
	"github.com/uceva/country-service/app/countries"
	"github.com/uceva/country-service/app/database"
	apiDoc "github.com/uceva/country-service/app/doc"
	"github.com/uceva/country-service/internal/deps"
	"github.com/uceva/country-service/internal/logger"
	"github.com/uceva/country-service/internal/metrics"
	"github.com/uceva/country-service/internal/migrator"
	"github.com/uceva/country-service/internal/router"
)

const metricsNamespace = "country_service"

func newServeCmd(opts *rootOptions) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP server",
		RunE: func(cmd *cobra.Command, _ []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			return runServe(ctx, opts.configFile)
		},
	}
}

func runServe(ctx context.Context, configFile string) error {
	cfg, log, err := loadRuntime(configFile)
	if err != nil {
		return err
	}

	db, err := database.New(&cfg.DB)
	if err != nil {
		return err
	}
	sqlDB, err := db.DB()
	if err != nil {
		return err
	}
	defer sqlDB.Close()

	if cfg.AutoMigrate {
		m, err := migrator.New(cfg.DB.URL(), log)
		if err != nil {
			return err
		}
		err = m.Up()
		_ = m.Close()
		if err != nil {
			return err
		}
	}

	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	container := deps.NewContainer(db, log, metrics.New(metricsNamespace))
	srv := &http.Server{
		Addr:              cfg.Addr(),
		Handler:           newEngine(cfg, container, sqlDB),
		ReadHeaderTimeout: 10 * time.Second,
	}

	return runServer(ctx, srv, cfg.ShutdownTimeout, log)
}

// newEngine wires middleware, operational endpoints and the country routes.
func newEngine(cfg *app.Config, container *deps.Container, db api.Pinger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), api.RequestID(), api.RequestLogger(container.Logger), api.CorsMiddleware())

	if container.Metrics != nil {
		r.Use(container.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(container.Metrics.Handler()))
	}
	r.GET("/healthz", api.HealthCheck(db, cfg.Env, serviceVersion))

	countries.InitRepositories(container)
	router.NewMounter(container).
		Public(r).
		Mount(countries.Mount)

	apiDoc.Init(r, apiDoc.Options{Environment: cfg.Env, PublicURL: cfg.PublicURL})

	return r
}

// runServer serves until ctx is cancelled, then drains connections within timeout.
func runServer(ctx context.Context, srv *http.Server, timeout time.Duration, log logger.Logger) error {
	errCh := make(chan error, 1)
	go func() {
		log.Info("starting server", map[string]interface{}{"addr": srv.Addr})
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	log.Info("shutting down server", map[string]interface{}{"timeout": timeout.String()})
	shutdownCtx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	log.Info("server stopped", nil)
	return nil
}
