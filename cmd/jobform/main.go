package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5/middleware"

	"github.com/dmitrymomot/jobform/controller"
	"github.com/dmitrymomot/jobform/handler"
	"github.com/dmitrymomot/jobform/pkg/clientip"
	"github.com/dmitrymomot/jobform/pkg/config"
	"github.com/dmitrymomot/jobform/pkg/environment"
	"github.com/dmitrymomot/jobform/pkg/httpserver"
	"github.com/dmitrymomot/jobform/pkg/logger"
	"github.com/dmitrymomot/jobform/pkg/ratelimiter"
	"github.com/dmitrymomot/jobform/pkg/requestid"
	"github.com/dmitrymomot/jobform/view"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()
	if err != nil {
		slog.Error("jobform stopped", logger.Error(err))
		os.Exit(1)
	}
}

func run(ctx context.Context) error {
	var cfg Config
	if err := config.Load(&cfg); err != nil {
		return err
	}

	log := logger.New(
		logger.WithEnvironment(cfg.AppEnv, cfg.AppName),
		logger.WithLevelName(cfg.LogLevel),
		logger.WithContextExtractors(
			requestid.LoggerExtractor(),
			clientip.LoggerExtractor(),
		),
	)
	logger.SetAsDefault(log)

	errorHandler := handler.NewErrorHandler(log, view.ErrorHandlerConfig())

	var appOpts []controller.ApplicationOption
	if cfg.SubmitLimit.Enabled() {
		store := ratelimiter.NewMemoryStore()
		defer store.Close()

		limiter, err := ratelimiter.New(store, cfg.SubmitLimit)
		if err != nil {
			return err
		}
		appOpts = append(appOpts, controller.WithSubmitMiddlewares(
			ratelimiter.Middleware(limiter, byClientIP,
				ratelimiter.WithLimitHandler(controller.RateLimited(errorHandler)),
			),
		))
	}

	app := controller.NewApplicationController(cfg.Title, controller.DefaultViews(), errorHandler, log, appOpts...)

	router := controller.Router(controller.RouterOptions{
		Application: app,
		Middlewares: []func(http.Handler) http.Handler{
			requestid.Middleware,
			clientip.Middleware(cfg.TrustedIPHeaders...),
			environment.Middleware(environment.Parse(cfg.AppEnv)),
			controller.RequestLogger(log, "/health"),
			middleware.Recoverer,
			middleware.RequestSize(cfg.MaxBodySize),
		},
	})

	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
	return srv.Run(ctx, router)
}

func byClientIP(r *http.Request) string {
	return clientip.FromContext(r.Context())
}
