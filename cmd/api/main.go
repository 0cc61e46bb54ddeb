package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/contrib/otelfiber"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/recover"
	_ "github.com/joho/godotenv/autoload"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/time/rate"

	"formsapi/internal/config"
	"formsapi/internal/database"
	"formsapi/internal/database/migration"
	handlers "formsapi/internal/http/handler"
	"formsapi/internal/http/middleware"
	"formsapi/internal/logging"
	"formsapi/internal/metrics"
	"formsapi/internal/notify"
	"formsapi/internal/otel"
	"formsapi/internal/repository/postgres"
	"formsapi/internal/service"
	"formsapi/internal/storage"
	"formsapi/internal/validation"
)

// @title Forms API
// @version 1.0
// @BasePath /
// @securityDefinitions.basic BasicAuth
func main() {
	// Load configuration from environment variables (.env auto-loaded if present)
	cfg := config.Load()
	loc := logging.LoadLocation(cfg.TimeZone)
	logger := logging.New(os.Stdout, loc)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := otel.Init(ctx, logger)
	if err != nil {
		logger.Fatal().Err(err).Str("event", "tracing_init_failed").Send()
	}
	defer func() {
		sctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = shutdownTracing(sctx)
	}()

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logger.Fatal().Err(err).Str("event", "db_connect_failed").Send()
	}
	defer db.Close()

	if err := migration.EnsureMigrated(ctx, db, logging.Component(logger, "migration"), database.Host(cfg.Database)); err != nil {
		logger.Fatal().Err(err).Str("event", "migration_failed").Send()
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	if err := metrics.RegisterDBStats(reg, db, "forms"); err != nil {
		logger.Fatal().Err(err).Str("event", "metrics_init_failed").Send()
	}
	business, err := metrics.NewBusiness(reg)
	if err != nil {
		logger.Fatal().Err(err).Str("event", "metrics_init_failed").Send()
	}
	promMiddleware, err := middleware.NewPrometheusMiddleware(reg)
	if err != nil {
		logger.Fatal().Err(err).Str("event", "metrics_init_failed").Send()
	}

	// MinIO when configured, otherwise the local media root
	objStore, err := storage.New(cfg.MinIO, cfg.Media)
	if err != nil {
		logger.Fatal().Err(err).Str("event", "storage_init_failed").Send()
	}

	notifier := notify.NewTelegram(cfg.Telegram, nil, logging.Component(logger, "telegram"))
	if !notifier.Enabled() {
		logger.Warn().Str("event", "telegram_disabled").Msg("TELEGRAM_BOT_TOKEN or TELEGRAM_CHAT_ID not set")
	}

	validator := validation.New(validation.Options{RelaxedCodes: !cfg.StrictPositionCodes})
	contactRepo := postgres.NewContactPostgres(db)
	jobRepo := postgres.NewJobApplicationPostgres(db)
	submissions := service.NewSubmissionService(validator, contactRepo, jobRepo, objStore, notifier, business, logger)
	review := service.NewReviewService(contactRepo, jobRepo, objStore, loc)

	app := fiber.New(fiber.Config{
		ErrorHandler:          handlers.ErrorHandler(),
		BodyLimit:             cfg.BodyLimitMB << 20,
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(otelfiber.Middleware())
	// RequestID middleware adds/propagates X-Request-ID and stores it in context
	app.Use(middleware.RequestID())
	app.Use(middleware.Logger(logging.Component(logger, "http")))
	app.Use(promMiddleware.Handler())
	app.Use(middleware.AllowedHosts(cfg.AllowedHosts, cfg.Debug))

	limiter := middleware.NewRateLimiter(middleware.RateLimiterConfig{
		Rate:  rate.Limit(float64(cfg.FormsRatePerMinute) / 60),
		Burst: cfg.FormsRateBurst,
	})

	deps := handlers.Deps{
		DB:           db,
		Submissions:  submissions,
		Review:       review,
		Admin:        cfg.Admin,
		FormsLimiter: limiter,
		Metrics:      adaptor.HTTPHandler(promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg})),
		SiteRoot:     cfg.SiteRoot,
		Location:     loc,
		Logger:       logging.Component(logger, "forms"),
	}
	if cfg.Debug && !cfg.MinIO.Enabled() {
		deps.MediaRoot = cfg.Media.Root
		deps.MediaURL = cfg.Media.URL
	}
	if !cfg.Admin.Enabled() {
		logger.Warn().Str("event", "admin_disabled").Msg("ADMIN_USERNAME or ADMIN_PASSWORD not set")
	}
	handlers.RegisterRoutes(app, deps)

	go func() {
		<-ctx.Done()
		sctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := app.ShutdownWithContext(sctx); err != nil {
			logger.Error().Err(err).Str("event", "shutdown_failed").Send()
		}
	}()

	addr := ":" + cfg.Port
	logger.Info().Str("event", "server_starting").Str("addr", addr).Send()
	if err := app.Listen(addr); err != nil {
		logger.Fatal().Err(err).Str("event", "server_failed").Send()
	}
}
