package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/danielgtaylor/huma/v2"
	"github.com/danielgtaylor/huma/v2/adapters/humaecho"
	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"

	"github.com/sellermate/negotiator/internal/api/handlers"
	"github.com/sellermate/negotiator/internal/api/middleware"
	"github.com/sellermate/negotiator/internal/config"
	"github.com/sellermate/negotiator/internal/engine"
	"github.com/sellermate/negotiator/internal/marketplace"
	"github.com/sellermate/negotiator/internal/notify"
	"github.com/sellermate/negotiator/internal/store"
	"github.com/sellermate/negotiator/pkg/logger"
	score "github.com/sellermate/negotiator/pkg/scorer"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the API server and offer-poll scheduler",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load(cfgFile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	log := logger.New(cfg.Logging.Level, cfg.Logging.Format)

	connectCtx, connectCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer connectCancel()

	st, err := store.NewPostgresStore(connectCtx, cfg.Database.DSN())
	if err != nil {
		return fmt.Errorf("connecting to database: %w", err)
	}
	defer st.Close()

	market := marketplace.NewHTTPClient(
		marketplace.NewStaticTokenProvider(cfg.Marketplace.Token),
		marketplace.WithBaseURL(cfg.Marketplace.BaseURL),
		marketplace.WithRateLimiter(marketplace.NewRateLimiter(
			cfg.Marketplace.RateLimit.PerSecond,
			cfg.Marketplace.RateLimit.Burst,
			cfg.Marketplace.RateLimit.DailyLimit,
		)),
	)

	var notifier notify.Notifier
	if cfg.Notifications.Discord.Enabled {
		notifier = notify.NewDiscordNotifier(cfg.Notifications.Discord.WebhookURL)
		log.Info("discord notifications enabled")
	} else {
		notifier = notify.NewNoOpNotifier(log)
	}

	eng := engine.NewEngine(st, market, notifier,
		engine.WithLogger(log),
		engine.WithUrgencyWeights(score.Weights{
			Age:      cfg.Scoring.Weights.Age,
			Interest: cfg.Scoring.Weights.Interest,
			LikeRate: cfg.Scoring.Weights.LikeRate,
		}),
		engine.WithPollUsers(cfg.Schedule.PollUsers),
		engine.WithPollBatchSize(cfg.Schedule.PollBatchSize),
		engine.WithLockTTL(cfg.Schedule.LockTTL),
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.RequestLog(log))
	e.Use(middleware.Recovery(log))
	e.Use(middleware.Metrics())

	health := handlers.NewHealthHandler(st)
	e.GET("/healthz", health.Healthz)
	e.GET("/readyz", health.Readyz)
	e.GET("/metrics", echo.WrapHandler(promhttp.Handler()))

	api := humaecho.New(e, huma.DefaultConfig("Negotiator API", Version))
	handlers.RegisterOfferRoutes(api, handlers.NewOffersHandler(eng))
	handlers.RegisterRuleRoutes(api, handlers.NewRulesHandler(eng))
	handlers.RegisterStatsRoutes(api, handlers.NewStatsHandler(eng))
	handlers.RegisterHistoryRoutes(api, handlers.NewHistoryHandler(eng))

	var sched *engine.Scheduler
	if len(cfg.Schedule.PollUsers) > 0 {
		sched, err = engine.NewScheduler(eng, cfg.Schedule.PollInterval, log)
		if err != nil {
			return fmt.Errorf("creating scheduler: %w", err)
		}
		sched.Start()
		log.Info("offer polling enabled",
			"users", len(cfg.Schedule.PollUsers),
			"interval", cfg.Schedule.PollInterval,
		)
	} else {
		log.Info("offer polling disabled, no poll users configured")
	}

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	log.Info("starting server", "addr", addr)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := e.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutting down server: %w", err)
	}

	if sched != nil {
		select {
		case <-sched.Stop().Done():
		case <-shutdownCtx.Done():
			log.Warn("scheduler did not stop before shutdown deadline")
		}
	}

	log.Info("server stopped")
	return nil
}
