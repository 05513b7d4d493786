package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"

	"reinsure/internal/app"
	"reinsure/internal/config"
	"reinsure/internal/database"
	"reinsure/internal/domain/feed"
	"reinsure/internal/jobs"
	"reinsure/internal/notification"
	"reinsure/internal/pkg/jwt"
	"reinsure/internal/pkg/logging"
	"reinsure/internal/pkg/metrics"
	"reinsure/internal/ratelimit"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := logging.Setup(cfg.LogLevel)
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	if cfg.SentryDSN != "" {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:              cfg.SentryDSN,
			Environment:      cfg.AppEnv,
			AttachStacktrace: true,
		}); err != nil {
			logger.Warn("sentry init failed", "error", err)
		} else {
			defer sentry.Flush(2 * time.Second)
		}
	}

	db, err := database.Connect(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	if err := database.Migrate(db, app.Models()...); err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	cron := jobs.NewCronManager(logger)
	var limitStore ratelimit.Store
	if cfg.RedisURL != "" {
		client, err := ratelimit.NewRedisClient(ctx, cfg.RedisURL)
		if err != nil {
			return err
		}
		defer client.Close()
		limitStore = ratelimit.NewRedisStore(client)
		logger.Info("rate limits shared through redis")
	} else {
		memory := ratelimit.NewMemoryStore()
		if err := cron.AddSweep("ratelimit", "@every 5m", memory); err != nil {
			return err
		}
		limitStore = memory
	}

	dispatcher := notification.NewDispatcher(mailSender(cfg), notification.DispatcherConfig{
		From:    cfg.SMTP.Sender(),
		To:      cfg.CompanyEmail,
		Timeout: cfg.NotifyTimeout,
	}, m, logger)

	hub := feed.NewHub(logger)

	router, err := app.NewRouter(app.Deps{
		DB:             db,
		JWT:            jwt.New(cfg.JWTSecret, cfg.JWTExpiresIn),
		LimitStore:     limitStore,
		Notifier:       dispatcher,
		Feed:           hub,
		Metrics:        m,
		Gatherer:       reg,
		Logger:         logger,
		CORSOrigin:     cfg.CORSOrigin,
		TrustedProxies: cfg.TrustedProxies,
	})
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	cron.Start()

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening", "port", cfg.Port, "env", cfg.AppEnv)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	hub.Close()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
	}
	cron.Stop(shutdownCtx)
	if err := dispatcher.Wait(shutdownCtx); err != nil {
		logger.Warn("pending notifications abandoned", "error", err)
	}

	logger.Info("server stopped")
	return nil
}

// mailSender prefers SMTP, then SendGrid. Nil disables notifications.
func mailSender(cfg *config.Config) notification.Sender {
	switch {
	case cfg.SMTP.Configured():
		return notification.NewSMTPSender(cfg.SMTP.Host, cfg.SMTP.Port, cfg.SMTP.User, cfg.SMTP.Pass)
	case cfg.SendGridAPIKey != "":
		return notification.NewSendGridSender(cfg.SendGridAPIKey, "Reinsure Website")
	default:
		return nil
	}
}
