package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/sehatplus/notification-service/internal/api/router"
	appconfig "github.com/sehatplus/notification-service/internal/config"
	"github.com/sehatplus/notification-service/internal/notify"
	"github.com/sehatplus/notification-service/internal/notify/resendclient"
	"github.com/sehatplus/notification-service/internal/observability/metrics"
	"github.com/sehatplus/notification-service/internal/pdf"
	"github.com/sehatplus/notification-service/internal/providers"
	"github.com/sehatplus/notification-service/pkg/logging"
)

func main() {
	_ = godotenv.Load()

	cfg := appconfig.Load()
	logger := logging.New(cfg.LogLevel, cfg.LogFormat)
	logger.Info("starting notification service",
		"env", cfg.Env,
		"port", cfg.Port,
		"email_provider", cfg.EmailProvider,
	)

	ctx := context.Background()

	// Recipient lookups are optional: without a database the provider and
	// get_user_email paths resolve to no recipients.
	var repo providers.Repository
	var pool *pgxpool.Pool
	if cfg.DatabaseURL != "" {
		var err error
		pool, err = pgxpool.New(ctx, cfg.DatabaseURL)
		if err != nil {
			logger.Error("failed to create pgx pool", "error", err)
			os.Exit(1)
		}
		defer pool.Close()
		repo = providers.NewPostgresRepository(pool)

		if cfg.RedisAddr != "" {
			rdb := redis.NewClient(&redis.Options{
				Addr:     cfg.RedisAddr,
				Password: cfg.RedisPassword,
			})
			defer func() { _ = rdb.Close() }()
			repo = providers.NewCachedRepository(repo, rdb, cfg.CacheTTL, logger)
		}
	} else {
		logger.Warn("DATABASE_URL not set; provider lookups disabled")
	}

	sender := buildSender(cfg, logger)
	delivery := notify.NewFallbackDelivery(sender, cfg.PrimarySender, cfg.FallbackSender, logger)

	registry := prometheus.NewRegistry()
	registry.MustRegister(collectors.NewGoCollector())
	notifyMetrics := metrics.NewNotificationMetrics(registry)

	documents := pdf.NewGenerator(pdf.Branding{
		PlatformName: cfg.PlatformName,
		SupportPhone: cfg.SupportPhone,
	})

	svc := notify.NewService(delivery, repo, documents, notifyMetrics, notify.ServiceConfig{
		AdminEmail:   cfg.AdminEmail,
		Platform:     notify.Platform{Name: cfg.PlatformName, SupportPhone: cfg.SupportPhone},
		ValidityDays: cfg.VoucherValidityDays,
	}, logger)

	handler := notify.NewHandler(svc, repo, logger)

	r := router.New(&router.Config{
		Logger:             logger,
		NotifyHandler:      handler,
		MetricsHandler:     promhttp.HandlerFor(registry, promhttp.HandlerOpts{}),
		CORSAllowedOrigins: strings.Split(cfg.CORSAllowedOrigins, ","),
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 30 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	logger.Info("server stopped")
}

func buildSender(cfg *appconfig.Config, logger *logging.Logger) notify.EmailSender {
	switch cfg.EmailProvider {
	case "resend":
		client, err := resendclient.New(resendclient.Config{
			BaseURL: cfg.ResendBaseURL,
			APIKey:  cfg.ResendAPIKey,
			Timeout: cfg.EmailTimeout,
			Logger:  logger.Logger,
		})
		if err != nil {
			logger.Warn("resend not configured; using stub sender", "error", err)
			return notify.NewStubEmailSender(logger)
		}
		return notify.NewResendSender(client, logger)
	case "sendgrid":
		if sender := notify.NewSendGridSender(cfg.SendGridAPIKey, logger); sender != nil {
			return sender
		}
		logger.Warn("sendgrid not configured; using stub sender")
		return notify.NewStubEmailSender(logger)
	default:
		return notify.NewStubEmailSender(logger)
	}
}
