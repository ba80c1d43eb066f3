package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/redis/go-redis/v9"

	"github.com/Simply-Coder-start/Medi-Triage/internal/api/router"
	"github.com/Simply-Coder-start/Medi-Triage/internal/appointments"
	appconfig "github.com/Simply-Coder-start/Medi-Triage/internal/config"
	"github.com/Simply-Coder-start/Medi-Triage/internal/events"
	"github.com/Simply-Coder-start/Medi-Triage/internal/identity"
	"github.com/Simply-Coder-start/Medi-Triage/internal/notify"
	"github.com/Simply-Coder-start/Medi-Triage/internal/observability/metrics"
	"github.com/Simply-Coder-start/Medi-Triage/internal/requests"
	"github.com/Simply-Coder-start/Medi-Triage/internal/slots"
	"github.com/Simply-Coder-start/Medi-Triage/internal/store"
	"github.com/Simply-Coder-start/Medi-Triage/internal/triage"
	"github.com/Simply-Coder-start/Medi-Triage/pkg/logging"
)

func main() {
	// Load .env in development; ignored when absent
	_ = godotenv.Load()

	cfg := appconfig.Load()

	logger := logging.New(cfg.LogLevel)
	logger.Info("starting medi-triage API server",
		"env", cfg.Env,
		"port", cfg.Port,
	)
	if cfg.SessionJWTSecret == "" {
		logger.Error("SESSION_JWT_SECRET is required")
		os.Exit(1)
	}

	rdb := redis.NewClient(&redis.Options{
		Addr:     cfg.RedisAddr,
		Password: cfg.RedisPassword,
		DB:       cfg.RedisDB,
	})
	if err := rdb.Ping(context.Background()).Err(); err != nil {
		logger.Error("redis unreachable", "addr", cfg.RedisAddr, "error", err)
		os.Exit(1)
	}
	st := store.New(rdb)

	bus := events.NewBus(0, logger)
	schedMetrics := metrics.NewSchedulingMetrics(nil)

	// Identity and session tokens
	tokens := identity.NewTokenIssuer(cfg.SessionJWTSecret, cfg.SessionTTL)
	identitySvc := identity.NewService(identity.NewRedisRepository(st), tokens, logger)

	// Triage
	autosave := triage.NewAutosaveStore(st)
	triageSvc := triage.NewService(autosave, logger)

	// Scheduling
	slotSvc := slots.NewService(slots.NewRedisRepository(st), logger)
	remote := appointments.NewRemoteClient(cfg.BookingEndpoint, cfg.BookingTimeout, logger)
	apptSvc := appointments.NewService(appointments.NewRedisRepository(st), remote, bus, schedMetrics, logger)
	requestSvc := requests.NewService(requests.NewRedisRepository(st), identitySvc, slotSvc, apptSvc, autosave, bus, schedMetrics, logger)
	requestSvc.SetSlotLength(cfg.SlotDefaultLength)

	// Refresh notifications
	hub := notify.NewHub(bus, logger)
	hubCtx, hubCancel := context.WithCancel(context.Background())
	defer hubCancel()
	go hub.Run(hubCtx)

	r := router.New(&router.Config{
		Logger:              logger,
		TokenParser:         tokens,
		IdentityHandler:     identity.NewHandler(identitySvc, logger),
		TriageHandler:       triage.NewHandler(triageSvc, logger),
		RequestsHandler:     requests.NewHandler(requestSvc, logger),
		SlotsHandler:        slots.NewHandler(slotSvc, logger),
		AppointmentsHandler: appointments.NewHandler(apptSvc, logger),
		NotifyHub:           hub,
		MetricsHandler:      promhttp.Handler(),
		CORSAllowedOrigins:  cfg.CORSAllowedOrigins,
	})

	srv := &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      r,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Info("server listening", "addr", srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Error("server forced to shutdown", "error", err)
		os.Exit(1)
	}

	if err := rdb.Close(); err != nil {
		logger.Warn("redis close", "error", err)
	}
	logger.Info("server stopped")
}
