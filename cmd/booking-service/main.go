package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/sendbyop/booking-service/internal/client"
	"github.com/sendbyop/booking-service/internal/config"
	"github.com/sendbyop/booking-service/internal/infrastructure/kafka"
	"github.com/sendbyop/booking-service/internal/infrastructure/logger"
	"github.com/sendbyop/booking-service/internal/infrastructure/metrics"
	"github.com/sendbyop/booking-service/internal/infrastructure/migrate"
	"github.com/sendbyop/booking-service/internal/infrastructure/postgres"
	"github.com/sendbyop/booking-service/internal/infrastructure/postgres/repository"
	"github.com/sendbyop/booking-service/internal/scheduler"
	"github.com/sendbyop/booking-service/internal/security/vault"
	"github.com/sendbyop/booking-service/internal/usecase/bankinfo"
	"github.com/sendbyop/booking-service/internal/usecase/booking"
	"github.com/sendbyop/booking-service/internal/usecase/payout"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("failed to load .env")
	}
	// Reading config
	cfg := config.MustLoad()
	setupLogger(cfg)

	// Init database
	db := postgres.MustInitDB(cfg)
	if err := migrate.RunMigrations(db, cfg.BookingDB.MigrationsPath); err != nil {
		log.Fatalf("failed to run migrations: %v", err)
	}

	// Init kafka publisher
	brokers := []string{fmt.Sprintf("%s:%s", cfg.KafkaService.Host, cfg.KafkaService.Port)}
	pub := kafka.NewDefaultKafkaPublisher(brokers, cfg.KafkaService.BookingTopic, cfg.KafkaService.PayoutTopic)
	defer pub.Close()

	// Init bank detail vault
	bankVault, err := vault.New(cfg.Security.EncryptionKey)
	if err != nil {
		log.Fatalf("failed to init encryption vault: %v", err)
	}

	// Init repositories
	bookingRepo := repository.NewDefaultBookingRepository(db)
	payoutRepo := repository.NewDefaultPayoutRepository(db)
	bankInfoRepo := repository.NewDefaultBankInfoRepository(db)
	settingsRepo := repository.NewDefaultSettingsRepository(db)

	// Init payment gateway client
	gateway := client.NewPaymentGatewayClient(fmt.Sprintf("http://%s:%s", cfg.PaymentGateway.Host, cfg.PaymentGateway.Port))

	// Init metrics
	bookingMetrics := metrics.NewBookingMetrics()

	// Init usecases
	bankInfoUC := bankinfo.NewDefaultBankInfoUsecase(bankInfoRepo, bankVault)
	bookingUC := booking.NewDefaultBookingUsecase(bookingRepo, settingsRepo, pub, bookingMetrics)
	bookingUC.Audit = logger.NewPGBookingEventLogger(db)
	payoutUC := payout.NewDefaultPayoutUsecase(bookingRepo, payoutRepo, settingsRepo, bankInfoUC, gateway, pub, bookingMetrics)

	// Background sweeps
	jobs := scheduler.NewBackgroundJobs(
		bookingUC,
		payoutUC,
		mustParseDuration(cfg.Jobs.DeadlineSweepInterval, 10*time.Minute),
		mustParseDuration(cfg.Jobs.PayoutSweepInterval, 24*time.Hour),
	)
	jobs.StartAll(context.Background())

	// Metrics endpoint
	addr := fmt.Sprintf("%s:%s", cfg.MetricsServer.Host, cfg.MetricsServer.Port)
	http.Handle("/metrics", promhttp.Handler())

	log.Printf("booking service started, metrics on %s\n", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.Fatalf("failed to serve: %v\n", err)
	}
}

func mustParseDuration(s string, fallback time.Duration) time.Duration {
	if s == "" {
		return fallback
	}
	d, err := time.ParseDuration(s)
	if err != nil {
		log.Fatalf("invalid duration %q: %v", s, err)
	}
	return d
}

func setupLogger(cfg *config.BookingConfig) {
	level := slog.LevelInfo
	switch cfg.LogConfig.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}

	opts := &slog.HandlerOptions{Level: level}
	var handler slog.Handler
	if cfg.LogConfig.LogFormat == "text" {
		handler = slog.NewTextHandler(os.Stdout, opts)
	} else {
		handler = slog.NewJSONHandler(os.Stdout, opts)
	}
	slog.SetDefault(slog.New(handler))
}
