package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	log "github.com/sirupsen/logrus"

	"WealthSentinel/internal/api"
	"WealthSentinel/internal/collector"
	"WealthSentinel/internal/config"
	"WealthSentinel/internal/metrics"
	"WealthSentinel/internal/model"
	"WealthSentinel/internal/notifier"
	"WealthSentinel/internal/recorder"
	"WealthSentinel/internal/scheduler"
)

func main() {
	log.SetFormatter(&log.JSONFormatter{})
	log.Info("WealthSentinel starting...")

	// Load config
	cfgPath := "configs/config.yaml"
	if v := os.Getenv("CONFIG_PATH"); v != "" {
		cfgPath = v
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		log.WithError(err).Fatal("load config")
	}
	if err := cfg.Validate(); err != nil {
		log.WithError(err).Fatal("config validation")
	}
	if level, err := log.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.WithField("log_level", cfg.LogLevel).Warn("unknown log level, using info")
	}

	// Init ledger source
	var src collector.Source
	if cfg.Source.BaseURL != "" {
		src = collector.NewCachedSource(
			collector.NewAPISource(cfg.Source.BaseURL, cfg.Source.APIKey, cfg.Proxy),
			cfg.Source.SnapshotFile,
		)
	} else {
		src = collector.NewFileSource(cfg.Source.LedgerFile)
	}
	log.WithField("source", src.Name()).Info("ledger source ready")

	col := collector.NewCollector(src, collector.Settings{
		ExpectedReturnPercent:     cfg.Analytics.ExpectedReturnPercent,
		ProjectionYears:           cfg.Analytics.ProjectionYears,
		EmergencyFundTargetMonths: cfg.Analytics.EmergencyFundTargetMonths,
		NWITargets: map[model.Bucket]float64{
			model.BucketNeeds:       cfg.Analytics.NWITargets.Needs,
			model.BucketWants:       cfg.Analytics.NWITargets.Wants,
			model.BucketInvestments: cfg.Analytics.NWITargets.Investments,
		},
	})

	// Init recorder
	var rec recorder.Recorder = recorder.NewNoopRecorder()
	if cfg.Database.Driver != "none" {
		sr, err := recorder.NewSQLRecorder(cfg.Database.Driver, cfg.Database.DSN)
		if err != nil {
			log.WithError(err).Warn("init recorder failed, using noop")
		} else {
			rec = sr
		}
	}
	defer rec.Close()

	// Init notifiers
	var (
		notifiers notifier.Multi
		tn        *notifier.TelegramNotifier
	)
	if cfg.TelegramEnabled() {
		tn = notifier.NewTelegramNotifier(cfg.Telegram.BotToken, cfg.Telegram.ChatID, cfg.Proxy)
		notifiers = append(notifiers, tn)
	}
	if cfg.EmailEnabled() {
		notifiers = append(notifiers, notifier.NewEmailNotifier(
			cfg.Email.SMTPHost, cfg.Email.SMTPPort, cfg.Email.Username, cfg.Email.Password, cfg.Email.From, cfg.Email.To))
	}
	var n notifier.Notifier
	if len(notifiers) > 0 {
		n = notifiers
	} else {
		log.Warn("no notifier configured, reports are only recorded")
	}

	// Context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Init scheduler
	m := metrics.New()
	sched := scheduler.NewScheduler(ctx, col, n, rec)
	sched.Metrics = m
	if err := sched.RegisterAll(cfg.Schedule.MonthlyCron, cfg.Schedule.DailyCron); err != nil {
		log.WithError(err).Fatal("register cron tasks")
	}
	sched.Start()

	// Start Telegram polling
	if tn != nil {
		go tn.StartPolling(ctx, sched.HandleCommand)
		log.Info("telegram polling started")
	}

	// Start API server
	srv := &http.Server{
		Addr:              cfg.Server.ListenAddr,
		Handler:           api.NewServer(col, rec, m).Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.WithField("addr", srv.Addr).Info("api listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("api server")
		}
	}()

	// Optional: run immediately on start
	if os.Getenv("RUN_ON_START") == "true" {
		log.Info("RUN_ON_START enabled, executing monthly report now")
		go sched.RunReportNow()
	}

	log.Info("WealthSentinel is running. Press Ctrl+C to stop.")

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh

	log.Info("shutdown signal received, stopping...")
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Warn("api shutdown")
	}
	cancel()
	sched.Stop()
	log.Info("WealthSentinel stopped")
}
