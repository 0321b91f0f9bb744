package scheduler

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/robfig/cron/v3"
	log "github.com/sirupsen/logrus"
	"golang.org/x/time/rate"

	"WealthSentinel/internal/collector"
	"WealthSentinel/internal/metrics"
	"WealthSentinel/internal/notifier"
	"WealthSentinel/internal/recorder"
)

const (
	historyLimit = 12

	// Chat commands that rebuild a report fetch the whole ledger.
	commandInterval = 10 * time.Second
	commandBurst    = 3
)

// Scheduler manages all cron tasks.
type Scheduler struct {
	Cron      *cron.Cron
	Collector *collector.Collector
	Notifier  notifier.Notifier
	Recorder  recorder.Recorder
	Metrics   *metrics.Metrics
	Ctx       context.Context
	Retries   int

	limiter *rate.Limiter
}

// NewScheduler creates a new Scheduler.
func NewScheduler(ctx context.Context, col *collector.Collector, n notifier.Notifier, rec recorder.Recorder) *Scheduler {
	return &Scheduler{
		Cron:      cron.New(cron.WithSeconds()),
		Collector: col,
		Notifier:  n,
		Recorder:  rec,
		Ctx:       ctx,
		Retries:   3,
		limiter:   rate.NewLimiter(rate.Every(commandInterval), commandBurst),
	}
}

// RegisterAll registers the monthly report and the daily health check.
func (s *Scheduler) RegisterAll(monthlyCron, dailyCron string) error {
	if _, err := s.Cron.AddFunc(monthlyCron, s.monthlyTask); err != nil {
		return fmt.Errorf("register monthly task: %w", err)
	}
	if _, err := s.Cron.AddFunc(dailyCron, s.dailyCheck); err != nil {
		return fmt.Errorf("register daily task: %w", err)
	}
	return nil
}

// Start starts the cron scheduler.
func (s *Scheduler) Start() {
	s.Cron.Start()
	log.Info("scheduler started")
}

// Stop stops the cron scheduler and waits for running jobs.
func (s *Scheduler) Stop() {
	<-s.Cron.Stop().Done()
	log.Info("scheduler stopped")
}

// RunReportNow executes the monthly task immediately (for manual trigger / RUN_ON_START).
func (s *Scheduler) RunReportNow() {
	s.monthlyTask()
}

func (s *Scheduler) monthlyTask() {
	log.Info("running monthly report")
	report, err := s.Collector.Collect(s.Ctx)
	if err != nil {
		log.WithError(err).Error("monthly collect")
		s.trySend("Report failed", fmt.Sprintf("❌ Could not build the monthly report: %v", err))
		return
	}

	s.Metrics.ObserveReport(report)
	s.trySend("Monthly report", notifier.FormatReport(report))

	if err := s.Recorder.RecordReport(report); err != nil {
		log.WithError(err).Error("record report")
	}
}

func (s *Scheduler) dailyCheck() {
	log.Info("running daily check")
	report, err := s.Collector.Collect(s.Ctx)
	if err != nil {
		log.WithError(err).Error("daily collect")
		return
	}

	alerts := collector.Alerts(report, s.Collector.Settings)
	if len(alerts) == 0 {
		log.Debug("daily check: no alerts")
		return
	}

	s.trySend("Health check", notifier.FormatAlerts(alerts))
	for i := range alerts {
		s.Metrics.ObserveAlert(alerts[i])
		if err := s.Recorder.RecordAlert(&alerts[i]); err != nil {
			log.WithError(err).WithField("kind", alerts[i].Kind).Error("record alert")
		}
	}
}

// HandleCommand processes a user command and returns a reply.
func (s *Scheduler) HandleCommand(ctx context.Context, command string) string {
	var cmd string
	if fields := strings.Fields(command); len(fields) > 0 {
		cmd = strings.ToLower(fields[0])
	}
	switch cmd {
	case "/report", "/fire", "/score":
		if !s.limiter.Allow() {
			return "⏳ Too many requests, try again in a few seconds."
		}
	}

	switch cmd {
	case "/report":
		report, err := s.Collector.Collect(ctx)
		if err != nil {
			return fmt.Sprintf("❌ %v", err)
		}
		return notifier.FormatReport(report)
	case "/fire":
		report, err := s.Collector.Collect(ctx)
		if err != nil {
			return fmt.Sprintf("❌ %v", err)
		}
		return notifier.FormatFIRE(report.FIRE)
	case "/score":
		report, err := s.Collector.Collect(ctx)
		if err != nil {
			return fmt.Sprintf("❌ %v", err)
		}
		return notifier.FormatScore(report.Score)
	case "/history":
		points, err := s.Recorder.ScoreHistory(historyLimit)
		if err != nil {
			return fmt.Sprintf("❌ %v", err)
		}
		return notifier.FormatHistory(points)
	default:
		return "Commands:\n• /report\n• /fire\n• /score\n• /history"
	}
}

func (s *Scheduler) trySend(subject, body string) {
	if s.Notifier == nil {
		return
	}
	if err := notifier.SendWithRetry(s.Ctx, s.Notifier, subject, body, s.Retries); err != nil {
		log.WithError(err).Error("send notification")
	}
}
