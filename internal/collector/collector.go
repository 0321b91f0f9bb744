package collector

import (
	"context"
	"fmt"
	"time"

	log "github.com/sirupsen/logrus"

	"WealthSentinel/internal/model"
)

// Collector orchestrates ledger fetching and report computation.
type Collector struct {
	Source   Source
	Settings Settings
}

// NewCollector creates a new Collector.
func NewCollector(source Source, settings Settings) *Collector {
	return &Collector{Source: source, Settings: settings}
}

// Collect fetches the ledger and computes a full report.
func (c *Collector) Collect(ctx context.Context) (*model.Report, error) {
	start := time.Now()
	ledger, err := c.Source.FetchLedger(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch ledger from %s: %w", c.Source.Name(), err)
	}

	report := BuildReport(ledger, c.Settings)
	log.WithFields(log.Fields{
		"source":       c.Source.Name(),
		"transactions": len(ledger.Transactions),
		"positions":    len(ledger.Positions),
		"report_id":    report.ID,
		"elapsed":      time.Since(start).String(),
	}).Info("report computed")
	return report, nil
}
