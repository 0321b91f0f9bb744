package collector

import (
	"context"
	"fmt"
	"os"
	"sync"

	"github.com/goccy/go-json"
	log "github.com/sirupsen/logrus"

	"WealthSentinel/internal/model"
)

// CachedSource wraps a Source and keeps the last good ledger on disk. When
// the wrapped source fails, the snapshot is served instead.
type CachedSource struct {
	Source       Source
	SnapshotPath string

	mu sync.Mutex
}

// NewCachedSource creates a CachedSource.
func NewCachedSource(src Source, snapshotPath string) *CachedSource {
	return &CachedSource{Source: src, SnapshotPath: snapshotPath}
}

func (c *CachedSource) Name() string { return c.Source.Name() + "+snapshot" }

func (c *CachedSource) FetchLedger(ctx context.Context) (*model.Ledger, error) {
	ledger, err := c.Source.FetchLedger(ctx)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err == nil {
		if saveErr := saveSnapshot(c.SnapshotPath, ledger); saveErr != nil {
			log.WithError(saveErr).Warn("save ledger snapshot")
		}
		return ledger, nil
	}

	cached, loadErr := loadSnapshot(c.SnapshotPath)
	if loadErr != nil || cached == nil {
		return nil, err
	}
	log.WithError(err).WithField("snapshot", c.SnapshotPath).Warn("source failed, serving last snapshot")
	return cached, nil
}

// loadSnapshot reads a ledger snapshot. Returns nil if the file doesn't exist.
func loadSnapshot(path string) (*model.Ledger, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}
	var ledger model.Ledger
	if err := json.Unmarshal(data, &ledger); err != nil {
		return nil, fmt.Errorf("decode snapshot: %w", err)
	}
	return &ledger, nil
}

// saveSnapshot writes the ledger to a temp file and renames it into place.
func saveSnapshot(path string, ledger *model.Ledger) error {
	data, err := json.MarshalIndent(ledger, "", "  ")
	if err != nil {
		return err
	}
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return err
	}
	return os.Rename(tmp, path)
}
