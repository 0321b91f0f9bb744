package collector

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"WealthSentinel/internal/model"
)

// FileSource reads a ledger exported to a local JSON or YAML file.
type FileSource struct {
	Path string
}

// NewFileSource creates a new FileSource.
func NewFileSource(path string) *FileSource {
	return &FileSource{Path: path}
}

func (f *FileSource) Name() string { return "file" }

func (f *FileSource) FetchLedger(_ context.Context) (*model.Ledger, error) {
	data, err := os.ReadFile(f.Path)
	if err != nil {
		return nil, fmt.Errorf("read ledger: %w", err)
	}

	ledger := &model.Ledger{}
	switch ext := strings.ToLower(filepath.Ext(f.Path)); ext {
	case ".json":
		if err := json.Unmarshal(data, ledger); err != nil {
			return nil, fmt.Errorf("decode ledger: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, ledger); err != nil {
			return nil, fmt.Errorf("decode ledger: %w", err)
		}
	default:
		return nil, fmt.Errorf("unsupported ledger format %q", ext)
	}

	sortTransactions(ledger.Transactions)
	return ledger, nil
}

func sortTransactions(txs []model.Transaction) {
	sort.SliceStable(txs, func(i, j int) bool { return txs[i].Date.Before(txs[j].Date) })
}
