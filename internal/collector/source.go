package collector

import (
	"context"

	"WealthSentinel/internal/model"
)

// Source defines the interface for loading a household ledger.
type Source interface {
	FetchLedger(ctx context.Context) (*model.Ledger, error)
	Name() string
}

// MockSource returns a fixed ledger for development and testing.
type MockSource struct {
	Ledger *model.Ledger
	Err    error
}

func (m *MockSource) Name() string { return "mock" }

func (m *MockSource) FetchLedger(_ context.Context) (*model.Ledger, error) {
	if m.Err != nil {
		return nil, m.Err
	}
	if m.Ledger == nil {
		return &model.Ledger{}, nil
	}
	cp := *m.Ledger
	return &cp, nil
}
