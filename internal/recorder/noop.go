package recorder

import "WealthSentinel/internal/model"

// NoopRecorder is a no-op implementation used when no database is configured.
type NoopRecorder struct{}

func NewNoopRecorder() *NoopRecorder { return &NoopRecorder{} }

func (n *NoopRecorder) RecordReport(_ *model.Report) error             { return nil }
func (n *NoopRecorder) RecordAlert(_ *model.Alert) error               { return nil }
func (n *NoopRecorder) ScoreHistory(_ int) ([]model.ScorePoint, error) { return nil, nil }
func (n *NoopRecorder) Close() error                                   { return nil }
