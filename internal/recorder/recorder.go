package recorder

import "WealthSentinel/internal/model"

// Recorder persists report history for trend analysis.
type Recorder interface {
	RecordReport(r *model.Report) error
	RecordAlert(a *model.Alert) error
	// ScoreHistory returns up to limit most recent reports, oldest first.
	ScoreHistory(limit int) ([]model.ScorePoint, error)
	Close() error
}
