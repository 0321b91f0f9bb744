package recorder

import (
	"path/filepath"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"WealthSentinel/internal/model"
)

func report(id string, at time.Time, score float64) *model.Report {
	return &model.Report{
		ID:          id,
		GeneratedAt: at,
		AsOf:        at,
		NetWorth:    score * 1000,
		Score:       model.FreedomScore{Score: score},
		FIRE:        model.FIREResult{ProgressPercent: score / 2},
		Velocity:    model.ExpenseVelocity{Trend: model.TrendStable},
	}
}

func TestSQLRecorder_SQLite(t *testing.T) {
	r, err := NewSQLRecorder("sqlite", filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer r.Close()

	base := time.Date(2024, 1, 1, 9, 0, 0, 0, time.UTC)
	for i, score := range []float64{40, 55, 70} {
		id := string(rune('a' + i))
		require.NoError(t, r.RecordReport(report(id, base.AddDate(0, i, 0), score)))
	}
	require.NoError(t, r.RecordAlert(&model.Alert{Kind: model.AlertExpensesRising, Message: "up", ReportID: "c"}))

	points, err := r.ScoreHistory(2)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "b", points[0].ReportID)
	assert.Equal(t, "c", points[1].ReportID)
	assert.Equal(t, 70.0, points[1].Score)
	assert.Equal(t, 70000.0, points[1].NetWorth)
	assert.Equal(t, 35.0, points[1].ProgressPercent)
	assert.Equal(t, base.AddDate(0, 2, 0).Unix(), points[1].RecordedAt.Unix())

	var alerts int
	require.NoError(t, r.db.QueryRow("SELECT COUNT(*) FROM alerts").Scan(&alerts))
	assert.Equal(t, 1, alerts)
}

func TestSQLRecorder_DuplicateReport(t *testing.T) {
	r, err := NewSQLRecorder("sqlite", filepath.Join(t.TempDir(), "history.db"))
	require.NoError(t, err)
	defer r.Close()

	rep := report("dup", time.Now(), 50)
	require.NoError(t, r.RecordReport(rep))
	assert.Error(t, r.RecordReport(rep))
}

func TestSQLRecorder_Postgres(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS reports").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_reports_ts").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("(?s)CREATE TABLE IF NOT EXISTS alerts.*BIGSERIAL").WillReturnResult(sqlmock.NewResult(0, 0))
	mock.ExpectExec("CREATE INDEX IF NOT EXISTS idx_alerts_ts").WillReturnResult(sqlmock.NewResult(0, 0))

	r, err := newSQLRecorder(db, dialects["postgres"])
	require.NoError(t, err)

	mock.ExpectExec(regexp.QuoteMeta("VALUES ($1,$2,$3,$4)")).
		WithArgs(sqlmock.AnyArg(), "r1", "NEGATIVE_SAVINGS", "overspent").
		WillReturnResult(sqlmock.NewResult(1, 1))
	require.NoError(t, r.RecordAlert(&model.Alert{Kind: model.AlertNegativeSavings, Message: "overspent", ReportID: "r1"}))

	rows := sqlmock.NewRows([]string{"id", "timestamp", "score", "net_worth", "progress_percent"}).
		AddRow("new", int64(200), 60.0, 1000.0, 10.0).
		AddRow("old", int64(100), 50.0, 900.0, 9.0)
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $1")).WithArgs(5).WillReturnRows(rows)

	points, err := r.ScoreHistory(5)
	require.NoError(t, err)
	require.Len(t, points, 2)
	assert.Equal(t, "old", points[0].ReportID)
	assert.Equal(t, "new", points[1].ReportID)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLRecorder_UnknownDriver(t *testing.T) {
	_, err := NewSQLRecorder("oracle", "")
	assert.ErrorContains(t, err, "unsupported")
}

func TestRebind(t *testing.T) {
	q := "SELECT * FROM t WHERE a = ? AND b = ?"
	assert.Equal(t, q, dialects["sqlite"].rebind(q))
	assert.Equal(t, "SELECT * FROM t WHERE a = $1 AND b = $2", dialects["postgres"].rebind(q))
}

func TestNoopRecorder(t *testing.T) {
	var r Recorder = NewNoopRecorder()
	assert.NoError(t, r.RecordReport(&model.Report{}))
	points, err := r.ScoreHistory(10)
	assert.NoError(t, err)
	assert.Empty(t, points)
}
