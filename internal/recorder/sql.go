package recorder

import (
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/goccy/go-json"
	_ "github.com/lib/pq"
	log "github.com/sirupsen/logrus"
	_ "modernc.org/sqlite"

	"WealthSentinel/internal/model"
)

// SQLRecorder persists reports and alerts to SQLite or PostgreSQL.
type SQLRecorder struct {
	db *sql.DB
	d  dialect
	mu sync.Mutex
}

// NewSQLRecorder opens (or creates) the database and runs migrations.
func NewSQLRecorder(driver, dsn string) (*SQLRecorder, error) {
	d, err := lookupDialect(driver)
	if err != nil {
		return nil, err
	}
	db, err := sql.Open(d.name, dsn)
	if err != nil {
		return nil, fmt.Errorf("open %s: %w", driver, err)
	}

	if d.name == "sqlite" {
		db.SetMaxOpenConns(1)
		// WAL mode so dashboards can read while the scheduler writes.
		if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
			db.Close()
			return nil, fmt.Errorf("set WAL mode: %w", err)
		}
	}

	r, err := newSQLRecorder(db, d)
	if err != nil {
		db.Close()
		return nil, err
	}
	log.WithField("driver", driver).Info("recorder opened")
	return r, nil
}

func newSQLRecorder(db *sql.DB, d dialect) (*SQLRecorder, error) {
	r := &SQLRecorder{db: db, d: d}
	if err := r.migrate(); err != nil {
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return r, nil
}

func (r *SQLRecorder) migrate() error {
	f := r.d.float
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS reports (
			id               TEXT PRIMARY KEY,
			timestamp        BIGINT NOT NULL,
			as_of            BIGINT NOT NULL,
			net_worth        ` + f + `,
			monthly_savings  ` + f + `,
			score            ` + f + `,
			savings_rate     ` + f + `,
			emergency_months ` + f + `,
			nwi_adherence    ` + f + `,
			investment_rate  ` + f + `,
			fire_number      ` + f + `,
			progress_percent ` + f + `,
			years_to_fire    INTEGER,
			income_stability ` + f + `,
			expense_trend    TEXT,
			payload          TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_reports_ts ON reports(timestamp)`,

		`CREATE TABLE IF NOT EXISTS alerts (
			id        ` + r.d.serialPK + `,
			timestamp BIGINT NOT NULL,
			report_id TEXT,
			kind      TEXT NOT NULL,
			message   TEXT
		)`,
		`CREATE INDEX IF NOT EXISTS idx_alerts_ts ON alerts(timestamp)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", firstLine(s), err)
		}
	}
	return nil
}

func firstLine(s string) string {
	if i := strings.IndexByte(s, '\n'); i >= 0 {
		return s[:i]
	}
	return s
}

func (r *SQLRecorder) RecordReport(rep *model.Report) error {
	payload, err := json.Marshal(rep)
	if err != nil {
		return fmt.Errorf("encode report: %w", err)
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	_, err = r.db.Exec(r.d.rebind(`INSERT INTO reports
		(id, timestamp, as_of, net_worth, monthly_savings, score,
		 savings_rate, emergency_months, nwi_adherence, investment_rate,
		 fire_number, progress_percent, years_to_fire,
		 income_stability, expense_trend, payload)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`),
		rep.ID, rep.GeneratedAt.Unix(), rep.AsOf.Unix(), rep.NetWorth, rep.MonthlySavings, rep.Score.Score,
		rep.ScoreInputs.SavingsRate, rep.ScoreInputs.EmergencyFundMonths,
		rep.ScoreInputs.NWIAdherence, rep.ScoreInputs.InvestmentRate,
		rep.FIRE.FIRENumber, rep.FIRE.ProgressPercent, rep.FIRE.YearsToFIRE,
		rep.Income.IncomeStability, string(rep.Velocity.Trend), string(payload),
	)
	if err != nil {
		return fmt.Errorf("insert report: %w", err)
	}
	return nil
}

func (r *SQLRecorder) RecordAlert(a *model.Alert) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	_, err := r.db.Exec(r.d.rebind(`INSERT INTO alerts
		(timestamp, report_id, kind, message)
		VALUES (?,?,?,?)`),
		time.Now().Unix(), a.ReportID, string(a.Kind), a.Message,
	)
	if err != nil {
		return fmt.Errorf("insert alert: %w", err)
	}
	return nil
}

func (r *SQLRecorder) ScoreHistory(limit int) ([]model.ScorePoint, error) {
	if limit <= 0 {
		return nil, nil
	}
	rows, err := r.db.Query(r.d.rebind(`SELECT id, timestamp, score, net_worth, progress_percent
		FROM reports ORDER BY timestamp DESC LIMIT ?`), limit)
	if err != nil {
		return nil, fmt.Errorf("query history: %w", err)
	}
	defer rows.Close()

	var points []model.ScorePoint
	for rows.Next() {
		var (
			p  model.ScorePoint
			ts int64
		)
		if err := rows.Scan(&p.ReportID, &ts, &p.Score, &p.NetWorth, &p.ProgressPercent); err != nil {
			return nil, fmt.Errorf("scan history: %w", err)
		}
		p.RecordedAt = time.Unix(ts, 0)
		points = append(points, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read history: %w", err)
	}

	for i, j := 0, len(points)-1; i < j; i, j = i+1, j-1 {
		points[i], points[j] = points[j], points[i]
	}
	return points, nil
}

func (r *SQLRecorder) Close() error {
	log.Info("closing recorder")
	return r.db.Close()
}
