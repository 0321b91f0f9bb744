package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeConfig(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "config.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad_Defaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "data/ledger.json", cfg.Source.LedgerFile)
	assert.Equal(t, "data/ledger_snapshot.json", cfg.Source.SnapshotFile)
	assert.Equal(t, 10.0, cfg.Analytics.ExpectedReturnPercent)
	assert.Equal(t, 10, cfg.Analytics.ProjectionYears)
	assert.Equal(t, 6.0, cfg.Analytics.EmergencyFundTargetMonths)
	assert.Equal(t, NWITargets{Needs: 50, Wants: 30, Investments: 20}, cfg.Analytics.NWITargets)
	assert.Equal(t, "sqlite", cfg.Database.Driver)
	assert.Equal(t, "data/wealth_sentinel.db", cfg.Database.DSN)
	assert.Equal(t, ":8080", cfg.Server.ListenAddr)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_FileAndEnvOverrides(t *testing.T) {
	path := writeConfig(t, `
log_level: debug
source:
  ledger_file: /var/lib/ledger.yaml
analytics:
  expected_return_percent: 7.5
  projection_years: 20
  nwi_targets: {needs: 60, wants: 20, investments: 20}
database:
  driver: postgres
  dsn: postgres://localhost/wealth
`)
	t.Setenv("PROJECTION_YEARS", "25")
	t.Setenv("LEDGER_API_URL", "https://ledger.example.com")

	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "debug", cfg.LogLevel)
	assert.Equal(t, "/var/lib/ledger.yaml", cfg.Source.LedgerFile)
	assert.Equal(t, "https://ledger.example.com", cfg.Source.BaseURL)
	assert.Equal(t, 7.5, cfg.Analytics.ExpectedReturnPercent)
	assert.Equal(t, 25, cfg.Analytics.ProjectionYears)
	assert.Equal(t, 60.0, cfg.Analytics.NWITargets.Needs)
	assert.Equal(t, "postgres", cfg.Database.Driver)
	assert.NoError(t, cfg.Validate())
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := Load(writeConfig(t, "analytics: [not, a, map"))
	assert.Error(t, err)
}

func TestValidate_Rejects(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
	}{
		{"no source", func(c *Config) { c.Source.LedgerFile = ""; c.Source.BaseURL = "" }},
		{"return below -100", func(c *Config) { c.Analytics.ExpectedReturnPercent = -101 }},
		{"projection too long", func(c *Config) { c.Analytics.ProjectionYears = 51 }},
		{"non-positive emergency target", func(c *Config) { c.Analytics.EmergencyFundTargetMonths = -1 }},
		{"nwi not 100", func(c *Config) { c.Analytics.NWITargets = NWITargets{Needs: 50, Wants: 50, Investments: 10} }},
		{"unknown driver", func(c *Config) { c.Database.Driver = "oracle" }},
		{"postgres without dsn", func(c *Config) { c.Database.Driver = "postgres"; c.Database.DSN = "" }},
		{"telegram without chat", func(c *Config) { c.Telegram.BotToken = "token" }},
		{"smtp without recipients", func(c *Config) { c.Email.SMTPHost = "smtp.example.com" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
			require.NoError(t, err)
			tt.mutate(cfg)
			assert.Error(t, cfg.Validate())
		})
	}
}
