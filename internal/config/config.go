package config

import (
	"fmt"
	"math"
	"os"

	"gopkg.in/yaml.v3"

	"WealthSentinel/internal/calculator"
)

// NWITargets is the desired Needs/Wants/Investments split in percent.
type NWITargets struct {
	Needs       float64 `yaml:"needs"`
	Wants       float64 `yaml:"wants"`
	Investments float64 `yaml:"investments"`
}

// Config holds all application configuration.
type Config struct {
	Source struct {
		LedgerFile   string `yaml:"ledger_file"`
		BaseURL      string `yaml:"base_url"`
		APIKey       string `yaml:"api_key"`
		SnapshotFile string `yaml:"snapshot_file"` // last good ledger fetched from base_url
	} `yaml:"source"`
	Analytics struct {
		ExpectedReturnPercent     float64    `yaml:"expected_return_percent"`
		ProjectionYears           int        `yaml:"projection_years"`
		EmergencyFundTargetMonths float64    `yaml:"emergency_fund_target_months"`
		NWITargets                NWITargets `yaml:"nwi_targets"`
	} `yaml:"analytics"`
	Schedule struct {
		MonthlyCron string `yaml:"monthly_cron"`
		DailyCron   string `yaml:"daily_cron"`
	} `yaml:"schedule"`
	Telegram struct {
		BotToken string `yaml:"bot_token"`
		ChatID   string `yaml:"chat_id"`
	} `yaml:"telegram"`
	Email struct {
		SMTPHost string `yaml:"smtp_host"`
		SMTPPort string `yaml:"smtp_port"`
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		From     string `yaml:"from"`
		To       string `yaml:"to"`
	} `yaml:"email"`
	Database struct {
		Driver string `yaml:"driver"` // sqlite, postgres or none
		DSN    string `yaml:"dsn"`
	} `yaml:"database"`
	Server struct {
		ListenAddr string `yaml:"listen_addr"`
	} `yaml:"server"`
	Proxy    string `yaml:"proxy"`
	LogLevel string `yaml:"log_level"`
}

// Load reads config from a YAML file, then applies environment variable overrides.
func Load(path string) (*Config, error) {
	cfg := &Config{}

	data, err := os.ReadFile(path)
	if err != nil && !os.IsNotExist(err) {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if len(data) > 0 {
		if err := yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parse config: %w", err)
		}
	}

	// Environment variable overrides
	if v := os.Getenv("LOG_LEVEL"); v != "" {
		cfg.LogLevel = v
	}
	if v := os.Getenv("LEDGER_FILE"); v != "" {
		cfg.Source.LedgerFile = v
	}
	if v := os.Getenv("LEDGER_API_URL"); v != "" {
		cfg.Source.BaseURL = v
	}
	if v := os.Getenv("LEDGER_API_KEY"); v != "" {
		cfg.Source.APIKey = v
	}
	if v := os.Getenv("LEDGER_SNAPSHOT_FILE"); v != "" {
		cfg.Source.SnapshotFile = v
	}
	if v := os.Getenv("EXPECTED_RETURN_PERCENT"); v != "" {
		var pct float64
		if _, err := fmt.Sscanf(v, "%f", &pct); err == nil {
			cfg.Analytics.ExpectedReturnPercent = pct
		}
	}
	if v := os.Getenv("PROJECTION_YEARS"); v != "" {
		var years int
		if _, err := fmt.Sscanf(v, "%d", &years); err == nil {
			cfg.Analytics.ProjectionYears = years
		}
	}
	if v := os.Getenv("EMERGENCY_FUND_TARGET_MONTHS"); v != "" {
		var months float64
		if _, err := fmt.Sscanf(v, "%f", &months); err == nil {
			cfg.Analytics.EmergencyFundTargetMonths = months
		}
	}
	if v := os.Getenv("CRON_MONTHLY"); v != "" {
		cfg.Schedule.MonthlyCron = v
	}
	if v := os.Getenv("CRON_DAILY"); v != "" {
		cfg.Schedule.DailyCron = v
	}
	if v := os.Getenv("TELEGRAM_BOT_TOKEN"); v != "" {
		cfg.Telegram.BotToken = v
	}
	if v := os.Getenv("TELEGRAM_CHAT_ID"); v != "" {
		cfg.Telegram.ChatID = v
	}
	if v := os.Getenv("SMTP_HOST"); v != "" {
		cfg.Email.SMTPHost = v
	}
	if v := os.Getenv("SMTP_PORT"); v != "" {
		cfg.Email.SMTPPort = v
	}
	if v := os.Getenv("SMTP_USERNAME"); v != "" {
		cfg.Email.Username = v
	}
	if v := os.Getenv("SMTP_PASSWORD"); v != "" {
		cfg.Email.Password = v
	}
	if v := os.Getenv("EMAIL_FROM"); v != "" {
		cfg.Email.From = v
	}
	if v := os.Getenv("EMAIL_TO"); v != "" {
		cfg.Email.To = v
	}
	if v := os.Getenv("DB_DRIVER"); v != "" {
		cfg.Database.Driver = v
	}
	if v := os.Getenv("DB_DSN"); v != "" {
		cfg.Database.DSN = v
	}
	if v := os.Getenv("LISTEN_ADDR"); v != "" {
		cfg.Server.ListenAddr = v
	}
	if v := os.Getenv("HTTPS_PROXY"); v != "" {
		cfg.Proxy = v
	}

	// Defaults
	if cfg.LogLevel == "" {
		cfg.LogLevel = "info"
	}
	if cfg.Source.LedgerFile == "" {
		cfg.Source.LedgerFile = "data/ledger.json"
	}
	if cfg.Source.SnapshotFile == "" {
		cfg.Source.SnapshotFile = "data/ledger_snapshot.json"
	}
	if cfg.Analytics.ExpectedReturnPercent == 0 {
		cfg.Analytics.ExpectedReturnPercent = 10
	}
	if cfg.Analytics.ProjectionYears == 0 {
		cfg.Analytics.ProjectionYears = 10
	}
	if cfg.Analytics.EmergencyFundTargetMonths == 0 {
		cfg.Analytics.EmergencyFundTargetMonths = 6
	}
	if cfg.Analytics.NWITargets == (NWITargets{}) {
		cfg.Analytics.NWITargets = NWITargets{Needs: 50, Wants: 30, Investments: 20}
	}
	if cfg.Schedule.MonthlyCron == "" {
		cfg.Schedule.MonthlyCron = "0 0 9 1 * *"
	}
	if cfg.Schedule.DailyCron == "" {
		cfg.Schedule.DailyCron = "0 0 21 * * *"
	}
	if cfg.Email.SMTPPort == "" {
		cfg.Email.SMTPPort = "587"
	}
	if cfg.Database.Driver == "" {
		cfg.Database.Driver = "sqlite"
	}
	if cfg.Database.DSN == "" && cfg.Database.Driver == "sqlite" {
		cfg.Database.DSN = "data/wealth_sentinel.db"
	}
	if cfg.Server.ListenAddr == "" {
		cfg.Server.ListenAddr = ":8080"
	}

	return cfg, nil
}

// Validate checks that the configuration is usable.
func (c *Config) Validate() error {
	if c.Source.LedgerFile == "" && c.Source.BaseURL == "" {
		return fmt.Errorf("source.ledger_file or source.base_url is required")
	}
	if c.Analytics.ExpectedReturnPercent < -100 {
		return fmt.Errorf("analytics.expected_return_percent must be >= -100")
	}
	if c.Analytics.ProjectionYears < 1 || c.Analytics.ProjectionYears > calculator.MaxProjectionYears {
		return fmt.Errorf("analytics.projection_years must be between 1 and %d", calculator.MaxProjectionYears)
	}
	if c.Analytics.EmergencyFundTargetMonths <= 0 {
		return fmt.Errorf("analytics.emergency_fund_target_months must be positive")
	}
	t := c.Analytics.NWITargets
	if t.Needs < 0 || t.Wants < 0 || t.Investments < 0 {
		return fmt.Errorf("analytics.nwi_targets must be non-negative")
	}
	if sum := t.Needs + t.Wants + t.Investments; math.Abs(sum-100) > 1e-6 {
		return fmt.Errorf("analytics.nwi_targets must sum to 100, got %.2f", sum)
	}
	switch c.Database.Driver {
	case "sqlite", "postgres", "none":
	default:
		return fmt.Errorf("database.driver %q is not supported", c.Database.Driver)
	}
	if c.Database.Driver == "postgres" && c.Database.DSN == "" {
		return fmt.Errorf("database.dsn is required for postgres")
	}
	if c.Telegram.BotToken != "" && c.Telegram.ChatID == "" {
		return fmt.Errorf("telegram.chat_id is required when telegram.bot_token is set")
	}
	if c.Email.SMTPHost != "" && (c.Email.From == "" || c.Email.To == "") {
		return fmt.Errorf("email.from and email.to are required when email.smtp_host is set")
	}
	return nil
}

// TelegramEnabled reports whether Telegram delivery is configured.
func (c *Config) TelegramEnabled() bool {
	return c.Telegram.BotToken != "" && c.Telegram.ChatID != ""
}

// EmailEnabled reports whether SMTP delivery is configured.
func (c *Config) EmailEnabled() bool {
	return c.Email.SMTPHost != ""
}
