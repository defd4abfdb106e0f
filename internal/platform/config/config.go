package config

import (
	"log"
	"log/slog"
	"strings"

	"github.com/SscSPs/ledgerbook/internal/utils/accounting"
	"github.com/joho/godotenv"
	"github.com/shopspring/decimal"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment variable read by LoadConfig.
const EnvPrefix = "LEDGERBOOK"

// Config holds application configuration.
type Config struct {
	DBPath       string     // Ledger file; one file per company
	LogLevel     slog.Level // debug, info, warn, error
	LogFormat    string     // text or json
	CurrencyCode string     // ISO 4217 code used to display amounts

	// EnforceSingleOpenPeriod rejects a new period while another is open. When false the rule is
	// advisory and the caller has to confirm.
	EnforceSingleOpenPeriod bool
	ResultClassification    accounting.ClassificationMode
	CapitalAmount           decimal.Decimal // Equity "Capital" line of the balance sheet

	SearchLimit int
	PageSize    int

	// Non-interactive credentials, for scripted use.
	User     string
	Password string
}

// LoadConfig loads configuration from environment variables and .env file if present.
func LoadConfig() (*Config, error) {
	// Attempt to load .env file, ignore error if it doesn't exist
	_ = godotenv.Load()

	v := viper.New()
	v.SetEnvPrefix(EnvPrefix)
	v.SetDefault("DB_PATH", "ledgerbook.db")
	v.SetDefault("LOG_LEVEL", "info")
	v.SetDefault("LOG_FORMAT", "text")
	v.SetDefault("CURRENCY_CODE", "XOF")
	v.SetDefault("ENFORCE_SINGLE_OPEN_PERIOD", true)
	v.SetDefault("RESULT_CLASSIFICATION", string(accounting.ClassifyByPrefix))
	v.SetDefault("CAPITAL_AMOUNT", "0")
	v.SetDefault("SEARCH_LIMIT", 20)
	v.SetDefault("PAGE_SIZE", 50)
	v.SetDefault("USER", "")
	v.SetDefault("PASSWORD", "")

	// Environment variables override the defaults and the .env file.
	v.AutomaticEnv()

	cfg := &Config{}

	cfg.DBPath = strings.TrimSpace(v.GetString("DB_PATH"))
	if cfg.DBPath == "" {
		cfg.DBPath = "ledgerbook.db"
		log.Printf("Warning: %s_DB_PATH is empty. Defaulting to %s\n", EnvPrefix, cfg.DBPath)
	}

	levelStr := v.GetString("LOG_LEVEL")
	if err := cfg.LogLevel.UnmarshalText([]byte(levelStr)); err != nil {
		cfg.LogLevel = slog.LevelInfo
		log.Printf("Warning: Invalid value for %s_LOG_LEVEL ('%s'). Defaulting to info.\n", EnvPrefix, levelStr)
	}

	cfg.LogFormat = strings.ToLower(strings.TrimSpace(v.GetString("LOG_FORMAT")))
	if cfg.LogFormat != "text" && cfg.LogFormat != "json" {
		log.Printf("Warning: Invalid value for %s_LOG_FORMAT ('%s'). Defaulting to text.\n", EnvPrefix, cfg.LogFormat)
		cfg.LogFormat = "text"
	}

	cfg.CurrencyCode = strings.ToUpper(strings.TrimSpace(v.GetString("CURRENCY_CODE")))
	if len(cfg.CurrencyCode) != 3 {
		log.Printf("Warning: Invalid value for %s_CURRENCY_CODE ('%s'). Defaulting to XOF.\n", EnvPrefix, cfg.CurrencyCode)
		cfg.CurrencyCode = "XOF"
	}

	cfg.EnforceSingleOpenPeriod = v.GetBool("ENFORCE_SINGLE_OPEN_PERIOD")

	classStr := v.GetString("RESULT_CLASSIFICATION")
	mode, err := accounting.ParseClassificationMode(classStr)
	if err != nil {
		mode = accounting.ClassifyByPrefix
		log.Printf("Warning: %v. Defaulting to %s.\n", err, mode)
	}
	cfg.ResultClassification = mode

	capitalStr := v.GetString("CAPITAL_AMOUNT")
	capital, err := decimal.NewFromString(strings.TrimSpace(capitalStr))
	if err != nil {
		capital = decimal.Zero
		log.Printf("Warning: Invalid value for %s_CAPITAL_AMOUNT ('%s'). Defaulting to 0.\n", EnvPrefix, capitalStr)
	}
	cfg.CapitalAmount = capital

	cfg.SearchLimit = v.GetInt("SEARCH_LIMIT")
	if cfg.SearchLimit <= 0 {
		log.Printf("Warning: Invalid value for %s_SEARCH_LIMIT (%d). Defaulting to 20.\n", EnvPrefix, cfg.SearchLimit)
		cfg.SearchLimit = 20
	}

	cfg.PageSize = v.GetInt("PAGE_SIZE")
	if cfg.PageSize <= 0 {
		log.Printf("Warning: Invalid value for %s_PAGE_SIZE (%d). Defaulting to 50.\n", EnvPrefix, cfg.PageSize)
		cfg.PageSize = 50
	}

	cfg.User = v.GetString("USER")
	cfg.Password = v.GetString("PASSWORD")

	return cfg, nil
}
