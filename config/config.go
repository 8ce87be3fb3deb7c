// Package config reads the bms configuration from the environment.
//
// Values may also come from a .env file in the working directory; variables
// already set in the environment take precedence.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/joho/godotenv"
)

// Vault kinds.
const (
	VaultSimulated = "simulated"
	VaultHTTP      = "http"
	VaultMongo     = "mongo"
)

// Config represents the full application configuration surface.
type Config struct {
	DataDir  string // BMS_DATA_DIR
	LogLevel string // BMS_LOG_LEVEL
	Env      string // BMS_ENV
	Vault    VaultConfig
	Sheets   SheetsConfig
	AI       AIConfig
}

// VaultConfig selects where backups are pushed.
type VaultConfig struct {
	Kind     string // BMS_VAULT
	URL      string // BMS_VAULT_URL
	MongoURI string // MONGODB_URI
	MongoDB  string // MONGODB_DB_NAME
}

// SheetsConfig contains configuration required to publish reports to Google Sheets.
type SheetsConfig struct {
	CredentialsPath string
	SpreadsheetID   string
}

// AIConfig holds settings of the generative text service.
type AIConfig struct {
	APIKey string
	Model  string
}

// Production reports whether logs should be machine readable.
func (c *Config) Production() bool { return c.Env == "production" }

// Load reads environment variables (optionally from the provided file) and
// materializes a Config instance.
func Load(envFile string) (*Config, error) {
	if envFile != "" {
		if err := godotenv.Load(envFile); err != nil && !errors.Is(err, os.ErrNotExist) {
			return nil, fmt.Errorf("failed loading env file %s: %w", envFile, err)
		}
	} else {
		// a missing .env is fine, configuration then comes from the environment
		_ = godotenv.Load()
	}

	cfg := &Config{
		DataDir:  getenvWithDefault("BMS_DATA_DIR", defaultDataDir()),
		LogLevel: getenvWithDefault("BMS_LOG_LEVEL", "warn"),
		Env:      getenvWithDefault("BMS_ENV", "development"),
		Vault: VaultConfig{
			Kind:     getenvWithDefault("BMS_VAULT", VaultSimulated),
			URL:      os.Getenv("BMS_VAULT_URL"),
			MongoURI: os.Getenv("MONGODB_URI"),
			MongoDB:  getenvWithDefault("MONGODB_DB_NAME", "biashara"),
		},
		Sheets: SheetsConfig{
			CredentialsPath: os.Getenv("GOOGLE_SHEETS_CREDENTIALS_PATH"),
			SpreadsheetID:   os.Getenv("GOOGLE_SHEET_ID"),
		},
		AI: AIConfig{
			APIKey: getenvWithDefault("GEMINI_API_KEY", os.Getenv("GOOGLE_API_KEY")),
			Model:  getenvWithDefault("BMS_MODEL", "gemini-2.5-flash"),
		},
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate ensures that the configuration is consistent. Optional services
// (sheets, AI) are only checked when they are used.
func (c *Config) Validate() error {
	if c == nil {
		return errors.New("config is nil")
	}
	var errs []error
	if c.DataDir == "" {
		errs = append(errs, errors.New("BMS_DATA_DIR must not be empty"))
	}
	switch strings.ToLower(c.LogLevel) {
	case "debug", "info", "warn", "error":
	default:
		errs = append(errs, fmt.Errorf("BMS_LOG_LEVEL must be debug, info, warn or error, got %q", c.LogLevel))
	}
	switch c.Vault.Kind {
	case VaultSimulated:
	case VaultHTTP:
		if c.Vault.URL == "" {
			errs = append(errs, errors.New("BMS_VAULT_URL must be provided for the http vault"))
		}
	case VaultMongo:
		if c.Vault.MongoURI == "" {
			errs = append(errs, errors.New("MONGODB_URI must be provided for the mongo vault"))
		}
	default:
		errs = append(errs, fmt.Errorf("BMS_VAULT must be simulated, http or mongo, got %q", c.Vault.Kind))
	}
	return errors.Join(errs...)
}

// ValidateSheets checks the settings needed to publish to Google Sheets.
func (c *Config) ValidateSheets() error {
	switch {
	case c.Sheets.CredentialsPath == "":
		return errors.New("GOOGLE_SHEETS_CREDENTIALS_PATH must be provided")
	case c.Sheets.SpreadsheetID == "":
		return errors.New("GOOGLE_SHEET_ID must be provided")
	}
	return nil
}

// defaultDataDir is ".biashara" in the user home directory, or in the working directory without one.
func defaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".biashara"
	}
	return filepath.Join(home, ".biashara")
}

func getenvWithDefault(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}
