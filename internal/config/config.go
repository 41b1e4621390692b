package config

import (
	"fmt"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"
)

type Config struct {
	// HTTP Server
	Port string

	// Dataset source selection
	DataSource string

	// CSV source (also the fallback for sqlite)
	CSVPath string

	// SQLite source
	SQLiteDBPath string

	// Google Sheet source
	GoogleSpreadsheetID string
	GoogleSheetRange    string

	// Map image resolution
	ImageTimeout   time.Duration
	ImageCacheSize int
	ImageCacheTTL  time.Duration

	// Initial year selection; clamped to the dataset at startup
	DefaultLeftYear  int
	DefaultRightYear int

	// Default theme name
	DefaultTheme string

	// AMQP event publishing (optional; disabled when URL is empty)
	AMQPURL      string
	AMQPExchange string
	AMQPQueue    string
}

func Load() *Config {
	cfg := &Config{
		Port:       getEnv("PORT", "8050"),
		DataSource: getEnv("DATA_SOURCE", "csv"),

		CSVPath:      getEnv("CSV_PATH", "./data/main_data_updated.csv"),
		SQLiteDBPath: getEnv("SQLITE_DB_PATH", "./data/drought_data.db"),

		GoogleSpreadsheetID: getEnv("GOOGLE_SPREADSHEET_ID", ""),
		GoogleSheetRange:    getEnv("GOOGLE_SHEET_RANGE", "drought_data!A:H"),

		ImageTimeout:   getEnvDuration("IMAGE_TIMEOUT", 10*time.Second),
		ImageCacheSize: getEnvInt("IMAGE_CACHE_SIZE", 100),
		ImageCacheTTL:  getEnvDuration("IMAGE_CACHE_TTL", 30*time.Minute),

		DefaultLeftYear:  getEnvInt("DEFAULT_LEFT_YEAR", 1984),
		DefaultRightYear: getEnvInt("DEFAULT_RIGHT_YEAR", 1981),

		DefaultTheme: getEnv("DEFAULT_THEME", "default"),

		AMQPURL:      getEnv("AMQP_URL", ""),
		AMQPExchange: getEnv("AMQP_EXCHANGE", "droughtwatch"),
		AMQPQueue:    getEnv("AMQP_QUEUE", "dashboard_events"),
	}

	return cfg
}

// Validate validates the configuration and returns an error if invalid
func (c *Config) Validate() error {
	var errors []string

	// Validate port
	if port, err := strconv.Atoi(c.Port); err != nil {
		errors = append(errors, fmt.Sprintf("invalid port '%s': must be a number", c.Port))
	} else if port < 1 || port > 65535 {
		errors = append(errors, fmt.Sprintf("invalid port %d: must be between 1 and 65535", port))
	}

	// Validate data source
	validSources := []string{"csv", "sqlite", "sheet"}
	isValidSource := false
	for _, source := range validSources {
		if c.DataSource == source {
			isValidSource = true
			break
		}
	}
	if !isValidSource {
		errors = append(errors, fmt.Sprintf("invalid data source '%s': must be one of %v", c.DataSource, validSources))
	}

	// CSV path is always required: it is both the csv source and the
	// fallback when the sqlite source fails to open.
	if c.CSVPath == "" {
		errors = append(errors, "CSV path cannot be empty")
	}

	// Validate SQLite configuration if source is sqlite
	if c.DataSource == "sqlite" {
		if c.SQLiteDBPath == "" {
			errors = append(errors, "SQLite database path cannot be empty when using sqlite source")
		} else {
			dir := filepath.Dir(c.SQLiteDBPath)
			if dir != "." && dir != "" {
				if _, err := os.Stat(dir); os.IsNotExist(err) {
					if err := os.MkdirAll(dir, 0755); err != nil {
						errors = append(errors, fmt.Sprintf("cannot create SQLite database directory '%s': %v", dir, err))
					}
				}
			}
		}
	}

	// Validate Google Sheet configuration if source is sheet
	if c.DataSource == "sheet" {
		if c.GoogleSpreadsheetID == "" {
			errors = append(errors, "Google Spreadsheet ID is required when using sheet source")
		}
		if c.GoogleSheetRange == "" {
			errors = append(errors, "Google Sheet range is required when using sheet source")
		}
	}

	// Validate image resolution tuning
	if c.ImageTimeout < time.Second {
		errors = append(errors, fmt.Sprintf("invalid image timeout %v: must be at least 1 second", c.ImageTimeout))
	} else if c.ImageTimeout > time.Minute {
		errors = append(errors, fmt.Sprintf("invalid image timeout %v: must be at most 1 minute", c.ImageTimeout))
	}
	if c.ImageCacheSize < 1 {
		errors = append(errors, fmt.Sprintf("invalid image cache size %d: must be at least 1", c.ImageCacheSize))
	}
	if c.ImageCacheTTL < time.Minute {
		errors = append(errors, fmt.Sprintf("invalid image cache TTL %v: must be at least 1 minute", c.ImageCacheTTL))
	}

	// Validate AMQP URL if provided
	if c.AMQPURL != "" {
		if parsedURL, err := url.Parse(c.AMQPURL); err != nil {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL '%s': %v", c.AMQPURL, err))
		} else if parsedURL.Scheme != "amqp" && parsedURL.Scheme != "amqps" {
			errors = append(errors, fmt.Sprintf("invalid AMQP URL scheme '%s': must be 'amqp' or 'amqps'", parsedURL.Scheme))
		}
		if c.AMQPExchange == "" {
			errors = append(errors, "AMQP exchange name cannot be empty when AMQP URL is provided")
		}
		if c.AMQPQueue == "" {
			errors = append(errors, "AMQP queue name cannot be empty when AMQP URL is provided")
		}
	}

	// Return combined errors
	if len(errors) > 0 {
		return fmt.Errorf("configuration validation failed:\n- %s", strings.Join(errors, "\n- "))
	}

	return nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if i, err := strconv.Atoi(value); err == nil {
			return i
		}
	}
	return defaultValue
}

func getEnvDuration(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
