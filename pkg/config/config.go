// Package config provides configuration management for the reservation sync
// job. It loads configuration from environment variables and .env files.
package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
)

// Config represents the application configuration.
type Config struct {
	Dashboard DashboardConfig
	Sheets    SheetsConfig
	Slack     SlackConfig
	Headless  bool
	Debug     bool
}

// DashboardConfig represents the booking dashboard settings.
type DashboardConfig struct {
	TargetURL     string
	LoginID       string
	LoginPassword string
}

// SheetsConfig represents the Google Sheets store settings.
type SheetsConfig struct {
	SpreadsheetTitle string
	WorksheetName    string
	CredentialsFile  string
	PriceTablePath   string
}

// SlackConfig represents the notification settings.
type SlackConfig struct {
	WebhookURL     string
	SheetURL       string
	NotifyEveryone bool
}

// Load loads configuration from environment variables.
// It automatically loads a .env file from the current directory if available.
// You can optionally specify a custom .env file path.
func Load(envPath ...string) (*Config, error) {
	if len(envPath) > 0 && envPath[0] != "" {
		if err := godotenv.Load(envPath[0]); err != nil {
			return nil, fmt.Errorf("failed to load .env file: %w", err)
		}
	} else {
		// Try to load .env from current directory (ignore error if not found)
		_ = godotenv.Load()
	}

	config := &Config{
		Dashboard: DashboardConfig{
			TargetURL:     getEnvOrDefault("TARGET_URL", "https://guide.ktourstory.com/"),
			LoginID:       os.Getenv("LOGIN_ID"),
			LoginPassword: os.Getenv("LOGIN_PASSWORD"),
		},
		Sheets: SheetsConfig{
			SpreadsheetTitle: getEnvOrDefault("GOOGLE_SHEET_TITLE", "Ktourstory_Reservations"),
			WorksheetName:    getEnvOrDefault("GOOGLE_WORKSHEET_NAME", "Sheet1"),
			CredentialsFile:  getEnvOrDefault("GOOGLE_CREDENTIALS_FILE", "credentials.json"),
			PriceTablePath:   getEnvOrDefault("PRICE_TABLE_PATH", "prices.yaml"),
		},
		Slack: SlackConfig{
			WebhookURL:     os.Getenv("SLACK_WEBHOOK_URL"),
			SheetURL:       os.Getenv("SHEET_URL"),
			NotifyEveryone: isTruthy(os.Getenv("SLACK_NOTIFY_EVERYONE")),
		},
		Headless: isTruthy(os.Getenv("HEADLESS")),
		Debug:    os.Getenv("DEBUG") == "true",
	}

	return config, nil
}

// Validate checks that all fields required for a scrape run are set.
func (c *Config) Validate() error {
	var missing []string

	if c.Dashboard.LoginID == "" {
		missing = append(missing, "LOGIN_ID")
	}
	if c.Dashboard.LoginPassword == "" {
		missing = append(missing, "LOGIN_PASSWORD")
	}
	if c.Sheets.SpreadsheetTitle == "" {
		missing = append(missing, "GOOGLE_SHEET_TITLE")
	}
	if c.Sheets.WorksheetName == "" {
		missing = append(missing, "GOOGLE_WORKSHEET_NAME")
	}

	if len(missing) > 0 {
		return fmt.Errorf("missing required configuration: %v\nPlease check your .env file or environment variables", missing)
	}

	return nil
}

// getEnvOrDefault returns the value of the environment variable or a default value if not set.
func getEnvOrDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// isTruthy reports whether an environment flag is enabled.
func isTruthy(value string) bool {
	switch value {
	case "true", "1", "yes", "TRUE", "True", "YES":
		return true
	}
	return false
}
