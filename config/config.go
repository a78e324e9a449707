package config

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// Configuration holds every environment switch the server reads.
// Absence of OPENAI_API_KEY means rule-only intent classification;
// absence of EMAIL_ENABLED/SMS_ENABLED means notifications are only
// logged, with no simulated channel sends.
type Configuration struct {
	ApiPort string

	Database string // "sqlite3" or "postgres"
	DbHost   string
	DbPort   string
	DbUser   string
	DbName   string
	DbPass   string

	OpenAIAPIKey string
	OpenAIModel  string

	EmailEnabled bool
	SMSEnabled   bool

	LogLevel  string
	LogFormat string

	// VerboseErrors includes internal error detail in logs for
	// unexpected pipeline failures.
	VerboseErrors bool

	AutoMigrate bool
}

// Get loads the configuration from the environment. A .env file in the
// working directory is read first when present.
func Get() Configuration {
	_ = godotenv.Load()

	c := Configuration{
		ApiPort: getenv("PORT", "8080"),

		Database: getenv("DATABASE", "sqlite3"),
		DbHost:   os.Getenv("DB_HOST"),
		DbPort:   os.Getenv("DB_PORT"),
		DbUser:   os.Getenv("DB_USER"),
		DbName:   os.Getenv("DB_NAME"),
		DbPass:   os.Getenv("DB_PASS"),

		OpenAIAPIKey: strings.TrimSpace(os.Getenv("OPENAI_API_KEY")),
		OpenAIModel:  getenv("OPENAI_MODEL", "gpt-3.5-turbo"),

		EmailEnabled: boolenv("EMAIL_ENABLED"),
		SMSEnabled:   boolenv("SMS_ENABLED"),

		LogLevel:  getenv("LOG_LEVEL", "info"),
		LogFormat: getenv("LOG_FORMAT", "console"),

		VerboseErrors: boolenv("VERBOSE_ERRORS"),
		AutoMigrate:   getenv("AUTOMIGRATE", "1") == "1",
	}

	return c
}

func getenv(key, def string) string {
	v := strings.TrimSpace(os.Getenv(key))
	if v == "" {
		return def
	}
	return v
}

func boolenv(key string) bool {
	v := strings.ToLower(strings.TrimSpace(os.Getenv(key)))
	return v == "1" || v == "true" || v == "yes"
}
