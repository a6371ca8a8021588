package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

// Config holds all application configuration
type Config struct {
	TwelveAPIKey     string
	OpenAIAPIKey     string
	NewsAPIKey       string
	TelegramBotToken string
	Symbol           string
	Interval         string
	CandleCount      int
	LogLevel         string
	RequestTimeout   int // seconds
	DB               DBConfig
}

// DBConfig holds PostgreSQL connection parameters. Analysis history is only
// persisted when Host is set.
type DBConfig struct {
	Host     string
	Port     string
	User     string
	Password string
	Name     string
	SSLMode  string
}

// Load initializes configuration from environment variables
func Load() *Config {
	// Load environment variables from .env file if present
	if err := godotenv.Load(); err != nil {
		log.Warn().Msg(".env file not found, relying on actual environment variables")
	}

	return &Config{
		TwelveAPIKey:     os.Getenv("TWELVE_API_KEY"),
		OpenAIAPIKey:     os.Getenv("OPENAI_API_KEY"),
		NewsAPIKey:       os.Getenv("NEWS_API_KEY"),
		TelegramBotToken: os.Getenv("TELEGRAM_BOT_TOKEN"),
		Symbol:           getEnvWithDefault("SYMBOL", "XAU/USD"),
		Interval:         getEnvWithDefault("INTERVAL", "15min"),
		CandleCount:      getEnvIntWithDefault("CANDLE_COUNT", 50),
		LogLevel:         getEnvWithDefault("LOG_LEVEL", "info"),
		RequestTimeout:   getEnvIntWithDefault("REQUEST_TIMEOUT", 30),
		DB: DBConfig{
			Host:     os.Getenv("DB_HOST"),
			Port:     getEnvWithDefault("DB_PORT", "5432"),
			User:     os.Getenv("DB_USER"),
			Password: os.Getenv("DB_PASSWORD"),
			Name:     os.Getenv("DB_NAME"),
			SSLMode:  getEnvWithDefault("DB_SSLMODE", "disable"),
		},
	}
}

// Helper functions for environment variable handling
func getEnvWithDefault(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvIntWithDefault(key string, defaultValue int) int {
	if value := os.Getenv(key); value != "" {
		if intValue, err := strconv.Atoi(value); err == nil {
			return intValue
		}
	}
	return defaultValue
}
