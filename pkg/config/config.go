package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds all analyzer configuration
type Config struct {
	Input   InputConfig
	Report  ReportConfig
	Logging LoggingConfig
}

type InputConfig struct {
	Path     string
	YearFrom int // 0 = no lower bound override
	YearTo   int // 0 = no upper bound override
}

type ReportConfig struct {
	RankingSize int
	ExcelPath   string // empty = no workbook output
}

type LoggingConfig struct {
	Level string // debug, info, warn, error
	JSON  bool
}

// Load reads configuration from environment variables, merging in a
// .env file from the working directory when one exists. Real
// environment variables win over .env values.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		Input: InputConfig{
			Path:     getEnv("ORDERS_INPUT", ""),
			YearFrom: getEnvAsInt("ORDERS_YEAR_FROM", 0),
			YearTo:   getEnvAsInt("ORDERS_YEAR_TO", 0),
		},
		Report: ReportConfig{
			RankingSize: getEnvAsInt("ORDERS_RANKING_SIZE", 5),
			ExcelPath:   getEnv("ORDERS_REPORT_XLSX", ""),
		},
		Logging: LoggingConfig{
			Level: getEnv("LOG_LEVEL", "info"),
			JSON:  getEnvAsBool("LOG_JSON", false),
		},
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvAsInt(key string, defaultValue int) int {
	valueStr := os.Getenv(key)
	if value, err := strconv.Atoi(valueStr); err == nil {
		return value
	}
	return defaultValue
}

func getEnvAsBool(key string, defaultValue bool) bool {
	valueStr := os.Getenv(key)
	if value, err := strconv.ParseBool(valueStr); err == nil {
		return value
	}
	return defaultValue
}
