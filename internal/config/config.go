package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	DSN             string
	Driver          string
	DefaultSchema   string
	Seed            int64
	Engine          string
	DefinitionsFile string
	LogLevel        string
}

// Load reads TABLEFAKER_* variables. A .env file in the working directory
// fills in variables that are not already set. DefaultSchema is empty
// unless TABLEFAKER_SCHEMA is set, leaving the choice to the driver.
func Load() *Config {
	_ = godotenv.Load()

	return &Config{
		DSN:             getEnv("TABLEFAKER_DSN", ""),
		Driver:          getEnv("TABLEFAKER_DRIVER", "postgres"),
		DefaultSchema:   getEnv("TABLEFAKER_SCHEMA", ""),
		Seed:            getEnvInt64("TABLEFAKER_SEED", 0),
		Engine:          getEnv("TABLEFAKER_ENGINE", "fakeit"),
		DefinitionsFile: getEnv("TABLEFAKER_DEFINITIONS", ""),
		LogLevel:        getEnv("TABLEFAKER_LOG_LEVEL", "info"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getEnvInt64(key string, defaultValue int64) int64 {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return defaultValue
	}
	return n
}
