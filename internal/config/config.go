package config

import (
	"fmt"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ProjectID          string
	Port               string
	LogLevel           string
	DefaultAccountName string
}

func New() *Config {
	// Local development convenience; Cloud Run injects env directly.
	_ = godotenv.Load()

	return &Config{
		ProjectID:          os.Getenv("PROJECTID"),
		Port:               getEnv("PORT", "8080"),
		LogLevel:           getEnv("LOGLEVEL", "info"),
		DefaultAccountName: getEnv("DEFAULTACCOUNT", "Current"),
	}
}

func (c *Config) Validate() error {
	if c.ProjectID == "" {
		return fmt.Errorf("PROJECTID must be set")
	}
	if port, err := strconv.Atoi(c.Port); err != nil || port < 1 || port > 65535 {
		return fmt.Errorf("invalid port %q", c.Port)
	}
	return nil
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
