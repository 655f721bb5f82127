package config

import (
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"jira-mcp/internal/jira"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

const defaultTimeoutSeconds = 60

// AppConfig holds the complete application configuration.
type AppConfig struct {
	Jira   jira.Config
	LogDir string
}

// Load loads the configuration from .env files and environment variables.
// Variables already present in the environment are never overridden by a .env file.
func Load() (*AppConfig, error) {
	// 1. Binary directory first, as MCP clients rarely start servers in a useful cwd
	exePath, err := os.Executable()
	exeDir := ""
	if err == nil {
		exeDir = filepath.Dir(exePath)
		envPath := filepath.Join(exeDir, ".env")
		if err := godotenv.Load(envPath); err == nil {
			log.Debug().Str("path", envPath).Msg("Loaded configuration from binary directory")
		}
	}

	// 2. Working directory (useful for development/go run)
	if err := godotenv.Load(); err != nil {
		log.Debug().Msg("No .env file found in working directory, relying on environment variables or binary-relative .env")
	}

	return FromEnv(exeDir), nil
}

// FromEnv builds the configuration from the current process environment only.
func FromEnv(exeDir string) *AppConfig {
	logDir := getEnv("LOGS_FOLDER", "")
	if logDir == "" {
		if exeDir != "" {
			logDir = filepath.Join(exeDir, "logs")
		} else {
			logDir = "logs"
		}
	}

	timeoutSecs := getEnvInt("JIRA_TIMEOUT_SECONDS", defaultTimeoutSeconds)
	if timeoutSecs < 0 {
		timeoutSecs = 0
	}

	cfg := &AppConfig{
		Jira: jira.Config{
			BaseURL:  strings.TrimRight(getEnv("JIRA_BASE_URL", ""), "/"),
			Email:    getEnv("JIRA_EMAIL", ""),
			APIToken: getEnv("JIRA_API_TOKEN", ""),
			Timeout:  time.Duration(timeoutSecs) * time.Second,
		},
		LogDir: logDir,
	}

	// Credentials are not validated here; Jira answers 401 on the first call.
	for key, value := range map[string]string{
		"JIRA_BASE_URL":  cfg.Jira.BaseURL,
		"JIRA_EMAIL":     cfg.Jira.Email,
		"JIRA_API_TOKEN": cfg.Jira.APIToken,
	} {
		if value == "" {
			log.Warn().Str("variable", key).Msg("Jira configuration value is not set")
		}
	}

	return cfg
}

func getEnv(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		if intVal, err := strconv.Atoi(strings.TrimSpace(value)); err == nil {
			return intVal
		}
		log.Warn().Str("variable", key).Str("value", value).Msg("Ignoring non-numeric value")
	}
	return fallback
}
