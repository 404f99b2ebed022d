// Package config loads settings from the environment and an optional .env
// file. Environment variables win over the file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/rcliao/fitplan/internal/llm"
)

// DefaultEnvFile is read when no file is named. It may be absent.
const DefaultEnvFile = ".env"

// Config holds the application settings. It is built once and not changed.
type Config struct {
	DBPath   string
	UseAI    bool
	LogLevel string
	LLM      llm.Config
}

// Load reads envFile, or DefaultEnvFile when empty, and the environment. A
// named file that does not exist is an error.
func Load(envFile string) (Config, error) {
	file := envFile
	if file == "" {
		file = DefaultEnvFile
	}
	env, err := godotenv.Read(file)
	if err != nil {
		if envFile != "" || !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("read env file %s: %w", file, err)
		}
		env = make(map[string]string)
	}

	getEnv := func(key, defaultValue string) string {
		if value := os.Getenv(key); value != "" {
			return value
		}
		if value, ok := env[key]; ok && value != "" {
			return value
		}
		return defaultValue
	}

	cfg := Config{
		DBPath:   getEnv("FITPLAN_DB", defaultDBPath()),
		LogLevel: getEnv("FITPLAN_LOG_LEVEL", "info"),
		LLM: llm.Config{
			Endpoint: getEnv("FITPLAN_AI_ENDPOINT", llm.DefaultEndpoint),
			APIKey:   getEnv("FITPLAN_AI_KEY", getEnv("OPENAI_API_KEY", "")),
			Model:    getEnv("FITPLAN_AI_MODEL", llm.DefaultModel),
		},
	}

	if cfg.UseAI, err = strconv.ParseBool(getEnv("FITPLAN_USE_AI", "false")); err != nil {
		return Config{}, fmt.Errorf("FITPLAN_USE_AI: %w", err)
	}
	if v := getEnv("FITPLAN_AI_TEMPERATURE", ""); v != "" {
		if cfg.LLM.Temperature, err = strconv.ParseFloat(v, 64); err != nil {
			return Config{}, fmt.Errorf("FITPLAN_AI_TEMPERATURE: %w", err)
		}
	}
	if v := getEnv("FITPLAN_AI_MAX_TOKENS", ""); v != "" {
		if cfg.LLM.MaxTokens, err = strconv.Atoi(v); err != nil {
			return Config{}, fmt.Errorf("FITPLAN_AI_MAX_TOKENS: %w", err)
		}
	}
	cfg.LLM = cfg.LLM.WithDefaults()

	return cfg, nil
}

func defaultDBPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		home = "."
	}
	return filepath.Join(home, ".fitplan", "fitplan.db")
}
