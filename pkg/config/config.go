package config

import (
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	Server     ServerConfig
	Anthropic  AnthropicConfig
	Extraction ExtractionConfig
	Logger     LoggerConfig
}

type ServerConfig struct {
	Port         string
	ReadTimeout  time.Duration
	WriteTimeout time.Duration
	MaxUploadMB  int
}

type AnthropicConfig struct {
	APIKey         string
	Model          string
	MaxTokens      int
	RequestTimeout time.Duration
}

type ExtractionConfig struct {
	MaxAttempts int
	OutputDir   string
}

type LoggerConfig struct {
	Level string
}

func Load() (*Config, error) {
	// Try to load .env from the current directory or the project root.
	// Missing .env is fine; plain environment variables are used directly
	// (useful for Docker/K8s).
	envFiles := []string{".env", "../.env", "../../.env"}
	for _, envFile := range envFiles {
		if err := godotenv.Load(envFile); err == nil {
			break
		}
	}

	readTimeout, _ := strconv.Atoi(getEnv("SERVER_READ_TIMEOUT", "30"))
	writeTimeout, _ := strconv.Atoi(getEnv("SERVER_WRITE_TIMEOUT", "30"))
	maxUploadMB, _ := strconv.Atoi(getEnv("MAX_UPLOAD_MB", "32"))
	maxTokens, _ := strconv.Atoi(getEnv("ANTHROPIC_MAX_TOKENS", "4000"))
	requestTimeout, _ := strconv.Atoi(getEnv("EXTRACTION_REQUEST_TIMEOUT", "120"))
	maxAttempts, _ := strconv.Atoi(getEnv("EXTRACTION_MAX_ATTEMPTS", "3"))

	return &Config{
		Server: ServerConfig{
			Port:         getEnv("SERVER_PORT", "8000"),
			ReadTimeout:  time.Duration(readTimeout) * time.Second,
			WriteTimeout: time.Duration(writeTimeout) * time.Second,
			MaxUploadMB:  maxUploadMB,
		},
		Anthropic: AnthropicConfig{
			APIKey:         getEnv("ANTHROPIC_API_KEY", ""),
			Model:          getEnv("ANTHROPIC_MODEL", "claude-sonnet-4-20250514"),
			MaxTokens:      maxTokens,
			RequestTimeout: time.Duration(requestTimeout) * time.Second,
		},
		Extraction: ExtractionConfig{
			MaxAttempts: maxAttempts,
			OutputDir:   getEnv("OUTPUT_DIR", "outputs"),
		},
		Logger: LoggerConfig{
			Level: getEnv("LOG_LEVEL", "info"),
		},
	}, nil
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
