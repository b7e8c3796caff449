package config

import (
	"os"
	"strconv"
	"time"
)

type Config struct {
	Port string

	GeminiAPIKey string
	ModelName    string
	LLMTimeout   time.Duration
	UseMockLLM   bool

	StorageBackend string // "memory" or "sqlite"
	SQLitePath     string
}

func getEnv(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getBoolEnv(key string, def bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	return v == "1" || v == "true" || v == "TRUE"
}

func getIntEnv(key string, def int) int {
	if n, err := strconv.Atoi(os.Getenv(key)); err == nil {
		return n
	}
	return def
}

// Load reads all env vars and builds the config. A missing GEMINI_API_KEY is
// not an error: it selects the offline classification mode.
func Load() *Config {
	return &Config{
		Port: getEnv("ASSISTANT_PORT", "8080"),

		GeminiAPIKey: getEnv("GEMINI_API_KEY", ""),
		ModelName:    getEnv("ASSISTANT_MODEL_NAME", "gemini-2.5-flash"),
		LLMTimeout:   time.Duration(getIntEnv("ASSISTANT_LLM_TIMEOUT_SECONDS", 10)) * time.Second,
		UseMockLLM:   getBoolEnv("ASSISTANT_USE_MOCK_LLM", false),

		StorageBackend: getEnv("ASSISTANT_STORAGE_BACKEND", "sqlite"),
		SQLitePath:     getEnv("ASSISTANT_SQLITE_PATH", "data/assistant.db"),
	}
}
