package server

import (
	"os"
	"time"
)

// Config holds the proxy's runtime settings, read from the environment.
type Config struct {
	ListenAddr      string
	GeminiAPIKey    string
	GeminiBaseURL   string
	GeminiModel     string
	UpstreamTimeout time.Duration
}

// ConfigFromEnv builds a Config from environment variables with defaults.
// A missing GEMINI_API_KEY is not fatal here; requests fail individually
// with a configuration error until the key is provided.
func ConfigFromEnv() Config {
	return Config{
		ListenAddr:      envString("ARCANA_LISTEN_ADDR", ":8080"),
		GeminiAPIKey:    envString("GEMINI_API_KEY", ""),
		GeminiBaseURL:   envString("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com/v1beta"),
		GeminiModel:     envString("GEMINI_MODEL", "gemini-2.5-flash"),
		UpstreamTimeout: envDuration("ARCANA_UPSTREAM_TIMEOUT", 60*time.Second),
	}
}

func envString(key, def string) string {
	val, ok := os.LookupEnv(key)
	if !ok || val == "" {
		return def
	}
	return val
}

func envDuration(key string, def time.Duration) time.Duration {
	valStr, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	val, err := time.ParseDuration(valStr)
	if err != nil {
		return def
	}
	return val
}
